// Package paranamer resolves the source-level parameter names of interface
// methods. Go reflection does not retain them, so protocol construction
// delegates to a Namer: an explicit registry (Static), a source-parsing
// resolver (Source), or either wrapped in a memoizing layer (Caching).
package paranamer

import (
	"fmt"
	"reflect"
	"sync"
)

// Namer resolves the declared parameter names of an interface method.
type Namer interface {
	// ParameterNames returns one name per parameter of m, in declaration
	// order. It fails with *UnavailableError when the names cannot be
	// recovered.
	ParameterNames(iface reflect.Type, m reflect.Method) ([]string, error)
}

// UnavailableError reports that the parameter names of a method could not be
// recovered. Protocol construction propagates it; parameters are never
// silently numbered.
type UnavailableError struct {
	Interface string
	Method    string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("paranamer: no parameter names for %s.%s", e.Interface, e.Method)
}

// Static resolves names from an explicit registry populated by Register.
// It is safe for concurrent use.
type Static struct {
	mu    sync.RWMutex
	names map[string][]string
}

// NewStatic returns an empty registry.
func NewStatic() *Static {
	return &Static{names: map[string][]string{}}
}

// Register records the parameter names of one method of iface.
func (s *Static) Register(iface reflect.Type, method string, names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[methodKey(iface, method)] = names
}

// ParameterNames implements Namer.
func (s *Static) ParameterNames(iface reflect.Type, m reflect.Method) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names, ok := s.names[methodKey(iface, m.Name)]
	if !ok {
		return nil, &UnavailableError{Interface: iface.Name(), Method: m.Name}
	}
	return names, nil
}

func methodKey(iface reflect.Type, method string) string {
	return iface.PkgPath() + "." + iface.Name() + "." + method
}
