package paranamer

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
)

// Source recovers parameter names by parsing the Go source of the package
// directory that declares the interface. It is the build-time name index for
// code whose declarations are available on disk; methods whose parameters
// are unnamed in the source remain unavailable.
type Source struct {
	dir string

	mu    sync.Mutex
	decls map[string]map[string][]string // interface name -> method -> names
}

// NewSource returns a Source reading interface declarations from dir. The
// directory is parsed lazily on first use and the result is retained.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// ParameterNames implements Namer.
func (s *Source) ParameterNames(iface reflect.Type, m reflect.Method) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.decls == nil {
		decls, err := parseDir(s.dir)
		if err != nil {
			return nil, err
		}
		s.decls = decls
	}
	if names, ok := s.decls[iface.Name()][m.Name]; ok {
		return names, nil
	}
	return nil, &UnavailableError{Interface: iface.Name(), Method: m.Name}
}

func parseDir(dir string) (map[string]map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("paranamer: reading %s: %w", dir, err)
	}
	fset := token.NewFileSet()
	decls := map[string]map[string][]string{}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("paranamer: parsing %s: %w", name, err)
		}
		collectInterfaces(f, decls)
	}
	return decls, nil
}

func collectInterfaces(f *ast.File, decls map[string]map[string][]string) {
	for _, d := range f.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			it, ok := ts.Type.(*ast.InterfaceType)
			if !ok {
				continue
			}
			methods := map[string][]string{}
			for _, field := range it.Methods.List {
				ft, ok := field.Type.(*ast.FuncType)
				if !ok || len(field.Names) == 0 {
					continue // embedded interface or type set element
				}
				names, ok := paramNames(ft)
				if !ok {
					continue // unnamed parameters stay unavailable
				}
				for _, mn := range field.Names {
					methods[mn.Name] = names
				}
			}
			decls[ts.Name.Name] = methods
		}
	}
}

func paramNames(ft *ast.FuncType) ([]string, bool) {
	names := []string{}
	if ft.Params == nil {
		return names, true
	}
	for _, p := range ft.Params.List {
		if len(p.Names) == 0 {
			return nil, false
		}
		for _, n := range p.Names {
			names = append(names, n.Name)
		}
	}
	return names, true
}
