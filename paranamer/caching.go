package paranamer

import (
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"
)

const cacheSize = 256

// Caching memoizes another Namer. Resolution failures are not cached, so a
// registry that gains entries later is consulted again.
type Caching struct {
	next Namer
	lru  *lru.Cache[string, []string]
}

// NewCaching wraps next in a bounded memoizing layer.
func NewCaching(next Namer) *Caching {
	c, err := lru.New[string, []string](cacheSize)
	if err != nil {
		panic(err)
	}
	return &Caching{next: next, lru: c}
}

// ParameterNames implements Namer.
func (c *Caching) ParameterNames(iface reflect.Type, m reflect.Method) ([]string, error) {
	key := methodKey(iface, m.Name)
	if names, ok := c.lru.Get(key); ok {
		return names, nil
	}
	names, err := c.next.ParameterNames(iface, m)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, names)
	return names, nil
}
