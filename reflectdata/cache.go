package reflectdata

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmosorast/avro"
)

// schemaCacheSize bounds the process-wide descriptor->schema cache. The
// bound makes the cache non-owning: a descriptor that falls out is simply
// rebuilt on next use.
const schemaCacheSize = 1024

// typeCache memoizes fully built schemas across top-level SchemaFor calls.
// The underlying LRU is mutex-guarded, so concurrent get/put never corrupt
// the table; a race on one key at worst rebuilds the same pure schema twice.
type typeCache struct {
	lru *lru.Cache[Type, *avro.Schema]
}

func newTypeCache(size int) *typeCache {
	c, err := lru.New[Type, *avro.Schema](size)
	if err != nil {
		panic(err) // only possible with a non-positive size
	}
	return &typeCache{lru: c}
}

func (c *typeCache) get(t Type) (*avro.Schema, bool) { return c.lru.Get(t) }

func (c *typeCache) put(t Type, s *avro.Schema) { c.lru.Add(t, s) }

var schemaCache = newTypeCache(schemaCacheSize)
