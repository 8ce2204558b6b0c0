// Package generic holds the in-memory value representation that schema
// validation inspects, together with the marker types the inference layer
// binds to the string and bytes leaves.
//
// The markers are deliberately distinct from Go's built-in string and []byte:
// leaf binding is by exact type identity, so a plain string neither infers a
// schema nor validates against one.
package generic

// Utf8 is the marker type bound to the string leaf.
type Utf8 string

// Bytes is the byte-buffer marker type bound to the bytes leaf.
type Bytes []byte

// Array is the sequence capability: any value satisfying it validates
// against an array schema, element by element.
type Array interface {
	Len() int
	Get(i int) any
}

// Slice is the default Array implementation.
type Slice []any

func (s Slice) Len() int      { return len(s) }
func (s Slice) Get(i int) any { return s[i] }

// Map is the generic representation of string-keyed map data. Keys carry no
// schema; only the values are described by a map schema.
type Map map[Utf8]any
