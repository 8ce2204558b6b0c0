package reflectdata

import (
	"reflect"

	"github.com/dmosorast/avro/generic"
)

// Type is an opaque descriptor for a host type presented for inference. It
// is one of:
//
//   - a reflect.Type, covering primitives, slices, maps, pointers and named
//     struct types;
//   - a *ParameterizedType, an explicit container instantiation for shapes
//     whose type arguments Go reflection cannot recover (a field typed as
//     the bare generic.Array interface carries no element type);
//   - nil, denoting void (the null leaf).
//
// Descriptors compare by identity: reflect.Type values for the same type are
// equal, and a *ParameterizedType is its own identity.
type Type = any

// ParameterizedType is a container shape applied to explicit type arguments:
// a raw sequence type with one element argument, or a raw map type with a
// key and a value argument.
type ParameterizedType struct {
	Raw  reflect.Type
	Args []Type
}

var (
	utf8Type  = reflect.TypeOf(generic.Utf8(""))
	bytesType = reflect.TypeOf(generic.Bytes(nil))
	arrayType = reflect.TypeOf((*generic.Array)(nil)).Elem()
	mapType   = reflect.TypeOf(generic.Map(nil))
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// ArrayOf returns the descriptor of a generic sequence with the given
// element type.
func ArrayOf(elem Type) *ParameterizedType {
	return &ParameterizedType{Raw: arrayType, Args: []Type{elem}}
}

// MapOf returns the descriptor of a generic string-keyed map with the given
// key and value types. Inference insists the key is generic.Utf8; the
// argument is accepted here so that the violation surfaces as an
// InvalidMapKeyError rather than a construction panic.
func MapOf(key, value Type) *ParameterizedType {
	return &ParameterizedType{Raw: mapType, Args: []Type{key, value}}
}

// TypeOf returns the descriptor of the dynamic type of v.
func TypeOf(v any) Type { return reflect.TypeOf(v) }
