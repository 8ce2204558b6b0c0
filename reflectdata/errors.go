package reflectdata

import "fmt"

// UnsupportedTypeError reports a descriptor that matches none of the
// recognized shapes: no leaf binding, no container capability, and no named
// struct form. Raw containers without type arguments fail with this error
// too; inference never guesses an element type.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("avro: unsupported type: %v", e.Type)
}

// MissingTypeArgumentError reports a sequence instantiation that does not
// carry exactly one element type argument.
type MissingTypeArgumentError struct {
	Type *ParameterizedType
}

func (e *MissingTypeArgumentError) Error() string {
	return fmt.Sprintf("avro: sequence type %v needs exactly one type argument, got %d",
		e.Type.Raw, len(e.Type.Args))
}

// InvalidMapKeyError reports a map shape whose key type is not generic.Utf8.
// Map keys carry no schema, so only the designated string marker is allowed.
type InvalidMapKeyError struct {
	Key Type
}

func (e *InvalidMapKeyError) Error() string {
	return fmt.Sprintf("avro: map key type is not generic.Utf8: %v", e.Key)
}

// InternalError reports a host-runtime inconsistency discovered while
// inspecting a value: a record member that exists but cannot be read. This
// is a broken value representation, not a legitimate mismatch, so Matches
// panics with it instead of returning false.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "avro: internal: " + e.Reason
}
