package avro

import "fmt"

// Type is the tag identifying the shape of a Schema node.
type Type int

const (
	Record Type = iota
	Array
	Map
	Union
	String
	Bytes
	Int
	Long
	Float
	Double
	Boolean
	Null
)

// typeNames holds the canonical lowercase spelling used by the JSON text form.
var typeNames = map[Type]string{
	Record:  "record",
	Array:   "array",
	Map:     "map",
	Union:   "union",
	String:  "string",
	Bytes:   "bytes",
	Int:     "int",
	Long:    "long",
	Float:   "float",
	Double:  "double",
	Boolean: "boolean",
	Null:    "null",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Field is one named member of a record schema. Field order is significant:
// it is the serialization order.
type Field struct {
	Name   string
	Schema *Schema
}

// Schema is a node of the tagged schema tree. Leaf kinds carry no children;
// Array carries an element schema, Map a value schema (keys are always
// string-like), Record a name, namespace, is-error flag and ordered fields,
// and Union an ordered list of member schemas.
//
// Schemas are immutable once built, with one deliberate exception: a record
// is created empty and its fields are attached afterwards via SetFields.
// That two-step construction is what lets a self-referential record capture
// a reference to itself while it is still being built.
type Schema struct {
	typ       Type
	name      string
	namespace string
	isError   bool
	fields    []Field
	fieldIdx  map[string]int
	elem      *Schema   // Array element or Map value schema.
	branches  []*Schema // Union members, in declared order.
}

// Create returns the schema for a primitive type. It panics when t is a
// composite kind; records, arrays, maps and unions have dedicated
// constructors.
func Create(t Type) *Schema {
	switch t {
	case Record, Array, Map, Union:
		panic(fmt.Sprintf("avro: Create called with composite type %v", t))
	}
	return &Schema{typ: t}
}

// CreateRecord returns an empty named record schema. Callers attach its
// fields with SetFields once the member schemas are known.
func CreateRecord(name, namespace string, isError bool) *Schema {
	return &Schema{typ: Record, name: name, namespace: namespace, isError: isError}
}

// CreateFieldRecord returns an anonymous record built from pre-resolved
// fields, such as the request record of a protocol message.
func CreateFieldRecord(fields []Field) *Schema {
	s := &Schema{typ: Record}
	s.SetFields(fields)
	return s
}

// CreateArray returns an array schema with the given element schema.
func CreateArray(elem *Schema) *Schema {
	return &Schema{typ: Array, elem: elem}
}

// CreateMap returns a map schema with the given value schema. Map keys are
// always string-like and carry no schema of their own.
func CreateMap(values *Schema) *Schema {
	return &Schema{typ: Map, elem: values}
}

// CreateUnion returns a union over the given member schemas. Member order is
// significant: validation tries members in declared order.
func CreateUnion(branches ...*Schema) *Schema {
	return &Schema{typ: Union, branches: branches}
}

// SetFields attaches the ordered field list of a record schema. It panics on
// a non-record schema or when fields were already attached.
func (s *Schema) SetFields(fields []Field) {
	if s.typ != Record {
		panic("avro: SetFields on non-record schema")
	}
	if s.fieldIdx != nil {
		panic("avro: SetFields called twice")
	}
	s.fields = fields
	s.fieldIdx = make(map[string]int, len(fields))
	for i, f := range fields {
		s.fieldIdx[f.Name] = i
	}
}

// Type returns the shape tag of the schema.
func (s *Schema) Type() Type { return s.typ }

// Name returns the record name, or "" for anonymous records and non-records.
func (s *Schema) Name() string { return s.name }

// Namespace returns the record namespace.
func (s *Schema) Namespace() string { return s.namespace }

// IsError reports whether a record schema describes a failure type.
func (s *Schema) IsError() bool { return s.isError }

// Fields returns the record fields in declaration order. The returned slice
// must not be mutated.
func (s *Schema) Fields() []Field { return s.fields }

// Field returns the named record field, if present.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.fieldIdx[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Element returns the element schema of an array.
func (s *Schema) Element() *Schema { return s.elem }

// Values returns the value schema of a map.
func (s *Schema) Values() *Schema { return s.elem }

// Types returns the member schemas of a union, in declared order.
func (s *Schema) Types() []*Schema { return s.branches }
