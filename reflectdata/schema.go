package reflectdata

import (
	"reflect"
	"strings"

	"github.com/dmosorast/avro"
)

// SchemaFor returns the Avro schema describing the host type typ.
//
// For named struct types, exported fields in declaration order become record
// fields; unexported fields and fields tagged `avro:"-"` are skipped. The
// schema of a self-referential type contains a reference to itself rather
// than recursing forever.
func SchemaFor(typ Type) (*avro.Schema, error) {
	if s, ok := schemaCache.get(typ); ok {
		return s, nil
	}
	s, err := createSchema(typ, map[string]*avro.Schema{})
	if err != nil {
		return nil, err
	}
	schemaCache.put(typ, s)
	return s, nil
}

// createSchema is the recursive worker behind SchemaFor and ProtocolFor.
// names is the per-call table of records by simple name; it is what breaks
// recursion for cyclic types, so every recursive call must share it.
func createSchema(typ Type, names map[string]*avro.Schema) (*avro.Schema, error) {
	switch t := typ.(type) {
	case nil:
		// Void.
		return avro.Create(avro.Null), nil
	case *ParameterizedType:
		return createParameterized(t, names)
	case reflect.Type:
		return createGoSchema(t, names)
	}
	return nil, &UnsupportedTypeError{Type: typ}
}

// leafTable binds host types to primitive leaves by exact identity. The
// table is closed: subtypes, conversions and plain string/[]byte do not
// qualify.
var leafTable = map[reflect.Type]avro.Type{
	utf8Type:                   avro.String,
	bytesType:                  avro.Bytes,
	reflect.TypeOf(int32(0)):   avro.Int,
	reflect.TypeOf(int64(0)):   avro.Long,
	reflect.TypeOf(float32(0)): avro.Float,
	reflect.TypeOf(float64(0)): avro.Double,
	reflect.TypeOf(false):      avro.Boolean,
}

func createGoSchema(t reflect.Type, names map[string]*avro.Schema) (*avro.Schema, error) {
	if leaf, ok := leafTable[t]; ok {
		return avro.Create(leaf), nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		// A pointer is the nullable reference to its pointee; it carries
		// no schema of its own.
		return createGoSchema(t.Elem(), names)
	case reflect.Slice:
		elem, err := createSchema(t.Elem(), names)
		if err != nil {
			return nil, err
		}
		return avro.CreateArray(elem), nil
	case reflect.Map:
		if t.Key() != utf8Type {
			return nil, &InvalidMapKeyError{Key: t.Key()}
		}
		values, err := createSchema(t.Elem(), names)
		if err != nil {
			return nil, err
		}
		return avro.CreateMap(values), nil
	case reflect.Struct:
		if t.Name() == "" {
			return nil, &UnsupportedTypeError{Type: t}
		}
		return createRecord(t, names)
	}
	return nil, &UnsupportedTypeError{Type: t}
}

func createRecord(t reflect.Type, names map[string]*avro.Schema) (*avro.Schema, error) {
	name := t.Name()
	if s, ok := names[name]; ok {
		// Possibly still being built; cyclic references resolve here.
		return s, nil
	}
	isErr := t.Implements(errorType) || reflect.PointerTo(t).Implements(errorType)
	rec := avro.CreateRecord(name, t.PkgPath(), isErr)
	names[name] = rec // before the fields, or self references would not terminate

	fields := make([]avro.Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		key := fieldKey(sf)
		if key == "" {
			continue
		}
		fs, err := createSchema(sf.Type, names)
		if err != nil {
			return nil, err
		}
		fields = append(fields, avro.Field{Name: key, Schema: fs})
	}
	rec.SetFields(fields)
	return rec, nil
}

func createParameterized(t *ParameterizedType, names map[string]*avro.Schema) (*avro.Schema, error) {
	raw := t.Raw
	switch {
	case raw == arrayType || raw.Implements(arrayType):
		if len(t.Args) != 1 {
			return nil, &MissingTypeArgumentError{Type: t}
		}
		elem, err := createSchema(t.Args[0], names)
		if err != nil {
			return nil, err
		}
		return avro.CreateArray(elem), nil
	case raw.Kind() == reflect.Map:
		if len(t.Args) != 2 {
			return nil, &UnsupportedTypeError{Type: t}
		}
		if kt, ok := t.Args[0].(reflect.Type); !ok || kt != utf8Type {
			return nil, &InvalidMapKeyError{Key: t.Args[0]}
		}
		values, err := createSchema(t.Args[1], names)
		if err != nil {
			return nil, err
		}
		return avro.CreateMap(values), nil
	}
	return nil, &UnsupportedTypeError{Type: t}
}

// fieldKey resolves the schema name of a struct field. The avro tag wins
// over the Go name; unexported fields and fields tagged "-" resolve to ""
// and are excluded from the record.
func fieldKey(sf reflect.StructField) string {
	if !sf.IsExported() {
		return ""
	}
	tag := sf.Tag.Get("avro")
	if tag == "-" {
		return ""
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	if tag != "" {
		return tag
	}
	return sf.Name
}
