package avro

import (
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// primitiveNames is the reverse of the canonical type spelling, restricted to
// the leaf kinds that may appear as bare names in a definition.
var primitiveNames = map[string]Type{
	"string":  String,
	"bytes":   Bytes,
	"int":     Int,
	"long":    Long,
	"float":   Float,
	"double":  Double,
	"boolean": Boolean,
	"null":    Null,
}

// ParseSchema reconstructs a Schema from its canonical JSON definition.
// Named records may be referenced by bare name after their first definition,
// including from within their own fields.
func ParseSchema(data []byte) (*Schema, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &SchemaParseError{Reason: "invalid JSON: " + err.Error()}
	}
	return parseValue(v, map[string]*Schema{})
}

// ParseSchemaYAML reconstructs a Schema from a YAML rendering of the same
// definition shape that ParseSchema accepts.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &SchemaParseError{Reason: "invalid YAML: " + err.Error()}
	}
	return parseValue(normalizeYAML(v), map[string]*Schema{})
}

func parseValue(v any, names map[string]*Schema) (*Schema, error) {
	switch t := v.(type) {
	case string:
		if p, ok := primitiveNames[t]; ok {
			return Create(p), nil
		}
		if s, ok := names[t]; ok {
			return s, nil
		}
		return nil, parseErrorf(t, "undefined type name")
	case []any:
		members := make([]*Schema, 0, len(t))
		for _, m := range t {
			ms, err := parseValue(m, names)
			if err != nil {
				return nil, err
			}
			members = append(members, ms)
		}
		return CreateUnion(members...), nil
	case map[string]any:
		return parseObject(t, names)
	}
	return nil, parseErrorf(v, "unexpected schema element")
}

func parseObject(m map[string]any, names map[string]*Schema) (*Schema, error) {
	typ, _ := m["type"].(string)
	switch typ {
	case "record", "error":
		return parseRecord(m, typ == "error", names)
	case "array":
		items, ok := m["items"]
		if !ok {
			return nil, parseErrorf(m, "array schema missing items")
		}
		elem, err := parseValue(items, names)
		if err != nil {
			return nil, err
		}
		return CreateArray(elem), nil
	case "map":
		values, ok := m["values"]
		if !ok {
			return nil, parseErrorf(m, "map schema missing values")
		}
		vs, err := parseValue(values, names)
		if err != nil {
			return nil, err
		}
		return CreateMap(vs), nil
	default:
		if p, ok := primitiveNames[typ]; ok {
			return Create(p), nil
		}
		return nil, parseErrorf(typ, "unknown schema type")
	}
}

func parseRecord(m map[string]any, isError bool, names map[string]*Schema) (*Schema, error) {
	name, _ := m["name"].(string)
	namespace, _ := m["namespace"].(string)
	rec := CreateRecord(name, namespace, isError)
	if name != "" {
		// Registered before the fields are parsed so self references
		// resolve to this same schema.
		names[name] = rec
	}
	rawFields, ok := m["fields"].([]any)
	if !ok {
		return nil, parseErrorf(m, "record schema missing fields")
	}
	fields := make([]Field, 0, len(rawFields))
	for _, rf := range rawFields {
		fm, ok := rf.(map[string]any)
		if !ok {
			return nil, parseErrorf(rf, "record field is not an object")
		}
		fname, _ := fm["name"].(string)
		if fname == "" {
			return nil, parseErrorf(rf, "record field missing name")
		}
		ft, ok := fm["type"]
		if !ok {
			return nil, parseErrorf(rf, "record field missing type")
		}
		fs, err := parseValue(ft, names)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: fname, Schema: fs})
	}
	rec.SetFields(fields)
	return rec, nil
}

// normalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into the JSON-like shape parseValue expects.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeYAML(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAML(t[i])
		}
		return arr
	default:
		return v
	}
}
