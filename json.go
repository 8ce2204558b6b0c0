package avro

import (
	json "github.com/goccy/go-json"
)

// jsonField mirrors one entry of a record's "fields" array.
type jsonField struct {
	Name string `json:"name"`
	Type any    `json:"type"`
}

// jsonRecord mirrors a record definition in the text form.
type jsonRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name,omitempty"`
	Namespace string      `json:"namespace,omitempty"`
	Fields    []jsonField `json:"fields"`
}

type jsonArray struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

type jsonMap struct {
	Type   string `json:"type"`
	Values any    `json:"values"`
}

// MarshalJSON renders the canonical JSON text form of the schema. A named
// record is written in full on first occurrence and as a bare name reference
// afterwards, which keeps self-referential schemas finite.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.jsonValue(map[string]bool{}))
}

// String returns the canonical JSON text form.
func (s *Schema) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return "<invalid schema: " + err.Error() + ">"
	}
	return string(b)
}

func (s *Schema) jsonValue(seen map[string]bool) any {
	switch s.typ {
	case Record:
		if s.name != "" {
			if seen[s.name] {
				return s.name
			}
			seen[s.name] = true
		}
		typ := "record"
		if s.isError {
			typ = "error"
		}
		fields := make([]jsonField, 0, len(s.fields))
		for _, f := range s.fields {
			fields = append(fields, jsonField{Name: f.Name, Type: f.Schema.jsonValue(seen)})
		}
		return jsonRecord{Type: typ, Name: s.name, Namespace: s.namespace, Fields: fields}
	case Array:
		return jsonArray{Type: "array", Items: s.elem.jsonValue(seen)}
	case Map:
		return jsonMap{Type: "map", Values: s.elem.jsonValue(seen)}
	case Union:
		members := make([]any, 0, len(s.branches))
		for _, b := range s.branches {
			members = append(members, b.jsonValue(seen))
		}
		return members
	default:
		return s.typ.String()
	}
}
