package avro

import "fmt"

// SchemaParseError reports a schema or protocol definition that could not be
// understood. Parsing is all-or-nothing: the first offending element aborts
// the whole parse.
type SchemaParseError struct {
	Reason string
	Value  any // The offending fragment of the definition, when known.
}

func (e *SchemaParseError) Error() string {
	if e.Value == nil {
		return "avro: " + e.Reason
	}
	return fmt.Sprintf("avro: %s: %v", e.Reason, e.Value)
}

func parseErrorf(value any, format string, args ...any) error {
	return &SchemaParseError{Reason: fmt.Sprintf(format, args...), Value: value}
}
