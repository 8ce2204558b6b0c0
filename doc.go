// Package avro models Avro schemas and protocols as immutable tagged trees.
//
// The package provides:
//
//   - Schema: a tagged tree over a closed set of shapes (record, array, map,
//     union and the primitive leaves), with ordered record fields
//   - Protocol/Message: a named bundle of remote-call signatures, each with
//     request, response and error schemas
//   - A canonical JSON text form (MarshalJSON/String) plus ParseSchema and
//     ParseSchemaYAML to reconstruct schemas from their definitions
//
// Design policy:
//   - Keep only the schema and protocol model in the root package; put the
//     reflection-driven inference under reflectdata/, the generic value
//     representation under generic/, and the CLI under cmd/avro.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := reflectdata.SchemaFor(reflect.TypeOf(Employee{}))
//	fmt.Println(s) // canonical JSON
//
//	p, err := reflectdata.ProtocolFor(ifaceType, namer)
//	ok := reflectdata.Matches(s, datum)
package avro
