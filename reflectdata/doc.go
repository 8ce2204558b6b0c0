// Package reflectdata infers Avro schemas and protocols from Go types via
// reflection, and checks runtime values against schemas.
//
// The three entry points are:
//
//	SchemaFor(typ)            // host type -> *avro.Schema
//	ProtocolFor(iface, namer) // interface type -> *avro.Protocol
//	Matches(schema, datum)    // structural conformance check
//
// Schema inference walks a descriptor recursively over a closed set of
// shapes. Primitive leaves bind by exact type identity (generic.Utf8, not
// string; int32, not int). Named struct types become records; a record is
// entered into the per-call name table before its fields are resolved, so
// self-referential and mutually-referential types terminate and resolve to
// one shared schema. Completed schemas are memoized in a process-wide,
// bounded, thread-safe cache keyed by descriptor identity; a cache miss only
// costs a rebuild.
//
// Unions are never inferred: Go has no native union concept, so union
// schemas must be constructed explicitly via the avro package.
package reflectdata
