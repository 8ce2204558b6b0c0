package reflectdata

import (
	"reflect"
	"strings"

	"github.com/dmosorast/avro"
	"github.com/dmosorast/avro/generic"
)

// Matches reports whether datum structurally conforms to schema. It never
// fails for a legitimate mismatch; the single non-bool outcome is a panic
// with *InternalError when a record member exists but cannot be read, which
// indicates a broken value representation rather than a mismatch.
//
// Leaf kinds bind to exact runtime types: generic.Utf8 for string,
// generic.Bytes for bytes, int32/int64/float32/float64/bool for the numeric
// and boolean leaves, and nil for null. Array values must satisfy
// generic.Array; map values must be generic.Map and validate element-wise
// against the value schema. A union matches when any member matches, tried
// in declared order.
func Matches(s *avro.Schema, datum any) bool {
	switch s.Type() {
	case avro.Record:
		return matchesRecord(s, datum)
	case avro.Array:
		a, ok := datum.(generic.Array)
		if !ok {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !Matches(s.Element(), a.Get(i)) {
				return false
			}
		}
		return true
	case avro.Map:
		m, ok := datum.(generic.Map)
		if !ok {
			return false
		}
		for _, v := range m {
			if !Matches(s.Values(), v) {
				return false
			}
		}
		return true
	case avro.Union:
		for _, member := range s.Types() {
			if Matches(member, datum) {
				return true
			}
		}
		return false
	case avro.String:
		_, ok := datum.(generic.Utf8)
		return ok
	case avro.Bytes:
		_, ok := datum.(generic.Bytes)
		return ok
	case avro.Int:
		_, ok := datum.(int32)
		return ok
	case avro.Long:
		_, ok := datum.(int64)
		return ok
	case avro.Float:
		_, ok := datum.(float32)
		return ok
	case avro.Double:
		_, ok := datum.(float64)
		return ok
	case avro.Boolean:
		_, ok := datum.(bool)
		return ok
	case avro.Null:
		return datum == nil
	}
	return false
}

func matchesRecord(s *avro.Schema, datum any) bool {
	rv := reflect.ValueOf(datum)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return false
	}
	rt := rv.Type()
	for _, f := range s.Fields() {
		fv, ok := memberByName(rv, rt, f.Name)
		if !ok {
			return false
		}
		if !fv.CanInterface() {
			panic(&InternalError{Reason: "unreadable member " + f.Name + " on " + rt.String()})
		}
		if !Matches(f.Schema, fv.Interface()) {
			return false
		}
	}
	return true
}

// memberByName finds the struct field answering to a schema field name,
// matching the avro tag first and the Go name second. Unexported fields are
// matched too; reading one is the host-runtime failure matchesRecord treats
// as fatal.
func memberByName(rv reflect.Value, rt reflect.Type, name string) (reflect.Value, bool) {
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		tag := sf.Tag.Get("avro")
		if j := strings.IndexByte(tag, ','); j >= 0 {
			tag = tag[:j]
		}
		if tag == name || (tag == "" && sf.Name == name) {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}
