package reflectdata_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmosorast/avro"
	"github.com/dmosorast/avro/generic"
	"github.com/dmosorast/avro/paranamer"
	"github.com/dmosorast/avro/reflectdata"
)

type Calculator interface {
	Add(a int32, b generic.Utf8) (bool, error)
	Describe(name generic.Utf8) (generic.Utf8, *OverflowError, error)
	Ping()
	Scale(factor float64) (float64, *OverflowError, error)
}

var calcType = reflect.TypeOf((*Calculator)(nil)).Elem()

func calcNamer() *paranamer.Static {
	n := paranamer.NewStatic()
	n.Register(calcType, "Add", "a", "b")
	n.Register(calcType, "Describe", "name")
	n.Register(calcType, "Ping")
	n.Register(calcType, "Scale", "factor")
	return n
}

func TestProtocolFor_Messages(t *testing.T) {
	p, err := reflectdata.ProtocolFor(calcType, calcNamer())
	require.NoError(t, err)

	require.Equal(t, "Calculator", p.Name())
	require.Equal(t, calcType.PkgPath(), p.Namespace())
	require.Len(t, p.Messages(), 4)

	add := p.Message("Add")
	require.NotNil(t, add)
	fields := add.Request().Fields()
	require.Len(t, fields, 2)
	require.Equal(t, "a", fields[0].Name)
	require.Equal(t, avro.Int, fields[0].Schema.Type())
	require.Equal(t, "b", fields[1].Name)
	require.Equal(t, avro.String, fields[1].Schema.Type())
	require.Equal(t, avro.Boolean, add.Response().Type())

	// Only the system error: the plain error result carries no schema.
	errs := add.Errors().Types()
	require.Len(t, errs, 1)
	require.Same(t, avro.SystemError, errs[0])
}

func TestProtocolFor_DeclaredFailures(t *testing.T) {
	p, err := reflectdata.ProtocolFor(calcType, calcNamer())
	require.NoError(t, err)

	describe := p.Message("Describe")
	require.Equal(t, avro.String, describe.Response().Type())
	errs := describe.Errors().Types()
	require.Len(t, errs, 2)
	require.Same(t, avro.SystemError, errs[0], "system error always first")
	require.Equal(t, "OverflowError", errs[1].Name())
	require.True(t, errs[1].IsError())

	// The failure type is registered in the protocol's type table and is
	// shared with every other message that declares it.
	require.Same(t, errs[1], p.Types()["OverflowError"])
	scaleErrs := p.Message("Scale").Errors().Types()
	require.Same(t, errs[1], scaleErrs[1])
}

func TestProtocolFor_VoidMethod(t *testing.T) {
	p, err := reflectdata.ProtocolFor(calcType, calcNamer())
	require.NoError(t, err)

	ping := p.Message("Ping")
	require.Empty(t, ping.Request().Fields())
	require.Equal(t, avro.Null, ping.Response().Type())
	require.Len(t, ping.Errors().Types(), 1)
}

func TestProtocolFor_NamesRequired(t *testing.T) {
	var ue *paranamer.UnavailableError

	_, err := reflectdata.ProtocolFor(calcType, nil)
	require.ErrorAs(t, err, &ue)

	// Registered, but with the wrong number of names.
	n := calcNamer()
	n.Register(calcType, "Add", "a")
	_, err = reflectdata.ProtocolFor(calcType, n)
	require.ErrorAs(t, err, &ue)

	// Missing registration for one method.
	partial := paranamer.NewStatic()
	partial.Register(calcType, "Add", "a", "b")
	_, err = reflectdata.ProtocolFor(calcType, partial)
	require.ErrorAs(t, err, &ue)
}

func TestProtocolFor_NotAnInterface(t *testing.T) {
	var ute *reflectdata.UnsupportedTypeError
	_, err := reflectdata.ProtocolFor(reflect.TypeOf(Employee{}), calcNamer())
	require.ErrorAs(t, err, &ute)

	_, err = reflectdata.ProtocolFor("Calculator", calcNamer())
	require.ErrorAs(t, err, &ute)
}

func TestProtocolFor_UnsupportedParameterAborts(t *testing.T) {
	type Broken interface {
		Oops(s string) error
	}
	bt := reflect.TypeOf((*Broken)(nil)).Elem()
	n := paranamer.NewStatic()
	n.Register(bt, "Oops", "s")

	var ute *reflectdata.UnsupportedTypeError
	_, err := reflectdata.ProtocolFor(bt, n)
	require.ErrorAs(t, err, &ute)
}
