package reflectdata

import (
	"reflect"

	"github.com/dmosorast/avro"
	"github.com/dmosorast/avro/paranamer"
)

// ProtocolFor builds the remote-call protocol described by an interface
// type: one message per method, named after the interface. All messages of
// one call share the protocol's named-type table, so a record used by two
// methods resolves to one schema.
//
// Go has no throws clause, so a method's results are read by convention:
//
//   - a trailing plain error result is the universal remote-call marker; it
//     is covered by avro.SystemError and produces no schema of its own;
//   - every other result implementing error is a declared failure type,
//     appended to the errors union in result order;
//   - the single remaining result, if any, is the response; a method with
//     no such result responds with null.
//
// Parameter names come from the Namer; a nil or failing Namer aborts the
// build with *paranamer.UnavailableError. Parameters are never numbered as
// a fallback.
func ProtocolFor(iface Type, namer paranamer.Namer) (*avro.Protocol, error) {
	it, ok := iface.(reflect.Type)
	if !ok || it.Kind() != reflect.Interface {
		return nil, &UnsupportedTypeError{Type: iface}
	}
	p := avro.NewProtocol(it.Name(), it.PkgPath())
	for i := 0; i < it.NumMethod(); i++ {
		if err := addMessage(p, it, it.Method(i), namer); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func addMessage(p *avro.Protocol, iface reflect.Type, m reflect.Method, namer paranamer.Namer) error {
	names := p.Types()
	ft := m.Type

	if namer == nil {
		return &paranamer.UnavailableError{Interface: iface.Name(), Method: m.Name}
	}
	paramNames, err := namer.ParameterNames(iface, m)
	if err != nil {
		return err
	}
	if len(paramNames) != ft.NumIn() {
		return &paranamer.UnavailableError{Interface: iface.Name(), Method: m.Name}
	}

	fields := make([]avro.Field, 0, ft.NumIn())
	for i := 0; i < ft.NumIn(); i++ {
		ps, err := createSchema(ft.In(i), names)
		if err != nil {
			return err
		}
		fields = append(fields, avro.Field{Name: paramNames[i], Schema: ps})
	}
	request := avro.CreateFieldRecord(fields)

	response := avro.Create(avro.Null)
	haveResponse := false
	errs := []*avro.Schema{avro.SystemError}
	for i := 0; i < ft.NumOut(); i++ {
		out := ft.Out(i)
		if out == errorType {
			continue // universal marker, already covered by the system error
		}
		if out.Implements(errorType) {
			es, err := createSchema(out, names)
			if err != nil {
				return err
			}
			errs = append(errs, es)
			continue
		}
		if haveResponse {
			return &UnsupportedTypeError{Type: ft}
		}
		response, err = createSchema(out, names)
		if err != nil {
			return err
		}
		haveResponse = true
	}

	p.CreateMessage(m.Name, request, response, avro.CreateUnion(errs...))
	return nil
}
