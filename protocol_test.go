package avro_test

import (
	"strings"
	"testing"

	"github.com/dmosorast/avro"
)

func TestProtocol_MessageOrderAndReplace(t *testing.T) {
	p := avro.NewProtocol("Calc", "example")
	null := avro.Create(avro.Null)
	errs := avro.CreateUnion(avro.SystemError)

	p.CreateMessage("add", avro.CreateFieldRecord(nil), avro.Create(avro.Long), errs)
	p.CreateMessage("ping", avro.CreateFieldRecord(nil), null, errs)

	msgs := p.Messages()
	if len(msgs) != 2 || msgs[0].Name() != "add" || msgs[1].Name() != "ping" {
		t.Fatalf("unexpected message order: %v", msgs)
	}

	// Re-adding under the same name replaces in place.
	p.CreateMessage("add", avro.CreateFieldRecord(nil), avro.Create(avro.Double), errs)
	msgs = p.Messages()
	if len(msgs) != 2 || msgs[0].Name() != "add" {
		t.Fatalf("replace broke ordering: %v", msgs)
	}
	if p.Message("add").Response().Type() != avro.Double {
		t.Fatalf("replace did not take effect")
	}
	if p.Message("absent") != nil {
		t.Fatalf("Message(absent) should be nil")
	}
}

func TestProtocol_SystemError(t *testing.T) {
	if avro.SystemError.Type() != avro.String {
		t.Fatalf("SystemError = %v, want string", avro.SystemError.Type())
	}
}

func TestProtocol_JSON(t *testing.T) {
	p := avro.NewProtocol("Calc", "example")

	overflow := avro.CreateRecord("Overflow", "example", true)
	overflow.SetFields([]avro.Field{{Name: "Message", Schema: avro.Create(avro.String)}})
	p.Types()["Overflow"] = overflow

	req := avro.CreateFieldRecord([]avro.Field{
		{Name: "a", Schema: avro.Create(avro.Int)},
		{Name: "b", Schema: avro.Create(avro.Int)},
	})
	p.CreateMessage("add", req, avro.Create(avro.Long),
		avro.CreateUnion(avro.SystemError, overflow))

	got := p.String()
	for _, want := range []string{
		`"protocol":"Calc"`,
		`"namespace":"example"`,
		`{"type":"error","name":"Overflow","namespace":"example","fields":[{"name":"Message","type":"string"}]}`,
		`"request":[{"name":"a","type":"int"},{"name":"b","type":"int"}]`,
		`"response":"long"`,
		`"errors":["string","Overflow"]`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("protocol JSON missing %s:\n%s", want, got)
		}
	}
}
