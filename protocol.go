package avro

import (
	"sort"

	json "github.com/goccy/go-json"
)

// SystemError is the schema of the generic remote-call failure. Every
// message's error union carries it as its first member, so any call can
// report a transport or server failure even when it declares no failure
// types of its own.
var SystemError = Create(String)

// Message is one remote-call signature of a Protocol: a request record whose
// fields are the call parameters, a response schema, and a union of error
// schemas.
type Message struct {
	name     string
	request  *Schema
	response *Schema
	errors   *Schema
}

// Name returns the message name.
func (m *Message) Name() string { return m.name }

// Request returns the request record.
func (m *Message) Request() *Schema { return m.request }

// Response returns the response schema.
func (m *Message) Response() *Schema { return m.response }

// Errors returns the error union.
func (m *Message) Errors() *Schema { return m.errors }

// Protocol is a named bundle of messages plus the named auxiliary types
// (records and errors) their schemas reference.
type Protocol struct {
	name      string
	namespace string
	types     map[string]*Schema
	messages  []*Message
	msgIdx    map[string]int
}

// NewProtocol returns an empty protocol with the given name and namespace.
func NewProtocol(name, namespace string) *Protocol {
	return &Protocol{
		name:      name,
		namespace: namespace,
		types:     map[string]*Schema{},
		msgIdx:    map[string]int{},
	}
}

// Name returns the protocol name.
func (p *Protocol) Name() string { return p.name }

// Namespace returns the protocol namespace.
func (p *Protocol) Namespace() string { return p.namespace }

// Types returns the protocol's named-type table. The map is live: schema
// construction for the protocol's messages records every named schema it
// resolves here, which is how types shared across messages resolve to one
// schema.
func (p *Protocol) Types() map[string]*Schema { return p.types }

// Messages returns the protocol's messages in insertion order.
func (p *Protocol) Messages() []*Message { return p.messages }

// Message returns the named message, or nil when absent.
func (p *Protocol) Message(name string) *Message {
	i, ok := p.msgIdx[name]
	if !ok {
		return nil
	}
	return p.messages[i]
}

// CreateMessage builds a message and registers it on the protocol. Adding a
// message under an existing name replaces it in place, preserving order.
func (p *Protocol) CreateMessage(name string, request, response, errors *Schema) *Message {
	m := &Message{name: name, request: request, response: response, errors: errors}
	if i, ok := p.msgIdx[name]; ok {
		p.messages[i] = m
		return m
	}
	p.msgIdx[name] = len(p.messages)
	p.messages = append(p.messages, m)
	return m
}

type jsonMessage struct {
	Request  []jsonField `json:"request"`
	Response any         `json:"response"`
	Errors   any         `json:"errors,omitempty"`
}

// MarshalJSON renders the protocol definition: named types in full first,
// then messages referring back to them by name.
func (p *Protocol) MarshalJSON() ([]byte, error) {
	seen := map[string]bool{}

	names := make([]string, 0, len(p.types))
	for n := range p.types {
		names = append(names, n)
	}
	sort.Strings(names)
	types := make([]any, 0, len(names))
	for _, n := range names {
		types = append(types, p.types[n].jsonValue(seen))
	}

	messages := make(map[string]jsonMessage, len(p.messages))
	for _, m := range p.messages {
		jm := jsonMessage{
			Request:  make([]jsonField, 0, len(m.request.Fields())),
			Response: m.response.jsonValue(seen),
		}
		for _, f := range m.request.Fields() {
			jm.Request = append(jm.Request, jsonField{Name: f.Name, Type: f.Schema.jsonValue(seen)})
		}
		if m.errors != nil {
			jm.Errors = m.errors.jsonValue(seen)
		}
		messages[m.name] = jm
	}

	return json.Marshal(struct {
		Protocol  string                 `json:"protocol"`
		Namespace string                 `json:"namespace,omitempty"`
		Types     []any                  `json:"types"`
		Messages  map[string]jsonMessage `json:"messages"`
	}{p.name, p.namespace, types, messages})
}

// String returns the JSON definition of the protocol.
func (p *Protocol) String() string {
	b, err := p.MarshalJSON()
	if err != nil {
		return "<invalid protocol: " + err.Error() + ">"
	}
	return string(b)
}
