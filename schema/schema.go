package schema

/*
Schema is the parsed form of a message schema as handed to the compiler. It is
the boundary with whatever reads schema documents: a schema is an ordered list
of messages, and a message is an ordered list of fields, each with a name and a
type descriptor string such as "uint32_t", "float[3]" or "string".

Nothing here is validated. Names, uniqueness and type descriptors are checked
by the compiler, which reports the offending message and field.
*/

////////////////////////////////////////////////////////////////////////////////

// Field is a single field declaration.
type Field struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Message is a message declaration. Message order within a schema determines
// the message's type identifier.
type Message struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Schema is an ordered list of message declarations. Name is optional and
// only used to label diagnostics, typically with the source file name.
type Schema struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// NewField constructs a field declaration.
func NewField(name string, typ string) Field {
	return Field{Name: name, Type: typ}
}

// NewMessage constructs a message declaration.
func NewMessage(name string, fields ...Field) Message {
	return Message{Name: name, Fields: fields}
}

// NewSchema constructs a schema from message declarations.
func NewSchema(name string, messages ...Message) Schema {
	return Schema{Name: name, Messages: messages}
}

// FieldCount returns the total number of fields across all messages.
func (s Schema) FieldCount() int {
	n := 0
	for _, m := range s.Messages {
		n += len(m.Fields)
	}
	return n
}
