package layout

import (
	"fmt"
	"strconv"

	"github.com/wkalt/msglayout/types"
)

/*
The layout model describes where every field of every message sits on the wire.
A message is a 1-byte type tag followed by its fields in declaration order.
Primitives and fixed arrays have a known width. Strings are a 1-byte length
followed by that many bytes, so only the length byte has a static size.

Offsets are static until the first string in a message. The string's own length
byte still has a static offset, but every field after it depends on the runtime
length of the string and is marked Dynamic. This is a one-way transition within
a message and resets for the next one.
*/

////////////////////////////////////////////////////////////////////////////////

const (
	// TagSize is the size of the message type tag that precedes every message.
	TagSize = 1

	// MaxStringLength is the largest payload a length-prefixed string can carry.
	MaxStringLength = 255

	// MaxArrayCount bounds the element count of fixed-length arrays.
	MaxArrayCount = 65535
)

// Kind is the field kind.
type Kind uint8

const (
	KindPrimitive Kind = iota + 1
	KindFixedArray
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindFixedArray:
		return "array"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// MarshalJSON returns the JSON representation of the kind.
func (k Kind) MarshalJSON() ([]byte, error) {
	switch k {
	case KindPrimitive, KindFixedArray, KindString:
		return []byte(strconv.Quote(k.String())), nil
	default:
		return nil, fmt.Errorf("invalid field kind: %d", k)
	}
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"primitive"`:
		*k = KindPrimitive
	case `"array"`:
		*k = KindFixedArray
	case `"string"`:
		*k = KindString
	default:
		return fmt.Errorf("unknown field kind: %s", data)
	}
	return nil
}

// Offset is a byte offset from the start of a message, including the type tag.
// The value Dynamic means the offset depends on runtime data, and is encoded
// as -1 in the JSON form of the model.
type Offset int

// Dynamic is the sentinel for offsets that cannot be computed statically.
const Dynamic Offset = -1

// IsDynamic returns true if the offset is the dynamic sentinel.
func (o Offset) IsDynamic() bool {
	return o == Dynamic
}

func (o Offset) String() string {
	if o.IsDynamic() {
		return "dynamic"
	}
	return strconv.Itoa(int(o))
}

// Field is a laid-out field. Element is unset for strings. Count is 1 for
// primitives, the element count for arrays and 0 for strings.
type Field struct {
	Name       string              `json:"name"`
	Type       string              `json:"type"`
	Kind       Kind                `json:"kind"`
	Element    types.PrimitiveType `json:"element,omitempty"`
	Count      int                 `json:"count"`
	StaticSize int                 `json:"staticSize"`
	Offset     Offset              `json:"offset"`
}

// Message is a laid-out message.
type Message struct {
	Name             string  `json:"name"`
	TypeID           uint8   `json:"typeId"`
	Fields           []Field `json:"fields"`
	StaticSize       int     `json:"staticSize"`
	MaxSize          int     `json:"maxSize"`
	HasDynamicFields bool    `json:"hasDynamicFields"`
}

// Field returns the named field.
func (m Message) Field(name string) (Field, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// StringFields returns the number of length-prefixed string fields.
func (m Message) StringFields() int {
	n := 0
	for _, f := range m.Fields {
		if f.Kind == KindString {
			n++
		}
	}
	return n
}

// Schema is a laid-out schema. Messages are in declaration order, so the
// index of a message equals its type identifier.
type Schema struct {
	Name     string    `json:"name,omitempty"`
	Messages []Message `json:"messages"`
}

// Message returns the named message.
func (s *Schema) Message(name string) (Message, bool) {
	for _, m := range s.Messages {
		if m.Name == name {
			return m, true
		}
	}
	return Message{}, false
}

// MessageByTypeID returns the message with the given type identifier.
func (s *Schema) MessageByTypeID(id uint8) (Message, bool) {
	for _, m := range s.Messages {
		if m.TypeID == id {
			return m, true
		}
	}
	return Message{}, false
}

// MaxMessageSize returns the worst-case encoded size of any message in the
// schema, suitable for sizing a receive buffer.
func (s *Schema) MaxMessageSize() int {
	size := 0
	for _, m := range s.Messages {
		size = max(size, m.MaxSize)
	}
	return size
}
