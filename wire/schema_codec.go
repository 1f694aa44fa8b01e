package wire

import (
	"fmt"

	"github.com/wkalt/msglayout/layout"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

////////////////////////////////////////////////////////////////////////////////

// SchemaCodec dispatches frames to the codec of the message named by their
// type tag.
type SchemaCodec struct {
	byID   map[uint8]*Codec
	byName map[string]*Codec
}

// NewSchemaCodec builds a codec for every message in the schema.
func NewSchemaCodec(s *layout.Schema) *SchemaCodec {
	sc := &SchemaCodec{
		byID:   make(map[uint8]*Codec, len(s.Messages)),
		byName: make(map[string]*Codec, len(s.Messages)),
	}
	for _, msg := range s.Messages {
		c := NewCodec(msg)
		sc.byID[msg.TypeID] = c
		sc.byName[msg.Name] = c
	}
	return sc
}

// Codec returns the codec for a message by name.
func (sc *SchemaCodec) Codec(name string) (*Codec, bool) {
	c, ok := sc.byName[name]
	return c, ok
}

// Names returns the names of the messages the codec handles, sorted.
func (sc *SchemaCodec) Names() []string {
	names := maps.Keys(sc.byName)
	slices.Sort(names)
	return names
}

// Decode decodes a frame of any message in the schema.
func (sc *SchemaCodec) Decode(data []byte) (layout.Message, []any, error) {
	typeID, err := PeekType(data)
	if err != nil {
		return layout.Message{}, nil, err
	}
	c, ok := sc.byID[typeID]
	if !ok {
		return layout.Message{}, nil, UnknownTypeIDError{TypeID: typeID}
	}
	values, err := c.Decode(data)
	if err != nil {
		return layout.Message{}, nil, fmt.Errorf("failed to decode %s: %w", c.msg.Name, err)
	}
	return c.msg, values, nil
}
