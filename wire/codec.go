package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/wkalt/msglayout/layout"
	"github.com/wkalt/msglayout/types"
)

/*
Codec reads and writes frames for one laid-out message. A frame is the type tag
followed by the fields in declaration order, little-endian, with strings as a
1-byte length and the raw bytes.

Field reads use the two access modes generated code is expected to use: fields
with a static offset are read in place, and fields after a string are found by
scanning from the start of the frame with a running cursor.

Decoded values use the natural Go type of each primitive (uint8, int16,
float32, ...). Arrays decode to []any and strings to string. Encode expects the
same shapes.
*/

////////////////////////////////////////////////////////////////////////////////

// Codec encodes and decodes frames of a single message. It is safe for
// concurrent use.
type Codec struct {
	msg      layout.Message
	scanners []scanner
	index    map[string]int
}

// NewCodec returns a codec for the message.
func NewCodec(msg layout.Message) *Codec {
	c := &Codec{
		msg:      msg,
		scanners: make([]scanner, len(msg.Fields)),
		index:    make(map[string]int, len(msg.Fields)),
	}
	for i, f := range msg.Fields {
		c.scanners[i] = fieldScanner(f)
		c.index[f.Name] = i
	}
	return c
}

// Message returns the layout the codec was built from.
func (c *Codec) Message() layout.Message {
	return c.msg
}

// PeekType returns the type tag of a frame.
func PeekType(data []byte) (uint8, error) {
	if len(data) < layout.TagSize {
		return 0, ShortReadError{"message type"}
	}
	return data[0], nil
}

func (c *Codec) checkType(data []byte) error {
	typeID, err := PeekType(data)
	if err != nil {
		return err
	}
	if typeID != c.msg.TypeID {
		return TypeMismatchError{Expected: c.msg.TypeID, Found: typeID}
	}
	return nil
}

// Decode returns the values of every field in the frame.
func (c *Codec) Decode(data []byte) ([]any, error) {
	if err := c.checkType(data); err != nil {
		return nil, err
	}
	values := make([]any, 0, len(c.scanners))
	offset := layout.TagSize
	for i, s := range c.scanners {
		n, err := s.Scan(data[offset:], &values, true)
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %s: %w", c.msg.Fields[i].Name, err)
		}
		offset += n
	}
	if offset != len(data) {
		return nil, TrailingDataError{Count: len(data) - offset}
	}
	return values, nil
}

// Offsets returns the runtime offset of every field in the frame. For fields
// with a static offset the result equals the layout offset.
func (c *Codec) Offsets(data []byte) ([]int, error) {
	if err := c.checkType(data); err != nil {
		return nil, err
	}
	offsets := make([]int, len(c.scanners))
	offset := layout.TagSize
	for i, s := range c.scanners {
		offsets[i] = offset
		n, err := s.Scan(data[offset:], nil, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan field %s: %w", c.msg.Fields[i].Name, err)
		}
		offset += n
	}
	return offsets, nil
}

// Field decodes a single field by name.
func (c *Codec) Field(data []byte, name string) (any, error) {
	i, ok := c.index[name]
	if !ok {
		names := make([]string, len(c.msg.Fields))
		for j, f := range c.msg.Fields {
			names[j] = f.Name
		}
		return nil, FieldNotFoundError{Field: name, Fields: names}
	}
	if err := c.checkType(data); err != nil {
		return nil, err
	}

	offset := int(c.msg.Fields[i].Offset)
	if c.msg.Fields[i].Offset.IsDynamic() {
		offset = layout.TagSize
		for j := 0; j < i; j++ {
			n, err := c.scanners[j].Scan(data[offset:], nil, false)
			if err != nil {
				return nil, fmt.Errorf("failed to scan field %s: %w", c.msg.Fields[j].Name, err)
			}
			offset += n
		}
	}
	if offset > len(data) {
		return nil, ShortReadError{name}
	}
	values := make([]any, 0, 1)
	if _, err := c.scanners[i].Scan(data[offset:], &values, true); err != nil {
		return nil, fmt.Errorf("failed to decode field %s: %w", name, err)
	}
	return values[0], nil
}

// Encode builds a frame from one value per field, in declaration order.
func (c *Codec) Encode(values ...any) ([]byte, error) {
	if len(values) != len(c.msg.Fields) {
		return nil, ValueError{Reason: fmt.Sprintf("%s expects %d values, got %d", c.msg.Name, len(c.msg.Fields), len(values))}
	}
	buf := make([]byte, 0, c.msg.StaticSize)
	buf = append(buf, c.msg.TypeID)
	var err error
	for i, f := range c.msg.Fields {
		buf, err = appendField(buf, f, values[i])
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func appendField(buf []byte, f layout.Field, value any) ([]byte, error) {
	switch f.Kind {
	case layout.KindPrimitive:
		return appendPrimitive(buf, f, value)
	case layout.KindFixedArray:
		items, ok := value.([]any)
		if !ok {
			return nil, ValueError{Field: f.Name, Reason: fmt.Sprintf("expected []any, got %T", value)}
		}
		if len(items) != f.Count {
			return nil, ValueError{Field: f.Name, Reason: fmt.Sprintf("expected %d elements, got %d", f.Count, len(items))}
		}
		var err error
		for _, item := range items {
			buf, err = appendPrimitive(buf, f, item)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	case layout.KindString:
		s, ok := value.(string)
		if !ok {
			return nil, ValueError{Field: f.Name, Reason: fmt.Sprintf("expected string, got %T", value)}
		}
		if len(s) > layout.MaxStringLength {
			return nil, StringTooLongError{Field: f.Name, Length: len(s)}
		}
		buf = append(buf, byte(len(s)))
		return append(buf, s...), nil
	default:
		return nil, ValueError{Field: f.Name, Reason: fmt.Sprintf("unknown field kind %s", f.Kind)}
	}
}

func appendPrimitive(buf []byte, f layout.Field, value any) ([]byte, error) {
	typ := f.Element
	mismatch := ValueError{Field: f.Name, Reason: fmt.Sprintf("expected %s, got %T", typ, value)}
	switch typ {
	case types.UINT8:
		v, ok := value.(uint8)
		if !ok {
			return nil, mismatch
		}
		return append(buf, v), nil
	case types.INT8:
		v, ok := value.(int8)
		if !ok {
			return nil, mismatch
		}
		return append(buf, byte(v)), nil
	case types.BOOL:
		v, ok := value.(bool)
		if !ok {
			return nil, mismatch
		}
		if v {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	case types.UINT16:
		v, ok := value.(uint16)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint16(buf, v), nil
	case types.INT16:
		v, ok := value.(int16)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint16(buf, uint16(v)), nil
	case types.UINT32:
		v, ok := value.(uint32)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint32(buf, v), nil
	case types.INT32:
		v, ok := value.(int32)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint32(buf, uint32(v)), nil
	case types.FLOAT32:
		v, ok := value.(float32)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v)), nil
	case types.UINT64:
		v, ok := value.(uint64)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint64(buf, v), nil
	case types.INT64:
		v, ok := value.(int64)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint64(buf, uint64(v)), nil
	case types.FLOAT64:
		v, ok := value.(float64)
		if !ok {
			return nil, mismatch
		}
		return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)), nil
	default:
		return nil, ValueError{Field: f.Name, Reason: fmt.Sprintf("unknown primitive type %s", typ)}
	}
}
