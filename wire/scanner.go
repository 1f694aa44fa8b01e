package wire

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/wkalt/msglayout/layout"
	"github.com/wkalt/msglayout/types"
)

/*
Scanners walk the fields of a frame. Each scanner reports its fixed size, or
zero if the size depends on the data, and scans one field from the front of a
byte slice, either decoding it into values or skipping over it. Skipping a fixed
size field never looks at its bytes beyond the bounds check.
*/

////////////////////////////////////////////////////////////////////////////////

type scanner interface {
	FixedSize() int
	Scan(data []byte, values *[]any, decode bool) (int, error)
}

type primitiveScanner struct {
	typ types.PrimitiveType
}

func (s primitiveScanner) FixedSize() int {
	return s.typ.Width()
}

func (s primitiveScanner) Scan(data []byte, values *[]any, decode bool) (int, error) {
	n := s.typ.Width()
	if len(data) < n {
		return 0, ShortReadError{s.typ.String()}
	}
	if decode {
		*values = append(*values, decodePrimitive(s.typ, data))
	}
	return n, nil
}

func decodePrimitive(typ types.PrimitiveType, data []byte) any {
	switch typ {
	case types.UINT8:
		return data[0]
	case types.INT8:
		return int8(data[0])
	case types.BOOL:
		return data[0] != 0
	case types.UINT16:
		return binary.LittleEndian.Uint16(data)
	case types.INT16:
		return int16(binary.LittleEndian.Uint16(data))
	case types.UINT32:
		return binary.LittleEndian.Uint32(data)
	case types.INT32:
		return int32(binary.LittleEndian.Uint32(data))
	case types.FLOAT32:
		return math.Float32frombits(binary.LittleEndian.Uint32(data))
	case types.UINT64:
		return binary.LittleEndian.Uint64(data)
	case types.INT64:
		return int64(binary.LittleEndian.Uint64(data))
	case types.FLOAT64:
		return math.Float64frombits(binary.LittleEndian.Uint64(data))
	default:
		panic(fmt.Sprintf("unknown primitive type: %s", typ))
	}
}

type arrayScanner struct {
	count int
	items primitiveScanner
}

func (a arrayScanner) FixedSize() int {
	return a.count * a.items.FixedSize()
}

func (a arrayScanner) Scan(data []byte, values *[]any, decode bool) (int, error) {
	size := a.FixedSize()
	if len(data) < size {
		return 0, ShortReadError{fmt.Sprintf("%s[%d]", a.items.typ, a.count)}
	}
	if !decode {
		return size, nil
	}
	items := make([]any, 0, a.count)
	offset := 0
	for i := 0; i < a.count; i++ {
		n, err := a.items.Scan(data[offset:], &items, true)
		if err != nil {
			return 0, fmt.Errorf("failed to parse array item: %w", err)
		}
		offset += n
	}
	*values = append(*values, items)
	return offset, nil
}

type stringScanner struct{}

func (s stringScanner) FixedSize() int {
	return 0
}

func (s stringScanner) Scan(data []byte, values *[]any, decode bool) (int, error) {
	if len(data) < 1 {
		return 0, ShortReadError{"string length"}
	}
	l := int(data[0])
	if len(data) < l+1 {
		return 0, ShortReadError{"string"}
	}
	if decode {
		*values = append(*values, string(data[1:1+l]))
	}
	return l + 1, nil
}

func fieldScanner(f layout.Field) scanner {
	switch f.Kind {
	case layout.KindPrimitive:
		return primitiveScanner{typ: f.Element}
	case layout.KindFixedArray:
		return arrayScanner{count: f.Count, items: primitiveScanner{typ: f.Element}}
	case layout.KindString:
		return stringScanner{}
	default:
		panic(fmt.Sprintf("unknown field kind: %s", f.Kind))
	}
}
