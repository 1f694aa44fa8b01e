package types

import (
	"fmt"
)

/*
Package types is the registry of primitive field types. Every primitive a schema
can reference has exactly one fixed byte width. Schemas spell primitives either
with their C names (uint32_t, float, double) or with the canonical names used
in the layout model (uint32, float32, float64); both resolve to the same
PrimitiveType.

There is no fallback width. A name that does not resolve is an
UnknownPrimitiveTypeError and the enclosing compilation fails.
*/

////////////////////////////////////////////////////////////////////////////////

// PrimitiveType is an enumeration of the primitive types. The zero value is
// not a valid type.
type PrimitiveType int

const (
	UINT8 PrimitiveType = iota + 1
	INT8
	BOOL
	UINT16
	INT16
	UINT32
	INT32
	FLOAT32
	UINT64
	INT64
	FLOAT64
)

// nolint:gochecknoglobals
var primitiveTypes = map[string]PrimitiveType{
	"uint8_t":  UINT8,
	"int8_t":   INT8,
	"bool":     BOOL,
	"uint16_t": UINT16,
	"int16_t":  INT16,
	"uint32_t": UINT32,
	"int32_t":  INT32,
	"float":    FLOAT32,
	"uint64_t": UINT64,
	"int64_t":  INT64,
	"double":   FLOAT64,

	"uint8":   UINT8,
	"int8":    INT8,
	"uint16":  UINT16,
	"int16":   INT16,
	"uint32":  UINT32,
	"int32":   INT32,
	"float32": FLOAT32,
	"uint64":  UINT64,
	"int64":   INT64,
	"float64": FLOAT64,
}

// All returns every primitive type in registry order.
func All() []PrimitiveType {
	return []PrimitiveType{
		UINT8, INT8, BOOL, UINT16, INT16, UINT32, INT32, FLOAT32, UINT64, INT64, FLOAT64,
	}
}

// Resolve looks up a primitive type by name.
func Resolve(name string) (PrimitiveType, error) {
	p, ok := primitiveTypes[name]
	if !ok {
		return 0, NewUnknownPrimitiveTypeError(name)
	}
	return p, nil
}

// WidthOf returns the byte width of the named primitive type.
func WidthOf(name string) (int, error) {
	p, err := Resolve(name)
	if err != nil {
		return 0, err
	}
	return p.Width(), nil
}

// Width returns the number of bytes the type occupies on the wire. It returns
// zero for values outside the enumeration.
func (p PrimitiveType) Width() int {
	switch p {
	case UINT8, INT8, BOOL:
		return 1
	case UINT16, INT16:
		return 2
	case UINT32, INT32, FLOAT32:
		return 4
	case UINT64, INT64, FLOAT64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether p is a member of the enumeration.
func (p PrimitiveType) Valid() bool {
	return p.Width() > 0
}

func (p PrimitiveType) String() string {
	switch p {
	case UINT8:
		return "uint8"
	case INT8:
		return "int8"
	case BOOL:
		return "bool"
	case UINT16:
		return "uint16"
	case INT16:
		return "int16"
	case UINT32:
		return "uint32"
	case INT32:
		return "int32"
	case FLOAT32:
		return "float32"
	case UINT64:
		return "uint64"
	case INT64:
		return "int64"
	case FLOAT64:
		return "float64"
	default:
		return "unknown"
	}
}

// CName returns the C spelling of the type, as used by generated headers.
func (p PrimitiveType) CName() string {
	switch p {
	case UINT8:
		return "uint8_t"
	case INT8:
		return "int8_t"
	case BOOL:
		return "bool"
	case UINT16:
		return "uint16_t"
	case INT16:
		return "int16_t"
	case UINT32:
		return "uint32_t"
	case INT32:
		return "int32_t"
	case FLOAT32:
		return "float"
	case UINT64:
		return "uint64_t"
	case INT64:
		return "int64_t"
	case FLOAT64:
		return "double"
	default:
		return "unknown"
	}
}

// MarshalJSON returns the JSON representation of the primitive type. The zero
// value encodes as null.
func (p PrimitiveType) MarshalJSON() ([]byte, error) {
	if p == 0 {
		return []byte("null"), nil
	}
	if !p.Valid() {
		return nil, fmt.Errorf("invalid primitive type: %d", int(p))
	}
	return []byte(fmt.Sprintf(`"%s"`, p.String())), nil
}

// UnmarshalJSON accepts any spelling Resolve accepts.
func (p *PrimitiveType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = 0
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid primitive type: %s", data)
	}
	resolved, err := Resolve(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*p = resolved
	return nil
}
