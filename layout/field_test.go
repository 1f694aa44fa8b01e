package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/msglayout/layout"
	"github.com/wkalt/msglayout/schema"
	"github.com/wkalt/msglayout/types"
)

func TestClassifyAndSize(t *testing.T) {
	cases := []struct {
		assertion string
		typ       string
		kind      layout.Kind
		element   types.PrimitiveType
		count     int
		size      int
	}{
		{"string", "string", layout.KindString, 0, 0, 1},
		{"uint8_t", "uint8_t", layout.KindPrimitive, types.UINT8, 1, 1},
		{"bool", "bool", layout.KindPrimitive, types.BOOL, 1, 1},
		{"int16_t", "int16_t", layout.KindPrimitive, types.INT16, 1, 2},
		{"uint32_t", "uint32_t", layout.KindPrimitive, types.UINT32, 1, 4},
		{"float", "float", layout.KindPrimitive, types.FLOAT32, 1, 4},
		{"double", "double", layout.KindPrimitive, types.FLOAT64, 1, 8},
		{"int64_t", "int64_t", layout.KindPrimitive, types.INT64, 1, 8},
		{"canonical name", "float64", layout.KindPrimitive, types.FLOAT64, 1, 8},
		{"uint16 array", "uint16_t[4]", layout.KindFixedArray, types.UINT16, 4, 8},
		{"float array", "float[10]", layout.KindFixedArray, types.FLOAT32, 10, 40},
		{"single element array", "double[1]", layout.KindFixedArray, types.FLOAT64, 1, 8},
		{"leading zeros", "uint8_t[007]", layout.KindFixedArray, types.UINT8, 7, 7},
		{"largest array", "uint8_t[65535]", layout.KindFixedArray, types.UINT8, 65535, 65535},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			field, err := layout.ClassifyAndSize(schema.NewField("f", c.typ))
			require.NoError(t, err)
			require.Equal(t, layout.Field{
				Name:       "f",
				Type:       c.typ,
				Kind:       c.kind,
				Element:    c.element,
				Count:      c.count,
				StaticSize: c.size,
			}, field)
		})
	}
}

func TestClassifyAndSizeErrors(t *testing.T) {
	cases := []struct {
		assertion string
		typ       string
		expected  error
	}{
		{"unknown primitive", "weird_t", types.UnknownPrimitiveTypeError{}},
		{"unknown array element", "weird_t[3]", types.UnknownPrimitiveTypeError{}},
		{"array of strings", "string[3]", types.UnknownPrimitiveTypeError{}},
		{"empty descriptor", "", types.UnknownPrimitiveTypeError{}},
		{"uppercase string", "String", types.UnknownPrimitiveTypeError{}},
		{"padded string", " string", types.UnknownPrimitiveTypeError{}},
		{"unterminated bracket", "uint8_t[4", types.UnknownPrimitiveTypeError{}},
		{"trailing text", "uint8_t[4]x", types.UnknownPrimitiveTypeError{}},
		{"nested array", "uint8_t[4][2]", types.UnknownPrimitiveTypeError{}},
		{"space before bracket", "uint8_t [4]", types.UnknownPrimitiveTypeError{}},
		{"zero count", "uint8_t[0]", layout.InvalidArraySpecError{}},
		{"missing count", "uint8_t[]", layout.InvalidArraySpecError{}},
		{"non-numeric count", "uint8_t[n]", layout.InvalidArraySpecError{}},
		{"negative count", "uint8_t[-1]", layout.InvalidArraySpecError{}},
		{"signed count", "uint8_t[+4]", layout.InvalidArraySpecError{}},
		{"fractional count", "float[1.5]", layout.InvalidArraySpecError{}},
		{"count with suffix", "float[4u]", layout.InvalidArraySpecError{}},
		{"count with spaces", "float[ 4 ]", layout.InvalidArraySpecError{}},
		{"count too large", "uint8_t[65536]", layout.InvalidArraySpecError{}},
		{"count overflows", "uint8_t[99999999999999999999999]", layout.InvalidArraySpecError{}},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			_, err := layout.ClassifyAndSize(schema.NewField("f", c.typ))
			require.ErrorIs(t, err, c.expected)
		})
	}
}

func TestUnknownElementNamesTheElement(t *testing.T) {
	_, err := layout.ClassifyAndSize(schema.NewField("f", "weird_t[3]"))
	var unknown types.UnknownPrimitiveTypeError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "weird_t", unknown.Name)
}
