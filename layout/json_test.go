package layout_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/msglayout/layout"
	"github.com/wkalt/msglayout/schema"
)

func testSchema(t *testing.T) *layout.Schema {
	t.Helper()
	ping, err := layout.LayoutMessage("Ping", []schema.Field{schema.NewField("seq", "uint32_t")}, 0)
	require.NoError(t, err)
	telemetry, err := layout.LayoutMessage("Telemetry", []schema.Field{
		schema.NewField("temp", "float"),
		schema.NewField("label", "string"),
		schema.NewField("flags", "uint8_t"),
	}, 1)
	require.NoError(t, err)
	samples, err := layout.LayoutMessage("Samples", []schema.Field{schema.NewField("data", "uint16_t[4]")}, 2)
	require.NoError(t, err)
	return &layout.Schema{Name: "test", Messages: []layout.Message{ping, telemetry, samples}}
}

func TestEncodeDecode(t *testing.T) {
	s := testSchema(t)
	buf := &bytes.Buffer{}
	require.NoError(t, layout.Encode(buf, s))
	require.Contains(t, buf.String(), `"offset": -1`)
	require.Contains(t, buf.String(), `"kind": "array"`)
	require.Contains(t, buf.String(), `"element": "uint16"`)

	decoded, err := layout.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, s, decoded)
}

func TestDecodeRejectsInconsistentLayouts(t *testing.T) {
	cases := []struct {
		assertion string
		tamper    func(s *layout.Schema)
		expected  error
	}{
		{
			"moved offset",
			func(s *layout.Schema) { s.Messages[0].Fields[0].Offset = 2 },
			layout.InconsistentLayoutError{},
		},
		{
			"static offset after a string",
			func(s *layout.Schema) { s.Messages[1].Fields[2].Offset = 6 },
			layout.InconsistentLayoutError{},
		},
		{
			"wrong static size",
			func(s *layout.Schema) { s.Messages[2].StaticSize = 5 },
			layout.InconsistentLayoutError{},
		},
		{
			"wrong max size",
			func(s *layout.Schema) { s.Messages[1].MaxSize = 7 },
			layout.InconsistentLayoutError{},
		},
		{
			"cleared dynamic flag",
			func(s *layout.Schema) { s.Messages[1].HasDynamicFields = false },
			layout.InconsistentLayoutError{},
		},
		{
			"changed field type",
			func(s *layout.Schema) { s.Messages[2].Fields[0].Type = "uint32_t[4]" },
			layout.InconsistentLayoutError{},
		},
		{
			"duplicate type id",
			func(s *layout.Schema) { s.Messages[2].TypeID = 0 },
			layout.DuplicateTypeIDError{},
		},
		{
			"type id out of declaration order",
			func(s *layout.Schema) { s.Messages[0].TypeID = 7 },
			layout.InconsistentLayoutError{},
		},
		{
			"swapped type ids",
			func(s *layout.Schema) {
				s.Messages[0].TypeID = 1
				s.Messages[1].TypeID = 0
			},
			layout.InconsistentLayoutError{},
		},
		{
			"duplicate message name",
			func(s *layout.Schema) { s.Messages[2].Name = "Ping" },
			layout.DuplicateMessageNameError{},
		},
		{
			"empty message name",
			func(s *layout.Schema) { s.Messages[0].Name = "" },
			layout.EmptyNameError{},
		},
		{
			"duplicate field name",
			func(s *layout.Schema) { s.Messages[1].Fields[2].Name = "temp" },
			layout.DuplicateFieldNameError{},
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			s := testSchema(t)
			c.tamper(s)
			require.ErrorIs(t, s.Validate(), c.expected)

			buf := &bytes.Buffer{}
			require.NoError(t, layout.Encode(buf, s))
			decoded, err := layout.Decode(buf)
			require.ErrorIs(t, err, c.expected)
			require.Nil(t, decoded)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		assertion string
		input     string
	}{
		{"not json", "messages"},
		{"unknown kind", `{"messages":[{"name":"A","typeId":0,"fields":[{"name":"a","type":"uint8_t","kind":"blob"}]}]}`},
		{"unknown element", `{"messages":[{"name":"A","typeId":0,"fields":[{"name":"a","type":"uint8_t","kind":"primitive","element":"weird"}]}]}`},
		{"negative static size", `{"messages":[{"name":"A","typeId":0,"fields":[],"staticSize":-1}]}`},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			_, err := layout.Decode(strings.NewReader(c.input))
			require.Error(t, err)
		})
	}
}

func TestSchemaLookups(t *testing.T) {
	s := testSchema(t)

	msg, ok := s.Message("Telemetry")
	require.True(t, ok)
	require.Equal(t, uint8(1), msg.TypeID)

	msg, ok = s.MessageByTypeID(2)
	require.True(t, ok)
	require.Equal(t, "Samples", msg.Name)

	_, ok = s.Message("Missing")
	require.False(t, ok)
	_, ok = s.MessageByTypeID(9)
	require.False(t, ok)

	field, ok := msg.Field("data")
	require.True(t, ok)
	require.Equal(t, 8, field.StaticSize)
	_, ok = msg.Field("missing")
	require.False(t, ok)

	require.Equal(t, 7+255, s.MaxMessageSize())
}
