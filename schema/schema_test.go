package schema_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/wkalt/msglayout/schema"
)

func TestDecodeDocument(t *testing.T) {
	doc := `{
		"name": "messages.yaml",
		"messages": [
			{"name": "Ping", "fields": [{"type": "uint32_t", "name": "seq"}]},
			{"name": "Telemetry", "fields": [
				{"type": "float", "name": "temp"},
				{"type": "string", "name": "label"},
				{"type": "uint8_t", "name": "flags"}
			]}
		]
	}`
	var s schema.Schema
	require.NoError(t, json.Unmarshal([]byte(doc), &s))

	expected := schema.NewSchema("messages.yaml",
		schema.NewMessage("Ping", schema.NewField("seq", "uint32_t")),
		schema.NewMessage("Telemetry",
			schema.NewField("temp", "float"),
			schema.NewField("label", "string"),
			schema.NewField("flags", "uint8_t"),
		),
	)
	require.Equal(t, expected, s)
	require.Equal(t, 4, s.FieldCount())
}

func TestFieldCount(t *testing.T) {
	cases := []struct {
		assertion string
		input     schema.Schema
		expected  int
	}{
		{"empty", schema.NewSchema(""), 0},
		{"message without fields", schema.NewSchema("", schema.NewMessage("Empty")), 0},
		{
			"several messages",
			schema.NewSchema("",
				schema.NewMessage("A", schema.NewField("a", "bool")),
				schema.NewMessage("B", schema.NewField("a", "bool"), schema.NewField("b", "bool")),
			),
			3,
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			require.Equal(t, c.expected, c.input.FieldCount())
		})
	}
}
