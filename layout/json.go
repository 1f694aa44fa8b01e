package layout

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

/*
JSON form of the layout model. This is the hand-off format between the compiler
and code emitters that run out of process. Decode validates the model, so an
emitter reading it never sees offsets that disagree with the field types.
*/

////////////////////////////////////////////////////////////////////////////////

// Encode writes the JSON form of the schema to w.
func Encode(w io.Writer, s *Schema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}
	return nil
}

// Decode reads and validates a schema layout from r.
func Decode(r io.Reader) (*Schema, error) {
	s := &Schema{}
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return s, nil
}
