package layout

import (
	"fmt"

	"github.com/wkalt/msglayout/schema"
)

// Declarations returns the field declarations a laid-out message was built
// from.
func (m Message) Declarations() []schema.Field {
	decls := make([]schema.Field, len(m.Fields))
	for i, f := range m.Fields {
		decls[i] = schema.NewField(f.Name, f.Type)
	}
	return decls
}

// Validate checks the schema-wide uniqueness rules, that every message's type
// identifier equals its position, and that every message matches the layout
// produced by its own field declarations. Models built by the compiler always
// validate; models decoded from elsewhere may not.
func (s *Schema) Validate() error {
	names := make(map[string]struct{}, len(s.Messages))
	ids := make(map[uint8]string, len(s.Messages))
	for i, m := range s.Messages {
		if m.Name == "" {
			return NewEmptyNameError("", i)
		}
		if _, ok := names[m.Name]; ok {
			return NewDuplicateMessageNameError(m.Name)
		}
		names[m.Name] = struct{}{}
		if first, ok := ids[m.TypeID]; ok {
			return NewDuplicateTypeIDError(m.TypeID, first, m.Name)
		}
		ids[m.TypeID] = m.Name
		if int(m.TypeID) != i {
			return NewInconsistentLayoutError(m.Name, "type id %d, expected %d", m.TypeID, i)
		}

		if err := m.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m Message) validate() error {
	expected, err := LayoutMessage(m.Name, m.Declarations(), m.TypeID)
	if err != nil {
		return fmt.Errorf("failed to validate message %s: %w", m.Name, err)
	}
	if m.StaticSize != expected.StaticSize {
		return NewInconsistentLayoutError(m.Name, "static size %d, expected %d", m.StaticSize, expected.StaticSize)
	}
	if m.MaxSize != expected.MaxSize {
		return NewInconsistentLayoutError(m.Name, "max size %d, expected %d", m.MaxSize, expected.MaxSize)
	}
	if m.HasDynamicFields != expected.HasDynamicFields {
		return NewInconsistentLayoutError(m.Name, "dynamic flag %t, expected %t", m.HasDynamicFields, expected.HasDynamicFields)
	}
	for i, f := range m.Fields {
		if f != expected.Fields[i] {
			return NewInconsistentLayoutError(m.Name, "field %s is %+v, expected %+v", f.Name, f, expected.Fields[i])
		}
	}
	return nil
}
