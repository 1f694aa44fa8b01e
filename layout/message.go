package layout

import (
	"fmt"

	"github.com/wkalt/msglayout/schema"
)

// LayoutMessage lays out a message's fields in a single pass. The running
// offset starts after the type tag; the first string switches the message into
// dynamic mode, after which every field offset is Dynamic. A string still
// advances the running offset by its length byte, so StaticSize is always the
// tag plus the sum of the field static sizes.
func LayoutMessage(name string, decls []schema.Field, typeID uint8) (Message, error) {
	msg := Message{
		Name:   name,
		TypeID: typeID,
		Fields: make([]Field, 0, len(decls)),
	}
	seen := make(map[string]struct{}, len(decls))
	offset := TagSize
	dynamic := false
	for i, decl := range decls {
		if decl.Name == "" {
			return Message{}, NewEmptyNameError(name, i)
		}
		if _, ok := seen[decl.Name]; ok {
			return Message{}, NewDuplicateFieldNameError(name, decl.Name)
		}
		seen[decl.Name] = struct{}{}

		field, err := ClassifyAndSize(decl)
		if err != nil {
			return Message{}, fmt.Errorf("message %s field %s: %w", name, decl.Name, err)
		}
		if dynamic {
			field.Offset = Dynamic
		} else {
			field.Offset = Offset(offset)
		}
		if field.Kind == KindString {
			dynamic = true
		}
		offset += field.StaticSize
		msg.Fields = append(msg.Fields, field)
	}
	msg.StaticSize = offset
	msg.MaxSize = offset + MaxStringLength*msg.StringFields()
	msg.HasDynamicFields = dynamic
	return msg, nil
}
