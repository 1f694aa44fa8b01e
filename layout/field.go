package layout

import (
	"fmt"
	"strconv"

	"github.com/wkalt/msglayout/schema"
	"github.com/wkalt/msglayout/types"
)

// stringType is the only descriptor that selects a length-prefixed string.
const stringType = "string"

// ClassifyAndSize determines the kind and static size of a field declaration.
// The returned field has a zero offset; offsets depend on the preceding fields
// and are assigned by LayoutMessage.
func ClassifyAndSize(decl schema.Field) (Field, error) {
	field := Field{
		Name: decl.Name,
		Type: decl.Type,
	}

	if decl.Type == stringType {
		field.Kind = KindString
		field.StaticSize = 1
		return field, nil
	}

	if element, count, ok := parseArrayDescriptor(decl.Type); ok {
		n, err := parseArrayCount(decl.Type, count)
		if err != nil {
			return Field{}, err
		}
		p, err := types.Resolve(element)
		if err != nil {
			return Field{}, err
		}
		field.Kind = KindFixedArray
		field.Element = p
		field.Count = n
		field.StaticSize = p.Width() * n
		return field, nil
	}

	p, err := types.Resolve(decl.Type)
	if err != nil {
		return Field{}, err
	}
	field.Kind = KindPrimitive
	field.Element = p
	field.Count = 1
	field.StaticSize = p.Width()
	return field, nil
}

func parseArrayCount(typ string, count string) (int, error) {
	if count == "" {
		return 0, NewInvalidArraySpecError(typ, "missing element count")
	}
	for _, c := range count {
		if c < '0' || c > '9' {
			return 0, NewInvalidArraySpecError(typ, fmt.Sprintf("count %q is not a number", count))
		}
	}
	n, err := strconv.Atoi(count)
	if err != nil || n > MaxArrayCount {
		return 0, NewInvalidArraySpecError(typ, fmt.Sprintf("count %s exceeds %d", count, MaxArrayCount))
	}
	if n == 0 {
		return 0, NewInvalidArraySpecError(typ, "count must be positive")
	}
	return n, nil
}
