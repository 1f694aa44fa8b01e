package wire

import (
	"fmt"
	"strings"
)

// ShortReadError is returned when a frame ends inside a field.
type ShortReadError struct {
	what string
}

func (e ShortReadError) Error() string {
	return "short read on " + e.what
}

func (e ShortReadError) Is(err error) bool {
	_, ok := err.(ShortReadError)
	return ok
}

// TypeMismatchError is returned when a frame's type tag does not match the
// message a codec was built for.
type TypeMismatchError struct {
	Expected uint8
	Found    uint8
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("expected message type %d but found %d", e.Expected, e.Found)
}

func (e TypeMismatchError) Is(err error) bool {
	_, ok := err.(TypeMismatchError)
	return ok
}

// UnknownTypeIDError is returned when a frame's type tag does not name any
// message in the schema.
type UnknownTypeIDError struct {
	TypeID uint8
}

func (e UnknownTypeIDError) Error() string {
	return fmt.Sprintf("unknown message type %d", e.TypeID)
}

func (e UnknownTypeIDError) Is(err error) bool {
	_, ok := err.(UnknownTypeIDError)
	return ok
}

// StringTooLongError is returned when a string value does not fit behind a
// 1-byte length prefix.
type StringTooLongError struct {
	Field  string
	Length int
}

func (e StringTooLongError) Error() string {
	return fmt.Sprintf("string field %s is %d bytes, at most 255 are supported", e.Field, e.Length)
}

func (e StringTooLongError) Is(err error) bool {
	_, ok := err.(StringTooLongError)
	return ok
}

// ValueError is returned when a value supplied for encoding does not match
// its field.
type ValueError struct {
	Field  string
	Reason string
}

func (e ValueError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

func (e ValueError) Is(err error) bool {
	_, ok := err.(ValueError)
	return ok
}

// TrailingDataError is returned when a frame continues past its last field.
type TrailingDataError struct {
	Count int
}

func (e TrailingDataError) Error() string {
	return fmt.Sprintf("%d trailing bytes after last field", e.Count)
}

func (e TrailingDataError) Is(err error) bool {
	_, ok := err.(TrailingDataError)
	return ok
}

// FieldNotFoundError is returned when a field is requested by a name the
// message does not have.
type FieldNotFoundError struct {
	Field  string
	Fields []string
}

func (e FieldNotFoundError) Error() string {
	sb := &strings.Builder{}
	sb.WriteString(fmt.Sprintf("field %s not found", e.Field))
	if len(e.Fields) > 0 {
		sb.WriteString(", available fields: ")
		sb.WriteString(strings.Join(e.Fields, ", "))
	}
	return sb.String()
}

func (e FieldNotFoundError) Is(err error) bool {
	_, ok := err.(FieldNotFoundError)
	return ok
}
