package layout

import "fmt"

/*
Errors that can be returned by the layout package. Every error aborts layout of
the enclosing schema. Field-level errors are wrapped with the message and field
name, so callers should match with errors.Is or errors.As.
*/

////////////////////////////////////////////////////////////////////////////////

// InvalidArraySpecError is returned when an array descriptor has a count that
// is not a positive integer literal.
type InvalidArraySpecError struct {
	Type   string
	Reason string
}

func (e InvalidArraySpecError) Error() string {
	return fmt.Sprintf("invalid array spec %q: %s", e.Type, e.Reason)
}

// Is returns true if the target error is an InvalidArraySpecError.
func (e InvalidArraySpecError) Is(target error) bool {
	_, ok := target.(InvalidArraySpecError)
	return ok
}

func NewInvalidArraySpecError(typ string, reason string) error {
	return InvalidArraySpecError{Type: typ, Reason: reason}
}

// DuplicateFieldNameError is returned when two fields in a message share a
// name.
type DuplicateFieldNameError struct {
	Message string
	Field   string
}

func (e DuplicateFieldNameError) Error() string {
	return fmt.Sprintf("duplicate field %q in message %s", e.Field, e.Message)
}

// Is returns true if the target error is a DuplicateFieldNameError.
func (e DuplicateFieldNameError) Is(target error) bool {
	_, ok := target.(DuplicateFieldNameError)
	return ok
}

func NewDuplicateFieldNameError(message string, field string) error {
	return DuplicateFieldNameError{Message: message, Field: field}
}

// DuplicateMessageNameError is returned when two messages in a schema share a
// name.
type DuplicateMessageNameError struct {
	Name string
}

func (e DuplicateMessageNameError) Error() string {
	return fmt.Sprintf("duplicate message %q", e.Name)
}

// Is returns true if the target error is a DuplicateMessageNameError.
func (e DuplicateMessageNameError) Is(target error) bool {
	_, ok := target.(DuplicateMessageNameError)
	return ok
}

func NewDuplicateMessageNameError(name string) error {
	return DuplicateMessageNameError{Name: name}
}

// DuplicateTypeIDError is returned when two messages in a schema share a type
// identifier.
type DuplicateTypeIDError struct {
	TypeID uint8
	First  string
	Second string
}

func (e DuplicateTypeIDError) Error() string {
	return fmt.Sprintf("type id %d assigned to both %s and %s", e.TypeID, e.First, e.Second)
}

// Is returns true if the target error is a DuplicateTypeIDError.
func (e DuplicateTypeIDError) Is(target error) bool {
	_, ok := target.(DuplicateTypeIDError)
	return ok
}

func NewDuplicateTypeIDError(id uint8, first string, second string) error {
	return DuplicateTypeIDError{TypeID: id, First: first, Second: second}
}

// EmptyNameError is returned for a message or field without a name. Message is
// empty when the message itself is unnamed.
type EmptyNameError struct {
	Message string
	Index   int
}

func (e EmptyNameError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("message %d has no name", e.Index)
	}
	return fmt.Sprintf("field %d of message %s has no name", e.Index, e.Message)
}

// Is returns true if the target error is an EmptyNameError.
func (e EmptyNameError) Is(target error) bool {
	_, ok := target.(EmptyNameError)
	return ok
}

func NewEmptyNameError(message string, index int) error {
	return EmptyNameError{Message: message, Index: index}
}

// InconsistentLayoutError is returned by Validate when a layout model does not
// match the layout its own field declarations produce.
type InconsistentLayoutError struct {
	Message string
	Detail  string
}

func (e InconsistentLayoutError) Error() string {
	return fmt.Sprintf("inconsistent layout for message %s: %s", e.Message, e.Detail)
}

// Is returns true if the target error is an InconsistentLayoutError.
func (e InconsistentLayoutError) Is(target error) bool {
	_, ok := target.(InconsistentLayoutError)
	return ok
}

func NewInconsistentLayoutError(message string, format string, args ...any) error {
	return InconsistentLayoutError{Message: message, Detail: fmt.Sprintf(format, args...)}
}
