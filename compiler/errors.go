package compiler

import "fmt"

// TooManyMessagesError is returned when a schema declares more messages than
// a 1-byte type tag can distinguish.
type TooManyMessagesError struct {
	Count int
}

func (e TooManyMessagesError) Error() string {
	return fmt.Sprintf("schema declares %d messages, at most %d are supported", e.Count, maxMessages)
}

// Is returns true if the target error is a TooManyMessagesError.
func (e TooManyMessagesError) Is(target error) bool {
	_, ok := target.(TooManyMessagesError)
	return ok
}

// PayloadLimitError is returned when a message's static size exceeds the
// configured payload limit.
type PayloadLimitError struct {
	Message string
	Size    int
	Limit   int
}

func (e PayloadLimitError) Error() string {
	return fmt.Sprintf("message %s needs %d bytes, limit is %d", e.Message, e.Size, e.Limit)
}

// Is returns true if the target error is a PayloadLimitError.
func (e PayloadLimitError) Is(target error) bool {
	_, ok := target.(PayloadLimitError)
	return ok
}

// InvalidIdentifierError is returned by the identifier check for a message or
// field name that cannot be used as an identifier.
type InvalidIdentifierError struct {
	Name string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%q is not a valid identifier", e.Name)
}

// Is returns true if the target error is an InvalidIdentifierError.
func (e InvalidIdentifierError) Is(target error) bool {
	_, ok := target.(InvalidIdentifierError)
	return ok
}
