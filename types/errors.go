package types

import "fmt"

// UnknownPrimitiveTypeError is returned when a type name does not resolve in
// the registry.
type UnknownPrimitiveTypeError struct {
	Name string
}

func (e UnknownPrimitiveTypeError) Error() string {
	return fmt.Sprintf("unknown primitive type %q", e.Name)
}

// Is returns true if the target error is an UnknownPrimitiveTypeError.
func (e UnknownPrimitiveTypeError) Is(target error) bool {
	_, ok := target.(UnknownPrimitiveTypeError)
	return ok
}

func NewUnknownPrimitiveTypeError(name string) error {
	return UnknownPrimitiveTypeError{Name: name}
}
