package enumcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownName is matched by errors for text that names no member.
	ErrUnknownName = errors.New("unknown enumeration name")

	// ErrDuplicateName is matched by errors for enumerations that declare the
	// same serialized name twice.
	ErrDuplicateName = errors.New("duplicate enumeration name")
)

// DecodeError reports text that does not name any member of an enumeration.
type DecodeError struct {
	Text string
	Type string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("value %q cannot be converted to %s", e.Text, e.Type)
}

// Unwrap returns ErrUnknownName.
func (e *DecodeError) Unwrap() error {
	return ErrUnknownName
}

// ConfigError reports an invalid enumeration declaration.
type ConfigError struct {
	Type string
	Name string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("enumeration %s: serialized name %q declared more than once", e.Type, e.Name)
}

// Unwrap returns ErrDuplicateName.
func (e *ConfigError) Unwrap() error {
	return ErrDuplicateName
}
