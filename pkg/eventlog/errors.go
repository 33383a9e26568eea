package eventlog

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched by every error caused by malformed event-file text:
	// bad quoting, unknown record kinds, unparsable numbers, missing columns,
	// and data records that are not earned-run records.
	ErrFormat = errors.New("malformed event file")

	// ErrNoFactory is returned when a Session must create an entity but was
	// built without the factory for that entity type.
	ErrNoFactory = errors.New("no factory configured")
)

// FormatError locates a format problem within an event file.
type FormatError struct {
	// Source is the file path, if known.
	Source string

	// Line is the 1-based line number, if known.
	Line int

	// Err is the underlying problem.
	Err error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch {
	case e.Source != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap exposes both ErrFormat and the underlying error.
func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}
