package csvline

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every error describing malformed line text.
var ErrFormat = errors.New("malformed line")

// FormatError reports malformed text at a byte offset within a line.
type FormatError struct {
	// Offset is the byte index where the problem was detected.
	Offset int

	// Reason describes the problem.
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
}

// Unwrap returns ErrFormat.
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// ColumnError reports access to a column the line does not have.
// A missing column is a structural defect of the line, so it matches ErrFormat.
type ColumnError struct {
	Index int
	Count int
}

// Error implements the error interface.
func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %d requested but line has %d columns", e.Index, e.Count)
}

// Unwrap returns ErrFormat.
func (e *ColumnError) Unwrap() error {
	return ErrFormat
}
