// Package csvline splits single lines of comma-separated text into zero-copy
// column ranges.
//
// The dialect is the one used by historical event-log archives: fields are
// trimmed of surrounding whitespace, and a field that starts with a double
// quote runs to the next double quote. Embedded or escaped quotes are not
// supported; no archive in the wild needs them, and a Range can only describe
// a contiguous span of the original text.
package csvline

import (
	"fmt"
	"strconv"

	"github.com/yaklabco/retrolog/pkg/identity"
)

// Range is a column's position within one line of text.
// It is only meaningful together with the text it was produced from.
type Range struct {
	// Offset is the byte index of the first byte of the column.
	Offset int

	// Length is the number of bytes in the column.
	Length int
}

// End returns the byte index just past the column.
func (r Range) End() int {
	return r.Offset + r.Length
}

// IsEmpty returns true if the column has zero length.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// In returns the column text as a substring of text. No bytes are copied.
func (r Range) In(text string) string {
	return text[r.Offset:r.End()]
}

// Line is a tokenized line: its text plus the ranges of the columns that were
// kept. Records built from a Line share its text for their whole lifetime.
type Line struct {
	text    string
	columns []Range
}

// NewLine wraps text and columns. The caller hands over ownership of columns.
func NewLine(text string, columns []Range) Line {
	return Line{text: text, columns: columns}
}

// Text returns the full text of the line.
func (l Line) Text() string {
	return l.text
}

// Len returns the number of columns.
func (l Line) Len() int {
	return len(l.columns)
}

// Column returns the text of column idx, or "" if idx is out of range.
func (l Line) Column(idx int) string {
	if idx < 0 || idx >= len(l.columns) {
		return ""
	}
	return l.columns[idx].In(l.text)
}

// Columns materializes every column as a string view.
func (l Line) Columns() []string {
	out := make([]string, len(l.columns))
	for idx, col := range l.columns {
		out[idx] = col.In(l.text)
	}
	return out
}

// Key returns a borrowed identity key for column idx.
func (l Line) Key(idx int) (identity.Key, error) {
	if idx < 0 || idx >= len(l.columns) {
		return identity.Key{}, &ColumnError{Index: idx, Count: len(l.columns)}
	}
	col := l.columns[idx]
	return identity.NewKey(l.text, col.Offset, col.Length), nil
}

// Int parses column idx as a base-10 integer with an optional leading sign.
func (l Line) Int(idx int) (int, error) {
	if idx < 0 || idx >= len(l.columns) {
		return 0, &ColumnError{Index: idx, Count: len(l.columns)}
	}
	text := l.columns[idx].In(l.text)
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, &FormatError{
			Offset: l.columns[idx].Offset,
			Reason: fmt.Sprintf("column %d: %q is not an integer", idx, text),
		}
	}
	return value, nil
}
