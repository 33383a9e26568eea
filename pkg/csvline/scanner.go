package csvline

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scanner produces the column ranges of one line, one at a time.
//
// A Scanner is a plain value: it allocates nothing, holds no state beyond the
// text and a cursor, and can be rewound with Reset. Scanning the same text
// always yields the same ranges.
type Scanner struct {
	text string
	pos  int
	cur  Range
	err  error
	done bool
}

// NewScanner returns a Scanner positioned before the first column of text.
func NewScanner(text string) Scanner {
	return Scanner{text: text}
}

// Reset rewinds the scanner to the first column.
func (s *Scanner) Reset() {
	*s = Scanner{text: s.text}
}

// Range returns the column found by the last successful call to Next.
func (s *Scanner) Range() Range {
	return s.cur
}

// Text returns the text of the column found by the last call to Next.
func (s *Scanner) Text() string {
	return s.cur.In(s.text)
}

// Err returns the first format error encountered, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Next advances to the next column. It returns false at end of line or on
// error; Err distinguishes the two.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}

	s.pos = skipSpace(s.text, s.pos)
	if s.pos >= len(s.text) {
		s.done = true
		return false
	}

	if s.text[s.pos] == '"' {
		return s.quoted()
	}
	return s.unquoted()
}

// quoted scans a field that starts at an opening quote.
func (s *Scanner) quoted() bool {
	open := s.pos
	start := open + 1

	closing := strings.IndexByte(s.text[start:], '"')
	if closing < 0 {
		return s.fail(open, "unterminated quoted field")
	}
	end := start + closing

	s.cur = Range{Offset: start, Length: end - start}

	// Only whitespace may separate the closing quote from the next comma.
	s.pos = skipSpace(s.text, end+1)
	if s.pos < len(s.text) {
		if s.text[s.pos] != ',' {
			return s.fail(s.pos, "unexpected character after closing quote")
		}
		s.pos++
	}

	return true
}

// unquoted scans a field that runs to the next comma or end of line.
func (s *Scanner) unquoted() bool {
	start := s.pos

	end := len(s.text)
	next := len(s.text)
	if comma := strings.IndexByte(s.text[start:], ','); comma >= 0 {
		end = start + comma
		next = end + 1
	}

	trimmed := trimTrailingSpace(s.text, start, end)

	s.cur = Range{Offset: start, Length: trimmed - start}
	s.pos = next
	return true
}

func (s *Scanner) fail(offset int, reason string) bool {
	s.err = &FormatError{Offset: offset, Reason: reason}
	s.cur = Range{}
	s.done = true
	return false
}

// All returns the columns of text as a lazy sequence. Each range over the
// sequence re-scans text from the start. On a format error the sequence
// yields a zero Range with the error and stops.
func All(text string) iter.Seq2[Range, error] {
	return func(yield func(Range, error) bool) {
		scanner := NewScanner(text)
		for scanner.Next() {
			if !yield(scanner.Range(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(Range{}, err)
		}
	}
}

// Split tokenizes text into an owned Line.
func Split(text string) (Line, error) {
	var columns []Range

	scanner := NewScanner(text)
	for scanner.Next() {
		columns = append(columns, scanner.Range())
	}
	if err := scanner.Err(); err != nil {
		return Line{}, err
	}

	return NewLine(text, columns), nil
}

// IsBlank reports whether text contains only whitespace.
func IsBlank(text string) bool {
	return skipSpace(text, 0) == len(text)
}

// skipSpace returns the offset of the first non-space rune at or after pos.
func skipSpace(text string, pos int) int {
	for pos < len(text) {
		r, size := rune(text[pos]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRuneInString(text[pos:])
		}
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

// trimTrailingSpace moves end back over trailing space runes, stopping at start.
func trimTrailingSpace(text string, start, end int) int {
	for end > start {
		r, size := rune(text[end-1]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeLastRuneInString(text[start:end])
		}
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	return end
}
