// Package identity interns entity identifiers so that every record naming the
// same id resolves to one shared, caller-constructed object.
package identity

import "strings"

// Key is a borrowed view of an identifier inside a larger buffer, usually the
// text of one archive line. Looking a Key up never copies it; the registry
// stores an owned copy (see Clone) only when the key is first inserted, so a
// stored entry never pins the line it was read from.
//
// Two keys are equal when their bytes are equal, whatever buffers they view.
type Key struct {
	buf    string
	offset int
	length int
}

// NewKey returns a view of buf[offset:offset+length].
// It panics if the span is outside buf, like a slice expression would.
func NewKey(buf string, offset, length int) Key {
	_ = buf[offset : offset+length]
	return Key{buf: buf, offset: offset, length: length}
}

// KeyOf returns a key viewing all of id.
func KeyOf(id string) Key {
	return Key{buf: id, length: len(id)}
}

// String returns the viewed text. The result shares memory with the buffer.
func (k Key) String() string {
	return k.buf[k.offset : k.offset+k.length]
}

// Len returns the length of the key in bytes.
func (k Key) Len() int {
	return k.length
}

// IsEmpty returns true for a zero-length key.
func (k Key) IsEmpty() bool {
	return k.length == 0
}

// Clone returns an owned copy of the key text that does not share memory with
// the viewed buffer.
func (k Key) Clone() string {
	if k.length == len(k.buf) {
		// The key already spans its whole buffer; nothing else is retained.
		return k.buf
	}
	return strings.Clone(k.String())
}
