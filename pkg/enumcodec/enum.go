// Package enumcodec decodes column text into members of closed enumerations.
//
// Each enumeration is described once by a static member list. A member's
// serialized name is its override Name when declared, otherwise the lowercase
// form of its Go identifier. The first Decode call for an enumeration builds a
// lookup table sorted by (length, bytes); later calls reuse it.
package enumcodec

import (
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
)

// Member declares one enumeration member.
type Member[T comparable] struct {
	// Value is the Go value the member decodes to.
	Value T

	// Ident is the member's identifier, used for the default lowercase name.
	Ident string

	// Name overrides the serialized name when non-empty.
	Name string
}

// serializedName returns the name the member is spelled as in archive text.
func (m Member[T]) serializedName() string {
	if m.Name != "" {
		return m.Name
	}
	return strings.ToLower(m.Ident)
}

type entry[T comparable] struct {
	name  string
	value T
}

// compareName orders names by length first, then bytewise. Comparing lengths
// first rejects most mismatches without touching the bytes.
func compareName(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}

// table is the published, immutable lookup state for one enumeration.
type table[T comparable] struct {
	entries []entry[T]
	err     error
}

// Enum decodes text into members of one enumeration. It is safe for
// concurrent use.
type Enum[T comparable] struct {
	typeName string
	members  []Member[T]
	table    atomic.Pointer[table[T]]
}

// New declares an enumeration named typeName with the given members.
// The lookup table is built lazily on first use.
func New[T comparable](typeName string, members ...Member[T]) *Enum[T] {
	return &Enum[T]{
		typeName: typeName,
		members:  slices.Clone(members),
	}
}

// TypeName returns the enumeration's name as used in error messages.
func (e *Enum[T]) TypeName() string {
	return e.typeName
}

// load returns the published table, building and publishing it on first use.
//
// Concurrent first callers may each build a table, but only the first
// CompareAndSwap wins; every caller then uses the winner, so exactly one
// table is ever observed.
func (e *Enum[T]) load() *table[T] {
	if tbl := e.table.Load(); tbl != nil {
		return tbl
	}

	built := e.build()
	e.table.CompareAndSwap(nil, built)
	return e.table.Load()
}

func (e *Enum[T]) build() *table[T] {
	entries := make([]entry[T], 0, len(e.members))
	for _, member := range e.members {
		entries = append(entries, entry[T]{name: member.serializedName(), value: member.Value})
	}

	slices.SortFunc(entries, func(a, b entry[T]) int {
		return compareName(a.name, b.name)
	})

	for idx := 1; idx < len(entries); idx++ {
		if entries[idx].name == entries[idx-1].name {
			return &table[T]{err: &ConfigError{Type: e.typeName, Name: entries[idx].name}}
		}
	}

	return &table[T]{entries: entries}
}

// Validate builds the table if necessary and reports configuration errors.
func (e *Enum[T]) Validate() error {
	return e.load().err
}

// Decode returns the member whose serialized name equals text exactly.
func (e *Enum[T]) Decode(text string) (T, error) {
	var zero T

	tbl := e.load()
	if tbl.err != nil {
		return zero, tbl.err
	}

	idx, found := slices.BinarySearchFunc(tbl.entries, text, func(ent entry[T], target string) int {
		return compareName(ent.name, target)
	})
	if !found {
		return zero, &DecodeError{Text: text, Type: e.typeName}
	}
	return tbl.entries[idx].value, nil
}

// Name returns the serialized name of value.
func (e *Enum[T]) Name(value T) (string, bool) {
	for _, member := range e.members {
		if member.Value == value {
			return member.serializedName(), true
		}
	}
	return "", false
}

// MustName is like Name but falls back to a formatted value. The fallback
// formats with %v, so a String method on T must not call MustName.
func (e *Enum[T]) MustName(value T) string {
	if name, ok := e.Name(value); ok {
		return name
	}
	return fmt.Sprintf("%s(%v)", e.typeName, value)
}
