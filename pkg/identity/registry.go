package identity

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// ErrNotFound is returned when an entity is requested for an id that was
// never added. Callers that resolve ids must visit records in file order so
// the record that creates an entity is seen before any record that refers to it.
var ErrNotFound = errors.New("identity not found")

// NotFoundError names the id that could not be resolved.
type NotFoundError struct {
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrNotFound.Error(), e.ID)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Factory creates the entity for a newly seen id. The id is an owned string
// that is safe to retain. ctx is the opaque value handed to GetOrAdd.
type Factory[E any] func(id string, ctx any) (E, error)

// Registry maps ids to entities, creating each entity exactly once.
//
// Lookups run concurrently with each other. An insert briefly excludes all
// other readers and writers, and re-checks the map after acquiring exclusive
// access, so concurrent GetOrAdd calls for the same id invoke the factory once
// and all receive the same entity.
//
// The zero value is an empty registry ready to use.
type Registry[E any] struct {
	mu      sync.RWMutex
	entries map[string]E
}

// NewRegistry creates an empty registry.
func NewRegistry[E any]() *Registry[E] {
	return &Registry[E]{
		entries: make(map[string]E),
	}
}

// Get returns the entity for key, if present.
func (r *Registry[E]) Get(key Key) (E, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.entries[key.String()]
	return entity, ok
}

// Lookup is like Get but reports a missing id as a *NotFoundError.
func (r *Registry[E]) Lookup(key Key) (E, error) {
	entity, ok := r.Get(key)
	if !ok {
		return entity, &NotFoundError{ID: key.Clone()}
	}
	return entity, nil
}

// GetOrAdd returns the entity for key, creating it with factory if absent.
// If factory fails, nothing is stored and the error is returned; a later call
// may try again.
func (r *Registry[E]) GetOrAdd(key Key, factory Factory[E], ctx any) (E, error) {
	if entity, ok := r.Get(key); ok {
		return entity, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have inserted the key since the read lock was released.
	if entity, ok := r.entries[key.String()]; ok {
		return entity, nil
	}

	id := key.Clone()
	entity, err := factory(id, ctx)
	if err != nil {
		var zero E
		return zero, fmt.Errorf("create entity %q: %w", id, err)
	}

	if r.entries == nil {
		r.entries = make(map[string]E)
	}
	r.entries[id] = entity
	return entity, nil
}

// Len returns the number of entities.
func (r *Registry[E]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// IDs returns all ids in sorted order.
func (r *Registry[E]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.entries))
}

// Snapshot returns every entity, ordered by id.
//
// Snapshot is meant for the aggregation phase after loading has finished.
// It must not be called while other goroutines may still be adding entities.
func (r *Registry[E]) Snapshot() []E {
	ids := slices.Sorted(maps.Keys(r.entries))

	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.entries[id])
	}
	return out
}

// Reset discards every entity, starting a fresh session.
func (r *Registry[E]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]E)
}
