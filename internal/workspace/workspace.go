// Package workspace implements the per-screen working collection: an ordered,
// in-memory copy of the seed data that a single screen owns for its lifetime.
// Edits stay local to the collection and are never written back to the seed
// store, so concurrent screens do not observe each other's changes.
package workspace

import "sync"

// Entity is any record with a stable string identifier.
type Entity interface {
	EntityID() string
}

// Collection is an ordered set of records. A mutex guards it because handlers
// may be called concurrently, but there is no cross-collection coordination.
type Collection[T Entity] struct {
	mu    sync.RWMutex
	items []T
}

// New seeds a collection with a copy of the given records.
func New[T Entity](seed []T) *Collection[T] {
	c := &Collection[T]{items: make([]T, len(seed))}
	copy(c.items, seed)
	return c
}

// List returns the records in order. The returned slice is a copy; callers may
// not mutate collection state through it.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Has reports whether an id is present. Used by id generation to reject draws
// that collide with the live collection.
func (c *Collection[T]) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Prepend inserts a newly created record at the front of the collection.
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// Replace swaps the record whose id matches, keeping its position. Returns
// false when no record matches.
func (c *Collection[T]) Replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == item.EntityID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove deletes the record whose id matches, preserving the order of the
// rest. Returns false when no record matches.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
