// Package memstore provides the in-memory storage primitive backing every
// resource collection. Nothing persists beyond process exit.
package memstore

import (
	"errors"
	"sync"
)

// Sentinel results for the conditional operations.
var (
	ErrNotFound = errors.New("memstore: no matching record")
	ErrConflict = errors.New("memstore: conflicting record")
)

// Collection is a concurrency-safe record set with a monotonic id sequence.
// Writes are serialized against reads; ids are never reused after deletion.
type Collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	lastID int64
}

// New creates an empty collection.
func New[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Insert stores the record produced by build, which receives the newly
// assigned id.
func (c *Collection[T]) Insert(build func(id int64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	item := build(c.lastID)
	c.items = append(c.items, item)
	return item
}

// InsertIf stores the record produced by build unless an existing record
// matches conflict. The scan and the append happen under one write lock, so
// two concurrent inserts can never both pass the check.
func (c *Collection[T]) InsertIf(conflict func(T) bool, build func(id int64) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if conflict(item) {
			var zero T
			return zero, ErrConflict
		}
	}

	c.lastID++
	item := build(c.lastID)
	c.items = append(c.items, item)
	return item, nil
}

// UpdateIf applies apply to the first record matching pred unless any other
// record matches conflict, all under one write lock. The pred-matched record
// itself is never tested against conflict. A nil conflict skips the check.
func (c *Collection[T]) UpdateIf(pred, conflict func(T) bool, apply func(T) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	idx := -1
	for i, item := range c.items {
		if idx < 0 && pred(item) {
			idx = i
			continue
		}
		if conflict != nil && conflict(item) {
			return zero, ErrConflict
		}
	}
	if idx < 0 {
		return zero, ErrNotFound
	}

	c.items[idx] = apply(c.items[idx])
	return c.items[idx], nil
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// List returns a copy of all records matching pred, in insertion order.
// A nil pred matches everything.
func (c *Collection[T]) List(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Update applies apply to the first record matching pred and stores the
// result, returning the updated record. The second return value is false
// when nothing matched.
func (c *Collection[T]) Update(pred func(T) bool, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if pred(item) {
			c.items[i] = apply(item)
			return c.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the first record matching pred. The id sequence is not
// rewound, so deletion leaves gaps.
func (c *Collection[T]) Delete(pred func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if pred(item) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of stored records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
