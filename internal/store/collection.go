// Package store holds the in-memory entity collections behind the admin API.
// State lives for the process lifetime only; a restart reverts to the seed set.
package store

import (
	"sync"
	"time"
)

// Record constrains collection element types to value types that expose an
// identifier and can be stamped with identity and creation time on insert.
type Record[T any] interface {
	RecordID() string
	Stamped(id string, createdAt time.Time) T
}

// IDPolicy derives the next identifier from the current record count.
type IDPolicy func(count int) string

// Collection is an ordered sequence of records guarded by a single mutex.
// Insertion order is listing order; lookups are linear scans. Every
// operation holds the lock for its whole read-modify-write, since handlers
// run on concurrent goroutines.
type Collection[T Record[T]] struct {
	mu      sync.Mutex
	records []T
	nextID  IDPolicy
	now     func() time.Time
}

// NewCollection builds a collection seeded with the given records.
func NewCollection[T Record[T]](policy IDPolicy, seed ...T) *Collection[T] {
	c := &Collection[T]{
		records: make([]T, len(seed)),
		nextID:  policy,
		now:     time.Now,
	}
	copy(c.records, seed)
	return c
}

// GetAll returns a copy of the collection in current order.
func (c *Collection[T]) GetAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// GetByID returns the first record matching id, or false when absent.
func (c *Collection[T]) GetByID(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range c.records {
		if rec.RecordID() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// Create assigns an identifier via the collection's id policy, stamps the
// creation time, appends the record, and returns it. The id derives from the
// current length, so an id can be reused after a delete; that quirk is part
// of the contract (see DESIGN.md).
func (c *Collection[T]) Create(rec T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec = rec.Stamped(c.nextID(len(c.records)), c.now().UTC())
	c.records = append(c.records, rec)
	return rec
}

// Update replaces the record with the given id by the result of merge applied
// to it, preserving its position. Returns false when the id is absent. The
// merge is a blind shallow merge supplied by the caller; nothing here shields
// id or createdAt from being rewritten.
func (c *Collection[T]) Update(id string, merge func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, rec := range c.records {
		if rec.RecordID() == id {
			c.records[i] = merge(rec)
			return c.records[i], true
		}
	}
	var zero T
	return zero, false
}

// Delete removes the record with the given id, shifting subsequent entries.
// Returns false when the id is absent.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, rec := range c.records {
		if rec.RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the current record count.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}
