package store

import (
	"sort"
	"strconv"
	"sync"
)

// Collection is an insertion-ordered map of stringified ID to record. It
// backs one simulated resource and carries the ID counter new records are
// numbered from. Each method locks the collection, so concurrent tool
// calls from the stdio transport stay safe.
type Collection[T any] struct {
	mu      sync.RWMutex
	name    string
	items   map[string]T
	order   []string
	counter int64
}

// NewCollection creates an empty collection.
func NewCollection[T any](name string) *Collection[T] {
	return &Collection[T]{
		name:  name,
		items: make(map[string]T),
	}
}

// Name returns the collection name, e.g. "tickets".
func (c *Collection[T]) Name() string { return c.name }

// Get returns the record with the given ID.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	return v, ok
}

// Put inserts or replaces the record under id. For numeric IDs at or above
// the counter the counter advances past them, so seeded data never
// collides with generated IDs.
func (c *Collection[T]) Put(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = v
	if n, err := strconv.ParseInt(id, 10, 64); err == nil && n > c.counter {
		c.counter = n
	}
}

// Delete removes the record under id, reporting whether it existed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all records in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// IDs returns all record IDs in insertion order.
func (c *Collection[T]) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear removes every record and resets the ID counter.
func (c *Collection[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T)
	c.order = nil
	c.counter = 0
}

// counterValue reports the current ID counter, for snapshots.
func (c *Collection[T]) counterValue() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counter
}

// raiseCounter lifts the ID counter to at least n, for snapshot reloads.
func (c *Collection[T]) raiseCounter(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n > c.counter {
		c.counter = n
	}
}

// NextID reserves and returns the next numeric record ID.
func (c *Collection[T]) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counter++
	return c.counter
}

// items sorted by numeric ID when every ID is numeric, lexically otherwise.
// Snapshot loads go through this so restored insertion order is stable.
func sortedIDs(ids []string) []string {
	numeric := true
	for _, id := range ids {
		if _, err := strconv.ParseInt(id, 10, 64); err != nil {
			numeric = false
			break
		}
	}
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		if numeric {
			a, _ := strconv.ParseInt(sorted[i], 10, 64)
			b, _ := strconv.ParseInt(sorted[j], 10, 64)
			return a < b
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
