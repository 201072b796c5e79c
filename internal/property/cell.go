package property

import "sync"

// Cell is the backing storage of a property value. Device code outside the
// menu (pulse counters, clock ticks) may mutate a cell at any time, so every
// access happens inside the cell's critical section and a multi-byte value is
// never observed half written.
type Cell[T any] struct {
	mu sync.Mutex
	v  T
}

// NewCell returns a cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Load returns the current value.
func (c *Cell[T]) Load() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// Store replaces the current value.
func (c *Cell[T]) Store(v T) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Update applies fn to the current value and stores the result as a single
// read-modify-write. It returns the stored value.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v = fn(c.v)
	return c.v
}
