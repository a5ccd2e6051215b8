package handle

import "go.uber.org/atomic"

// RefCount is the shared live-strength counter behind tracked handles.
// It is safe for concurrent use: Acquire and Release never race to a
// wrong strength. Every clone of a tracked handle holds the same cell;
// the cell is reclaimed by the garbage collector once no holder is left.
type RefCount struct {
	n atomic.Int64
}

// NewRefCount returns a counter with live-strength 1, owned by whoever
// called it.
func NewRefCount() *RefCount {
	c := &RefCount{}
	c.n.Store(1)
	return c
}

// Acquire adds one holder.
func (c *RefCount) Acquire() {
	c.n.Inc()
}

// Release drops one holder and reports whether this call released the
// last one. Releasing a counter whose strength is already zero panics.
func (c *RefCount) Release() bool {
	n := c.n.Dec()
	if n < 0 {
		panic("handle: RefCount released below zero")
	}
	return n == 0
}

// Refs returns the current live-strength.
func (c *RefCount) Refs() int64 {
	return c.n.Load()
}
