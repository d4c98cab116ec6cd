package testutil

import (
	"fmt"
	"sync"
	"time"
)

// FrozenClock is a schema.Clock that always returns a fixed instant.
//
// Constructing two objects with identical explicit inputs and the same
// FrozenClock produces identical created/modified defaults, which is what
// golden-file comparison relies on.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex, though tests typically use it single-threaded.
type FrozenClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFrozenClock creates a clock frozen at t.
func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{now: t.UTC()}
}

// Now returns the frozen instant.
func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the frozen instant. Used when a test needs distinct created
// and modified values across constructions.
func (c *FrozenClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}

// Advance moves the frozen instant forward by d.
func (c *FrozenClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// SequentialIDs returns a schema.IDGenerator producing UUID-shaped ids
// with an incrementing low field:
//
//	00000000-0000-0000-0000-000000000001
//	00000000-0000-0000-0000-000000000002
//	...
//
// The counter is mutex-guarded so a generator can be shared across
// constructions within one test.
func SequentialIDs() func() string {
	var mu sync.Mutex
	var n int64
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("00000000-0000-0000-0000-%012d", n)
	}
}
