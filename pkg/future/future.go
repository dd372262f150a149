// Package future provides the one-shot resolution core shared by all
// generated future/background pairs. A Core is created by a generated
// Future<op> constructor, resolved exactly once by the matching
// background<op> routine, and waited on by the dispatching caller.
//
// The contract is deliberately narrow: one producer, one consumer, no
// cancellation, no reset. Misuse (resolving twice) is a bug in the
// code driving the future and panics rather than returning an error.
package future

import (
	"sync"
	"time"
)

// Core holds the synchronization state of one in-flight future. It is
// a one-shot completion signal: the channel is closed exactly once by
// Resolve, and every wait primitive observes that close. The zero
// value is not usable; construct with NewCore.
type Core struct {
	mu       sync.Mutex
	resolved bool
	done     chan struct{}
}

// NewCore returns an unresolved Core.
func NewCore() *Core {
	return &Core{done: make(chan struct{})}
}

// Resolve marks the future resolved and wakes the waiter. The result
// value must be stored before Resolve is called; the channel close
// paired with the receive in Wait makes that store visible to the
// waiter. Resolving an already-resolved Core violates the
// single-writer invariant and panics.
func (c *Core) Resolve() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resolved {
		panic("future: Resolve called twice on the same future")
	}
	c.resolved = true
	close(c.done)
}

// Wait blocks the caller until Resolve has run. Returning from Wait
// establishes a happens-before edge from the producer's result store
// to the caller's read. Wait is idempotent: once resolved it returns
// immediately, every time.
func (c *Core) Wait() {
	<-c.done
}

// WaitFor blocks until resolution or until d elapses, reporting
// whether the future resolved. The deadline belongs to the caller's
// wait, not to the future: an expired WaitFor leaves the future
// untouched and the background routine still running to completion.
func (c *Core) WaitFor(d time.Duration) bool {
	deadline := time.NewTimer(d)
	defer deadline.Stop()
	select {
	case <-c.done:
		return true
	case <-deadline.C:
		return false
	}
}

// Resolved reports whether the future has resolved without blocking.
func (c *Core) Resolved() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
