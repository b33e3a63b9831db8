// Package testutil provides shared test doubles.
package testutil

import "sync"

// CountingPredicate wraps a comparability predicate and counts
// invocations.
//
// Used to verify that memoized searches never call the predicate more
// often than unmemoized ones, and that repeated runs behave identically.
//
// Thread-safety: the counter is mutex-protected, so the predicate may be
// used from concurrent searches.
type CountingPredicate[A, B any] struct {
	mu    sync.Mutex
	pred  func(A, B) bool
	calls int
}

// NewCountingPredicate wraps pred.
func NewCountingPredicate[A, B any](pred func(A, B) bool) *CountingPredicate[A, B] {
	return &CountingPredicate[A, B]{pred: pred}
}

// Predicate returns the counting wrapper to inject into the engine.
func (c *CountingPredicate[A, B]) Predicate() func(A, B) bool {
	return func(dest A, src B) bool {
		c.mu.Lock()
		c.calls++
		c.mu.Unlock()
		return c.pred(dest, src)
	}
}

// Calls returns the number of predicate invocations so far.
func (c *CountingPredicate[A, B]) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Reset zeroes the counter for test reuse.
func (c *CountingPredicate[A, B]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = 0
}
