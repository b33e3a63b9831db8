package walk

import (
	"fmt"

	"github.com/roach88/seqwalk/quant"
)

// existence is the simplest strategy: it records whether any pair
// satisfying the predicate has been folded. The walker only folds pairs
// the predicate accepted, so an accepted walk is itself the answer; the
// recorded flag is kept for Describe.
type existence[A, B any] struct {
	pred  Predicate[A, B]
	found bool
}

func (e *existence[A, B]) Matches(dest *quant.Tracker[A], src *quant.Tracker[B]) bool {
	if dest == nil || src == nil {
		// Zero-occurrence consumption is always acceptable here;
		// skippability is the walker's concern.
		return true
	}
	return e.pred(dest.Item.Value, src.Item.Value)
}

func (e *existence[A, B]) Accumulate(dest *quant.Tracker[A], src *quant.Tracker[B]) Accumulator[A, B] {
	next := *e
	if !next.found {
		next.found = e.Matches(dest, src)
	}
	return &next
}

func (e *existence[A, B]) Clone() Accumulator[A, B] {
	next := *e
	return &next
}

func (e *existence[A, B]) Describe() string {
	return fmt.Sprintf("found=%t", e.found)
}

// Exists reports whether any accepting walk aligns dest with src under
// pred. Two empty sequences match trivially.
func Exists[A, B any](dest []quant.Item[A], src []quant.Item[B], pred Predicate[A, B], opts ...Option[A, B]) bool {
	_, ok := New(dest, src, opts...).Run(&existence[A, B]{pred: pred})
	return ok
}
