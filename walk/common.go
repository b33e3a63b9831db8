package walk

import (
	"fmt"
	"slices"

	"github.com/roach88/seqwalk/quant"
)

// CommonFunc computes the merged common form of a pair, when one exists.
// A nil item pointer stands for absence, as in Accumulator.Matches.
type CommonFunc[A, B, C any] func(dest *quant.Item[A], src *quant.Item[B]) (quant.Item[C], bool)

// commonMerge folds every visited pair into its common form, coalescing
// runs produced by a repeated item into a single entry.
type commonMerge[A, B any, C comparable] struct {
	common CommonFunc[A, B, C]
	items  []quant.Item[C]
}

func (c *commonMerge[A, B, C]) Matches(dest *quant.Tracker[A], src *quant.Tracker[B]) bool {
	_, ok := c.common(itemOf(dest), itemOf(src))
	return ok
}

func (c *commonMerge[A, B, C]) Accumulate(dest *quant.Tracker[A], src *quant.Tracker[B]) Accumulator[A, B] {
	next := &commonMerge[A, B, C]{common: c.common, items: slices.Clone(c.items)}

	it, ok := c.common(itemOf(dest), itemOf(src))
	if !ok {
		return next
	}
	// Repeated matches of the same quantified item emit one entry, not a
	// run of duplicates.
	if n := len(next.items); n > 0 && it.IsRepeated() && next.items[n-1] == it {
		return next
	}
	next.items = append(next.items, it)
	return next
}

func (c *commonMerge[A, B, C]) Clone() Accumulator[A, B] {
	return &commonMerge[A, B, C]{common: c.common, items: slices.Clone(c.items)}
}

func (c *commonMerge[A, B, C]) Describe() string {
	return fmt.Sprintf("%d common items", len(c.items))
}

func itemOf[T any](t *quant.Tracker[T]) *quant.Item[T] {
	if t == nil {
		return nil
	}
	return &t.Item
}

// Common returns the ordered common-subsequence merge of dest and src
// under the caller's common function, or ok=false when no accepting walk
// exists.
func Common[A, B any, C comparable](dest []quant.Item[A], src []quant.Item[B], common CommonFunc[A, B, C], opts ...Option[A, B]) ([]quant.Item[C], bool) {
	res, ok := New(dest, src, opts...).Run(&commonMerge[A, B, C]{common: common})
	if !ok {
		return nil, false
	}
	return res.(*commonMerge[A, B, C]).items, true
}
