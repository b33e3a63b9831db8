package walk

import (
	"fmt"
	"slices"

	"github.com/roach88/seqwalk/quant"
)

// Group records, in destination order, which source items one destination
// item absorbed. Empty Srcs means the destination item was consumed as a
// zero-occurrence match. Pos is the destination item's sequence position;
// it is what identifies "the same item" across folds, since two positions
// may hold equal values.
type Group[A, B any] struct {
	Dest quant.Item[A]
	Pos  int
	Srcs []quant.Item[B]
}

// grouping builds the destination-to-source correspondence of a walk. A
// downstream consumer uses it to allocate concrete bindings to variadic
// placeholders.
type grouping[A, B any] struct {
	pred   Predicate[A, B]
	groups []Group[A, B]
}

func (g *grouping[A, B]) Matches(dest *quant.Tracker[A], src *quant.Tracker[B]) bool {
	if dest == nil || src == nil {
		return true
	}
	return g.pred(dest.Item.Value, src.Item.Value)
}

func (g *grouping[A, B]) Accumulate(dest *quant.Tracker[A], src *quant.Tracker[B]) Accumulator[A, B] {
	next := &grouping[A, B]{pred: g.pred, groups: slices.Clone(g.groups)}

	switch {
	case dest != nil && src != nil:
		// Contiguous folds of the same destination item merge into the
		// last group.
		if n := len(next.groups); n > 0 && next.groups[n-1].Pos == dest.Pos {
			last := next.groups[n-1]
			// Append onto a fresh backing array; sibling branches must
			// not alias Srcs.
			last.Srcs = append(slices.Clone(last.Srcs), src.Item)
			next.groups[n-1] = last
		} else {
			next.groups = append(next.groups, Group[A, B]{
				Dest: dest.Item,
				Pos:  dest.Pos,
				Srcs: []quant.Item[B]{src.Item},
			})
		}

	case dest != nil:
		// Destination bound to zero source items: exactly one group
		// entry with an empty source list.
		if n := len(next.groups); n == 0 || next.groups[n-1].Pos != dest.Pos {
			next.groups = append(next.groups, Group[A, B]{Dest: dest.Item, Pos: dest.Pos})
		}

	default:
		// A source item that matched zero destination items produces no
		// group entry.
	}

	return next
}

func (g *grouping[A, B]) Clone() Accumulator[A, B] {
	return &grouping[A, B]{pred: g.pred, groups: slices.Clone(g.groups)}
}

func (g *grouping[A, B]) Describe() string {
	return fmt.Sprintf("%d groups", len(g.groups))
}

// Groups returns the walk's destination-to-source correspondence, or
// ok=false when no accepting walk exists. The distinction matters: an
// accepted walk over empty input yields an empty result with ok=true.
func Groups[A, B any](dest []quant.Item[A], src []quant.Item[B], pred Predicate[A, B], opts ...Option[A, B]) ([]Group[A, B], bool) {
	res, ok := New(dest, src, opts...).Run(&grouping[A, B]{pred: pred})
	if !ok {
		return nil, false
	}
	return res.(*grouping[A, B]).groups, true
}
