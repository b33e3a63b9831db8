package walk

import (
	"fmt"

	"github.com/roach88/seqwalk/quant"
	"github.com/roach88/seqwalk/trace"
)

// Walker searches for an alignment between one pair of quantified
// sequences. Configuration is fixed at construction; Run is self-contained
// and may be called more than once.
type Walker[A, B any] struct {
	dest []quant.Item[A]
	src  []quant.Item[B]

	sink    trace.Sink
	renderA func(A) string
	renderB func(B) string

	memo   bool
	failed map[failKey]struct{}
}

// Option configures a Walker.
type Option[A, B any] func(*Walker[A, B])

// WithTracer injects a diagnostic sink. Tracing carries no control-flow
// semantics; a nil sink (the default) is silent.
func WithTracer[A, B any](sink trace.Sink) Option[A, B] {
	return func(w *Walker[A, B]) {
		w.sink = sink
	}
}

// WithRenderers sets element renderers used in trace messages. Without
// them elements are rendered with %v.
func WithRenderers[A, B any](renderA func(A) string, renderB func(B) string) Option[A, B] {
	return func(w *Walker[A, B]) {
		w.renderA = renderA
		w.renderB = renderB
	}
}

// WithMemo enables failure memoization: states proven to admit no
// accepting walk are not re-explored. See Keyer for when the accumulator
// must contribute to the cache key.
func WithMemo[A, B any]() Option[A, B] {
	return func(w *Walker[A, B]) {
		w.memo = true
	}
}

// New creates a walker over dest and src. The slices are owned by the
// caller and must not change during Run.
func New[A, B any](dest []quant.Item[A], src []quant.Item[B], opts ...Option[A, B]) *Walker[A, B] {
	w := &Walker[A, B]{dest: dest, src: src}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run performs the depth-first search and returns the accumulator of the
// first accepting walk found. ok is false when no accepting walk exists at
// all - distinct from an accepted walk whose folded value happens to be
// empty or negative.
func (w *Walker[A, B]) Run(acc Accumulator[A, B]) (Accumulator[A, B], bool) {
	if w.memo {
		w.failed = make(map[failKey]struct{})
		defer func() { w.failed = nil }()
	}
	// (-1,-1) is the virtual state before both sequences.
	return w.step(0, -1, -1, nil, nil, acc)
}

// step evaluates one traversal state. dest and src are the trackers for
// positions i and j; nil means the position lies outside its sequence.
func (w *Walker[A, B]) step(depth, i, j int, dest *quant.Tracker[A], src *quant.Tracker[B], acc Accumulator[A, B]) (Accumulator[A, B], bool) {
	destEnded := i >= len(w.dest)
	srcEnded := j >= len(w.src)

	switch {
	case destEnded && srcEnded:
		w.trace(depth, "accept: "+acc.Describe())
		return acc, true

	case destEnded:
		// Trailing source items can only bind to zero destination items.
		if !src.IsSkippable() || !acc.Matches(nil, src) {
			w.trace(depth, fmt.Sprintf("reject: trailing source %s", w.renderSrc(src)))
			return nil, false
		}
		return w.step(depth+1, i, j+1, nil, w.srcTracker(j+1), acc.Accumulate(nil, src))

	case srcEnded:
		if !dest.IsSkippable() || !acc.Matches(dest, nil) {
			w.trace(depth, fmt.Sprintf("reject: trailing destination %s", w.renderDest(dest)))
			return nil, false
		}
		return w.step(depth+1, i+1, j, w.destTracker(i+1), nil, acc.Accumulate(dest, nil))
	}

	if w.failed == nil {
		return w.expand(depth, i, j, dest, src, acc)
	}

	key := w.failKeyFor(i, j, dest, src, acc)
	if _, seen := w.failed[key]; seen {
		return nil, false
	}
	res, ok := w.expand(depth, i, j, dest, src, acc)
	if !ok {
		w.failed[key] = struct{}{}
	}
	return res, ok
}

// expand tests the current pair and recurses into every candidate
// successor state until one accepts.
func (w *Walker[A, B]) expand(depth, i, j int, dest *quant.Tracker[A], src *quant.Tracker[B], acc Accumulator[A, B]) (Accumulator[A, B], bool) {
	// Before the virtual start state there is no pair to test or fold.
	started := i >= 0

	// The pending fold consumes one occurrence on each side; an item with
	// no remaining capacity (a degenerate {0,0} in particular) can only be
	// skipped, never paired.
	if started && (!dest.HasMoreMatches() || !src.HasMoreMatches()) {
		w.trace(depth, fmt.Sprintf("reject: no capacity at (%d,%d)", i, j))
		return nil, false
	}

	if started && !acc.Matches(dest, src) {
		w.trace(depth, fmt.Sprintf("reject: %s ~ %s at (%d,%d)", w.renderDest(dest), w.renderSrc(src), i, j))
		return nil, false
	}

	destNext := sideOptions(w.dest, i, dest)
	srcNext := sideOptions(w.src, j, src)

	for _, ni := range destNext {
		for _, nj := range srcNext {
			if ni == i && nj == j {
				continue
			}

			var next Accumulator[A, B]
			if started {
				next = acc.Accumulate(dest, src)
			} else {
				next = acc.Clone()
			}

			// Items jumped over by a skip chain bind to zero occurrences,
			// each folded against absence in original order.
			for k := i + 1; k < ni; k++ {
				t := quant.NewTracker(w.dest[k], k)
				next = next.Accumulate(&t, nil)
			}
			for k := j + 1; k < nj; k++ {
				t := quant.NewTracker(w.src[k], k)
				next = next.Accumulate(nil, &t)
			}

			res, ok := w.step(depth+1, ni, nj, w.nextDest(i, ni, dest), w.nextSrc(j, nj, src), next)
			if ok {
				// First accepting walk wins; remaining candidates are
				// never tried.
				return res, true
			}
		}
	}

	w.trace(depth, fmt.Sprintf("backtrack at (%d,%d)", i, j))
	return nil, false
}

// sideOptions enumerates candidate next positions for one side, in greedy
// order: stay on the current item while it has capacity for one more fold
// beyond the pending one, then advance to the next item, then jump across
// a run of skippable items in one step. Advancing is offered only once the
// current item's minimum is met, counting the pending fold.
func sideOptions[T any](seq []quant.Item[T], k int, cur *quant.Tracker[T]) []int {
	opts := make([]int, 0, 3)
	if cur != nil {
		after := cur.Matched()
		if after.HasMoreMatches() {
			opts = append(opts, k)
		}
		if !after.MinSatisfied() {
			return opts
		}
	}
	opts = append(opts, k+1)
	for n := k + 1; n < len(seq) && seq[n].Min <= 0; n++ {
		opts = append(opts, n+1)
	}
	return opts
}

// nextDest builds the destination tracker for a candidate state: staying
// advances the current tracker's counter, moving re-creates a fresh one.
func (w *Walker[A, B]) nextDest(i, ni int, cur *quant.Tracker[A]) *quant.Tracker[A] {
	if ni == i {
		t := cur.Matched()
		return &t
	}
	return w.destTracker(ni)
}

func (w *Walker[A, B]) nextSrc(j, nj int, cur *quant.Tracker[B]) *quant.Tracker[B] {
	if nj == j {
		t := cur.Matched()
		return &t
	}
	return w.srcTracker(nj)
}

func (w *Walker[A, B]) destTracker(i int) *quant.Tracker[A] {
	if i < 0 || i >= len(w.dest) {
		return nil
	}
	t := quant.NewTracker(w.dest[i], i)
	return &t
}

func (w *Walker[A, B]) srcTracker(j int) *quant.Tracker[B] {
	if j < 0 || j >= len(w.src) {
		return nil
	}
	t := quant.NewTracker(w.src[j], j)
	return &t
}

func (w *Walker[A, B]) trace(depth int, msg string) {
	if w.sink != nil {
		w.sink.Step(depth, msg)
	}
}

func (w *Walker[A, B]) renderDest(t *quant.Tracker[A]) string {
	if t == nil {
		return "·"
	}
	if w.renderA != nil {
		return w.renderA(t.Item.Value)
	}
	return fmt.Sprintf("%v", t.Item.Value)
}

func (w *Walker[A, B]) renderSrc(t *quant.Tracker[B]) string {
	if t == nil {
		return "·"
	}
	if w.renderB != nil {
		return w.renderB(t.Item.Value)
	}
	return fmt.Sprintf("%v", t.Item.Value)
}
