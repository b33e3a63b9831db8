package walk

import "github.com/roach88/seqwalk/quant"

// Accumulator decides whether two quantified items can be reduced together
// and folds every visited pair of an accepted walk into a result.
//
// A nil tracker stands for absence: the opposing item is being consumed as
// a zero-occurrence match (or the pair lies past the end of one sequence).
// At most one side is nil in any call.
//
// Implementations must treat themselves as immutable values: Accumulate
// and Clone return fresh, structurally independent instances. The walker
// produces a fresh copy at every explored edge of the search and discards
// all but the one accepted copy; no rollback ever happens.
type Accumulator[A, B any] interface {
	// Matches reports whether the pair can be reduced together. Pure; no
	// mutation.
	Matches(dest *quant.Tracker[A], src *quant.Tracker[B]) bool

	// Accumulate folds the pair into a new accumulator.
	Accumulate(dest *quant.Tracker[A], src *quant.Tracker[B]) Accumulator[A, B]

	// Clone returns a structural copy, taken before every speculative
	// branch.
	Clone() Accumulator[A, B]

	// Describe renders the folded value for diagnostic traces.
	Describe() string
}

// Predicate reports whether a destination element can correspond to a
// source element. It is embedded in the existence and grouping strategies;
// the engine never interprets elements itself.
type Predicate[A, B any] func(dest A, src B) bool
