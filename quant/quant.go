package quant

import "fmt"

// Unbounded marks an item with no upper occurrence limit.
const Unbounded = -1

// Item is a sequence element annotated with occurrence bounds.
//
// Min is the minimum number of opposing elements the item must correspond
// to; Max is the maximum, or Unbounded. An Item is immutable once
// constructed.
//
// INVARIANT: Min <= Max when Max != Unbounded. The traversal engine does
// not validate this (see Validate) - constructing a violating item is
// caller error and the search result is undefined.
type Item[T any] struct {
	Value T
	Min   int
	Max   int
}

// One returns an item that corresponds to exactly one opposing element.
func One[T any](v T) Item[T] {
	return Item[T]{Value: v, Min: 1, Max: 1}
}

// Optional returns an item that corresponds to zero or one opposing element.
func Optional[T any](v T) Item[T] {
	return Item[T]{Value: v, Min: 0, Max: 1}
}

// ZeroOrMore returns an item with no occurrence constraints.
func ZeroOrMore[T any](v T) Item[T] {
	return Item[T]{Value: v, Min: 0, Max: Unbounded}
}

// OneOrMore returns an item that corresponds to at least one opposing element.
func OneOrMore[T any](v T) Item[T] {
	return Item[T]{Value: v, Min: 1, Max: Unbounded}
}

// Between returns an item bounded by min and max occurrences.
// Pass Unbounded as max for an open upper bound.
func Between[T any](v T, min, max int) Item[T] {
	return Item[T]{Value: v, Min: min, Max: max}
}

// IsRepeated reports whether the item can take part in more than one
// pairing, or in none at all. Fixed {1,1} items are the only non-repeated
// kind.
func (it Item[T]) IsRepeated() bool {
	if it.Max == Unbounded || it.Max > 1 {
		return true
	}
	return it.Max == 1 && it.Min == 0
}

// Validate checks the Min <= Max invariant. The traversal engine never
// calls this; callers constructing items from untrusted input should.
func (it Item[T]) Validate() error {
	if it.Min < 0 {
		return fmt.Errorf("quantifier min is negative: %d", it.Min)
	}
	if it.Max != Unbounded && it.Max < it.Min {
		return fmt.Errorf("quantifier max %d is below min %d", it.Max, it.Min)
	}
	return nil
}
