package quant

// Tracker is an immutable per-walk progress view over one Item.
//
// Pos is the item's index in its sequence; it identifies the item across
// tracker re-creation, which value equality of Item cannot (two positions
// may hold equal items).
//
// Count is the number of pairings the item has taken part in so far. A
// tracker is never mutated: Matched returns an advanced copy, and the
// traversal engine re-creates a fresh tracker whenever it moves on to the
// next item. Failed search branches therefore need no counter rollback.
type Tracker[T any] struct {
	Item  Item[T]
	Pos   int
	Count int
}

// NewTracker wraps item at sequence position pos with a zero counter.
func NewTracker[T any](item Item[T], pos int) Tracker[T] {
	return Tracker[T]{Item: item, Pos: pos}
}

// HasMoreMatches reports whether the item may take part in another pairing.
func (t Tracker[T]) HasMoreMatches() bool {
	return t.Item.Max == Unbounded || t.Count < t.Item.Max
}

// IsSkippable reports whether the item may correspond to zero elements of
// the opposing sequence.
func (t Tracker[T]) IsSkippable() bool {
	return t.Item.Min <= 0
}

// MinSatisfied reports whether the item has met its minimum occurrence
// count.
func (t Tracker[T]) MinSatisfied() bool {
	return t.Count >= t.Item.Min
}

// Matched returns a copy with the pairing counter advanced by one.
func (t Tracker[T]) Matched() Tracker[T] {
	t.Count++
	return t
}
