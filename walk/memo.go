package walk

import (
	"github.com/roach88/seqwalk/quant"
)

// failKey identifies a search state for failure memoization. Tracker
// counters are part of the key because remaining capacity on the current
// items changes which successor states exist.
type failKey struct {
	i, j      int
	destCount int
	srcCount  int
	accKey    string
}

// Keyer lets an accumulator contribute matching-relevant state to the
// memoization key. A strategy whose Matches result depends on what has
// already been folded (backreference-like behavior) must implement it;
// position-only caching is unsound for such strategies. None of the
// shipped strategies consult their folded value in Matches, so none
// implement Keyer.
type Keyer interface {
	MemoKey() string
}

func (w *Walker[A, B]) failKeyFor(i, j int, dest *quant.Tracker[A], src *quant.Tracker[B], acc Accumulator[A, B]) failKey {
	key := failKey{i: i, j: j}
	if dest != nil {
		key.destCount = dest.Count
	}
	if src != nil {
		key.srcCount = src.Count
	}
	if k, ok := acc.(Keyer); ok {
		key.accKey = k.MemoKey()
	}
	return key
}
