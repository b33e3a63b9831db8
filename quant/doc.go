// Package quant defines quantified sequence elements and per-walk match
// trackers.
//
// A quantified item is a value annotated with how many elements of an
// opposing sequence it may correspond to, analogous to regex quantifiers:
//
//	One(v)        v       {1,1}
//	Optional(v)   v?      {0,1}
//	ZeroOrMore(v) v*      {0,∞}
//	OneOrMore(v)  v+      {1,∞}
//	Between(v,m,n) v{m,n}
//
// Items are immutable once constructed and owned by the caller. Trackers
// wrap one item for the duration of a single traversal and are advanced by
// value (Matched returns a new tracker), so backtracking search never needs
// to undo counter state.
package quant
