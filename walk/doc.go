// Package walk implements backtracking alignment search between two
// quantified sequences.
//
// Each sequence, together with its quantifiers, is an implicit automaton:
// a non-repeating item is a single forward edge; a repeating item is a
// self-loop plus a forward edge. A traversal state is a pair of positions,
// one per sequence. The search starts before both sequences and accepts
// when both report ended at the same time. This generalizes matching a
// regular expression against a string to matching two regex-like patterns
// against each other, which is what unifying variadic type-argument lists
// (tuple[*Ds, D] against tuple[V, *Vs]) requires.
//
// What "corresponds" means, and what is built from a walk, is delegated to
// an Accumulator strategy. Three strategies ship with the package:
//
//   - Exists: does any accepting walk exist at all
//   - Groups: which source items each destination item absorbed, in order
//   - Common: the merged common form of every visited pair
//
// The engine is a synchronous depth-first search with greedy quantifier
// semantics: a repeatable item consumes as many pairings as it can before
// control passes to the next item. First accepting walk wins. There is no
// built-in memoization unless WithMemo is set; worst-case running time is
// exponential in the sequence lengths.
//
// Accumulators follow a copy-on-write discipline: Accumulate and Clone
// return fresh instances and never mutate the receiver. That is what makes
// backtracking safe without any undo logic, and it also makes sibling
// branches safe to explore concurrently should a caller want to.
package walk
