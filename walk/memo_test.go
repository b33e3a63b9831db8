package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/seqwalk/internal/testutil"
	"github.com/roach88/seqwalk/quant"
)

// backtrackHeavy is a worst case for the unmemoized engine: three
// interchangeable repeatable items force the search to retry every
// partition of the a-run before the trailing mismatch is proven fatal.
func backtrackHeavy() (dest, src []quant.Item[string]) {
	dest = []quant.Item[string]{
		quant.ZeroOrMore("a"),
		quant.ZeroOrMore("a"),
		quant.ZeroOrMore("a"),
		quant.One("b"),
	}
	src = fixed("a", "a", "a", "a", "c")
	return dest, src
}

func TestMemoSameResultOnFailure(t *testing.T) {
	dest, src := backtrackHeavy()

	assert.False(t, Exists(dest, src, eq))
	assert.False(t, Exists(dest, src, eq, WithMemo[string, string]()))
}

func TestMemoSameResultOnSuccess(t *testing.T) {
	dest := []quant.Item[string]{
		quant.One("a"),
		quant.ZeroOrMore("b"),
		quant.Optional("c"),
	}
	src := fixed("a", "b", "b", "c")

	plain, ok := Groups(dest, src, eq)
	require.True(t, ok)

	memoized, ok := Groups(dest, src, eq, WithMemo[string, string]())
	require.True(t, ok)
	assert.Equal(t, plain, memoized)
}

func TestMemoNeverCostsPredicateCalls(t *testing.T) {
	dest, src := backtrackHeavy()

	plain := testutil.NewCountingPredicate(eq)
	Exists(dest, src, plain.Predicate())

	memoized := testutil.NewCountingPredicate(eq)
	Exists(dest, src, memoized.Predicate(), WithMemo[string, string]())

	assert.LessOrEqual(t, memoized.Calls(), plain.Calls())
	assert.Positive(t, memoized.Calls())
}

func TestMemoStatePerRun(t *testing.T) {
	// The failure cache is scoped to one Run; repeated runs on the same
	// walker start fresh and stay deterministic.
	dest, src := backtrackHeavy()
	w := New(dest, src, WithMemo[string, string]())

	for i := 0; i < 3; i++ {
		_, ok := w.Run(&existence[string, string]{pred: eq})
		assert.False(t, ok)
	}
}
