package quant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		item     Item[string]
		min, max int
	}{
		{"one", One("a"), 1, 1},
		{"optional", Optional("a"), 0, 1},
		{"zero_or_more", ZeroOrMore("a"), 0, Unbounded},
		{"one_or_more", OneOrMore("a"), 1, Unbounded},
		{"between", Between("a", 2, 5), 2, 5},
		{"between_unbounded", Between("a", 3, Unbounded), 3, Unbounded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "a", tt.item.Value)
			assert.Equal(t, tt.min, tt.item.Min)
			assert.Equal(t, tt.max, tt.item.Max)
		})
	}
}

func TestIsRepeated(t *testing.T) {
	tests := []struct {
		name     string
		item     Item[string]
		repeated bool
	}{
		{"fixed", One("a"), false},
		{"optional", Optional("a"), true},
		{"zero_or_more", ZeroOrMore("a"), true},
		{"one_or_more", OneOrMore("a"), true},
		{"finite_range", Between("a", 2, 5), true},
		{"exact_two", Between("a", 2, 2), true},
		{"exact_zero", Between("a", 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.repeated, tt.item.IsRepeated())
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, One("a").Validate())
	require.NoError(t, ZeroOrMore("a").Validate())
	require.NoError(t, Between("a", 2, 2).Validate())
	require.NoError(t, Between("a", 2, Unbounded).Validate())

	assert.Error(t, Between("a", -1, 1).Validate())
	assert.Error(t, Between("a", 3, 2).Validate())
}
