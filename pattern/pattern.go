// Package pattern implements the label notation used by the CLI, the
// conformance harness and tests to describe quantified sequences: a plain
// label is a fixed item, and regex-style suffixes attach occurrence
// bounds.
package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/seqwalk/quant"
)

// Parse converts one token of the label notation into a quantified item:
//
//	"a"      {1,1}
//	"a?"     {0,1}
//	"a*"     {0,unbounded}
//	"a+"     {1,unbounded}
//	"a{2,5}" {2,5}
//	"a{2,}"  {2,unbounded}
//	"a{3}"   {3,3}
//
// The label is stored NFC-normalized so visually identical tokens compare
// equal.
func Parse(tok string) (quant.Item[string], error) {
	var zero quant.Item[string]
	if tok == "" {
		return zero, fmt.Errorf("empty pattern token")
	}

	label := tok
	it := quant.One("")

	switch {
	case strings.HasSuffix(tok, "?"):
		label = strings.TrimSuffix(tok, "?")
		it = quant.Optional("")
	case strings.HasSuffix(tok, "*"):
		label = strings.TrimSuffix(tok, "*")
		it = quant.ZeroOrMore("")
	case strings.HasSuffix(tok, "+"):
		label = strings.TrimSuffix(tok, "+")
		it = quant.OneOrMore("")
	case strings.HasSuffix(tok, "}"):
		open := strings.LastIndex(tok, "{")
		if open < 0 {
			return zero, fmt.Errorf("pattern token %q: unmatched }", tok)
		}
		label = tok[:open]
		min, max, err := parseBounds(tok[open+1 : len(tok)-1])
		if err != nil {
			return zero, fmt.Errorf("pattern token %q: %w", tok, err)
		}
		it = quant.Between("", min, max)
	}

	if label == "" {
		return zero, fmt.Errorf("pattern token %q has no label", tok)
	}
	it.Value = Canonical(label)
	if err := it.Validate(); err != nil {
		return zero, fmt.Errorf("pattern token %q: %w", tok, err)
	}
	return it, nil
}

// parseBounds parses the inside of a {m,n} suffix: "3", "2,5" or "2,".
func parseBounds(s string) (int, int, error) {
	minStr, maxStr, explicit := strings.Cut(s, ",")
	min, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid lower bound %q", minStr)
	}
	if !explicit {
		return min, min, nil
	}
	maxStr = strings.TrimSpace(maxStr)
	if maxStr == "" {
		return min, quant.Unbounded, nil
	}
	max, err := strconv.Atoi(maxStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid upper bound %q", maxStr)
	}
	return min, max, nil
}

// ParseSeq parses a whole sequence of tokens.
func ParseSeq(toks []string) ([]quant.Item[string], error) {
	items := make([]quant.Item[string], 0, len(toks))
	for _, tok := range toks {
		it, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// Render is the inverse of Parse.
func Render(it quant.Item[string]) string {
	switch {
	case it.Min == 1 && it.Max == 1:
		return it.Value
	case it.Min == 0 && it.Max == 1:
		return it.Value + "?"
	case it.Min == 0 && it.Max == quant.Unbounded:
		return it.Value + "*"
	case it.Min == 1 && it.Max == quant.Unbounded:
		return it.Value + "+"
	case it.Max == quant.Unbounded:
		return fmt.Sprintf("%s{%d,}", it.Value, it.Min)
	case it.Min == it.Max:
		return fmt.Sprintf("%s{%d}", it.Value, it.Min)
	default:
		return fmt.Sprintf("%s{%d,%d}", it.Value, it.Min, it.Max)
	}
}

// RenderSeq renders a whole sequence.
func RenderSeq(items []quant.Item[string]) []string {
	toks := make([]string, len(items))
	for i, it := range items {
		toks[i] = Render(it)
	}
	return toks
}
