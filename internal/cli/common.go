package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/seqwalk/pattern"
	"github.com/roach88/seqwalk/quant"
	"github.com/roach88/seqwalk/walk"
)

// CommonResult holds the outcome of a common run.
type CommonResult struct {
	Name    string   `json:"name,omitempty"`
	Matched bool     `json:"matched"`
	Items   []string `json:"items,omitempty"`
}

// NewCommonCommand creates the common command.
func NewCommonCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "common <pattern-file>",
		Short: "Merge the two sequences into their common quantified form",
		Long: `Load a pattern file, find an accepting walk and print the merged
common sequence. Paired items keep their label and take the union of both
occurrence bounds, so a run absorbed by one repeatable item collapses to a
single entry.

Exits 0 when a walk exists, 1 when none does.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommon(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

// mergeLabels is the common function used by the CLI: equal canonical
// labels merge into an item covering both sides' bounds, and an item
// consumed against absence passes through unchanged.
func mergeLabels(dest, src *quant.Item[string]) (quant.Item[string], bool) {
	switch {
	case dest == nil && src == nil:
		return quant.Item[string]{}, false
	case dest == nil:
		return *src, true
	case src == nil:
		return *dest, true
	case !pattern.Same(dest.Value, src.Value):
		return quant.Item[string]{}, false
	}

	merged := quant.Item[string]{Value: pattern.Canonical(dest.Value)}
	merged.Min = min(dest.Min, src.Min)
	if dest.Max == quant.Unbounded || src.Max == quant.Unbounded {
		merged.Max = quant.Unbounded
	} else {
		merged.Max = max(dest.Max, src.Max)
	}
	return merged, true
}

func runCommon(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	f, dest, src, err := loadPatterns(formatter, path)
	if err != nil {
		return err
	}

	items, matched := walk.Common(dest, src, mergeLabels, walkOptions(formatter)...)

	result := CommonResult{Name: f.Name, Matched: matched}
	if matched {
		result.Items = pattern.RenderSeq(items)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if matched {
		fmt.Fprintln(formatter.Writer, strings.Join(result.Items, " "))
	} else {
		fmt.Fprintln(formatter.Writer, "✗ no walk")
	}

	if !matched {
		return NewExitError(ExitFailure, "no accepting walk")
	}
	return nil
}
