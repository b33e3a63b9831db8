package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/seqwalk/pattern"
	"github.com/roach88/seqwalk/walk"
)

// ExistsResult holds the outcome of an exists run.
type ExistsResult struct {
	Name    string   `json:"name,omitempty"`
	Matched bool     `json:"matched"`
	Dest    []string `json:"dest"`
	Src     []string `json:"src"`
}

// NewExistsCommand creates the exists command.
func NewExistsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <pattern-file>",
		Short: "Report whether the two sequences admit any accepting walk",
		Long: `Load a pattern file and search for an accepting walk between its
dest and src sequences. Labels match when their canonical forms are equal.

Exits 0 when a walk exists, 1 when none does.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExists(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runExists(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	f, dest, src, err := loadPatterns(formatter, path)
	if err != nil {
		return err
	}

	matched := walk.Exists(dest, src, pattern.Same, walkOptions(formatter)...)

	result := ExistsResult{
		Name:    f.Name,
		Matched: matched,
		Dest:    f.Dest,
		Src:     f.Src,
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if matched {
		fmt.Fprintln(formatter.Writer, "✓ walk found")
	} else {
		fmt.Fprintln(formatter.Writer, "✗ no walk")
	}

	if !matched {
		return NewExitError(ExitFailure, "no accepting walk")
	}
	return nil
}
