package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/seqwalk/pattern"
	"github.com/roach88/seqwalk/walk"
)

// GroupEntry is one destination item with the source items it absorbed.
type GroupEntry struct {
	Dest string   `json:"dest"`
	Srcs []string `json:"srcs"`
}

// GroupsResult holds the outcome of a groups run.
type GroupsResult struct {
	Name    string       `json:"name,omitempty"`
	Matched bool         `json:"matched"`
	Groups  []GroupEntry `json:"groups,omitempty"`
}

// NewGroupsCommand creates the groups command.
func NewGroupsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups <pattern-file>",
		Short: "Show which source items each destination item absorbed",
		Long: `Load a pattern file, find an accepting walk and print the
destination-to-source correspondence in destination order. A destination
item consumed as a zero-occurrence match appears with an empty source
list.

Exits 0 when a walk exists, 1 when none does.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroups(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runGroups(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	f, dest, src, err := loadPatterns(formatter, path)
	if err != nil {
		return err
	}

	groups, matched := walk.Groups(dest, src, pattern.Same, walkOptions(formatter)...)

	result := GroupsResult{Name: f.Name, Matched: matched}
	for _, g := range groups {
		entry := GroupEntry{Dest: pattern.Render(g.Dest), Srcs: []string{}}
		for _, s := range g.Srcs {
			entry.Srcs = append(entry.Srcs, pattern.Render(s))
		}
		result.Groups = append(result.Groups, entry)
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if matched {
		for _, g := range result.Groups {
			if len(g.Srcs) == 0 {
				fmt.Fprintf(formatter.Writer, "%s: (none)\n", g.Dest)
				continue
			}
			fmt.Fprintf(formatter.Writer, "%s: %s\n", g.Dest, strings.Join(g.Srcs, " "))
		}
	} else {
		fmt.Fprintln(formatter.Writer, "✗ no walk")
	}

	if !matched {
		return NewExitError(ExitFailure, "no accepting walk")
	}
	return nil
}
