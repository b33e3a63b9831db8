package harness

import (
	"fmt"

	"github.com/roach88/seqwalk/pattern"
	"github.com/roach88/seqwalk/walk"
)

// GroupEntry is one destination item with the rendered source items it
// absorbed. Srcs is never nil so the snapshot always serializes as a list.
type GroupEntry struct {
	Dest string   `json:"dest"`
	Srcs []string `json:"srcs"`
}

// Result captures the outcome of running one scenario.
type Result struct {
	Scenario string       `json:"scenario"`
	Matched  bool         `json:"matched"`
	Groups   []GroupEntry `json:"groups"`
}

// Run executes a scenario: parses both sides, walks them under the
// scenario's predicate and returns the grouping correspondence.
func Run(s *Scenario) (*Result, error) {
	dest, err := pattern.ParseSeq(s.Dest)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: dest: %w", s.Name, err)
	}
	src, err := pattern.ParseSeq(s.Src)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: src: %w", s.Name, err)
	}

	groups, matched := walk.Groups(dest, src, s.predicate())

	result := &Result{
		Scenario: s.Name,
		Matched:  matched,
		Groups:   []GroupEntry{},
	}
	for _, g := range groups {
		entry := GroupEntry{Dest: pattern.Render(g.Dest), Srcs: []string{}}
		for _, it := range g.Srcs {
			entry.Srcs = append(entry.Srcs, pattern.Render(it))
		}
		result.Groups = append(result.Groups, entry)
	}
	return result, nil
}

// predicate builds the label predicate for this scenario: wildcard
// destination labels match anything, everything else requires canonical
// label equality.
func (s *Scenario) predicate() walk.Predicate[string, string] {
	wild := make(map[string]struct{}, len(s.Wildcards))
	for _, w := range s.Wildcards {
		wild[pattern.Canonical(w)] = struct{}{}
	}
	return func(dest, src string) bool {
		if _, ok := wild[pattern.Canonical(dest)]; ok {
			return true
		}
		return pattern.Same(dest, src)
	}
}
