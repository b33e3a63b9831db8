// Package harness provides conformance testing for the walk engine.
//
// The harness loads matching scenarios, runs the grouping walk over them,
// and compares the resulting correspondence against golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	dest: ["Mark1", "A*", "Mark2", "B*"]
//	src: ["Mark1", "Mark2", "Mark2", "str"]
//	wildcards: ["B"]
//
// Both sides use the pattern label notation. Labels match when their
// canonical forms are equal; a destination label listed under wildcards
// matches any source label.
//
// # Deterministic Testing
//
// The walk explores candidate states in a fixed greedy order and returns
// the first accepting walk, so a scenario always yields the same grouping.
// Golden files serve as the source of truth for that grouping.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
package harness
