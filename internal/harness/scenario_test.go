package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
name: basic
description: "two fixed items"
dest: ["A", "B"]
src: ["A", "B"]
wildcards: ["B"]
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "basic", s.Name)
	assert.Equal(t, []string{"A", "B"}, s.Dest)
	assert.Equal(t, []string{"B"}, s.Wildcards)
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "misspelled field"
dest: ["A"]
src: ["A"]
wildcard: ["A"]
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wildcard")
}

func TestLoadScenarioMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no_name", "description: d\ndest: []\nsrc: []\n", "name is required"},
		{"no_description", "name: n\ndest: []\nsrc: []\n", "description is required"},
		{"no_dest", "name: n\ndescription: d\nsrc: []\n", "dest list is required"},
		{"no_src", "name: n\ndescription: d\ndest: []\n", "src list is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadScenarioEmptySequencesAllowed(t *testing.T) {
	path := writeScenario(t, `
name: empty
description: "both sides empty"
dest: []
src: []
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Empty(t, s.Dest)
	assert.NotNil(t, s.Dest)
}

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	// Sorted by file name, so the order is stable across runs.
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Contains(t, names, "head-optional")
	assert.Contains(t, names, "no-walk")
}

func TestLoadScenariosEmptyDir(t *testing.T) {
	_, err := LoadScenarios(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files")
}
