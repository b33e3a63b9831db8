package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupsText(t *testing.T) {
	path := writePattern(t, "groups.yaml", `
name: absorb-run
dest: ["A", "B*"]
src: ["A", "B", "B"]
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGroupsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "A: A\nB*: B B\n", buf.String())
}

func TestGroupsZeroOccurrence(t *testing.T) {
	path := writePattern(t, "groups.yaml", `
dest: ["A", "B*"]
src: ["A"]
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGroupsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, "A: A\nB*: (none)\n", buf.String())
}

func TestGroupsJSON(t *testing.T) {
	path := writePattern(t, "groups.yaml", `
name: absorb-run
dest: ["A", "B*"]
src: ["A", "B", "B"]
`)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewGroupsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   GroupsResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Matched)
	require.Len(t, resp.Data.Groups, 2)
	assert.Equal(t, GroupEntry{Dest: "A", Srcs: []string{"A"}}, resp.Data.Groups[0])
	assert.Equal(t, GroupEntry{Dest: "B*", Srcs: []string{"B", "B"}}, resp.Data.Groups[1])
}

func TestGroupsNoWalk(t *testing.T) {
	path := writePattern(t, "groups.yaml", mismatchPattern)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewGroupsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "✗ no walk")
}
