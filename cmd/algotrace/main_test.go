package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	da "github.com/lintang-b-s/algotrace/pkg/datastructure"
	"github.com/lintang-b-s/algotrace/pkg/tracecodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSortCommand(t *testing.T) {
	out, err := execute(t, "sort", "-a", "bubble", "5", "3", "4", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sorted: [1 2 3 4 5]")
	assert.Contains(t, out, "10 compare")

	out, err = execute(t, "sort", "-a", "merge", "-o", "json", "--steps=false", "2", "1")
	require.NoError(t, err)
	var got sortOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "merge", got.Algorithm)
	assert.Equal(t, []float64{1, 2}, got.Sorted)
	assert.Empty(t, got.Steps)
	assert.Equal(t, 2, got.Counts["overwrite"])
}

func TestSortCommandCompare(t *testing.T) {
	out, err := execute(t, "sort", "--compare", "-o", "json", "--random", "30", "--seed", "5")
	require.NoError(t, err)
	var got []sortOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)
	for _, run := range got {
		assert.Equal(t, got[0].Sorted, run.Sorted, run.Algorithm)
	}
}

func TestCommandErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown sort algorithm", args: []string{"sort", "-a", "bogo", "1"}},
		{name: "not a number", args: []string{"sort", "1", "x"}},
		{name: "unknown output", args: []string{"-o", "xml", "sort", "1"}},
		{name: "unknown search algorithm", args: []string{"traverse", "-a", "greedy", "--kind", "empty"}},
		{name: "unknown board kind", args: []string{"board", "--kind", "spiral"}},
		{name: "missing archive", args: []string{"replay", "does-not-exist.trace.bz2"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestBoardCommand(t *testing.T) {
	out, err := execute(t, "board", "--kind", "empty", "--rows", "3", "--cols", "4")
	require.NoError(t, err)
	assert.Equal(t, "....\n.SE.\n....\n", out)

	out, err = execute(t, "board", "--kind", "maze", "--rows", "9", "--cols", "11", "--seed", "4", "-o", "yaml")
	require.NoError(t, err)
	var got boardOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "maze", got.Kind)
	assert.Equal(t, uint64(4), got.Seed)
	assert.Len(t, got.Layout, 9)
	assert.NotEmpty(t, got.Walls)
}

func writeLayout(t *testing.T, layout string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(layout), 0o644))
	return path
}

func TestTraverseCommand(t *testing.T) {
	layout := writeLayout(t, "S..\n.#.\n..E\n")

	out, err := execute(t, "traverse", "-a", "bfs", "--layout", layout, "-o", "yaml")
	require.NoError(t, err)
	var got pathOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.True(t, got.Found)
	assert.Equal(t, 5, got.PathLength)
	assert.Equal(t, cellOutput{Row: 0, Col: 0}, got.Path[0])
	assert.Equal(t, cellOutput{Row: 2, Col: 2}, got.Path[4])

	blocked := writeLayout(t, "S#.\n##.\n..E\n")
	out, err = execute(t, "traverse", "-a", "astar", "--layout", blocked)
	require.NoError(t, err)
	assert.Contains(t, out, "no path")
}

func TestArchiveReplay(t *testing.T) {
	dir := t.TempDir()

	sortArchive := filepath.Join(dir, "bubble.trace.bz2")
	_, err := execute(t, "sort", "-a", "bubble", "--out", sortArchive, "3", "1", "2")
	require.NoError(t, err)

	out, err := execute(t, "replay", sortArchive)
	require.NoError(t, err)
	assert.Contains(t, out, "bubble sort, 3 values")
	assert.Contains(t, out, "done  [1 2 3]")

	out, err = execute(t, "replay", sortArchive, "--from", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "       0  ")

	pathArchive := filepath.Join(dir, "dfs.trace.bz2")
	layout := writeLayout(t, "S..\n.#.\n..E\n")
	_, err = execute(t, "traverse", "-a", "dfs", "--layout", layout, "--out", pathArchive)
	require.NoError(t, err)

	out, err = execute(t, "replay", pathArchive)
	require.NoError(t, err)
	assert.Contains(t, out, "dfs on 3x3")
	assert.Contains(t, out, "path of 5 cells")

	_, err = execute(t, "replay", pathArchive, "--from", "1000")
	assert.Error(t, err)
}

func TestReplayRejectsMismatchedArchive(t *testing.T) {
	archive := filepath.Join(t.TempDir(), "tampered.trace.bz2")
	trace := &tracecodec.PathTrace{Algorithm: "bfs", Layout: []string{"SE"}, Visited: []da.Index{99}}
	require.NoError(t, tracecodec.WriteFile(archive, func(w io.Writer) error {
		return tracecodec.WritePathTrace(w, trace)
	}))

	_, err := execute(t, "replay", archive)
	assert.ErrorIs(t, err, tracecodec.ErrInvalidTrace)
}
