package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyeade1/directory-tree-context/internal/walker"
)

func sampleResult() *walker.Result {
	return &walker.Result{
		Nodes: []walker.TreeNode{
			{Path: ".", Name: "project", Depth: 0, IsDir: true, IsLast: true},
			{Path: "src", Name: "src", Depth: 1, IsDir: true, IsLast: false},
			{Path: "src/app.py", Name: "app.py", Depth: 2, IsDir: false, IsLast: false},
			{Path: "src/util.py", Name: "util.py", Depth: 2, IsDir: false, IsLast: true},
			{Path: "README.md", Name: "README.md", Depth: 1, IsDir: false, IsLast: true},
		},
		Entries: []walker.ContentEntry{
			{Path: "src/app.py", Content: "print('app')\n"},
			{Path: "src/util.py", Content: "print('util')"},
		},
	}
}

func TestRenderArtifactFormat(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, New(&out).Render(sampleResult()))

	expected := "Directory Structure:\n" +
		"-------------------\n" +
		"└── project/\n" +
		"    ├── src/\n" +
		"    │   ├── app.py\n" +
		"    │   └── util.py\n" +
		"    └── README.md\n" +
		"\n" +
		"File Contents:\n" +
		"-------------\n" +
		"\n" +
		"File: src/app.py\n" +
		"================\n" +
		"print('app')\n" +
		"\n" +
		"File: src/util.py\n" +
		"=================\n" +
		"print('util')\n"

	assert.Equal(t, expected, out.String())
}

func TestRenderIsByteIdenticalAcrossRuns(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, New(&first).Render(sampleResult()))
	require.NoError(t, New(&second).Render(sampleResult()))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestRenderEmptyContentSectionKeepsHeader(t *testing.T) {
	var out bytes.Buffer
	result := &walker.Result{
		Nodes: []walker.TreeNode{
			{Path: ".", Name: "project", Depth: 0, IsDir: true, IsLast: true},
		},
	}
	renderer := New(&out)
	require.NoError(t, renderer.Render(result))

	assert.Contains(t, out.String(), "File Contents:\n-------------\n")
	assert.Equal(t, int64(0), renderer.FileCount())
}

func TestRenderBinarySentinel(t *testing.T) {
	var out bytes.Buffer
	result := &walker.Result{
		Nodes: []walker.TreeNode{
			{Path: ".", Name: "project", Depth: 0, IsDir: true, IsLast: true},
			{Path: "logo.png", Name: "logo.png", Depth: 1, IsDir: false, IsLast: true},
		},
		Entries: []walker.ContentEntry{
			{Path: "logo.png", Binary: true},
		},
	}
	require.NoError(t, New(&out).Render(result))

	assert.Contains(t, out.String(), "File: logo.png\n==============\n"+walker.BinarySentinel+"\n")
	// The binary file still appears in the structure section.
	assert.Contains(t, out.String(), "└── logo.png\n")
}

func TestRenderReadErrorNote(t *testing.T) {
	var out bytes.Buffer
	result := &walker.Result{
		Entries: []walker.ContentEntry{
			{Path: "gone.txt", ReadErr: "permission denied"},
		},
	}
	require.NoError(t, New(&out).Render(result))

	assert.Contains(t, out.String(), "Error reading file: permission denied\n")
}

func TestFileCountTracksRenderedBlocks(t *testing.T) {
	var out bytes.Buffer
	renderer := New(&out)
	require.NoError(t, renderer.Render(sampleResult()))

	assert.Equal(t, int64(2), renderer.FileCount())
}
