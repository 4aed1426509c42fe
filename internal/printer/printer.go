// Package printer serializes a walk result into the output artifact.
package printer

import (
	"bufio"
	"io"
	"strings"

	"github.com/toyeade1/directory-tree-context/internal/walker"
)

const (
	structureHeader = "Directory Structure:\n-------------------\n"
	contentsHeader  = "\nFile Contents:\n-------------\n"

	branchGlyph     = "├── "
	lastBranchGlyph = "└── "
	pipeIndent      = "│   "
	blankIndent     = "    "
)

// Printer renders tree nodes and content entries in the fixed artifact
// format. Rendering is a pure function of its inputs: identical results
// produce byte-identical output.
type Printer struct {
	output io.Writer
	count  int64
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{output: w}
}

// FileCount returns the number of content blocks rendered so far.
func (p *Printer) FileCount() int64 {
	return p.count
}

// Render writes the structure section followed by the content section.
// The content header is always present, even when no entry was collected.
func (p *Printer) Render(result *walker.Result) error {
	buffered := bufio.NewWriter(p.output)

	buffered.WriteString(structureHeader)
	p.renderTree(buffered, result.Nodes)

	buffered.WriteString(contentsHeader)
	for _, entry := range result.Entries {
		p.renderEntry(buffered, entry)
	}

	return buffered.Flush()
}

// renderTree draws one line per node. The indent for a node repeats one
// glyph per ancestor level: a pipe while that ancestor has siblings below
// it, blank once it was the last.
func (p *Printer) renderTree(w *bufio.Writer, nodes []walker.TreeNode) {
	var lastAtDepth []bool
	for _, node := range nodes {
		for len(lastAtDepth) <= node.Depth {
			lastAtDepth = append(lastAtDepth, false)
		}
		lastAtDepth[node.Depth] = node.IsLast

		for depth := 0; depth < node.Depth; depth++ {
			if lastAtDepth[depth] {
				w.WriteString(blankIndent)
			} else {
				w.WriteString(pipeIndent)
			}
		}
		if node.IsLast {
			w.WriteString(lastBranchGlyph)
		} else {
			w.WriteString(branchGlyph)
		}
		w.WriteString(node.Name)
		if node.IsDir {
			w.WriteByte('/')
		}
		w.WriteByte('\n')
	}
}

// renderEntry writes one content block: a delimiter line with the relative
// path, an equals rule of the same width, then the body.
func (p *Printer) renderEntry(w *bufio.Writer, entry walker.ContentEntry) {
	p.count++

	header := "File: " + entry.Path
	w.WriteByte('\n')
	w.WriteString(header)
	w.WriteByte('\n')
	w.WriteString(strings.Repeat("=", len(header)))
	w.WriteByte('\n')

	switch {
	case entry.ReadErr != "":
		w.WriteString("Error reading file: " + entry.ReadErr + "\n")
	case entry.Binary:
		w.WriteString(walker.BinarySentinel + "\n")
	default:
		w.WriteString(entry.Content)
		if !strings.HasSuffix(entry.Content, "\n") {
			w.WriteByte('\n')
		}
	}
}
