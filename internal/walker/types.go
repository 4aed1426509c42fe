// Package walker handles directory traversal: pruning, tree-node production
// and content collection.
package walker

// TreeNode is one surviving entry of the walk, in traversal order
// (parent before children; siblings sorted directories first, then by name).
type TreeNode struct {
	// Path is relative to the walk root, slash-separated. The root itself
	// has Path ".".
	Path  string
	Name  string
	Depth int
	IsDir bool
	// IsLast marks the final surviving sibling at this level, which decides
	// the branch glyph the renderer draws.
	IsLast bool
}

// ContentEntry is one file whose contents were selected by an include
// pattern. Exactly one of Content, Binary or ReadErr carries the outcome.
type ContentEntry struct {
	Path    string
	Content string
	Binary  bool
	ReadErr string
}

// Result is the complete outcome of a walk.
type Result struct {
	Nodes   []TreeNode
	Entries []ContentEntry
}

// SkippedReason clarifies why an entry was not part of the output.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Ignore Rule)"
	ReasonExcludedPattern   SkippedReason = "Excluded (Pattern Match)"
	ReasonSkippedSizeLimit  SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedListError  SkippedReason = "Skipped (Directory List Error)"
	ReasonSkippedReadError  SkippedReason = "Skipped (Read Error)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
)

// SkippedItem records a pruned or unreadable path together with the reason.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// skippedTracker accumulates SkippedItems during a walk.
type skippedTracker struct {
	items []SkippedItem
}

func (t *skippedTracker) track(path string, reason SkippedReason, isDir bool) {
	t.items = append(t.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}
