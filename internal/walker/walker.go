package walker

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/toyeade1/directory-tree-context/internal/ignore"
	"github.com/toyeade1/directory-tree-context/internal/pattern"
	"github.com/toyeade1/directory-tree-context/internal/utils"
)

// BinarySentinel replaces file contents that turned out not to be text.
const BinarySentinel = "[binary file - contents skipped]"

// Walk traverses the tree rooted at rootDir depth-first and returns the
// surviving tree nodes, the collected content entries and the list of
// skipped items.
//
// Per entry, in order: an entry is pruned (dropped from the output entirely,
// subtree included) when the rule set ignores it or it matches an exclude
// pattern; a surviving file is collected for content when the include list is
// non-empty and at least one include pattern matches. An empty include list
// means structure-only: no content is read at all.
//
// The only fatal error is an invalid root. Unreadable directories and files
// are recorded as skipped and never abort the walk.
func Walk(rootDir string, rules *ignore.RuleSet, includes, excludes []pattern.Pattern, opts ...Option) (*Result, []SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}
	rootInfo, err := os.Stat(absRootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: cannot access root '%s': %w", absRootDir, err)
	}
	if !rootInfo.IsDir() {
		return nil, nil, fmt.Errorf("walker: root '%s' is not a directory", absRootDir)
	}

	w := &treeWalker{
		rootDir:  absRootDir,
		rules:    rules,
		includes: includes,
		excludes: excludes,
		options:  options,
		tracker:  &skippedTracker{},
		result:   &Result{},
	}

	// The root is always the first node; patterns never apply to it.
	w.result.Nodes = append(w.result.Nodes, TreeNode{
		Path:   ".",
		Name:   filepath.Base(absRootDir),
		Depth:  0,
		IsDir:  true,
		IsLast: true,
	})
	w.walkDir(absRootDir, "", 1)

	options.Logger.Debug("walker: %d nodes, %d content entries, %d skipped",
		len(w.result.Nodes), len(w.result.Entries), len(w.tracker.items))
	return w.result, w.tracker.items, nil
}

type treeWalker struct {
	rootDir  string
	rules    *ignore.RuleSet
	includes []pattern.Pattern
	excludes []pattern.Pattern
	options  WalkOptions
	tracker  *skippedTracker
	result   *Result
}

// walkDir visits one directory level. relDir is slash-separated and empty
// for the root itself.
func (w *treeWalker) walkDir(absDir, relDir string, depth int) {
	dirEntries, err := os.ReadDir(absDir)
	if err != nil {
		// A directory that cannot be listed loses its subtree but never
		// aborts the walk.
		w.options.Logger.Warn("walker: cannot list %q: %v", relDir, err)
		w.tracker.track(relDir, ReasonSkippedListError, true)
		return
	}

	// Directories first, then alphabetical. The ordering is part of the
	// determinism contract the renderer relies on.
	sort.SliceStable(dirEntries, func(i, j int) bool {
		if dirEntries[i].IsDir() != dirEntries[j].IsDir() {
			return dirEntries[i].IsDir()
		}
		return dirEntries[i].Name() < dirEntries[j].Name()
	})

	// Pruning happens before recursion so an excluded subtree costs nothing
	// beyond this one check.
	survivors := dirEntries[:0:0]
	for _, entry := range dirEntries {
		relPath := path.Join(relDir, entry.Name())
		if w.rules.IsIgnored(relPath, entry.IsDir()) {
			w.options.Logger.Debug("walker: pruned %q (ignore rule)", relPath)
			w.tracker.track(relPath, ReasonIgnoredRule, entry.IsDir())
			continue
		}
		if pattern.MatchesAny(w.excludes, relPath) {
			w.options.Logger.Debug("walker: pruned %q (exclude pattern)", relPath)
			w.tracker.track(relPath, ReasonExcludedPattern, entry.IsDir())
			continue
		}
		survivors = append(survivors, entry)
	}

	for index, entry := range survivors {
		relPath := path.Join(relDir, entry.Name())
		w.result.Nodes = append(w.result.Nodes, TreeNode{
			Path:   relPath,
			Name:   entry.Name(),
			Depth:  depth,
			IsDir:  entry.IsDir(),
			IsLast: index == len(survivors)-1,
		})
		if entry.IsDir() {
			w.walkDir(filepath.Join(absDir, entry.Name()), relPath, depth+1)
		} else {
			w.collectContent(filepath.Join(absDir, entry.Name()), relPath, entry)
		}
	}
}

// collectContent reads a surviving file when an include pattern selects it.
// Read failures and binary content are recorded per entry; neither stops
// the run.
func (w *treeWalker) collectContent(absPath, relPath string, entry os.DirEntry) {
	if len(w.includes) == 0 || !pattern.MatchesAny(w.includes, relPath) {
		return
	}

	info, err := entry.Info()
	if err != nil {
		w.options.Logger.Warn("walker: cannot stat %q: %v", relPath, err)
		w.tracker.track(relPath, ReasonSkippedReadError, false)
		w.result.Entries = append(w.result.Entries, ContentEntry{Path: relPath, ReadErr: err.Error()})
		return
	}
	if !info.Mode().IsRegular() {
		w.options.Logger.Debug("walker: skipping %q: not a regular file", relPath)
		w.tracker.track(relPath, ReasonSkippedNotRegular, false)
		return
	}
	if w.options.MaxFileSize > 0 && info.Size() > w.options.MaxFileSize {
		w.options.Logger.Debug("walker: skipping %q: %d bytes exceeds limit %d",
			relPath, info.Size(), w.options.MaxFileSize)
		w.tracker.track(relPath, ReasonSkippedSizeLimit, false)
		return
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		w.options.Logger.Warn("walker: cannot read %q: %v", relPath, err)
		w.tracker.track(relPath, ReasonSkippedReadError, false)
		w.result.Entries = append(w.result.Entries, ContentEntry{Path: relPath, ReadErr: err.Error()})
		return
	}
	if utils.IsBinary(data) {
		w.options.Logger.Debug("walker: %q is binary, storing sentinel", relPath)
		w.result.Entries = append(w.result.Entries, ContentEntry{Path: relPath, Binary: true})
		return
	}
	w.result.Entries = append(w.result.Entries, ContentEntry{Path: relPath, Content: string(data)})
}
