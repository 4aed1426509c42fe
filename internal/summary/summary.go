// Package summary reports scan results and skipped items after a run.
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/toyeade1/directory-tree-context/internal/walker"
)

// Logger is the minimal logging interface required here.
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs the end-of-run counters.
func DisplayResults(logger Logger, fileCount int64, duration time.Duration, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Collected contents of %d files.", fileCount)
	logger.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints every pruned or unreadable path with its reason,
// sorted for stable output.
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer, quiet bool) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
		infoLog("--- End Skipped Items ---")
		return
	}
	sort.Slice(skippedItems, func(i, j int) bool {
		return skippedItems[i].Path < skippedItems[j].Path
	})
	for _, item := range skippedItems {
		typeLabel := "FILE"
		if item.IsDir {
			typeLabel = "DIR "
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n", typeLabel, 50, item.Path, item.Reason)
	}
	infoLog("--- End Skipped Items ---")
}
