package ignore

import (
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// IsIgnored reports whether a root-relative path is excluded from the walk.
// The root itself ("" or ".") is never ignored.
func (m *RuleSet) IsIgnored(relativePath string, isDir bool) bool {
	if m == nil || m.disabled {
		return false
	}
	if relativePath == "" || relativePath == "." {
		return false
	}

	slashPath := filepath.ToSlash(relativePath)

	// Built-in names apply to every path component, so descendants of an
	// excluded directory are excluded even when checked in isolation.
	for _, component := range strings.Split(slashPath, "/") {
		if _, excluded := m.excludedNames[component]; excluded {
			m.logger.Debug("ignore.IsIgnored: %q excluded (built-in name %q)", slashPath, component)
			return true
		}
	}

	if m.fileRules != nil {
		match := m.relativeMatch(slashPath, isDir)
		if match != nil {
			// Relative returns the last rule in file order that matched,
			// so negation and precedence follow ignore-file convention.
			ignored := match.Ignore()
			m.logger.Debug("ignore.IsIgnored: %q matched ignore-file rule %q (ignored=%v)", slashPath, match, ignored)
			return ignored
		}
	}
	return false
}

// relativeMatch shields the walk from panics inside the gitignore library;
// an unmatchable path is treated as not ignored.
func (m *RuleSet) relativeMatch(slashPath string, isDir bool) (match gitignore.Match) {
	defer func() {
		if recovered := recover(); recovered != nil {
			m.logger.Error("ignore: recovered panic in gitignore library for %q: %v", slashPath, recovered)
			match = nil
		}
	}()
	return m.fileRules.Relative(slashPath, isDir)
}
