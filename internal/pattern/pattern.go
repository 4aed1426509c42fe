// Package pattern implements include/exclude pattern matching against
// root-relative paths.
//
// A pattern's kind is derived purely from its literal text, once, at compile
// time. Three kinds are supported:
//
//   - exact name:      "config.json"        matches any entry named config.json
//   - exact path:      "src/client/app.py"  matches only that relative path
//   - recursive glob:  "**/*.py"            matches at any depth, wildcards
//     never crossing a path separator
//
// Matching never fails: a pattern whose glob syntax turns out to be malformed
// degrades to literal name matching of its full text.
package pattern

import (
	"path"
	"strings"
)

// Kind identifies how a pattern is matched against a path.
type Kind int

const (
	// ExactName matches the final path component by string equality.
	ExactName Kind = iota
	// ExactPath matches the whole relative path by string equality.
	ExactPath
	// RecursiveGlob matches the pattern remainder (after "**/") against the
	// final component or any component-boundary suffix of the path.
	RecursiveGlob
)

// recursivePrefix anchors a pattern to any depth.
const recursivePrefix = "**/"

// Pattern is a compiled include/exclude rule.
type Pattern struct {
	Raw  string
	Kind Kind

	// glob is the remainder after the recursive prefix; set for
	// RecursiveGlob patterns only.
	glob string
}

// Compile classifies a raw pattern by its shape. No filesystem access occurs.
func Compile(raw string) Pattern {
	switch {
	case strings.HasPrefix(raw, recursivePrefix):
		return Pattern{Raw: raw, Kind: RecursiveGlob, glob: strings.TrimPrefix(raw, recursivePrefix)}
	case strings.Contains(raw, "/"):
		return Pattern{Raw: raw, Kind: ExactPath}
	default:
		return Pattern{Raw: raw, Kind: ExactName}
	}
}

// CompileAll compiles a list of raw patterns, skipping empty strings.
func CompileAll(raws []string) []Pattern {
	patterns := make([]Pattern, 0, len(raws))
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		patterns = append(patterns, Compile(raw))
	}
	return patterns
}

// Matches reports whether relPath matches the pattern. relPath must be
// slash-separated and relative to the walk root.
func (p Pattern) Matches(relPath string) bool {
	switch p.Kind {
	case ExactPath:
		return relPath == p.Raw
	case RecursiveGlob:
		return p.matchSuffixes(relPath)
	default:
		return path.Base(relPath) == p.Raw
	}
}

// matchSuffixes tries the glob remainder against every component-boundary
// suffix of relPath, the full path included. path.Match wildcards do not
// cross separators, so a single-component glob can only ever match the
// final component.
func (p Pattern) matchSuffixes(relPath string) bool {
	components := strings.Split(relPath, "/")
	for i := range components {
		suffix := strings.Join(components[i:], "/")
		matched, err := path.Match(p.glob, suffix)
		if err != nil {
			// Malformed glob: degrade to literal name matching of the
			// full pattern text.
			return path.Base(relPath) == p.Raw
		}
		if matched {
			return true
		}
	}
	return false
}

// MatchesAny reports whether relPath matches at least one pattern.
func MatchesAny(patterns []Pattern, relPath string) bool {
	for _, p := range patterns {
		if p.Matches(relPath) {
			return true
		}
	}
	return false
}
