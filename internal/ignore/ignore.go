// Package ignore decides whether paths are excluded from a walk.
//
// A RuleSet is the union of built-in excluded directory names and the rules
// parsed from the ignore file at the walk root, if one exists. It is built
// once per run and never mutated afterwards.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/toyeade1/directory-tree-context/internal/utils"
)

// DefaultIgnoreFileName is the conventional ignore file read from the root.
const DefaultIgnoreFileName = ".gitignore"

// DefaultExcludedNames lists directory and file names excluded everywhere,
// regardless of ignore-file contents.
var DefaultExcludedNames = []string{
	".git",
	"__pycache__",
	"node_modules",
	".pytest_cache",
	".venv",
	"venv",
	".env",
	".idea",
	".vscode",
}

// RuleSet answers whether a root-relative path is ignored.
type RuleSet struct {
	rootDir        string
	excludedNames  map[string]struct{}
	ignoreFileName string
	fileRules      gitignore.GitIgnore
	logger         utils.Logger
	disabled       bool
}

// New builds a RuleSet for rootDir. The ignore file is read and parsed here,
// at most once per run; its absence is not an error.
func New(rootDir string, opts ...Option) (*RuleSet, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	ruleSet := &RuleSet{
		rootDir:        absRootDir,
		excludedNames:  nameSet(DefaultExcludedNames),
		ignoreFileName: DefaultIgnoreFileName,
		logger:         &utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(ruleSet)
	}

	if err := ruleSet.init(); err != nil {
		return nil, err
	}
	return ruleSet, nil
}

// init loads the ignore file at the root, if present.
func (m *RuleSet) init() error {
	if m.disabled || m.ignoreFileName == "" {
		m.logger.Debug("ignore.New: ignore-file rules disabled for %s", m.rootDir)
		return nil
	}

	ignoreFilePath := filepath.Join(m.rootDir, m.ignoreFileName)
	if _, err := os.Stat(ignoreFilePath); err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug("ignore.New: no %s at %s, using built-in rules only", m.ignoreFileName, m.rootDir)
			return nil
		}
		return fmt.Errorf("ignore: failed to stat '%s': %w", ignoreFilePath, err)
	}

	fileRules, err := gitignore.NewFromFile(ignoreFilePath)
	if err != nil {
		return fmt.Errorf("ignore: failed to parse '%s': %w", ignoreFilePath, err)
	}
	m.fileRules = fileRules
	m.logger.Debug("ignore.New: loaded rules from %s", ignoreFilePath)
	return nil
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
