package ignore

import "github.com/toyeade1/directory-tree-context/internal/utils"

// Option configures a RuleSet during construction.
type Option func(*RuleSet)

// WithDefaultNames replaces the built-in excluded name set.
func WithDefaultNames(names []string) Option {
	return func(m *RuleSet) {
		m.excludedNames = nameSet(names)
	}
}

// WithIgnoreFile sets the name of the ignore file read from the root.
// An empty name disables ignore-file rules.
func WithIgnoreFile(name string) Option {
	return func(m *RuleSet) {
		m.ignoreFileName = name
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger utils.Logger) Option {
	return func(m *RuleSet) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDisabled produces a RuleSet that ignores nothing.
func WithDisabled(disabled bool) Option {
	return func(m *RuleSet) {
		m.disabled = disabled
	}
}
