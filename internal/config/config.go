// Package config holds the per-invocation settings of the tool.
package config

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/toyeade1/directory-tree-context/internal/ignore"
)

// Version is the application version reported by --version.
const Version = "1.0.0"

// StdoutDestination selects standard output instead of a file.
const StdoutDestination = "-"

// Config holds all application settings. The two positional arguments
// (root and destination) are filled in by the command layer; everything
// else is flag-backed.
type Config struct {
	RootDir     string
	Destination string

	// Filtering settings
	IncludePatterns []string
	ExcludePatterns []string
	IgnoreFileName  string
	MaxFileSizeMB   int64

	// Output settings
	CopyToClipboard bool
	ShowSkipped     bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool
}

// New creates a Config with defaults in place.
func New() *Config {
	return &Config{
		IgnoreFileName: ignore.DefaultIgnoreFileName,
		LogLevel:       "INFO",
	}
}

// RegisterFlags binds the flag-backed settings onto a command.
func (c *Config) RegisterFlags(command *cobra.Command) {
	flags := command.Flags()
	flags.StringArrayVarP(&c.IncludePatterns, "include-content", "i", nil,
		"patterns of files whose contents are appended to the artifact (repeatable)")
	flags.StringArrayVarP(&c.ExcludePatterns, "exclude", "e", nil,
		"patterns of paths to omit from the tree entirely (repeatable)")
	flags.StringVar(&c.IgnoreFileName, "ignore-file", ignore.DefaultIgnoreFileName,
		"name of the ignore file read from the root (empty disables it)")
	flags.Int64Var(&c.MaxFileSizeMB, "max-size", 0,
		"max file size to include contents for, in MB (0 = no limit)")
	flags.BoolVarP(&c.CopyToClipboard, "copy", "c", false,
		"also copy the artifact to the system clipboard")
	flags.BoolVar(&c.ShowSkipped, "show-skipped", false,
		"list skipped files/directories and reasons after the run")
	flags.BoolVar(&c.Verbose, "verbose", false,
		"enable debug logging")
	flags.BoolVar(&c.Quiet, "quiet", false,
		"suppress info messages")
	flags.StringVar(&c.LogLevel, "log-level", "INFO",
		"logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	flags.BoolVar(&c.NoColor, "no-color", false,
		"disable colored diagnostics")
}

// Finalize derives settings that depend on the environment. Colors are only
// used on an interactive stderr.
func (c *Config) Finalize() {
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}
