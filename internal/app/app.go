// Package app wires configuration, ignore rules, the walker and the printer
// into one run of the tool.
package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/toyeade1/directory-tree-context/internal/clipboard"
	"github.com/toyeade1/directory-tree-context/internal/config"
	"github.com/toyeade1/directory-tree-context/internal/ignore"
	"github.com/toyeade1/directory-tree-context/internal/logger"
	"github.com/toyeade1/directory-tree-context/internal/pattern"
	"github.com/toyeade1/directory-tree-context/internal/printer"
	"github.com/toyeade1/directory-tree-context/internal/summary"
	"github.com/toyeade1/directory-tree-context/internal/walker"
)

// App encapsulates one invocation of the tool.
type App struct {
	cfg *config.Config
	log *logger.Logger

	// Stdout and Diagnostics are swappable for tests.
	Stdout      io.Writer
	Diagnostics io.Writer
	Clipboard   clipboard.Copier
}

// New creates an App from a finalized Config.
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	switch {
	case cfg.Quiet:
		log.WithLevel(logger.LevelWarn)
	case cfg.LogLevel != "":
		log.SetLevel(cfg.LogLevel)
	}

	return &App{
		cfg:         cfg,
		log:         log,
		Stdout:      os.Stdout,
		Diagnostics: os.Stderr,
		Clipboard:   clipboard.NewService(),
	}
}

// Run executes the walk and writes the artifact. The returned error is a
// precondition failure (invalid root, unwritable destination); per-entry
// failures during the walk are logged and reported but never returned.
func (a *App) Run() error {
	startTime := time.Now()

	absRootDir, err := a.validateRoot()
	if err != nil {
		return err
	}

	// The destination is opened before any traversal so an unwritable
	// destination fails fast.
	destination, closeDestination, err := a.openDestination()
	if err != nil {
		return err
	}
	defer closeDestination()

	includePatterns := pattern.CompileAll(a.cfg.IncludePatterns)
	excludePatterns := pattern.CompileAll(a.cfg.ExcludePatterns)
	if len(includePatterns) == 0 {
		a.log.Info("No include patterns given: collecting structure only.")
	}

	rules, err := ignore.New(absRootDir,
		ignore.WithLogger(a.log),
		ignore.WithIgnoreFile(a.cfg.IgnoreFileName),
	)
	if err != nil {
		return fmt.Errorf("initializing ignore rules: %w", err)
	}

	a.log.Info("Scanning directory: %s", absRootDir)
	result, skippedItems, err := walker.Walk(absRootDir, rules, includePatterns, excludePatterns,
		walker.WithLogger(a.log),
		walker.WithMaxFileSize(a.cfg.MaxFileSizeMB*1024*1024),
	)
	if err != nil {
		return err
	}

	var artifact bytes.Buffer
	renderer := printer.New(&artifact)
	if err := renderer.Render(result); err != nil {
		return fmt.Errorf("rendering output: %w", err)
	}
	if _, err := destination.Write(artifact.Bytes()); err != nil {
		return fmt.Errorf("writing output to '%s': %w", a.cfg.Destination, err)
	}

	if a.cfg.CopyToClipboard {
		if err := a.Clipboard.Copy(artifact.String()); err != nil {
			a.log.Warn("Could not copy output to clipboard: %v", err)
		} else {
			a.log.Info("Output copied to clipboard.")
		}
	}

	summary.DisplayResults(a.log, renderer.FileCount(), time.Since(startTime), a.cfg.Quiet)
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, a.Diagnostics, a.cfg.Quiet)
	}
	return nil
}

// validateRoot resolves the root path and checks it is an existing
// directory. Failure here is fatal and happens before any traversal.
func (a *App) validateRoot() (string, error) {
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return "", fmt.Errorf("invalid root directory path '%s': %w", a.cfg.RootDir, err)
	}
	info, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("root directory '%s' not found", absRootDir)
		}
		return "", fmt.Errorf("could not access root directory '%s': %w", absRootDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path '%s' is not a directory", absRootDir)
	}
	return absRootDir, nil
}

// openDestination returns the artifact writer and a close function.
// "-" selects stdout.
func (a *App) openDestination() (io.Writer, func(), error) {
	if a.cfg.Destination == config.StdoutDestination {
		return a.Stdout, func() {}, nil
	}
	file, err := os.Create(a.cfg.Destination)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create output file '%s': %w", a.cfg.Destination, err)
	}
	return file, func() { file.Close() }, nil
}
