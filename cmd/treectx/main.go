package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toyeade1/directory-tree-context/internal/app"
	"github.com/toyeade1/directory-tree-context/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand builds the CLI surface: two positional arguments (root and
// destination) plus the flag-backed settings.
func newRootCommand() *cobra.Command {
	cfg := config.New()

	command := &cobra.Command{
		Use:   "treectx <root> <destination>",
		Short: "Dump a directory tree and selected file contents into one text artifact",
		Long: `treectx walks a directory tree and renders it as an indented tree,
optionally followed by the contents of files selected with --include-content.
The artifact is written to <destination> ("-" for stdout), ready to paste
into an LLM context window.

Built-in exclusions and the root ignore file always apply; --exclude prunes
additional paths. Patterns match an exact name ("config.json"), an exact
relative path ("src/client/app.py"), or recursively at any depth ("**/*.py").`,
		Args:          cobra.ExactArgs(2),
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, args []string) error {
			cfg.RootDir = args[0]
			cfg.Destination = args[1]
			cfg.Finalize()
			return app.New(cfg).Run()
		},
	}
	cfg.RegisterFlags(command)
	return command
}
