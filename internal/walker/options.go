package walker

import "github.com/toyeade1/directory-tree-context/internal/utils"

// WalkOptions configures the behavior of the Walk function.
type WalkOptions struct {
	Logger utils.Logger
	// MaxFileSize bounds content collection in bytes; 0 means no limit.
	// Oversized files still appear in the tree.
	MaxFileSize int64
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:      &utils.NoopLogger{},
		MaxFileSize: 0,
	}
}

// Option is a functional option for configuring WalkOptions.
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker.
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithMaxFileSize sets the maximum file size to read, in bytes.
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		if maxBytes > 0 {
			opts.MaxFileSize = maxBytes
		}
	}
}
