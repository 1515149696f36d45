package parser

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/specvital/i18next-vue/pkg/plugin"
)

// ScanOptions configures scanner behavior.
type ScanOptions struct {
	// ExcludePatterns specifies directory names to skip during file discovery.
	// These are combined with DefaultSkipPatterns.
	ExcludePatterns []string

	// Logger receives per-file debug output.
	// Default: zerolog.Nop().
	Logger zerolog.Logger

	// MaxFileSize is the maximum file size in bytes to process.
	// Files larger than this are skipped.
	MaxFileSize int64

	// Patterns specifies doublestar glob patterns, relative to the source
	// root, to filter candidate files.
	// Empty means all candidates are processed.
	Patterns []string

	// Plugin rewrites component files before key extraction.
	// If nil, a plugin with default options is used.
	Plugin *plugin.Plugin

	// Timeout is the maximum duration for the entire scan operation.
	// Zero or negative values use DefaultTimeout.
	Timeout time.Duration

	// Workers specifies the number of concurrent file processors.
	// Zero or negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// ScanOption is a functional option for configuring Scanner.
type ScanOption func(*ScanOptions)

// WithWorkers sets the number of concurrent file processors.
// Negative values are ignored.
func WithWorkers(n int) ScanOption {
	return func(o *ScanOptions) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// WithTimeout sets the scan timeout duration.
// Negative values are ignored.
func WithTimeout(d time.Duration) ScanOption {
	return func(o *ScanOptions) {
		if d >= 0 {
			o.Timeout = d
		}
	}
}

// WithExcludePatterns adds directory names to skip during file discovery.
func WithExcludePatterns(patterns []string) ScanOption {
	return func(o *ScanOptions) {
		o.ExcludePatterns = patterns
	}
}

// WithMaxFileSize sets the maximum file size to process.
// Negative values are ignored.
func WithMaxFileSize(size int64) ScanOption {
	return func(o *ScanOptions) {
		if size >= 0 {
			o.MaxFileSize = size
		}
	}
}

// WithPatterns sets glob patterns to filter candidate files.
func WithPatterns(patterns []string) ScanOption {
	return func(o *ScanOptions) {
		o.Patterns = patterns
	}
}

// WithPlugin sets the component plugin.
func WithPlugin(p *plugin.Plugin) ScanOption {
	return func(o *ScanOptions) {
		o.Plugin = p
	}
}

// WithLogger sets the scanner logger.
func WithLogger(logger zerolog.Logger) ScanOption {
	return func(o *ScanOptions) {
		o.Logger = logger
	}
}

func applyDefaults(opts *ScanOptions) error {
	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Plugin == nil {
		p, err := plugin.New(plugin.WithLogger(opts.Logger))
		if err != nil {
			return err
		}
		opts.Plugin = p
	}
	return nil
}

// newDefaultOptions returns ScanOptions with default values.
func newDefaultOptions() ScanOptions {
	return ScanOptions{
		Logger: zerolog.Nop(),
	}
}
