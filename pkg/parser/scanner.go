// Package parser scans a project for translation keys in components and scripts.
package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/specvital/i18next-vue/pkg/domain"
	"github.com/specvital/i18next-vue/pkg/plugin"
	"github.com/specvital/i18next-vue/pkg/source"
)

const (
	// DefaultWorkers indicates that the scanner should use GOMAXPROCS as the worker count.
	DefaultWorkers = 0
	// DefaultTimeout is the default scan timeout duration.
	DefaultTimeout = 5 * time.Minute
	// MaxWorkers is the maximum number of concurrent workers allowed.
	MaxWorkers = 1024
	// DefaultMaxFileSize is the default maximum file size for scanning (10MB).
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// DialectScript is the ScanStats.DialectDist key for plain script files.
const DialectScript = "script"

// Scan phases reported in ScanError.Phase.
const (
	PhaseDiscovery = "discovery"
	PhaseRead      = "read"
)

// DefaultSkipPatterns contains directory names that are skipped by default during scanning.
var DefaultSkipPatterns = []string{
	"node_modules",
	".git",
	"dist",
	".nuxt",
	".output",
	"coverage",
	".cache",
	"locales",
}

// scriptExtensions are the plain script files scanned alongside components.
var scriptExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
}

var (
	// ErrScanCancelled is returned when scanning is cancelled via context.
	ErrScanCancelled = errors.New("scanner: scan cancelled")
	// ErrScanTimeout is returned when scanning exceeds the timeout duration.
	ErrScanTimeout = errors.New("scanner: scan timeout")
)

// Scanner extracts translation keys from every component and script of a source.
type Scanner struct {
	plugin  *plugin.Plugin
	logger  zerolog.Logger
	options *ScanOptions
}

// ScanResult contains the outcome of a scan operation.
type ScanResult struct {
	// Inventory contains every file that yielded at least one key.
	Inventory *domain.Inventory

	// Errors contains non-fatal errors encountered during scanning.
	Errors []ScanError

	// Stats provides scan statistics including dialect distribution.
	Stats ScanStats
}

// ScanError represents an error that occurred during a specific phase of scanning.
type ScanError struct {
	// Err is the underlying error.
	Err error

	// Path is the file path where the error occurred (may be empty for non-file errors).
	Path string

	// Phase indicates which phase the error occurred in.
	// Values: PhaseDiscovery, PhaseRead
	Phase string
}

// Error implements the error interface.
func (e ScanError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e ScanError) Unwrap() error {
	return e.Err
}

// ScanStats provides statistics about the scan operation.
type ScanStats struct {
	// FilesScanned is the total number of candidate files discovered.
	FilesScanned int

	// FilesMatched is the number of files that yielded at least one key.
	FilesMatched int

	// FilesFailed is the number of files that could not be read.
	FilesFailed int

	// FilesSkipped is the number of files read without any key.
	FilesSkipped int

	// KeysFound is the total number of key occurrences.
	KeysFound int

	// DialectDist counts read files per dialect.
	// Keys: "vue2", "vue3", DialectScript
	DialectDist map[string]int

	// Duration is the total scan duration.
	Duration time.Duration
}

// NewScanner creates a new scanner with the given options.
func NewScanner(opts ...ScanOption) (*Scanner, error) {
	options := newDefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if err := applyDefaults(&options); err != nil {
		return nil, err
	}

	return &Scanner{
		plugin:  options.Plugin,
		logger:  options.Logger,
		options: &options,
	}, nil
}

// Scan performs the complete scanning process:
//  1. Discover candidate components and scripts
//  2. Rewrite components through the plugin
//  3. Extract keys from every file in parallel
//
// The caller is responsible for calling src.Close() when done.
func (s *Scanner) Scan(ctx context.Context, src source.Source) (*ScanResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.options.Timeout)
	defer cancel()

	result := newScanResult(src.Root())

	files, errs := s.discoverFiles(ctx, src)
	for _, err := range errs {
		result.Errors = append(result.Errors, ScanError{
			Err:   err,
			Phase: PhaseDiscovery,
		})
	}

	return s.finish(ctx, src, files, result, startTime)
}

// ScanFiles scans specific files (for incremental/watch mode).
// This bypasses file discovery and directly scans the provided file paths.
//
// The caller is responsible for calling src.Close() when done.
func (s *Scanner) ScanFiles(ctx context.Context, src source.Source, files []string) (*ScanResult, error) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, s.options.Timeout)
	defer cancel()

	return s.finish(ctx, src, files, newScanResult(src.Root()), startTime)
}

func newScanResult(rootPath string) *ScanResult {
	return &ScanResult{
		Inventory: &domain.Inventory{
			RootPath: rootPath,
			Files:    []domain.ComponentFile{},
		},
		Errors: []ScanError{},
		Stats: ScanStats{
			DialectDist: make(map[string]int),
		},
	}
}

func (s *Scanner) finish(ctx context.Context, src source.Source, files []string, result *ScanResult, startTime time.Time) (*ScanResult, error) {
	result.Stats.FilesScanned = len(files)

	if len(files) > 0 {
		parsed, scanErrors := s.processFilesParallel(ctx, src, files, result)
		result.Inventory.Files = parsed
		result.Errors = append(result.Errors, scanErrors...)

		result.Stats.FilesMatched = len(parsed)
		result.Stats.FilesFailed = len(scanErrors)
		result.Stats.FilesSkipped = result.Stats.FilesScanned - result.Stats.FilesMatched - result.Stats.FilesFailed
		result.Stats.KeysFound = result.Inventory.CountKeys()
	}
	result.Stats.Duration = time.Since(startTime)

	s.logger.Debug().
		Int("scanned", result.Stats.FilesScanned).
		Int("matched", result.Stats.FilesMatched).
		Int("keys", result.Stats.KeysFound).
		Dur("duration", result.Stats.Duration).
		Msg("scan finished")

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return result, ErrScanTimeout
		}
		if errors.Is(err, context.Canceled) {
			return result, ErrScanCancelled
		}
	}

	return result, nil
}

// discoverFiles walks the source root to find candidate files.
// Returns slash-separated paths relative to the source root.
func (s *Scanner) discoverFiles(ctx context.Context, src source.Source) ([]string, []error) {
	rootPath := src.Root()
	skipSet := buildSkipSet(append(DefaultSkipPatterns, s.options.ExcludePatterns...))

	var (
		files []string
		errs  []error
	)

	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if walkErr != nil {
			errs = append(errs, fmt.Errorf("access error at %s: %w", path, walkErr))
			return nil
		}

		if d.IsDir() {
			if shouldSkipDir(path, rootPath, skipSet) {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(rootPath, path)
		if err != nil {
			errs = append(errs, fmt.Errorf("compute relative path for %s: %w", path, err))
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if !s.isCandidate(relPath) {
			return nil
		}

		if len(s.options.Patterns) > 0 && !matchesAnyGlob(relPath, s.options.Patterns) {
			return nil
		}

		if s.options.MaxFileSize > 0 {
			info, err := d.Info()
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to get file info for %s: %w", path, err))
				return nil
			}
			if info.Size() > s.options.MaxFileSize {
				s.logger.Debug().Str("path", relPath).Int64("size", info.Size()).Msg("file too large, skipped")
				return nil
			}
		}

		files = append(files, relPath)
		return nil
	})

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			errs = append(errs, err)
		}
	}

	return files, errs
}

func (s *Scanner) isCandidate(relPath string) bool {
	if s.plugin.IsMatch(relPath) {
		return true
	}
	return isScriptFile(relPath)
}

func (s *Scanner) processFilesParallel(ctx context.Context, src source.Source, files []string, result *ScanResult) ([]domain.ComponentFile, []ScanError) {
	workers := s.options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > MaxWorkers {
		workers = MaxWorkers
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var (
		mu         sync.Mutex
		parsed     = make([]domain.ComponentFile, 0, len(files))
		scanErrors = make([]ScanError, 0)
	)

	for _, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			componentFile, scanErr, dialect := s.processFile(gCtx, src, file)

			mu.Lock()
			defer mu.Unlock()

			if dialect != "" {
				result.Stats.DialectDist[dialect]++
			}

			if scanErr != nil {
				scanErrors = append(scanErrors, *scanErr)
				return nil
			}

			if componentFile != nil {
				parsed = append(parsed, *componentFile)
			}

			return nil
		})
	}

	_ = g.Wait()

	// Goroutines complete in variable order.
	sort.Slice(parsed, func(i, j int) bool {
		return parsed[i].Path < parsed[j].Path
	})
	sort.Slice(scanErrors, func(i, j int) bool {
		return scanErrors[i].Path < scanErrors[j].Path
	})

	return parsed, scanErrors
}

// processFile returns the extracted file (nil when it has no keys), a read
// error, and the dialect bucket it was counted in.
func (s *Scanner) processFile(ctx context.Context, src source.Source, path string) (*domain.ComponentFile, *ScanError, string) {
	content, err := readFileFromSource(ctx, src, path)
	if err != nil {
		return nil, &ScanError{
			Err:   err,
			Path:  path,
			Phase: PhaseRead,
		}, ""
	}

	code := string(content)
	bucket := DialectScript
	var dialect domain.Dialect

	if s.plugin.IsMatch(path) {
		dialect = s.plugin.ResolveDialect(code)
		bucket = string(dialect)
		code = s.plugin.OnLoad(code, path)
	}

	keys := s.plugin.ExtractScriptKeys(code)
	if len(keys) == 0 {
		return nil, nil, bucket
	}

	s.logger.Debug().Str("path", path).Str("dialect", bucket).Int("keys", len(keys)).Msg("keys extracted")

	file := &domain.ComponentFile{
		Dialect: dialect,
		Keys:    keys,
		Path:    path,
	}
	if contexts := s.plugin.Contexts(code); len(contexts) > 0 {
		file.Contexts = contexts
	}
	return file, nil, bucket
}

// readFileFromSource reads a file from source using relative path.
// The relPath must be relative to src.Root().
func readFileFromSource(ctx context.Context, src source.Source, relPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := src.Open(ctx, relPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", relPath, err)
	}

	return content, nil
}

func buildSkipSet(patterns []string) map[string]bool {
	skipSet := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		skipSet[p] = true
	}
	return skipSet
}

func shouldSkipDir(path, rootPath string, skipSet map[string]bool) bool {
	if path == rootPath {
		return false
	}

	base := filepath.Base(path)
	return skipSet[base]
}

func isScriptFile(path string) bool {
	if strings.HasSuffix(path, ".d.ts") {
		return false
	}
	return scriptExtensions[strings.ToLower(filepath.Ext(path))]
}

func matchesAnyGlob(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// Scan creates a scanner with opts and scans src.
func Scan(ctx context.Context, src source.Source, opts ...ScanOption) (*ScanResult, error) {
	scanner, err := NewScanner(opts...)
	if err != nil {
		return nil, err
	}
	return scanner.Scan(ctx, src)
}
