package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
)

// LocalSource reads files from a directory on the local filesystem.
type LocalSource struct {
	root   string
	closed atomic.Bool
}

var _ Source = (*LocalSource)(nil)

// NewLocalSource creates a source rooted at dir.
func NewLocalSource(dir string) (*LocalSource, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", dir, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	return &LocalSource{root: root}, nil
}

// Root returns the absolute root directory.
func (s *LocalSource) Root() string {
	return s.root
}

// Open opens relPath for reading. Paths that resolve outside the root are rejected.
func (s *LocalSource) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	full := filepath.Join(s.root, filepath.FromSlash(relPath))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %s", ErrOutsideRoot, relPath)
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", relPath, err)
	}
	return f, nil
}

// Close marks the source closed. Local sources hold no other resources.
func (s *LocalSource) Close() error {
	s.closed.Store(true)
	return nil
}
