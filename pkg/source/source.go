// Package source abstracts where project files are read from.
package source

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotDirectory is returned when a local root is not a directory.
	ErrNotDirectory = errors.New("source: root is not a directory")
	// ErrOutsideRoot is returned when a path escapes the source root.
	ErrOutsideRoot = errors.New("source: path escapes root")
	// ErrClosed is returned by Open after Close.
	ErrClosed = errors.New("source: closed")
)

// Source provides read access to the files of a project.
type Source interface {
	// Root returns the absolute path that relative paths are resolved against.
	Root() string

	// Open opens the file at relPath, relative to Root.
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)

	// Close releases resources held by the source.
	Close() error
}
