package storage

import (
	"context"
	"io"
	"time"
)

// FileInfo represents metadata about a file
type FileInfo struct {
	Path         string
	Size         int64
	ModTime      time.Time
	IsDir        bool
	RelativePath string
}

// Backend defines the read-only interface over a comparison root.
// Implementations include the local filesystem; the differ never writes.
type Backend interface {
	// List returns every regular file under the root, recursively.
	// Non-regular entries (directories, symlinks, devices, sockets) are
	// excluded from the result.
	List(ctx context.Context) ([]FileInfo, error)

	// Read opens a file for reading, addressed relative to the root
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns file metadata, addressed relative to the root
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Exists checks if a path exists under the root
	Exists(ctx context.Context, path string) (bool, error)

	// Root returns the root path this backend was opened on
	Root() string

	// Close releases any resources held by the backend
	Close() error
}
