package compare

import (
	"context"
	"io"

	"github.com/sdejongh/hashdiff/pkg/models"
	"github.com/sdejongh/hashdiff/pkg/storage"
)

// ReaderWrapper wraps a reader before hashing (e.g., for rate limiting)
type ReaderWrapper func(io.ReadCloser) io.ReadCloser

// Comparator defines the interface for file comparison algorithms.
// A comparator never fails a run: any per-file failure is folded into the
// returned Comparison with Match == false and Err set.
type Comparator interface {
	// Compare decides whether two files have identical content.
	// path1 and path2 are relative to their respective backends.
	Compare(ctx context.Context, side1, side2 storage.Backend, path1, path2 string) *models.Comparison

	// Name returns the name of the comparison method
	Name() string
}
