package compare

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"

	"github.com/sdejongh/hashdiff/pkg/models"
	"github.com/sdejongh/hashdiff/pkg/storage"
)

// MD5Comparator compares files by size first, then by streaming MD5 digest.
// The size check avoids hashing files that are trivially different; the
// digest pass reads in fixed-size chunks so memory stays bounded regardless
// of file size. Collision resistance is not a requirement here, only
// accidental-collision avoidance, which MD5 covers.
type MD5Comparator struct {
	bufferSize     int
	bufferPool     *sync.Pool
	progressReport func(path string, current, total int64) // Optional progress callback
	readerWrapper  ReaderWrapper                           // Optional reader wrapper (e.g., for rate limiting)
}

// NewMD5Comparator creates a new MD5-based comparator
func NewMD5Comparator(bufferSize int) *MD5Comparator {
	if bufferSize < 4096 {
		bufferSize = 4096
	}
	return &MD5Comparator{
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buf := make([]byte, bufferSize)
				return &buf
			},
		},
	}
}

// SetProgressCallback sets the progress reporting callback
func (c *MD5Comparator) SetProgressCallback(callback func(path string, current, total int64)) {
	c.progressReport = callback
}

// SetReaderWrapper sets a function to wrap readers (e.g., for rate limiting)
func (c *MD5Comparator) SetReaderWrapper(wrapper ReaderWrapper) {
	c.readerWrapper = wrapper
}

// Compare compares two files by size, then by full-content MD5 digest.
// Any stat or read failure on either side yields a "not same" verdict with
// the hash-error message; the underlying error is carried in Err so the
// caller can surface a diagnostic without aborting the rest of a run.
func (c *MD5Comparator) Compare(ctx context.Context, side1, side2 storage.Backend, path1, path2 string) *models.Comparison {
	cmp := &models.Comparison{
		Path1: path1,
		Path2: path2,
	}

	info1, err := side1.Stat(ctx, path1)
	if err != nil {
		cmp.Message = models.MsgHashError
		cmp.Err = fmt.Errorf("failed to stat %s: %w", path1, err)
		return cmp
	}

	info2, err := side2.Stat(ctx, path2)
	if err != nil {
		cmp.Message = models.MsgHashError
		cmp.Err = fmt.Errorf("failed to stat %s: %w", path2, err)
		return cmp
	}

	// Quick check: differing sizes prove inequality without reading content
	if info1.Size != info2.Size {
		cmp.Message = models.SizesDifferMessage(info1.Size, info2.Size)
		return cmp
	}

	hash1, err := c.computeHash(ctx, side1, path1, info1.Size)
	if err != nil {
		cmp.Message = models.MsgHashError
		cmp.Err = fmt.Errorf("failed to compute hash of %s: %w", path1, err)
		return cmp
	}

	hash2, err := c.computeHash(ctx, side2, path2, info2.Size)
	if err != nil {
		cmp.Message = models.MsgHashError
		cmp.Err = fmt.Errorf("failed to compute hash of %s: %w", path2, err)
		return cmp
	}

	if hash1 == hash2 {
		cmp.Match = true
		cmp.Message = models.MsgSame
		return cmp
	}

	cmp.Message = models.HashesDifferMessage(hash1, hash2)
	return cmp
}

// computeHash computes the MD5 digest of an entire file using streaming
func (c *MD5Comparator) computeHash(ctx context.Context, backend storage.Backend, path string, fileSize int64) (string, error) {
	reader, err := backend.Read(ctx, path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	// Apply reader wrapper if set (e.g., for rate limiting)
	if c.readerWrapper != nil {
		reader = c.readerWrapper(reader)
	}

	hash := md5.New()
	bufPtr := c.bufferPool.Get().(*[]byte)
	defer c.bufferPool.Put(bufPtr)
	buf := *bufPtr

	var bytesRead int64
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := reader.Read(buf)
		if n > 0 {
			hash.Write(buf[:n])
			bytesRead += int64(n)

			if c.progressReport != nil {
				c.progressReport(path, bytesRead, fileSize)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// Name returns the comparator name
func (c *MD5Comparator) Name() string {
	return "md5"
}
