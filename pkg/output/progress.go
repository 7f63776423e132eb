package output

import (
	"io"
	"sync"

	"github.com/cheggaaa/pb/v3"
)

// HashProgress renders a progress bar while the comparator streams a file
// through the hash. Files are hashed one at a time, so a single bar is
// recycled from file to file.
type HashProgress struct {
	writer io.Writer

	mu   sync.Mutex
	bar  *pb.ProgressBar
	path string
}

// NewHashProgress creates a progress display writing to w (typically stderr,
// so the report on stdout stays parseable)
func NewHashProgress(w io.Writer) *HashProgress {
	return &HashProgress{writer: w}
}

// Callback returns a progress callback suitable for a comparator's
// SetProgressCallback hook
func (p *HashProgress) Callback() func(path string, current, total int64) {
	return func(path string, current, total int64) {
		p.mu.Lock()
		defer p.mu.Unlock()

		if p.bar == nil || p.path != path {
			if p.bar != nil {
				p.bar.Finish()
			}
			p.path = path
			p.bar = pb.Full.Start64(total)
			p.bar.SetWriter(p.writer)
			p.bar.Set(pb.Bytes, true)
			p.bar.Set("prefix", path+" ")
		}

		p.bar.SetCurrent(current)
	}
}

// Finish completes and clears the active bar, if any
func (p *HashProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
		p.path = ""
	}
}
