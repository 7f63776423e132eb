package output

import (
	"io"

	"github.com/sdejongh/hashdiff/pkg/models"
)

// Formatter defines the interface for report formatting
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Write renders the diff report to the writer
	Write(w io.Writer, report *models.DiffReport) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for the given format name, or nil if the
// format is unknown
func New(format string) Formatter {
	switch format {
	case "human":
		return NewHumanFormatter()
	case "json":
		return NewJSONFormatter()
	default:
		return nil
	}
}
