package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sdejongh/hashdiff/pkg/models"
)

// HumanFormatter renders the report as flat text lines
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Write renders the diff report as text lines
func (f *HumanFormatter) Write(w io.Writer, report *models.DiffReport) error {
	switch report.Kind {
	case models.KindFiles:
		// Historical quirk: the prefixes are swapped relative to the match
		// result. Downstream scripts parse the current output, so the labels
		// stay as they are.
		prefix := "SAME: "
		if report.File.Match {
			prefix = "DIFF: "
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", prefix, report.File.Message); err != nil {
			return err
		}

	case models.KindDirs:
		// The report map is unordered; sorting here only stabilizes the
		// output without changing its contents.
		paths := make([]string, 0, len(report.Entries))
		for rel := range report.Entries {
			paths = append(paths, rel)
		}
		sort.Strings(paths)

		for _, rel := range paths {
			if _, err := fmt.Fprintf(w, "%s: %s\n", rel, report.Entries[rel]); err != nil {
				return err
			}
		}

	case models.KindMismatch:
		if _, err := fmt.Fprintln(w, models.MismatchMessage); err != nil {
			return err
		}
	}

	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// WriteSummary renders run statistics in human-readable form. The summary
// is separate from the report so the default output stays parseable.
func WriteSummary(w io.Writer, report *models.DiffReport) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Run %s completed in %s\n", report.RunID, report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  Scanned:   %d files (%s), %d files (%s)\n",
		report.Stats.FilesScanned1, report.Path1,
		report.Stats.FilesScanned2, report.Path2)
	fmt.Fprintf(w, "  Unique:    %d\n", report.Stats.FilesUnique)
	fmt.Fprintf(w, "  Compared:  %d\n", report.Stats.FilesCompared)
	fmt.Fprintf(w, "  Matched:   %d\n", report.Stats.FilesMatched)
	fmt.Fprintf(w, "  Differed:  %d\n", report.Stats.FilesDiffered)
	fmt.Fprintf(w, "  Errored:   %d\n", report.Stats.FilesErrored)
}
