package output

import (
	"fmt"
	"os"

	"github.com/sdejongh/hashdiff/pkg/models"
)

// WriteReportFile writes the diff report to a file.
// Format can be "human" or "json". Runs without differences don't create
// an empty file.
func WriteReportFile(report *models.DiffReport, path string, format string) error {
	if !report.HasDifferences() {
		return nil
	}

	formatter := New(format)
	if formatter == nil {
		return fmt.Errorf("unknown report format: %s", format)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	return formatter.Write(file, report)
}
