package output

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/sdejongh/hashdiff/pkg/models"
)

// JSONFormatter renders the report as JSON for automation and scripting
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// JSONEntry represents one reported difference
type JSONEntry struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// JSONFileResult represents the file-vs-file verdict
type JSONFileResult struct {
	Match   bool   `json:"match"`
	Message string `json:"message"`
}

// JSONStatsData represents run statistics
type JSONStatsData struct {
	FilesScanned1 int `json:"files_scanned_1"`
	FilesScanned2 int `json:"files_scanned_2"`
	FilesUnique   int `json:"files_unique"`
	FilesCompared int `json:"files_compared"`
	FilesMatched  int `json:"files_matched"`
	FilesDiffered int `json:"files_differed"`
	FilesErrored  int `json:"files_errored"`
}

// JSONReport is the top-level JSON document
type JSONReport struct {
	RunID      string          `json:"run_id"`
	Generated  string          `json:"generated"`
	Kind       string          `json:"kind"`
	Path1      string          `json:"path1"`
	Path2      string          `json:"path2"`
	DurationMs int64           `json:"duration_ms"`
	Stats      JSONStatsData   `json:"stats"`
	File       *JSONFileResult `json:"file,omitempty"`
	Entries    []JSONEntry     `json:"entries,omitempty"`
}

// Write renders the diff report as indented JSON
func (f *JSONFormatter) Write(w io.Writer, report *models.DiffReport) error {
	doc := JSONReport{
		RunID:      report.RunID,
		Generated:  time.Now().Format(time.RFC3339),
		Kind:       string(report.Kind),
		Path1:      report.Path1,
		Path2:      report.Path2,
		DurationMs: report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			FilesScanned1: report.Stats.FilesScanned1,
			FilesScanned2: report.Stats.FilesScanned2,
			FilesUnique:   report.Stats.FilesUnique,
			FilesCompared: report.Stats.FilesCompared,
			FilesMatched:  report.Stats.FilesMatched,
			FilesDiffered: report.Stats.FilesDiffered,
			FilesErrored:  report.Stats.FilesErrored,
		},
	}

	if report.File != nil {
		doc.File = &JSONFileResult{
			Match:   report.File.Match,
			Message: report.File.Message,
		}
	}

	if len(report.Entries) > 0 {
		doc.Entries = make([]JSONEntry, 0, len(report.Entries))
		for rel, msg := range report.Entries {
			doc.Entries = append(doc.Entries, JSONEntry{Path: rel, Message: msg})
		}
		sort.Slice(doc.Entries, func(i, j int) bool {
			return doc.Entries[i].Path < doc.Entries[j].Path
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
