package models

import (
	"time"
)

// PathKind classifies the pair of input paths
type PathKind string

const (
	// KindFiles indicates both paths are regular files
	KindFiles PathKind = "files"
	// KindDirs indicates both paths are directories
	KindDirs PathKind = "dirs"
	// KindMismatch indicates the paths differ in kind (or are neither)
	KindMismatch PathKind = "mismatch"
)

// MismatchMessage is printed when the two paths cannot be compared
const MismatchMessage = "Both paths must be either files or directories."

// DiffReport represents the results of one comparison run
type DiffReport struct {
	// RunID uniquely identifies this run
	RunID string

	// Kind is the comparison strategy that was applied
	Kind PathKind

	// Path1 and Path2 are the input paths as given on the command line
	Path1 string
	Path2 string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// File holds the single result for the file-vs-file case
	File *Comparison

	// Entries maps relative path to result message for the directory case.
	// Only unique and differing files appear; identical files are omitted.
	// Iteration order carries no meaning.
	Entries map[string]string

	// Stats holds run metrics
	Stats Statistics
}

// Statistics holds comparison run metrics
type Statistics struct {
	// Files discovered under each root
	FilesScanned1 int
	FilesScanned2 int

	// Files present on exactly one side
	FilesUnique int

	// Files present on both sides, by outcome
	FilesCompared int
	FilesMatched  int
	FilesDiffered int
	FilesErrored  int
}

// HasDifferences reports whether the run found anything to report
func (r *DiffReport) HasDifferences() bool {
	switch r.Kind {
	case KindFiles:
		return r.File != nil && !r.File.Match
	case KindDirs:
		return len(r.Entries) > 0
	default:
		return false
	}
}
