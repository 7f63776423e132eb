package models

import "fmt"

// Comparison holds the outcome of comparing two files
type Comparison struct {
	// Path1 is the file on the first side
	Path1 string

	// Path2 is the file on the second side
	Path2 string

	// Match indicates if the files have identical content
	Match bool

	// Message is the human-readable verdict shown in the report
	Message string

	// Err is the underlying failure when hashing could not complete.
	// A non-nil Err always comes with Match == false.
	Err error
}

// Report messages for the file comparator. Downstream scripts parse these
// exact strings, so they are defined once and never rebuilt ad hoc.
const (
	MsgSame      = "Files are the same."
	MsgHashError = "Error calculating MD5 hash."
)

// SizesDifferMessage formats the size short-circuit verdict
func SizesDifferMessage(size1, size2 int64) string {
	return fmt.Sprintf("Sizes differ: %d != %d", size1, size2)
}

// HashesDifferMessage formats the digest mismatch verdict
func HashesDifferMessage(hash1, hash2 string) string {
	return fmt.Sprintf("MD5 hashes differ: %s != %s", hash1, hash2)
}

// UniqueMessage formats the verdict for a file present on one side only
func UniqueMessage(root string) string {
	return "UNIQ: Only in " + root
}
