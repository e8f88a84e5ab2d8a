package engine

import (
	"path/filepath"
	"time"
)

// Status is the terminal state of one candidate file within a run.
// Each file transitions exactly once: Pending -> {Planned|Moved|Skipped|Failed}.
type Status string

const (
	StatusPlanned Status = "Planned"
	StatusMoved   Status = "Moved"
	StatusSkipped Status = "Skipped"
	StatusFailed  Status = "Failed"
)

// FileEntry is an immutable snapshot of one candidate file, taken once per
// organizing run. Timestamps are not re-read mid-run.
type FileEntry struct {
	// Path is the absolute path of the file.
	Path string

	// Name is the base name including the extension.
	Name string

	// Ext is the lowercase extension including the leading dot ("" if none).
	Ext string

	// CreatedAt is the filesystem creation timestamp. Valid only when
	// CreatedKnown is true; not every platform exposes a birth time.
	CreatedAt    time.Time
	CreatedKnown bool

	// ModifiedAt is the filesystem modification timestamp.
	ModifiedAt time.Time

	// Size in bytes. Zero-byte files are organized like any other file.
	Size int64
}

// ExtOriginal returns the extension with its original casing, as it appears
// in the file name. Collision suffixes must preserve it so "IMG.JPG" dedupes
// to "IMG_1.JPG", not "IMG_1.jpg".
func (e FileEntry) ExtOriginal() string {
	return filepath.Ext(e.Name)
}

// MoveDecision is the planned destination for one FileEntry. The destination
// name is unique within the destination directory at decision time.
type MoveDecision struct {
	Source   string
	DestDir  string
	DestName string
	DryRun   bool
}

// DestPath returns the full destination path of the decision.
func (d MoveDecision) DestPath() string {
	return filepath.Join(d.DestDir, d.DestName)
}

// OutcomeRecord is the per-file result consumed by reporters. It is never
// mutated after creation.
type OutcomeRecord struct {
	Status      Status
	Source      string
	Destination string // empty when no destination applies
	Reason      string // failure or skip reason, empty otherwise
	At          time.Time
}

// Summary aggregates the outcome counts of one organizing pass.
type Summary struct {
	Planned int
	Moved   int
	Skipped int
	Failed  int
}

// Total returns the number of records counted.
func (s Summary) Total() int {
	return s.Planned + s.Moved + s.Skipped + s.Failed
}

func (s *Summary) count(st Status) {
	switch st {
	case StatusPlanned:
		s.Planned++
	case StatusMoved:
		s.Moved++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}
