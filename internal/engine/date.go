package engine

import (
	"time"

	"github.com/roljohnt/chronosort/internal/config"
)

// OrganizingDate is the calendar date used to name a file's destination
// folder. It carries no time-of-day component.
type OrganizingDate struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) OrganizingDate {
	y, m, d := t.Date()
	return OrganizingDate{Year: y, Month: m, Day: d}
}

// String renders the destination folder name (YYYY-MM-DD).
func (d OrganizingDate) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(config.FolderDateFormat)
}

// IsDateFolder reports whether a folder name matches the YYYY-MM-DD pattern
// produced by organizing runs. Such folders hold already-sorted output and
// are never descended into.
func IsDateFolder(name string) bool {
	t, err := time.Parse(config.FolderDateFormat, name)
	if err != nil {
		return false
	}
	// time.Parse normalizes out-of-range components (e.g. 2025-02-31), so
	// round-trip to reject names that are not literal calendar dates.
	return t.Format(config.FolderDateFormat) == name
}
