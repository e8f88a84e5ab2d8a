package engine

import (
	"log/slog"

	"github.com/roljohnt/chronosort/internal/config"
)

// DateResolver determines the organizing date for a file, preferring embedded
// photo capture metadata over filesystem timestamps.
type DateResolver struct {
	// Metadata supplies capture dates for image files. A nil reader disables
	// the metadata lookup entirely and timestamps are used directly.
	Metadata CaptureDateReader
}

// Resolve returns the best-known organizing date for the entry. It never
// fails: metadata problems degrade silently to the filesystem timestamps
// already captured in the snapshot, so repeated calls within a run yield the
// same date.
func (r *DateResolver) Resolve(entry FileEntry) OrganizingDate {
	if r.Metadata != nil && IsImage(entry.Ext) {
		if t, err := r.Metadata.CaptureDate(entry.Path); err == nil {
			slog.Debug(config.MsgCaptureDate,
				config.LogKeyComponent, config.CompResolver,
				config.LogKeyFile, entry.Name,
				config.LogKeyDate, DateOf(t).String(),
			)
			return DateOf(t)
		} else {
			slog.Debug(config.MsgMetadataMiss,
				config.LogKeyComponent, config.CompResolver,
				config.LogKeyFile, entry.Name,
				config.LogKeyError, err,
			)
		}
	}

	// Filesystem fallback: the earlier of creation and modification time.
	// Copying a file typically resets one but not both, so the minimum is
	// closest to the file's real age. Creation time is platform-dependent.
	ts := entry.ModifiedAt
	if entry.CreatedKnown && entry.CreatedAt.Before(ts) {
		ts = entry.CreatedAt
	}
	return DateOf(ts)
}
