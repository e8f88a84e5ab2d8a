package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djherbis/times"

	"github.com/roljohnt/chronosort/internal/config"
)

// ErrInvalidTarget marks the only fatal condition of a run: the target
// directory is missing or is not a directory. It is surfaced before any file
// is touched.
var ErrInvalidTarget = errors.New("invalid target directory")

// OrganizeConfig contains all parameters required to perform one pass.
type OrganizeConfig struct {
	TargetDir string // Directory whose immediate files are organized
	DryRun    bool   // When true, no filesystem mutation happens
}

// Organizer enumerates candidate files in a target directory, resolves each
// file's organizing date, plans a collision-free destination, and performs or
// simulates the move. Files are processed one at a time in lexicographic
// order; a single Organize call per target directory is assumed in flight.
type Organizer struct {
	Clock    Clock             // Interface for time mocking.
	Metadata CaptureDateReader // Capture-date source for image files.

	// Report, when set, receives each OutcomeRecord as it is produced. The
	// callback runs on the organizing goroutine; GUI callers marshal to
	// their render thread themselves.
	Report func(OutcomeRecord)
}

// Organize runs one pass over the immediate files of cfg.TargetDir and
// returns the per-file outcome records plus their summary. The error return
// covers only an invalid target and context cancellation; per-file failures
// become Failed records and never abort the pass. The context is checked
// between files, which is the only suspension point collaborators can rely
// on for cancellation.
func (o *Organizer) Organize(ctx context.Context, cfg OrganizeConfig) ([]OutcomeRecord, Summary, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDir, cfg.TargetDir,
		config.LogKeyDryRun, cfg.DryRun,
	)

	info, err := os.Stat(cfg.TargetDir)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("%w: %s: %v", ErrInvalidTarget, config.ErrTargetMissing, err)
	}
	if !info.IsDir() {
		return nil, Summary{}, fmt.Errorf("%w: %s: %s", ErrInvalidTarget, config.ErrTargetNotDir, cfg.TargetDir)
	}

	// os.ReadDir returns entries sorted by name, which gives the
	// deterministic processing order.
	dirents, err := os.ReadDir(cfg.TargetDir)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("%w: %s: %v", ErrInvalidTarget, config.ErrTargetRead, err)
	}

	log.Info(config.MsgRunStarted)

	resolver := &DateResolver{Metadata: o.Metadata}
	planner := NewDestinationPlanner()

	var (
		records []OutcomeRecord
		summary Summary
	)
	emit := func(rec OutcomeRecord) {
		records = append(records, rec)
		summary.count(rec.Status)
		log.Debug(config.MsgEntryOutcome,
			config.LogKeySource, rec.Source,
			config.LogKeyStatus, string(rec.Status),
			config.LogKeyReason, rec.Reason,
		)
		if o.Report != nil {
			o.Report(rec)
		}
	}

	for _, dirent := range dirents {
		if err := ctx.Err(); err != nil {
			log.Info(config.MsgRunCancelled)
			return records, summary, err
		}

		path := filepath.Join(cfg.TargetDir, dirent.Name())

		// Directories are not candidates. Date-named folders hold output
		// from earlier runs and are never descended into; they are common
		// enough on re-runs that only foreign directories get a log line.
		if dirent.IsDir() {
			if !IsDateFolder(dirent.Name()) {
				log.Debug(config.MsgSkippedDir, config.LogKeyFile, dirent.Name())
			}
			continue
		}

		if dirent.Type()&os.ModeSymlink != 0 {
			emit(o.record(StatusSkipped, path, "", config.ReasonSymlink))
			continue
		}

		if strings.HasPrefix(dirent.Name(), config.HiddenFilePrefix) {
			emit(o.record(StatusSkipped, path, "", config.ReasonHidden))
			continue
		}

		info, err := dirent.Info()
		if err != nil {
			emit(o.record(StatusFailed, path, "", fmt.Sprintf("%s: %v", config.ErrStatFile, err)))
			continue
		}

		entry := snapshotEntry(path, info)
		date := resolver.Resolve(entry)

		// A target directory that itself carries the file's date name means
		// the file is already where a run would put it. Reporting it Skipped
		// keeps repeated runs idempotent.
		if filepath.Base(cfg.TargetDir) == date.String() {
			emit(o.record(StatusSkipped, path, path, config.ReasonAlreadyOrganized))
			continue
		}

		decision := planner.Plan(entry, date, cfg.TargetDir, cfg.DryRun)

		if cfg.DryRun {
			emit(o.record(StatusPlanned, path, decision.DestPath(), ""))
			continue
		}

		if err := performMove(decision); err != nil {
			emit(o.record(StatusFailed, path, decision.DestPath(), err.Error()))
			continue
		}
		emit(o.record(StatusMoved, path, decision.DestPath(), ""))
	}

	log.Info(config.MsgRunFinished,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyMoved, summary.Moved),
			slog.Int(config.LogKeyPlanned, summary.Planned),
			slog.Int(config.LogKeySkipped, summary.Skipped),
			slog.Int(config.LogKeyFailed, summary.Failed),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return records, summary, nil
}

// record assembles one stamped OutcomeRecord.
func (o *Organizer) record(st Status, source, dest, reason string) OutcomeRecord {
	var at time.Time
	if o.Clock != nil {
		at = o.Clock.Now()
	} else {
		at = time.Now()
	}
	return OutcomeRecord{
		Status:      st,
		Source:      source,
		Destination: dest,
		Reason:      reason,
		At:          at,
	}
}

// performMove creates the destination folder and moves the file into it.
// Creation is idempotent; the move renames in place and falls back to
// copy-and-remove when source and destination sit on different devices.
func performMove(d MoveDecision) error {
	if err := os.MkdirAll(d.DestDir, config.DirPermShared); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateDestDir, err)
	}

	dest := d.DestPath()
	if err := os.Rename(d.Source, dest); err == nil {
		return nil
	}

	if err := moveViaCopy(d.Source, dest); err != nil {
		return fmt.Errorf("%s: %w", config.ErrMoveFile, err)
	}
	return nil
}

// moveViaCopy moves a file by copying it and removing the source. The copy
// must keep the source's timestamps: a destination stamped with the copy time
// would resolve to a different organizing date on the next run and be moved
// again. On any failure the destination copy is removed so the source stays
// the single surviving copy.
func moveViaCopy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Chtimes(dst, times.Get(info).AccessTime(), info.ModTime()); err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := os.Remove(src); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// copyFile copies src to dst, used when a plain rename crosses devices.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
