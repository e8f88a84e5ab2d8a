// Package report renders engine outcome records for the CLI surface.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/roljohnt/chronosort/internal/config"
	"github.com/roljohnt/chronosort/internal/engine"
)

// Console writes one line per OutcomeRecord plus a closing summary block.
// Paths are shown relative to the run's target directory to keep the output
// readable; absolute paths stay absolute when they do not share the root.
type Console struct {
	Out  io.Writer
	Root string // target directory of the run, used to relativize paths
}

// NewConsole returns a reporter for one organizing run.
func NewConsole(out io.Writer, root string) *Console {
	return &Console{Out: out, Root: root}
}

// Banner prints the run header, mirroring the interactive tool's opening
// lines.
func (c *Console) Banner(dryRun bool) {
	fmt.Fprintf(c.Out, config.MsgOrganizingIn, c.Root)
	if dryRun {
		fmt.Fprint(c.Out, config.MsgDryRunBanner)
	}
	fmt.Fprint(c.Out, config.SummaryRule)
}

// Record renders a single outcome line.
func (c *Console) Record(rec engine.OutcomeRecord) {
	src := c.rel(rec.Source)
	switch {
	case rec.Reason != "":
		fmt.Fprintf(c.Out, config.FormatRecordReason, rec.Status, src, rec.Reason)
	case rec.Destination != "":
		fmt.Fprintf(c.Out, config.FormatRecordMove, rec.Status, src, c.rel(rec.Destination))
	default:
		fmt.Fprintf(c.Out, config.FormatRecordNoDest, rec.Status, src)
	}
}

// Summary renders the closing count block. After a dry run it adds a hint on
// how to perform the real move.
func (c *Console) Summary(s engine.Summary, dryRun bool) {
	fmt.Fprint(c.Out, config.SummaryRule)
	fmt.Fprint(c.Out, config.SummaryHeader)
	if dryRun {
		fmt.Fprintf(c.Out, config.FormatSummaryLine, engine.StatusPlanned, s.Planned)
	} else {
		fmt.Fprintf(c.Out, config.FormatSummaryLine, engine.StatusMoved, s.Moved)
	}
	fmt.Fprintf(c.Out, config.FormatSummaryLine, engine.StatusSkipped, s.Skipped)
	fmt.Fprintf(c.Out, config.FormatSummaryLine, engine.StatusFailed, s.Failed)
	if dryRun {
		fmt.Fprint(c.Out, config.MsgDryRunHint)
	}
}

func (c *Console) rel(path string) string {
	if c.Root == "" {
		return path
	}
	r, err := filepath.Rel(c.Root, path)
	if err != nil || strings.HasPrefix(r, "..") {
		return path
	}
	return r
}
