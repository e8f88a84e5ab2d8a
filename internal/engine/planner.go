package engine

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/roljohnt/chronosort/internal/config"
)

// DestinationPlanner computes collision-free destinations for one organizing
// pass. The claims table remembers names handed out earlier in the same pass,
// which matters for dry runs where nothing reaches the disk, and is discarded
// with the planner when the pass completes.
type DestinationPlanner struct {
	claims map[string]map[string]bool // destination dir -> names taken this run
}

// NewDestinationPlanner returns a planner with an empty claims table.
func NewDestinationPlanner() *DestinationPlanner {
	return &DestinationPlanner{claims: make(map[string]map[string]bool)}
}

// Plan computes the destination directory and a collision-free filename for
// the entry. It reads the filesystem to detect pre-existing files but never
// mutates it, so preview and real runs produce identical decisions.
func (p *DestinationPlanner) Plan(entry FileEntry, date OrganizingDate, destRoot string, dryRun bool) MoveDecision {
	destDir := filepath.Join(destRoot, date.String())

	name := entry.Name
	if p.collides(entry, destDir, name) {
		base := strings.TrimSuffix(name, entry.ExtOriginal())
		ext := entry.ExtOriginal()
		for counter := 1; ; counter++ {
			candidate := fmt.Sprintf(config.FormatCollision, base, counter, ext)
			if !p.collides(entry, destDir, candidate) {
				slog.Debug(config.MsgCollision,
					config.LogKeyComponent, config.CompPlanner,
					config.LogKeyFile, name,
					config.LogKeyDest, candidate,
				)
				name = candidate
				break
			}
		}
	}
	p.claim(destDir, name)

	return MoveDecision{
		Source:   entry.Path,
		DestDir:  destDir,
		DestName: name,
		DryRun:   dryRun,
	}
}

// collides reports whether the candidate name is taken, either by a file
// already on disk (that is not the source itself) or by a name claimed
// earlier in this run.
func (p *DestinationPlanner) collides(entry FileEntry, destDir, name string) bool {
	if p.claims[destDir][name] {
		return true
	}
	existing, err := os.Stat(filepath.Join(destDir, name))
	if err != nil {
		return false
	}
	if src, err := os.Stat(entry.Path); err == nil && os.SameFile(src, existing) {
		return false
	}
	return true
}

func (p *DestinationPlanner) claim(destDir, name string) {
	if p.claims[destDir] == nil {
		p.claims[destDir] = make(map[string]bool)
	}
	p.claims[destDir][name] = true
}
