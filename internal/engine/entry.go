package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/djherbis/times"
)

// snapshotEntry captures the immutable FileEntry for one candidate file.
// Creation time comes from the platform's timespec where one exists; Linux
// exposes no birth time, so the inode change time stands in for it.
func snapshotEntry(path string, info os.FileInfo) FileEntry {
	name := info.Name()
	entry := FileEntry{
		Path:       path,
		Name:       name,
		Ext:        strings.ToLower(filepath.Ext(name)),
		ModifiedAt: info.ModTime(),
		Size:       info.Size(),
	}
	ts := times.Get(info)
	switch {
	case ts.HasBirthTime():
		entry.CreatedAt = ts.BirthTime()
		entry.CreatedKnown = true
	case ts.HasChangeTime():
		entry.CreatedAt = ts.ChangeTime()
		entry.CreatedKnown = true
	}
	return entry
}
