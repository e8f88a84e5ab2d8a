package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveViaCopy_PreservesModificationTime(t *testing.T) {
	// A destination stamped with the copy time would resolve to today on the
	// next run and be moved out of its date folder again.
	dir := t.TempDir()
	src := filepath.Join(dir, "note.txt")
	dst := filepath.Join(dir, "moved.txt")
	mtime := time.Date(2025, 5, 2, 9, 30, 0, 0, time.Local)
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	require.NoError(t, moveViaCopy(src, dst))

	assert.NoFileExists(t, src)
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, OrganizingDate{2025, time.May, 2}, DateOf(info.ModTime()),
		"the moved file must keep the organizing date of the source")

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestMoveViaCopy_CopyFailureLeavesNoPartialDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "actually-a-dir")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.MkdirAll(src, 0755))

	assert.Error(t, moveViaCopy(src, dst))
	assert.NoFileExists(t, dst)
	assert.DirExists(t, src, "the source is left untouched")
}

func TestMoveViaCopy_SourceRemovalFailureKeepsSingleCopy(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory write permissions do not block removal on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}

	dir := t.TempDir()
	srcDir := filepath.Join(dir, "locked")
	require.NoError(t, os.MkdirAll(srcDir, 0755))
	src := filepath.Join(srcDir, "note.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0644))

	// A read-only parent makes the source unremovable after the copy.
	require.NoError(t, os.Chmod(srcDir, 0555))
	t.Cleanup(func() { _ = os.Chmod(srcDir, 0755) })

	assert.Error(t, moveViaCopy(src, dst))
	assert.NoFileExists(t, dst, "the duplicated destination is cleaned up")
	assert.FileExists(t, src)
}

func TestSnapshotEntry_CreationTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	info, err := os.Stat(path)
	require.NoError(t, err)
	entry := snapshotEntry(path, info)

	// Linux, macOS, and Windows all expose a birth or change time for a
	// fresh file.
	require.True(t, entry.CreatedKnown)
	assert.False(t, entry.CreatedAt.After(time.Now().Add(time.Minute)))
	assert.False(t, entry.CreatedAt.Before(time.Now().Add(-time.Minute)),
		"a just-created file's creation time is now")
}
