package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportArchiveSaveAndOpen(t *testing.T) {
	archive, err := NewExportArchive(t.TempDir())
	require.NoError(t, err)

	name, err := archive.Save("Fall_2026/abc.pdf", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "Fall_2026/abc.pdf", name)

	file, err := archive.Open(name)
	require.NoError(t, err)
	defer file.Close()

	data, err := os.ReadFile(archive.Path(name))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestExportArchiveOpenMissing(t *testing.T) {
	archive, err := NewExportArchive(t.TempDir())
	require.NoError(t, err)

	_, err = archive.Open("nope.pdf")
	assert.Error(t, err)
}

func TestExportArchiveCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	archive, err := NewExportArchive(dir)
	require.NoError(t, err)

	_, err = archive.Save("old.pdf", []byte("old"))
	require.NoError(t, err)
	_, err = archive.Save("fresh.pdf", []byte("fresh"))
	require.NoError(t, err)

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.pdf"), stale, stale))

	deleted, err := archive.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"old.pdf"}, deleted)

	_, err = os.Stat(filepath.Join(dir, "fresh.pdf"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "old.pdf"))
	assert.True(t, os.IsNotExist(err))
}
