package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func pendingFor(t *testing.T, src string) PendingFile {
	t.Helper()
	info, err := os.Stat(src)
	require.NoError(t, err)
	return PendingFile{
		SourcePath: src,
		RelPath:    filepath.Base(src),
		Size:       info.Size(),
		ModTime:    info.ModTime(),
	}
}

func TestCopyFileCreatesParentsAndPreservesModTime(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("footage"), 0644))
	mtime := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	dest := filepath.Join(t.TempDir(), "TESLADRIVE", "SavedClips", "clip.mp4")
	require.NoError(t, CopyFile(context.Background(), pendingFor(t, src), dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "footage", string(data))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	require.True(t, info.ModTime().Equal(mtime))

	// No temporary artifacts left beside the copy.
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCopyFileCanceledLeavesNoPartialArtifact(t *testing.T) {
	src := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("footage"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	destDir := t.TempDir()
	dest := filepath.Join(destDir, "clip.mp4")
	err := CopyFile(ctx, pendingFor(t, src), dest)
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCopyFileMissingSource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "clip.mp4")
	err := CopyFile(context.Background(), PendingFile{SourcePath: "/does/not/exist"}, dest)
	require.Error(t, err)
	require.NoFileExists(t, dest)
}

func TestCopyFileRenameFailureCleansUp(t *testing.T) {
	src := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(src, []byte("footage"), 0644))

	// A directory squatting on the destination path makes the final
	// rename fail after the bytes were written.
	destDir := t.TempDir()
	dest := filepath.Join(destDir, "clip.mp4")
	require.NoError(t, os.Mkdir(dest, 0755))

	err := CopyFile(context.Background(), pendingFor(t, src), dest)
	require.Error(t, err)

	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	require.Len(t, entries, 1) // only the squatting directory, no .partial
	require.Equal(t, "clip.mp4", entries[0].Name())
	require.True(t, entries[0].IsDir())
}
