package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// contextReader aborts an in-flight copy as soon as its context is
// canceled, without waiting for the current io.Copy to finish the file.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	select {
	case <-c.ctx.Done():
		return 0, c.ctx.Err()
	default:
		return c.r.Read(p)
	}
}

// CopyFile copies one pending file to destPath, creating any missing
// parent directories and preserving the source modification time.
//
// The copy is all-or-nothing: bytes are written to a temporary sibling
// file and renamed over the destination only after a complete, clean
// write. On any failure (I/O error, disk full, cancellation) the
// temporary file is removed, so the destination never shows a
// half-written clip.
func CopyFile(ctx context.Context, src PendingFile, destPath string) error {
	destDir := filepath.Dir(destPath)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", destDir, err)
	}

	in, err := os.Open(src.SourcePath)
	if err != nil {
		return fmt.Errorf("cannot open source %s: %w", src.SourcePath, err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(destDir, "."+filepath.Base(destPath)+".*.partial")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %s: %w", destDir, err)
	}
	tmpPath := tmp.Name()

	_, err = io.Copy(tmp, &contextReader{ctx: ctx, r: in})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, 0644)
	}
	if err == nil {
		// Preserve the source mtime so the freshness check recognizes
		// the copy on the next run.
		err = os.Chtimes(tmpPath, src.ModTime, src.ModTime)
	}
	if err == nil {
		err = os.Rename(tmpPath, destPath)
	}

	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("copy %s: %w", src.SourcePath, err)
	}
	return nil
}
