package backup

import (
	"os"
	"time"
)

// modTimeTolerance absorbs the coarse timestamp resolution of FAT-family
// filesystems (2 second granularity on vfat), so a copy that faithfully
// preserved the modification time is never re-transferred.
const modTimeTolerance = 2 * time.Second

// PendingFile represents one source file that is not yet faithfully
// mirrored at the destination.
type PendingFile struct {
	SourcePath string    // Absolute path on the source volume
	RelPath    string    // Path relative to the volume root
	Size       int64     // Size in bytes
	ModTime    time.Time // Source modification time
}

// IsPending reports whether a source file with the given size and
// modification time must be copied, given the stat result for its
// computed destination path.
//
// A file is pending when the destination does not exist, or when it
// differs by size or modification time. Footage files are immutable once
// written by the recording device, so this cheap freshness check stands
// in for a content hash.
func IsPending(size int64, modTime time.Time, dst os.FileInfo, statErr error) bool {
	if statErr != nil {
		// Missing or unreadable destination: copy it.
		return true
	}
	if !dst.Mode().IsRegular() {
		return true
	}
	if dst.Size() != size {
		return true
	}

	delta := modTime.Sub(dst.ModTime())
	if delta < 0 {
		delta = -delta
	}
	return delta > modTimeTolerance
}
