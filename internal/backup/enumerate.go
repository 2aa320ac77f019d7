// Package backup implements the single backup pass of dashback.
//
// This package handles:
//   - File enumeration: walking a volume and deciding which files are
//     pending transfer
//   - Atomic per-file copies that never leave a half-written destination
//   - Run orchestration across volumes, with per-item error collection
//
// Enumeration and transfer are strictly sequential; the workload is
// disk-throughput bound and parallel writes to one destination drive
// would only complicate failure handling.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"dashback/internal/volumes"
)

// Warning records a per-item condition found during enumeration, such as
// an unreadable subdirectory. Warnings are skipped, reported, and never
// abort the walk.
type Warning struct {
	Path string
	Err  error
}

// Enumerator walks a volume's directory tree and yields the files
// pending backup. The filesystem query functions are injectable so the
// failure paths can be exercised in tests without real permission
// errors.
type Enumerator struct {
	ReadDir func(name string) ([]os.DirEntry, error)
	Stat    func(name string) (os.FileInfo, error)
}

// NewEnumerator returns an Enumerator backed by the real filesystem.
func NewEnumerator() *Enumerator {
	return &Enumerator{
		ReadDir: os.ReadDir,
		Stat:    os.Stat,
	}
}

// DestPathFor computes the destination path for a file: the destination
// root, then the volume display name, then the file's relative path.
// Keying by volume name keeps identical relative paths from different
// drives apart.
func DestPathFor(destRoot, volumeName, relPath string) string {
	return filepath.Join(destRoot, volumeName, relPath)
}

// Pending walks vol's directory tree and returns the files that are not
// yet mirrored under destRoot, plus any per-item warnings encountered.
//
// The walk order is deterministic: within each directory, entries are
// processed in name order with regular files before subdirectories, so
// list-only output and verbose logs are stable across runs. Non-regular
// entries (symlinks, sockets, devices) are skipped.
func (e *Enumerator) Pending(vol volumes.Volume, destRoot string) ([]PendingFile, []Warning) {
	var pending []PendingFile
	var warnings []Warning
	e.walk(vol, destRoot, "", &pending, &warnings)
	return pending, warnings
}

// walk processes one directory level. relDir is the directory's path
// relative to the volume root ("" for the root itself).
func (e *Enumerator) walk(vol volumes.Volume, destRoot, relDir string, pending *[]PendingFile, warnings *[]Warning) {
	dir := filepath.Join(vol.Path, relDir)

	entries, err := e.ReadDir(dir)
	if err != nil {
		*warnings = append(*warnings, Warning{Path: dir, Err: err})
		return
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		rel := filepath.Join(relDir, name)

		if entry.IsDir() {
			subdirs = append(subdirs, rel)
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		if rel == "" || !filepath.IsLocal(rel) {
			// A relative path must never escape the volume root.
			*warnings = append(*warnings, Warning{
				Path: filepath.Join(dir, name),
				Err:  fmt.Errorf("relative path %q escapes volume root", rel),
			})
			continue
		}

		srcPath := filepath.Join(dir, name)
		info, err := e.Stat(srcPath)
		if err != nil {
			*warnings = append(*warnings, Warning{Path: srcPath, Err: err})
			continue
		}

		dstInfo, dstErr := e.Stat(DestPathFor(destRoot, vol.Name, rel))
		if IsPending(info.Size(), info.ModTime(), dstInfo, dstErr) {
			*pending = append(*pending, PendingFile{
				SourcePath: srcPath,
				RelPath:    rel,
				Size:       info.Size(),
				ModTime:    info.ModTime(),
			})
		}
	}

	// Files first, then subdirectories, each already in name order.
	for _, rel := range subdirs {
		e.walk(vol, destRoot, rel, pending, warnings)
	}
}
