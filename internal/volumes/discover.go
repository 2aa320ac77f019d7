// Package volumes provides discovery of mounted DashCam drives.
// This module handles scanning the system mount root for drives whose
// name matches the configured prefix.
package volumes

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// DefaultPrefix is the volume name prefix Tesla assigns to formatted
// DashCam drives. A car with several drives mounts them as "TESLADRIVE",
// "TESLADRIVE 1", "TESLADRIVE 2", and so on.
const DefaultPrefix = "TESLADRIVE"

// DefaultMountRoot returns the standard mount-point directory for the
// current operating system: /mnt on Linux, /Volumes on macOS. Other
// platforms are not supported.
func DefaultMountRoot() (string, error) {
	switch runtime.GOOS {
	case "linux":
		return "/mnt", nil
	case "darwin":
		return "/Volumes", nil
	default:
		return "", fmt.Errorf("unsupported platform %q: no known mount root", runtime.GOOS)
	}
}

// Discover scans mountRoot for directories whose name starts with prefix
// and returns them as Volumes in lexicographic name order. The match is
// case-sensitive and anchored at the start of the name; entries that
// merely contain the prefix elsewhere are excluded.
//
// An unreadable mount root is a fatal environment error. Finding zero
// volumes is not an error; the caller reports a no-op run.
func Discover(mountRoot, prefix string) ([]Volume, error) {
	entries, err := os.ReadDir(mountRoot)
	if err != nil {
		return nil, fmt.Errorf("cannot read mount root %s: %w", mountRoot, err)
	}

	found := make([]Volume, 0, 4)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		found = append(found, Volume{
			Path: filepath.Join(mountRoot, name),
			Name: name,
		})
	}

	// os.ReadDir already sorts by name, but we do not depend on that:
	// deterministic run order is a contract, not a side effect.
	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })

	return found, nil
}
