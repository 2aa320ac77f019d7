// Package volumes provides discovery of mounted DashCam drives.
// This module handles disk usage queries for volumes and the backup
// destination, used for verbose reporting and space validation.
package volumes

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// Usage returns filesystem usage for the given path. It is used to
// annotate discovered volumes in verbose output and to validate free
// space on the destination before transfers begin.
func Usage(path string) (*Info, error) {
	stat, err := disk.Usage(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat filesystem at %s: %w", path, err)
	}
	return &Info{
		Fstype: stat.Fstype,
		Total:  stat.Total,
		Free:   stat.Free,
		Used:   stat.Used,
	}, nil
}

// ValidateDestinationSpace checks that the destination filesystem has
// room for pendingBytes more data. Returns a detailed error when the
// destination is too small; transfers for the affected volume are
// skipped rather than half-written.
func ValidateDestinationSpace(destRoot string, pendingBytes int64) error {
	info, err := Usage(destRoot)
	if err != nil {
		return fmt.Errorf("cannot check free space on destination: %w", err)
	}

	if pendingBytes > 0 && uint64(pendingBytes) > info.Free {
		return fmt.Errorf("insufficient space on %s: need %d bytes, %d bytes free",
			destRoot, pendingBytes, info.Free)
	}

	return nil
}
