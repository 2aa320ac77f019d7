// Package volumes provides discovery of mounted DashCam drives.
// This module defines the core types used throughout the volumes package.
package volumes

// Volume represents one discovered removable drive usable as a backup source.
type Volume struct {
	Path string // Absolute mount path (e.g., "/mnt/TESLADRIVE 1")
	Name string // Display name, the final path segment (e.g., "TESLADRIVE 1")
}

// Info contains filesystem usage details for a mounted volume or the
// backup destination, as reported by the operating system.
type Info struct {
	Fstype string // Filesystem type (e.g., "vfat", "exfat", "ext4")
	Total  uint64 // Total capacity in bytes
	Free   uint64 // Free space in bytes
	Used   uint64 // Used space in bytes
}
