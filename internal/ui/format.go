package ui

import "fmt"

// FormatBytes formats a byte count as a human readable size with binary
// units. Precision scales with magnitude: two decimals under 10 units,
// one under 100, whole numbers above.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	units := []string{"B", "KB", "MB", "GB", "TB", "PB"}
	value := float64(bytes)
	idx := 0
	for value >= unit && idx < len(units)-1 {
		value /= unit
		idx++
	}

	switch {
	case value >= 100:
		return fmt.Sprintf("%.0f %s", value, units[idx])
	case value >= 10:
		return fmt.Sprintf("%.1f %s", value, units[idx])
	default:
		return fmt.Sprintf("%.2f %s", value, units[idx])
	}
}
