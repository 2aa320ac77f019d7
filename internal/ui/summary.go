package ui

import (
	"fmt"
	"strings"
	"time"
)

// RunSummary carries the end-of-run counters into the summary block. The
// summary always prints, whatever the verbosity level.
type RunSummary struct {
	Volumes  int
	Copied   int
	Listed   int
	Bytes    int64
	Warnings int
	Failed   int
	Elapsed  time.Duration
	ListOnly bool
}

// RenderSummary formats the final summary block for a run.
func RenderSummary(s RunSummary) string {
	var b strings.Builder

	if s.ListOnly {
		fmt.Fprintf(&b, "Volumes found:  %d\n", s.Volumes)
		fmt.Fprintf(&b, "Files pending:  %d\n", s.Listed)
	} else {
		fmt.Fprintf(&b, "Volumes found:  %d\n", s.Volumes)
		fmt.Fprintf(&b, "Files copied:   %d (%s)\n", s.Copied, FormatBytes(s.Bytes))
	}
	fmt.Fprintf(&b, "Warnings:       %d\n", s.Warnings)
	fmt.Fprintf(&b, "Failed:         %d\n", s.Failed)
	fmt.Fprintf(&b, "Elapsed:        %s", s.Elapsed.Round(time.Millisecond))

	box := summaryBoxStyle.Render(b.String())

	switch {
	case s.Failed > 0:
		return box + "\n" + Error("❌ Backup finished with errors")
	case s.Warnings > 0:
		return box + "\n" + Warn("⚠️  Backup finished with warnings")
	default:
		return box + "\n" + Success("✅ Backup complete")
	}
}
