package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"dashback/internal/ui"
	"dashback/internal/volumes"
)

// Options carries the runtime configuration for one backup run. There is
// no persisted configuration; everything arrives via flags.
type Options struct {
	Destination string // Backup destination root, created if missing
	MountRoot   string // Directory scanned for mounted volumes
	Prefix      string // Volume name prefix (default "TESLADRIVE")
	ListOnly    bool   // Report pending files without copying
	Verbose     bool   // Per-file and per-volume status lines
}

// Stats summarizes one run. The summary is always reported, regardless
// of verbosity.
type Stats struct {
	Volumes  int           // Volumes discovered
	Copied   int           // Files transferred
	Listed   int           // Files reported in list-only mode
	Bytes    int64         // Bytes transferred
	Warnings int           // Per-item enumeration warnings (skipped entries)
	Failed   int           // Per-item transfer failures
	Elapsed  time.Duration // Wall-clock run duration
}

// ItemError records one non-fatal per-item failure collected during the
// transfer phase. Item errors never abort the run; they surface in the
// summary and force a non-zero exit at the end.
type ItemError struct {
	Path string
	Err  error
}

// Runner executes the single backup pass: discover volumes, enumerate
// pending files per volume, then copy or list them in order.
type Runner struct {
	opts Options
	enum *Enumerator
	out  io.Writer

	// Progress, when set, is invoked before each file transfer with the
	// 1-based index and total for the current volume. The interactive
	// progress view hooks in here.
	Progress func(index, total int, path string)

	// SpaceCheck validates destination free space before a volume's
	// transfers start. Injectable for tests; defaults to the gopsutil
	// backed check.
	SpaceCheck func(destRoot string, pendingBytes int64) error

	// Errors holds the per-item failures collected across the run.
	Errors []ItemError
}

// NewRunner returns a Runner writing status output to out.
func NewRunner(opts Options, out io.Writer) *Runner {
	return &Runner{
		opts:       opts,
		enum:       NewEnumerator(),
		out:        out,
		SpaceCheck: volumes.ValidateDestinationSpace,
	}
}

// Run performs the backup pass and returns its statistics.
//
// A returned error is fatal (environment error or cancellation); per-item
// failures are collected in r.Errors and counted in Stats.Failed instead.
// Cancellation stops before the next file transfer and never leaves a
// partial destination file; completed transfers remain valid and a later
// run resumes naturally because enumeration skips mirrored files.
func (r *Runner) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	// List-only runs never touch the destination, not even to create it.
	if !r.opts.ListOnly {
		if err := r.prepareDestination(); err != nil {
			return stats, err
		}
	}

	vols, err := volumes.Discover(r.opts.MountRoot, r.opts.Prefix)
	if err != nil {
		return stats, err
	}
	stats.Volumes = len(vols)

	if len(vols) == 0 {
		fmt.Fprintf(r.out, "No volumes matching %q found under %s\n", r.opts.Prefix, r.opts.MountRoot)
		stats.Elapsed = time.Since(start)
		return stats, nil
	}

	for _, vol := range vols {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
		if err := r.processVolume(ctx, vol, stats); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, err
		}
	}

	stats.Elapsed = time.Since(start)
	return stats, nil
}

// prepareDestination creates the destination root if missing and probes
// that it is writable. Failures here are environment errors: the run
// aborts before any transfer is attempted.
func (r *Runner) prepareDestination() error {
	dest := r.opts.Destination
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("cannot create destination %s: %w", dest, err)
	}

	probe, err := os.CreateTemp(dest, ".dashback.*")
	if err != nil {
		return fmt.Errorf("destination %s is not writable: %w", dest, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// processVolume enumerates one volume and copies (or lists) its pending
// files. Only cancellation propagates as an error; everything per-item
// is collected.
func (r *Runner) processVolume(ctx context.Context, vol volumes.Volume, stats *Stats) error {
	if r.opts.Verbose {
		r.printVolumeInfo(vol)
	}

	pending, warnings := r.enum.Pending(vol, r.opts.Destination)
	stats.Warnings += len(warnings)
	for _, w := range warnings {
		if r.opts.Verbose {
			fmt.Fprintf(r.out, "⚠️  Skipping %s: %v\n", w.Path, w.Err)
		}
	}

	if r.opts.ListOnly {
		for _, f := range pending {
			fmt.Fprintf(r.out, "%s -> %s\n", f.SourcePath, DestPathFor(r.opts.Destination, vol.Name, f.RelPath))
			stats.Listed++
		}
		return nil
	}

	var pendingBytes int64
	for _, f := range pending {
		pendingBytes += f.Size
	}
	if err := r.SpaceCheck(r.opts.Destination, pendingBytes); err != nil {
		// The whole volume is skipped rather than half-copied.
		r.Errors = append(r.Errors, ItemError{Path: vol.Path, Err: fmt.Errorf("skipping volume %s: %w", vol.Name, err)})
		stats.Failed++
		return nil
	}

	for i, f := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}

		destPath := DestPathFor(r.opts.Destination, vol.Name, f.RelPath)
		if r.Progress != nil {
			r.Progress(i+1, len(pending), filepath.Join(vol.Name, f.RelPath))
		}
		if r.opts.Verbose {
			fmt.Fprintf(r.out, "Copying %s (%s)\n", filepath.Join(vol.Name, f.RelPath), ui.FormatBytes(f.Size))
		}

		if err := CopyFile(ctx, f, destPath); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.Errors = append(r.Errors, ItemError{Path: f.SourcePath, Err: err})
			stats.Failed++
			continue
		}

		stats.Copied++
		stats.Bytes += f.Size
	}
	return nil
}

// printVolumeInfo reports one discovered volume with its filesystem
// usage. Usage failures are cosmetic and never abort the run.
func (r *Runner) printVolumeInfo(vol volumes.Volume) {
	info, err := volumes.Usage(vol.Path)
	if err != nil {
		fmt.Fprintf(r.out, "Volume %s (%s)\n", vol.Name, vol.Path)
		return
	}
	fmt.Fprintf(r.out, "Volume %s (%s, %s, %s used of %s)\n",
		vol.Name, vol.Path, info.Fstype,
		ui.FormatBytes(int64(info.Used)), ui.FormatBytes(int64(info.Total)))
}
