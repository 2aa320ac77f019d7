// Package main implements the entry point for dashback.
//
// This package handles:
//   - Command-line parsing and validation
//   - Signal handling for clean cancellation between file transfers
//   - Choosing between plain output and the interactive progress view
//   - Exit-code mapping: 0 on full success (including a no-op run),
//     non-zero on environment errors or any per-file failure
//
// dashback copies Tesla DashCam footage from mounted USB drives whose
// name starts with a prefix (default "TESLADRIVE") to a backup
// destination, preserving the relative directory structure per drive.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dashback/internal/backup"
	"dashback/internal/ui"
	"dashback/internal/volumes"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Version is the release version reported by --version.
const Version = "1.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("❌ "+err.Error()))
		os.Exit(1)
	}
}

// newRootCommand builds the dashback CLI: a single command, no
// subcommands, no persisted configuration.
func newRootCommand() *cobra.Command {
	var opts backup.Options

	cmd := &cobra.Command{
		Use:     "dashback",
		Short:   "Back up Tesla DashCam footage from USB drives",
		Version: Version,
		Long: `dashback scans the system mount directory for Tesla DashCam drives
("TESLADRIVE", "TESLADRIVE 1", ...) and copies their footage to a backup
destination. Files already mirrored at the destination are skipped, so
repeated runs only transfer new clips.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Destination, "destination", "d", "", "backup destination root (created if missing)")
	flags.BoolVarP(&opts.ListOnly, "list-only", "l", false, "list pending files without copying anything")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "emit per-file and per-volume status lines")
	flags.StringVar(&opts.Prefix, "prefix", volumes.DefaultPrefix, "volume name prefix to back up")
	flags.StringVar(&opts.MountRoot, "mount-root", "", "mount directory to scan (default /mnt on Linux, /Volumes on macOS)")
	cmd.MarkFlagRequired("destination")

	return cmd
}

// run executes one backup pass and maps its outcome to the process exit
// status via the returned error.
func run(opts backup.Options) error {
	if opts.MountRoot == "" {
		root, err := volumes.DefaultMountRoot()
		if err != nil {
			return err
		}
		opts.MountRoot = root
	}

	// Interrupts cancel between file transfers; the atomic copy step
	// guarantees no half-written file survives either way.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := backup.NewRunner(opts, os.Stdout)

	var stats *backup.Stats
	var err error
	if useProgressView(opts) {
		stats, err = runWithProgress(ctx, runner)
	} else {
		stats, err = runner.Run(ctx)
	}

	for _, item := range runner.Errors {
		fmt.Println(ui.Error(fmt.Sprintf("❌ %v", item.Err)))
	}
	if stats != nil {
		fmt.Println(ui.RenderSummary(ui.RunSummary{
			Volumes:  stats.Volumes,
			Copied:   stats.Copied,
			Listed:   stats.Listed,
			Bytes:    stats.Bytes,
			Warnings: stats.Warnings,
			Failed:   stats.Failed,
			Elapsed:  stats.Elapsed,
			ListOnly: opts.ListOnly,
		}))
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("interrupted: completed transfers remain valid, rerun to resume")
		}
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d item(s) failed to copy", stats.Failed)
	}
	return nil
}

// useProgressView decides between plain line output and the interactive
// progress view: copies to a real terminal get the live view, while
// list-only, verbose, and piped runs stay line oriented.
func useProgressView(opts backup.Options) bool {
	return !opts.ListOnly && !opts.Verbose && isatty.IsTerminal(os.Stdout.Fd())
}

// runWithProgress drives the backup pass under the Bubble Tea progress
// view, feeding it a ProgressUpdate per file and a final Done message.
func runWithProgress(ctx context.Context, runner *backup.Runner) (*backup.Stats, error) {
	p := tea.NewProgram(ui.NewProgressModel(), tea.WithContext(ctx))
	runner.Progress = func(index, total int, path string) {
		p.Send(ui.ProgressUpdate{Index: index, Total: total, Path: path})
	}

	type result struct {
		stats *backup.Stats
		err   error
	}
	done := make(chan result, 1)
	go func() {
		stats, err := runner.Run(ctx)
		p.Send(ui.ProgressUpdate{Done: true, Err: err})
		done <- result{stats: stats, err: err}
	}()

	// The view is cosmetic: if the terminal program fails, the run in
	// the goroutine still decides the outcome.
	p.Run()

	res := <-done
	return res.stats, res.err
}
