// Package main provides the entry point for the missing-library checker.
// It resolves scan roots from flags and the environment, runs the dependency
// check and renders the report as text or JSON.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/AlmAck/listMissingLibs/internal/cli"
	"github.com/AlmAck/listMissingLibs/internal/common"
	"github.com/AlmAck/listMissingLibs/internal/libscan"
	"github.com/AlmAck/listMissingLibs/internal/logging"
	"github.com/AlmAck/listMissingLibs/internal/terminal"
)

// Error definitions
var (
	ErrNoScanRoots = errors.New("no scannable roots configured")
)

var (
	libDirs      = flag.String("libdirs", "", "colon-separated library roots (default: /usr plus /opt when present)")
	binDirs      = flag.String("bindirs", "", "colon-separated executable roots (default: $PATH, or /usr/bin when unset)")
	workers      = flag.Int("workers", 0, "number of extraction workers (default: number of CPUs)")
	outputFormat = flag.String("format", "text", "output format (text, json)")
	forceColor   = flag.Bool("color", false, "force colored output")
	disableColor = flag.Bool("no-color", false, "disable colored output")
	logLevel     = flag.String("log-level", "", "stderr log level (debug, info, warn, error; default: warn)")
	logDir       = flag.String("log-dir", "", "directory to place per-run JSON log (auto-named)")
	quiet        = flag.Bool("quiet", false, "suppress per-file read warnings")
)

func main() {
	// Generate run ID early for error handling
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		var preScanErr *logging.PreScanError
		if errors.As(err, &preScanErr) {
			logging.HandlePreScanError(preScanErr.Type, preScanErr.Message, preScanErr.Component, runID)
		} else {
			logging.HandlePreScanError(logging.ErrorTypeSystemError, err.Error(), "main", runID)
		}
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	// Set up context with cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := logging.Setup(logging.Options{
		Level:  *logLevel,
		LogDir: *logDir,
		RunID:  runID,
		Quiet:  *quiet,
	}); err != nil {
		return &logging.PreScanError{
			Type:      logging.ErrorTypeLogFileOpen,
			Message:   fmt.Sprintf("Failed to setup logger: %v", err),
			Component: "logging",
			RunID:     runID,
			Err:       err,
		}
	}

	format, err := cli.ParseOutputFormat(*outputFormat)
	if err != nil {
		return &logging.PreScanError{
			Type:      logging.ErrorTypeInvalidArguments,
			Message:   fmt.Sprintf("Invalid -format value %q: %v", *outputFormat, err),
			Component: "cli",
			RunID:     runID,
			Err:       err,
		}
	}

	cfg := libscan.Config{
		LibraryRoots: resolveLibraryRoots(*libDirs),
		BinaryRoots:  resolveBinaryRoots(*binDirs),
		Workers:      *workers,
	}
	if len(cfg.LibraryRoots) == 0 && len(cfg.BinaryRoots) == 0 {
		return &logging.PreScanError{
			Type:      logging.ErrorTypeInvalidArguments,
			Message:   "No scannable roots configured; check -libdirs and -bindirs",
			Component: "cli",
			RunID:     runID,
			Err:       ErrNoScanRoots,
		}
	}

	finder := libscan.NewFinder(cfg, libscan.WithRunID(runID))
	report, err := finder.Check(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &logging.PreScanError{
				Type:      logging.ErrorTypeUserInterrupted,
				Message:   "Scan interrupted",
				Component: "libscan",
				RunID:     runID,
				Err:       err,
			}
		}
		return fmt.Errorf("dependency check failed: %w", err)
	}

	// Findings are report content, not tool failure. The process exits
	// non-zero only when the check itself could not run.
	return render(report, format)
}

// resolveLibraryRoots applies the -libdirs override or falls back to the
// standard roots.
func resolveLibraryRoots(override string) []string {
	if override != "" {
		return splitRootList(override)
	}
	return libscan.DefaultLibraryRoots(common.NewDefaultFileSystem())
}

// resolveBinaryRoots applies the -bindirs override or derives roots from
// PATH. The environment is read once here; the scan never consults it.
func resolveBinaryRoots(override string) []string {
	if override != "" {
		return splitRootList(override)
	}
	pathVar, set := os.LookupEnv("PATH")
	return libscan.BinaryRootsFromPath(pathVar, set)
}

// splitRootList splits a colon-separated root list, dropping empty entries.
func splitRootList(value string) []string {
	var roots []string
	for _, p := range filepath.SplitList(value) {
		if p != "" {
			roots = append(roots, p)
		}
	}
	return roots
}

// render writes the report in the selected format. Text reports go to
// stderr, keeping stdout clean; JSON reports go to stdout so they can be
// piped.
func render(report *libscan.Report, format cli.OutputFormat) error {
	var renderer cli.Renderer
	switch format {
	case cli.OutputFormatJSON:
		renderer = cli.NewJSONRenderer(os.Stdout)
	default:
		capabilities := terminal.NewCapabilities(terminal.Options{
			PreferenceOptions: terminal.PreferenceOptions{
				ForceColor:   *forceColor,
				DisableColor: *disableColor,
			},
		})
		renderer = cli.NewTextRenderer(os.Stderr, capabilities.SupportsColor(), *quiet)
	}

	if err := renderer.Render(report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
