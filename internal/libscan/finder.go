package libscan

import (
	"context"
	"log/slog"
	"time"

	"github.com/AlmAck/listMissingLibs/internal/elfdeps"
)

// Finder wires the scanner, the extraction worker pool and the requirement
// index into the full dependency check.
type Finder struct {
	cfg       Config
	scanner   *Scanner
	extractor elfdeps.DependencyExtractor
	runID     string
}

// Option configures a Finder.
type Option func(*Finder)

// WithExtractor replaces the standard metadata extractor.
func WithExtractor(e elfdeps.DependencyExtractor) Option {
	return func(f *Finder) { f.extractor = e }
}

// WithRunID attaches a run identifier to produced reports.
func WithRunID(runID string) Option {
	return func(f *Finder) { f.runID = runID }
}

// NewFinder creates a Finder for the given configuration.
func NewFinder(cfg Config, opts ...Option) *Finder {
	f := &Finder{
		cfg:       cfg.normalized(),
		scanner:   NewScanner(),
		extractor: elfdeps.NewStandardExtractor(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Check runs the full dependency check: scan the library roots, scan the
// binary roots, wait for extraction to drain, then resolve every required
// name against the set of available libraries.
func (f *Finder) Check(ctx context.Context) (*Report, error) {
	start := time.Now()

	slog.Debug("starting dependency check",
		"library_roots", f.cfg.LibraryRoots,
		"binary_roots", f.cfg.BinaryRoots,
		"workers", f.cfg.Workers,
		"run_id", f.runID)

	available := NewAvailableSet()
	dispatcher := NewDispatcher(f.extractor, f.cfg.Workers)
	dispatcher.Start()

	scanErr := f.scan(ctx, available, dispatcher)

	// Drain before inspecting any result, and even when the scan failed,
	// so no worker goroutine outlives the check.
	dispatcher.Wait()
	if scanErr != nil {
		return nil, scanErr
	}

	report := &Report{
		RunID:              f.runID,
		LibraryRoots:       f.cfg.LibraryRoots,
		BinaryRoots:        f.cfg.BinaryRoots,
		Missing:            dispatcher.Index().MissingAgainst(available),
		Warnings:           dispatcher.Warnings(),
		LibrariesAvailable: available.Len(),
		Extraction:         dispatcher.Stats(),
		DurationMS:         time.Since(start).Milliseconds(),
	}

	slog.Info("dependency check complete",
		"missing", len(report.Missing),
		"available", report.LibrariesAvailable,
		"scanned", report.Extraction.Submitted,
		"warnings", len(report.Warnings),
		"duration_ms", report.DurationMS)

	return report, nil
}

// scan runs the two scan passes. Every matching library name is recorded as
// available; symlinked libraries and binary-root symlinks are never
// submitted for extraction.
func (f *Finder) scan(ctx context.Context, available *AvailableSet, dispatcher *Dispatcher) error {
	err := f.scanner.ScanLibraryRoots(ctx, f.cfg.LibraryRoots, func(c Candidate) error {
		available.Add(c.Base)
		if c.Symlink {
			return nil
		}
		return dispatcher.Submit(ctx, c.Path)
	})
	if err != nil {
		return err
	}

	return f.scanner.ScanBinaryRoots(ctx, f.cfg.BinaryRoots, func(c Candidate) error {
		return dispatcher.Submit(ctx, c.Path)
	})
}
