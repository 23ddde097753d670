package libscan

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/AlmAck/listMissingLibs/internal/elfdeps"
)

// jobQueueSize bounds the number of paths waiting for extraction. Submit
// blocks when the queue is full, which keeps the scan from racing far ahead
// of slow workers.
const jobQueueSize = 256

type job struct {
	seq  uint64
	path string
}

type extraction struct {
	seq    uint64
	path   string
	output elfdeps.ExtractionOutput
}

type warningRecord struct {
	seq  uint64
	path string
	err  error
}

// Dispatcher owns the extraction worker pool. Paths submitted during the
// scan phase are handed to workers; per-file results are merged serially by
// a single goroutine, so the requirement index needs no locking.
//
// Lifecycle: Start, any number of Submit calls, then exactly one Wait.
// Index, Warnings and Stats must only be called after Wait has returned.
type Dispatcher struct {
	extractor  elfdeps.DependencyExtractor
	workers    int
	jobs       chan job
	results    chan extraction
	wg         sync.WaitGroup
	mergerDone chan struct{}
	seq        atomic.Uint64

	// Owned by the merge goroutine until mergerDone is closed
	index    *RequirementIndex
	warnings []warningRecord
	stats    ExtractionStats
}

// NewDispatcher creates a Dispatcher with the given worker count. Counts
// below one are raised to one.
func NewDispatcher(extractor elfdeps.DependencyExtractor, workers int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	return &Dispatcher{
		extractor:  extractor,
		workers:    workers,
		jobs:       make(chan job, jobQueueSize),
		results:    make(chan extraction, jobQueueSize),
		mergerDone: make(chan struct{}),
		index:      NewRequirementIndex(),
	}
}

// Start launches the extraction workers and the merge goroutine.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(i)
	}
	go d.merge()
}

// Submit queues path for dependency extraction. It blocks while the queue
// is full and fails only when ctx is canceled. Submit must not be called
// after Wait.
func (d *Dispatcher) Submit(ctx context.Context, path string) error {
	j := job{seq: d.seq.Add(1), path: path}
	select {
	case d.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until every submitted path has been extracted and merged.
// It must be called exactly once.
func (d *Dispatcher) Wait() {
	close(d.jobs)
	d.wg.Wait()
	close(d.results)
	<-d.mergerDone
}

// Index returns the merged requirement index. Only valid after Wait.
func (d *Dispatcher) Index() *RequirementIndex {
	return d.index
}

// Warnings returns the access warnings in submission order. Only valid
// after Wait.
func (d *Dispatcher) Warnings() []Warning {
	sorted := append([]warningRecord(nil), d.warnings...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].seq < sorted[j].seq })

	warnings := make([]Warning, len(sorted))
	for i, w := range sorted {
		warnings[i] = Warning{Path: w.path}
		if w.err != nil {
			warnings[i].Detail = w.err.Error()
		}
	}
	return warnings
}

// Stats returns the extraction outcome counters. Only valid after Wait.
func (d *Dispatcher) Stats() ExtractionStats {
	return d.stats
}

func (d *Dispatcher) worker(id int) {
	defer d.wg.Done()

	for j := range d.jobs {
		output := d.extractor.ExtractDependencies(j.path)
		d.results <- extraction{seq: j.seq, path: j.path, output: output}
	}
	slog.Debug("extraction worker drained", "worker_id", id)
}

func (d *Dispatcher) merge() {
	defer close(d.mergerDone)

	for r := range d.results {
		d.stats.Submitted++
		switch r.output.Result {
		case elfdeps.DynamicObject:
			d.stats.DynamicObjects++
			for _, name := range r.output.Libraries {
				d.index.Add(name, r.path, r.seq)
			}
		case elfdeps.StaticObject:
			d.stats.StaticObjects++
		case elfdeps.NotELFObject:
			d.stats.NonELF++
			if r.output.Err != nil {
				slog.Debug("skipping unparseable object", "path", r.path, "error", r.output.Err)
			}
		case elfdeps.AccessDenied:
			d.stats.AccessDenied++
			d.warnings = append(d.warnings, warningRecord{seq: r.seq, path: r.path, err: r.output.Err})
		}
	}
}
