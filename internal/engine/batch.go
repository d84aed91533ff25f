package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/strsift/strsift/internal/aggregate"
	"github.com/strsift/strsift/internal/cache"
	"github.com/strsift/strsift/internal/types"
)

// BatchProcessor scans multiple files concurrently, each under its own
// Scan, and merges the per-file reports into one.
type BatchProcessor struct {
	cfg         Config
	concurrency int
	logger      *slog.Logger
	cache       *cache.DB

	mu      sync.Mutex
	results []*types.ScanReport
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch-level events.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of files scanned at once.
// Default is 4.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithCache reuses cached per-file reports when content hashes still
// match, and records fresh reports for changed files. The caller owns
// loading and saving the DB.
func WithCache(db *cache.DB) BatchOption {
	return func(b *BatchProcessor) {
		b.cache = db
	}
}

// NewBatchProcessor builds a BatchProcessor. cfg drives every per-file
// scan and must be valid; validation happens once here rather than per
// file.
func NewBatchProcessor(cfg Config, opts ...BatchOption) (*BatchProcessor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bp := &BatchProcessor{
		cfg:         cfg,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(bp)
	}
	if bp.logger == nil {
		bp.logger = slog.Default()
	}
	return bp, nil
}

// Target is one named buffer in a batch. Name becomes the report's Source
// and ends up in the merged entries' source lists.
type Target struct {
	Name string
	Load func() ([]byte, error)
}

// FileTargets adapts walk results under root into batch targets.
func FileTargets(root string, rels []string) []Target {
	out := make([]Target, len(rels))
	for i, rel := range rels {
		rel := rel
		out[i] = Target{
			Name: rel,
			Load: func() ([]byte, error) { return ReadTarget(root, rel) },
		}
	}
	return out
}

// Process scans every target and returns the per-target reports in input
// order plus the merged report. A target whose Load fails is logged and
// skipped; its slot in the per-target slice stays nil. Cancellation stops
// the batch, and scans already running finish as truncated partials.
func (bp *BatchProcessor) Process(ctx context.Context, targets []Target) ([]*types.ScanReport, *types.ScanReport, error) {
	bp.logger.Info("starting batch scan",
		"total_targets", len(targets),
		"concurrency", bp.concurrency,
	)
	startTime := time.Now()

	bp.results = make([]*types.ScanReport, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			data, err := target.Load()
			if err != nil {
				bp.logger.Warn("target unreadable, skipping",
					"target", target.Name,
					"error", err,
				)
				return nil
			}

			hash := contentHash(data)
			if rep, ok := bp.cachedReport(target.Name, hash); ok {
				bp.mu.Lock()
				bp.results[i] = rep
				bp.mu.Unlock()
				bp.logger.Debug("cache hit", "target", target.Name)
				return nil
			}

			rep, err := Scan(ctx, data, bp.cfg)
			if err != nil {
				// Validate ran in the constructor, so Scan cannot
				// reject the config here; keep the guard anyway.
				return err
			}
			rep.Source = target.Name

			bp.mu.Lock()
			bp.results[i] = rep
			if bp.cache != nil && !rep.Truncated {
				bp.cache.Entries[target.Name] = cache.Entry{Hash: hash, Report: rep}
			}
			bp.mu.Unlock()

			bp.logger.Debug("target scanned",
				"target", target.Name,
				"unique_strings", rep.Summary.UniqueStrings,
				"truncated", rep.Truncated,
			)
			return nil
		})
	}

	err := g.Wait()

	merged := aggregate.Merge(aggregate.Options{
		MaxOffsetsPerEntry: bp.cfg.MaxOffsetsPerEntry,
		SuspicionThreshold: bp.cfg.SuspicionThreshold,
	}, bp.results...)

	bp.logger.Info("batch scan complete",
		"total_targets", len(targets),
		"unique_strings", merged.Summary.UniqueStrings,
		"elapsed", time.Since(startTime),
	)
	return bp.results, merged, err
}

// cachedReport returns a copy-safe cached report when the hash matches.
func (bp *BatchProcessor) cachedReport(name, hash string) (*types.ScanReport, bool) {
	if bp.cache == nil {
		return nil, false
	}
	bp.mu.Lock()
	defer bp.mu.Unlock()
	e, ok := bp.cache.Entries[name]
	if !ok || e.Hash != hash || e.Report == nil {
		return nil, false
	}
	rep := *e.Report
	rep.Source = name
	return &rep, true
}
