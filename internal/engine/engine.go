package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/strsift/strsift/internal/aggregate"
	"github.com/strsift/strsift/internal/classify"
	"github.com/strsift/strsift/internal/extract"
	"github.com/strsift/strsift/internal/score"
	"github.com/strsift/strsift/internal/types"
)

// ErrInvalidConfig is the only error Scan returns. Everything that can go
// wrong mid-scan (budget exhaustion, cancellation) produces a truncated
// report instead.
var ErrInvalidConfig = errors.New("invalid configuration")

// Truncation reasons recorded on partial reports.
const (
	TruncMaxCandidates = "max_candidates"
	TruncTimeBudget    = "time_budget"
	TruncCancelled     = "cancelled"
)

// Config controls a scan: what counts as a string, how strings are scored,
// and how much work the scan may do.
type Config struct {
	// MinLength is the minimum decoded character count for a candidate.
	// Must be >= 1.
	MinLength int

	// Encodings to attempt, in priority order. Must name at least one of
	// ASCII, UTF-16LE, UTF-16BE.
	Encodings []types.Encoding

	// IncludeWhitespace extends printable runs across tab, newline, and
	// carriage return.
	IncludeWhitespace bool

	// CategoryWeights overrides the default per-category base weights.
	// Values are clamped to [0,1]; unlisted categories keep their defaults.
	CategoryWeights map[types.Category]float64

	// GenericMinLength is the minimum length for an unclassified string to
	// be tagged generic. Values < 1 default to 4.
	GenericMinLength int

	// MaxCandidates caps how many raw candidates a single scan processes.
	// 0 means unlimited. Exceeding the cap truncates the report.
	MaxCandidates int

	// TimeBudget caps wall-clock time for a single scan. 0 means
	// unlimited. Exceeding the budget truncates the report.
	TimeBudget time.Duration

	// MaxOffsetsPerEntry caps stored offsets per aggregated entry.
	MaxOffsetsPerEntry int

	// SuspicionThreshold marks entries at or above it as suspicious.
	// Values <= 0 default to 0.75.
	SuspicionThreshold float64
}

// DefaultConfig returns the configuration used when the caller supplies
// nothing: 4-character minimum, every encoding, unlimited budgets.
func DefaultConfig() Config {
	return Config{
		MinLength: 4,
		Encodings: types.AllEncodings(),
	}
}

// Validate reports whether cfg can drive a scan. All failures wrap
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("%w: min length must be >= 1, got %d", ErrInvalidConfig, c.MinLength)
	}
	if len(c.Encodings) == 0 {
		return fmt.Errorf("%w: at least one encoding required", ErrInvalidConfig)
	}
	valid := map[types.Encoding]bool{}
	for _, e := range types.AllEncodings() {
		valid[e] = true
	}
	for _, e := range c.Encodings {
		if !valid[e] {
			return fmt.Errorf("%w: unknown encoding %q", ErrInvalidConfig, e)
		}
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("%w: max candidates must be >= 0, got %d", ErrInvalidConfig, c.MaxCandidates)
	}
	if c.TimeBudget < 0 {
		return fmt.Errorf("%w: time budget must be >= 0, got %s", ErrInvalidConfig, c.TimeBudget)
	}
	for cat := range c.CategoryWeights {
		if !knownCategory(cat) {
			return fmt.Errorf("%w: unknown category %q in weights", ErrInvalidConfig, cat)
		}
	}
	return nil
}

func knownCategory(c types.Category) bool {
	for _, k := range types.Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Scan extracts, classifies, scores, and aggregates the strings in buf.
// The result is deterministic for a given buf and cfg. Budget exhaustion
// and context cancellation return the partial report accumulated so far
// with Truncated set; the only error is ErrInvalidConfig.
func Scan(ctx context.Context, buf []byte, cfg Config) (*types.ScanReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	var deadline time.Time
	if cfg.TimeBudget > 0 {
		deadline = started.Add(cfg.TimeBudget)
	}

	sc := extract.NewScanner(buf, extract.Config{
		MinLength:         cfg.MinLength,
		Encodings:         cfg.Encodings,
		IncludeWhitespace: cfg.IncludeWhitespace,
	})
	scorer := score.NewScorer(cfg.CategoryWeights, cfg.GenericMinLength)
	agg := aggregate.New(aggregate.Options{
		MaxOffsetsPerEntry: cfg.MaxOffsetsPerEntry,
		SuspicionThreshold: cfg.SuspicionThreshold,
	})

	processed := 0
	truncReason := ""
	for {
		if ctx.Err() != nil {
			truncReason = TruncCancelled
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			truncReason = TruncTimeBudget
			break
		}
		cand, ok := sc.Next()
		if !ok {
			break
		}
		if cfg.MaxCandidates > 0 && processed >= cfg.MaxCandidates {
			truncReason = TruncMaxCandidates
			break
		}
		processed++
		ingest(agg, scorer, cand)
	}

	rep := agg.Report()
	rep.Summary.TotalCandidates = processed
	rep.Summary.BytesScanned = uint64(len(buf))
	rep.ContentHash = contentHash(buf)
	rep.Duration = time.Since(started)
	if truncReason != "" {
		rep.Truncated = true
		rep.TruncReason = truncReason
	}
	return rep, nil
}

// ingest runs one candidate through decode, classification, and scoring,
// folding the results into the aggregator. Matched spans aggregate
// individually at their own buffer offsets; a candidate with no matches
// aggregates whole.
func ingest(agg *aggregate.Aggregator, scorer *score.Scorer, cand types.RawCandidate) {
	dec := extract.Decode(cand)
	resolved := classify.Resolve(classify.Matches(dec.Text))

	if len(resolved) == 0 {
		agg.Add(scorer.Score(dec, nil), cand.Offset)
		return
	}

	unit := uint64(1)
	if cand.Encoding != types.EncASCII {
		unit = 2
	}
	for _, r := range resolved {
		sub := types.DecodedString{
			Text:   dec.Text[r.Span.Start:r.Span.End],
			Source: cand,
		}
		agg.Add(scorer.Score(sub, r.Categories), cand.Offset+uint64(r.Span.Start)*unit)
	}
}

func contentHash(b []byte) string {
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hexdigits = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hexdigits[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
