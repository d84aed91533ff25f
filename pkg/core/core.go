package core

import (
	"context"

	"github.com/strsift/strsift/internal/engine"
	"github.com/strsift/strsift/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
// We can replace these with decoupled structs later without breaking callers.
type (
	Config         = engine.Config
	ScanReport     = types.ScanReport
	AggregateEntry = types.AggregateEntry
	Category       = types.Category
	Encoding       = types.Encoding
)

// ErrInvalidConfig is the only error Scan returns; budget exhaustion and
// cancellation yield truncated reports instead.
var ErrInvalidConfig = engine.ErrInvalidConfig

// DefaultConfig returns the baseline scan configuration.
func DefaultConfig() Config { return engine.DefaultConfig() }

// Scan is the stable entrypoint for other programs: it extracts,
// classifies, scores, and aggregates the strings in buf.
func Scan(ctx context.Context, buf []byte, cfg Config) (*ScanReport, error) {
	return engine.Scan(ctx, buf, cfg)
}

// Categories returns every category identifier the classifier can assign.
// This is exposed for convenience to avoid importing internals directly.
func Categories() []Category { return types.Categories() }

// Encodings returns every supported encoding identifier.
func Encodings() []Encoding { return types.AllEncodings() }
