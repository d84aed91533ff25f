package aggregate

import (
	"sort"

	"github.com/strsift/strsift/internal/types"
)

// Options tune aggregation behavior.
type Options struct {
	// MaxOffsetsPerEntry caps stored offsets per entry so a string repeated
	// millions of times cannot balloon memory. Count keeps counting past
	// the cap. Values < 1 default to 1000.
	MaxOffsetsPerEntry int

	// SuspicionThreshold marks entries whose max score reaches it.
	// Values <= 0 default to 0.75.
	SuspicionThreshold float64
}

const (
	defaultMaxOffsets = 1000
	defaultThreshold  = 0.75
)

// entry is the mutable accumulation state behind one AggregateEntry.
type entry struct {
	text      string
	offsets   []uint64
	cats      types.CategorySet
	encs      map[types.Encoding]struct{}
	maxScore  float64
	entropy   float64
	count     int
	firstSeen uint64
	order     int
}

// Aggregator folds ScoredStrings into per-text entries. Not safe for
// concurrent use; each scan owns its own Aggregator.
type Aggregator struct {
	opts    Options
	entries map[string]*entry
	nextOrd int
}

// New returns an empty Aggregator.
func New(opts Options) *Aggregator {
	if opts.MaxOffsetsPerEntry < 1 {
		opts.MaxOffsetsPerEntry = defaultMaxOffsets
	}
	if opts.SuspicionThreshold <= 0 {
		opts.SuspicionThreshold = defaultThreshold
	}
	return &Aggregator{opts: opts, entries: make(map[string]*entry)}
}

// Add folds one scored string at the given buffer offset into the map.
func (a *Aggregator) Add(ss types.ScoredString, offset uint64) {
	e, ok := a.entries[ss.Decoded.Text]
	if !ok {
		e = &entry{
			text:      ss.Decoded.Text,
			cats:      types.CategorySet{},
			encs:      make(map[types.Encoding]struct{}, 1),
			entropy:   ss.Entropy,
			firstSeen: offset,
			order:     a.nextOrd,
		}
		a.nextOrd++
		a.entries[ss.Decoded.Text] = e
	}
	if len(e.offsets) < a.opts.MaxOffsetsPerEntry {
		e.offsets = append(e.offsets, offset)
	}
	e.count++
	e.cats.Union(ss.Categories)
	e.encs[ss.Decoded.Source.Encoding] = struct{}{}
	if ss.Score > e.maxScore {
		e.maxScore = ss.Score
	}
	if offset < e.firstSeen {
		e.firstSeen = offset
	}
}

// Len reports the number of distinct texts accumulated so far.
func (a *Aggregator) Len() int { return len(a.entries) }

// Report finalizes the accumulated entries into an ordered ScanReport.
// Ordering is descending max score, then descending count, then ascending
// first-seen offset, then insertion order; identical input always yields
// identical output.
func (a *Aggregator) Report() *types.ScanReport {
	out := make([]types.AggregateEntry, 0, len(a.entries))
	catCounts := make(map[types.Category]int)
	suspicious := 0
	for _, e := range a.entries {
		encs := make([]types.Encoding, 0, len(e.encs))
		for _, enc := range types.AllEncodings() {
			if _, ok := e.encs[enc]; ok {
				encs = append(encs, enc)
			}
		}
		ae := types.AggregateEntry{
			Text:       e.text,
			Offsets:    e.offsets,
			Categories: e.cats.Sorted(),
			Encodings:  encs,
			MaxScore:   e.maxScore,
			Entropy:    e.entropy,
			Count:      e.count,
			FirstSeen:  e.firstSeen,
			Suspicious: e.maxScore >= a.opts.SuspicionThreshold,
		}
		if ae.Suspicious {
			suspicious++
		}
		for _, c := range ae.Categories {
			catCounts[c]++
		}
		out = append(out, ae)
	}
	ordIndex := make(map[string]int, len(a.entries))
	for text, e := range a.entries {
		ordIndex[text] = e.order
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MaxScore != out[j].MaxScore {
			return out[i].MaxScore > out[j].MaxScore
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].FirstSeen != out[j].FirstSeen {
			return out[i].FirstSeen < out[j].FirstSeen
		}
		return ordIndex[out[i].Text] < ordIndex[out[j].Text]
	})

	rep := &types.ScanReport{
		Entries: out,
		Summary: types.Summary{
			UniqueStrings:  len(out),
			CategoryCounts: catCounts,
			Suspicious:     suspicious,
		},
	}
	rep.Stats = computeStats(out)
	return rep
}
