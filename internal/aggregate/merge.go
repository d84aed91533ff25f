package aggregate

import (
	"sort"

	"github.com/strsift/strsift/internal/types"
)

// Merge combines per-buffer reports from a batch scan into one, reusing
// the merge-by-exact-text rule. Each entry records which source buffers it
// was seen in. Input reports are not modified.
func Merge(opts Options, reports ...*types.ScanReport) *types.ScanReport {
	if opts.SuspicionThreshold <= 0 {
		opts.SuspicionThreshold = defaultThreshold
	}
	if opts.MaxOffsetsPerEntry < 1 {
		opts.MaxOffsetsPerEntry = defaultMaxOffsets
	}

	merged := make(map[string]*types.AggregateEntry)
	var order []string
	combined := &types.ScanReport{
		Summary: types.Summary{CategoryCounts: make(map[types.Category]int)},
	}

	for _, rep := range reports {
		if rep == nil {
			continue
		}
		combined.Summary.TotalCandidates += rep.Summary.TotalCandidates
		combined.Summary.BytesScanned += rep.Summary.BytesScanned
		combined.Duration += rep.Duration
		if rep.Truncated {
			combined.Truncated = true
			if combined.TruncReason == "" {
				combined.TruncReason = rep.TruncReason
			}
		}
		for i := range rep.Entries {
			e := &rep.Entries[i]
			m, ok := merged[e.Text]
			if !ok {
				cp := *e
				cp.Offsets = append([]uint64(nil), e.Offsets...)
				cp.Categories = append([]types.Category(nil), e.Categories...)
				cp.Encodings = append([]types.Encoding(nil), e.Encodings...)
				cp.Sources = nil
				if rep.Source != "" {
					cp.Sources = []string{rep.Source}
				}
				merged[e.Text] = &cp
				order = append(order, e.Text)
				continue
			}
			room := opts.MaxOffsetsPerEntry - len(m.Offsets)
			if room > 0 {
				add := e.Offsets
				if len(add) > room {
					add = add[:room]
				}
				m.Offsets = append(m.Offsets, add...)
			}
			m.Count += e.Count
			m.Categories = unionCategories(m.Categories, e.Categories)
			m.Encodings = unionEncodings(m.Encodings, e.Encodings)
			if e.MaxScore > m.MaxScore {
				m.MaxScore = e.MaxScore
			}
			if e.Entropy > m.Entropy {
				m.Entropy = e.Entropy
			}
			if rep.Source != "" && !containsString(m.Sources, rep.Source) {
				m.Sources = append(m.Sources, rep.Source)
			}
		}
	}

	ordIndex := make(map[string]int, len(order))
	for i, text := range order {
		ordIndex[text] = i
	}
	out := make([]types.AggregateEntry, 0, len(merged))
	for _, text := range order {
		e := merged[text]
		e.Suspicious = e.MaxScore >= opts.SuspicionThreshold
		if e.Suspicious {
			combined.Summary.Suspicious++
		}
		for _, c := range e.Categories {
			combined.Summary.CategoryCounts[c]++
		}
		out = append(out, *e)
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
	combined.Entries = out
	combined.Summary.UniqueStrings = len(out)
	combined.Stats = computeStats(out)
	return combined
}

func unionCategories(a, b []types.Category) []types.Category {
	set := types.NewCategorySet(a...)
	set.Union(types.NewCategorySet(b...))
	return set.Sorted()
}

func unionEncodings(a, b []types.Encoding) []types.Encoding {
	seen := make(map[types.Encoding]struct{}, len(a)+len(b))
	for _, e := range a {
		seen[e] = struct{}{}
	}
	for _, e := range b {
		seen[e] = struct{}{}
	}
	var out []types.Encoding
	for _, e := range types.AllEncodings() {
		if _, ok := seen[e]; ok {
			out = append(out, e)
		}
	}
	return out
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
