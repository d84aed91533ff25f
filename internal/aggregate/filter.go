package aggregate

import "github.com/strsift/strsift/internal/types"

// Filter selects report entries by triage criteria. Zero-valued fields
// are ignored; pointer fields distinguish "unset" from zero.
type Filter struct {
	MinCount       int
	MaxCount       int
	MinLength      int
	MaxLength      int
	MinEntropy     *float64
	MaxEntropy     *float64
	MinScore       *float64
	Categories     []types.Category
	SuspiciousOnly bool
}

// Apply returns the entries of rep matching f, preserving report order.
// The report itself is not modified.
func (f Filter) Apply(rep *types.ScanReport) []types.AggregateEntry {
	var out []types.AggregateEntry
	for _, e := range rep.Entries {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e types.AggregateEntry) bool {
	if f.MinCount > 0 && e.Count < f.MinCount {
		return false
	}
	if f.MaxCount > 0 && e.Count > f.MaxCount {
		return false
	}
	if f.MinLength > 0 && len(e.Text) < f.MinLength {
		return false
	}
	if f.MaxLength > 0 && len(e.Text) > f.MaxLength {
		return false
	}
	if f.MinEntropy != nil && e.Entropy < *f.MinEntropy {
		return false
	}
	if f.MaxEntropy != nil && e.Entropy > *f.MaxEntropy {
		return false
	}
	if f.MinScore != nil && e.MaxScore < *f.MinScore {
		return false
	}
	if f.SuspiciousOnly && !e.Suspicious {
		return false
	}
	if len(f.Categories) > 0 {
		set := types.NewCategorySet(e.Categories...)
		found := false
		for _, c := range f.Categories {
			if set.Has(c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
