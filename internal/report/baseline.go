package report

import (
	"encoding/json"
	"os"

	"github.com/strsift/strsift/internal/types"
)

// Baseline is a saved set of known strings. Scanning a clean build of the
// same software and saving its report as a baseline lets later scans show
// only what changed.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(f, &b)
	return b, nil
}

func SaveBaseline(path string, rep *types.ScanReport) error {
	b := Baseline{Items: map[string]bool{}}
	for _, e := range rep.Entries {
		b.Items[e.Text] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0644)
}

// FilterNewEntries returns the entries not present in the baseline,
// preserving report order.
func FilterNewEntries(entries []types.AggregateEntry, base Baseline) []types.AggregateEntry {
	var out []types.AggregateEntry
	for _, e := range entries {
		if !base.Items[e.Text] {
			out = append(out, e)
		}
	}
	return out
}

// ShouldFail reports whether any entry scores at or above the threshold,
// for CI-style gating. A threshold <= 0 defaults to 0.75.
func ShouldFail(entries []types.AggregateEntry, threshold float64) bool {
	if threshold <= 0 {
		threshold = 0.75
	}
	for _, e := range entries {
		if e.MaxScore >= threshold {
			return true
		}
	}
	return false
}
