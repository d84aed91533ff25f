package aggregate

import (
	"sort"

	"github.com/strsift/strsift/internal/types"
)

const (
	topN               = 10
	highEntropyFloor   = 4.5
	lengthBucketBounds = 4 // buckets: <16, <64, <256, >=256
)

// computeStats derives the distribution views over finalized entries.
func computeStats(entries []types.AggregateEntry) types.Statistics {
	var stats types.Statistics
	if len(entries) == 0 {
		return stats
	}

	byCount := make([]types.AggregateEntry, len(entries))
	copy(byCount, entries)
	sort.SliceStable(byCount, func(i, j int) bool { return byCount[i].Count > byCount[j].Count })
	for i := 0; i < len(byCount) && i < topN; i++ {
		stats.MostCommon = append(stats.MostCommon, types.EntryCount{
			Text:  byCount[i].Text,
			Count: byCount[i].Count,
		})
	}

	var high []types.AggregateEntry
	for _, e := range entries {
		if e.Entropy >= highEntropyFloor {
			high = append(high, e)
		}
	}
	sort.SliceStable(high, func(i, j int) bool { return high[i].Entropy > high[j].Entropy })
	for i := 0; i < len(high) && i < topN; i++ {
		stats.HighEntropy = append(stats.HighEntropy, types.EntryScore{
			Text:  high[i].Text,
			Value: high[i].Entropy,
		})
	}

	stats.LengthDistribution = make(map[string]int, lengthBucketBounds)
	for _, e := range entries {
		stats.LengthDistribution[lengthBucket(len(e.Text))]++
	}
	return stats
}

func lengthBucket(n int) string {
	switch {
	case n < 16:
		return "short"
	case n < 64:
		return "medium"
	case n < 256:
		return "long"
	default:
		return "huge"
	}
}
