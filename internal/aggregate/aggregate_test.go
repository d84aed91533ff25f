package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strsift/strsift/internal/types"
)

func scored(text string, enc types.Encoding, score, entropy float64, cats ...types.Category) types.ScoredString {
	return types.ScoredString{
		Decoded: types.DecodedString{
			Text:   text,
			Source: types.RawCandidate{Encoding: enc},
		},
		Categories: types.NewCategorySet(cats...),
		Entropy:    entropy,
		Score:      score,
	}
}

func TestAddMergesIdenticalText(t *testing.T) {
	a := New(Options{})
	a.Add(scored("kernel32.dll", types.EncASCII, 0.3, 2.9), 10)
	a.Add(scored("kernel32.dll", types.EncUTF16LE, 0.3, 2.9), 400)

	rep := a.Report()
	require.Len(t, rep.Entries, 1)
	e := rep.Entries[0]
	assert.Equal(t, 2, e.Count)
	assert.Equal(t, []uint64{10, 400}, e.Offsets)
	assert.Equal(t, uint64(10), e.FirstSeen)
	assert.Equal(t, []types.Encoding{types.EncASCII, types.EncUTF16LE}, e.Encodings)
}

func TestReportOrdering(t *testing.T) {
	a := New(Options{})
	a.Add(scored("low", types.EncASCII, 0.4, 1.5), 500)
	a.Add(scored("once", types.EncASCII, 0.9, 4.0), 300)
	a.Add(scored("twice", types.EncASCII, 0.9, 4.0), 100)
	a.Add(scored("twice", types.EncASCII, 0.9, 4.0), 900)

	rep := a.Report()
	require.Len(t, rep.Entries, 3)
	// Score ties break on descending count, then ascending first offset.
	assert.Equal(t, "twice", rep.Entries[0].Text)
	assert.Equal(t, "once", rep.Entries[1].Text)
	assert.Equal(t, "low", rep.Entries[2].Text)
}

func TestReportOrderingFirstSeenTieBreak(t *testing.T) {
	a := New(Options{})
	a.Add(scored("bbb", types.EncASCII, 0.5, 1.0), 200)
	a.Add(scored("aaa", types.EncASCII, 0.5, 1.0), 50)

	rep := a.Report()
	require.Len(t, rep.Entries, 2)
	assert.Equal(t, "aaa", rep.Entries[0].Text)
	assert.Equal(t, "bbb", rep.Entries[1].Text)
}

func TestOffsetCapKeepsCounting(t *testing.T) {
	a := New(Options{MaxOffsetsPerEntry: 3})
	for i := 0; i < 10; i++ {
		a.Add(scored("spam", types.EncASCII, 0.2, 1.8), uint64(i*8))
	}

	rep := a.Report()
	require.Len(t, rep.Entries, 1)
	assert.Len(t, rep.Entries[0].Offsets, 3)
	assert.Equal(t, 10, rep.Entries[0].Count)
}

func TestCategoryUnionAcrossOccurrences(t *testing.T) {
	a := New(Options{})
	a.Add(scored("10.0.0.1", types.EncASCII, 0.6, 2.5, types.CatIPv4), 0)
	a.Add(scored("10.0.0.1", types.EncASCII, 0.6, 2.5, types.CatIPv4, types.CatGeneric), 64)

	rep := a.Report()
	require.Len(t, rep.Entries, 1)
	assert.Equal(t, []types.Category{types.CatGeneric, types.CatIPv4}, rep.Entries[0].Categories)
}

func TestSuspicionThreshold(t *testing.T) {
	a := New(Options{SuspicionThreshold: 0.8})
	a.Add(scored("benign", types.EncASCII, 0.5, 2.0), 0)
	a.Add(scored("payload", types.EncASCII, 0.85, 5.1), 32)

	rep := a.Report()
	require.Len(t, rep.Entries, 2)
	assert.True(t, rep.Entries[0].Suspicious)
	assert.False(t, rep.Entries[1].Suspicious)
	assert.Equal(t, 1, rep.Summary.Suspicious)
}

func TestReportDeterminism(t *testing.T) {
	build := func() *types.ScanReport {
		a := New(Options{})
		a.Add(scored("x", types.EncASCII, 0.5, 1.0), 5)
		a.Add(scored("y", types.EncASCII, 0.5, 1.0), 5)
		a.Add(scored("z", types.EncASCII, 0.5, 1.0), 5)
		return a.Report()
	}
	first := build()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Entries, build().Entries)
	}
}

func TestStatsViews(t *testing.T) {
	a := New(Options{})
	a.Add(scored("common", types.EncASCII, 0.2, 2.0), 0)
	a.Add(scored("common", types.EncASCII, 0.2, 2.0), 10)
	a.Add(scored("common", types.EncASCII, 0.2, 2.0), 20)
	a.Add(scored("dGhpcyBpcyBhIHNlY3JldCBibG9i", types.EncASCII, 0.8, 4.7, types.CatBase64Blob), 40)

	rep := a.Report()
	require.NotEmpty(t, rep.Stats.MostCommon)
	assert.Equal(t, "common", rep.Stats.MostCommon[0].Text)
	assert.Equal(t, 3, rep.Stats.MostCommon[0].Count)

	require.Len(t, rep.Stats.HighEntropy, 1)
	assert.Equal(t, "dGhpcyBpcyBhIHNlY3JldCBibG9i", rep.Stats.HighEntropy[0].Text)

	assert.Equal(t, 1, rep.Stats.LengthDistribution["short"])
	assert.Equal(t, 1, rep.Stats.LengthDistribution["medium"])
	assert.Equal(t, 0, rep.Stats.LengthDistribution["long"])
}

func TestMergeCombinesReports(t *testing.T) {
	a := New(Options{})
	a.Add(scored("http://evil.example/c2", types.EncASCII, 0.9, 3.8, types.CatURL), 100)
	repA := a.Report()
	repA.Source = "dropper.bin"

	b := New(Options{})
	b.Add(scored("http://evil.example/c2", types.EncUTF16LE, 0.92, 3.8, types.CatURL), 60)
	b.Add(scored("/tmp/.hidden", types.EncASCII, 0.5, 3.0, types.CatUnixPath), 8)
	repB := b.Report()
	repB.Source = "loader.bin"

	merged := Merge(Options{}, repA, repB)
	require.Len(t, merged.Entries, 2)

	url := merged.Entries[0]
	assert.Equal(t, "http://evil.example/c2", url.Text)
	assert.Equal(t, 2, url.Count)
	assert.InDelta(t, 0.92, url.MaxScore, 1e-9)
	assert.Equal(t, []types.Encoding{types.EncASCII, types.EncUTF16LE}, url.Encodings)
	assert.ElementsMatch(t, []string{"dropper.bin", "loader.bin"}, url.Sources)

	assert.Equal(t, 2, merged.Summary.UniqueStrings)
}

func TestMergePropagatesTruncation(t *testing.T) {
	a := New(Options{})
	a.Add(scored("x", types.EncASCII, 0.5, 1.0), 0)
	repA := a.Report()
	repA.Truncated = true
	repA.TruncReason = "max_candidates"

	merged := Merge(Options{}, repA, nil)
	assert.True(t, merged.Truncated)
	assert.Equal(t, "max_candidates", merged.TruncReason)
}

func TestFilter(t *testing.T) {
	a := New(Options{SuspicionThreshold: 0.75})
	a.Add(scored("http://evil.example/c2", types.EncASCII, 0.9, 3.8, types.CatURL), 0)
	a.Add(scored("kernel32.dll", types.EncASCII, 0.3, 2.9), 30)
	a.Add(scored("kernel32.dll", types.EncASCII, 0.3, 2.9), 60)
	rep := a.Report()

	minScore := 0.8
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"none", Filter{}, []string{"http://evil.example/c2", "kernel32.dll"}},
		{"min count", Filter{MinCount: 2}, []string{"kernel32.dll"}},
		{"min score", Filter{MinScore: &minScore}, []string{"http://evil.example/c2"}},
		{"category", Filter{Categories: []types.Category{types.CatURL}}, []string{"http://evil.example/c2"}},
		{"suspicious only", Filter{SuspiciousOnly: true}, []string{"http://evil.example/c2"}},
		{"max length", Filter{MaxLength: 12}, []string{"kernel32.dll"}},
		{"no match", Filter{MinCount: 5}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Apply(rep)
			var texts []string
			for _, e := range got {
				texts = append(texts, e.Text)
			}
			assert.Equal(t, tc.want, texts)
		})
	}
}
