package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/strsift/strsift/internal/types"
)

func sampleReport() *types.ScanReport {
	return &types.ScanReport{
		Entries: []types.AggregateEntry{
			{
				Text:       "http://c2.example/beacon",
				Offsets:    []uint64{64},
				Categories: []types.Category{types.CatURL},
				Encodings:  []types.Encoding{types.EncASCII},
				MaxScore:   0.88,
				Entropy:    3.9,
				Count:      3,
				FirstSeen:  64,
				Suspicious: true,
			},
			{
				Text:       "kernel32.dll",
				Offsets:    []uint64{8},
				Categories: nil,
				Encodings:  []types.Encoding{types.EncASCII, types.EncUTF16LE},
				MaxScore:   0.31,
				Entropy:    2.9,
				Count:      1,
				FirstSeen:  8,
			},
		},
		Summary: types.Summary{
			TotalCandidates: 4,
			UniqueStrings:   2,
			BytesScanned:    4096,
			Suspicious:      1,
		},
		Duration: 1200 * time.Millisecond,
	}
}

func TestPrintText_Empty_ShowsFooter(t *testing.T) {
	var buf bytes.Buffer
	rep := &types.ScanReport{Summary: types.Summary{BytesScanned: 10}}
	PrintText(&buf, rep, PrintOptions{})
	out := buf.String()
	if !strings.Contains(out, "No strings extracted") {
		t.Fatalf("expected friendly empty message; got: %q", out)
	}
	if !strings.Contains(out, "Bytes scanned: 10") {
		t.Fatalf("expected footer with bytes scanned; got: %q", out)
	}
}

func TestPrintText_WithEntries(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "http://c2.example/beacon") {
		t.Fatalf("expected entry text; got: %q", out)
	}
	if !strings.Contains(out, "url") {
		t.Fatalf("expected category column; got: %q", out)
	}
	if !strings.Contains(out, "Strings: 2 unique (1 suspicious), 4 candidates") {
		t.Fatalf("expected summary footer; got: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes; got: %q", out)
	}
}

func TestPrintText_Truncated(t *testing.T) {
	var buf bytes.Buffer
	rep := sampleReport()
	rep.Truncated = true
	rep.TruncReason = "time_budget"
	PrintText(&buf, rep, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "truncated (time_budget)") {
		t.Fatalf("expected truncation warning; got: %q", buf.String())
	}
}

func TestPrintText_MaxEntries(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleReport(), PrintOptions{NoColor: true, MaxEntries: 1})
	out := buf.String()
	if strings.Contains(out, "kernel32.dll") {
		t.Fatalf("expected second entry cut; got: %q", out)
	}
	if !strings.Contains(out, "Showing top 1") {
		t.Fatalf("expected top-N note; got: %q", out)
	}
}

func TestPrintTable_WithEntries(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()
	if !strings.Contains(out, "SCORE") {
		t.Fatalf("expected table header with SCORE; got: %q", out)
	}
	if !strings.Contains(out, "kernel32.dll") {
		t.Fatalf("expected entry in table; got: %q", out)
	}
	if !strings.Contains(out, "│") {
		t.Fatalf("expected table borders; got: %q", out)
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	rep := sampleReport()
	rep.Stats = types.Statistics{
		MostCommon:         []types.EntryCount{{Text: "http://c2.example/beacon", Count: 3}},
		HighEntropy:        []types.EntryScore{{Text: "aGlkZGVuIHBheWxvYWQ=", Value: 4.8}},
		LengthDistribution: map[string]int{"short": 1, "medium": 1},
	}
	PrintStats(&buf, rep)
	out := buf.String()
	for _, want := range []string{"Most common:", "High entropy:", "Length distribution:", "short"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in stats output: %q", want, out)
		}
	}
}

func TestClipText_Controls(t *testing.T) {
	got := clipText("a\x01b\tc")
	if got != "a.b.c" {
		t.Fatalf("expected control characters replaced, got %q", got)
	}
}
