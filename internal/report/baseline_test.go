package report

import (
	"path/filepath"
	"testing"

	"github.com/strsift/strsift/internal/types"
)

func TestBaselineRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "baseline.json")

	rep := sampleReport()
	if err := SaveBaseline(path, rep); err != nil {
		t.Fatalf("SaveBaseline: %v", err)
	}
	base, err := LoadBaseline(path)
	if err != nil {
		t.Fatalf("LoadBaseline: %v", err)
	}
	if !base.Items["kernel32.dll"] {
		t.Fatalf("expected saved entry in baseline: %#v", base.Items)
	}

	entries := append(rep.Entries, types.AggregateEntry{Text: "fresh.example/path"})
	fresh := FilterNewEntries(entries, base)
	if len(fresh) != 1 || fresh[0].Text != "fresh.example/path" {
		t.Fatalf("expected only the new entry, got %#v", fresh)
	}
}

func TestLoadBaseline_Missing(t *testing.T) {
	if _, err := LoadBaseline(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing baseline")
	}
}

func TestShouldFail(t *testing.T) {
	entries := sampleReport().Entries
	if !ShouldFail(entries, 0.8) {
		t.Fatal("expected failure at threshold 0.8")
	}
	if ShouldFail(entries, 0.95) {
		t.Fatal("expected pass at threshold 0.95")
	}
	if !ShouldFail(entries, 0) {
		t.Fatal("expected default threshold 0.75 to fail")
	}
}
