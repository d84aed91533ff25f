package audit

import (
	"testing"
	"time"

	"github.com/strsift/strsift/internal/types"
)

func TestLogScanAndLoadHistory(t *testing.T) {
	l := NewLog(t.TempDir())

	rep := &types.ScanReport{
		Source:      "first.bin",
		ContentHash: "abc123",
		Summary:     types.Summary{UniqueStrings: 5, Suspicious: 1, BytesScanned: 100},
		Duration:    50 * time.Millisecond,
	}
	if err := l.LogScan(Record(rep)); err != nil {
		t.Fatalf("LogScan: %v", err)
	}
	rep.Source = "second.bin"
	if err := l.LogScan(Record(rep)); err != nil {
		t.Fatalf("LogScan: %v", err)
	}

	records, err := l.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// newest first
	if records[0].Source != "second.bin" {
		t.Fatalf("expected newest first, got %q", records[0].Source)
	}
	if records[1].UniqueStrings != 5 || records[1].ContentHash != "abc123" {
		t.Fatalf("record fields lost: %+v", records[1])
	}
	if records[0].ScanID == "" {
		t.Fatal("expected generated scan id")
	}
}

func TestLoadHistoryMissing(t *testing.T) {
	l := NewLog(t.TempDir())
	if _, err := l.LoadHistory(); err == nil {
		t.Fatal("expected error for missing log")
	}
}
