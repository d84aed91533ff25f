package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/strsift/strsift/internal/types"
)

// ScanRecord is one line of the scan history log.
type ScanRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	ScanID        string    `json:"scan_id"`
	Source        string    `json:"source"`
	ContentHash   string    `json:"content_hash,omitempty"`
	UniqueStrings int       `json:"unique_strings"`
	Suspicious    int       `json:"suspicious"`
	BytesScanned  uint64    `json:"bytes_scanned"`
	Truncated     bool      `json:"truncated"`
	TruncReason   string    `json:"truncated_reason,omitempty"`
	Duration      string    `json:"duration"`
}

// Log appends scan records to a JSONL file so past triage runs can be
// reviewed and compared.
type Log struct {
	logPath string
}

func NewLog(root string) *Log {
	return &Log{logPath: filepath.Join(root, ".strsift_audit.jsonl")}
}

// Record builds a ScanRecord from a finished report.
func Record(rep *types.ScanReport) ScanRecord {
	return ScanRecord{
		Timestamp:     time.Now().UTC(),
		Source:        rep.Source,
		ContentHash:   rep.ContentHash,
		UniqueStrings: rep.Summary.UniqueStrings,
		Suspicious:    rep.Summary.Suspicious,
		BytesScanned:  rep.Summary.BytesScanned,
		Truncated:     rep.Truncated,
		TruncReason:   rep.TruncReason,
		Duration:      rep.Duration.String(),
	}
}

// LoadHistory returns all records, newest first.
func (a *Log) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record ScanRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogScan appends one record. File permissions are owner-only since the
// log names scanned artifacts.
func (a *Log) LogScan(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}
