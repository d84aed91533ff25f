package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/strsift/strsift/internal/types"
)

// ScanResults stores the merged report and metadata from the last scan so
// it can be re-rendered or diffed without rescanning.
type ScanResults struct {
	Report    *types.ScanReport `json:"report"`
	Timestamp time.Time         `json:"timestamp"`
	Root      string            `json:"root"`
}

func resultsPath(root string) string {
	return filepath.Join(root, ".strsift_last_scan.json")
}

// SaveResults saves the last scan's merged report.
func SaveResults(root string, rep *types.ScanReport) error {
	p := resultsPath(root)
	results := ScanResults{
		Report:    rep,
		Timestamp: time.Now(),
		Root:      root,
	}
	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0644)
}

// LoadResults loads the last scan results.
func LoadResults(root string) (ScanResults, error) {
	var results ScanResults
	p := resultsPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return results, err
	}
	if err := json.Unmarshal(f, &results); err != nil {
		return results, err
	}
	return results, nil
}
