package core

import (
	"encoding/json"
	"io"
)

// MarshalReport pretty-prints a scan report as JSON for humans or pipelines.
func MarshalReport(w io.Writer, rep *ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// UnmarshalReport decodes report JSON, useful for ingestion tests.
func UnmarshalReport(r io.Reader) (*ScanReport, error) {
	var rep ScanReport
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
