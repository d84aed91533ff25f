package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/strsift/strsift/internal/types"
)

var csvHeader = []string{
	"text", "max_score", "entropy", "count", "first_seen",
	"categories", "encodings", "suspicious", "sources",
}

// WriteCSV writes the report entries as CSV with a header row, one row per
// aggregated string, for spreadsheet or pipeline consumption.
func WriteCSV(w io.Writer, rep *types.ScanReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range rep.Entries {
		row := []string{
			e.Text,
			fmt.Sprintf("%.4f", e.MaxScore),
			fmt.Sprintf("%.4f", e.Entropy),
			strconv.Itoa(e.Count),
			strconv.FormatUint(e.FirstSeen, 10),
			joinCategories(e.Categories),
			joinEncodings(e.Encodings),
			strconv.FormatBool(e.Suspicious),
			joinStrings(e.Sources),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinStrings(xs []string) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += ";"
		}
		out += x
	}
	return out
}
