package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/strsift/strsift/internal/types"
)

type PrintOptions struct {
	NoColor    bool
	MaxEntries int  // 0 means all
	Verbose    bool // include offsets and encodings
}

// PrintText renders the report as aligned plain-text rows, one entry per
// line, followed by the summary footer.
func PrintText(w io.Writer, rep *types.ScanReport, opts PrintOptions) {
	entries := capEntries(rep.Entries, opts.MaxEntries)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No strings extracted")
	} else {
		maxCat := 8
		for _, e := range entries {
			if l := len(joinCategories(e.Categories)); l > maxCat {
				maxCat = l
			}
		}
		for _, e := range entries {
			score := formatScore(e.MaxScore, e.Suspicious, opts.NoColor)
			line := fmt.Sprintf("%s %4d  %-*s %s", score, e.Count, maxCat, joinCategories(e.Categories), clipText(e.Text))
			if opts.Verbose {
				line += fmt.Sprintf("  @%d %s", e.FirstSeen, joinEncodings(e.Encodings))
			}
			fmt.Fprintln(w, line)
		}
	}
	printFooter(w, rep, len(entries))
}

// PrintTable renders the report as a bordered table.
func PrintTable(w io.Writer, rep *types.ScanReport, opts PrintOptions) {
	entries := capEntries(rep.Entries, opts.MaxEntries)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No strings extracted")
		printFooter(w, rep, 0)
		return
	}

	tbl := tablewriter.NewWriter(w)
	if opts.Verbose {
		tbl.Header("SCORE", "COUNT", "CATEGORIES", "ENCODINGS", "OFFSET", "TEXT")
	} else {
		tbl.Header("SCORE", "COUNT", "CATEGORIES", "TEXT")
	}
	for _, e := range entries {
		if opts.Verbose {
			_ = tbl.Append([]string{
				fmt.Sprintf("%.2f", e.MaxScore),
				strconv.Itoa(e.Count),
				joinCategories(e.Categories),
				joinEncodings(e.Encodings),
				strconv.FormatUint(e.FirstSeen, 10),
				clipText(e.Text),
			})
		} else {
			_ = tbl.Append([]string{
				fmt.Sprintf("%.2f", e.MaxScore),
				strconv.Itoa(e.Count),
				joinCategories(e.Categories),
				clipText(e.Text),
			})
		}
	}
	_ = tbl.Render()
	printFooter(w, rep, len(entries))
}

func printFooter(w io.Writer, rep *types.ScanReport, shown int) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Strings: %d unique (%d suspicious), %d candidates\n",
		rep.Summary.UniqueStrings, rep.Summary.Suspicious, rep.Summary.TotalCandidates)
	if shown < rep.Summary.UniqueStrings {
		fmt.Fprintf(w, "Showing top %d\n", shown)
	}
	if rep.Summary.BytesScanned > 0 {
		fmt.Fprintf(w, "Bytes scanned: %d\n", rep.Summary.BytesScanned)
	}
	if rep.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", rep.Duration.Seconds())
	}
	if rep.Truncated {
		fmt.Fprintf(w, "Warning: scan truncated (%s); results are partial\n", rep.TruncReason)
	}
}

// PrintStats renders the distribution views.
func PrintStats(w io.Writer, rep *types.ScanReport) {
	if len(rep.Stats.MostCommon) > 0 {
		fmt.Fprintln(w, "Most common:")
		for _, ec := range rep.Stats.MostCommon {
			fmt.Fprintf(w, "  %5d  %s\n", ec.Count, clipText(ec.Text))
		}
	}
	if len(rep.Stats.HighEntropy) > 0 {
		fmt.Fprintln(w, "High entropy:")
		for _, es := range rep.Stats.HighEntropy {
			fmt.Fprintf(w, "  %5.2f  %s\n", es.Value, clipText(es.Text))
		}
	}
	if len(rep.Stats.LengthDistribution) > 0 {
		fmt.Fprintln(w, "Length distribution:")
		for _, bucket := range []string{"short", "medium", "long", "huge"} {
			if n, ok := rep.Stats.LengthDistribution[bucket]; ok {
				fmt.Fprintf(w, "  %-7s %d\n", bucket, n)
			}
		}
	}
}

func capEntries(entries []types.AggregateEntry, max int) []types.AggregateEntry {
	if max > 0 && len(entries) > max {
		return entries[:max]
	}
	return entries
}

const maxTextCols = 96

// clipText bounds display width and strips control characters so a hostile
// extracted string cannot corrupt the terminal.
func clipText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			b.WriteByte('.')
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if len(out) > maxTextCols {
		return out[:maxTextCols-1] + "…"
	}
	return out
}

func joinCategories(cats []types.Category) string {
	if len(cats) == 0 {
		return "-"
	}
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func joinEncodings(encs []types.Encoding) string {
	parts := make([]string, len(encs))
	for i, e := range encs {
		parts[i] = string(e)
	}
	return strings.Join(parts, ",")
}

func formatScore(score float64, suspicious, noColor bool) string {
	s := fmt.Sprintf("%.2f", score)
	if noColor {
		return s
	}
	switch {
	case suspicious:
		return "\x1b[31m" + s + "\x1b[0m" // red
	case score >= 0.5:
		return "\x1b[33m" + s + "\x1b[0m" // yellow
	default:
		return "\x1b[36m" + s + "\x1b[0m" // cyan
	}
}
