package strsift

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/strsift/strsift/internal/audit"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history [dir]",
		Short: "Show past scans recorded in the audit log",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHistory,
	}
	cmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "show at most this many records (0 = all)")
	rootCmd.AddCommand(cmd)
}

func runHistory(_ *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	records, err := audit.NewLog(abs).LoadHistory()
	if err != nil {
		return fmt.Errorf("no scan history under %s", abs)
	}
	if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
		records = records[:flagHistoryLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("WHEN", "SOURCE", "STRINGS", "SUSPICIOUS", "BYTES", "DURATION")
	for _, r := range records {
		src := r.Source
		if src == "" {
			src = "-"
		}
		if r.Truncated {
			src += " (truncated)"
		}
		table.Append([]string{
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			src,
			fmt.Sprintf("%d", r.UniqueStrings),
			fmt.Sprintf("%d", r.Suspicious),
			fmt.Sprintf("%d", r.BytesScanned),
			r.Duration,
		})
	}
	table.Render()
	return nil
}
