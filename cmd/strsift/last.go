package strsift

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/strsift/strsift/internal/cache"
	"github.com/strsift/strsift/internal/report"
)

var (
	flagLastTop     int
	flagLastVerbose bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "last [dir]",
		Short: "Re-render the most recent scan report without rescanning",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLast,
	}
	cmd.Flags().IntVar(&flagLastTop, "top", 50, "show only the top N entries (0 = all)")
	cmd.Flags().BoolVarP(&flagLastVerbose, "verbose", "v", false, "show offsets and encodings per entry")
	rootCmd.AddCommand(cmd)
}

func runLast(_ *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	res, err := cache.LoadResults(abs)
	if err != nil {
		return fmt.Errorf("no saved scan results under %s, run a scan first", abs)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Report)
	}
	if flagCSV {
		return report.WriteCSV(os.Stdout, res.Report)
	}

	fmt.Fprintf(os.Stdout, "Scan of %s at %s\n\n", res.Root, res.Timestamp.Local().Format("2006-01-02 15:04:05"))
	report.PrintTable(os.Stdout, res.Report, report.PrintOptions{
		NoColor:    colorDisabled(),
		MaxEntries: flagLastTop,
		Verbose:    flagLastVerbose,
	})
	return nil
}
