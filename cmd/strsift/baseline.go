package strsift

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/strsift/strsift/internal/engine"
	"github.com/strsift/strsift/internal/report"
)

const baselineFileName = "strsift.baseline.json"

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines of known strings",
	}

	update := &cobra.Command{
		Use:   "update <file>",
		Short: "Record a file's strings as the baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(abs)
			if err != nil {
				return err
			}
			rep, err := engine.Scan(context.Background(), data, engine.DefaultConfig())
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(baselineFileName, rep); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Baseline updated: %d strings\n", rep.Summary.UniqueStrings)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
