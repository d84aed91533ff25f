package strsift

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	flagJSON        bool
	flagCSV         bool
	flagNoColor     bool
	flagFailOnScore float64
	flagConcurrency int

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the strsift CLI.
var rootCmd = &cobra.Command{
	Use:           "strsift",
	Short:         "Extract and triage strings from binaries",
	Long:          "strsift recovers printable strings from arbitrary binary blobs, classifies them into triage categories (URLs, IPs, paths, registry keys, encoded blobs), and ranks them by suspicion.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version,
}

// Execute runs the strsift CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagCSV, "csv", false, "emit CSV")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().Float64Var(&flagFailOnScore, "fail-on-score", 0, "exit 1 when any entry scores at or above this (0 = off)")
	rootCmd.PersistentFlags().IntVar(&flagConcurrency, "concurrency", 0, "files scanned in parallel (0 = default)")
}

// colorDisabled folds the flag with terminal detection: piping output gets
// no escape codes even without --no-color.
func colorDisabled() bool {
	if flagNoColor {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}
