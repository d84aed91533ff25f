package strsift

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/strsift/strsift/internal/config"
)

var (
	cfgOutput          string
	cfgMinLength       int
	cfgEncodings       string
	cfgMaxCandidates   int
	cfgTimeBudget      string
	cfgThreshold       float64
	cfgConcurrency     int
	cfgNoColor         bool
	cfgDefaultExcludes bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .strsift.yml with the selected options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".strsift.yml", "output file path")
	initCmd.Flags().IntVar(&cfgMinLength, "min-length", 4, "minimum string length")
	initCmd.Flags().StringVar(&cfgEncodings, "encodings", "ascii,utf16le,utf16be", "comma-separated encodings")
	initCmd.Flags().IntVar(&cfgMaxCandidates, "max-candidates", 0, "candidate ceiling per scan (0 = unlimited)")
	initCmd.Flags().StringVar(&cfgTimeBudget, "time-budget", "", "wall-time ceiling per scan (e.g. 30s)")
	initCmd.Flags().Float64Var(&cfgThreshold, "suspicion-threshold", 0, "score marking an entry suspicious (0 = default)")
	initCmd.Flags().IntVar(&cfgConcurrency, "concurrency", 0, "files scanned in parallel (0 = default)")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgDefaultExcludes, "default-excludes", true, "enable default ignore patterns")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	var encs []string
	for _, e := range strings.Split(cfgEncodings, ",") {
		if e = strings.TrimSpace(e); e != "" {
			encs = append(encs, e)
		}
	}

	fc := config.FileConfig{
		MinLength:       intPtr(cfgMinLength),
		Encodings:       encs,
		MaxCandidates:   intPtr(cfgMaxCandidates),
		Concurrency:     intPtr(cfgConcurrency),
		NoColor:         boolPtr(cfgNoColor),
		DefaultExcludes: boolPtr(cfgDefaultExcludes),
	}
	if cfgTimeBudget != "" {
		fc.TimeBudget = strPtr(cfgTimeBudget)
	}
	if cfgThreshold > 0 {
		fc.SuspicionThreshold = floatPtr(cfgThreshold)
	}
	if _, err := fc.EngineConfig(); err != nil {
		return err
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}
