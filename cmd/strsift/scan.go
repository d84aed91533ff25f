package strsift

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/strsift/strsift/internal/aggregate"
	"github.com/strsift/strsift/internal/audit"
	"github.com/strsift/strsift/internal/cache"
	"github.com/strsift/strsift/internal/config"
	"github.com/strsift/strsift/internal/engine"
	"github.com/strsift/strsift/internal/report"
	"github.com/strsift/strsift/internal/types"
)

var (
	flagPath              string
	flagMinLength         int
	flagEncodings         string
	flagIncludeWhitespace bool
	flagMaxCandidates     int
	flagTimeBudget        time.Duration
	flagThreshold         float64
	flagInclude           string
	flagExclude           string
	flagMaxBytes          int64
	flagDefaultExcludes   bool
	flagTop               int
	flagVerbose           bool
	flagTable             bool
	flagText              bool
	flagStats             bool
	flagMinCount          int
	flagMinScore          float64
	flagSuspiciousOnly    bool
	flagCategories        string
	flagBaselinePath      string
	flagNoCache           bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a file or directory for strings of interest",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "file or directory to scan")
	cmd.Flags().IntVar(&flagMinLength, "min-length", 0, "minimum string length (default 4)")
	cmd.Flags().StringVar(&flagEncodings, "encodings", "", "comma-separated encodings: ascii,utf16le,utf16be (default all)")
	cmd.Flags().BoolVar(&flagIncludeWhitespace, "include-whitespace", false, "treat tab/newline/cr as printable")
	cmd.Flags().IntVar(&flagMaxCandidates, "max-candidates", 0, "stop after this many candidates (0 = unlimited)")
	cmd.Flags().DurationVar(&flagTimeBudget, "time-budget", 0, "stop after this much wall time (e.g. 30s, 0 = unlimited)")
	cmd.Flags().Float64Var(&flagThreshold, "suspicion-threshold", 0, "score at which an entry is marked suspicious (default 0.75)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs for directory scans")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs for directory scans")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this in directory scans (0 = no limit)")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "skip VCS metadata, caches, and text docs in directory scans")
	cmd.Flags().IntVar(&flagTop, "top", 50, "show only the top N entries (0 = all)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "show offsets and encodings per entry")
	cmd.Flags().BoolVar(&flagTable, "table", false, "output in table format with borders (default)")
	cmd.Flags().BoolVar(&flagText, "text", false, "output in plain text columnar format")
	cmd.Flags().BoolVar(&flagStats, "stats", false, "print distribution statistics after the report")
	cmd.Flags().IntVar(&flagMinCount, "min-count", 0, "only show entries occurring at least this often")
	cmd.Flags().Float64Var(&flagMinScore, "min-score", 0, "only show entries scoring at least this")
	cmd.Flags().BoolVar(&flagSuspiciousOnly, "suspicious-only", false, "only show entries marked suspicious")
	cmd.Flags().StringVar(&flagCategories, "categories", "", "only show entries with one of these categories (comma-separated)")
	cmd.Flags().StringVar(&flagBaselinePath, "baseline", "", "suppress strings recorded in this baseline file")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "rescan every file even when its content hash is cached")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, err := filepath.Abs(flagPath)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return err
	}
	root := abs
	if !info.IsDir() {
		root = filepath.Dir(abs)
	}

	// Config precedence: CLI > local > global.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	fileCfg := config.Merge(gcfg, lcfg)
	cfg, err := fileCfg.EngineConfig()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)
	flagNoColor = pickBool(flagNoColor, fileCfg.NoColor, nil)
	if fileCfg.DefaultExcludes != nil && !cmd.Flags().Changed("default-excludes") {
		flagDefaultExcludes = *fileCfg.DefaultExcludes
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rep *types.ScanReport
	if info.IsDir() {
		rep, err = scanTree(ctx, abs, cfg, fileCfg)
	} else {
		rep, err = scanFile(ctx, abs, cfg)
	}
	if err != nil {
		return err
	}

	// History and last-scan results are best effort; a read-only working
	// directory must not fail the scan itself.
	_ = audit.NewLog(root).LogScan(audit.Record(rep))
	_ = cache.SaveResults(root, rep)

	if base, ok := loadBaseline(root); ok {
		rep.Entries = report.FilterNewEntries(rep.Entries, base)
	}
	if f, set := entryFilter(); set {
		rep.Entries = f.Apply(rep)
	}

	switch {
	case flagJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	case flagCSV:
		if err := report.WriteCSV(os.Stdout, rep); err != nil {
			return fmt.Errorf("csv error: %w", err)
		}
	case flagText:
		report.PrintText(os.Stdout, rep, printOptions())
	default:
		report.PrintTable(os.Stdout, rep, printOptions())
	}
	if flagStats && !flagJSON && !flagCSV {
		fmt.Fprintln(os.Stdout)
		report.PrintStats(os.Stdout, rep)
	}

	if flagFailOnScore > 0 && report.ShouldFail(rep.Entries, flagFailOnScore) {
		os.Exit(1)
	}
	return nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *engine.Config) {
	if flagMinLength > 0 {
		cfg.MinLength = flagMinLength
	}
	if flagEncodings != "" {
		cfg.Encodings = nil
		for _, e := range strings.Split(flagEncodings, ",") {
			if e = strings.TrimSpace(e); e != "" {
				cfg.Encodings = append(cfg.Encodings, types.Encoding(e))
			}
		}
	}
	if cmd.Flags().Changed("include-whitespace") {
		cfg.IncludeWhitespace = flagIncludeWhitespace
	}
	if flagMaxCandidates > 0 {
		cfg.MaxCandidates = flagMaxCandidates
	}
	if flagTimeBudget > 0 {
		cfg.TimeBudget = flagTimeBudget
	}
	if flagThreshold > 0 {
		cfg.SuspicionThreshold = flagThreshold
	}
}

func scanFile(ctx context.Context, path string, cfg engine.Config) (*types.ScanReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rep, err := engine.Scan(ctx, data, cfg)
	if err != nil {
		return nil, fmt.Errorf("scan error: %w", err)
	}
	rep.Source = filepath.Base(path)
	return rep, nil
}

func scanTree(ctx context.Context, root string, cfg engine.Config, fileCfg config.FileConfig) (*types.ScanReport, error) {
	wcfg := engine.WalkConfig{
		Root:            root,
		IncludeGlobs:    pickString(flagInclude, fileCfg.Include, nil),
		ExcludeGlobs:    pickString(flagExclude, fileCfg.Exclude, nil),
		MaxBytes:        pickInt64(flagMaxBytes, fileCfg.MaxBytes, nil),
		DefaultExcludes: flagDefaultExcludes,
	}
	var rels []string
	if err := engine.Walk(ctx, wcfg, func(rel string) {
		rels = append(rels, rel)
	}); err != nil {
		return nil, err
	}
	if !flagJSON && !flagCSV {
		fmt.Fprintf(os.Stderr, "Scanning %d files under %s...\n", len(rels), root)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	opts := []engine.BatchOption{
		engine.WithConcurrency(pickInt(flagConcurrency, fileCfg.Concurrency, nil)),
		engine.WithBatchLogger(logger),
	}
	var db cache.DB
	if !flagNoCache {
		db, _ = cache.Load(root)
		opts = append(opts, engine.WithCache(&db))
	}
	bp, err := engine.NewBatchProcessor(cfg, opts...)
	if err != nil {
		return nil, err
	}
	_, merged, err := bp.Process(ctx, engine.FileTargets(root, rels))
	if err != nil && ctx.Err() == nil {
		return nil, fmt.Errorf("batch error: %w", err)
	}
	if !flagNoCache {
		_ = cache.Save(root, db)
	}
	merged.Source = root
	return merged, nil
}

func loadBaseline(root string) (report.Baseline, bool) {
	path := flagBaselinePath
	if path == "" {
		path = filepath.Join(root, baselineFileName)
		if _, err := os.Stat(path); err != nil {
			return report.Baseline{}, false
		}
	}
	base, err := report.LoadBaseline(path)
	if err != nil {
		return report.Baseline{}, false
	}
	return base, true
}

func entryFilter() (aggregate.Filter, bool) {
	f := aggregate.Filter{
		MinCount:       flagMinCount,
		SuspiciousOnly: flagSuspiciousOnly,
	}
	set := flagMinCount > 0 || flagSuspiciousOnly
	if flagMinScore > 0 {
		f.MinScore = floatPtr(flagMinScore)
		set = true
	}
	if flagCategories != "" {
		for _, c := range strings.Split(flagCategories, ",") {
			if c = strings.TrimSpace(c); c != "" {
				f.Categories = append(f.Categories, types.Category(c))
			}
		}
		set = true
	}
	return f, set
}

func printOptions() report.PrintOptions {
	return report.PrintOptions{
		NoColor:    colorDisabled(),
		MaxEntries: flagTop,
		Verbose:    flagVerbose,
	}
}
