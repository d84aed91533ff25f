package engine

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/strsift/strsift/internal/ignore"
)

// WalkConfig controls target discovery for batch scans.
type WalkConfig struct {
	Root            string
	IncludeGlobs    string // comma-separated doublestar patterns
	ExcludeGlobs    string // comma-separated doublestar patterns
	MaxBytes        int64  // skip files larger than this; 0 means no limit
	DefaultExcludes bool   // skip VCS metadata, package caches, lockfiles
}

// Walk traverses the root and invokes handle with each eligible file's
// relative path. File contents are deliberately not read here; the batch
// processor reads them under its own concurrency limit.
func Walk(ctx context.Context, cfg WalkConfig, handle func(rel string)) error {
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".strsiftignore"))
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		if ign.Match(rel) {
			return nil
		}
		if cfg.DefaultExcludes && isDefaultFileExcluded(strings.ToLower(rel)) {
			return nil
		}
		if cfg.MaxBytes > 0 {
			info, ierr := d.Info()
			if ierr != nil || info.Size() > cfg.MaxBytes {
				return nil
			}
		}
		handle(rel)
		return nil
	})
}

// CountTargets reports how many files Walk would hand to the batch
// processor, for progress reporting.
func CountTargets(cfg WalkConfig) (int, error) {
	n := 0
	err := Walk(context.Background(), cfg, func(string) { n++ })
	return n, err
}

// ReadTarget loads one walk result for scanning.
func ReadTarget(root, rel string) ([]byte, error) {
	return os.ReadFile(filepath.Join(root, rel))
}

// allowedByGlobs applies the include/exclude glob configuration to a
// relative path. Include globs, if any, act as a positive filter; exclude
// globs are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg WalkConfig) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
