package ignore

import (
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher holds the patterns from an ignore file. The zero value matches
// nothing, so callers can use the result of a failed Load directly.
type Matcher struct {
	dirs  []string
	globs []string
	names []string
}

// Load parses an ignore file. Lines are one pattern each: `dir/` prefixes,
// globs, or plain file names. Blank lines and `#` comments are skipped.
func Load(path string) (Matcher, error) {
	var m Matcher
	b, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasSuffix(line, "/"):
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
		case strings.ContainsAny(line, "*?["):
			m.globs = append(m.globs, line)
		default:
			m.names = append(m.names, line)
		}
	}
	return m, nil
}

// Match reports whether the relative path is covered by any pattern.
// Matching uses forward-slash semantics.
func (m Matcher) Match(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	base := filepath.Base(rp)
	for _, d := range m.dirs {
		if rp == d || strings.HasPrefix(rp, d+"/") || strings.Contains(rp, "/"+d+"/") {
			return true
		}
	}
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, base); ok {
			return true
		}
	}
	for _, n := range m.names {
		if rp == n || base == n {
			return true
		}
	}
	return false
}
