package engine

import "strings"

// Directories that never hold interesting scan targets.
var defaultExcludeDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".cache":       true,
}

// Text artifacts with no triage value as binary targets.
var defaultExcludeFileSuffixes = []string{
	".md", ".txt", ".rst",
	".lock",
	".sum",
}

// Our own on-disk artifacts are always skipped so repeated scans of the
// same root do not feed on their own output.
var defaultExcludeFileNames = map[string]bool{
	".ds_store":               true,
	".gitignore":              true,
	"thumbs.db":               true,
	".strsiftignore":          true,
	".strsiftcache.json":      true,
	".strsift_audit.jsonl":    true,
	".strsift_last_scan.json": true,
	"strsift.baseline.json":   true,
	".strsift.yml":            true,
	".strsift.yaml":           true,
	"strsift.yml":             true,
	"strsift.yaml":            true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name]
}

func isDefaultFileExcluded(lowerRel string) bool {
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lowerRel, s) {
			return true
		}
	}
	if i := strings.LastIndex(lowerRel, "/"); i >= 0 {
		lowerRel = lowerRel[i+1:]
	}
	return defaultExcludeFileNames[lowerRel]
}
