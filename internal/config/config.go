package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/strsift/strsift/internal/engine"
	"github.com/strsift/strsift/internal/types"
)

// FileConfig is the on-disk YAML configuration shape for strsift. Fields
// are pointers so an absent key can be told apart from a zero value when
// layering config sources.
type FileConfig struct {
	MinLength         *int     `yaml:"min_length"`
	Encodings         []string `yaml:"encodings"`
	IncludeWhitespace *bool    `yaml:"include_whitespace"`

	CategoryWeights  map[string]float64 `yaml:"category_weights"`
	GenericMinLength *int               `yaml:"generic_min_length"`

	MaxCandidates      *int     `yaml:"max_candidates"`
	TimeBudget         *string  `yaml:"time_budget"`
	MaxOffsetsPerEntry *int     `yaml:"max_offsets_per_entry"`
	SuspicionThreshold *float64 `yaml:"suspicion_threshold"`

	// Batch scanning options mirror CLI flags.
	Include         *string `yaml:"include"`
	Exclude         *string `yaml:"exclude"`
	MaxBytes        *int64  `yaml:"max_bytes"`
	Concurrency     *int    `yaml:"concurrency"`
	DefaultExcludes *bool   `yaml:"default_excludes"`
	NoColor         *bool   `yaml:"no_color"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a directory-local config file in the given root.
// It supports .strsift.yml/.yaml and strsift.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".strsift.yml", ".strsift.yaml", "strsift.yml", "strsift.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "strsift", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Merge layers overlay on top of fc: any field set in overlay wins.
// Neither input is modified.
func Merge(fc, overlay FileConfig) FileConfig {
	out := fc
	if overlay.MinLength != nil {
		out.MinLength = overlay.MinLength
	}
	if len(overlay.Encodings) > 0 {
		out.Encodings = overlay.Encodings
	}
	if overlay.IncludeWhitespace != nil {
		out.IncludeWhitespace = overlay.IncludeWhitespace
	}
	if len(overlay.CategoryWeights) > 0 {
		out.CategoryWeights = overlay.CategoryWeights
	}
	if overlay.GenericMinLength != nil {
		out.GenericMinLength = overlay.GenericMinLength
	}
	if overlay.MaxCandidates != nil {
		out.MaxCandidates = overlay.MaxCandidates
	}
	if overlay.TimeBudget != nil {
		out.TimeBudget = overlay.TimeBudget
	}
	if overlay.MaxOffsetsPerEntry != nil {
		out.MaxOffsetsPerEntry = overlay.MaxOffsetsPerEntry
	}
	if overlay.SuspicionThreshold != nil {
		out.SuspicionThreshold = overlay.SuspicionThreshold
	}
	if overlay.Include != nil {
		out.Include = overlay.Include
	}
	if overlay.Exclude != nil {
		out.Exclude = overlay.Exclude
	}
	if overlay.MaxBytes != nil {
		out.MaxBytes = overlay.MaxBytes
	}
	if overlay.Concurrency != nil {
		out.Concurrency = overlay.Concurrency
	}
	if overlay.DefaultExcludes != nil {
		out.DefaultExcludes = overlay.DefaultExcludes
	}
	if overlay.NoColor != nil {
		out.NoColor = overlay.NoColor
	}
	return out
}

// EngineConfig converts the file shape into an engine.Config, starting
// from engine defaults and applying only the fields actually set. The
// result is not validated here; engine.Scan validates at entry.
func (fc FileConfig) EngineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if fc.MinLength != nil {
		cfg.MinLength = *fc.MinLength
	}
	if len(fc.Encodings) > 0 {
		cfg.Encodings = make([]types.Encoding, 0, len(fc.Encodings))
		for _, e := range fc.Encodings {
			cfg.Encodings = append(cfg.Encodings, types.Encoding(e))
		}
	}
	if fc.IncludeWhitespace != nil {
		cfg.IncludeWhitespace = *fc.IncludeWhitespace
	}
	if len(fc.CategoryWeights) > 0 {
		cfg.CategoryWeights = make(map[types.Category]float64, len(fc.CategoryWeights))
		for cat, w := range fc.CategoryWeights {
			cfg.CategoryWeights[types.Category(cat)] = w
		}
	}
	if fc.GenericMinLength != nil {
		cfg.GenericMinLength = *fc.GenericMinLength
	}
	if fc.MaxCandidates != nil {
		cfg.MaxCandidates = *fc.MaxCandidates
	}
	if fc.TimeBudget != nil && *fc.TimeBudget != "" {
		d, err := time.ParseDuration(*fc.TimeBudget)
		if err != nil {
			return cfg, fmt.Errorf("time_budget: %w", err)
		}
		cfg.TimeBudget = d
	}
	if fc.MaxOffsetsPerEntry != nil {
		cfg.MaxOffsetsPerEntry = *fc.MaxOffsetsPerEntry
	}
	if fc.SuspicionThreshold != nil {
		cfg.SuspicionThreshold = *fc.SuspicionThreshold
	}
	return cfg, nil
}
