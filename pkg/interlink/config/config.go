package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/interlink/interlink/pkg/interlink/internalerr"
)

// Config holds the engine configuration
type Config struct {
	// Stoplist overrides the built-in stopword list when non-empty
	Stoplist []string `yaml:"stoplist"`
	// MaxLinks is the default link budget per enhancement run
	MaxLinks int `yaml:"max_links"`
	// MaxCandidates caps the candidate pool fetched per run
	MaxCandidates int     `yaml:"max_candidates"`
	Weights       Weights `yaml:"weights"`
}

// Weights mirrors the scoring boost constants
type Weights struct {
	KeywordBoost   float64 `yaml:"keyword_boost"`
	CategoryBoost  float64 `yaml:"category_boost"`
	TagBoost       float64 `yaml:"tag_boost"`
	RelevanceFloor float64 `yaml:"relevance_floor"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		MaxLinks:      5,
		MaxCandidates: 500,
		Weights: Weights{
			KeywordBoost:   1.5,
			CategoryBoost:  1.3,
			TagBoost:       1.2,
			RelevanceFloor: 0.001,
		},
	}
}

// Load reads configuration from a YAML file, filling unset fields with
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MaxLinks < 0 {
		return fmt.Errorf("%w: max_links must not be negative", internalerr.ErrInvalidConfig)
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("%w: max_candidates must not be negative", internalerr.ErrInvalidConfig)
	}
	if c.Weights.KeywordBoost < 0 || c.Weights.CategoryBoost < 0 || c.Weights.TagBoost < 0 {
		return fmt.Errorf("%w: boost weights must not be negative", internalerr.ErrInvalidConfig)
	}
	if c.Weights.RelevanceFloor < 0 {
		return fmt.Errorf("%w: relevance_floor must not be negative", internalerr.ErrInvalidConfig)
	}
	return nil
}
