package config

import (
	"github.com/interlink/interlink/pkg/interlink/ingest"
	"github.com/interlink/interlink/pkg/interlink/rank"
	"github.com/interlink/interlink/pkg/interlink/stopwords"
)

// Loader loads configuration and constructs engine components
type Loader struct {
	// Path to a YAML config file; when empty, defaults are used
	Path string
}

// Components holds the constructed engine components
type Components struct {
	Tokenizer     *ingest.Tokenizer
	Weights       rank.Weights
	MaxLinks      int
	MaxCandidates int
}

// Load reads the configuration (or takes defaults) and returns
// initialized components.
func (l Loader) Load() (*Components, error) {
	cfg := Default()
	if l.Path != "" {
		loaded, err := Load(l.Path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	stops := cfg.Stoplist
	if len(stops) == 0 {
		stops = stopwords.Default()
	}

	return &Components{
		Tokenizer: ingest.NewTokenizer(stops),
		Weights: rank.Weights{
			KeywordBoost:   cfg.Weights.KeywordBoost,
			CategoryBoost:  cfg.Weights.CategoryBoost,
			TagBoost:       cfg.Weights.TagBoost,
			RelevanceFloor: cfg.Weights.RelevanceFloor,
		},
		MaxLinks:      cfg.MaxLinks,
		MaxCandidates: cfg.MaxCandidates,
	}, nil
}
