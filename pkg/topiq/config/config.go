// Package config loads YAML configuration for the analysis engine:
// vocabulary extensions, extractor tuning, and the optional snapshot
// database path.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trendlens/topiq/pkg/topiq/extract"
	"github.com/trendlens/topiq/pkg/topiq/internalerr"
)

// Config is the full engine configuration.
type Config struct {
	Vocabulary Vocabulary `yaml:"vocabulary"`
	Extractor  Extractor  `yaml:"extractor"`
	Snapshot   Snapshot   `yaml:"snapshot"`
}

// Vocabulary extends the built-in tables. Entries are lowercased by the
// denylist; the static tables cannot be shrunk, only extended.
type Vocabulary struct {
	ExtraStopwords []string `yaml:"extra_stopwords"`
	ExtraGarbage   []string `yaml:"extra_garbage"`
}

// Extractor tunes the statistical extraction constants. Zero values mean
// the package defaults.
type Extractor struct {
	MaxDF           float64 `yaml:"max_df"`
	CandidateFactor int     `yaml:"candidate_factor"`
	QualityDivisor  int     `yaml:"quality_divisor"`
}

// Snapshot configures run persistence. An empty path disables it.
type Snapshot struct {
	Path string `yaml:"path"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	e := c.Extractor
	if e.MaxDF < 0 || e.MaxDF > 1 {
		return fmt.Errorf("%w: max_df %v outside (0,1]", internalerr.ErrInvalidConfig, e.MaxDF)
	}
	if e.CandidateFactor < 0 {
		return fmt.Errorf("%w: candidate_factor %d negative", internalerr.ErrInvalidConfig, e.CandidateFactor)
	}
	if e.QualityDivisor < 0 {
		return fmt.Errorf("%w: quality_divisor %d negative", internalerr.ErrInvalidConfig, e.QualityDivisor)
	}
	return nil
}

// Params converts the extractor section to extract.Params, applying
// defaults for unset fields.
func (c *Config) Params() extract.Params {
	def := extract.DefaultParams()
	p := extract.Params{
		MaxDF:           c.Extractor.MaxDF,
		CandidateFactor: c.Extractor.CandidateFactor,
		QualityDivisor:  c.Extractor.QualityDivisor,
	}
	if p.MaxDF == 0 {
		p.MaxDF = def.MaxDF
	}
	if p.CandidateFactor == 0 {
		p.CandidateFactor = def.CandidateFactor
	}
	if p.QualityDivisor == 0 {
		p.QualityDivisor = def.QualityDivisor
	}
	return p
}
