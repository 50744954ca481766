package config

import (
	"context"
	"fmt"

	"github.com/trendlens/topiq/pkg/topiq"
	"github.com/trendlens/topiq/pkg/topiq/clean"
	"github.com/trendlens/topiq/pkg/topiq/store/sqlite"
	"github.com/trendlens/topiq/pkg/topiq/vocab"
)

// Loader assembles a ready Engine from a config file. All fields besides
// ConfigPath are optional overrides.
type Loader struct {
	ConfigPath string
	// Diagnostic is passed through to the normalizer.
	Diagnostic clean.Diagnostic
}

// Load reads the config (when a path is set) and builds the Engine. The
// caller owns the Engine and must Close it to release the snapshot store.
func (l *Loader) Load(ctx context.Context) (*topiq.Engine, error) {
	opts := topiq.Options{Diagnostic: l.Diagnostic}

	if l.ConfigPath != "" {
		cfg, err := Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		opts.Denylist = vocab.New(cfg.Vocabulary.ExtraStopwords, cfg.Vocabulary.ExtraGarbage)
		opts.Params = cfg.Params()

		if cfg.Snapshot.Path != "" {
			st, err := sqlite.Open(ctx, cfg.Snapshot.Path)
			if err != nil {
				return nil, fmt.Errorf("open snapshot store: %w", err)
			}
			opts.Store = st
		}
	}

	return topiq.New(opts), nil
}
