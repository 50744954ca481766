package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/trendlens/topiq/pkg/topiq/extract"
	"github.com/trendlens/topiq/pkg/topiq/internalerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topiq.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
vocabulary:
  extra_stopwords: ["관련", "내용"]
  extra_garbage: ["clickbait"]
extractor:
  max_df: 0.7
  candidate_factor: 4
  quality_divisor: 3
snapshot:
  path: runs.db
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Vocabulary.ExtraStopwords) != 2 {
		t.Errorf("ExtraStopwords = %v", cfg.Vocabulary.ExtraStopwords)
	}
	if cfg.Snapshot.Path != "runs.db" {
		t.Errorf("Snapshot.Path = %q", cfg.Snapshot.Path)
	}

	want := extract.Params{MaxDF: 0.7, CandidateFactor: 4, QualityDivisor: 3}
	if got := cfg.Params(); got != want {
		t.Errorf("Params = %+v, want %+v", got, want)
	}
}

func TestLoadDefaultsForUnsetFields(t *testing.T) {
	path := writeConfig(t, `
vocabulary:
  extra_garbage: ["clickbait"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Params(); got != extract.DefaultParams() {
		t.Errorf("Params = %+v, want defaults", got)
	}
}

func TestLoadInvalidMaxDF(t *testing.T) {
	path := writeConfig(t, `
extractor:
  max_df: 1.5
`)

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "extractor: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
