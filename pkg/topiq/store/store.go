// Package store defines the optional snapshot store for extraction runs.
// The pipeline itself is stateless; runs are diagnostic records of what an
// extraction produced, kept for offline quality review.
package store

import (
	"context"
	"time"

	"github.com/trendlens/topiq/pkg/topiq/freq"
)

// Run is one recorded extraction: the ranked topics and keywords produced
// for a corpus, with enough context to audit the result later.
type Run struct {
	ID        string // ULID, assigned by the caller
	Source    string // label for the corpus, e.g. the search keyword
	Documents int
	Topics    []string
	Keywords  []freq.Keyword
	Fallback  bool // whether the frequency fallback produced the topics
	CreatedAt time.Time
}

// Store persists extraction runs.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	GetRun(ctx context.Context, id string) (Run, bool, error)
	// ListRuns returns up to limit runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}
