// Package topiq extracts representative topics and keywords from
// Korean/English text collected off the web. It wires the cleaning,
// statistical extraction and frequency-fallback stages together and,
// when a store is configured, snapshots each extraction run.
package topiq

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/trendlens/topiq/pkg/topiq/clean"
	"github.com/trendlens/topiq/pkg/topiq/extract"
	"github.com/trendlens/topiq/pkg/topiq/freq"
	"github.com/trendlens/topiq/pkg/topiq/store"
	"github.com/trendlens/topiq/pkg/topiq/vocab"
)

// Document is one unit of input text. Collectors sometimes supply raw text
// and sometimes already-cleaned text; Resolve picks the cleaned form when
// present so the core only ever sees plain strings.
type Document struct {
	Text      string
	CleanText string
}

// Plain wraps a raw string as a Document.
func Plain(text string) Document {
	return Document{Text: text}
}

// Resolve returns the cleaned text when set, otherwise the raw text.
func (d Document) Resolve() string {
	if d.CleanText != "" {
		return d.CleanText
	}
	return d.Text
}

// Options configures an Engine.
type Options struct {
	// Denylist overrides the default vocabulary tables.
	Denylist *vocab.Denylist
	// Params tunes the statistical extractor; zero values mean defaults.
	Params extract.Params
	// Store, when set, receives a Run snapshot per Analyze call.
	Store store.Store
	// Diagnostic, when set, is invoked on over-filtered inputs.
	Diagnostic clean.Diagnostic
}

// Engine is the analysis facade.
type Engine struct {
	normalizer *clean.Normalizer
	extractor  *extract.Extractor
	fallback   *freq.Extractor
	store      store.Store
	entropy    *ulid.MonotonicEntropy
}

// New creates an Engine.
func New(opts Options) *Engine {
	deny := opts.Denylist
	if deny == nil {
		deny = vocab.Default()
	}
	normalizer := clean.NewNormalizer(deny)
	if opts.Diagnostic != nil {
		normalizer.SetDiagnostic(opts.Diagnostic)
	}
	return &Engine{
		normalizer: normalizer,
		extractor:  extract.New(deny, opts.Params),
		fallback:   freq.NewExtractor(deny),
		store:      opts.Store,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Close releases the snapshot store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Normalize cleans one raw text for topic analysis.
func (e *Engine) Normalize(text string) string {
	return e.normalizer.Normalize(text)
}

// TopTopics ranks up to k topics over a corpus of cleaned document strings.
func (e *Engine) TopTopics(corpus []string, k int) []string {
	return e.extractor.TopTopics(corpus, k)
}

// Keywords ranks up to max frequency keywords over a cleaned corpus.
func (e *Engine) Keywords(corpus []string, max int) []freq.Keyword {
	return e.fallback.Keywords(corpus, max)
}

// Analysis is the result of one Analyze call.
type Analysis struct {
	RunID    string // empty when no store is configured
	Topics   []string
	Keywords []freq.Keyword
	Report   extract.Report
}

// Analyze normalizes the documents, extracts topics and keywords, and
// snapshots the run when a store is configured. The only error source is
// the store; extraction itself degrades internally and never fails.
func (e *Engine) Analyze(ctx context.Context, source string, docs []Document, k int) (Analysis, error) {
	corpus := make([]string, 0, len(docs))
	for _, d := range docs {
		cleaned := e.normalizer.Normalize(d.Resolve())
		if cleaned != "" {
			corpus = append(corpus, cleaned)
		}
	}

	topics, report := e.extractor.TopTopicsReport(corpus, k)
	analysis := Analysis{
		Topics:   topics,
		Keywords: e.fallback.Keywords(corpus, k),
		Report:   report,
	}

	if e.store == nil {
		return analysis, nil
	}

	analysis.RunID = e.newRunID()
	run := store.Run{
		ID:        analysis.RunID,
		Source:    source,
		Documents: len(corpus),
		Topics:    topics,
		Keywords:  analysis.Keywords,
		Fallback:  report.FallbackUsed,
		CreatedAt: time.Now(),
	}
	if err := e.store.SaveRun(ctx, run); err != nil {
		return analysis, err
	}
	return analysis, nil
}

func (e *Engine) newRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), e.entropy).String()
}

// Comparison describes the overlap between two topic sets.
type Comparison struct {
	Common     []string
	OnlyFirst  []string
	OnlySecond []string
	// Similarity is Jaccard overlap: |A∩B| / |A∪B|, zero for two empty sets.
	Similarity float64
}

// CompareTopics compares two topic lists as sets, preserving first-list
// order within each bucket.
func CompareTopics(first, second []string) Comparison {
	firstSet := toSet(first)
	secondSet := toSet(second)

	var c Comparison
	seen := make(map[string]struct{})
	for _, t := range first {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := secondSet[t]; ok {
			c.Common = append(c.Common, t)
		} else {
			c.OnlyFirst = append(c.OnlyFirst, t)
		}
	}
	seen = make(map[string]struct{})
	for _, t := range second {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := firstSet[t]; !ok {
			c.OnlySecond = append(c.OnlySecond, t)
		}
	}

	union := len(c.Common) + len(c.OnlyFirst) + len(c.OnlySecond)
	if union > 0 {
		c.Similarity = float64(len(c.Common)) / float64(union)
	}
	return c
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
