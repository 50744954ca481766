// Package extract ranks topics over a cleaned corpus: TF-IDF mean-importance
// scoring with corpus-size-adaptive parameters, two quality gates against
// residual web noise, and a circuit breaker that degrades to plain frequency
// counting rather than return a degenerate topic set.
package extract

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/trendlens/topiq/pkg/topiq/freq"
	"github.com/trendlens/topiq/pkg/topiq/internalerr"
	"github.com/trendlens/topiq/pkg/topiq/tfidf"
	"github.com/trendlens/topiq/pkg/topiq/vocab"
)

// Params are the tunable extraction constants.
type Params struct {
	// MaxDF drops terms appearing in more than this fraction of documents.
	MaxDF float64
	// CandidateFactor over-fetches CandidateFactor×k candidates before the
	// quality gates.
	CandidateFactor int
	// QualityDivisor sets the circuit-breaker floor: fewer than
	// k/QualityDivisor surviving topics discards the statistical result.
	QualityDivisor int
}

// DefaultParams returns the stock parameters.
func DefaultParams() Params {
	return Params{MaxDF: 0.8, CandidateFactor: 3, QualityDivisor: 2}
}

// exactReject is the narrow exact-match denylist applied per candidate at
// gate 1, separate from the garbage table: "ai" is a legitimate corpus token
// but never an acceptable topic label.
var exactReject = map[string]struct{}{
	"ai": {}, "rss": {}, "xml": {}, "json": {},
}

// Report describes one extraction pass, stage by stage.
type Report struct {
	Documents      int
	MinDF          int
	Vocabulary     int
	Candidates     int
	Gate1Rejected  int
	Gate2Rejected  int
	FallbackUsed   bool
	FallbackReason error // ErrEmptyVocabulary or ErrInsufficientQuality
}

// Extractor is the statistical topic extractor with its fallback.
type Extractor struct {
	deny     *vocab.Denylist
	fallback *freq.Extractor
	params   Params
}

// New creates an extractor. A nil denylist means the default tables;
// non-positive parameters fall back to their defaults.
func New(deny *vocab.Denylist, params Params) *Extractor {
	if deny == nil {
		deny = vocab.Default()
	}
	def := DefaultParams()
	if params.MaxDF <= 0 || params.MaxDF > 1 {
		params.MaxDF = def.MaxDF
	}
	if params.CandidateFactor < 1 {
		params.CandidateFactor = def.CandidateFactor
	}
	if params.QualityDivisor < 1 {
		params.QualityDivisor = def.QualityDivisor
	}
	return &Extractor{
		deny:     deny,
		fallback: freq.NewExtractor(deny),
		params:   params,
	}
}

// TopTopics returns up to k topic strings for a corpus of cleaned documents.
// It never fails: vectorization failure and quality-insufficient results
// silently route to the frequency fallback.
func (e *Extractor) TopTopics(corpus []string, k int) []string {
	topics, _ := e.TopTopicsReport(corpus, k)
	return topics
}

// TopTopicsReport is TopTopics plus per-stage diagnostics.
func (e *Extractor) TopTopicsReport(corpus []string, k int) ([]string, Report) {
	report := Report{Documents: len(corpus)}
	if len(corpus) == 0 || k <= 0 {
		return nil, report
	}

	// Corpus-size-adaptive minimum document frequency.
	minDF := len(corpus) / 10
	if minDF < 1 {
		minDF = 1
	}
	if minDF > 3 {
		minDF = 3
	}
	report.MinDF = minDF

	vectorizer := tfidf.NewVectorizer(e.deny, minDF, e.params.MaxDF)
	matrix, err := vectorizer.FitTransform(corpus)
	if err != nil {
		report.FallbackUsed = true
		report.FallbackReason = internalerr.ErrEmptyVocabulary
		return e.fallback.TopTokens(corpus, k), report
	}
	report.Vocabulary = len(matrix.Terms)

	candidates := topCandidates(matrix, e.params.CandidateFactor*k)
	report.Candidates = len(candidates)

	// Gate 1: substring containment against the garbage table plus the
	// narrow exact-match rejects.
	var survivors []string
	for _, topic := range candidates {
		if e.passGate1(topic) {
			survivors = append(survivors, topic)
		} else {
			report.Gate1Rejected++
		}
	}
	if len(survivors) > k {
		survivors = survivors[:k]
	}

	// Gate 2: whole-word re-validation after splitting bigrams.
	final := survivors[:0]
	for _, topic := range survivors {
		if e.deny.MatchesWord(topic) {
			report.Gate2Rejected++
			continue
		}
		final = append(final, topic)
	}

	// Circuit breaker: a mostly-noise candidate set is worse than plain
	// frequency counting.
	if len(final) < k/e.params.QualityDivisor {
		report.FallbackUsed = true
		report.FallbackReason = internalerr.ErrInsufficientQuality
		return e.fallback.TopTokens(corpus, k), report
	}
	return final, report
}

// topCandidates returns up to limit terms with positive mean importance,
// highest first; ties break lexicographically for determinism.
func topCandidates(matrix *tfidf.Matrix, limit int) []string {
	means := matrix.MeanScores()
	idx := make([]int, 0, len(means))
	for i, score := range means {
		if score > 0 {
			idx = append(idx, i)
		}
	}
	sort.Slice(idx, func(a, b int) bool {
		if means[idx[a]] != means[idx[b]] {
			return means[idx[a]] > means[idx[b]]
		}
		return matrix.Terms[idx[a]] < matrix.Terms[idx[b]]
	})
	if len(idx) > limit {
		idx = idx[:limit]
	}
	topics := make([]string, len(idx))
	for i, j := range idx {
		topics[i] = matrix.Terms[j]
	}
	return topics
}

func (e *Extractor) passGate1(topic string) bool {
	lower := strings.ToLower(topic)
	if e.deny.ContainsAny(lower) {
		return false
	}
	if utf8.RuneCountInString(topic) <= 1 {
		return false
	}
	if _, bad := exactReject[lower]; bad {
		return false
	}
	for _, r := range topic {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
