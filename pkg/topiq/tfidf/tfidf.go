// Package tfidf builds a call-scoped term-importance matrix over a corpus of
// clean document strings: unigrams and bigrams, document-frequency pruning,
// smoothed IDF, L2-normalized rows. Each TopTopics invocation gets a fresh
// Vectorizer so vocabulary never leaks between unrelated corpora.
package tfidf

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/trendlens/topiq/pkg/topiq/internalerr"
	"github.com/trendlens/topiq/pkg/topiq/vocab"
)

// termRe admits tokens of two or more Hangul or Latin letters. Numeric and
// single-rune tokens never enter the vocabulary.
var termRe = regexp.MustCompile(`^[가-힣a-zA-Z]{2,}$`)

// Vectorizer holds the pruning parameters for one corpus pass.
type Vectorizer struct {
	deny  *vocab.Denylist
	minDF int     // keep terms appearing in at least minDF documents
	maxDF float64 // drop terms appearing in more than maxDF of documents
}

// NewVectorizer creates a vectorizer. A nil denylist means the default
// tables; minDF below 1 is clamped to 1.
func NewVectorizer(deny *vocab.Denylist, minDF int, maxDF float64) *Vectorizer {
	if deny == nil {
		deny = vocab.Default()
	}
	if minDF < 1 {
		minDF = 1
	}
	return &Vectorizer{deny: deny, minDF: minDF, maxDF: maxDF}
}

// Matrix is a dense document × term importance matrix.
type Matrix struct {
	Terms []string    // vocabulary in lexicographic order
	Rows  [][]float64 // one L2-normalized row per document
}

// FitTransform tokenizes the corpus, prunes the vocabulary by document
// frequency, and returns the TF-IDF matrix. It fails with
// internalerr.ErrEmptyVocabulary when pruning leaves no terms, an expected
// condition the caller routes to the fallback path.
func (v *Vectorizer) FitTransform(corpus []string) (*Matrix, error) {
	n := len(corpus)
	if n == 0 {
		return nil, fmt.Errorf("fit: %w", internalerr.ErrInvalidInput)
	}

	docFeatures := make([][]string, n)
	df := make(map[string]int)
	for i, doc := range corpus {
		features := v.features(doc)
		docFeatures[i] = features
		seen := make(map[string]struct{}, len(features))
		for _, f := range features {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			df[f]++
		}
	}

	// Prune: too rare (min-DF) or too common (max-DF fraction).
	maxCount := v.maxDF * float64(n)
	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count < v.minDF {
			continue
		}
		if float64(count) > maxCount {
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("fit: %w", internalerr.ErrEmptyVocabulary)
	}
	sort.Strings(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1.
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}

	rows := make([][]float64, n)
	for i, features := range docFeatures {
		row := make([]float64, len(terms))
		for _, f := range features {
			if j, ok := index[f]; ok {
				row[j] += idf[j]
			}
		}
		normalize(row)
		rows[i] = row
	}

	return &Matrix{Terms: terms, Rows: rows}, nil
}

// features extracts the unigram and bigram candidates of one document.
// Denylisted tokens are removed before bigram formation, so a bigram can
// span a removed word.
func (v *Vectorizer) features(doc string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(doc)) {
		if !termRe.MatchString(tok) {
			continue
		}
		if v.deny.Denied(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	features := make([]string, 0, 2*len(tokens))
	features = append(features, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		features = append(features, tokens[i]+" "+tokens[i+1])
	}
	return features
}

// MeanScores returns the column-wise mean importance of each term across
// all documents; documents where a term is absent contribute zero.
func (m *Matrix) MeanScores() []float64 {
	means := make([]float64, len(m.Terms))
	if len(m.Rows) == 0 {
		return means
	}
	for _, row := range m.Rows {
		for j, val := range row {
			means[j] += val
		}
	}
	inv := 1 / float64(len(m.Rows))
	for j := range means {
		means[j] *= inv
	}
	return means
}

func normalize(row []float64) {
	var sum float64
	for _, val := range row {
		sum += val * val
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for j := range row {
		row[j] /= norm
	}
}
