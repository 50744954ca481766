// Package freq is the frequency-count extraction path: the fallback used
// when the statistical extractor fails or degenerates, and the home of the
// Keyword record produced for downstream chart/wordcloud consumers.
package freq

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/trendlens/topiq/pkg/topiq/vocab"
)

// Keyword is one extracted keyword with its corpus frequency and, when a
// morphological segmenter supplied it, a part-of-speech tag.
type Keyword struct {
	Keyword string
	Count   int
	POS     string
}

// Morpheme is one (surface, part-of-speech) pair from an external
// morphological analyzer.
type Morpheme struct {
	Surface string
	POS     string
}

// Segmenter is the boundary to an external morphological analyzer. The
// extractor only consumes its output; analyzer internals are out of scope.
type Segmenter interface {
	Segment(text string) []Morpheme
}

// finalReject is the exact-match list applied to ranked fallback tokens
// before they are returned as topics. Only "ai" can actually reach the
// ranking; the other entries are whole-token garbage and are removed during
// counting already.
var finalReject = map[string]struct{}{
	"ai": {}, "rss": {}, "xml": {}, "json": {}, "api": {}, "http": {}, "www": {},
}

// Extractor ranks tokens by raw frequency.
type Extractor struct {
	deny *vocab.Denylist
}

// NewExtractor creates a frequency extractor over the given denylist.
// A nil denylist means the default tables.
func NewExtractor(deny *vocab.Denylist) *Extractor {
	if deny == nil {
		deny = vocab.Default()
	}
	return &Extractor{deny: deny}
}

// TopTokens returns up to k tokens ranked by raw frequency across the
// corpus. Ties keep first-encountered order. Never fails; an empty corpus
// or one with no surviving tokens yields an empty result.
func (e *Extractor) TopTokens(corpus []string, k int) []string {
	if len(corpus) == 0 || k <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, doc := range corpus {
		for _, tok := range strings.Fields(strings.ToLower(doc)) {
			if !e.eligible(tok) {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	// Over-fetch 2k, then apply the final exact-match rejection.
	limit := k * 2
	if limit > len(order) {
		limit = len(order)
	}
	var result []string
	for _, tok := range order[:limit] {
		if _, bad := finalReject[tok]; bad {
			continue
		}
		result = append(result, tok)
		if len(result) == k {
			break
		}
	}
	return result
}

// Keywords returns up to max Keyword records ranked by frequency, POS set
// to "Unknown". Same filtering as TopTokens minus the final reject list,
// since keyword consumers want counts, not topic labels.
func (e *Extractor) Keywords(corpus []string, max int) []Keyword {
	if len(corpus) == 0 || max <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, doc := range corpus {
		for _, tok := range strings.Fields(strings.ToLower(doc)) {
			if !e.eligible(tok) {
				continue
			}
			if counts[tok] == 0 {
				order = append(order, tok)
			}
			counts[tok]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > max {
		order = order[:max]
	}

	result := make([]Keyword, len(order))
	for i, tok := range order {
		result[i] = Keyword{Keyword: tok, Count: counts[tok], POS: "Unknown"}
	}
	return result
}

// KeywordsSegmented ranks keywords from an external morphological analyzer's
// output, keeping the POS tag of each surface form's first occurrence.
// Garbage tokens and single-rune surfaces are dropped.
func (e *Extractor) KeywordsSegmented(seg Segmenter, texts []string, max int) []Keyword {
	if seg == nil || len(texts) == 0 || max <= 0 {
		return nil
	}

	counts := make(map[string]int)
	pos := make(map[string]string)
	var order []string
	for _, text := range texts {
		if text == "" {
			continue
		}
		for _, m := range seg.Segment(text) {
			surface := strings.ToLower(m.Surface)
			if utf8.RuneCountInString(surface) <= 1 {
				continue
			}
			if e.deny.IsGarbage(surface) {
				continue
			}
			if counts[surface] == 0 {
				order = append(order, surface)
				if m.POS != "" {
					pos[surface] = m.POS
				}
			}
			counts[surface]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > max {
		order = order[:max]
	}

	result := make([]Keyword, len(order))
	for i, surface := range order {
		p := pos[surface]
		if p == "" {
			p = "Unknown"
		}
		result[i] = Keyword{Keyword: surface, Count: counts[surface], POS: p}
	}
	return result
}

// DocTopics returns the top n frequent tokens of a single clean document.
func (e *Extractor) DocTopics(text string, n int) []string {
	if text == "" || n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		if utf8.RuneCountInString(tok) <= 1 || e.deny.Denied(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// eligible applies the fallback token filter: longer than one rune, not
// denylisted, and digit-free.
func (e *Extractor) eligible(tok string) bool {
	if utf8.RuneCountInString(tok) <= 1 {
		return false
	}
	if e.deny.Denied(tok) {
		return false
	}
	for _, r := range tok {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
