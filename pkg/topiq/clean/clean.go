// Package clean turns raw collected text (news titles, blog snippets and
// paper abstracts, often with embedded HTML) into the lowercase, space-joined
// token stream the topic extractor consumes.
package clean

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/trendlens/topiq/pkg/topiq/vocab"
)

var (
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	entityRe = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	urlRe    = regexp.MustCompile(`https?://\S+`)
	wwwRe    = regexp.MustCompile(`www\.\S+`)
	emailRe  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	symbolRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	spaceRe  = regexp.MustCompile(`\s+`)
	letterRe = regexp.MustCompile(`^[가-힣a-zA-Z]+$`)
)

// Thresholds for the over-filtering diagnostic: inputs longer than
// diagMinLength whose output shrinks below diagRatio trigger the hook.
const (
	diagMinLength = 100
	diagRatio     = 0.1
)

// Diagnostic is invoked when a long input loses almost all of its content
// during normalization. Advisory only; it never affects the output.
type Diagnostic func(original, cleaned string, ratio float64)

// Normalizer cleans raw text against a denylist.
type Normalizer struct {
	deny *vocab.Denylist
	diag Diagnostic
}

// NewNormalizer creates a normalizer over the given denylist.
// A nil denylist means the default tables.
func NewNormalizer(deny *vocab.Denylist) *Normalizer {
	if deny == nil {
		deny = vocab.Default()
	}
	return &Normalizer{deny: deny}
}

// SetDiagnostic installs the over-filtering hook.
func (n *Normalizer) SetDiagnostic(fn Diagnostic) {
	n.diag = fn
}

// NormalizeForTopics cleans text with the default tables.
func NormalizeForTopics(text string) string {
	return defaultNormalizer.Normalize(text)
}

var defaultNormalizer = NewNormalizer(nil)

// Normalize returns a lowercase, whitespace-joined sequence of clean tokens.
// It never fails; empty or all-noise input yields "".
//
// Steps, in fixed order: entity decode, tag strip, residual entity strip,
// URL/email strip, non-word symbol fold, whitespace collapse, lowercase
// split, per-token filtering. Digit handling happens at the token stage:
// any token containing a digit is dropped whole, so "코로나19" disappears
// rather than surviving as "코로나".
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	originalLen := len(text)

	s := html.UnescapeString(text)
	s = tagRe.ReplaceAllString(s, "")
	s = entityRe.ReplaceAllString(s, "")
	s = urlRe.ReplaceAllString(s, "")
	s = wwwRe.ReplaceAllString(s, "")
	s = emailRe.ReplaceAllString(s, "")
	s = symbolRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))

	var kept []string
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		if n.keep(tok) {
			kept = append(kept, tok)
		}
	}
	result := strings.Join(kept, " ")

	if n.diag != nil && originalLen > diagMinLength {
		ratio := float64(len(result)) / float64(originalLen)
		if ratio < diagRatio {
			n.diag(text, result, ratio)
		}
	}
	return result
}

// keep applies the token invariant: longer than one rune, no digits, not
// denylisted, Hangul or Latin letters only.
func (n *Normalizer) keep(tok string) bool {
	if utf8.RuneCountInString(tok) <= 1 {
		return false
	}
	if containsDigit(tok) {
		return false
	}
	if n.deny.IsStopword(tok) {
		return false
	}
	if n.deny.IsGarbage(tok) {
		return false
	}
	return letterRe.MatchString(tok)
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
