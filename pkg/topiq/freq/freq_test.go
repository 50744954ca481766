package freq

import (
	"reflect"
	"testing"
)

func TestTopTokensRanksByFrequency(t *testing.T) {
	e := NewExtractor(nil)

	corpus := []string{
		"반도체 수출 증가",
		"반도체 공장 증설",
		"반도체 기술 경쟁",
	}
	got := e.TopTokens(corpus, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3: %v", len(got), got)
	}
	if got[0] != "반도체" {
		t.Errorf("top token = %q, want %q", got[0], "반도체")
	}
}

func TestTopTokensTiesKeepFirstEncounteredOrder(t *testing.T) {
	e := NewExtractor(nil)

	corpus := []string{"알파 베타 감마"}
	got := e.TopTokens(corpus, 3)
	want := []string{"알파", "베타", "감마"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTokens = %v, want %v", got, want)
	}
}

func TestTopTokensFiltersNoise(t *testing.T) {
	e := NewExtractor(nil)

	corpus := []string{
		"nbsp href 반도체 the 있다",
		"반도체 123 gpt4 a b",
	}
	got := e.TopTokens(corpus, 10)
	want := []string{"반도체"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopTokens = %v, want %v", got, want)
	}
}

func TestTopTokensFinalRejectList(t *testing.T) {
	e := NewExtractor(nil)

	// "ai" passes the corpus filter (it is not garbage) but is rejected
	// from the final ranked list.
	corpus := []string{"ai ai ai 기술 기술 발전"}
	got := e.TopTokens(corpus, 3)
	for _, tok := range got {
		if tok == "ai" {
			t.Errorf("'ai' must not appear in ranked tokens: %v", got)
		}
	}
	if len(got) == 0 || got[0] != "기술" {
		t.Errorf("TopTokens = %v, want 기술 first", got)
	}
}

func TestTopTokensBounds(t *testing.T) {
	e := NewExtractor(nil)

	if got := e.TopTokens(nil, 5); got != nil {
		t.Errorf("empty corpus: got %v", got)
	}
	if got := e.TopTokens([]string{"반도체 수출"}, 0); got != nil {
		t.Errorf("k=0: got %v", got)
	}
	if got := e.TopTokens([]string{"반도체 수출 증가"}, 2); len(got) > 2 {
		t.Errorf("len = %d, want <= 2", len(got))
	}
	// Corpus with no surviving tokens.
	if got := e.TopTokens([]string{"nbsp href www", "a b c"}, 5); len(got) != 0 {
		t.Errorf("noise corpus: got %v", got)
	}
}

func TestKeywordsRecords(t *testing.T) {
	e := NewExtractor(nil)

	corpus := []string{"반도체 수출", "반도체 공장"}
	got := e.Keywords(corpus, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(got), got)
	}
	if got[0].Keyword != "반도체" || got[0].Count != 2 {
		t.Errorf("top keyword = %+v", got[0])
	}
	if got[0].POS != "Unknown" {
		t.Errorf("POS = %q, want Unknown", got[0].POS)
	}
}

type fakeSegmenter struct {
	morphemes map[string][]Morpheme
}

func (f *fakeSegmenter) Segment(text string) []Morpheme {
	return f.morphemes[text]
}

func TestKeywordsSegmented(t *testing.T) {
	e := NewExtractor(nil)

	seg := &fakeSegmenter{morphemes: map[string][]Morpheme{
		"doc1": {
			{Surface: "반도체", POS: "Noun"},
			{Surface: "수출", POS: "Noun"},
			{Surface: "nbsp", POS: "Noun"}, // garbage, dropped
			{Surface: "가", POS: "Josa"},   // single rune, dropped
		},
		"doc2": {
			{Surface: "반도체", POS: "Noun"},
		},
	}}

	got := e.KeywordsSegmented(seg, []string{"doc1", "doc2"}, 10)
	want := []Keyword{
		{Keyword: "반도체", Count: 2, POS: "Noun"},
		{Keyword: "수출", Count: 1, POS: "Noun"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeywordsSegmented = %v, want %v", got, want)
	}

	if got := e.KeywordsSegmented(nil, []string{"doc1"}, 10); got != nil {
		t.Errorf("nil segmenter: got %v", got)
	}
}

func TestDocTopics(t *testing.T) {
	e := NewExtractor(nil)

	got := e.DocTopics("반도체 반도체 수출 the nbsp", 2)
	want := []string{"반도체", "수출"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DocTopics = %v, want %v", got, want)
	}
	if got := e.DocTopics("", 3); got != nil {
		t.Errorf("empty text: got %v", got)
	}
}
