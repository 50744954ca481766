package vocab

import "testing"

func TestStopwordMembership(t *testing.T) {
	d := Default()

	for _, w := range []string{"the", "and", "그리고", "하지만", "있다", "는"} {
		if !d.IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"인공지능", "machine", "반도체"} {
		if d.IsStopword(w) {
			t.Errorf("IsStopword(%q) = true, want false", w)
		}
	}
}

func TestStopwordCaseInsensitive(t *testing.T) {
	d := Default()

	if !d.IsStopword("THE") {
		t.Error("stopword lookup should be case-insensitive")
	}
	if !d.IsGarbage("NBSP") {
		t.Error("garbage lookup should be case-insensitive")
	}
}

func TestGarbageMembership(t *testing.T) {
	d := Default()

	// Entries from each of the consolidated source lists.
	for _, w := range []string{"nbsp", "href", "www", "rss", "xml", "json", "api",
		"pubdate", "guid", "syndication", "oc", "ios", "android", "click", "monday"} {
		if !d.IsGarbage(w) {
			t.Errorf("IsGarbage(%q) = false, want true", w)
		}
	}
}

func TestFunctionWordsInBothTables(t *testing.T) {
	d := Default()

	// The substring gate scans only the garbage table, so the function
	// words it must reject as substrings are carried in both tables.
	for _, w := range []string{"in", "and", "or", "but", "so", "that",
		"this", "these", "those", "here", "there", "when", "where", "why", "how"} {
		if !d.IsGarbage(w) {
			t.Errorf("IsGarbage(%q) = false, want true", w)
		}
		if !d.IsStopword(w) {
			t.Errorf("IsStopword(%q) = false, want true", w)
		}
	}
}

func TestAIIsNotGarbage(t *testing.T) {
	d := Default()

	// "ai" must survive normalization; it is rejected only at the topic
	// quality gate.
	if d.IsGarbage("ai") {
		t.Error("'ai' must not be in the garbage table")
	}
	if d.IsStopword("ai") {
		t.Error("'ai' must not be a stopword")
	}
}

func TestContainsAnySubstring(t *testing.T) {
	d := Default()

	tests := []struct {
		s    string
		want bool
	}{
		{"nbsp", true},
		{"인공지능 nbsp", true},
		{"coin", true},    // contains "co"
		{"intel", true},   // contains "in"
		{"machine", true}, // contains "in"
		{"rss 관련", true},
		{"인공지능", false},
		{"기술이 발전하고", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.ContainsAny(tt.s); got != tt.want {
			t.Errorf("ContainsAny(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestMatchesWordWholeToken(t *testing.T) {
	d := Default()

	tests := []struct {
		s    string
		want bool
	}{
		{"rss", true},
		{"인공지능 rss", true},
		{"news 기술", true},
		// Whole-word semantics: containing a short garbage substring is
		// not enough.
		{"coin market", false},
		{"인공지능 기술", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := d.MatchesWord(tt.s); got != tt.want {
			t.Errorf("MatchesWord(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestNewWithExtras(t *testing.T) {
	d := New([]string{"커스텀"}, []string{"Widget"})

	if !d.IsStopword("커스텀") {
		t.Error("extra stopword not registered")
	}
	if !d.IsGarbage("widget") {
		t.Error("extra garbage token should be lowercased on registration")
	}
	if Default().IsGarbage("widget") {
		t.Error("extending a denylist must not touch the default tables")
	}
}

func TestTableSizes(t *testing.T) {
	d := Default()

	// Sanity floor: the denylist only works as a large explicit table.
	if d.StopwordCount() < 100 {
		t.Errorf("stopword table suspiciously small: %d", d.StopwordCount())
	}
	if d.GarbageCount() < 300 {
		t.Errorf("garbage table suspiciously small: %d", d.GarbageCount())
	}
}
