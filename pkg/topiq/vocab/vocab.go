// Package vocab holds the static vocabulary tables used by the cleaning and
// extraction stages: general stopwords (Korean + English function words) and
// garbage tokens (markup, web-platform and filler vocabulary that leaks out
// of HTML/RSS sources).
//
// The tables are built once at process start and never mutated. A Denylist
// offers the two filter semantics the extractor needs: whole-token membership
// and substring containment.
package vocab

import "strings"

// stopwords are closed-class and functional words, Korean and English.
var stopwords = []string{
	// Korean demonstratives, counters, units
	"그", "이", "저", "것", "때", "곳", "일", "번", "가지", "개", "년", "월", "시", "분", "초",
	"하나", "둘", "셋", "네", "다섯", "여섯", "일곱", "여덟", "아홉", "열",
	"그것", "이것", "저것", "여기", "저기", "거기", "이곳", "저곳",
	// Korean pronouns
	"나", "너", "우리", "그들", "당신", "자신",
	// Korean particles
	"는", "은", "가", "을", "를", "에", "의", "로", "와", "과", "도", "만", "부터", "까지",
	// Korean copulas and common predicates
	"하다", "되다", "있다", "없다", "같다", "다르다", "많다", "적다",
	"크다", "작다", "좋다", "나쁘다", "새로", "오래",
	// Korean conjunctions
	"또", "그리고", "그러나", "하지만", "그래서", "따라서", "그런데", "그러면",
	// Korean degree/frequency adverbs
	"매우", "너무", "정말", "진짜", "아주", "꽤", "상당히", "조금", "약간",
	"항상", "가끔", "자주", "때때로", "언제나", "절대", "결코",
	// Korean quantifiers
	"모든", "각", "어떤", "전체", "일부", "대부분",
	// English function words
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must", "can", "shall",
	"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
	"this", "that", "these", "those", "here", "there", "where", "when", "why", "how",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
	"not", "only", "own", "same", "so", "than", "too", "very", "just", "now",
}

// garbage is the canonical web-noise denylist. It consolidates the three
// overlapping lists the upstream sources accumulated (HTML/markup vocabulary,
// the normalizer's forbidden patterns, and the final-validation forbidden
// tokens) into one table. "ai" is deliberately absent: it survives
// normalization and is rejected only at the topic quality gate.
var garbage = []string{
	// HTML entities, tags, attributes
	"nbsp", "quot", "amp", "lt", "gt", "font", "href", "br", "span", "div", "class", "id", "style",
	"script", "css", "js", "jquery", "ajax", "json", "xml", "html", "htm", "php", "asp", "jsp",
	// URL and domain fragments
	"http", "https", "www", "com", "net", "org", "co", "kr", "link", "url", "src", "img",
	// Search engines and platforms
	"google", "news", "naver", "daum", "yahoo", "bing", "search", "youtube", "facebook", "twitter",
	"instagram", "linkedin", "github", "stackoverflow", "reddit", "quora",
	// Web UI chrome
	"click", "view", "more", "read", "see", "show", "hide", "open", "close", "button", "menu",
	"nav", "navigation", "header", "footer", "sidebar", "top", "bottom", "left", "right", "center",
	"middle", "first", "last", "prev", "next", "previous", "back", "forward", "up", "down",
	// Generic content words
	"page", "site", "web", "blog", "post", "article", "content", "text", "data", "info",
	"ad", "ads", "advertisement", "banner", "popup", "modal", "dialog", "window", "tab",
	// Legal boilerplate
	"copyright", "reserved", "rights", "terms", "privacy", "policy", "cookie", "gdpr",
	// Site navigation pages
	"home", "about", "contact", "help", "faq", "support", "login", "register", "signup",
	"signin", "logout", "profile", "account", "settings", "preferences", "options",
	// Calendar words
	"today", "yesterday", "tomorrow", "week", "month", "year", "time", "date", "day",
	"am", "pm", "morning", "afternoon", "evening", "night", "hour", "minute", "second",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
	// Tech boilerplate
	"api", "sdk", "framework", "library", "module", "package", "version", "update",
	"download", "install", "setup", "config", "configuration", "setting", "option",
	// Generic web terms
	"online", "offline", "internet", "website", "webpage", "browser", "chrome",
	"firefox", "safari", "edge", "mobile", "desktop", "tablet", "phone", "device",
	// Media terms
	"media", "press", "journal", "magazine", "newspaper", "tv", "radio", "podcast",
	"video", "audio", "image", "photo", "picture", "graphic", "chart", "graph",
	// Social media
	"social", "share", "like", "comment", "reply", "follow", "unfollow", "subscribe",
	"unsubscribe", "notification", "alert", "message", "chat", "forum", "community",
	// Email
	"email", "mail", "send", "receive", "inbox", "outbox", "spam", "trash", "draft",
	// File operations
	"file", "folder", "directory", "upload", "save", "delete", "copy",
	"paste", "cut", "edit", "create", "new", "old", "recent", "latest", "updated",
	// State words
	"active", "inactive", "enabled", "disabled", "on", "off", "yes", "no", "true",
	"false", "success", "error", "warning", "debug", "test", "demo",
	// Size words
	"size", "small", "medium", "large", "big", "tiny", "huge", "massive", "mini",
	"micro", "macro", "full", "empty", "half", "quarter", "double", "triple",
	// Color words
	"color", "colour", "red", "green", "blue", "yellow", "orange", "purple", "pink",
	"black", "white", "gray", "grey", "brown", "dark", "light", "bright", "dim",
	// Location words
	"location", "place", "position", "area", "region", "country", "city", "state",
	"address", "street", "road", "avenue", "boulevard", "lane", "drive", "way",
	// Directions
	"north", "south", "east", "west", "northeast", "northwest", "southeast", "southwest",
	"front", "side", "corner",
	// Number words
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"hundred", "thousand", "million", "billion", "trillion",
	"third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth", "final",
	// Common affixes that appear as standalone junk after splitting
	"pre", "anti", "pro", "non", "un", "re", "over", "under", "out",
	"auto", "self", "super", "ultra", "mega",
	// Misc connective filler
	"etc", "etcetera", "if", "then", "else", "what", "who", "which",
	"everywhere", "nowhere", "somewhere", "anywhere",
	// RSS/feed vocabulary (formerly the separate forbidden-token lists)
	"rss", "articles", "target", "oc", "feed", "atom", "syndication", "channel", "item",
	"description", "pubdate", "guid", "category", "enclosure",
	// Function words that also live in the stopword table. The substring
	// gate scans only the garbage table, so they must appear here too.
	"in", "and", "or", "but", "so", "that", "this", "these", "those",
	"here", "there", "when", "where", "why", "how",
	// Operating systems (UA-string noise)
	"ios", "android", "windows", "mac", "linux",
}

// Denylist pairs the stopword and garbage tables and implements the two
// filter semantics: exact token membership and substring containment.
// All entries are lowercase; lookups lowercase their input.
type Denylist struct {
	stop       map[string]struct{}
	garbage    map[string]struct{}
	garbageSeq []string // deduplicated, for substring scans
}

var defaultDenylist = New(nil, nil)

// Default returns the process-wide denylist built from the static tables.
func Default() *Denylist {
	return defaultDenylist
}

// New builds a denylist from the static tables plus optional extra entries.
func New(extraStopwords, extraGarbage []string) *Denylist {
	d := &Denylist{
		stop:    make(map[string]struct{}, len(stopwords)+len(extraStopwords)),
		garbage: make(map[string]struct{}, len(garbage)+len(extraGarbage)),
	}
	for _, w := range stopwords {
		d.stop[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range extraStopwords {
		if w != "" {
			d.stop[strings.ToLower(w)] = struct{}{}
		}
	}
	add := func(w string) {
		w = strings.ToLower(w)
		if w == "" {
			return
		}
		if _, ok := d.garbage[w]; ok {
			return
		}
		d.garbage[w] = struct{}{}
		d.garbageSeq = append(d.garbageSeq, w)
	}
	for _, w := range garbage {
		add(w)
	}
	for _, w := range extraGarbage {
		add(w)
	}
	return d
}

// IsStopword reports whether token is a stopword.
func (d *Denylist) IsStopword(token string) bool {
	_, ok := d.stop[strings.ToLower(token)]
	return ok
}

// IsGarbage reports whether token is exactly a garbage token.
func (d *Denylist) IsGarbage(token string) bool {
	_, ok := d.garbage[strings.ToLower(token)]
	return ok
}

// Denied reports whether token is in either table.
func (d *Denylist) Denied(token string) bool {
	return d.IsStopword(token) || d.IsGarbage(token)
}

// ContainsAny reports whether any garbage token occurs anywhere inside s as
// a substring. This is intentionally aggressive: short entries such as "on"
// or "in" reject English compounds that merely contain them, which matches
// the upstream filtering behavior this table was built for.
func (d *Denylist) ContainsAny(s string) bool {
	s = strings.ToLower(s)
	for _, g := range d.garbageSeq {
		if strings.Contains(s, g) {
			return true
		}
	}
	return false
}

// MatchesWord splits s on whitespace and reports whether any individual word
// is exactly a garbage token. Bigrams need this instead of ContainsAny so a
// legitimate pair is not rejected for sharing a short substring with the
// table.
func (d *Denylist) MatchesWord(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if _, ok := d.garbage[w]; ok {
			return true
		}
	}
	return false
}

// StopwordCount and GarbageCount report table sizes.
func (d *Denylist) StopwordCount() int { return len(d.stop) }
func (d *Denylist) GarbageCount() int  { return len(d.garbageSeq) }
