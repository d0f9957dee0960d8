package heuristics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsKeyword reports whether keyword occurs in text as a whole word or phrase.
// Matching is case-insensitive; "yc" matches "YC W26" but not "bicycle".
func ContainsKeyword(text, keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return false
	}
	text = strings.ToLower(text)

	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], keyword)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(keyword)
		if boundaryBefore(text, start, keyword) && boundaryAfter(text, end, keyword) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

// CountHits counts the keywords present in text, each at most once
func CountHits(text string, keywords []string) int {
	hits := 0
	for _, k := range keywords {
		if ContainsKeyword(text, k) {
			hits++
		}
	}
	return hits
}

// AnyHit reports whether at least one keyword is present in text
func AnyHit(text string, keywords []string) bool {
	for _, k := range keywords {
		if ContainsKeyword(text, k) {
			return true
		}
	}
	return false
}

// Keywords ending or starting in punctuation (e.g. "ex-") already carry their own boundary
func boundaryBefore(text string, start int, keyword string) bool {
	first, _ := utf8.DecodeRuneInString(keyword)
	if !isWordRune(first) || start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(prev)
}

func boundaryAfter(text string, end int, keyword string) bool {
	last, _ := utf8.DecodeLastRuneInString(keyword)
	if !isWordRune(last) || end >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
