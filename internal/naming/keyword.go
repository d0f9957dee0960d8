package naming

import (
	"sort"
	"strings"
	"unicode"

	"github.com/feral-file/founder-scout/internal/domain"
	"github.com/feral-file/founder-scout/internal/heuristics"
)

const TOP_KEYWORDS = 3

// TopKeywords returns the most frequent non-stopword tokens of the members' domains and tags.
// Ties keep first-seen order.
func TopKeywords(tables *heuristics.Tables, members []Member, n int) []string {
	counts := make(map[string]int)
	var order []string
	add := func(text string) {
		for _, w := range strings.Fields(strings.ToLower(strings.ReplaceAll(text, "-", " "))) {
			if len([]rune(w)) <= 2 || tables.IsStopword(w) {
				continue
			}
			if _, seen := counts[w]; !seen {
				order = append(order, w)
			}
			counts[w]++
		}
	}
	for _, m := range members {
		add(m.Domain)
		for _, t := range m.Tags {
			add(t)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// KeywordName joins the top keywords in title case with " + ", or returns the fallback name
func KeywordName(keywords []string) string {
	if len(keywords) == 0 {
		return domain.FALLBACK_THEME_NAME
	}
	titled := make([]string, len(keywords))
	for i, k := range keywords {
		titled[i] = titleCase(k)
	}
	return strings.Join(titled, " + ")
}

func titleCase(word string) string {
	runes := []rune(word)
	upper := true
	for i, r := range runes {
		if upper {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
		upper = !unicode.IsLetter(r)
	}
	return string(runes)
}
