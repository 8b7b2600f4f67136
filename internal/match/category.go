package match

import (
	"strings"

	"letterrush/internal/taxonomy"
)

// Category reports whether descriptive text plus page category labels satisfy
// the keyword set of a game category. The whole semantic model is literal
// substring containment over a lowercase haystack: no stemming, no
// tokenization. Incidental collisions ("cats" contains "cat") are an accepted
// trade-off.
//
// A category with no entry in the taxonomy can never be validated. That is
// intentional: validation degrades to rejection, not to anything-goes.
func Category(text string, labels []string, category string) bool {
	kws := taxonomy.Keywords(category)
	if len(kws) == 0 {
		return false
	}

	var b strings.Builder
	b.WriteString(text)
	for _, l := range labels {
		b.WriteByte(' ')
		b.WriteString(l)
	}
	haystack := strings.ToLower(b.String())

	for _, kw := range kws {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
