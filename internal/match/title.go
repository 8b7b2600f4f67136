// Package match holds the text heuristics that decide whether search results
// support an answer: title identity matching, keyword-based category matching,
// and snippet markup stripping.
package match

import "strings"

// Title reports whether a search-result title plausibly denotes the same
// entity as the player's term. Case-insensitive. Deliberately permissive:
// false positives are tolerated because the category check still gates
// acceptance downstream.
//
// Accepted shapes, for term "paris":
//   - "Paris"                  exact
//   - "Paris (name)"           name disambiguation
//   - "Paris, France"          comma qualifier
//   - "Paris Saint-Germain"    trailing modifier after a space
//   - "Paris(disambiguation)"  parenthetical glued to the term
//   - "Judgement of (paris)"   term as a parenthetical anywhere
func Title(candidateTitle, term string) bool {
	t := strings.ToLower(candidateTitle)
	s := strings.ToLower(term)
	if s == "" {
		return false
	}

	return t == s ||
		t == s+" (name)" ||
		t == s+" (given name)" ||
		strings.HasPrefix(t, s+" ") ||
		strings.HasPrefix(t, s+",") ||
		strings.HasPrefix(t, s+"(") ||
		strings.Contains(t, "("+s+")")
}
