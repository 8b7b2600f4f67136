package match

import (
	"strings"

	"golang.org/x/net/html"
)

// StripMarkup removes HTML markup from a search snippet, keeping only the
// text content. Search APIs highlight hits with spans like
// `<span class="searchmatch">Paris</span>`; the matcher wants plain text.
// Unparsable input falls back to the raw string.
func StripMarkup(snippet string) string {
	if !strings.ContainsRune(snippet, '<') {
		return snippet
	}

	doc, err := html.Parse(strings.NewReader(snippet))
	if err != nil {
		return snippet
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return b.String()
}
