package source

import (
	"context"
	"net/url"
	"strings"
)

// Dictionary looks up exact-spelling definitions from a Datamuse-style API.
type Dictionary struct {
	client  *Client
	baseURL string
}

// NewDictionary creates a dictionary source over the shared client.
func NewDictionary(client *Client, baseURL string) *Dictionary {
	return &Dictionary{
		client:  client,
		baseURL: baseURL,
	}
}

type dictionaryEntry struct {
	Word string   `json:"word"`
	Defs []string `json:"defs"`
}

// Lookup returns the definition strings for an exact-spelling match of term,
// or nil when the dictionary has no such word. Blank terms short-circuit to
// nil without a network call.
func (d *Dictionary) Lookup(ctx context.Context, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	u, err := queryURL(d.baseURL, url.Values{
		"sp":  {term},
		"max": {"1"},
		"md":  {"d"},
	})
	if err != nil {
		return nil
	}

	var entries []dictionaryEntry
	if !d.client.getJSON(ctx, "dictionary", u, &entries) {
		return nil
	}

	if len(entries) == 0 || !strings.EqualFold(entries[0].Word, term) {
		return nil
	}
	return entries[0].Defs
}
