package source

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"letterrush/internal/model"
)

// Encyclopedia looks up search candidates and page facts from a
// MediaWiki-style action API.
type Encyclopedia struct {
	client     *Client
	baseURL    string
	maxResults int
}

// NewEncyclopedia creates an encyclopedia source over the shared client.
func NewEncyclopedia(client *Client, baseURL string, maxResults int) *Encyclopedia {
	if maxResults <= 0 {
		maxResults = 5
	}
	return &Encyclopedia{
		client:     client,
		baseURL:    baseURL,
		maxResults: maxResults,
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
		} `json:"search"`
	} `json:"query"`
}

type pagesResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract    string `json:"extract"`
			Categories []struct {
				Title string `json:"title"`
			} `json:"categories"`
		} `json:"pages"`
	} `json:"query"`
}

// Search runs a full-text search and returns up to maxResults candidates.
// Blank queries short-circuit to nil without a network call.
func (e *Encyclopedia) Search(ctx context.Context, query string) []model.Candidate {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	u, err := queryURL(e.baseURL, url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {strconv.Itoa(e.maxResults)},
		"format":   {"json"},
	})
	if err != nil {
		return nil
	}

	var resp searchResponse
	if !e.client.getJSON(ctx, "encyclopedia-search", u, &resp) {
		return nil
	}

	candidates := make([]model.Candidate, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		candidates = append(candidates, model.Candidate{
			Title:   hit.Title,
			Snippet: hit.Snippet,
		})
	}
	return candidates
}

// PageFacts fetches the intro extract and category labels for a title. The
// two lookups are independent and run concurrently. Both are best-effort: a
// title that does not resolve yields empty facts.
func (e *Encyclopedia) PageFacts(ctx context.Context, title string) model.PageFacts {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.PageFacts{}
	}

	var facts model.PageFacts
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		facts.Extract = e.extract(ctx, title)
	}()
	go func() {
		defer wg.Done()
		facts.Categories = e.categories(ctx, title)
	}()
	wg.Wait()

	return facts
}

// extract returns the first intro sentences of the page, lowercased.
func (e *Encyclopedia) extract(ctx context.Context, title string) string {
	u, err := queryURL(e.baseURL, url.Values{
		"action":      {"query"},
		"titles":      {title},
		"prop":        {"extracts"},
		"exintro":     {"1"},
		"explaintext": {"1"},
		"exsentences": {"5"},
		"format":      {"json"},
	})
	if err != nil {
		return ""
	}

	var resp pagesResponse
	if !e.client.getJSON(ctx, "encyclopedia-extract", u, &resp) {
		return ""
	}

	for _, page := range resp.Query.Pages {
		if page.Extract != "" {
			return strings.ToLower(page.Extract)
		}
	}
	return ""
}

// categories returns the page's category labels, lowercased.
func (e *Encyclopedia) categories(ctx context.Context, title string) []string {
	u, err := queryURL(e.baseURL, url.Values{
		"action":  {"query"},
		"titles":  {title},
		"prop":    {"categories"},
		"cllimit": {"20"},
		"format":  {"json"},
	})
	if err != nil {
		return nil
	}

	var resp pagesResponse
	if !e.client.getJSON(ctx, "encyclopedia-categories", u, &resp) {
		return nil
	}

	var labels []string
	for _, page := range resp.Query.Pages {
		for _, c := range page.Categories {
			labels = append(labels, strings.ToLower(c.Title))
		}
	}
	return labels
}
