// Package validate decides whether submitted answers plausibly belong to
// their game categories. Each answer runs through a fixed sequence of
// evidence strategies against external sources, short-circuiting on the first
// success. The system only accumulates positive evidence: if no source
// surfaces support for an answer, the answer is rejected.
package validate

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"letterrush/internal/match"
	"letterrush/internal/model"
	"letterrush/internal/taxonomy"
)

// EncyclopediaSource provides search candidates and per-title page facts.
// Implementations absorb their own failures and return empty results.
type EncyclopediaSource interface {
	Search(ctx context.Context, query string) []model.Candidate
	PageFacts(ctx context.Context, title string) model.PageFacts
}

// DictionarySource provides exact-spelling definition lookups.
type DictionarySource interface {
	Lookup(ctx context.Context, term string) []string
}

// Adjudicator is an optional last-resort judge consulted only when every
// evidence strategy has failed and the validator was configured with one.
type Adjudicator interface {
	Judge(ctx context.Context, category, answer string) bool
}

// Validator orchestrates the per-answer strategy sequence and the batch
// fan-out. It holds no mutable state across answers; every check is a pure
// function of its inputs plus the read-only taxonomy tables.
type Validator struct {
	encyclopedia EncyclopediaSource
	dictionary   DictionarySource
	adjudicator  Adjudicator
	maxWorkers   int
	log          *zap.Logger
}

// Option configures optional validator behavior.
type Option func(*Validator)

// WithAdjudicator enables the model-based fallback strategy.
func WithAdjudicator(a Adjudicator) Option {
	return func(v *Validator) { v.adjudicator = a }
}

// WithLogger sets the logger used for per-strategy debug output.
func WithLogger(log *zap.Logger) Option {
	return func(v *Validator) { v.log = log }
}

// New creates a validator over the given sources. maxWorkers bounds how many
// answers of one batch are validated at the same time.
func New(enc EncyclopediaSource, dict DictionarySource, maxWorkers int, opts ...Option) *Validator {
	if maxWorkers <= 0 {
		maxWorkers = 8
	}

	v := &Validator{
		encyclopedia: enc,
		dictionary:   dict,
		maxWorkers:   maxWorkers,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check validates a single answer. Preconditions are checked before any
// network activity; after that, strategies run in order and the first success
// wins.
func (v *Validator) Check(ctx context.Context, req model.AnswerRequest) bool {
	answer := strings.TrimSpace(req.Answer)

	if answer == "" {
		return false
	}
	if !startsWithLetter(answer, req.Letter) {
		return false
	}
	if utf8.RuneCountInString(answer) < 2 {
		return false
	}

	if taxonomy.IsNameCategory(req.Category) && v.checkNamePages(ctx, answer, req.Category) {
		v.log.Debug("accepted via name page", zap.String("answer", answer))
		return true
	}

	if v.checkSearch(ctx, answer, answer, req.Category) {
		v.log.Debug("accepted via open search", zap.String("answer", answer))
		return true
	}

	for _, suffix := range taxonomy.SearchSuffixes(req.Category) {
		if v.checkSearch(ctx, answer+" "+suffix, answer, req.Category) {
			v.log.Debug("accepted via suffixed search",
				zap.String("answer", answer), zap.String("suffix", suffix))
			return true
		}
	}

	if v.checkDictionary(ctx, answer, req.Category) {
		v.log.Debug("accepted via dictionary", zap.String("answer", answer))
		return true
	}

	if v.adjudicator != nil && v.adjudicator.Judge(ctx, req.Category, answer) {
		v.log.Debug("accepted via adjudicator", zap.String("answer", answer))
		return true
	}

	return false
}

// checkNamePages tries the "(name)" and "(given name)" disambiguation pages
// directly. Only called for name categories.
func (v *Validator) checkNamePages(ctx context.Context, answer, category string) bool {
	for _, title := range []string{answer + " (name)", answer + " (given name)"} {
		if v.checkPage(ctx, title, category) {
			return true
		}
	}
	return false
}

// checkSearch runs one encyclopedia search and evaluates every candidate
// whose title matches the answer, in result order. For each such candidate
// the stripped snippet is tested first (no extra I/O); only if that fails are
// the full page facts fetched and re-tested.
func (v *Validator) checkSearch(ctx context.Context, query, answer, category string) bool {
	for _, candidate := range v.encyclopedia.Search(ctx, query) {
		if !match.Title(candidate.Title, answer) {
			continue
		}

		snippet := match.StripMarkup(candidate.Snippet)
		if match.Category(snippet, nil, category) {
			return true
		}

		if v.checkPage(ctx, candidate.Title, category) {
			return true
		}
	}
	return false
}

// checkPage fetches page facts for a title and tests them against the
// category keywords.
func (v *Validator) checkPage(ctx context.Context, title, category string) bool {
	facts := v.encyclopedia.PageFacts(ctx, title)
	if facts.Empty() {
		return false
	}
	return match.Category(facts.Extract, facts.Categories, category)
}

// checkDictionary applies the dictionary fallback. Only everyday-noun
// categories are eligible; a dictionary is the wrong source for named places,
// people, and titled works.
func (v *Validator) checkDictionary(ctx context.Context, answer, category string) bool {
	if !taxonomy.AllowsDictionary(category) {
		return false
	}

	defs := v.dictionary.Lookup(ctx, answer)
	if len(defs) == 0 {
		return false
	}
	return match.Category(strings.Join(defs, " "), nil, category)
}

// startsWithLetter reports whether the answer's first rune equals the
// assigned letter, case-insensitively. An empty or multi-rune letter field
// compares against its first rune.
func startsWithLetter(answer, letter string) bool {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return false
	}

	first, _ := utf8.DecodeRuneInString(answer)
	want, _ := utf8.DecodeRuneInString(letter)
	return unicode.ToUpper(first) == unicode.ToUpper(want)
}
