package validate

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"letterrush/internal/model"
)

// fakeEncyclopedia serves canned search results and page facts keyed by the
// exact query/title, counting calls so tests can assert I/O behavior.
type fakeEncyclopedia struct {
	searches    map[string][]model.Candidate
	facts       map[string]model.PageFacts
	delays      map[string]time.Duration
	searchCalls atomic.Int32
	factsCalls  atomic.Int32
}

func (f *fakeEncyclopedia) Search(ctx context.Context, query string) []model.Candidate {
	f.searchCalls.Add(1)
	if d, ok := f.delays[query]; ok {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(d):
		}
	}
	return f.searches[query]
}

func (f *fakeEncyclopedia) PageFacts(ctx context.Context, title string) model.PageFacts {
	f.factsCalls.Add(1)
	return f.facts[title]
}

type fakeDictionary struct {
	defs  map[string][]string
	calls atomic.Int32
}

func (f *fakeDictionary) Lookup(ctx context.Context, term string) []string {
	f.calls.Add(1)
	return f.defs[term]
}

type fakeAdjudicator struct {
	verdict bool
	calls   atomic.Int32
}

func (f *fakeAdjudicator) Judge(ctx context.Context, category, answer string) bool {
	f.calls.Add(1)
	return f.verdict
}

func emptySources() (*fakeEncyclopedia, *fakeDictionary) {
	return &fakeEncyclopedia{}, &fakeDictionary{}
}

func TestCheck_Preconditions(t *testing.T) {
	tests := []struct {
		desc   string
		answer string
		letter string
	}{
		{"empty answer", "", "F"},
		{"whitespace answer", "   ", "F"},
		{"wrong letter", "Paris", "F"},
		{"single character", "F", "F"},
		{"single character after trim", " f ", "F"},
		{"empty letter", "France", ""},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			// Sources that would accept anything: a precondition failure must
			// reject before any lookup happens.
			enc := &fakeEncyclopedia{
				searches: map[string][]model.Candidate{
					tt.answer: {{Title: tt.answer, Snippet: "a country"}},
				},
			}
			dict := &fakeDictionary{}
			v := New(enc, dict, 4)

			req := model.AnswerRequest{Category: "Country", Answer: tt.answer, Letter: tt.letter}
			if v.Check(context.Background(), req) {
				t.Error("Expected precondition failure to reject")
			}
			if enc.searchCalls.Load() != 0 || enc.factsCalls.Load() != 0 || dict.calls.Load() != 0 {
				t.Error("Expected no source calls on precondition failure")
			}
		})
	}
}

func TestCheck_LetterMatchIsCaseInsensitive(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"france": {{Title: "France", Snippet: "a country in Europe"}},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Country", Answer: "france", Letter: "F"}
	if !v.Check(context.Background(), req) {
		t.Error("Expected lowercase answer to pass an uppercase letter check")
	}
}

func TestCheck_SnippetAloneSuffices(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"France": {{Title: "France", Snippet: `<span class="searchmatch">France</span> is a country`}},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Country", Answer: "France", Letter: "F"}
	if !v.Check(context.Background(), req) {
		t.Fatal("Expected snippet keyword hit to validate")
	}
	if enc.factsCalls.Load() != 0 {
		t.Errorf("Expected no page-facts fetch when the snippet matches, got %d", enc.factsCalls.Load())
	}
}

func TestCheck_FallsBackToPageFacts(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"France": {{Title: "France", Snippet: "no useful words here"}},
		},
		facts: map[string]model.PageFacts{
			"France": {Extract: "france is a sovereign republic in western europe"},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Country", Answer: "France", Letter: "F"}
	if !v.Check(context.Background(), req) {
		t.Fatal("Expected page extract to validate")
	}
	if enc.factsCalls.Load() == 0 {
		t.Error("Expected a page-facts fetch after the snippet check failed")
	}
}

func TestCheck_PageCategoriesAloneSuffice(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"Lynx": {{Title: "Lynx", Snippet: "irrelevant snippet"}},
		},
		facts: map[string]model.PageFacts{
			"Lynx": {Categories: []string{"category:mammals of eurasia"}},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Animal", Answer: "Lynx", Letter: "L"}
	if !v.Check(context.Background(), req) {
		t.Error("Expected page category labels to validate")
	}
}

func TestCheck_SkipsNonMatchingTitles(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"Paris": {{Title: "Parisian culture", Snippet: "a city of art"}},
		},
		facts: map[string]model.PageFacts{
			"Parisian culture": {Extract: "the culture of the city of paris"},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Town", Answer: "Paris", Letter: "P"}
	if v.Check(context.Background(), req) {
		t.Error("Expected non-matching title to be skipped")
	}
	if enc.factsCalls.Load() != 0 {
		t.Error("Expected no page-facts fetch for a skipped candidate")
	}
}

func TestCheck_EvaluatesAllMatchingCandidates(t *testing.T) {
	// The first title-matching candidate fails both checks; a later one must
	// still be evaluated.
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"Mercury": {
				{Title: "Mercury (planet)", Snippet: "the smallest planet"},
				{Title: "Mercury (element)", Snippet: "a chemical element and heavy metal"},
			},
		},
		facts: map[string]model.PageFacts{
			"Mercury (planet)": {Extract: "the smallest planet in the solar system"},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Scientific Term", Answer: "Mercury", Letter: "M"}
	if !v.Check(context.Background(), req) {
		t.Error("Expected a later matching candidate to validate")
	}
}

func TestCheck_NameCategoryDirectPage(t *testing.T) {
	enc := &fakeEncyclopedia{
		facts: map[string]model.PageFacts{
			"Wilma (name)": {Extract: "wilma is a feminine given name"},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Girl's Name", Answer: "Wilma", Letter: "W"}
	if !v.Check(context.Background(), req) {
		t.Fatal("Expected direct name page to validate")
	}
	if enc.searchCalls.Load() != 0 {
		t.Errorf("Expected no search after direct page hit, got %d calls", enc.searchCalls.Load())
	}
}

func TestCheck_NameCategoryGivenNamePage(t *testing.T) {
	enc := &fakeEncyclopedia{
		facts: map[string]model.PageFacts{
			"Boris (given name)": {Extract: "boris is a masculine given name of slavic origin"},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Boy's Name", Answer: "Boris", Letter: "B"}
	if !v.Check(context.Background(), req) {
		t.Error("Expected (given name) page to validate")
	}
}

func TestCheck_NamePagesSkippedForOtherCategories(t *testing.T) {
	enc := &fakeEncyclopedia{
		facts: map[string]model.PageFacts{
			"Fork (name)": {Extract: "a feminine given name"},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Food/Dish", Answer: "Fork", Letter: "F"}
	if v.Check(context.Background(), req) {
		t.Error("Expected name-page strategy not to run for non-name categories")
	}
}

func TestCheck_SuffixedSearch(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			// Open search surfaces nothing usable; the configured "film"
			// suffix finds the right article.
			"Heat":      {{Title: "Heat transfer", Snippet: "thermal energy in physics"}},
			"Heat film": {{Title: "Heat (1995 film)", Snippet: "a crime film directed by Michael Mann"}},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Movie", Answer: "Heat", Letter: "H"}
	if !v.Check(context.Background(), req) {
		t.Error("Expected suffixed search to validate")
	}
}

func TestCheck_SuffixFallsBackToCategoryName(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"Gouda Brand": {{Title: "Gouda Foods", Snippet: "a multinational food company"}},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	// Brand has no configured suffixes; the category name itself is used.
	req := model.AnswerRequest{Category: "Brand", Answer: "Gouda", Letter: "G"}
	if !v.Check(context.Background(), req) {
		t.Error("Expected category-name suffix search to validate")
	}
}

func TestCheck_DictionaryFallback(t *testing.T) {
	enc, _ := emptySources()
	dict := &fakeDictionary{
		defs: map[string][]string{
			"Bread": {"n\ta staple food made from flour"},
		},
	}
	v := New(enc, dict, 4)

	req := model.AnswerRequest{Category: "Food/Dish", Answer: "Bread", Letter: "B"}
	if !v.Check(context.Background(), req) {
		t.Fatal("Expected dictionary fallback to validate")
	}
	if dict.calls.Load() != 1 {
		t.Errorf("Expected exactly one dictionary lookup, got %d", dict.calls.Load())
	}
}

func TestCheck_DictionaryDisallowedCategory(t *testing.T) {
	enc, _ := emptySources()
	dict := &fakeDictionary{
		defs: map[string][]string{
			"Chad": {"n\ta country in central africa"},
		},
	}
	v := New(enc, dict, 4)

	// Country is not in the dictionary allow-list; the definition would have
	// matched, but the source must not even be consulted.
	req := model.AnswerRequest{Category: "Country", Answer: "Chad", Letter: "C"}
	if v.Check(context.Background(), req) {
		t.Error("Expected dictionary fallback to be skipped for Country")
	}
	if dict.calls.Load() != 0 {
		t.Errorf("Expected no dictionary lookup for disallowed category, got %d", dict.calls.Load())
	}
}

func TestCheck_DictionaryDefinitionMustMatchCategory(t *testing.T) {
	enc, _ := emptySources()
	dict := &fakeDictionary{
		defs: map[string][]string{
			"Blue": {"adj\tof the color of the clear sky"},
		},
	}
	v := New(enc, dict, 4)

	req := model.AnswerRequest{Category: "Animal", Answer: "Blue", Letter: "B"}
	if v.Check(context.Background(), req) {
		t.Error("Expected unrelated definition not to validate")
	}
}

func TestCheck_NoEvidenceMeansInvalid(t *testing.T) {
	enc, dict := emptySources()
	v := New(enc, dict, 4)

	req := model.AnswerRequest{Category: "Animal", Answer: "Xyzzyx", Letter: "X"}
	if v.Check(context.Background(), req) {
		t.Error("Expected closed-world rejection when no source has evidence")
	}
}

func TestCheck_Idempotent(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"France": {{Title: "France", Snippet: "a country in Europe"}},
		},
	}
	v := New(enc, &fakeDictionary{}, 4)

	req := model.AnswerRequest{Category: "Country", Answer: "France", Letter: "F"}
	first := v.Check(context.Background(), req)
	second := v.Check(context.Background(), req)

	if first != second {
		t.Errorf("Expected identical verdicts for identical inputs, got %v then %v", first, second)
	}
}

func TestCheck_AdjudicatorIsLastResort(t *testing.T) {
	enc, dict := emptySources()
	adj := &fakeAdjudicator{verdict: true}
	v := New(enc, dict, 4, WithAdjudicator(adj))

	req := model.AnswerRequest{Category: "Animal", Answer: "Quokka", Letter: "Q"}
	if !v.Check(context.Background(), req) {
		t.Error("Expected adjudicator acceptance when all sources are empty")
	}
	if adj.calls.Load() != 1 {
		t.Errorf("Expected 1 adjudicator call, got %d", adj.calls.Load())
	}
}

func TestCheck_AdjudicatorNotConsultedAfterSuccess(t *testing.T) {
	enc := &fakeEncyclopedia{
		searches: map[string][]model.Candidate{
			"France": {{Title: "France", Snippet: "a country in Europe"}},
		},
	}
	adj := &fakeAdjudicator{verdict: false}
	v := New(enc, &fakeDictionary{}, 4, WithAdjudicator(adj))

	req := model.AnswerRequest{Category: "Country", Answer: "France", Letter: "F"}
	if !v.Check(context.Background(), req) {
		t.Fatal("Expected search evidence to validate")
	}
	if adj.calls.Load() != 0 {
		t.Errorf("Expected no adjudicator call after earlier success, got %d", adj.calls.Load())
	}
}
