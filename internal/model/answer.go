package model

// AnswerRequest is one submitted answer to validate: the player's free text,
// the game category it was entered under, and the round's assigned letter.
type AnswerRequest struct {
	Category string `json:"category"`
	Answer   string `json:"answer"`
	Letter   string `json:"letter"`
}

// AnswerVerdict is the accept/reject decision for one answer. Verdicts are
// returned in the same positional order as the requests that produced them.
type AnswerVerdict struct {
	Category string `json:"category"`
	Answer   string `json:"answer"`
	Valid    bool   `json:"valid"`
}

// Candidate is a single encyclopedia search hit. The snippet may carry search
// highlighting markup and must be stripped before text matching.
type Candidate struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// PageFacts holds the descriptive text fetched for one candidate title: the
// intro extract and the category labels attached to the page, both lowercased.
// Either or both may be empty when the title does not resolve.
type PageFacts struct {
	Extract    string   `json:"extract"`
	Categories []string `json:"categories"`
}

// Empty reports whether the fetch produced no usable evidence.
func (f PageFacts) Empty() bool {
	return f.Extract == "" && len(f.Categories) == 0
}
