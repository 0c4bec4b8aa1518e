package qa

import "strings"

// Source names the resolver that produced the question/answer shown for a slide.
type Source string

const (
	SourceNone            Source = ""
	SourceEdit            Source = "edit"
	SourceMapping         Source = "mapping"
	SourcePatternEngine   Source = "pattern-engine"
	SourceLegacy          Source = "legacy"
	SourceFilenameLiteral Source = "filename-literal"
	SourceFallback        Source = "fallback"
)

// Result is the output of every resolver. HasData implies a non-empty question and answer.
type Result struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	HasData  bool   `json:"hasData"`
	Country  string `json:"country,omitempty"`
	Category string `json:"category,omitempty"`
}

func NewResult(question, answer string) Result {
	q := strings.TrimSpace(question)
	a := strings.TrimSpace(answer)
	return Result{Question: q, Answer: a, HasData: q != "" && a != ""}
}

func (r Result) WithCategory(category string) Result {
	r.Category = category
	return r
}

func (r Result) WithCountry(country string) Result {
	r.Country = country
	return r
}
