package patternengine

import (
	"regexp"
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

var (
	whatIsItRe      = regexp.MustCompile(`(?i)^what is it\s*[–-]\s*it is (?:an? )?(.+?)[.\s]*$`)
	whatAreTheyRe   = regexp.MustCompile(`(?i)^what are they\s*[–-]\s*they are (.+?)[.\s]*$`)
	colourAnswerRe  = regexp.MustCompile(`(?i)^what colou?r (is|are) the (.+?)\s*[–-]\s*(?:(?:it|they) (?:is|are) |the .+ (?:is|are) )?([a-z]+)[.\s]*$`)
	howManyAnswerRe = regexp.MustCompile(`(?i)^how many (.+?) (?:are|is) there\s*[–-]\s*(?:there (?:are|is) )?(\d{1,3})\b`)
	questionLeadRe  = regexp.MustCompile(`(?i)^(what|where|who|which|how|is|are|do|does|can|would|will)\b`)
)

// literal handles filenames that spell out both halves of the exchange.
func literal(in *input) (qa.Result, bool) {
	text := in.text
	if m := whatIsItRe.FindStringSubmatch(text); m != nil {
		obj := qa.Phrase(m[1])
		return qa.NewResult("What is it?", "It is "+qa.Article(obj)+" "+obj+"."), true
	}
	if m := whatAreTheyRe.FindStringSubmatch(text); m != nil {
		return qa.NewResult("What are they?", "They are "+qa.Phrase(m[1])+"."), true
	}
	if m := colourAnswerRe.FindStringSubmatch(text); m != nil {
		color := strings.ToLower(m[3])
		if !isColor(color) {
			return qa.Result{}, false
		}
		verb := strings.ToLower(m[1])
		obj := qa.Phrase(m[2])
		return qa.NewResult(
			"What color "+verb+" the "+obj+"?",
			"The "+obj+" "+verb+" "+color+".",
		), true
	}
	if m := howManyAnswerRe.FindStringSubmatch(text); m != nil {
		obj := qa.Phrase(m[1])
		return qa.NewResult("How many "+obj+" are there?", "There are "+m[2]+" "+obj+"."), true
	}
	if q, a, ok := qa.SplitDash(in.file); ok && questionLeadRe.MatchString(q) {
		return qa.NewResult(q, a), true
	}
	return qa.Result{}, false
}

func isColor(word string) bool {
	for _, c := range qa.Colors {
		if c == word {
			return true
		}
	}
	return false
}
