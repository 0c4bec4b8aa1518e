package patternengine

import (
	"regexp"
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

type object struct {
	singular string
	plural   string
	pairOnly bool // always plural ("scissors")
}

// Multi-word nouns come before the nouns they contain.
var objects = []object{
	{singular: "pencil case", plural: "pencil cases"},
	{singular: "school bag", plural: "school bags"},
	{singular: "scissors", plural: "scissors", pairOnly: true},
	{singular: "sharpener", plural: "sharpeners"},
	{singular: "ruler", plural: "rulers"},
	{singular: "eraser", plural: "erasers"},
	{singular: "rubber", plural: "rubbers"},
	{singular: "notebook", plural: "notebooks"},
	{singular: "crayon", plural: "crayons"},
	{singular: "pencil", plural: "pencils"},
	{singular: "pen", plural: "pens"},
	{singular: "backpack", plural: "backpacks"},
	{singular: "book", plural: "books"},
	{singular: "bag", plural: "bags"},
}

var (
	eitherOrItRe   = regexp.MustCompile(`(?i)\bis it (?:an? |s )?([a-z']+) or (?:an? )?([a-z']+) (.+?)$`)
	eitherOrTheyRe = regexp.MustCompile(`(?i)\bare (?:they|the) ([a-z']+) or ([a-z']+) (.+?)$`)
	colourAskRe    = regexp.MustCompile(`(?i)\bwhat colou?r (is|are) the (.+?)$`)
	howManyRe      = regexp.MustCompile(`(?i)\bhow many (.+?)(?: are there| is there)?$`)
	doYouHaveRe    = regexp.MustCompile(`(?i)\bdo you have (.+?)(?:\s+\d+)?$`)
	doYouLikeRe    = regexp.MustCompile(`(?i)\bdo you like (this|these) (.+?)$`)
	whichDoLikeRe  = regexp.MustCompile(`(?i)\bwhat (.+?) do you like$`)
	trailingDigits = regexp.MustCompile(`[\s.]*\d*[\s.]*$`)
)

// findObject returns the first object noun in text.
func findObject(text string) (object, bool) {
	for _, o := range objects {
		if qa.ContainsWord(text, o.plural) || qa.ContainsWord(text, o.singular) {
			return o, true
		}
	}
	return object{}, false
}

func endsWithObject(s string) (object, bool) {
	ls := strings.ToLower(strings.TrimSpace(s))
	for _, o := range objects {
		if strings.HasSuffix(ls, o.plural) || strings.HasSuffix(ls, o.singular) {
			return o, true
		}
	}
	return object{}, false
}

// keyword combines an object noun with a question cue.
func keyword(in *input) (qa.Result, bool) {
	if _, ok := findObject(in.lower); !ok {
		return qa.Result{}, false
	}
	text := strings.TrimSpace(trailingDigits.ReplaceAllString(in.text, ""))
	if text == "" {
		return qa.Result{}, false
	}

	if m := eitherOrItRe.FindStringSubmatch(text); m != nil {
		if _, ok := endsWithObject(m[3]); ok {
			a, b, noun := qa.Phrase(m[1]), qa.Phrase(m[2]), qa.Phrase(m[3])
			return qa.NewResult(
				"Is it "+qa.Article(a)+" "+a+" or "+b+" "+noun+"?",
				"It is "+qa.Article(a)+" "+a+" "+noun+". / It is "+qa.Article(b)+" "+b+" "+noun+".",
			), true
		}
	}
	if m := eitherOrTheyRe.FindStringSubmatch(text); m != nil {
		if _, ok := endsWithObject(m[3]); ok {
			a, b, noun := qa.Phrase(m[1]), qa.Phrase(m[2]), qa.Phrase(m[3])
			return qa.NewResult(
				"Are they "+a+" or "+b+" "+noun+"?",
				"They are "+a+" "+noun+". / They are "+b+" "+noun+".",
			), true
		}
	}
	if m := colourAskRe.FindStringSubmatch(text); m != nil {
		color, ok := qa.FindColor(in.lower)
		if !ok {
			return qa.Result{}, false
		}
		verb, noun := strings.ToLower(m[1]), qa.Phrase(m[2])
		return qa.NewResult("What color "+verb+" the "+noun+"?", "The "+noun+" "+verb+" "+color+"."), true
	}
	if m := howManyRe.FindStringSubmatch(in.text); m != nil {
		n, ok := qa.FindNumber(in.text)
		o, found := findObject(m[1])
		if !ok || !found {
			return qa.Result{}, false
		}
		return qa.NewResult("How many "+o.plural+" are there?", "There are "+n+" "+o.plural+"."), true
	}
	if m := doYouHaveRe.FindStringSubmatch(text); m != nil {
		thing := qa.Phrase(m[1])
		mine := strings.ReplaceAll(" "+thing+" ", " your ", " my ")
		mine = strings.TrimSpace(mine)
		return qa.NewResult(
			"Do you have "+thing+"?",
			"Yes, I have "+mine+". / No, I don't have "+mine+".",
		), true
	}
	if m := doYouLikeRe.FindStringSubmatch(text); m != nil {
		det, noun := strings.ToLower(m[1]), qa.Phrase(m[2])
		return qa.NewResult(
			"Do you like "+det+" "+noun+"?",
			"Yes, I like "+det+" "+noun+". / No, I don't like "+det+" "+noun+".",
		), true
	}
	if m := whichDoLikeRe.FindStringSubmatch(text); m != nil {
		noun := qa.Phrase(m[1])
		if _, ok := endsWithObject(noun); ok {
			return qa.NewResult("What "+noun+" do you like?", "I like [type of "+typeNoun(noun)+"]."), true
		}
	}

	o, _ := findObject(in.lower)
	switch {
	case strings.HasPrefix(in.lower, "what is it"):
		if o.pairOnly {
			return qa.NewResult("What are they?", "They are "+o.plural+"."), true
		}
		desc := o.singular
		if c, ok := qa.FindColor(in.lower); ok {
			desc = c + " " + desc
		}
		return qa.NewResult("What is it?", "It is "+qa.Article(desc)+" "+desc+"."), true
	case strings.HasPrefix(in.lower, "what are they"):
		return qa.NewResult("What are they?", "They are "+o.plural+"."), true
	}
	return qa.Result{}, false
}

// "school bag" -> "bag", matching how teachers phrase the open answer.
func typeNoun(noun string) string {
	if noun == "school bag" {
		return "bag"
	}
	return noun
}
