package fallback

import (
	"regexp"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

var eitherOrRe = regexp.MustCompile(`(?i)\b([a-z']+) or (?:an? )?([a-z']+)\b`)

func fixed(question, answer string) variant {
	r := qa.NewResult(question, answer)
	return func(qa.Filename) qa.Result { return r }
}

// colour asks for the colour of noun, reading it from the filename when
// present and using def otherwise.
func colour(noun, verb, def string) variant {
	return func(f qa.Filename) qa.Result {
		c, ok := qa.FindColor(f.Text())
		if !ok {
			c = def
		}
		return qa.NewResult("What color "+verb+" the "+noun+"?", "The "+noun+" "+verb+" "+c+".")
	}
}

// isItEither builds "Is it a X or Y <noun>?" from the filename's own
// options, falling back to the given pair.
func isItEither(noun, defA, defB string) variant {
	return func(f qa.Filename) qa.Result {
		a, b := options(f, defA, defB)
		return qa.NewResult(
			"Is it "+qa.Article(a)+" "+a+" or "+b+" "+noun+"?",
			"It is "+qa.Article(a)+" "+a+" "+noun+". / It is "+qa.Article(b)+" "+b+" "+noun+".",
		)
	}
}

func areTheyEither(noun, defA, defB string) variant {
	return func(f qa.Filename) qa.Result {
		a, b := options(f, defA, defB)
		return qa.NewResult(
			"Are they "+a+" or "+b+" "+noun+"?",
			"They are "+a+" "+noun+". / They are "+b+" "+noun+".",
		)
	}
}

func options(f qa.Filename, defA, defB string) (string, string) {
	if m := eitherOrRe.FindStringSubmatch(f.Text()); m != nil {
		return qa.Phrase(m[1]), qa.Phrase(m[2])
	}
	return defA, defB
}

func howMany(plural, def string) variant {
	return func(f qa.Filename) qa.Result {
		n, ok := qa.FindNumber(f.Text())
		if !ok {
			n = def
		}
		return qa.NewResult("How many "+plural+" are there?", "There are "+n+" "+plural+".")
	}
}

func doYouHave(thing, mine string) variant {
	return fixed("Do you have "+thing+"?", "Yes, I have "+mine+". / No, I don't have "+mine+".")
}

func code(s string) qa.CodePattern {
	c, _ := qa.ParseCode(s)
	return c
}

// objectRules are tried in this order; a filename naming two objects is
// answered for the first.
var objectRules = []objectRule{
	{
		name:     "scissors",
		keywords: []string{"scissors"},
		home:     code("12 N"),
		variants: map[string]variant{
			"A": fixed("What are they?", "They are scissors."),
			"B": areTheyEither("scissors", "big", "small"),
			"C": areTheyEither("scissors", "big", "small"),
			"D": areTheyEither("scissors", "horse", "unicorn"),
			"E": areTheyEither("scissors", "panda", "koala"),
			"F": doYouHave("scissors in your pencil case", "scissors in my pencil case"),
			"G": doYouHave("green scissors", "green scissors"),
			"H": colour("scissors", "are", "purple"),
			"I": colour("scissors", "are", "[color]"),
			"J": colour("scissors", "are", "yellow"),
			"K": fixed("What scissors do you like?", "I like [type of scissors]."),
			"L": howMany("scissors", "4"),
			"M": howMany("scissors", "3"),
		},
		generic: qa.NewResult("What are they?", "They are scissors."),
	},
	{
		name:     "sharpener",
		keywords: []string{"sharpener"},
		home:     code("08 M"),
		variants: map[string]variant{
			"A": fixed("What is it?", "It is a sharpener."),
			"B": isItEither("sharpener", "metal", "plastic"),
			"C": isItEither("sharpener", "dragon", "dinosaur"),
			"D": isItEither("sharpener", "eye", "nose"),
			"E": isItEither("sharpener", "Roblox", "Minecraft"),
			"F": isItEither("sharpener", "happy", "sad"),
			"G": doYouHave("a Lego sharpener", "a Lego sharpener"),
			"H": doYouHave("a sharpener in your pencil case", "a sharpener in my pencil case"),
			"I": howMany("sharpeners", "2"),
			"J": howMany("sharpeners", "5"),
			"K": colour("sharpener", "is", "purple"),
			"L": colour("sharpeners", "are", "[color]"),
		},
		generic: qa.NewResult("What is it?", "It is a sharpener."),
	},
	{
		name:     "ruler",
		keywords: []string{"ruler"},
		home:     code("10 N"),
		variants: map[string]variant{
			"A": fixed("What is it?", "It is a ruler."),
			"B": fixed("What are they?", "They are rulers."),
			"C": isItEither("ruler", "big", "small"),
			"D": isItEither("ruler", "Minecraft", "Roblox"),
			"E": isItEither("ruler", "sleeping", "dancing"),
			"F": isItEither("ruler", "tiger", "lion"),
			"G": isItEither("ruler", "cat", "dog"),
			"H": isItEither("ruler", "girl's", "boy's"),
			"I": doYouHave("a ruler in your pencil case", "a ruler in my pencil case"),
			"J": isItEither("ruler", "plastic", "metal"),
			"K": colour("ruler", "is", "gold"),
			"L": fixed("What ruler do you like?", "I like [type of ruler]."),
			"M": howMany("rulers", "5"),
		},
		generic: qa.NewResult("What is it?", "It is a ruler."),
	},
	{
		name:     "bag",
		keywords: []string{"bag"},
		home:     code("09 N"),
		variants: map[string]variant{
			"A": fixed("What is it?", "It is a bag."),
			"B": fixed("What school bag do you like?", "I like [type of bag]."),
			"C": fixed("What school bag do you like?", "I like [type of bag]."),
			"D": isItEither("school bag", "dog", "cat"),
			"E": isItEither("school bag", "tiger", "lion"),
			"F": isItEither("school bag", "girl's", "boy's"),
			"G": isItEither("school bag", "girl's", "boy's"),
			"H": isItEither("school bag", "boy", "girl"),
			"I": doYouHave("a school bag", "a school bag"),
			"J": isItEither("school bag", "Spiderman", "Superman"),
			"K": isItEither("school bag", "Nike", "Adidas"),
			"L": colour("school bag", "is", "pink"),
			"M": colour("school bag", "is", "red"),
		},
		generic: qa.NewResult("What is it?", "It is a bag."),
	},
}
