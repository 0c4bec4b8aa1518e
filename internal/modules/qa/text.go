package qa

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Colors is the ordered colour vocabulary; earlier entries win when a
// filename mentions more than one.
var Colors = []string{
	"red", "blue", "green", "yellow", "orange", "purple", "pink",
	"black", "white", "brown", "gray", "grey", "gold", "silver",
}

var numberRe = regexp.MustCompile(`\b(\d{1,3})\b`)

func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// EnsureQuestion capitalizes s and makes it end with a single "?".
func EnsureQuestion(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), ".!?, ")
	if s == "" {
		return ""
	}
	return Capitalize(s) + "?"
}

// EnsureSentence capitalizes s and terminates it with "." unless it already
// ends in sentence punctuation.
func EnsureSentence(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), ", ")
	if s == "" {
		return ""
	}
	s = Capitalize(s)
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}

// Article returns "a" or "an" for the word that follows it.
func Article(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return "a"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}

// ContainsWord reports whether text contains word delimited by non-letters.
// Both arguments are compared case-insensitively.
func ContainsWord(text, word string) bool {
	text = strings.ToLower(text)
	word = strings.ToLower(word)
	if word == "" {
		return false
	}
	for from := 0; from <= len(text)-len(word); {
		i := strings.Index(text[from:], word)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(word)
		if !letterAt(text, start-1) && !letterAt(text, end) {
			return true
		}
		from = start + 1
	}
	return false
}

func letterAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// FindColor returns the first colour word of Colors present in text.
func FindColor(text string) (string, bool) {
	for _, c := range Colors {
		if ContainsWord(text, c) {
			return c, true
		}
	}
	return "", false
}

// FindNumber returns the first standalone number in text.
func FindNumber(text string) (string, bool) {
	m := numberRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

var properNouns = map[string]string{
	"i":         "I",
	"lego":      "Lego",
	"led":       "LED",
	"roblox":    "Roblox",
	"minecraft": "Minecraft",
	"spiderman": "Spiderman",
	"superman":  "Superman",
	"nike":      "Nike",
	"adidas":    "Adidas",
	"poland":    "Poland",
	"england":   "England",
}

// Phrase lowercases s word by word, keeping brand and proper names, and
// drops trailing punctuation.
func Phrase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		lw := strings.ToLower(w)
		if p, ok := properNouns[lw]; ok {
			words[i] = p
		} else {
			words[i] = lw
		}
	}
	return strings.TrimRight(strings.Join(words, " "), ".?!,")
}
