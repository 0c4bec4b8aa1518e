package patternengine

import (
	"testing"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(logger.Nop(), qa.DefaultExceptions())
}

func TestResolveMatches(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	cases := []struct {
		name     string
		filename string
		unit     string
		question string
		answer   string
		category string
	}{
		{
			name:     "green scissors exception",
			filename: "12 N G Do You Have Green Scissors.png",
			unit:     "unit2",
			question: "Do you have green scissors?",
			answer:   "Yes, I have green scissors. / No, I don't have green scissors.",
			category: "pattern-engine-exception",
		},
		{
			name:     "what is it with answer",
			filename: "10 N A What is It – It is A Ruler.gif",
			question: "What is it?",
			answer:   "It is a ruler.",
			category: "pattern-engine-literal",
		},
		{
			name:     "mangled dash",
			filename: "book2/unit2/10 N A What is It \u00e2\u20ac\u201c It is A Ruler.gif",
			question: "What is it?",
			answer:   "It is a ruler.",
			category: "pattern-engine-literal",
		},
		{
			name:     "colour with answer",
			filename: "12 N H What Colour are the Scissors – Purple.gif",
			question: "What color are the scissors?",
			answer:   "The scissors are purple.",
			category: "pattern-engine-literal",
		},
		{
			name:     "country code",
			filename: "01 R I What is the Capital of Poland.png",
			question: "What is the capital of Poland?",
			answer:   "It is Warsaw.",
			category: "pattern-engine-section",
		},
		{
			name:     "either or object",
			filename: "08 M B is It A Metal or Plastic Sharpener.jpg",
			question: "Is it a metal or plastic sharpener?",
			answer:   "It is a metal sharpener. / It is a plastic sharpener.",
			category: "pattern-engine-keyword",
		},
		{
			name:     "either or brands",
			filename: "09 N K is It A Nike or Adidas School Bag.gif",
			question: "Is it a Nike or Adidas school bag?",
			answer:   "It is a Nike school bag. / It is an Adidas school bag.",
			category: "pattern-engine-keyword",
		},
		{
			name:     "do you have in your pencil case",
			filename: "08 M H Do You Have A Sharpener in Your Pencil Case.gif",
			question: "Do you have a sharpener in your pencil case?",
			answer:   "Yes, I have a sharpener in my pencil case. / No, I don't have a sharpener in my pencil case.",
			category: "pattern-engine-keyword",
		},
		{
			name:     "daily routine",
			filename: "What Do You Eat in the Afternoon.gif",
			question: "What do you eat in the afternoon?",
			answer:   "I eat lunch in the afternoon.",
			category: "pattern-engine-topic",
		},
		{
			name:     "worksheet",
			filename: "Worksheet 3.png",
			question: "This is a worksheet activity.",
			answer:   "Complete the worksheet according to the instructions.",
			category: "pattern-engine-topic",
		},
		{
			name:     "unit hint",
			filename: "05 A Sunny Day.png",
			unit:     "unit17",
			question: "How is the weather today?",
			answer:   "The weather is sunny/rainy/cloudy/snowy/windy.",
			category: "pattern-engine-unit",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, ok := e.Resolve(tc.filename, tc.unit)
			if !ok || !res.HasData {
				t.Fatalf("Resolve(%q): want match got none", tc.filename)
			}
			if res.Question != tc.question {
				t.Fatalf("question: want=%q got=%q", tc.question, res.Question)
			}
			if res.Answer != tc.answer {
				t.Fatalf("answer: want=%q got=%q", tc.answer, res.Answer)
			}
			if res.Category != tc.category {
				t.Fatalf("category: want=%q got=%q", tc.category, res.Category)
			}
		})
	}
}

func TestResolveCountryIsSet(t *testing.T) {
	t.Parallel()
	res, ok := newTestEngine(t).Resolve("01 R I What is the Capital of Poland.png", "")
	if !ok || res.Country != "Poland" {
		t.Fatalf("country: want=%q got=%q (ok=%v)", "Poland", res.Country, ok)
	}
}

func TestResolveDefers(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)
	for _, name := range []string{
		"",
		"Hello There.png",
		"02 N A is the Dog Happy or Sad.gif",
		"12 N I What Colour are the Scissors.gif",
		"05 A Sunny Day.png", // weather vocabulary outside the weather unit
	} {
		if res, ok := e.Resolve(name, "unit3"); ok {
			t.Fatalf("Resolve(%q): want no match got %+v", name, res)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)
	name := "09 N E is It A Tiger or A Lion School Bag.gif"
	first, ok1 := e.Resolve(name, "unit2")
	second, ok2 := e.Resolve(name, "unit2")
	if ok1 != ok2 || first != second {
		t.Fatalf("non-deterministic: first=%+v second=%+v", first, second)
	}
	if first.Answer != "It is a tiger school bag. / It is a lion school bag." {
		t.Fatalf("answer: got=%q", first.Answer)
	}
}

func TestParseUnitNumber(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"unit17":      17,
		"Unit 4":      4,
		"book3-unit5": 5,
		"12":          12,
		"":            0,
		"intro":       0,
	}
	for in, want := range cases {
		if got := ParseUnitNumber(in); got != want {
			t.Fatalf("ParseUnitNumber(%q): want=%d got=%d", in, want, got)
		}
	}
}

func TestResolveBareCodeInOwningUnit(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)
	cases := []struct {
		filename string
		unit     string
		ok       bool
		question string
		country  string
	}{
		{"01 R A.png", "unit1", true, "What country is this?", "Poland"},
		{"05 L C.jpg", "Unit 1", true, "What is England's capital?", "England"},
		{"02 A A.jpg", "unit2", true, "What is this?", ""},
		{"book4/unit2/03 A C.gif", "2", true, "What are these?", ""},
		// bare codes outside the table's unit carry no subject
		{"01 R A.png", "unit5", false, "", ""},
		{"02 A A.jpg", "unit1", false, "", ""},
		{"01 R A.png", "", false, "", ""},
		// only exact codes are trusted from the unit alone
		{"02NB.png", "unit1", false, "", ""},
		// object slides are left to the later stages
		{"08 M A Sharpener.png", "unit1", false, "", ""},
	}
	for _, tc := range cases {
		res, ok := e.Resolve(tc.filename, tc.unit)
		if ok != tc.ok {
			t.Fatalf("Resolve(%q, %q): want ok=%v got ok=%v res=%+v", tc.filename, tc.unit, tc.ok, ok, res)
		}
		if !ok {
			continue
		}
		if res.Question != tc.question || res.Country != tc.country {
			t.Fatalf("Resolve(%q, %q): want=(%q, %q) got=%+v", tc.filename, tc.unit, tc.question, tc.country, res)
		}
		if res.Category != "pattern-engine-section" {
			t.Fatalf("Resolve(%q, %q): category got=%q", tc.filename, tc.unit, res.Category)
		}
	}
}
