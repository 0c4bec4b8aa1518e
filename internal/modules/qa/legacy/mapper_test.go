package legacy

import (
	"testing"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

func TestResolveRules(t *testing.T) {
	t.Parallel()
	m := New(logger.Nop(), nil)

	cases := []struct {
		name     string
		filename string
		rule     string
		question string
		answer   string
	}{
		{"exact", "02 N B is the Baby Happy or Sad.gif", "exact", "Is the baby happy or sad?", "The baby is happy. / The baby is sad."},
		{"exact_with_dir", "book1/unit2/02 N B is the Baby Happy or Sad.gif", "exact", "Is the baby happy or sad?", "The baby is happy. / The baby is sad."},
		{"mojibake_dash", "08 M A What is It \u00e2\u20ac\u201c It is A Sharpener.gif", "exact", "What is it?", "It is a sharpener."},
		{"case_insensitive", "02 n b IS THE BABY happy or sad.GIF", "case-insensitive", "Is the baby happy or sad?", "The baby is happy. / The baby is sad."},
		{"classroom_code", "02NB.png", "classroom-code", "Is the baby happy or sad?", "The baby is happy. / The baby is sad."},
		{"exception", "12 N G Do You Have Green Scissors.png", "exception", "Do you have green scissors?", "Yes, I have green scissors. / No, I don't have green scissors."},
		{"scissors_code", "12 N Green Scissors.png", "scissors-code", "Do you have green scissors?", "Yes, I have green scissors. / No, I don't have green scissors."},
		{"prefix", "10 N K What Colour is the Ruler.png", "prefix", "What color is the ruler?", "The ruler is gold."},
		{"prefix_code_only", "08 M.png", "prefix", "What is it?", "It is a sharpener."},
		{"section_code", "9 N D.png", "section-code", "Is it a dog or cat school bag?", "It is a dog school bag. / It is a cat school bag."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := m.Resolve(tc.filename)
			if !got.HasMapping {
				t.Fatalf("HasMapping: want=true got=false")
			}
			if got.Rule != tc.rule {
				t.Fatalf("Rule: want=%q got=%q", tc.rule, got.Rule)
			}
			if got.Question != tc.question || got.Answer != tc.answer {
				t.Fatalf("want=(%q, %q) got=(%q, %q)", tc.question, tc.answer, got.Question, got.Answer)
			}
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	t.Parallel()
	m := New(logger.Nop(), nil)
	for _, name := range []string{"", "Apple.png", "holiday photo.jpg"} {
		if got := m.Resolve(name); got.HasMapping {
			t.Fatalf("%q: want no mapping got %+v", name, got)
		}
		if _, ok := m.Result(name); ok {
			t.Fatalf("%q: Result ok=true", name)
		}
	}
}

func TestResultCategory(t *testing.T) {
	t.Parallel()
	m := New(logger.Nop(), nil)
	res, ok := m.Result("02 N B is the Baby Happy or Sad.gif")
	if !ok || !res.HasData {
		t.Fatalf("want data got %+v", res)
	}
	if res.Category != "legacy-exact" {
		t.Fatalf("Category: want=%q got=%q", "legacy-exact", res.Category)
	}
}

func TestEmptyExceptionTable(t *testing.T) {
	t.Parallel()
	ex, err := qa.NewExceptions()
	if err != nil {
		t.Fatalf("NewExceptions: %v", err)
	}
	got := New(logger.Nop(), ex).Resolve("12 N G Do You Have Green Scissors.png")
	if got.Rule == "exception" {
		t.Fatalf("Rule: exception table is empty")
	}
	if got.Question != "Do you have green scissors?" {
		t.Fatalf("Question: got=%q", got.Question)
	}
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()
	m := New(logger.Nop(), nil)
	if m.Len() != len(exactMappings) {
		t.Fatalf("Len: want=%d got=%d", len(exactMappings), m.Len())
	}
	first := m.Resolve("08 M.png")
	for i := 0; i < 50; i++ {
		if got := New(logger.Nop(), nil).Resolve("08 M.png"); got != first {
			t.Fatalf("run %d: want=%+v got=%+v", i, first, got)
		}
	}
}
