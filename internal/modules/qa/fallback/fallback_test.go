package fallback

import (
	"testing"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

func TestGreenScissorsException(t *testing.T) {
	t.Parallel()
	c := New(logger.Nop(), nil)
	for _, name := range []string{
		"12 N G Do You Have Green Scissors.png",
		"book2/unit2/12 N G Do You Have Green Scissors.gif",
		"12NG do you have green scissors.jpg",
	} {
		res := c.Resolve(name)
		if !res.HasData {
			t.Fatalf("%q: want data", name)
		}
		if res.Question != "Do you have green scissors?" {
			t.Fatalf("%q question: got=%q", name, res.Question)
		}
		if res.Answer != "Yes, I have green scissors. / No, I don't have green scissors." {
			t.Fatalf("%q answer: got=%q", name, res.Answer)
		}
		if res.Category != "fallback-exception" {
			t.Fatalf("%q category: want=%q got=%q", name, "fallback-exception", res.Category)
		}
	}
}

func TestBackstopAlwaysHasData(t *testing.T) {
	t.Parallel()
	c := New(logger.Nop(), nil)
	for _, name := range []string{
		"SCISSORS.png",
		"my Ruler",
		"sharpener2.gif",
		"school BAG pic.jpg",
		"Handbag.png",
		"xxscissorsxx",
		"03 A B Ruler.png",
		"99 Z Z rulers and sharpeners.webp",
		"book1/unit2/My Scissors/",
	} {
		if res := c.Resolve(name); !res.HasData || res.Question == "" || res.Answer == "" {
			t.Fatalf("%q: want data got %+v", name, res)
		}
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()
	c := New(logger.Nop(), nil)
	cases := []struct {
		filename string
		question string
		answer   string
	}{
		{"12 N L How Many Scissors.png", "How many scissors are there?", "There are 4 scissors."},
		{"12 N M How Many Scissors are There – There are 7.jpg", "How many scissors are there?", "There are 7 scissors."},
		{"12 N I What Colour are the Scissors.gif", "What color are the scissors?", "The scissors are [color]."},
		{"12 N I What Colour are the Scissors Green.gif", "What color are the scissors?", "The scissors are green."},
		{"08 M L Sharpeners.jpg", "What color are the sharpeners?", "The sharpeners are [color]."},
		{"12 N B are They Big or Small Scissors.jpg", "Are they big or small scissors?", "They are big scissors. / They are small scissors."},
		{"09 N L What Colour is the School Bag – Purple.gif", "What color is the school bag?", "The school bag is purple."},
		{"08 M D Sharpener.jpg", "Is it an eye or nose sharpener?", "It is an eye sharpener. / It is a nose sharpener."},
		{"10 N M Rulers.jpg", "How many rulers are there?", "There are 5 rulers."},
		{"03 A B Ruler.png", "What is it?", "It is a ruler."},
	}
	for _, tc := range cases {
		res := c.Resolve(tc.filename)
		if res.Question != tc.question || res.Answer != tc.answer {
			t.Fatalf("%q: want=(%q, %q) got=(%q, %q)", tc.filename, tc.question, tc.answer, res.Question, res.Answer)
		}
	}
}

func TestNoObjectNoData(t *testing.T) {
	t.Parallel()
	c := New(logger.Nop(), nil)
	for _, name := range []string{"", "Apple.png", "02 N A is the Dog Happy or Sad.gif"} {
		if res, ok := c.Result(name); ok || res.HasData {
			t.Fatalf("%q: want no data got %+v", name, res)
		}
	}
}

func TestExtraExceptions(t *testing.T) {
	t.Parallel()
	ex, err := qa.DefaultExceptions().With(qa.Exception{
		Name:     "pink-ruler",
		Code:     "10 N K",
		Contains: []string{"ruler"},
		Question: "Is the ruler pink?",
		Answer:   "Yes, it is pink. / No, it is not pink.",
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	res := New(logger.Nop(), ex).Resolve("10 N K What Colour is the Ruler.png")
	if res.Question != "Is the ruler pink?" {
		t.Fatalf("question: got=%q", res.Question)
	}
}
