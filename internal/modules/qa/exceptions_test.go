package qa

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultExceptionsGreenScissors(t *testing.T) {
	t.Parallel()
	ex := DefaultExceptions()
	hit, ok := ex.Match(ParseFilename("12 N G Do You Have Green Scissors.png"))
	if !ok {
		t.Fatalf("Match: want hit")
	}
	res := hit.Result()
	if res.Question != "Do you have green scissors?" || res.Answer != "Yes, I have green scissors. / No, I don't have green scissors." {
		t.Fatalf("Result: got=%+v", res)
	}
	for _, raw := range []string{
		"12 N H What Colour are the Scissors.png",
		"Green Scissors.png",
		"12 N G Rulers.png",
	} {
		if _, ok := ex.Match(ParseFilename(raw)); ok {
			t.Fatalf("%q: want no match", raw)
		}
	}
}

func TestNewExceptionsValidates(t *testing.T) {
	t.Parallel()
	bad := []Exception{
		{Name: "no-code", Contains: []string{"x"}, Question: "Q?", Answer: "A."},
		{Name: "short-code", Code: "12 N", Contains: []string{"x"}, Question: "Q?", Answer: "A."},
		{Name: "no-contains", Code: "12 N G", Question: "Q?", Answer: "A."},
		{Name: "no-answer", Code: "12 N G", Contains: []string{"x"}, Question: "Q?"},
	}
	for _, e := range bad {
		if _, err := NewExceptions(e); err == nil {
			t.Fatalf("%s: want error", e.Name)
		}
	}
}

func TestLoadExceptionsFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "exceptions.yaml")
	doc := `exceptions:
  - name: gold-ruler
    code: "10 N K"
    contains: ["Ruler"]
    question: "Is the ruler gold?"
    answer: "Yes, it is gold."
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	ex, err := LoadExceptionsFile(path)
	if err != nil {
		t.Fatalf("LoadExceptionsFile: %v", err)
	}
	if ex.Len() != 2 {
		t.Fatalf("Len: want=2 got=%d", ex.Len())
	}
	hit, ok := ex.Match(ParseFilename("10 N K What Colour is the Ruler.png"))
	if !ok || hit.Name != "gold-ruler" {
		t.Fatalf("Match: got=(%+v, %v)", hit, ok)
	}

	def, err := LoadExceptionsFile("")
	if err != nil || def.Len() != 1 {
		t.Fatalf("empty path: got=(%d, %v)", def.Len(), err)
	}
	if _, err := LoadExceptionsFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file: want error")
	}
}

func TestLoadExceptionsEmpty(t *testing.T) {
	t.Parallel()
	list, err := LoadExceptions(strings.NewReader(""))
	if err != nil || len(list) != 0 {
		t.Fatalf("empty: got=(%v, %v)", list, err)
	}
	if _, err := LoadExceptions(strings.NewReader("exceptions: [")); err == nil {
		t.Fatalf("malformed: want error")
	}
}
