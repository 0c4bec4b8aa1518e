package qa

import (
	"reflect"
	"testing"
)

func TestExtractCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		text string
		want CodePattern
		ok   bool
	}{
		{"12 N G Do You Have Green Scissors", CodePattern{"12", "N", "G"}, true},
		{"12NG scissors", CodePattern{"12", "N", "G"}, true},
		{"08-m-a what is it", CodePattern{"08", "M", "A"}, true},
		{"12 N Green Scissors", CodePattern{"12", "N", ""}, true},
		{"17 weather", CodePattern{"17", "", ""}, true},
		{"Random Scissors", CodePattern{}, false},
	}
	for _, tc := range cases {
		got, ok := ExtractCode(tc.text)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%q: want=(%+v, %v) got=(%+v, %v)", tc.text, tc.want, tc.ok, got, ok)
		}
	}
}

func TestCodePatternForms(t *testing.T) {
	t.Parallel()
	c, ok := ParseCode("12-n-g")
	if !ok || !c.Complete() {
		t.Fatalf("ParseCode: got=(%+v, %v)", c, ok)
	}
	if c.String() != "12 N G" {
		t.Fatalf("String: want=%q got=%q", "12 N G", c.String())
	}
	if c.Key() != "12 n g" {
		t.Fatalf("Key: want=%q got=%q", "12 n g", c.Key())
	}
	if p := c.Prefix(); p.String() != "12 N" || p.Complete() {
		t.Fatalf("Prefix: got=%+v", p)
	}
	want := []string{"12 N G", "12NG", "12-N-G", "12N G", "12 NG", "12 n g", "12ng"}
	if got := c.Variants(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Variants: want=%v got=%v", want, got)
	}
	if v := (CodePattern{}).Variants(); v != nil {
		t.Fatalf("zero Variants: want nil got %v", v)
	}
	if _, ok := ParseCode("  "); ok {
		t.Fatalf("ParseCode blank: want !ok")
	}
}
