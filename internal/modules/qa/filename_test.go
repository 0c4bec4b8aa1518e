package qa

import "testing"

func TestParseFilename(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw  string
		name string
		base string
		ext  string
	}{
		{"12 N G Do You Have Green Scissors.png", "12 N G Do You Have Green Scissors.png", "12 N G Do You Have Green Scissors", "png"},
		{"book/unit/08 M A  What is It.GIF", "08 M A  What is It.GIF", "08 M A What is It", "gif"},
		{`C:\slides\09 N A.jpeg`, "09 N A.jpeg", "09 N A", "jpeg"},
		{"notes.txt", "notes.txt", "notes.txt", ""},
		{"   ", "", "", ""},
		{"book1/unit2/My Scissors/", "My Scissors", "My Scissors", ""},
		{`slides\Random Ruler.gif\ `, "Random Ruler.gif", "Random Ruler", "gif"},
		{"//", "", "", ""},
	}
	for _, tc := range cases {
		f := ParseFilename(tc.raw)
		if f.Name != tc.name || f.Base != tc.base || f.Ext != tc.ext {
			t.Fatalf("%q: want=(%q, %q, %q) got=(%q, %q, %q)", tc.raw, tc.name, tc.base, tc.ext, f.Name, f.Base, f.Ext)
		}
	}
}

func TestParseFilenameNormalizesDashes(t *testing.T) {
	t.Parallel()
	want := "08 M A What is It \u2013 It is A Sharpener"
	for _, raw := range []string{
		"08 M A What is It \u2013 It is A Sharpener.gif",
		"08 M A What is It \u00e2\u20ac\u201c It is A Sharpener.gif",
		"08 M A What is It \u201a\u00c4\u00ec It is A Sharpener.gif",
		"08 M A What is It \u2014 It is A Sharpener.gif",
	} {
		if got := ParseFilename(raw).Base; got != want {
			t.Fatalf("%q: want=%q got=%q", raw, want, got)
		}
	}
}

func TestFilenameText(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"12 N G Do You Have Green Scissors.png": "Do You Have Green Scissors",
		"08-M-A What is It.gif":                 "What is It",
		"Random Scissors.png":                   "Random Scissors",
	}
	for raw, want := range cases {
		if got := ParseFilename(raw).Text(); got != want {
			t.Fatalf("%q: want=%q got=%q", raw, want, got)
		}
	}
}

func TestSplitDash(t *testing.T) {
	t.Parallel()
	q, a, ok := SplitDash(ParseFilename("08 M A What is It \u2013 It is A Sharpener.gif"))
	if !ok {
		t.Fatalf("SplitDash: want ok")
	}
	if q != "What is It?" || a != "It is A Sharpener." {
		t.Fatalf("want=(%q, %q) got=(%q, %q)", "What is It?", "It is A Sharpener.", q, a)
	}
	q, a, ok = SplitDash(ParseFilename("what colour - purple.png"))
	if !ok || q != "What colour?" || a != "Purple." {
		t.Fatalf("hyphen form: got=(%q, %q, %v)", q, a, ok)
	}
	for _, raw := range []string{"No Dash Here.png", "12 N M \u2013 3.jpg", "\u2013 Answer only.png"} {
		if _, _, ok := SplitDash(ParseFilename(raw)); ok {
			t.Fatalf("%q: want !ok", raw)
		}
	}
}
