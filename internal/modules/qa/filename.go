package qa

import (
	"regexp"
	"strings"
)

var (
	mediaExt   = regexp.MustCompile(`(?i)\.(png|jpe?g|gif|webp|mp4|bmp)$`)
	whitespace = regexp.MustCompile(`\s+`)
	leadCode   = regexp.MustCompile(`^\s*\d{1,2}[\s-]*[A-Za-z]?[\s-]*[A-Za-z]?\b[\s.\-–]*`)
)

// Content files were exported through tools that mangled the en dash. Both
// the Windows-1252 and the Mac Roman renderings show up in real filenames.
var dashReplacer = strings.NewReplacer(
	"\u00e2\u20ac\u201c", enDash,
	"\u00e2\u20ac\u201d", enDash,
	"\u201a\u00c4\u00ec", enDash,
	"\u201a\u00c4\u00ee", enDash,
	"\u2014", enDash,
	"\u2012", enDash,
)

const enDash = "\u2013"

// Filename is a slide filename in the forms the resolvers compare against.
type Filename struct {
	Raw  string
	Name string // directory stripped, dashes normalized, extension kept
	Base string // Name without media extension, whitespace collapsed
	Ext  string // lowercase, no dot
}

// ParseFilename keeps the last non-empty path segment, so "a/My Scissors/"
// parses as "My Scissors".
func ParseFilename(raw string) Filename {
	name := strings.TrimRight(strings.TrimSpace(raw), `/\ `)
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSpace(dashReplacer.Replace(name))

	base, ext := name, ""
	if loc := mediaExt.FindStringIndex(base); loc != nil {
		ext = strings.ToLower(base[loc[0]+1:])
		base = base[:loc[0]]
	}
	base = strings.TrimSpace(whitespace.ReplaceAllString(base, " "))
	return Filename{Raw: raw, Name: name, Base: base, Ext: ext}
}

func (f Filename) Lower() string { return strings.ToLower(f.Base) }

func (f Filename) IsEmpty() bool { return f.Base == "" }

// Text is the base name with any leading section code removed.
func (f Filename) Text() string {
	return strings.TrimSpace(leadCode.ReplaceAllString(f.Base, ""))
}

func (f Filename) Code() (CodePattern, bool) { return ExtractCode(f.Base) }

// SplitDash splits a "question – answer" base name. The question gets a
// trailing "?" and the answer a trailing ".", when missing.
func SplitDash(f Filename) (question, answer string, ok bool) {
	text := f.Text()
	idx := strings.Index(text, enDash)
	sepLen := len(enDash)
	if idx < 0 {
		idx = strings.Index(text, " - ")
		sepLen = len(" - ")
	}
	if idx <= 0 {
		return "", "", false
	}
	q := strings.TrimSpace(text[:idx])
	a := strings.TrimSpace(text[idx+sepLen:])
	if !hasLetter(q) || !hasLetter(a) {
		return "", "", false
	}
	return EnsureQuestion(q), EnsureSentence(a), true
}

func hasLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}
