package qa

import (
	"regexp"
	"strings"
)

var (
	fullCodeRe    = regexp.MustCompile(`(?:^|\D)(\d{2})[\s-]*([A-Za-z])[\s-]*([A-Za-z])\b`)
	partCodeRe    = regexp.MustCompile(`(?:^|\D)(\d{2})[\s-]*([A-Za-z])\b`)
	sectionCodeRe = regexp.MustCompile(`^(\d{2})`)
)

// CodePattern is the structured "NN X Y" prefix of a slide filename.
// Any part may be empty.
type CodePattern struct {
	Section string
	Type    string
	Variant string
}

// ExtractCode finds the most specific code in text: section+type+variant,
// then section+type, then a bare leading section number.
func ExtractCode(text string) (CodePattern, bool) {
	if m := fullCodeRe.FindStringSubmatch(text); m != nil {
		return CodePattern{Section: m[1], Type: strings.ToUpper(m[2]), Variant: strings.ToUpper(m[3])}, true
	}
	if m := partCodeRe.FindStringSubmatch(text); m != nil {
		return CodePattern{Section: m[1], Type: strings.ToUpper(m[2])}, true
	}
	if m := sectionCodeRe.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		return CodePattern{Section: m[1]}, true
	}
	return CodePattern{}, false
}

// ParseCode parses a code written on its own, e.g. "12 N G" or "12-n-g".
func ParseCode(s string) (CodePattern, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CodePattern{}, false
	}
	return ExtractCode(s)
}

func (c CodePattern) IsZero() bool { return c.Section == "" }

func (c CodePattern) Complete() bool { return c.Section != "" && c.Type != "" && c.Variant != "" }

func (c CodePattern) String() string { return c.join(" ") }

// Key is the lowercase canonical form used for table lookups.
func (c CodePattern) Key() string { return strings.ToLower(c.String()) }

// Prefix drops the variant: "12 N G" -> "12 N".
func (c CodePattern) Prefix() CodePattern { return CodePattern{Section: c.Section, Type: c.Type} }

func (c CodePattern) Equal(o CodePattern) bool { return c.Key() == o.Key() }

// Variants lists the spellings authors use for the same code, canonical first.
func (c CodePattern) Variants() []string {
	if c.IsZero() {
		return nil
	}
	out := []string{c.String(), c.join(""), c.join("-")}
	if c.Complete() {
		out = append(out,
			c.Section+c.Type+" "+c.Variant,
			c.Section+" "+c.Type+c.Variant,
		)
	}
	out = append(out, strings.ToLower(c.String()), strings.ToLower(c.join("")))
	seen := make(map[string]bool, len(out))
	uniq := out[:0]
	for _, v := range out {
		if !seen[v] {
			seen[v] = true
			uniq = append(uniq, v)
		}
	}
	return uniq
}

func (c CodePattern) join(sep string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Section, c.Type, c.Variant} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, sep)
}
