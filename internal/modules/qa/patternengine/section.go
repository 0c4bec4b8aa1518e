package patternengine

import (
	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

type codeEntry struct {
	code     string
	country  string
	question string
	answer   string
}

type codeTable struct {
	name    string
	units   []int
	context []string
	entries []codeEntry
	byCode  map[string]int
	byGroup map[string]int
}

func newCodeTable(name string, units []int, context []string, entries []codeEntry) *codeTable {
	t := &codeTable{
		name:    name,
		units:   units,
		context: context,
		entries: entries,
		byCode:  make(map[string]int, len(entries)),
		byGroup: make(map[string]int),
	}
	for i, e := range entries {
		code, ok := qa.ParseCode(e.code)
		if !ok {
			continue
		}
		if _, dup := t.byCode[code.Key()]; !dup {
			t.byCode[code.Key()] = i
		}
		if _, dup := t.byGroup[code.Prefix().Key()]; !dup {
			t.byGroup[code.Prefix().Key()] = i
		}
	}
	return t
}

// Codes overlap between books ("08 M A" is both a USA slide and a sharpener
// slide), so a table applies to filenames that mention its subject.
func (t *codeTable) mentioned(in *input) bool {
	for _, w := range t.context {
		if qa.ContainsWord(in.lower, w) {
			return true
		}
	}
	return false
}

// owns reports whether the slide's unit is one of the table's units. Object
// slides are left to the keyword strategy even there.
func (t *codeTable) owns(in *input) bool {
	if in.unit <= 0 {
		return false
	}
	for _, u := range t.units {
		if u == in.unit {
			_, hasObject := findObject(in.lower)
			return !hasObject
		}
	}
	return false
}

func (t *codeTable) exact(in *input) (codeEntry, bool) {
	if i, ok := t.byCode[in.code.Key()]; ok {
		return t.entries[i], true
	}
	return codeEntry{}, false
}

func (t *codeTable) lookup(in *input) (codeEntry, bool) {
	if e, ok := t.exact(in); ok {
		return e, true
	}
	if i, ok := t.byGroup[in.code.Prefix().Key()]; ok {
		return t.entries[i], true
	}
	return codeEntry{}, false
}

var sectionTables = []*codeTable{
	newCodeTable("countries", []int{1}, countryContext, countryEntries),
	newCodeTable("gadgets", []int{2}, gadgetContext, gadgetEntries),
}

// section resolves "NN X Y" coded filenames against the curated code tables.
// Inside a table's own unit a bare exact code is enough; elsewhere the
// filename must mention the table's subject, and a section-level match is
// accepted too.
func section(in *input) (qa.Result, bool) {
	if !in.hasCode || in.code.Type == "" {
		return qa.Result{}, false
	}
	for _, t := range sectionTables {
		var (
			e  codeEntry
			ok bool
		)
		switch {
		case t.mentioned(in):
			e, ok = t.lookup(in)
		case t.owns(in):
			e, ok = t.exact(in)
		}
		if !ok {
			continue
		}
		res := qa.NewResult(e.question, e.answer)
		if e.country != "" {
			res = res.WithCountry(e.country)
		}
		return res, true
	}
	return qa.Result{}, false
}
