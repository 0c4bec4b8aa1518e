// Package legacy resolves slides from the exact-filename table that predates
// the pattern engine.
package legacy

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type mapping struct {
	question string
	answer   string
}

// Mapping is the legacy resolver's answer for one filename.
type Mapping struct {
	HasMapping bool
	Question   string
	Answer     string
	Rule       string
}

type entry struct {
	key       string
	lowerKey  string
	lowerBase string
	code      qa.CodePattern
	mapping
}

var (
	classroomCodeRe = regexp.MustCompile(`(?i)(?:^|\D)0?2[-\s]?([NOP])[-\s]?([ABC])\b`)
	scissorsCodeRe  = regexp.MustCompile(`(?i)12\s*N\s*G`)
	looseCodeRe     = regexp.MustCompile(`(?:^|\D)(\d{1,2})[\s-]*([A-Za-z])[\s-]*([A-Za-z])\b`)
)

// Mapper is immutable after New; lookups walk keys in sorted order so the
// same filename always lands on the same entry.
type Mapper struct {
	log        *logger.Logger
	exceptions *qa.Exceptions
	entries    []entry
	byKey      map[string]int
	byLowerKey map[string]int
	byCode     map[string]int
}

func New(log *logger.Logger, exceptions *qa.Exceptions) *Mapper {
	if log == nil {
		log = logger.Nop()
	}
	if exceptions == nil {
		exceptions = qa.DefaultExceptions()
	}
	keys := make([]string, 0, len(exactMappings))
	for k := range exactMappings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := &Mapper{
		log:        log.With("service", "LegacyMapper"),
		exceptions: exceptions,
		entries:    make([]entry, 0, len(keys)),
		byKey:      make(map[string]int, len(keys)),
		byLowerKey: make(map[string]int, len(keys)),
		byCode:     make(map[string]int),
	}
	for _, k := range keys {
		f := qa.ParseFilename(k)
		code, _ := f.Code()
		e := entry{
			key:       k,
			lowerKey:  strings.ToLower(k),
			lowerBase: f.Lower(),
			code:      code,
			mapping:   exactMappings[k],
		}
		i := len(m.entries)
		m.entries = append(m.entries, e)
		m.byKey[k] = i
		if _, dup := m.byLowerKey[e.lowerKey]; !dup {
			m.byLowerKey[e.lowerKey] = i
		}
		if code.Complete() {
			if _, dup := m.byCode[code.Key()]; !dup {
				m.byCode[code.Key()] = i
			}
		}
	}
	return m
}

func (m *Mapper) Len() int { return len(m.entries) }

// Resolve runs the legacy rules in order; the first hit wins.
func (m *Mapper) Resolve(filename string) Mapping {
	f := qa.ParseFilename(filename)
	if f.IsEmpty() {
		return Mapping{}
	}
	if ex, ok := m.exceptions.Match(f); ok {
		m.log.Info("exception table hit", "exception", ex.Name, "filename", f.Name)
		return Mapping{HasMapping: true, Question: ex.Question, Answer: ex.Answer, Rule: "exception"}
	}
	if i, ok := m.byKey[f.Name]; ok {
		return m.hit(i, "exact")
	}
	lowerName := strings.ToLower(f.Name)
	if i, ok := m.byLowerKey[lowerName]; ok {
		return m.hit(i, "case-insensitive")
	}
	if g := classroomCodeRe.FindStringSubmatch(f.Base); g != nil {
		code := qa.CodePattern{Section: "02", Type: strings.ToUpper(g[1]), Variant: strings.ToUpper(g[2])}
		if i, ok := m.byCode[code.Key()]; ok {
			return m.hit(i, "classroom-code")
		}
	}
	lowerBase := f.Lower()
	if strings.Contains(lowerBase, "scissors") && scissorsCodeRe.MatchString(f.Base) {
		return Mapping{
			HasMapping: true,
			Question:   "Do you have green scissors?",
			Answer:     "Yes, I have green scissors. / No, I don't have green scissors.",
			Rule:       "scissors-code",
		}
	}
	if _, hasCode := f.Code(); hasCode {
		for i, e := range m.entries {
			if e.lowerBase == lowerBase || strings.HasPrefix(e.lowerBase, lowerBase) {
				return m.hit(i, "prefix")
			}
		}
	}
	if g := looseCodeRe.FindStringSubmatch(f.Base); g != nil {
		section := g[1]
		if len(section) == 1 {
			section = "0" + section
		}
		code := qa.CodePattern{Section: section, Type: strings.ToUpper(g[2]), Variant: strings.ToUpper(g[3])}
		if i, ok := m.byCode[code.Key()]; ok {
			return m.hit(i, "section-code")
		}
	}
	return Mapping{}
}

// Result adapts Resolve to the shared result type.
func (m *Mapper) Result(filename string) (qa.Result, bool) {
	got := m.Resolve(filename)
	if !got.HasMapping {
		return qa.Result{}, false
	}
	res := qa.NewResult(got.Question, got.Answer)
	return res.WithCategory("legacy-" + got.Rule), res.HasData
}

func (m *Mapper) hit(i int, rule string) Mapping {
	e := m.entries[i]
	return Mapping{HasMapping: true, Question: e.question, Answer: e.answer, Rule: rule}
}
