package patternengine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// Engine infers a question and answer from arbitrary slide filenames. It is
// stateless after construction and safe for concurrent use.
type Engine struct {
	log        *logger.Logger
	exceptions *qa.Exceptions
	strategies []strategy
}

type strategy struct {
	name string
	fn   func(in *input) (qa.Result, bool)
}

// input is the pre-parsed view of one filename shared by all strategies.
type input struct {
	file    qa.Filename
	text    string // base name without the leading code
	lower   string
	code    qa.CodePattern
	hasCode bool
	unit    int
}

var unitNumberRe = regexp.MustCompile(`(?i)(?:unit[\s_-]*)?(\d{1,2})$`)

func New(log *logger.Logger, exceptions *qa.Exceptions) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	if exceptions == nil {
		exceptions = qa.DefaultExceptions()
	}
	e := &Engine{log: log.With("service", "PatternEngine"), exceptions: exceptions}
	e.strategies = []strategy{
		{name: "exception", fn: e.exception},
		{name: "literal", fn: literal},
		{name: "section", fn: section},
		{name: "keyword", fn: keyword},
		{name: "topic", fn: topic},
		{name: "unit", fn: unitHint},
	}
	return e
}

// Resolve returns false when no strategy is confident about the filename.
func (e *Engine) Resolve(filename, unitID string) (qa.Result, bool) {
	f := qa.ParseFilename(filename)
	if f.IsEmpty() {
		return qa.Result{}, false
	}
	text := f.Text()
	code, hasCode := f.Code()
	in := &input{
		file:    f,
		text:    text,
		lower:   strings.ToLower(text),
		code:    code,
		hasCode: hasCode,
		unit:    ParseUnitNumber(unitID),
	}
	for _, s := range e.strategies {
		res, ok := s.fn(in)
		if !ok || !res.HasData {
			continue
		}
		e.log.Debug("pattern engine match", "strategy", s.name, "filename", f.Name)
		return res.WithCategory("pattern-engine-" + s.name), true
	}
	return qa.Result{}, false
}

func (e *Engine) exception(in *input) (qa.Result, bool) {
	ex, ok := e.exceptions.Match(in.file)
	if !ok {
		return qa.Result{}, false
	}
	e.log.Info("exception table hit", "exception", ex.Name, "filename", in.file.Name)
	return ex.Result(), true
}

// ParseUnitNumber extracts the unit number from ids like "unit17", "Unit 4" or "17".
func ParseUnitNumber(unitID string) int {
	m := unitNumberRe.FindStringSubmatch(strings.TrimSpace(unitID))
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
