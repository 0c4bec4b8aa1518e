package qa

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Exception pins the question/answer for a slide whose filename the generic
// rules get wrong. Contains lists lowercase fragments; any one must be present.
type Exception struct {
	Name     string   `yaml:"name"`
	Code     string   `yaml:"code"`
	Contains []string `yaml:"contains"`
	Question string   `yaml:"question"`
	Answer   string   `yaml:"answer"`

	code CodePattern
}

// Exceptions is an ordered, immutable exception table.
type Exceptions struct {
	list []Exception
}

var defaultExceptions = []Exception{
	{
		Name:     "green-scissors",
		Code:     "12 N G",
		Contains: []string{"green scissors", "scissors"},
		Question: "Do you have green scissors?",
		Answer:   "Yes, I have green scissors. / No, I don't have green scissors.",
	},
}

func DefaultExceptions() *Exceptions {
	ex, err := NewExceptions(defaultExceptions...)
	if err != nil {
		panic(err)
	}
	return ex
}

func NewExceptions(list ...Exception) (*Exceptions, error) {
	out := make([]Exception, 0, len(list))
	for i, e := range list {
		code, ok := ParseCode(e.Code)
		if !ok || !code.Complete() {
			return nil, fmt.Errorf("exception %d (%q): invalid code %q", i, e.Name, e.Code)
		}
		if len(e.Contains) == 0 {
			return nil, fmt.Errorf("exception %d (%q): contains is empty", i, e.Name)
		}
		if strings.TrimSpace(e.Question) == "" || strings.TrimSpace(e.Answer) == "" {
			return nil, fmt.Errorf("exception %d (%q): question and answer are required", i, e.Name)
		}
		e.code = code
		frags := make([]string, 0, len(e.Contains))
		for _, c := range e.Contains {
			if c = strings.ToLower(strings.TrimSpace(c)); c != "" {
				frags = append(frags, c)
			}
		}
		e.Contains = frags
		out = append(out, e)
	}
	return &Exceptions{list: out}, nil
}

// With returns a table holding e's entries followed by extra.
func (e *Exceptions) With(extra ...Exception) (*Exceptions, error) {
	all := append(append([]Exception{}, e.list...), extra...)
	return NewExceptions(all...)
}

func (e *Exceptions) Len() int {
	if e == nil {
		return 0
	}
	return len(e.list)
}

// Match returns the first exception whose code and text fragment both match f.
func (e *Exceptions) Match(f Filename) (Exception, bool) {
	if e == nil || len(e.list) == 0 {
		return Exception{}, false
	}
	code, ok := f.Code()
	if !ok {
		return Exception{}, false
	}
	lower := f.Lower()
	for _, ex := range e.list {
		if !ex.code.Equal(code) {
			continue
		}
		for _, frag := range ex.Contains {
			if strings.Contains(lower, frag) {
				return ex, true
			}
		}
	}
	return Exception{}, false
}

func (ex Exception) Result() Result {
	return NewResult(ex.Question, ex.Answer)
}

type exceptionFile struct {
	Exceptions []Exception `yaml:"exceptions"`
}

// LoadExceptions reads additional exceptions from YAML:
//
//	exceptions:
//	  - name: green-scissors
//	    code: "12 N G"
//	    contains: ["scissors"]
//	    question: "Do you have green scissors?"
//	    answer: "Yes, I have green scissors. / No, I don't have green scissors."
func LoadExceptions(r io.Reader) ([]Exception, error) {
	var doc exceptionFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode exceptions: %w", err)
	}
	return doc.Exceptions, nil
}

// LoadExceptionsFile extends the default table with the file at path.
// An empty path returns the defaults.
func LoadExceptionsFile(path string) (*Exceptions, error) {
	base := DefaultExceptions()
	if strings.TrimSpace(path) == "" {
		return base, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exceptions file: %w", err)
	}
	defer f.Close()
	extra, err := LoadExceptions(f)
	if err != nil {
		return nil, err
	}
	return base.With(extra...)
}
