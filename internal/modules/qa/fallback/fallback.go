// Package fallback holds the last-resort rules for the school-objects unit.
// Every rule is a pure function of the filename; the chain stops at the
// first rule that produces data.
package fallback

import (
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// Rule resolves a filename or reports that it does not apply.
type Rule func(f qa.Filename) (qa.Result, bool)

type namedRule struct {
	name string
	fn   Rule
}

type Chain struct {
	log   *logger.Logger
	rules []namedRule
}

// New builds the default chain: the exception table, then one rule per
// object in a fixed order.
func New(log *logger.Logger, exceptions *qa.Exceptions) *Chain {
	if log == nil {
		log = logger.Nop()
	}
	if exceptions == nil {
		exceptions = qa.DefaultExceptions()
	}
	c := &Chain{log: log.With("service", "SectionFallbacks")}
	c.rules = append(c.rules, namedRule{name: "exception", fn: c.exceptionRule(exceptions)})
	for _, o := range objectRules {
		c.rules = append(c.rules, namedRule{name: o.name, fn: o.resolve})
	}
	return c
}

// Resolve returns the first matching rule's result, or an empty result.
func (c *Chain) Resolve(filename string) qa.Result {
	res, _ := c.Result(filename)
	return res
}

func (c *Chain) Result(filename string) (qa.Result, bool) {
	f := qa.ParseFilename(filename)
	if f.IsEmpty() {
		return qa.Result{}, false
	}
	for _, r := range c.rules {
		res, ok := r.fn(f)
		if ok && res.HasData {
			return res.WithCategory("fallback-" + r.name), true
		}
	}
	return qa.Result{}, false
}

func (c *Chain) exceptionRule(ex *qa.Exceptions) Rule {
	return func(f qa.Filename) (qa.Result, bool) {
		hit, ok := ex.Match(f)
		if !ok {
			return qa.Result{}, false
		}
		c.log.Info("exception table hit", "exception", hit.Name, "filename", f.Name)
		return hit.Result(), true
	}
}

// objectRule branches on the variant letter when the code belongs to the
// object's own section and otherwise answers with a generic template.
type objectRule struct {
	name     string
	keywords []string
	home     qa.CodePattern
	variants map[string]variant
	generic  qa.Result
}

type variant func(f qa.Filename) qa.Result

func (o objectRule) resolve(f qa.Filename) (qa.Result, bool) {
	lower := f.Lower()
	found := false
	for _, k := range o.keywords {
		if strings.Contains(lower, k) {
			found = true
			break
		}
	}
	if !found {
		return qa.Result{}, false
	}
	if code, ok := f.Code(); ok && code.Complete() && code.Prefix().Equal(o.home) {
		if v, ok := o.variants[code.Variant]; ok {
			if res := v(f); res.HasData {
				return res, true
			}
		}
	}
	return o.generic, true
}
