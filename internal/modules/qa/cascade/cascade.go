// Package cascade decides which resolver supplies the question and answer
// shown for a slide.
package cascade

import (
	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/overlay"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type State string

const (
	StateUnresolved State = "unresolved"
	StateHidden     State = "hidden"
	StateNoData     State = "no_data"
	StateResolved   State = "resolved"
)

// Input identifies one slide.
type Input struct {
	Filename   string `json:"filename"`
	BookID     string `json:"bookId"`
	UnitID     string `json:"unitId"`
	MaterialID string `json:"materialId,omitempty"`
}

// Outcome is the terminal state for a slide. Source names the resolver that
// answered, or SourceEdit for a hidden slide.
type Outcome struct {
	State  State     `json:"state"`
	Source qa.Source `json:"source,omitempty"`
	Result qa.Result `json:"result"`
}

func (o Outcome) Visible() bool { return o.State != StateHidden }

// Stage is one resolver in the cascade. A stage that cannot answer returns
// false; it never fails.
type Stage interface {
	Name() qa.Source
	Resolve(in Input) (qa.Result, bool)
}

// EditSource supplies the effective edit for a material.
type EditSource interface {
	Effective(materialID string) (overlay.Edit, bool)
}

type Resolver struct {
	log    *logger.Logger
	stages []Stage
}

func New(log *logger.Logger, stages ...Stage) *Resolver {
	if log == nil {
		log = logger.Nop()
	}
	return &Resolver{log: log.With("service", "QACascade"), stages: stages}
}

// Resolve consults the edit first: a deleted edit hides the slide and a
// complete edit is shown as is. Otherwise the stages run in order and the
// first one with data wins.
func (r *Resolver) Resolve(in Input, edits EditSource) Outcome {
	if edits != nil && in.MaterialID != "" {
		if e, ok := edits.Effective(in.MaterialID); ok {
			if e.Deleted {
				return Outcome{State: StateHidden, Source: qa.SourceEdit}
			}
			if e.HasContent() {
				return Outcome{State: StateResolved, Source: qa.SourceEdit, Result: qa.NewResult(e.Question, e.Answer)}
			}
		}
	}
	return r.ResolveStages(in)
}

// ResolveStages runs the cascade below the edit overlay.
func (r *Resolver) ResolveStages(in Input) Outcome {
	for _, s := range r.stages {
		res, ok := s.Resolve(in)
		if !ok || !res.HasData {
			continue
		}
		r.log.Debug("slide resolved", "source", s.Name(), "filename", in.Filename, "category", res.Category)
		return Outcome{State: StateResolved, Source: s.Name(), Result: res}
	}
	return Outcome{State: StateNoData}
}
