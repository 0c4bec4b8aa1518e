package cascade

import (
	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/fallback"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/legacy"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/mapping"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/patternengine"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type stageFunc struct {
	name qa.Source
	fn   func(in Input) (qa.Result, bool)
}

func (s stageFunc) Name() qa.Source                    { return s.name }
func (s stageFunc) Resolve(in Input) (qa.Result, bool) { return s.fn(in) }

// StageFunc adapts a function to a Stage.
func StageFunc(name qa.Source, fn func(in Input) (qa.Result, bool)) Stage {
	return stageFunc{name: name, fn: fn}
}

// MappingStage looks the slide up in store. A nil store never matches.
func MappingStage(store *mapping.Store) Stage {
	return StageFunc(qa.SourceMapping, func(in Input) (qa.Result, bool) {
		return store.Lookup(in.Filename)
	})
}

func PatternEngineStage(e *patternengine.Engine) Stage {
	return StageFunc(qa.SourcePatternEngine, func(in Input) (qa.Result, bool) {
		return e.Resolve(in.Filename, in.UnitID)
	})
}

func LegacyStage(m *legacy.Mapper) Stage {
	return StageFunc(qa.SourceLegacy, func(in Input) (qa.Result, bool) {
		return m.Result(in.Filename)
	})
}

// FilenameLiteralStage splits "question – answer" filenames.
func FilenameLiteralStage() Stage {
	return StageFunc(qa.SourceFilenameLiteral, func(in Input) (qa.Result, bool) {
		q, a, ok := qa.SplitDash(qa.ParseFilename(in.Filename))
		if !ok {
			return qa.Result{}, false
		}
		res := qa.NewResult(q, a).WithCategory("filename-literal")
		return res, res.HasData
	})
}

func FallbackStage(c *fallback.Chain) Stage {
	return StageFunc(qa.SourceFallback, func(in Input) (qa.Result, bool) {
		return c.Result(in.Filename)
	})
}

// Engines holds the stateless resolvers shared by every slide.
type Engines struct {
	Pattern  *patternengine.Engine
	Legacy   *legacy.Mapper
	Fallback *fallback.Chain
}

func NewEngines(log *logger.Logger, exceptions *qa.Exceptions) Engines {
	if exceptions == nil {
		exceptions = qa.DefaultExceptions()
	}
	return Engines{
		Pattern:  patternengine.New(log, exceptions),
		Legacy:   legacy.New(log, exceptions),
		Fallback: fallback.New(log, exceptions),
	}
}

// Stages returns the default order: mapping store, pattern engine, legacy
// mapper, filename literal, section fallbacks.
func (e Engines) Stages(store *mapping.Store) []Stage {
	return []Stage{
		MappingStage(store),
		PatternEngineStage(e.Pattern),
		LegacyStage(e.Legacy),
		FilenameLiteralStage(),
		FallbackStage(e.Fallback),
	}
}

// Resolver builds a resolver over the default stages for one mapping store.
func (e Engines) Resolver(log *logger.Logger, store *mapping.Store) *Resolver {
	return New(log, e.Stages(store)...)
}
