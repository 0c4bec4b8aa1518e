package services

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/overlay"
	"github.com/yungbote/visualenglish-backend/internal/observability"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// QAResolveService runs the full cascade on the server: the caller's stored
// edits, then the imported mapping, then the built-in resolvers.
type QAResolveService interface {
	Resolve(ctx context.Context, in cascade.Input) (cascade.Outcome, error)
}

type qaResolveService struct {
	log      *logger.Logger
	engines  cascade.Engines
	mappings QAMappingService
	edits    ContentEditService
}

func NewQAResolveService(baseLog *logger.Logger, engines cascade.Engines, mappings QAMappingService, edits ContentEditService) QAResolveService {
	return &qaResolveService{
		log:      baseLog.With("service", "QAResolveService"),
		engines:  engines,
		mappings: mappings,
		edits:    edits,
	}
}

func (s *qaResolveService) Resolve(ctx context.Context, in cascade.Input) (cascade.Outcome, error) {
	in.BookID = strings.TrimSpace(in.BookID)
	in.UnitID = strings.TrimSpace(in.UnitID)
	in.MaterialID = strings.TrimSpace(in.MaterialID)
	if in.BookID == "" || in.UnitID == "" {
		return cascade.Outcome{}, fmt.Errorf("%w: bookId and unitId are required", apierr.ErrInvalidArgument)
	}
	if strings.TrimSpace(in.Filename) == "" && in.MaterialID == "" {
		return cascade.Outcome{}, fmt.Errorf("%w: filename or materialId is required", apierr.ErrInvalidArgument)
	}

	ctx, span := observability.Tracer().Start(ctx, "qa.resolve")
	defer span.End()
	span.SetAttributes(
		attribute.String("qa.book_id", in.BookID),
		attribute.String("qa.unit_id", in.UnitID),
	)

	// Failures below degrade to the next stage rather than failing the request.
	store, err := s.mappings.Store(ctx, in.BookID, in.UnitID)
	if err != nil {
		s.log.Warn("mapping store unavailable", "error", err, "book_id", in.BookID, "unit_id", in.UnitID)
		store = nil
	}

	edits := overlay.New(s.log, overlay.NewMemoryStore(), in.BookID, in.UnitID)
	if in.MaterialID != "" && s.edits != nil {
		rows, err := s.edits.List(ctx, in.BookID, in.UnitID)
		if err != nil {
			s.log.Warn("content edits unavailable", "error", err, "book_id", in.BookID, "unit_id", in.UnitID)
		} else {
			edits.SetServer(OverlayEdits(rows))
		}
	}

	out := s.engines.Resolver(s.log, store).Resolve(in, edits)
	span.SetAttributes(
		attribute.String("qa.state", string(out.State)),
		attribute.String("qa.source", string(out.Source)),
	)
	return out, nil
}
