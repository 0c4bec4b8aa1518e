package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/overlay"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/ctxutil"
	"github.com/yungbote/visualenglish-backend/internal/platform/dbctx"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type SaveEditInput struct {
	BookID       string  `json:"bookId"`
	UnitID       string  `json:"unitId"`
	MaterialID   string  `json:"materialId"`
	EditType     string  `json:"editType"`
	QuestionText *string `json:"questionText,omitempty"`
	AnswerText   *string `json:"answerText,omitempty"`
	IsDeleted    bool    `json:"isDeleted,omitempty"`
	HideImage    bool    `json:"hideImage,omitempty"`
}

// SaveEditResult carries the stored row, or DBAvailable=false when the
// server has no database and the client must keep its local copy.
type SaveEditResult struct {
	DBAvailable bool
	Edit        *types.ContentEdit
}

type ContentEditService interface {
	DBAvailable() bool
	List(ctx context.Context, bookID, unitID string) ([]*types.ContentEdit, error)
	Save(ctx context.Context, in SaveEditInput) (SaveEditResult, error)
	Delete(ctx context.Context, bookID, unitID, materialID string) (SaveEditResult, error)
}

type contentEditService struct {
	db    *gorm.DB
	log   *logger.Logger
	edits repos.ContentEditRepo
	cache EditCache
}

// NewContentEditService accepts a nil db/repo for the degraded mode where
// edits live only on the client.
func NewContentEditService(db *gorm.DB, baseLog *logger.Logger, edits repos.ContentEditRepo, cache EditCache) ContentEditService {
	return &contentEditService{
		db:    db,
		log:   baseLog.With("service", "ContentEditService"),
		edits: edits,
		cache: cache,
	}
}

func (s *contentEditService) DBAvailable() bool { return s.db != nil && s.edits != nil }

func (s *contentEditService) List(ctx context.Context, bookID, unitID string) ([]*types.ContentEdit, error) {
	bookID, unitID = strings.TrimSpace(bookID), strings.TrimSpace(unitID)
	if bookID == "" || unitID == "" {
		return nil, fmt.Errorf("%w: bookId and unitId are required", apierr.ErrInvalidArgument)
	}
	if !s.DBAvailable() {
		return []*types.ContentEdit{}, nil
	}
	userID := ctxutil.UserID(ctx)
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, userID, bookID, unitID); err != nil {
			s.log.Warn("edit cache read failed", "error", err, "book_id", bookID, "unit_id", unitID)
		} else if ok {
			return cached, nil
		}
	}
	rows, err := s.edits.ListForUnit(dbctx.New(ctx), userID, bookID, unitID)
	if err != nil {
		return nil, fmt.Errorf("list content edits: %w", err)
	}
	if rows == nil {
		rows = []*types.ContentEdit{}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, bookID, unitID, rows); err != nil {
			s.log.Warn("edit cache write failed", "error", err, "book_id", bookID, "unit_id", unitID)
		}
	}
	return rows, nil
}

func (s *contentEditService) Save(ctx context.Context, in SaveEditInput) (SaveEditResult, error) {
	edit, err := editFromInput(in)
	if err != nil {
		return SaveEditResult{}, err
	}
	if !s.DBAvailable() {
		return SaveEditResult{DBAvailable: false}, nil
	}
	edit.UserID = ctxutil.UserID(ctx)
	stored, err := s.edits.Upsert(dbctx.New(ctx), edit)
	if err != nil {
		return SaveEditResult{}, err
	}
	s.invalidate(ctx, edit.UserID, edit.BookID, edit.UnitID)
	s.log.Debug("content edit saved", "book_id", edit.BookID, "unit_id", edit.UnitID, "material_id", edit.MaterialID, "edit_type", edit.EditType)
	return SaveEditResult{DBAvailable: true, Edit: stored}, nil
}

func (s *contentEditService) Delete(ctx context.Context, bookID, unitID, materialID string) (SaveEditResult, error) {
	bookID, unitID, materialID = strings.TrimSpace(bookID), strings.TrimSpace(unitID), strings.TrimSpace(materialID)
	if bookID == "" || unitID == "" || materialID == "" {
		return SaveEditResult{}, fmt.Errorf("%w: bookId, unitId and materialId are required", apierr.ErrInvalidArgument)
	}
	if !s.DBAvailable() {
		return SaveEditResult{DBAvailable: false}, nil
	}
	userID := ctxutil.UserID(ctx)
	if _, err := s.edits.Delete(dbctx.New(ctx), userID, bookID, unitID, materialID); err != nil {
		return SaveEditResult{}, fmt.Errorf("delete content edit: %w", err)
	}
	s.invalidate(ctx, userID, bookID, unitID)
	return SaveEditResult{DBAvailable: true}, nil
}

func (s *contentEditService) invalidate(ctx context.Context, userID, bookID, unitID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID, bookID, unitID); err != nil {
		s.log.Warn("edit cache invalidate failed", "error", err, "book_id", bookID, "unit_id", unitID)
	}
}

func editFromInput(in SaveEditInput) (*types.ContentEdit, error) {
	edit := &types.ContentEdit{
		BookID:     strings.TrimSpace(in.BookID),
		UnitID:     strings.TrimSpace(in.UnitID),
		MaterialID: strings.TrimSpace(in.MaterialID),
		EditType:   strings.TrimSpace(in.EditType),
		IsDeleted:  in.IsDeleted,
		HideImage:  in.HideImage,
	}
	if edit.BookID == "" || edit.UnitID == "" || edit.MaterialID == "" || edit.EditType == "" {
		return nil, fmt.Errorf("%w: bookId, unitId, materialId and editType are required", apierr.ErrInvalidArgument)
	}
	switch edit.EditType {
	case types.EditTypeDelete:
		edit.IsDeleted = true
	case types.EditTypeQA:
		q, a := trimmedPtr(in.QuestionText), trimmedPtr(in.AnswerText)
		if !edit.IsDeleted && q == nil && a == nil {
			return nil, fmt.Errorf("%w: questionText or answerText is required", apierr.ErrInvalidArgument)
		}
		edit.QuestionText, edit.AnswerText = q, a
	default:
		return nil, fmt.Errorf("%w: unknown editType %q", apierr.ErrInvalidArgument, edit.EditType)
	}
	return edit, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// OverlayEdits converts stored rows into overlay edits. The newest row per
// material wins; rows without a timestamp fall back to CreatedAt.
func OverlayEdits(rows []*types.ContentEdit) []overlay.Edit {
	out := make([]overlay.Edit, 0, len(rows))
	for _, r := range rows {
		if r == nil {
			continue
		}
		e := overlay.Edit{
			MaterialID: r.MaterialID,
			Deleted:    r.IsDeleted || r.EditType == types.EditTypeDelete,
			UpdatedAt:  r.UpdatedAt,
		}
		if e.UpdatedAt.IsZero() {
			e.UpdatedAt = r.CreatedAt
		}
		if r.QuestionText != nil {
			e.Question = *r.QuestionText
		}
		if r.AnswerText != nil {
			e.Answer = *r.AnswerText
		}
		out = append(out, e)
	}
	return out
}
