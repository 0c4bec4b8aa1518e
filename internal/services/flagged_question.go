package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/ctxutil"
	"github.com/yungbote/visualenglish-backend/internal/platform/dbctx"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type FlagInput struct {
	BookID            string `json:"bookId"`
	UnitID            string `json:"unitId"`
	MaterialID        string `json:"materialId"`
	Filename          string `json:"filename,omitempty"`
	QuestionText      string `json:"questionText"`
	AnswerText        string `json:"answerText"`
	SuggestedQuestion string `json:"suggestedQuestion,omitempty"`
	SuggestedAnswer   string `json:"suggestedAnswer,omitempty"`
	Reason            string `json:"reason,omitempty"`
	// Source and Category describe how the flagged answer was produced.
	Source   string `json:"source,omitempty"`
	Category string `json:"category,omitempty"`
}

type FlaggedQuestionService interface {
	Flag(ctx context.Context, in FlagInput) (*types.FlaggedQuestion, error)
	List(ctx context.Context, status string) ([]*types.FlaggedQuestion, error)
	Review(ctx context.Context, id uuid.UUID, status, notes string) (*types.FlaggedQuestion, error)
}

type flaggedQuestionService struct {
	db    *gorm.DB
	log   *logger.Logger
	flags repos.FlaggedQuestionRepo
}

func NewFlaggedQuestionService(db *gorm.DB, baseLog *logger.Logger, flags repos.FlaggedQuestionRepo) FlaggedQuestionService {
	return &flaggedQuestionService{
		db:    db,
		log:   baseLog.With("service", "FlaggedQuestionService"),
		flags: flags,
	}
}

func (s *flaggedQuestionService) available() error {
	if s.db == nil || s.flags == nil {
		return fmt.Errorf("flagged questions: %w", apierr.ErrUnavailable)
	}
	return nil
}

func (s *flaggedQuestionService) Flag(ctx context.Context, in FlagInput) (*types.FlaggedQuestion, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	row := &types.FlaggedQuestion{
		UserID:            ctxutil.UserID(ctx),
		BookID:            strings.TrimSpace(in.BookID),
		UnitID:            strings.TrimSpace(in.UnitID),
		MaterialID:        strings.TrimSpace(in.MaterialID),
		Filename:          strings.TrimSpace(in.Filename),
		QuestionText:      strings.TrimSpace(in.QuestionText),
		AnswerText:        strings.TrimSpace(in.AnswerText),
		SuggestedQuestion: strings.TrimSpace(in.SuggestedQuestion),
		SuggestedAnswer:   strings.TrimSpace(in.SuggestedAnswer),
		Reason:            strings.TrimSpace(in.Reason),
		Status:            types.FlagStatusPending,
	}
	if row.BookID == "" || row.UnitID == "" || row.MaterialID == "" {
		return nil, fmt.Errorf("%w: bookId, unitId and materialId are required", apierr.ErrInvalidArgument)
	}
	if row.QuestionText == "" && row.AnswerText == "" {
		return nil, fmt.Errorf("%w: questionText or answerText is required", apierr.ErrInvalidArgument)
	}
	if in.Source != "" || in.Category != "" {
		raw, err := json.Marshal(map[string]string{"source": in.Source, "category": in.Category})
		if err != nil {
			return nil, err
		}
		row.Context = datatypes.JSON(raw)
	}
	created, err := s.flags.Create(dbctx.New(ctx), row)
	if err != nil {
		return nil, err
	}
	s.log.Info("question flagged", "book_id", row.BookID, "unit_id", row.UnitID, "material_id", row.MaterialID)
	return created, nil
}

func (s *flaggedQuestionService) List(ctx context.Context, status string) ([]*types.FlaggedQuestion, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && status != "all" && !types.ValidFlagStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apierr.ErrInvalidArgument, status)
	}
	rows, err := s.flags.List(dbctx.New(ctx), status)
	if err != nil {
		return nil, fmt.Errorf("list flagged questions: %w", err)
	}
	if rows == nil {
		rows = []*types.FlaggedQuestion{}
	}
	return rows, nil
}

func (s *flaggedQuestionService) Review(ctx context.Context, id uuid.UUID, status, notes string) (*types.FlaggedQuestion, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	reviewer := ctxutil.GetIdentity(ctx)
	if !reviewer.IsAdmin() {
		return nil, fmt.Errorf("review flagged question: %w", apierr.ErrForbidden)
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !types.ValidFlagStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apierr.ErrInvalidArgument, status)
	}
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: missing id", apierr.ErrInvalidArgument)
	}
	return s.flags.UpdateStatus(dbctx.New(ctx), id, status, strings.TrimSpace(notes), reviewer.UserID)
}
