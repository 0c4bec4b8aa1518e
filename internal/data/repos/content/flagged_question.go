package content

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/dbctx"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type FlaggedQuestionRepo interface {
	Create(dbc dbctx.Context, q *types.FlaggedQuestion) (*types.FlaggedQuestion, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.FlaggedQuestion, error)
	List(dbc dbctx.Context, status string) ([]*types.FlaggedQuestion, error)
	UpdateStatus(dbc dbctx.Context, id uuid.UUID, status, notes, reviewer string) (*types.FlaggedQuestion, error)
}

type flaggedQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFlaggedQuestionRepo(db *gorm.DB, baseLog *logger.Logger) FlaggedQuestionRepo {
	return &flaggedQuestionRepo{db: db, log: baseLog.With("repo", "FlaggedQuestionRepo")}
}

func (r *flaggedQuestionRepo) Create(dbc dbctx.Context, q *types.FlaggedQuestion) (*types.FlaggedQuestion, error) {
	if q == nil {
		return nil, nil
	}
	if err := dbc.DB(r.db).Create(q).Error; err != nil {
		return nil, fmt.Errorf("create flagged question: %w", err)
	}
	return q, nil
}

func (r *flaggedQuestionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.FlaggedQuestion, error) {
	var row types.FlaggedQuestion
	err := dbc.DB(r.db).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns flags newest first. An empty status or "all" returns every flag.
func (r *flaggedQuestionRepo) List(dbc dbctx.Context, status string) ([]*types.FlaggedQuestion, error) {
	q := dbc.DB(r.db).Order("created_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	var results []*types.FlaggedQuestion
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *flaggedQuestionRepo) UpdateStatus(dbc dbctx.Context, id uuid.UUID, status, notes, reviewer string) (*types.FlaggedQuestion, error) {
	now := time.Now().UTC()
	res := dbc.DB(r.db).
		Model(&types.FlaggedQuestion{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       status,
			"review_notes": notes,
			"reviewed_by":  reviewer,
			"reviewed_at":  now,
			"updated_at":   now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("update flagged question: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("flagged question %s: %w", id, apierr.ErrNotFound)
	}
	return r.GetByID(dbc, id)
}
