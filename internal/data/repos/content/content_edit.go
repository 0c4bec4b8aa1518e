package content

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/platform/dbctx"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type ContentEditRepo interface {
	Upsert(dbc dbctx.Context, edit *types.ContentEdit) (*types.ContentEdit, error)
	Get(dbc dbctx.Context, userID, bookID, unitID, materialID string) (*types.ContentEdit, error)
	ListForUnit(dbc dbctx.Context, userID, bookID, unitID string) ([]*types.ContentEdit, error)
	Delete(dbc dbctx.Context, userID, bookID, unitID, materialID string) (bool, error)
}

type contentEditRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewContentEditRepo(db *gorm.DB, baseLog *logger.Logger) ContentEditRepo {
	return &contentEditRepo{db: db, log: baseLog.With("repo", "ContentEditRepo")}
}

// Upsert writes edit in place of any existing row for the same material and
// returns the stored row.
func (r *contentEditRepo) Upsert(dbc dbctx.Context, edit *types.ContentEdit) (*types.ContentEdit, error) {
	if edit == nil {
		return nil, nil
	}
	edit.UpdatedAt = time.Now().UTC()
	insert := func() error {
		return dbc.DB(r.db).
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "user_id"},
					{Name: "book_id"},
					{Name: "unit_id"},
					{Name: "material_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"edit_type",
					"question_text",
					"answer_text",
					"is_deleted",
					"hide_image",
					"updated_at",
				}),
			}).
			Create(edit).Error
	}
	err := insert()
	if isUniqueViolation(err) {
		// Lost a race with a concurrent insert for the same material.
		r.log.Debug("content edit upsert retry", "material_id", edit.MaterialID)
		err = insert()
	}
	if err != nil {
		return nil, fmt.Errorf("upsert content edit: %w", err)
	}
	return r.Get(dbc, edit.UserID, edit.BookID, edit.UnitID, edit.MaterialID)
}

// Get returns nil when no edit exists.
func (r *contentEditRepo) Get(dbc dbctx.Context, userID, bookID, unitID, materialID string) (*types.ContentEdit, error) {
	var row types.ContentEdit
	err := dbc.DB(r.db).
		Where("user_id = ? AND book_id = ? AND unit_id = ? AND material_id = ?", userID, bookID, unitID, materialID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *contentEditRepo) ListForUnit(dbc dbctx.Context, userID, bookID, unitID string) ([]*types.ContentEdit, error) {
	var results []*types.ContentEdit
	if err := dbc.DB(r.db).
		Where("user_id = ? AND book_id = ? AND unit_id = ?", userID, bookID, unitID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Delete reports whether a row was removed.
func (r *contentEditRepo) Delete(dbc dbctx.Context, userID, bookID, unitID, materialID string) (bool, error) {
	res := dbc.DB(r.db).
		Where("user_id = ? AND book_id = ? AND unit_id = ? AND material_id = ?", userID, bookID, unitID, materialID).
		Delete(&types.ContentEdit{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
