package content

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/dbctx"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

const mappingBatchSize = 200

type QAMappingRepo interface {
	ReplaceForUnit(dbc dbctx.Context, bookID, unitID string, rows []*types.QAMappingEntry) (int, error)
	ListForUnit(dbc dbctx.Context, bookID, unitID string) ([]*types.QAMappingEntry, error)
}

type qaMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQAMappingRepo(db *gorm.DB, baseLog *logger.Logger) QAMappingRepo {
	return &qaMappingRepo{db: db, log: baseLog.With("repo", "QAMappingRepo")}
}

// ReplaceForUnit swaps the rows stored for bookID/unitID (unitID "" is the
// book-wide set) for rows. Later rows with an already-seen lookup key are
// dropped. It returns the number of rows stored.
func (r *qaMappingRepo) ReplaceForUnit(dbc dbctx.Context, bookID, unitID string, rows []*types.QAMappingEntry) (int, error) {
	seen := make(map[string]bool, len(rows))
	keep := make([]*types.QAMappingEntry, 0, len(rows))
	for _, row := range rows {
		if row == nil || row.LookupKey == "" || seen[row.LookupKey] {
			continue
		}
		seen[row.LookupKey] = true
		row.BookID, row.UnitID = bookID, unitID
		keep = append(keep, row)
	}

	err := dbc.DB(r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ? AND unit_id = ?", bookID, unitID).
			Delete(&types.QAMappingEntry{}).Error; err != nil {
			return err
		}
		if len(keep) == 0 {
			return nil
		}
		return tx.CreateInBatches(keep, mappingBatchSize).Error
	})
	if isUniqueViolation(err) {
		return 0, fmt.Errorf("replace mapping for book %s unit %q: %w", bookID, unitID, apierr.ErrConflict)
	}
	if err != nil {
		return 0, fmt.Errorf("replace mapping for book %s unit %q: %w", bookID, unitID, err)
	}
	r.log.Debug("mapping replaced", "book_id", bookID, "unit_id", unitID, "rows", len(keep), "dropped", len(rows)-len(keep))
	return len(keep), nil
}

// ListForUnit returns the unit's rows together with the book-wide rows.
func (r *qaMappingRepo) ListForUnit(dbc dbctx.Context, bookID, unitID string) ([]*types.QAMappingEntry, error) {
	var results []*types.QAMappingEntry
	if err := dbc.DB(r.db).
		Where("book_id = ? AND (unit_id = ? OR unit_id = '')", bookID, unitID).
		Order("unit_id DESC, lookup_key ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
