package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/visualenglish-backend/internal/domain"
)

func SeedContentEdit(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, bookID, unitID, materialID, question, answer string) *types.ContentEdit {
	tb.Helper()
	e := &types.ContentEdit{
		UserID:       userID,
		BookID:       bookID,
		UnitID:       unitID,
		MaterialID:   materialID,
		EditType:     types.EditTypeQA,
		QuestionText: &question,
		AnswerText:   &answer,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed content edit: %v", err)
	}
	return e
}

func SeedFlaggedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, bookID, unitID, materialID, status string) *types.FlaggedQuestion {
	tb.Helper()
	f := &types.FlaggedQuestion{
		UserID:       "1",
		BookID:       bookID,
		UnitID:       unitID,
		MaterialID:   materialID,
		QuestionText: "What is it?",
		AnswerText:   "It is a ruler.",
		Status:       status,
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed flagged question: %v", err)
	}
	return f
}

func SeedMappingEntry(tb testing.TB, ctx context.Context, tx *gorm.DB, bookID, unitID, key, question, answer string) *types.QAMappingEntry {
	tb.Helper()
	e := &types.QAMappingEntry{
		BookID:    bookID,
		UnitID:    unitID,
		LookupKey: key,
		Filename:  key,
		Question:  question,
		Answer:    answer,
		Source:    "manual",
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed mapping entry: %v", err)
	}
	return e
}
