package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	"github.com/yungbote/visualenglish-backend/internal/data/repos/testutil"
	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/ctxutil"
)

func TestFlaggedQuestionService(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewFlaggedQuestionService(db, log, repos.NewFlaggedQuestionRepo(db, log))
	book := "book-" + uuid.NewString()

	teacher := ctxutil.WithIdentity(context.Background(), &ctxutil.Identity{UserID: "5", Role: "teacher"})
	admin := ctxutil.WithIdentity(context.Background(), &ctxutil.Identity{UserID: "9", Role: "admin"})

	flag, err := svc.Flag(teacher, FlagInput{
		BookID:       book,
		UnitID:       "3",
		MaterialID:   "m-7",
		Filename:     "10 N K What Colour is the Ruler.png",
		QuestionText: "What color is the ruler?",
		AnswerText:   "The ruler is blue.",
		Reason:       "It is gold in the picture.",
		Source:       "legacy",
		Category:     "legacy-prefix",
	})
	if err != nil {
		t.Fatalf("Flag: %v", err)
	}
	if flag.UserID != "5" || flag.Status != types.FlagStatusPending || len(flag.Context) == 0 {
		t.Fatalf("Flag: got=%+v", flag)
	}

	if _, err := svc.Flag(teacher, FlagInput{BookID: book, UnitID: "3"}); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("Flag invalid: want ErrInvalidArgument got %v", err)
	}
	if _, err := svc.List(admin, "closed"); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("List bad status: want ErrInvalidArgument got %v", err)
	}

	if _, err := svc.Review(teacher, flag.ID, types.FlagStatusApproved, ""); !errors.Is(err, apierr.ErrForbidden) {
		t.Fatalf("Review as teacher: want ErrForbidden got %v", err)
	}
	if _, err := svc.Review(admin, flag.ID, "done", ""); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("Review bad status: want ErrInvalidArgument got %v", err)
	}
	reviewed, err := svc.Review(admin, flag.ID, "Approved", "updated sheet")
	if err != nil {
		t.Fatalf("Review: %v", err)
	}
	if reviewed.Status != types.FlagStatusApproved || reviewed.ReviewedBy != "9" || reviewed.ReviewNotes != "updated sheet" {
		t.Fatalf("Review: got=%+v", reviewed)
	}
	if _, err := svc.Review(admin, uuid.New(), types.FlagStatusRejected, ""); !errors.Is(err, apierr.ErrNotFound) {
		t.Fatalf("Review missing: want ErrNotFound got %v", err)
	}
}

func TestFlaggedQuestionServiceWithoutDB(t *testing.T) {
	t.Parallel()
	svc := NewFlaggedQuestionService(nil, testutil.Logger(t), nil)
	if _, err := svc.Flag(context.Background(), FlagInput{BookID: "1", UnitID: "1", MaterialID: "m", QuestionText: "Q?"}); !errors.Is(err, apierr.ErrUnavailable) {
		t.Fatalf("Flag: want ErrUnavailable got %v", err)
	}
	if _, err := svc.List(context.Background(), ""); !errors.Is(err, apierr.ErrUnavailable) {
		t.Fatalf("List: want ErrUnavailable got %v", err)
	}
}
