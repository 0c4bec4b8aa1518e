package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	"github.com/yungbote/visualenglish-backend/internal/data/repos/testutil"
	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/ctxutil"
)

func TestQAResolveService(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	book := "book-" + uuid.NewString()
	edits := NewContentEditService(db, log, repos.NewContentEditRepo(db, log), NewMemoryEditCache(time.Minute))
	mappings := NewQAMappingService(nil, log, nil)
	svc := NewQAResolveService(log, cascade.NewEngines(log, nil), mappings, edits)
	ctx := ctxutil.WithIdentity(context.Background(), &ctxutil.Identity{UserID: "11"})

	if _, err := mappings.Import(ctx, book, "1", "book.json", strings.NewReader(bookMappingJSON)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	out, err := svc.Resolve(ctx, cascade.Input{BookID: book, UnitID: "1", Filename: "Big Red Bus.png", MaterialID: "m-bus"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if out.State != cascade.StateResolved || out.Source != qa.SourceMapping || out.Result.Answer != "It is a bus." {
		t.Fatalf("mapping: got=%+v", out)
	}

	if _, err := edits.Save(ctx, SaveEditInput{BookID: book, UnitID: "1", MaterialID: "m-bus", EditType: types.EditTypeQA, QuestionText: strPtr("Is it a bus?"), AnswerText: strPtr("Yes, it is.")}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, _ = svc.Resolve(ctx, cascade.Input{BookID: book, UnitID: "1", Filename: "Big Red Bus.png", MaterialID: "m-bus"})
	if out.Source != qa.SourceEdit || out.Result.Question != "Is it a bus?" {
		t.Fatalf("edit beats mapping: got=%+v", out)
	}

	// Another user's edits do not apply.
	other := ctxutil.WithIdentity(context.Background(), &ctxutil.Identity{UserID: "12"})
	out, _ = svc.Resolve(other, cascade.Input{BookID: book, UnitID: "1", Filename: "Big Red Bus.png", MaterialID: "m-bus"})
	if out.Source != qa.SourceMapping {
		t.Fatalf("other user: got=%+v", out)
	}

	if _, err := edits.Save(ctx, SaveEditInput{BookID: book, UnitID: "1", MaterialID: "m-bus", EditType: types.EditTypeDelete}); err != nil {
		t.Fatalf("Save delete: %v", err)
	}
	out, _ = svc.Resolve(ctx, cascade.Input{BookID: book, UnitID: "1", Filename: "Big Red Bus.png", MaterialID: "m-bus"})
	if out.State != cascade.StateHidden {
		t.Fatalf("deleted: got=%+v", out)
	}

	if _, err := edits.Delete(ctx, book, "1", "m-bus"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	out, _ = svc.Resolve(ctx, cascade.Input{BookID: book, UnitID: "1", Filename: "Big Red Bus.png", MaterialID: "m-bus"})
	if out.Source != qa.SourceMapping {
		t.Fatalf("after reset: got=%+v", out)
	}

	out, _ = svc.Resolve(ctx, cascade.Input{BookID: book, UnitID: "1", Filename: "Where is the Cat - The cat is on the mat.png"})
	if out.State != cascade.StateResolved || out.Source == qa.SourceMapping || out.Source == qa.SourceEdit {
		t.Fatalf("built-in stage: got=%+v", out)
	}

	out, _ = svc.Resolve(ctx, cascade.Input{BookID: book, UnitID: "1", Filename: "Hello There.png"})
	if out.State != cascade.StateNoData {
		t.Fatalf("no data: got=%+v", out)
	}

	if _, err := svc.Resolve(ctx, cascade.Input{BookID: book, Filename: "x.png"}); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("missing unit: want ErrInvalidArgument got %v", err)
	}
	if _, err := svc.Resolve(ctx, cascade.Input{BookID: book, UnitID: "1"}); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("missing filename: want ErrInvalidArgument got %v", err)
	}
}
