package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	"github.com/yungbote/visualenglish-backend/internal/data/repos/testutil"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
)

const bookMappingJSON = `{
	"Big Red Bus": {"question": "What is it?", "answer": "It is a bus."},
	"Shared": {"question": "Book row?", "answer": "Book."},
	"broken.png": {"question": "No answer?", "answer": ""}
}`

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cellName, &row); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}
	return buf
}

func exerciseMappingService(t *testing.T, svc QAMappingService, book string) {
	t.Helper()
	ctx := context.Background()

	res, err := svc.Import(ctx, book, "", "qa-mapping-book1.json", strings.NewReader(bookMappingJSON))
	if err != nil {
		t.Fatalf("Import json: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 1 {
		t.Fatalf("Import json: got=%+v", res)
	}

	st, err := svc.Store(ctx, book, "1")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if r, ok := st.Lookup("Shared.png"); !ok || r.Question != "Book row?" {
		t.Fatalf("book-wide lookup: got=(%+v, %v)", r, ok)
	}

	wb := workbook(t, [][]interface{}{
		{"File Path", "Question", "Answer"},
		{"unit1/01 I A What is your name.png", "What is your name?", "My name is Tom."},
		{"Shared.png", "Unit row?", "Unit."},
	})
	res, err = svc.Import(ctx, book, "1", "book1-unit1.xlsx", wb)
	if err != nil {
		t.Fatalf("Import xlsx: %v", err)
	}
	if res.Imported != 4 || res.Skipped != 0 {
		t.Fatalf("Import xlsx: got=%+v", res)
	}

	st, err = svc.Store(ctx, book, "1")
	if err != nil {
		t.Fatalf("Store after import: %v", err)
	}
	if r, ok := st.Lookup("Shared.png"); !ok || r.Question != "Unit row?" {
		t.Fatalf("unit row shadows book row: got=(%+v, %v)", r, ok)
	}
	if r, ok := st.Lookup("01 I A.gif"); !ok || r.Answer != "My name is Tom." {
		t.Fatalf("code lookup: got=(%+v, %v)", r, ok)
	}
	if r, ok := st.Lookup("my Big Red Bus photo.jpg"); !ok || r.Answer != "It is a bus." {
		t.Fatalf("partial lookup: got=(%+v, %v)", r, ok)
	}

	other, err := svc.Store(ctx, book, "2")
	if err != nil {
		t.Fatalf("Store unit 2: %v", err)
	}
	if r, ok := other.Lookup("Shared.png"); !ok || r.Question != "Book row?" {
		t.Fatalf("unit 2 sees book row: got=(%+v, %v)", r, ok)
	}
	if _, ok := other.Lookup("01 I A.gif"); ok {
		t.Fatalf("unit 2 must not see unit 1 rows")
	}

	entries, err := svc.Entries(ctx, book, "1")
	if err != nil || len(entries) != 6 {
		t.Fatalf("Entries: err=%v len=%d", err, len(entries))
	}

	if _, err := svc.Import(ctx, book, "1", "notes.txt", strings.NewReader("x")); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("Import txt: want ErrInvalidArgument got %v", err)
	}
	if _, err := svc.Import(ctx, "", "1", "a.json", strings.NewReader("{}")); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("Import no book: want ErrInvalidArgument got %v", err)
	}
	if _, err := svc.Import(ctx, book, "1", "a.json", strings.NewReader("[")); !errors.Is(err, apierr.ErrInvalidArgument) {
		t.Fatalf("Import bad json: want ErrInvalidArgument got %v", err)
	}
}

func TestQAMappingServiceInMemory(t *testing.T) {
	t.Parallel()
	svc := NewQAMappingService(nil, testutil.Logger(t), nil)
	exerciseMappingService(t, svc, "1")
}

func TestQAMappingServiceDatabase(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	svc := NewQAMappingService(db, log, repos.NewQAMappingRepo(db, log))
	exerciseMappingService(t, svc, "book-"+uuid.NewString())
}

func TestQAMappingServiceStoreConcurrent(t *testing.T) {
	t.Parallel()
	svc := NewQAMappingService(nil, testutil.Logger(t), nil)
	ctx := context.Background()
	if _, err := svc.Import(ctx, "1", "", "book1.json", strings.NewReader(bookMappingJSON)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	var wg sync.WaitGroup
	stores := make([]interface{}, 16)
	for i := range stores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st, err := svc.Store(ctx, "1", "1")
			if err != nil {
				t.Errorf("Store: %v", err)
				return
			}
			stores[i] = st
		}(i)
	}
	wg.Wait()
	again, _ := svc.Store(ctx, "1", "1")
	if again.Len() != 2 {
		t.Fatalf("Len: want=2 got=%d", again.Len())
	}
}
