package content

import (
	"context"
	"testing"

	"github.com/yungbote/visualenglish-backend/internal/data/repos/testutil"
	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/platform/dbctx"
)

func TestQAMappingRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewQAMappingRepo(db, testutil.Logger(t))

	testutil.SeedMappingEntry(t, ctx, tx, "1", "", "Shared.png", "Book row?", "Book.")
	testutil.SeedMappingEntry(t, ctx, tx, "1", "1", "Stale.png", "Old?", "Old.")
	testutil.SeedMappingEntry(t, ctx, tx, "1", "2", "Other.png", "Other unit?", "Yes.")

	n, err := repo.ReplaceForUnit(dbc, "1", "1", []*types.QAMappingEntry{
		{LookupKey: "01 I A", CodePattern: "01 I A", Question: "What is your name?", Answer: "My name is Tom.", Source: "excel"},
		{LookupKey: "Shared.png", Filename: "Shared.png", Question: "Unit row?", Answer: "Unit.", Source: "excel"},
		{LookupKey: "01 I A", Question: "Duplicate?", Answer: "Dropped.", Source: "excel"},
		{LookupKey: "", Question: "No key?", Answer: "Dropped."},
		nil,
	})
	if err != nil {
		t.Fatalf("ReplaceForUnit: %v", err)
	}
	if n != 2 {
		t.Fatalf("ReplaceForUnit: want=2 got=%d", n)
	}

	rows, err := repo.ListForUnit(dbc, "1", "1")
	if err != nil {
		t.Fatalf("ListForUnit: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListForUnit: want=3 got=%d", len(rows))
	}
	for i, want := range []struct{ unit, key string }{{"1", "01 I A"}, {"1", "Shared.png"}, {"", "Shared.png"}} {
		if rows[i].UnitID != want.unit || rows[i].LookupKey != want.key {
			t.Fatalf("row %d: want=(%q, %q) got=(%q, %q)", i, want.unit, want.key, rows[i].UnitID, rows[i].LookupKey)
		}
	}
	if rows[0].Question != "What is your name?" {
		t.Fatalf("first row wins: got=%q", rows[0].Question)
	}

	if n, err := repo.ReplaceForUnit(dbc, "1", "1", nil); err != nil || n != 0 {
		t.Fatalf("ReplaceForUnit empty: n=%d err=%v", n, err)
	}
	if rows, err := repo.ListForUnit(dbc, "1", "1"); err != nil || len(rows) != 1 {
		t.Fatalf("ListForUnit after clear: err=%v len=%d", err, len(rows))
	}
	if rows, err := repo.ListForUnit(dbc, "1", "2"); err != nil || len(rows) != 2 {
		t.Fatalf("ListForUnit unit 2: err=%v len=%d", err, len(rows))
	}
}
