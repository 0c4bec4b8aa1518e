package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yungbote/visualenglish-backend/internal/data/repos/testutil"
)

func TestParseMappingFilename(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		book string
		unit string
		ok   bool
	}{
		{"qa-mapping-book1.json", "1", "", true},
		{"book2.xlsx", "2", "", true},
		{"/data/mappings/Book3-Unit12.xlsx", "3", "12", true},
		{"book4_unit5.json", "4", "5", true},
		{"book1.csv", "", "", false},
		{"notes.json", "", "", false},
		{"~$book1.xlsx", "", "", false},
	}
	for _, tc := range cases {
		book, unit, ok := ParseMappingFilename(tc.name)
		if ok != tc.ok || book != tc.book || unit != tc.unit {
			t.Fatalf("%q: want=(%q, %q, %v) got=(%q, %q, %v)", tc.name, tc.book, tc.unit, tc.ok, book, unit, ok)
		}
	}
}

func TestMappingWatcherImports(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "qa-mapping-book1.json"), []byte(bookMappingJSON), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	svc := NewQAMappingService(nil, testutil.Logger(t), nil)
	w, err := NewMappingWatcher(testutil.Logger(t), svc, dir, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewMappingWatcher: %v", err)
	}
	ctx := context.Background()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = w.Stop() })

	// The initial scan is synchronous.
	if rows, _ := svc.Entries(ctx, "1", "1"); len(rows) != 2 {
		t.Fatalf("initial import: want=2 got=%d", len(rows))
	}

	unitJSON := `{"01 I A": {"question": "What is your name?", "answer": "My name is Tom."}}`
	if err := os.WriteFile(filepath.Join(dir, "book1-unit1.json"), []byte(unitJSON), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for {
		st, err := svc.Store(ctx, "1", "1")
		if err == nil {
			if r, ok := st.Lookup("01 I A.png"); ok && r.Answer == "My name is Tom." {
				break
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("watcher did not import the new file")
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestNewMappingWatcherMissingDir(t *testing.T) {
	t.Parallel()
	svc := NewQAMappingService(nil, testutil.Logger(t), nil)
	if _, err := NewMappingWatcher(testutil.Logger(t), svc, filepath.Join(t.TempDir(), "missing"), 0); err == nil {
		t.Fatalf("want error for missing dir")
	}
}

type blockingImports struct {
	QAMappingService
	started  chan struct{}
	release  chan struct{}
	finished atomic.Bool
}

func (b *blockingImports) Import(ctx context.Context, bookID, unitID, name string, r io.Reader) (ImportResult, error) {
	select {
	case b.started <- struct{}{}:
	default:
	}
	<-b.release
	b.finished.Store(true)
	return ImportResult{}, nil
}

func TestMappingWatcherStopWaitsForImport(t *testing.T) {
	dir := t.TempDir()
	svc := &blockingImports{started: make(chan struct{}, 1), release: make(chan struct{})}
	w, err := NewMappingWatcher(testutil.Logger(t), svc, dir, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("NewMappingWatcher: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "book2.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	select {
	case <-svc.started:
	case <-time.After(5 * time.Second):
		t.Fatalf("import never started")
	}

	stopped := make(chan struct{})
	go func() {
		_ = w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
		t.Fatalf("Stop returned while an import was running")
	case <-time.After(50 * time.Millisecond):
	}
	close(svc.release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatalf("Stop did not return")
	}
	if !svc.finished.Load() {
		t.Fatalf("import should have finished before Stop returned")
	}
}

func TestMappingWatcherStopCancelsPendingImport(t *testing.T) {
	dir := t.TempDir()
	svc := &blockingImports{started: make(chan struct{}, 1), release: make(chan struct{})}
	close(svc.release)
	w, err := NewMappingWatcher(testutil.Logger(t), svc, dir, time.Hour)
	if err != nil {
		t.Fatalf("NewMappingWatcher: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "book2.json"), []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		_ = w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Stop blocked on a pending debounce timer")
	}
	if svc.finished.Load() {
		t.Fatalf("pending import should not run after Stop")
	}
}
