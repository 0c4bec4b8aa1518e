package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/visualenglish-backend/internal/data/repos/testutil"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
)

type fakeLister struct {
	keys []string
	err  error
}

func (f fakeLister) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, k := range f.keys {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f fakeLister) PublicURL(key string) string { return "https://cdn.example/" + key }

func TestInferBookUnit(t *testing.T) {
	t.Parallel()
	cases := []struct {
		key, book, unit string
	}{
		{"book3/unit2/01 I A.png", "3", "2"},
		{"visual-english/Book_1/Unit 12/x.jpg", "1", "12"},
		{"book2/x.png", "2", ""},
		{"misc/x.png", "", ""},
	}
	for _, tc := range cases {
		book, unit := InferBookUnit(tc.key)
		if book != tc.book || unit != tc.unit {
			t.Fatalf("%q: want=(%q,%q) got=(%q,%q)", tc.key, tc.book, tc.unit, book, unit)
		}
	}
}

func TestScanSlides(t *testing.T) {
	t.Parallel()
	log := testutil.Logger(t)
	mappings := NewQAMappingService(nil, log, nil)
	if _, err := mappings.Import(context.Background(), "3", "2", "book3.json", strings.NewReader(bookMappingJSON)); err != nil {
		t.Fatalf("Import: %v", err)
	}
	resolver := NewQAResolveService(log, cascade.NewEngines(log, nil), mappings, nil)

	lister := fakeLister{keys: []string{
		"book3/unit2/Big Red Bus.png",
		"book3/unit2/notes.txt",
		"book3/unit2/Hello There.jpg",
		"misc/orphan.png",
		"other/book4/unit1/x.png",
	}}
	report, err := ScanSlides(context.Background(), log, lister, resolver.Resolve, SlideScanOptions{Concurrency: 2})
	if err != nil {
		t.Fatalf("ScanSlides: %v", err)
	}
	if report.TotalProcessed != 3 || report.TotalUnprocessed != 1 || report.UnprocessedFiles[0] != "misc/orphan.png" {
		t.Fatalf("report: got=%+v", report)
	}
	bus := report.Questions[0]
	if bus.Key != "book3/unit2/Big Red Bus.png" || bus.State != cascade.StateResolved || bus.Answer != "It is a bus." {
		t.Fatalf("bus: got=%+v", bus)
	}
	if bus.URL != "https://cdn.example/book3/unit2/Big Red Bus.png" {
		t.Fatalf("url: got=%q", bus.URL)
	}
	if report.Questions[1].State != cascade.StateNoData {
		t.Fatalf("hello: got=%+v", report.Questions[1])
	}

	report, err = ScanSlides(context.Background(), log, lister, resolver.Resolve, SlideScanOptions{Prefix: "misc/", BookID: "3", UnitID: "2"})
	if err != nil || report.TotalProcessed != 1 || report.Questions[0].BookID != "3" {
		t.Fatalf("override: report=%+v err=%v", report, err)
	}

	_, err = ScanSlides(context.Background(), log, fakeLister{err: errors.New("denied")}, resolver.Resolve, SlideScanOptions{})
	if err == nil {
		t.Fatalf("list failure: want error")
	}
}

func TestDirSlideLister(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	for _, rel := range []string{"book1/unit1/a.png", "book1/unit2/b.png", "readme.md"} {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	d := NewDirSlideLister(root)
	keys, err := d.ListKeys(context.Background(), "book1/unit1")
	if err != nil {
		t.Fatalf("ListKeys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "book1/unit1/a.png" {
		t.Fatalf("keys: got=%v", keys)
	}
	if u := d.PublicURL("book1/unit1/a.png"); !strings.HasPrefix(u, "file://") || !strings.HasSuffix(u, "/book1/unit1/a.png") {
		t.Fatalf("PublicURL: got=%q", u)
	}
}
