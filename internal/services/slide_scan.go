package services

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

var slideExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
}

var (
	bookSegRe = regexp.MustCompile(`(?i)^book[-_ ]?([a-z0-9]+)$`)
	unitSegRe = regexp.MustCompile(`(?i)^unit[-_ ]?([a-z0-9]+)$`)
)

// SlideLister lists slide objects under a prefix. gcp.SlideBucket satisfies it.
type SlideLister interface {
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	PublicURL(key string) string
}

type ResolveFunc func(ctx context.Context, in cascade.Input) (cascade.Outcome, error)

type SlideScanResult struct {
	Key      string        `json:"key"`
	Filename string        `json:"filename"`
	BookID   string        `json:"bookId"`
	UnitID   string        `json:"unitId"`
	URL      string        `json:"url,omitempty"`
	State    cascade.State `json:"state"`
	Source   qa.Source     `json:"source,omitempty"`
	Question string        `json:"question,omitempty"`
	Answer   string        `json:"answer,omitempty"`
	Category string        `json:"category,omitempty"`
	Country  string        `json:"country,omitempty"`
}

type SlideScanReport struct {
	Questions        []SlideScanResult `json:"questions"`
	TotalProcessed   int               `json:"totalProcessed"`
	TotalUnprocessed int               `json:"totalUnprocessed"`
	UnprocessedFiles []string          `json:"unprocessedFiles"`
}

type SlideScanOptions struct {
	Prefix string
	// BookID and UnitID override what the key path implies.
	BookID      string
	UnitID      string
	Concurrency int
}

// ScanSlides resolves every image under the prefix. Keys whose book or unit
// cannot be determined, or whose resolution fails, are reported as
// unprocessed.
func ScanSlides(ctx context.Context, log *logger.Logger, lister SlideLister, resolve ResolveFunc, opts SlideScanOptions) (SlideScanReport, error) {
	log = log.With("service", "SlideScan")
	keys, err := lister.ListKeys(ctx, opts.Prefix)
	if err != nil {
		return SlideScanReport{}, fmt.Errorf("list slides: %w", err)
	}
	images := keys[:0:0]
	for _, k := range keys {
		if IsSlideImage(k) {
			images = append(images, k)
		}
	}
	sort.Strings(images)

	results := make([]*SlideScanResult, len(images))
	limit := opts.Concurrency
	if limit <= 0 {
		limit = 8
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, key := range images {
		i, key := i, key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			book, unit := InferBookUnit(key)
			if opts.BookID != "" {
				book = opts.BookID
			}
			if opts.UnitID != "" {
				unit = opts.UnitID
			}
			if book == "" || unit == "" {
				log.Debug("slide has no book/unit", "key", key)
				return nil
			}
			filename := path.Base(key)
			out, err := resolve(gctx, cascade.Input{Filename: filename, BookID: book, UnitID: unit})
			if err != nil {
				log.Warn("slide resolve failed", "key", key, "error", err)
				return nil
			}
			results[i] = &SlideScanResult{
				Key:      key,
				Filename: filename,
				BookID:   book,
				UnitID:   unit,
				URL:      lister.PublicURL(key),
				State:    out.State,
				Source:   out.Source,
				Question: out.Result.Question,
				Answer:   out.Result.Answer,
				Category: out.Result.Category,
				Country:  out.Result.Country,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SlideScanReport{}, err
	}

	report := SlideScanReport{Questions: []SlideScanResult{}, UnprocessedFiles: []string{}}
	for i, r := range results {
		if r == nil {
			report.UnprocessedFiles = append(report.UnprocessedFiles, images[i])
			continue
		}
		report.Questions = append(report.Questions, *r)
	}
	report.TotalProcessed = len(report.Questions)
	report.TotalUnprocessed = len(report.UnprocessedFiles)
	log.Info("slide scan finished", "processed", report.TotalProcessed, "unprocessed", report.TotalUnprocessed)
	return report, nil
}

func IsSlideImage(key string) bool {
	return slideExtensions[strings.ToLower(path.Ext(key))]
}

// InferBookUnit reads "book3/unit2/..." style key segments.
func InferBookUnit(key string) (bookID, unitID string) {
	for _, seg := range strings.Split(filepath.ToSlash(key), "/") {
		if m := bookSegRe.FindStringSubmatch(seg); m != nil && bookID == "" {
			bookID = strings.ToLower(m[1])
		}
		if m := unitSegRe.FindStringSubmatch(seg); m != nil && unitID == "" {
			unitID = strings.ToLower(m[1])
		}
	}
	return bookID, unitID
}

// DirSlideLister lists slides from a local directory tree.
type DirSlideLister struct {
	root string
}

func NewDirSlideLister(root string) *DirSlideLister {
	return &DirSlideLister{root: root}
}

func (d *DirSlideLister) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (d *DirSlideLister) PublicURL(key string) string {
	abs, err := filepath.Abs(filepath.Join(d.root, filepath.FromSlash(key)))
	if err != nil {
		return ""
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}
