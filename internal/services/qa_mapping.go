package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/mapping"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/dbctx"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// QAMappingService owns the imported mapping tables and the per-unit
// lookup stores built from them.
type QAMappingService interface {
	Entries(ctx context.Context, bookID, unitID string) ([]mapping.RawEntry, error)
	Store(ctx context.Context, bookID, unitID string) (*mapping.Store, error)
	Import(ctx context.Context, bookID, unitID, name string, r io.Reader) (ImportResult, error)
}

type qaMappingService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.QAMappingRepo

	group singleflight.Group

	mu      sync.RWMutex
	version uint64
	stores  map[string]*mapping.Store
	// memory holds imported rows when there is no database, keyed by book
	// then unit ("" for book-wide).
	memory map[string]map[string][]mapping.RawEntry
}

// NewQAMappingService keeps imports in memory when db or repo is nil.
func NewQAMappingService(db *gorm.DB, baseLog *logger.Logger, repo repos.QAMappingRepo) QAMappingService {
	return &qaMappingService{
		db:     db,
		log:    baseLog.With("service", "QAMappingService"),
		repo:   repo,
		stores: map[string]*mapping.Store{},
		memory: map[string]map[string][]mapping.RawEntry{},
	}
}

func (s *qaMappingService) persistent() bool { return s.db != nil && s.repo != nil }

func (s *qaMappingService) Entries(ctx context.Context, bookID, unitID string) ([]mapping.RawEntry, error) {
	bookID, unitID = strings.TrimSpace(bookID), strings.TrimSpace(unitID)
	if bookID == "" {
		return nil, fmt.Errorf("%w: bookId is required", apierr.ErrInvalidArgument)
	}
	if !s.persistent() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		units := s.memory[bookID]
		out := make([]mapping.RawEntry, 0, len(units[unitID])+len(units[""]))
		out = append(out, units[unitID]...)
		if unitID != "" {
			out = append(out, units[""]...)
		}
		return out, nil
	}
	rows, err := s.repo.ListForUnit(dbctx.New(ctx), bookID, unitID)
	if err != nil {
		return nil, fmt.Errorf("list mapping entries: %w", err)
	}
	out := make([]mapping.RawEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, mapping.RawEntry{
			BookID:      r.BookID,
			UnitID:      r.UnitID,
			Filename:    r.Filename,
			CodePattern: r.CodePattern,
			Question:    r.Question,
			Answer:      r.Answer,
			Source:      r.Source,
		})
	}
	return out, nil
}

// Store returns the cached lookup store for bookID/unitID, building it once
// even under concurrent callers.
func (s *qaMappingService) Store(ctx context.Context, bookID, unitID string) (*mapping.Store, error) {
	key := storeKey(bookID, unitID)
	s.mu.RLock()
	st, ok := s.stores[key]
	s.mu.RUnlock()
	if ok {
		return st, nil
	}
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		s.mu.RLock()
		version := s.version
		s.mu.RUnlock()
		raws, err := s.Entries(ctx, bookID, unitID)
		if err != nil {
			return nil, err
		}
		st, skipped := mapping.NewStore(bookID, unitID, raws)
		if skipped > 0 {
			s.log.Warn("mapping rows skipped", "book_id", bookID, "unit_id", unitID, "skipped", skipped)
		}
		s.mu.Lock()
		// An import that landed during the load makes this store stale.
		if s.version == version {
			s.stores[key] = st
		}
		s.mu.Unlock()
		return st, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*mapping.Store), nil
}

// Import replaces the rows for bookID/unitID with the contents of a .xlsx or
// .json mapping file. An empty unitID imports book-wide rows.
func (s *qaMappingService) Import(ctx context.Context, bookID, unitID, name string, r io.Reader) (ImportResult, error) {
	bookID, unitID = strings.TrimSpace(bookID), strings.TrimSpace(unitID)
	if bookID == "" {
		return ImportResult{}, fmt.Errorf("%w: bookId is required", apierr.ErrInvalidArgument)
	}
	raws, err := ParseMappingFile(name, r, bookID, unitID)
	if err != nil {
		return ImportResult{}, err
	}

	var res ImportResult
	valid := make([]mapping.Entry, 0, len(raws))
	kept := make([]mapping.RawEntry, 0, len(raws))
	for _, raw := range raws {
		e, err := mapping.Validate(raw)
		if err != nil {
			res.Skipped++
			continue
		}
		valid = append(valid, e)
		kept = append(kept, raw)
	}

	if s.persistent() {
		rows := make([]*types.QAMappingEntry, 0, len(valid))
		for i, e := range valid {
			rawJSON, _ := json.Marshal(kept[i])
			rows = append(rows, &types.QAMappingEntry{
				LookupKey:   e.Key(),
				Filename:    e.Filename,
				CodePattern: e.CodePattern,
				Question:    e.Question,
				Answer:      e.Answer,
				Source:      e.Source,
				Raw:         datatypes.JSON(rawJSON),
			})
		}
		n, err := s.repo.ReplaceForUnit(dbctx.New(ctx), bookID, unitID, rows)
		if err != nil {
			return ImportResult{}, err
		}
		res.Imported = n
	} else {
		seen := map[string]bool{}
		dedup := make([]mapping.RawEntry, 0, len(kept))
		for i, e := range valid {
			if seen[e.Key()] {
				continue
			}
			seen[e.Key()] = true
			raw := kept[i]
			raw.BookID, raw.UnitID = bookID, unitID
			dedup = append(dedup, raw)
		}
		s.mu.Lock()
		if s.memory[bookID] == nil {
			s.memory[bookID] = map[string][]mapping.RawEntry{}
		}
		s.memory[bookID][unitID] = dedup
		s.mu.Unlock()
		res.Imported = len(dedup)
	}

	s.invalidateBook(bookID)
	s.log.Info("mapping imported", "book_id", bookID, "unit_id", unitID, "file", name, "imported", res.Imported, "skipped", res.Skipped)
	return res, nil
}

// Book-wide rows feed every unit's store, so an import drops them all.
func (s *qaMappingService) invalidateBook(bookID string) {
	prefix := bookID + "\x00"
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version++
	for k := range s.stores {
		if strings.HasPrefix(k, prefix) {
			delete(s.stores, k)
		}
	}
}

func storeKey(bookID, unitID string) string {
	return strings.TrimSpace(bookID) + "\x00" + strings.TrimSpace(unitID)
}

// ParseMappingFile decodes a mapping export by extension.
func ParseMappingFile(name string, r io.Reader, bookID, unitID string) ([]mapping.RawEntry, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		rows, err := mapping.LoadExcel(r, bookID, unitID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apierr.ErrInvalidArgument, err)
		}
		return rows, nil
	case ".json":
		rows, err := mapping.LoadJSON(r, bookID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apierr.ErrInvalidArgument, err)
		}
		for i := range rows {
			rows[i].UnitID = unitID
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("%w: unsupported mapping file %q (want .xlsx or .json)", apierr.ErrInvalidArgument, name)
	}
}
