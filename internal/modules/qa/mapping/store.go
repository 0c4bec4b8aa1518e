package mapping

import (
	"sort"
	"strings"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
)

// Store answers lookups for one book/unit. It is immutable once built and
// safe for concurrent use.
type Store struct {
	bookID  string
	unitID  string
	entries []Entry
	byKey   map[string]int
	byCode  map[string]int
}

// NewStore validates raws and keeps those for bookID that are book-wide or
// belong to unitID. skipped counts rows that failed validation; rows for
// other books or units are dropped without counting.
func NewStore(bookID, unitID string, raws []RawEntry) (*Store, int) {
	bookID = strings.TrimSpace(bookID)
	unitID = strings.TrimSpace(unitID)
	skipped := 0
	kept := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		e, err := Validate(raw)
		if err != nil {
			skipped++
			continue
		}
		if e.BookID != bookID || (e.UnitID != "" && e.UnitID != unitID) {
			continue
		}
		kept = append(kept, e)
	}

	// Unit-specific rows shadow book-wide rows with the same key.
	sort.SliceStable(kept, func(i, j int) bool {
		wi, wj := kept[i].UnitID == "", kept[j].UnitID == ""
		if wi != wj {
			return !wi
		}
		return kept[i].Key() < kept[j].Key()
	})

	s := &Store{
		bookID:  bookID,
		unitID:  unitID,
		entries: kept,
		byKey:   make(map[string]int, len(kept)),
		byCode:  make(map[string]int),
	}
	for i, e := range kept {
		if _, dup := s.byKey[e.Key()]; !dup {
			s.byKey[e.Key()] = i
		}
		if e.CodePattern != "" {
			if _, dup := s.byCode[e.code.Key()]; !dup {
				s.byCode[e.code.Key()] = i
			}
		}
	}
	return s, skipped
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Entries returns a copy of the store's rows in lookup order.
func (s *Store) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Lookup tries, in order: the exact filename, the filename without
// extension, the extracted code, spelling variants of that code, and
// finally the best partial match.
func (s *Store) Lookup(filename string) (qa.Result, bool) {
	if s == nil || len(s.entries) == 0 {
		return qa.Result{}, false
	}
	f := qa.ParseFilename(filename)
	if f.IsEmpty() {
		return qa.Result{}, false
	}
	if i, ok := s.byKey[f.Name]; ok {
		return s.hit(i, "exact")
	}
	if i, ok := s.byKey[f.Base]; ok {
		return s.hit(i, "basename")
	}
	code, hasCode := f.Code()
	if hasCode {
		if i, ok := s.byKey[code.String()]; ok {
			return s.hit(i, "code")
		}
		if i, ok := s.byCode[code.Key()]; ok {
			return s.hit(i, "code")
		}
		for _, v := range code.Variants() {
			if i, ok := s.byKey[v]; ok {
				return s.hit(i, "code-variant")
			}
		}
	}
	if i, ok := s.partial(f, code, hasCode); ok {
		return s.hit(i, "partial")
	}
	return qa.Result{}, false
}

// partial scores every entry: a key contained in the filename scores its
// length, a filename contained in a key scores half its own length, and
// overlapping code patterns score the shorter code's length. Ties keep the
// earlier entry. Scores are doubled to stay integral.
func (s *Store) partial(f qa.Filename, code qa.CodePattern, hasCode bool) (int, bool) {
	best, bestScore := -1, 0
	canon := code.String()
	for i, e := range s.entries {
		score := 0
		key := e.Key()
		switch {
		case strings.Contains(f.Name, key):
			score = 2 * len(key)
		case len(f.Base) > 3 && strings.Contains(key, f.Base):
			score = len(f.Base)
		}
		if hasCode && e.CodePattern != "" &&
			(strings.Contains(e.CodePattern, canon) || strings.Contains(canon, e.CodePattern)) {
			if c := 2 * min(len(e.CodePattern), len(canon)); c > score {
				score = c
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, best >= 0
}

func (s *Store) hit(i int, rule string) (qa.Result, bool) {
	res := s.entries[i].Result()
	return res.WithCategory("mapping-" + rule), res.HasData
}
