package overlay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LocalStore is the device tier. Load and Save are synchronous so the first
// outcome for a slide can already reflect local edits.
type LocalStore interface {
	Load(bookID, unitID string) (Entries, error)
	Save(bookID, unitID string, entries Entries) error
}

// Key is the storage key for one book/unit.
func Key(bookID, unitID string) string {
	return "qa-" + bookID + "-" + unitID
}

type localEntry struct {
	Question  string `json:"question,omitempty"`
	Answer    string `json:"answer,omitempty"`
	Deleted   bool   `json:"deleted,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func encodeEntries(entries Entries) ([]byte, error) {
	doc := make(map[string]localEntry, len(entries))
	for id, e := range entries {
		le := localEntry{Deleted: e.Deleted}
		if !e.Deleted {
			le.Question, le.Answer = e.Question, e.Answer
		}
		if !e.UpdatedAt.IsZero() {
			le.UpdatedAt = e.UpdatedAt.UTC().Format(time.RFC3339Nano)
		}
		doc[id] = le
	}
	return json.Marshal(doc)
}

func decodeEntries(b []byte) (Entries, error) {
	var doc map[string]localEntry
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	out := make(Entries, len(doc))
	for id, le := range doc {
		e := Edit{MaterialID: id, Question: le.Question, Answer: le.Answer, Deleted: le.Deleted}
		if le.UpdatedAt != "" {
			if t, err := time.Parse(time.RFC3339Nano, le.UpdatedAt); err == nil {
				e.UpdatedAt = t
			}
		}
		out[id] = e
	}
	return out, nil
}

// FileStore keeps one JSON file per book/unit under Dir.
type FileStore struct {
	Dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create local edit dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) path(bookID, unitID string) string {
	return filepath.Join(s.Dir, Key(bookID, unitID)+".json")
}

func (s *FileStore) Load(bookID, unitID string) (Entries, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path(bookID, unitID))
	if errors.Is(err, os.ErrNotExist) {
		return Entries{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read local edits: %w", err)
	}
	entries, err := decodeEntries(b)
	if err != nil {
		return nil, fmt.Errorf("decode local edits %s: %w", Key(bookID, unitID), err)
	}
	return entries, nil
}

// Save replaces the stored entries; an empty set removes the file.
func (s *FileStore) Save(bookID, unitID string, entries Entries) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.path(bookID, unitID)
	if len(entries) == 0 {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove local edits: %w", err)
		}
		return nil
	}
	b, err := encodeEntries(entries)
	if err != nil {
		return fmt.Errorf("encode local edits: %w", err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write local edits: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		return fmt.Errorf("replace local edits: %w", err)
	}
	return nil
}

// MemoryStore holds entries in the same encoded form FileStore writes.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Load(bookID, unitID string) (Entries, error) {
	s.mu.Lock()
	b, ok := s.data[Key(bookID, unitID)]
	s.mu.Unlock()
	if !ok {
		return Entries{}, nil
	}
	return decodeEntries(b)
}

func (s *MemoryStore) Save(bookID, unitID string, entries Entries) error {
	b, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(entries) == 0 {
		delete(s.data, Key(bookID, unitID))
		return nil
	}
	s.data[Key(bookID, unitID)] = b
	return nil
}

// Raw returns the stored JSON for a key, for inspection.
func (s *MemoryStore) Raw(bookID, unitID string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[Key(bookID, unitID)]
	return b, ok
}
