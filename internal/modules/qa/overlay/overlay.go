// Package overlay keeps per-material Q&A edits for one book/unit in two
// tiers, the device and the server, and decides which edit is in effect.
package overlay

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// Edit is a user's override for one material. A deleted edit hides the slide.
type Edit struct {
	MaterialID string    `json:"materialId"`
	Question   string    `json:"question,omitempty"`
	Answer     string    `json:"answer,omitempty"`
	Deleted    bool      `json:"deleted,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasContent reports whether the edit supplies a question and answer.
func (e Edit) HasContent() bool {
	return !e.Deleted && strings.TrimSpace(e.Question) != "" && strings.TrimSpace(e.Answer) != ""
}

// Entries maps material id to edit.
type Entries map[string]Edit

func (e Entries) clone() Entries {
	out := make(Entries, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

type Overlay struct {
	log    *logger.Logger
	store  LocalStore
	bookID string
	unitID string
	now    func() time.Time

	mu     sync.RWMutex
	local  Entries
	server Entries
}

// New reads the local tier synchronously. An unreadable local tier is logged
// and treated as empty.
func New(log *logger.Logger, store LocalStore, bookID, unitID string) *Overlay {
	if log == nil {
		log = logger.Nop()
	}
	if store == nil {
		store = NewMemoryStore()
	}
	o := &Overlay{
		log:    log.With("service", "EditOverlay", "book_id", bookID, "unit_id", unitID),
		store:  store,
		bookID: bookID,
		unitID: unitID,
		now:    func() time.Time { return time.Now().UTC() },
		local:  Entries{},
		server: Entries{},
	}
	local, err := store.Load(bookID, unitID)
	if err != nil {
		o.log.Warn("local edits unreadable; starting empty", "error", err)
	} else if local != nil {
		o.local = local
	}
	return o
}

func (o *Overlay) BookID() string { return o.bookID }
func (o *Overlay) UnitID() string { return o.unitID }

// Effective returns the edit in force for materialID. The newer of the two
// tiers wins; on a tie, or when the local edit carries no timestamp, the
// server edit wins.
func (o *Overlay) Effective(materialID string) (Edit, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	l, hasLocal := o.local[materialID]
	s, hasServer := o.server[materialID]
	switch {
	case hasLocal && hasServer:
		if !l.UpdatedAt.IsZero() && l.UpdatedAt.After(s.UpdatedAt) {
			return l, true
		}
		return s, true
	case hasLocal:
		return l, true
	case hasServer:
		return s, true
	}
	return Edit{}, false
}

// PutLocal records a question/answer edit on the device tier. The in-memory
// tier is updated even when persisting fails.
func (o *Overlay) PutLocal(materialID, question, answer string) (Edit, error) {
	e := Edit{
		MaterialID: materialID,
		Question:   strings.TrimSpace(question),
		Answer:     strings.TrimSpace(answer),
		UpdatedAt:  o.now(),
	}
	return e, o.putLocal(e)
}

func (o *Overlay) DeleteLocal(materialID string) (Edit, error) {
	e := Edit{MaterialID: materialID, Deleted: true, UpdatedAt: o.now()}
	return e, o.putLocal(e)
}

func (o *Overlay) putLocal(e Edit) error {
	o.mu.Lock()
	o.local[e.MaterialID] = e
	snapshot := o.local.clone()
	o.mu.Unlock()
	return o.store.Save(o.bookID, o.unitID, snapshot)
}

// ClearLocal drops the device edit for materialID.
func (o *Overlay) ClearLocal(materialID string) error {
	o.mu.Lock()
	if _, ok := o.local[materialID]; !ok {
		o.mu.Unlock()
		return nil
	}
	delete(o.local, materialID)
	snapshot := o.local.clone()
	o.mu.Unlock()
	return o.store.Save(o.bookID, o.unitID, snapshot)
}

// SetServer replaces the server tier. When a material appears more than
// once the newest edit is kept.
func (o *Overlay) SetServer(edits []Edit) {
	o.SetServerExcept(edits, nil)
}

// SetServerExcept replaces the server tier but leaves the current entries of
// pinned materials untouched, ignoring whatever edits carries for them.
func (o *Overlay) SetServerExcept(edits []Edit, pinned map[string]bool) {
	sorted := append([]Edit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].UpdatedAt.Before(sorted[j].UpdatedAt) })
	next := make(Entries, len(sorted))
	for _, e := range sorted {
		if e.MaterialID == "" || pinned[e.MaterialID] {
			continue
		}
		next[e.MaterialID] = e
	}
	o.mu.Lock()
	for id := range pinned {
		if cur, ok := o.server[id]; ok {
			next[id] = cur
		}
	}
	o.server = next
	o.mu.Unlock()
}

// PutServer records a single edit the server has accepted.
func (o *Overlay) PutServer(e Edit) {
	if e.MaterialID == "" {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if cur, ok := o.server[e.MaterialID]; ok && cur.UpdatedAt.After(e.UpdatedAt) {
		return
	}
	o.server[e.MaterialID] = e
}

func (o *Overlay) DropServer(materialID string) {
	o.mu.Lock()
	delete(o.server, materialID)
	o.mu.Unlock()
}

// Local returns the device tier's edit for materialID.
func (o *Overlay) Local(materialID string) (Edit, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	e, ok := o.local[materialID]
	return e, ok
}
