// Package display drives the question/answer panel for one slide at a time:
// it resolves the slide, applies server responses as they arrive and carries
// edits to both storage tiers.
package display

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/mapping"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/overlay"
	"github.com/yungbote/visualenglish-backend/internal/platform/apierr"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// LocalOnlyNotice is shown when an edit could not be stored on the server.
const LocalOnlyNotice = "Saved on this device only"

var ErrNotMounted = errors.New("no slide mounted")

type Session struct {
	log     *logger.Logger
	api     API
	local   overlay.LocalStore
	engines cascade.Engines

	mu      sync.Mutex
	gen     uint64
	slide   cascade.Input
	mounted bool
	edits   *overlay.Overlay
	store   *mapping.Store
	outcome cascade.Outcome
	seq     uint64
	notice  string
	subs    map[int]*subscriber
	nextSub int

	// writeSeq counts local writes; written holds the last one per material.
	writeSeq uint64
	written  map[string]uint64

	wg sync.WaitGroup
}

func NewSession(log *logger.Logger, api API, local overlay.LocalStore, engines cascade.Engines) *Session {
	if log == nil {
		log = logger.Nop()
	}
	if local == nil {
		local = overlay.NewMemoryStore()
	}
	if engines.Pattern == nil || engines.Legacy == nil || engines.Fallback == nil {
		engines = cascade.NewEngines(log, nil)
	}
	return &Session{
		log:     log.With("service", "SlideSession"),
		api:     api,
		local:   local,
		engines: engines,
		outcome: cascade.Outcome{State: cascade.StateUnresolved},
		subs:    map[int]*subscriber{},
		written: map[string]uint64{},
	}
}

// Mount shows slide. The local tier is read before the first outcome is
// produced; mapping entries and server edits are then fetched concurrently
// and applied only while slide is still the one shown.
func (s *Session) Mount(ctx context.Context, slide cascade.Input) cascade.Outcome {
	edits := overlay.New(s.log, s.local, slide.BookID, slide.UnitID)

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.slide = slide
	s.mounted = true
	s.edits = edits
	s.store = nil
	s.notice = ""
	since := s.writeSeq
	out, seq := s.resolveLocked()
	s.mu.Unlock()
	s.publish(out, seq)

	if s.api == nil {
		return out
	}
	s.wg.Add(2)
	go s.fetchMapping(ctx, gen, slide)
	go s.fetchEdits(ctx, gen, since, slide)
	return out
}

func (s *Session) fetchMapping(ctx context.Context, gen uint64, slide cascade.Input) {
	defer s.wg.Done()
	rows, err := s.api.MappingEntries(ctx, slide.BookID, slide.UnitID)
	if err != nil {
		s.log.Warn("mapping fetch failed", "book_id", slide.BookID, "unit_id", slide.UnitID, "error", err)
		return
	}
	store, skipped := mapping.NewStore(slide.BookID, slide.UnitID, rows)
	if skipped > 0 {
		s.log.Debug("mapping rows skipped", "count", skipped, "book_id", slide.BookID, "unit_id", slide.UnitID)
	}
	s.apply(gen, func() { s.store = store })
}

// fetchEdits was requested when the write counter stood at since. Materials
// written locally after that keep their current server entry, so a response
// that was in flight during an edit, delete or reset cannot undo it.
func (s *Session) fetchEdits(ctx context.Context, gen, since uint64, slide cascade.Input) {
	defer s.wg.Done()
	edits, err := s.api.ContentEdits(ctx, slide.BookID, slide.UnitID)
	if err != nil {
		s.log.Warn("content edit fetch failed", "book_id", slide.BookID, "unit_id", slide.UnitID, "error", err)
		return
	}
	s.apply(gen, func() {
		var pinned map[string]bool
		for id, at := range s.written {
			if at > since {
				if pinned == nil {
					pinned = map[string]bool{}
				}
				pinned[id] = true
			}
		}
		if len(pinned) > 0 {
			s.log.Debug("keeping newer local writes over fetched edits", "materials", len(pinned))
		}
		s.edits.SetServerExcept(edits, pinned)
	})
}

// apply runs fn and re-resolves unless a newer slide has been mounted.
func (s *Session) apply(gen uint64, fn func()) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Debug("dropping stale response", "generation", gen)
		return
	}
	fn()
	out, seq := s.resolveLocked()
	s.mu.Unlock()
	s.publish(out, seq)
}

func (s *Session) resolveLocked() (cascade.Outcome, uint64) {
	s.outcome = s.engines.Resolver(s.log, s.store).Resolve(s.slide, s.edits)
	s.seq++
	return s.outcome, s.seq
}

// Edit stores question and answer for the mounted material, locally first.
// A failed or unpersisted server write leaves the local edit in place and
// sets LocalOnlyNotice.
func (s *Session) Edit(ctx context.Context, question, answer string) (cascade.Outcome, error) {
	question, answer = strings.TrimSpace(question), strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return s.Outcome(), fmt.Errorf("%w: question and answer are required", apierr.ErrInvalidArgument)
	}
	gen, slide, edits, err := s.beginWrite()
	if err != nil {
		return cascade.Outcome{}, err
	}
	local, err := edits.PutLocal(slide.MaterialID, question, answer)
	if err != nil {
		s.log.Warn("local edit not persisted", "material_id", slide.MaterialID, "error", err)
	}
	s.apply(gen, func() {})

	res, err := s.saveRemote(ctx, EditRequest{
		BookID:       slide.BookID,
		UnitID:       slide.UnitID,
		MaterialID:   slide.MaterialID,
		EditType:     EditTypeQA,
		QuestionText: question,
		AnswerText:   answer,
	})
	s.finishWrite(gen, local, res, err)
	return s.Outcome(), nil
}

// Delete hides the mounted material.
func (s *Session) Delete(ctx context.Context) (cascade.Outcome, error) {
	gen, slide, edits, err := s.beginWrite()
	if err != nil {
		return cascade.Outcome{}, err
	}
	local, err := edits.DeleteLocal(slide.MaterialID)
	if err != nil {
		s.log.Warn("local delete not persisted", "material_id", slide.MaterialID, "error", err)
	}
	s.apply(gen, func() {})

	res, err := s.saveRemote(ctx, EditRequest{
		BookID:     slide.BookID,
		UnitID:     slide.UnitID,
		MaterialID: slide.MaterialID,
		EditType:   EditTypeDelete,
		IsDeleted:  true,
	})
	s.finishWrite(gen, local, res, err)
	return s.Outcome(), nil
}

// Reset removes the material's edit from both tiers and resolves the slide
// from the mapping store down.
func (s *Session) Reset(ctx context.Context) (cascade.Outcome, error) {
	gen, slide, edits, err := s.beginWrite()
	if err != nil {
		return cascade.Outcome{}, err
	}
	if err := edits.ClearLocal(slide.MaterialID); err != nil {
		s.log.Warn("local reset not persisted", "material_id", slide.MaterialID, "error", err)
	}
	s.apply(gen, func() { edits.DropServer(slide.MaterialID) })

	if s.api == nil {
		return s.Outcome(), nil
	}
	res, err := s.api.DeleteEdit(ctx, slide.BookID, slide.UnitID, slide.MaterialID)
	if err != nil {
		s.log.Warn("server reset failed", "material_id", slide.MaterialID, "error", err)
	}
	s.apply(gen, func() {
		if err != nil || !res.DBAvailable {
			s.notice = LocalOnlyNotice
		} else {
			s.notice = ""
		}
	})
	return s.Outcome(), nil
}

// Flag reports the mounted slide's question for review. Empty fields are
// filled from the slide and its current outcome.
func (s *Session) Flag(ctx context.Context, req FlagRequest) error {
	if s.api == nil {
		return fmt.Errorf("flag question: %w", apierr.ErrUnavailable)
	}
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return ErrNotMounted
	}
	slide, out := s.slide, s.outcome
	s.mu.Unlock()

	if req.BookID == "" {
		req.BookID = slide.BookID
	}
	if req.UnitID == "" {
		req.UnitID = slide.UnitID
	}
	if req.MaterialID == "" {
		req.MaterialID = slide.MaterialID
	}
	if req.Filename == "" {
		req.Filename = slide.Filename
	}
	if req.QuestionText == "" {
		req.QuestionText = out.Result.Question
	}
	if req.AnswerText == "" {
		req.AnswerText = out.Result.Answer
	}
	if err := s.api.FlagQuestion(ctx, req); err != nil {
		return fmt.Errorf("flag question: %w", err)
	}
	return nil
}

// beginWrite returns the mounted slide and records a local write to its
// material.
func (s *Session) beginWrite() (uint64, cascade.Input, *overlay.Overlay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.mounted {
		return 0, cascade.Input{}, nil, ErrNotMounted
	}
	if s.slide.MaterialID == "" {
		return 0, cascade.Input{}, nil, fmt.Errorf("%w: slide has no material id", apierr.ErrInvalidArgument)
	}
	s.writeSeq++
	s.written[s.slide.MaterialID] = s.writeSeq
	return s.gen, s.slide, s.edits, nil
}

func (s *Session) saveRemote(ctx context.Context, req EditRequest) (SaveResult, error) {
	if s.api == nil {
		return SaveResult{}, apierr.ErrUnavailable
	}
	res, err := s.api.SaveEdit(ctx, req)
	if err != nil {
		s.log.Warn("server edit failed", "material_id", req.MaterialID, "edit_type", req.EditType, "error", err)
	}
	return res, err
}

func (s *Session) finishWrite(gen uint64, local overlay.Edit, res SaveResult, err error) {
	s.apply(gen, func() {
		if err != nil || !res.DBAvailable {
			s.notice = LocalOnlyNotice
			return
		}
		s.notice = ""
		s.edits.PutServer(local)
	})
}

func (s *Session) Outcome() cascade.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Notice is the user-facing message from the last write, or "".
func (s *Session) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

type subscriber struct {
	fn   func(cascade.Outcome)
	mu   sync.Mutex
	last uint64
}

// deliver calls fn unless a newer outcome already reached this subscriber.
func (sub *subscriber) deliver(out cascade.Outcome, seq uint64) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if seq <= sub.last {
		return
	}
	sub.last = seq
	sub.fn(out)
}

// Subscribe registers fn for every new outcome and returns a function that
// removes it. fn is called without the session lock held and sees outcomes in
// the order they were produced; superseded outcomes may be skipped. fn must
// not call Mount, Edit, Delete or Reset on the same session.
func (s *Session) Subscribe(fn func(cascade.Outcome)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = &subscriber{fn: fn, last: s.seq}
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) publish(out cascade.Outcome, seq uint64) {
	s.mu.Lock()
	subs := make([]*subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()
	for _, sub := range subs {
		sub.deliver(out, seq)
	}
}

// Wait blocks until every fetch started by Mount has finished.
func (s *Session) Wait() { s.wg.Wait() }
