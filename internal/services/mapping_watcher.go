package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

// Accepts qa-mapping-book1.json, book1.xlsx and book1-unit2.xlsx style names.
var mappingFileRe = regexp.MustCompile(`(?i)^(?:qa-mapping-)?book[-_ ]?([a-z0-9]+)(?:[-_ ]unit[-_ ]?([a-z0-9]+))?\.(xlsx|xlsm|json)$`)

// ParseMappingFilename extracts the book and optional unit a mapping file
// belongs to.
func ParseMappingFilename(name string) (bookID, unitID string, ok bool) {
	m := mappingFileRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// MappingWatcher imports every mapping file in a directory at start and
// re-imports a file whenever it changes.
type MappingWatcher struct {
	log      *logger.Logger
	mappings QAMappingService
	dir      string
	debounce time.Duration

	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	// wg also counts pending debounce timers so Stop waits for their imports.
	debounceMu    sync.Mutex
	debounceTimer map[string]*time.Timer
	stopped       bool
}

func NewMappingWatcher(baseLog *logger.Logger, mappings QAMappingService, dir string, debounce time.Duration) (*MappingWatcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("mapping dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("mapping dir %q is not a directory", dir)
	}
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &MappingWatcher{
		log:           baseLog.With("service", "MappingWatcher", "dir", dir),
		mappings:      mappings,
		dir:           dir,
		debounce:      debounce,
		debounceTimer: map[string]*time.Timer{},
	}, nil
}

// Start runs the initial import synchronously, then watches in the background
// until ctx is done or Stop is called.
func (w *MappingWatcher) Start(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read mapping dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		w.importFile(ctx, filepath.Join(w.dir, e.Name()))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to add path to watcher: %w", err)
	}
	w.watcher = watcher

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	go w.eventLoop(ctx)
	w.log.Info("watching mapping files")
	return nil
}

// Stop ends watching and returns once no import started by the watcher is
// still running.
func (w *MappingWatcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
	}

	w.debounceMu.Lock()
	w.stopped = true
	for _, t := range w.debounceTimer {
		if t.Stop() {
			w.wg.Done()
		}
	}
	w.debounceTimer = map[string]*time.Timer{}
	w.debounceMu.Unlock()

	var err error
	if w.watcher != nil {
		err = w.watcher.Close()
	}
	w.wg.Wait()
	return err
}

func (w *MappingWatcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.schedule(ctx, event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

// schedule coalesces bursts of writes to one file into a single import.
func (w *MappingWatcher) schedule(ctx context.Context, path string) {
	if _, _, ok := ParseMappingFilename(path); !ok {
		return
	}
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()
	if w.stopped {
		return
	}
	if t, exists := w.debounceTimer[path]; exists && t.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		w.debounceMu.Lock()
		if w.debounceTimer[path] == t {
			delete(w.debounceTimer, path)
		}
		w.debounceMu.Unlock()
		if ctx.Err() != nil {
			return
		}
		w.importFile(ctx, path)
	})
	w.debounceTimer[path] = t
}

func (w *MappingWatcher) importFile(ctx context.Context, path string) {
	bookID, unitID, ok := ParseMappingFilename(path)
	if !ok {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		// Renamed away or removed between the event and now.
		w.log.Debug("mapping file not readable", "file", path, "error", err)
		return
	}
	defer f.Close()
	res, err := w.mappings.Import(ctx, bookID, unitID, path, f)
	if err != nil {
		w.log.Warn("mapping import failed", "file", path, "error", err)
		return
	}
	w.log.Info("mapping file imported", "file", filepath.Base(path), "book_id", bookID, "unit_id", unitID, "imported", res.Imported, "skipped", res.Skipped)
}
