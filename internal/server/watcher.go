package server

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/shanksdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/shanksdocs/internal/logfields"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports changes below a content directory and to individual
// files such as the navigation tree.
type Watcher struct {
	fsw      *fsnotify.Watcher
	root     string
	files    map[string]bool
	debounce time.Duration
}

// NewWatcher watches dir recursively plus each of files. Files are watched
// through their parent directory so atomic-rename saves are seen.
func NewWatcher(dir string, files ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to create file watcher").Build()
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		_ = fsw.Close()
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot watch content directory").
			WithContext("path", dir).
			Build()
	}
	w := &Watcher{fsw: fsw, root: root, files: map[string]bool{}, debounce: DefaultDebounce}

	if err := w.addTree(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		w.files[abs] = true
		if err := fsw.Add(filepath.Dir(abs)); err != nil {
			slog.Warn("watch add failed", logfields.Path(abs), logfields.Error(err))
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot watch content directory").
					WithContext("path", root).
					Build()
			}
			return nil
		}
		if d.IsDir() {
			if err := w.fsw.Add(path); err != nil {
				slog.Warn("watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// Run delivers one call to onChange per debounced burst of relevant events
// until ctx is canceled. Calls to onChange never overlap.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer func() { _ = w.fsw.Close() }()

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	fire := make(chan struct{}, 1)
	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case fire <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fire:
			onChange()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.handle(ev) {
				trigger()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watcher error", logfields.Error(err))
		}
	}
}

// handle reports whether ev should trigger a reload. Events outside the
// content tree only count for watched files. New directories are added to
// the watch set.
func (w *Watcher) handle(ev fsnotify.Event) bool {
	if ignored(ev.Name) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return false
	}
	if w.files[abs] {
		slog.Debug("Watched file changed", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
		return true
	}
	if !w.inContent(abs) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = w.addTree(ev.Name)
			return true
		}
	}
	if strings.EqualFold(filepath.Ext(ev.Name), ".md") || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		slog.Debug("Content change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
		return true
	}
	return false
}

func (w *Watcher) inContent(abs string) bool {
	rel, err := filepath.Rel(w.root, abs)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ignored filters hidden files and editor swap files.
func ignored(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "."),
		strings.HasSuffix(base, "~"),
		strings.HasSuffix(base, ".swp"),
		strings.HasSuffix(base, ".swx"),
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"):
		return true
	}
	return false
}
