package lexicon

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Provider hands out the current lexicon snapshot. Sessions capture one
// snapshot at creation and keep it for their whole lifetime, so a reload
// never changes matching semantics mid-consultation.
type Provider interface {
	Current() *Lexicon
}

// Static is a Provider that always returns the same lexicon.
type Static struct{ Lexicon *Lexicon }

// Current returns the fixed lexicon.
func (s Static) Current() *Lexicon { return s.Lexicon }

// Watcher reloads a lexicon file on change and swaps the snapshot
// atomically. It implements Provider.
type Watcher struct {
	path    string
	current atomic.Pointer[Lexicon]
	fsw     *fsnotify.Watcher
	reloads func() // optional metrics hook
}

// NewWatcher loads path once and starts watching its directory for changes.
// onReload, when non-nil, is invoked after every successful reload.
func NewWatcher(ctx context.Context, path string, onReload func()) (*Watcher, error) {
	initial, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace files on save.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{path: path, fsw: fsw, reloads: onReload}
	w.current.Store(initial)

	go w.run(ctx)
	return w, nil
}

// Current returns the latest lexicon snapshot.
func (w *Watcher) Current() *Lexicon { return w.current.Load() }

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error { return w.fsw.Close() }

func (w *Watcher) run(ctx context.Context) {
	logger := log.With().Str("component", "lexicon-watcher").Str("path", w.path).Logger()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reloaded, err := LoadFile(w.path)
			if err != nil {
				// keep serving the previous snapshot
				logger.Error().Err(err).Msg("Lexicon reload failed, keeping previous snapshot")
				continue
			}
			w.current.Store(reloaded)
			if w.reloads != nil {
				w.reloads()
			}
			logger.Info().Int("entries", len(reloaded.Entries())).Msg("Lexicon reloaded")
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Error().Err(err).Msg("Lexicon watcher error")
		}
	}
}
