// Package watch re-parses a markup file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"uhtml/internal/logging"
	"uhtml/pkg/html"
	"uhtml/pkg/render"
)

// DefaultDebounce coalesces the bursts of events editors produce when
// saving a file.
const DefaultDebounce = 100 * time.Millisecond

// Watcher turns writes to one markup file into render.EventReload events.
// Each event hands a freshly parsed document to the receiver, which owns it
// from then on. Contents that fail to parse or hold no element are logged
// and skipped, so the viewer keeps showing the last good document.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

type Option func(*Watcher)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

func New(path string, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx ends, sending reload events on out. The directory
// is watched rather than the file so that editors which replace the file
// on save keep being followed.
func (w *Watcher) Run(ctx context.Context, out chan<- render.Event) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watching %s: %w", w.path, err)
	}
	target := filepath.Clean(w.path)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "path", w.path, "error", err)

		case <-pending:
			pending = nil
			doc, err := w.load()
			if err != nil {
				w.logger.Warn("keeping previous document", "path", w.path, "error", err)
				continue
			}
			if doc.Root() == nil {
				// Usually a save caught halfway through.
				w.logger.Debug("keeping previous document", "path", w.path, "reason", "no elements")
				doc.Release()
				continue
			}
			// The receiver owns doc once the send succeeds.
			nodes := doc.Len()
			select {
			case out <- render.Event{Type: render.EventReload, Doc: doc}:
				w.logger.Info("reloaded markup", "path", w.path, "nodes", nodes)
			case <-ctx.Done():
				doc.Release()
				return nil
			}
		}
	}
}

func (w *Watcher) load() (*html.Document, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return nil, err
	}
	return html.Parse(string(data), html.WithLogger(w.logger))
}
