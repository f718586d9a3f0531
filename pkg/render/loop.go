package render

import (
	"context"
	"time"

	"uhtml/pkg/html"
)

// Run owns doc until it returns: it renders a frame per tick, polling
// events once per frame, and releases whichever document it holds on every
// exit path. A reload event replaces the current document, which is
// released first. Run returns nil on a quit event and ctx.Err() when the
// context ends. An interval of zero renders frames back to back.
func (r *Renderer) Run(ctx context.Context, doc *html.Document, events EventSource, interval time.Duration) error {
	defer func() { doc.Release() }()

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for frame := 0; ; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch ev := events.Poll(); ev.Type {
		case EventQuit:
			r.logger.Debug("quit requested", "frames", frame)
			return nil
		case EventReload:
			r.logger.Info("reloading document", "nodes", ev.Doc.Len())
			doc.Release()
			doc = ev.Doc
		}

		if err := r.RenderFrame(doc); err != nil {
			return err
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
	}
}
