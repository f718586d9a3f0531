package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"uhtml/internal/source"
	"uhtml/pkg/display"
	"uhtml/pkg/html"
	"uhtml/pkg/render"
	"uhtml/pkg/watch"
)

func newViewCmd(a *app) *cobra.Command {
	var watchFile bool
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Show markup in a window",
		Long: `View opens a window and redraws the markup every frame until the window is
closed. With --watch the file is parsed again whenever it changes; markup
that fails to parse is reported and the previous tree stays on screen.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchFile && (len(args) == 0 || !source.IsFile(args[0])) {
				return errors.New("--watch needs a file argument")
			}
			markup, err := readMarkup(cmd, args)
			if err != nil {
				return err
			}
			path := ""
			if watchFile {
				path = args[0]
			}
			return a.view(cmd.Context(), markup, path)
		},
	}
	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload the file when it changes")
	return cmd
}

// view runs the render loop against a fyne window. When path is set, a
// watcher feeds reparsed documents to the loop.
func (a *app) view(ctx context.Context, markup, path string) error {
	cfg := a.cfg
	face, err := cfg.FontConfig().Load()
	if err != nil {
		return err
	}
	doc, err := html.Parse(markup, html.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("parsing markup: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	win := display.New(fyneapp.NewWithID("uhtml"), cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	canvas := render.NewGGCanvas(cfg.Window.Width, cfg.Window.Height)
	canvas.OnPresent(win.Present)
	renderer := render.NewRenderer(canvas, face,
		render.WithColors(cfg.TextColor(), cfg.BackgroundColor()),
		render.WithLogger(a.logger))

	var events render.EventSource = win
	watchDone := make(chan struct{})
	if path != "" {
		reloads := make(chan render.Event)
		w := watch.New(path, watch.WithLogger(a.logger))
		go func() {
			defer close(watchDone)
			if err := w.Run(ctx, reloads); err != nil {
				a.logger.Error("watcher stopped", "path", path, "error", err)
			}
		}()
		events = render.Merge(win, render.NewChannelEvents(reloads))
	} else {
		close(watchDone)
	}

	a.logger.Info("opening window", "nodes", doc.Len(),
		"width", cfg.Window.Width, "height", cfg.Window.Height)
	err = win.Run(func() error {
		return renderer.Run(ctx, doc, events, cfg.FrameInterval())
	})

	// The watcher releases any document it could not hand over.
	stop()
	<-watchDone

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
