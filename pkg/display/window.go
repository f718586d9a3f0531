// Package display shows rendered frames in a fyne window and turns the
// window's close button into a quit event for the render loop.
package display

import (
	"image"
	"image/draw"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"uhtml/pkg/render"
)

// Window is a fyne window that presents frames and reports quit requests.
// Fyne owns the UI thread, so frames reach the widget through fyne.Do.
type Window struct {
	app   fyne.App
	win   fyne.Window
	image *canvas.Image

	quitOnce sync.Once
	quit     chan struct{}
}

// New creates a window of the given size on app. The window is not shown
// until Run.
func New(app fyne.App, title string, width, height int) *Window {
	w := &Window{
		app:  app,
		win:  app.NewWindow(title),
		quit: make(chan struct{}),
	}
	blank := image.NewRGBA(image.Rect(0, 0, width, height))
	w.image = canvas.NewImageFromImage(blank)
	w.image.FillMode = canvas.ImageFillOriginal
	w.win.SetContent(w.image)
	w.win.Resize(fyne.NewSize(float32(width), float32(height)))
	w.win.SetFixedSize(true)

	// Closing only asks the render loop to stop; the window goes away
	// once the loop has released its document.
	w.win.SetCloseIntercept(w.requestQuit)
	return w
}

func (w *Window) requestQuit() {
	w.quitOnce.Do(func() { close(w.quit) })
}

// Poll implements render.EventSource.
func (w *Window) Poll() render.Event {
	select {
	case <-w.quit:
		return render.Event{Type: render.EventQuit}
	default:
		return render.Event{Type: render.EventNone}
	}
}

// Present shows frame in the window. The frame is copied, so the caller may
// draw the next one into the same image straight away.
func (w *Window) Present(frame image.Image) error {
	snap := snapshot(frame)
	fyne.Do(func() {
		w.image.Image = snap
		w.image.Refresh()
	})
	return nil
}

// Run shows the window and runs loop on its own goroutine until it
// returns, then closes the window. It blocks on the UI thread and returns
// loop's error.
func (w *Window) Run(loop func() error) error {
	errc := make(chan error, 1)
	go func() {
		err := loop()
		errc <- err
		fyne.Do(func() {
			w.win.Close()
			w.app.Quit()
		})
	}()
	w.win.ShowAndRun()
	w.requestQuit()
	return <-errc
}

func snapshot(frame image.Image) *image.RGBA {
	b := frame.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, frame, b.Min, draw.Src)
	return out
}

var _ render.EventSource = (*Window)(nil)
