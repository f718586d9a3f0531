package render

import (
	"fmt"
	"image/color"
	"log/slog"

	"golang.org/x/image/font"

	"uhtml/internal/logging"
	"uhtml/pkg/html"
)

// Renderer turns a document into frames on a Canvas: one text draw per
// text-bearing node, at the node's position, in document order.
type Renderer struct {
	canvas     Canvas
	face       font.Face
	foreground color.Color
	background color.Color
	logger     *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColors sets the text and background colours.
func WithColors(foreground, background color.Color) Option {
	return func(r *Renderer) {
		if foreground != nil {
			r.foreground = foreground
		}
		if background != nil {
			r.background = background
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRenderer draws with face onto canvas, white text on black unless
// configured otherwise.
func NewRenderer(canvas Canvas, face font.Face, opts ...Option) *Renderer {
	r := &Renderer{
		canvas:     canvas,
		face:       face,
		foreground: color.White,
		background: color.Black,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RenderFrame clears the canvas, draws the document and presents the frame.
// A nil or empty document produces a blank frame.
func (r *Renderer) RenderFrame(doc *html.Document) error {
	r.canvas.Clear(r.background)
	if err := doc.Walk(r.drawNode); err != nil {
		return err
	}
	return r.canvas.Present()
}

func (r *Renderer) drawNode(n *html.Node) error {
	if n.Text() == "" {
		return nil
	}
	surface, err := r.canvas.TextSurface(n.Text(), r.face, r.foreground)
	if err != nil {
		return fmt.Errorf("rendering <%s>: %w", n.Tag(), err)
	}
	defer surface.Release()

	pos := n.Position()
	if err := r.canvas.Draw(surface, pos.X, pos.Y); err != nil {
		return fmt.Errorf("drawing <%s> at (%d, %d): %w", n.Tag(), pos.X, pos.Y, err)
	}
	r.logger.Debug("drew node", "tag", n.Tag(), "x", pos.X, "y", pos.Y)
	return nil
}
