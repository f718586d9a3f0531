// Package pipeline runs markup through the parser and the renderer in one
// call.
package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"uhtml/internal/logging"
	"uhtml/pkg/html"
	"uhtml/pkg/render"
	"uhtml/pkg/text"
)

// Renderer renders markup onto an image.
type Renderer interface {
	Render(markup string, target *image.RGBA) error
}

// Pipeline parses markup and draws one frame of it.
type Pipeline struct {
	fonts      text.FontConfig
	foreground color.Color
	background color.Color
	logger     *slog.Logger
}

type Option func(*Pipeline)

func WithFonts(fc text.FontConfig) Option {
	return func(p *Pipeline) { p.fonts = fc }
}

func WithColors(foreground, background color.Color) Option {
	return func(p *Pipeline) {
		p.foreground, p.background = foreground, background
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Pipeline using the built-in font unless configured
// otherwise.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		fonts:  text.DefaultFontConfig(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render parses markup and draws it onto target. The document is released
// before Render returns, whether or not drawing succeeded.
func (p *Pipeline) Render(markup string, target *image.RGBA) error {
	face, err := p.fonts.Load()
	if err != nil {
		return err
	}

	doc, err := html.Parse(markup, html.WithLogger(p.logger))
	if err != nil {
		return fmt.Errorf("parsing markup: %w", err)
	}
	defer doc.Release()

	canvas := render.NewGGCanvasForImage(target)
	renderer := render.NewRenderer(canvas, face,
		render.WithColors(p.foreground, p.background),
		render.WithLogger(p.logger))
	if err := renderer.RenderFrame(doc); err != nil {
		return fmt.Errorf("rendering markup: %w", err)
	}
	p.logger.Debug("rendered markup", "nodes", doc.Len(), "bounds", target.Bounds())
	return nil
}

var _ Renderer = (*Pipeline)(nil)
