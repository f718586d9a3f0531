package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// GGCanvas is a Canvas backed by a gg.Context.
type GGCanvas struct {
	context *gg.Context
	present func(image.Image) error
}

func NewGGCanvas(width, height int) *GGCanvas {
	return &GGCanvas{context: gg.NewContext(width, height)}
}

// NewGGCanvasForImage draws directly into target.
func NewGGCanvasForImage(target *image.RGBA) *GGCanvas {
	return &GGCanvas{context: gg.NewContextForRGBA(target)}
}

// OnPresent installs the function that receives each finished frame.
func (c *GGCanvas) OnPresent(fn func(image.Image) error) {
	c.present = fn
}

func (c *GGCanvas) Clear(col color.Color) {
	c.context.SetColor(col)
	c.context.Clear()
}

func (c *GGCanvas) TextSurface(s string, face font.Face, col color.Color) (Surface, error) {
	if face == nil {
		return nil, fmt.Errorf("%w: no font face", ErrSurface)
	}
	metrics := face.Metrics()
	ascent := float64(metrics.Ascent) / 64
	height := math.Max(float64(metrics.Height), float64(metrics.Ascent+metrics.Descent)) / 64

	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	width, _ := dc.MeasureString(s)
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: empty surface for %q", ErrSurface, s)
	}

	dc = gg.NewContext(w, h)
	dc.SetFontFace(face)
	dc.SetColor(col)
	dc.DrawString(s, 0, ascent)
	return &ggSurface{img: dc.Image()}, nil
}

func (c *GGCanvas) Draw(surface Surface, x, y int) error {
	s, ok := surface.(*ggSurface)
	if !ok || s.img == nil {
		return fmt.Errorf("%w: surface not drawable", ErrSurface)
	}
	c.context.DrawImage(s.img, x, y)
	return nil
}

func (c *GGCanvas) Present() error {
	if c.present == nil {
		return nil
	}
	if err := c.present(c.context.Image()); err != nil {
		return fmt.Errorf("%w: presenting frame: %w", ErrSurface, err)
	}
	return nil
}

// Image returns the current frame.
func (c *GGCanvas) Image() image.Image {
	return c.context.Image()
}

func (c *GGCanvas) SavePNG(path string) error {
	if err := c.context.SavePNG(path); err != nil {
		return fmt.Errorf("%w: saving %s: %w", ErrSurface, path, err)
	}
	return nil
}

type ggSurface struct {
	img image.Image
}

func (s *ggSurface) Bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Bounds()
}

func (s *ggSurface) Release() {
	s.img = nil
}
