// Package render draws a parsed document onto a display surface.
//
// The drawing backend is reached through Canvas, so the tree walk does not
// depend on a particular graphics library. GGCanvas implements it on top of
// gg; the fyne window in package display presents its frames.
package render

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/font"

	"uhtml/pkg/text"
)

// ErrSurface marks a failure of the drawing backend.
var ErrSurface = errors.New("render surface failure")

// Canvas is the drawing backend a Renderer talks to.
type Canvas interface {
	// Clear fills the whole frame with c.
	Clear(c color.Color)
	// TextSurface rasterises s with face in colour c. The caller must
	// Release the surface once it has been drawn.
	TextSurface(s string, face font.Face, c color.Color) (Surface, error)
	// Draw copies surface into the frame with its top-left corner at (x, y).
	Draw(surface Surface, x, y int) error
	// Present publishes the finished frame.
	Present() error
}

// Surface is an intermediate image created by a Canvas.
type Surface interface {
	Bounds() image.Rectangle
	Release()
}

// IsEnvironmentError reports whether err came from the font or drawing
// backends rather than from the markup.
func IsEnvironmentError(err error) bool {
	return errors.Is(err, ErrSurface) || errors.Is(err, text.ErrFontLoad)
}
