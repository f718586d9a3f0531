// Package text loads the font faces used to draw node text.
package text

import (
	"errors"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// ErrFontLoad marks a font that could not be loaded. It is fatal at startup
// and never retried.
var ErrFontLoad = errors.New("font load failure")

// DefaultSize is the point size used when none is configured.
const DefaultSize = 24

// FontConfig names the face used for rendering.
type FontConfig struct {
	Path string  // TrueType/OpenType file; empty selects the built-in face
	Size float64 // points
}

// DefaultFontConfig returns the built-in face at DefaultSize.
func DefaultFontConfig() FontConfig {
	return FontConfig{Size: DefaultSize}
}

// Load opens the configured face.
func (fc FontConfig) Load() (font.Face, error) {
	return LoadFace(fc.Path, fc.Size)
}

// LoadFace loads a face from a font file at the given point size. An empty
// path returns the fixed-size basicfont face, whose size cannot change.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	if size <= 0 {
		size = DefaultSize
	}
	face, err := gg.LoadFontFace(path, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, path, err)
	}
	return face, nil
}

// MeasureText returns the width and height of s drawn with face.
func MeasureText(face font.Face, s string) (width, height float64) {
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	return dc.MeasureString(s)
}
