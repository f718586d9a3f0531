package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"uhtml/pkg/visualtest"
)

func TestGGCanvasTextSurface(t *testing.T) {
	c := NewGGCanvas(100, 50)
	s, err := c.TextSurface("Hi", basicfont.Face7x13, color.White)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 14, 13), s.Bounds())

	s.Release()
	assert.Equal(t, image.Rectangle{}, s.Bounds())
	assert.ErrorIs(t, c.Draw(s, 0, 0), ErrSurface, "a released surface cannot be drawn")
}

func TestGGCanvasTextSurfaceFailures(t *testing.T) {
	c := NewGGCanvas(10, 10)
	_, err := c.TextSurface("", basicfont.Face7x13, color.White)
	assert.ErrorIs(t, err, ErrSurface)
	_, err = c.TextSurface("x", nil, color.White)
	assert.ErrorIs(t, err, ErrSurface)
}

func TestGGCanvasMatchesDirectDrawing(t *testing.T) {
	doc := parse(t, `<body><h1 style="x: 20; y: 10">Hello</h1><p x:5;y:30>there</p></body>`)
	defer doc.Release()

	canvas := NewGGCanvas(120, 60)
	r := NewRenderer(canvas, basicfont.Face7x13, WithColors(color.White, color.Black))
	require.NoError(t, r.RenderFrame(doc))

	// The same frame drawn straight onto a gg context.
	want := gg.NewContext(120, 60)
	want.SetColor(color.Black)
	want.Clear()
	want.SetFontFace(basicfont.Face7x13)
	want.SetColor(color.White)
	want.DrawString("Hello", 20, 10+11)
	want.DrawString("there", 5, 30+11)

	res, err := visualtest.CompareImages(canvas.Image(), want.Image(), visualtest.CompareOptions{Tolerance: 2})
	require.NoError(t, err)
	assert.True(t, res.Match, "%d pixels differ", res.DifferentPixels)
}

func TestGGCanvasBackground(t *testing.T) {
	canvas := NewGGCanvas(4, 4)
	r := NewRenderer(canvas, basicfont.Face7x13, WithColors(nil, color.RGBA{0, 0, 255, 255}))
	require.NoError(t, r.RenderFrame(nil))
	rgba := canvas.Image().(*image.RGBA)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(3, 3))
}

func TestGGCanvasPresentAndSave(t *testing.T) {
	canvas := NewGGCanvas(30, 20)
	var frames []image.Image
	canvas.OnPresent(func(img image.Image) error {
		frames = append(frames, img)
		return nil
	})
	r := NewRenderer(canvas, basicfont.Face7x13)
	doc := parse(t, "<p>hi</p>")
	defer doc.Release()
	require.NoError(t, r.RenderFrame(doc))
	require.Len(t, frames, 1)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, canvas.SavePNG(path))
	res, err := visualtest.CompareFiles(path, path, visualtest.CompareOptions{})
	require.NoError(t, err)
	assert.True(t, res.Match)
}

func TestGGCanvasDrawsIntoTarget(t *testing.T) {
	target := image.NewRGBA(image.Rect(0, 0, 40, 20))
	canvas := NewGGCanvasForImage(target)
	r := NewRenderer(canvas, basicfont.Face7x13, WithColors(color.White, color.Black))
	doc := parse(t, "<p>#</p>")
	defer doc.Release()
	require.NoError(t, r.RenderFrame(doc))

	lit := 0
	for y := 0; y < 13; y++ {
		for x := 0; x < 7; x++ {
			if target.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit, "glyph pixels land in the target image")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, target.RGBAAt(39, 19))
}
