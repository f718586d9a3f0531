package visualtest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCompareImagesIdentical(t *testing.T) {
	res, err := CompareImages(solid(4, 4, color.White), solid(4, 4, color.White), CompareOptions{})
	require.NoError(t, err)
	assert.True(t, res.Match)
	assert.Equal(t, 16, res.TotalPixels)
	assert.Zero(t, res.MaxDifference)
}

func TestCompareImagesTolerance(t *testing.T) {
	a := solid(2, 2, color.RGBA{100, 100, 100, 255})
	b := solid(2, 2, color.RGBA{102, 100, 100, 255})

	res, err := CompareImages(a, b, CompareOptions{})
	require.NoError(t, err)
	assert.False(t, res.Match)
	assert.Equal(t, 4, res.DifferentPixels)
	assert.Equal(t, 2, res.MaxDifference)

	res, err = CompareImages(a, b, CompareOptions{Tolerance: 2})
	require.NoError(t, err)
	assert.True(t, res.Match)
}

func TestCompareImagesFuzzy(t *testing.T) {
	a := solid(5, 5, color.Black)
	b := solid(5, 5, color.Black)
	a.Set(2, 2, color.White)
	b.Set(3, 2, color.White)

	res, err := CompareImages(a, b, CompareOptions{KeepDiff: true})
	require.NoError(t, err)
	assert.False(t, res.Match)
	assert.Equal(t, 2, res.DifferentPixels)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, res.Diff.RGBAAt(2, 2))

	res, err = CompareImages(a, b, CompareOptions{FuzzyRadius: 1})
	require.NoError(t, err)
	assert.True(t, res.Match)
}

func TestCompareImagesSizeMismatch(t *testing.T) {
	res, err := CompareImages(solid(2, 2, color.Black), solid(3, 2, color.Black), CompareOptions{})
	assert.Error(t, err)
	assert.False(t, res.Match)
}

func TestCompareFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, img image.Image) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		defer f.Close()
		require.NoError(t, png.Encode(f, img))
		return path
	}
	a := write("a.png", solid(3, 3, color.White))
	b := write("b.png", solid(3, 3, color.White))

	res, err := CompareFiles(a, b, CompareOptions{})
	require.NoError(t, err)
	assert.True(t, res.Match)

	_, err = CompareFiles(a, filepath.Join(dir, "missing.png"), CompareOptions{})
	assert.Error(t, err)
}
