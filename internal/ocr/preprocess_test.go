package ocr

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGrayPNG(t *testing.T, path string, values []uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, len(values), 1))
	for x, v := range values {
		img.SetGray(x, 0, color.Gray{Y: v})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestPreprocessPageBinarizes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page-01.png")
	// low, mid and high luminance pixels
	writeGrayPNG(t, src, []uint8{10, 120, 245})

	out, err := preprocessPage(src, 160)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "page-01.pp.png"), out)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	nrgba := imaging.Clone(img)

	// every pixel is pure black or pure white after binarization
	for i := 0; i < len(nrgba.Pix); i += 4 {
		r := nrgba.Pix[i]
		assert.Contains(t, []uint8{0, 255}, r)
	}
}

func TestPreprocessPageStretchesContrast(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page-01.png")
	// narrow band around the cutoff: without autocontrast every pixel would
	// land on the same side of 160
	writeGrayPNG(t, src, []uint8{100, 110, 120, 130})

	out, err := preprocessPage(src, 160)
	require.NoError(t, err)

	img, err := imaging.Open(out)
	require.NoError(t, err)
	nrgba := imaging.Clone(img)

	seen := map[uint8]bool{}
	for i := 0; i < len(nrgba.Pix); i += 4 {
		seen[nrgba.Pix[i]] = true
	}
	assert.True(t, seen[0], "darkest pixel should map to black")
	assert.True(t, seen[255], "brightest pixel should map to white")
}

func TestPreprocessPageMissingFile(t *testing.T) {
	_, err := preprocessPage(filepath.Join(t.TempDir(), "nope.png"), 160)
	assert.Error(t, err)
}
