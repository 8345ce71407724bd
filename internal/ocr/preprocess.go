package ocr

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// preprocessPage reduces OCR noise on a rendered page: grayscale, autocontrast,
// then binarization at the configured cutoff. Writes the processed image next
// to the source page and returns its path.
func preprocessPage(path string, threshold int) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open page image: %w", err)
	}

	gray := imaging.Grayscale(img)
	stretched := autocontrast(gray)
	bw := binarize(stretched, uint8(threshold))

	out := strings.TrimSuffix(path, ".png") + ".pp.png"
	if err := imaging.Save(bw, out); err != nil {
		return "", fmt.Errorf("save preprocessed page: %w", err)
	}
	return out, nil
}

// autocontrast stretches the luminance histogram to the full 0-255 range.
func autocontrast(img *image.NRGBA) *image.NRGBA {
	lo, hi := 255, 0
	// grayscale input: R==G==B, inspect R only
	for i := 0; i < len(img.Pix); i += 4 {
		v := int(img.Pix[i])
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi <= lo {
		return img
	}
	span := hi - lo
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		v := (int(c.R) - lo) * 255 / span
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		g := uint8(v)
		return color.NRGBA{R: g, G: g, B: g, A: c.A}
	})
}

// binarize maps every pixel below cutoff to black and the rest to white.
func binarize(img *image.NRGBA, cutoff uint8) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		if c.R < cutoff {
			return color.NRGBA{R: 0, G: 0, B: 0, A: c.A}
		}
		return color.NRGBA{R: 255, G: 255, B: 255, A: c.A}
	})
}
