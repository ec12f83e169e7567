// Package framediff decides whether two frames differ enough to be
// considered distinct slides.
//
// The metric is deliberately coarse: a global normalized sum of absolute
// luminance deltas. It tolerates compression and rendering noise, but it is
// not a perceptual or structural similarity measure and must not be treated
// as one.
package framediff

import (
	"image"
	"image/color"
)

// Differs reports whether cur should be accepted as a new slide relative to
// prev. A nil prev (no accepted slide yet) and a dimension mismatch (e.g. a
// window resize) both force acceptance.
func Differs(prev, cur image.Image, sensitivity float64) bool {
	if prev == nil || cur == nil {
		return true
	}
	if !prev.Bounds().Size().Eq(cur.Bounds().Size()) {
		return true
	}
	return Fraction(prev, cur) > sensitivity
}

// Fraction returns the normalized luminance difference between two frames
// of equal dimensions: the sum of per-pixel absolute luminance deltas
// divided by pixelCount*255, a value in [0; 1].
func Fraction(a, b image.Image) float64 {
	aBounds, bBounds := a.Bounds(), b.Bounds()
	width, height := aBounds.Dx(), aBounds.Dy()
	if width == 0 || height == 0 {
		return 0
	}

	var sum uint64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			lumA := luminance(a.At(aBounds.Min.X+x, aBounds.Min.Y+y))
			lumB := luminance(b.At(bBounds.Min.X+x, bBounds.Min.Y+y))
			if lumA > lumB {
				sum += uint64(lumA - lumB)
			} else {
				sum += uint64(lumB - lumA)
			}
		}
	}

	return float64(sum) / (float64(width) * float64(height) * 255)
}

// luminance returns the 8-bit gray value of a pixel; color.GrayModel uses
// the same 299/587/114 channel weights as the usual RGB-to-gray conversion.
func luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
