// Package screenshot grabs still frames from the screen. It is the only
// place that talks to OS screen APIs; everything above it consumes plain
// image values.
package screenshot

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"
)

// Config describes which part of the screen to grab. The zero value means
// the full bounds of the primary display.
type Config struct {
	Bounds image.Rectangle
}

func (cfg Config) IsFullScreen() bool {
	return cfg.Bounds.Empty()
}

func Screenshot(cfg Config) (*image.RGBA, error) {
	bounds := cfg.Bounds
	if bounds.Empty() {
		if NumActiveDisplays() == 0 {
			return nil, fmt.Errorf("no active displays found")
		}
		bounds = FullScreenBounds()
	}

	rgba, err := screenshot.Capture(
		bounds.Min.X,
		bounds.Min.Y,
		bounds.Dx(),
		bounds.Dy(),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to screenshot bounds %v: %w", bounds, err)
	}

	return rgba, nil
}

// FullScreenBounds returns the bounds of the primary display.
func FullScreenBounds() image.Rectangle {
	return screenshot.GetDisplayBounds(0)
}

func NumActiveDisplays() uint {
	return uint(screenshot.NumActiveDisplays())
}
