package screenshot

import (
	"image"
)

// Engine abstracts the actual grabbing, so that a capture loop can be
// driven by a fake frame producer in tests.
type Engine interface {
	Screenshot(cfg Config) (*image.RGBA, error)
}

type Implementation struct{}

var _ Engine = Implementation{}

func (Implementation) Screenshot(cfg Config) (*image.RGBA, error) {
	return Screenshot(cfg)
}

func (Implementation) NumActiveDisplays() uint {
	return NumActiveDisplays()
}
