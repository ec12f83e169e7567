// Package windowfinder guesses a capture region from the windows currently
// on screen, by matching keyword lists against window titles and the names
// of the processes owning them.
package windowfinder

import (
	"fmt"
	"image"
	"runtime"
)

type WindowID uint64

// Window is one enumerated on-screen window.
type Window struct {
	ID     WindowID
	Title  string
	Owner  string // name of the owning process, when resolvable
	Bounds image.Rectangle
}

// ErrNotSupported means the current platform has no window enumeration
// implementation; the caller can still capture an explicit region or the
// full screen.
type ErrNotSupported struct {
	Platform string
}

var _ error = ErrNotSupported{}

func (e ErrNotSupported) Error() string {
	return fmt.Sprintf("window enumeration is not supported on '%s'", e.Platform)
}

func errNotSupportedHere() error {
	return ErrNotSupported{Platform: runtime.GOOS}
}
