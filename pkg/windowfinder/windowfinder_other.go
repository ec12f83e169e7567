//go:build !linux || android
// +build !linux android

package windowfinder

import (
	"context"
)

func ListWindows(ctx context.Context) ([]Window, error) {
	return nil, errNotSupportedHere()
}
