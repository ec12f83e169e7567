//go:build linux && !android
// +build linux,!android

package windowfinder

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/shirou/gopsutil/process"
)

// ListWindows enumerates the windows known to the window manager, together
// with their titles, owning process names and on-screen geometry.
func ListWindows(ctx context.Context) ([]Window, error) {
	display := os.Getenv("DISPLAY")
	x, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to X-server using DISPLAY '%s': %w", display, err)
	}
	defer x.Conn().Close()

	clientIDs, err := ewmh.ClientListGet(x)
	if err != nil {
		return nil, fmt.Errorf("unable to get the window list: %w", err)
	}

	var result []Window
	for _, clientID := range clientIDs {
		w, err := describeWindow(x, clientID)
		if err != nil {
			logger.Debugf(ctx, "skipping window %d: %v", clientID, err)
			continue
		}
		result = append(result, *w)
	}
	return result, nil
}

func describeWindow(x *xgbutil.XUtil, clientID xproto.Window) (*Window, error) {
	name, err := ewmh.WmNameGet(x, clientID)
	if err != nil {
		return nil, fmt.Errorf("unable to get the window name: %w", err)
	}

	geom, err := xwindow.New(x, clientID).DecorGeometry()
	if err != nil {
		return nil, fmt.Errorf("unable to get the window geometry: %w", err)
	}

	w := &Window{
		ID:     WindowID(clientID),
		Title:  name,
		Bounds: image.Rect(geom.X(), geom.Y(), geom.X()+geom.Width(), geom.Y()+geom.Height()),
	}

	// The owner name is best-effort: not every window exposes a PID.
	if pid, err := ewmh.WmPidGet(x, clientID); err == nil {
		if proc, err := process.NewProcess(int32(pid)); err == nil {
			if procName, err := proc.Name(); err == nil {
				w.Owner = procName
			}
		}
	}

	return w, nil
}
