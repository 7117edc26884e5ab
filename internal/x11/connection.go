package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Connection is the overlay's handle on the X server: focus queries, window
// geometry, monitor layout and keymap polling all go through it.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection opens display (empty means $DISPLAY) and loads the keysym
// tables used to resolve the zen toggle key.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("open display %q: %w", display, err)
	}
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// TracksFocus reports whether the window manager publishes
// _NET_ACTIVE_WINDOW. Without it there is never a foreground window.
func (c *Connection) TracksFocus() bool {
	supported, err := ewmh.SupportedGet(c.XUtil)
	if err != nil {
		return false
	}
	for _, atom := range supported {
		if atom == "_NET_ACTIVE_WINDOW" {
			return true
		}
	}
	return false
}

func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
