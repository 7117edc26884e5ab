package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Geometry is a window rectangle in root coordinates (physical pixels).
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// GetActiveWindow returns _NET_ACTIVE_WINDOW. A zero window means nothing has focus.
func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// IsViewable reports whether the window still exists and is mapped on screen.
func (c *Connection) IsViewable(windowID xproto.Window) bool {
	attrs, err := xproto.GetWindowAttributes(c.XUtil.Conn(), windowID).Reply()
	if err != nil {
		return false
	}
	return attrs.MapState == xproto.MapStateViewable
}

// GetWindowClass returns the class half of WM_CLASS.
func (c *Connection) GetWindowClass(windowID xproto.Window) (string, error) {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return "", fmt.Errorf("failed to get WM_CLASS: %w", err)
	}
	return wmClass.Class, nil
}

// GetWindowPID returns _NET_WM_PID.
func (c *Connection) GetWindowPID(windowID xproto.Window) (int, error) {
	pid, err := ewmh.WmPidGet(c.XUtil, windowID)
	if err != nil {
		return 0, fmt.Errorf("failed to get _NET_WM_PID: %w", err)
	}
	return int(pid), nil
}

// GetWindowGeometry returns the client area translated to root coordinates.
func (c *Connection) GetWindowGeometry(windowID xproto.Window) (Geometry, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to get geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to translate coordinates: %w", err)
	}

	return Geometry{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// GetFrameExtents returns the window decoration sizes from _NET_FRAME_EXTENTS.
// Unlike geometry, this fails when the window manager does not publish extents.
func (c *Connection) GetFrameExtents(windowID xproto.Window) (left, right, top, bottom int, err error) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get _NET_FRAME_EXTENTS: %w", err)
	}

	return int(extents.Left), int(extents.Right), int(extents.Top), int(extents.Bottom), nil
}

// GetFramedGeometry returns the client geometry grown by the frame extents,
// i.e. the rectangle the user sees including title bar and borders.
func (c *Connection) GetFramedGeometry(windowID xproto.Window) (Geometry, error) {
	left, right, top, bottom, err := c.GetFrameExtents(windowID)
	if err != nil {
		return Geometry{}, err
	}
	geom, err := c.GetWindowGeometry(windowID)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{
		X:      geom.X - left,
		Y:      geom.Y - top,
		Width:  geom.Width + left + right,
		Height: geom.Height + top + bottom,
	}, nil
}
