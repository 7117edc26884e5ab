//go:build linux

package platform

import (
	"fmt"

	"github.com/1broseidon/aura/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the WindowSystem interface.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ WindowSystem = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection to the default display.
func NewLinuxBackendFromDisplay() (*LinuxBackend, error) {
	conn, err := x11.NewConnection("")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxBackend{conn: conn}, nil
}

// TracksFocus reports whether the window manager exposes the active window.
func (b *LinuxBackend) TracksFocus() bool {
	conn, err := b.connection()
	return err == nil && conn.TracksFocus()
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Connection exposes the X11 connection for packages that poll the server directly.
func (b *LinuxBackend) Connection() *x11.Connection {
	if b == nil {
		return nil
	}
	return b.conn
}

// PrimaryDisplay describes the primary monitor and its usable area.
func (b *LinuxBackend) PrimaryDisplay() (Display, error) {
	conn, err := b.connection()
	if err != nil {
		return Display{}, err
	}
	mon, area, err := conn.GetPrimaryWorkArea()
	if err != nil {
		return Display{}, err
	}
	return Display{
		Name:     mon.Name,
		Monitor:  Rect{X: mon.X, Y: mon.Y, Width: mon.Width, Height: mon.Height},
		WorkArea: Rect{X: area.X, Y: area.Y, Width: area.Width, Height: area.Height},
	}, nil
}

// ForegroundWindow returns the window that currently has keyboard focus.
func (b *LinuxBackend) ForegroundWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoWindow, err)
	}
	if wid == 0 {
		return 0, ErrNoWindow
	}
	return WindowID(wid), nil
}

// IsWindowValid reports whether the window exists and is mapped.
func (b *LinuxBackend) IsWindowValid(id WindowID) bool {
	conn, err := b.connection()
	if err != nil || id == 0 {
		return false
	}
	return conn.IsViewable(xproto.Window(id))
}

func (b *LinuxBackend) WindowClassName(id WindowID) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}
	class, err := conn.GetWindowClass(xproto.Window(id))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWindowGone, err)
	}
	return class, nil
}

func (b *LinuxBackend) WindowOwnerPID(id WindowID) (int, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}
	pid, err := conn.GetWindowPID(xproto.Window(id))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWindowGone, err)
	}
	return pid, nil
}

// ExtendedFrameBounds returns the decorated window rectangle.
func (b *LinuxBackend) ExtendedFrameBounds(id WindowID) (Bounds, error) {
	conn, err := b.connection()
	if err != nil {
		return Bounds{}, err
	}
	geom, err := conn.GetFramedGeometry(xproto.Window(id))
	if err != nil {
		return Bounds{}, err
	}
	return boundsFromGeometry(geom), nil
}

// WindowBounds returns the undecorated client rectangle.
func (b *LinuxBackend) WindowBounds(id WindowID) (Bounds, error) {
	conn, err := b.connection()
	if err != nil {
		return Bounds{}, err
	}
	geom, err := conn.GetWindowGeometry(xproto.Window(id))
	if err != nil {
		return Bounds{}, fmt.Errorf("%w: %v", ErrWindowGone, err)
	}
	return boundsFromGeometry(geom), nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func boundsFromGeometry(g x11.Geometry) Bounds {
	return Bounds{
		Left:   g.X,
		Top:    g.Y,
		Right:  g.X + g.Width,
		Bottom: g.Y + g.Height,
	}
}
