package platform

import "errors"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

var (
	// ErrNoWindow means the window system reports no foreground window.
	ErrNoWindow = errors.New("no foreground window")
	// ErrWindowGone means the window was destroyed while being queried.
	ErrWindowGone = errors.New("window no longer exists")
	// ErrProcessGone means the process exited between lookup and use.
	ErrProcessGone = errors.New("process no longer exists")
	// ErrAccessDenied means the OS refused to expose process details.
	ErrAccessDenied = errors.New("access denied")
	// ErrUnsupported is returned by backends on platforms without a window system binding.
	ErrUnsupported = errors.New("window system not supported on this platform")
)

// WindowSystem is the narrow window query surface the tracker and animator consume.
//
// ExtendedFrameBounds returns the visible frame including decorations; callers
// fall back to WindowBounds when it fails. Both are in physical pixels.
type WindowSystem interface {
	ForegroundWindow() (WindowID, error)
	IsWindowValid(id WindowID) bool
	WindowClassName(id WindowID) (string, error)
	WindowOwnerPID(id WindowID) (int, error)
	ExtendedFrameBounds(id WindowID) (Bounds, error)
	WindowBounds(id WindowID) (Bounds, error)
}

// ProcessHandle is an open reference to a live process.
type ProcessHandle interface {
	ExecutableName() (string, error)
	// CPUPercent is already divided by the logical core count.
	CPUPercent() (float64, error)
	// MemoryPercent is resident memory as a percent of total system memory.
	MemoryPercent() (float64, error)
}

// ProcessOpener acquires process handles by pid.
type ProcessOpener interface {
	OpenProcess(pid int) (ProcessHandle, error)
}

// KeyState reports whether a named key is held right now. Polled, not event driven.
type KeyState interface {
	IsKeyDown(key string) bool
}

// DisplayScale reports the ratio of physical to logical pixels.
type DisplayScale interface {
	DisplayScaleFactor() float64
}

// FixedScale is a DisplayScale with a constant factor.
type FixedScale float64

func (f FixedScale) DisplayScaleFactor() float64 { return float64(f) }
