// Package platformtest provides in-memory window system, process and key
// fakes for tests.
package platformtest

import (
	"fmt"

	"github.com/1broseidon/aura/internal/platform"
)

// Window is one fake window.
type Window struct {
	Class string
	PID   int
	// Frame is the extended frame; nil makes ExtendedFrameBounds fail.
	Frame *platform.Bounds
	// Client is the basic window rectangle.
	Client platform.Bounds
	// Invalid marks a destroyed or unmapped window.
	Invalid bool
	// ClassErr makes WindowClassName fail.
	ClassErr error
	// PIDErr makes WindowOwnerPID fail.
	PIDErr error
}

// Windows is a fake WindowSystem keyed by window id.
type Windows struct {
	Foreground platform.WindowID
	ByID       map[platform.WindowID]*Window
}

var _ platform.WindowSystem = (*Windows)(nil)

// NewWindows returns an empty fake with no foreground window.
func NewWindows() *Windows {
	return &Windows{ByID: make(map[platform.WindowID]*Window)}
}

// Add registers w under id and returns w for further tweaking.
func (f *Windows) Add(id platform.WindowID, w *Window) *Window {
	f.ByID[id] = w
	return w
}

// Focus makes id the foreground window.
func (f *Windows) Focus(id platform.WindowID) {
	f.Foreground = id
}

func (f *Windows) ForegroundWindow() (platform.WindowID, error) {
	if f.Foreground == 0 {
		return 0, platform.ErrNoWindow
	}
	return f.Foreground, nil
}

func (f *Windows) IsWindowValid(id platform.WindowID) bool {
	w, ok := f.ByID[id]
	return ok && !w.Invalid
}

func (f *Windows) WindowClassName(id platform.WindowID) (string, error) {
	w, err := f.lookup(id)
	if err != nil {
		return "", err
	}
	if w.ClassErr != nil {
		return "", w.ClassErr
	}
	return w.Class, nil
}

func (f *Windows) WindowOwnerPID(id platform.WindowID) (int, error) {
	w, err := f.lookup(id)
	if err != nil {
		return 0, err
	}
	if w.PIDErr != nil {
		return 0, w.PIDErr
	}
	return w.PID, nil
}

func (f *Windows) ExtendedFrameBounds(id platform.WindowID) (platform.Bounds, error) {
	w, err := f.lookup(id)
	if err != nil {
		return platform.Bounds{}, err
	}
	if w.Frame == nil {
		return platform.Bounds{}, fmt.Errorf("no frame extents for window %d", id)
	}
	return *w.Frame, nil
}

func (f *Windows) WindowBounds(id platform.WindowID) (platform.Bounds, error) {
	w, err := f.lookup(id)
	if err != nil {
		return platform.Bounds{}, err
	}
	return w.Client, nil
}

func (f *Windows) lookup(id platform.WindowID) (*Window, error) {
	w, ok := f.ByID[id]
	if !ok || w.Invalid {
		return nil, fmt.Errorf("window %d: %w", id, platform.ErrWindowGone)
	}
	return w, nil
}

// Process is one fake process.
type Process struct {
	Name    string
	CPU     float64
	RAM     float64
	NameErr error
	// SampleErr makes CPUPercent and MemoryPercent fail.
	SampleErr error
}

// Processes is a fake ProcessOpener keyed by pid.
type Processes struct {
	ByPID map[int]*Process
	// Opens counts OpenProcess calls per pid.
	Opens map[int]int
}

var _ platform.ProcessOpener = (*Processes)(nil)

func NewProcesses() *Processes {
	return &Processes{ByPID: make(map[int]*Process), Opens: make(map[int]int)}
}

// Add registers p under pid and returns p.
func (f *Processes) Add(pid int, p *Process) *Process {
	f.ByPID[pid] = p
	return p
}

func (f *Processes) OpenProcess(pid int) (platform.ProcessHandle, error) {
	f.Opens[pid]++
	p, ok := f.ByPID[pid]
	if !ok {
		return nil, fmt.Errorf("open process %d: %w", pid, platform.ErrProcessGone)
	}
	return &handle{proc: p}, nil
}

type handle struct {
	proc *Process
}

func (h *handle) ExecutableName() (string, error) {
	if h.proc.NameErr != nil {
		return "", h.proc.NameErr
	}
	return h.proc.Name, nil
}

func (h *handle) CPUPercent() (float64, error) {
	if h.proc.SampleErr != nil {
		return 0, h.proc.SampleErr
	}
	return h.proc.CPU, nil
}

func (h *handle) MemoryPercent() (float64, error) {
	if h.proc.SampleErr != nil {
		return 0, h.proc.SampleErr
	}
	return h.proc.RAM, nil
}

// Keys is a fake KeyState; a key is down while its entry is true.
type Keys map[string]bool

var _ platform.KeyState = Keys(nil)

func (k Keys) IsKeyDown(key string) bool {
	return k[key]
}

// Rect is a shorthand for building frame bounds in tests.
func Rect(x, y, w, h int) *platform.Bounds {
	return &platform.Bounds{Left: x, Top: y, Right: x + w, Bottom: y + h}
}
