// Package tracking decides which window holds the user's focus and samples
// the resource usage of the process that owns it.
package tracking

import (
	"errors"

	"github.com/1broseidon/aura/internal/exclude"
	"github.com/1broseidon/aura/internal/platform"
	"go.uber.org/zap"
)

// State is the tracker's published snapshot. Readers get a copy.
type State struct {
	// PID is the tracked owner process; 0 means nothing is trackable.
	PID int
	// ProcessName is the executable name, or exclude.SystemUI for shell surfaces.
	ProcessName string
	// RawCPU is percent of total machine capacity (already divided by core count).
	RawCPU float64
	// RawRAM is resident memory as a percent of total system memory.
	RawRAM float64
}

// Tracker polls the window system for the foreground window and samples its
// owner process. It is not safe for concurrent use; the scheduler serializes
// Poll with the animator's reads.
type Tracker struct {
	windows platform.WindowSystem
	procs   platform.ProcessOpener
	rules   *exclude.Rules
	logger  *zap.Logger

	state    State
	exeName  string
	handle   platform.ProcessHandle
	ignored  map[int]bool
	lastSeen int
}

// New creates a tracker with zero state.
func New(windows platform.WindowSystem, procs platform.ProcessOpener, rules *exclude.Rules, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		windows: windows,
		procs:   procs,
		rules:   rules,
		logger:  logger,
		ignored: make(map[int]bool),
	}
}

// IgnorePID makes windows owned by pid invisible to the tracker. Used to keep
// the overlay from tracking itself.
func (t *Tracker) IgnorePID(pid int) {
	t.ignored[pid] = true
}

// State returns a copy of the current snapshot.
func (t *Tracker) State() State {
	return t.state
}

// Poll runs one tracking step. Every failure degrades to "no update" for the
// affected part of the state; Poll never fails.
func (t *Tracker) Poll() {
	wid, err := t.windows.ForegroundWindow()
	if err != nil {
		t.logger.Debug("no foreground window", zap.Error(err))
		return
	}
	if !t.windows.IsWindowValid(wid) {
		return
	}

	class, err := t.windows.WindowClassName(wid)
	if err != nil {
		t.logger.Debug("window class query failed", zap.Uint32("window", uint32(wid)), zap.Error(err))
		class = ""
	}
	if t.rules.IgnoredClass(class) {
		t.state.ProcessName = exclude.SystemUI
		t.state.PID = 0
		return
	}

	pid, err := t.windows.WindowOwnerPID(wid)
	if err != nil || pid <= 0 {
		// Keep the cached handle; a transient miss should not cause churn.
		t.logger.Debug("window owner unresolvable", zap.Uint32("window", uint32(wid)), zap.Int("pid", pid), zap.Error(err))
		return
	}
	if t.ignored[pid] {
		return
	}

	if pid != t.state.PID {
		t.acquire(pid)
	}

	t.state.ProcessName = t.rules.ResolveProcessName(t.exeName, class)
	if t.state.ProcessName == exclude.SystemUI {
		return
	}

	t.state.RawCPU, t.state.RawRAM = t.sample()
}

// acquire replaces the cached handle with one for pid. Failure leaves no
// handle and an empty name, so metrics read as zero until the pid changes.
func (t *Tracker) acquire(pid int) {
	t.state.PID = pid
	t.handle = nil
	t.exeName = ""

	handle, err := t.procs.OpenProcess(pid)
	if err != nil {
		t.logger.Debug("open process failed", zap.Int("pid", pid), zap.Error(err))
		return
	}
	name, err := handle.ExecutableName()
	if err != nil {
		t.logger.Debug("process name unavailable", zap.Int("pid", pid), zap.Error(err))
		return
	}
	t.handle = handle
	t.exeName = name

	if pid != t.lastSeen {
		t.lastSeen = pid
		t.logger.Info("focus changed", zap.Int("pid", pid), zap.String("process", name))
	}
}

func (t *Tracker) sample() (cpu, ram float64) {
	if t.handle == nil {
		return 0, 0
	}

	ram, err := t.handle.MemoryPercent()
	if err == nil {
		cpu, err = t.handle.CPUPercent()
	}
	if err != nil {
		if errors.Is(err, platform.ErrProcessGone) || errors.Is(err, platform.ErrAccessDenied) {
			t.handle = nil
		}
		t.logger.Debug("process sampling failed", zap.Int("pid", t.state.PID), zap.Error(err))
		return 0, 0
	}
	return cpu, ram
}
