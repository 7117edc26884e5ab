package animation

import (
	"math"
	"testing"

	"github.com/1broseidon/aura/internal/config"
	"github.com/1broseidon/aura/internal/exclude"
	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/platform/platformtest"
	"github.com/1broseidon/aura/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTracker struct {
	state tracking.State
}

func (s *stubTracker) State() tracking.State { return s.state }

type fixture struct {
	cfg      *config.Config
	windows  *platformtest.Windows
	keys     platformtest.Keys
	tracker  *stubTracker
	animator *Animator
}

func newFixture(scale float64) *fixture {
	f := &fixture{
		cfg:     config.DefaultConfig(),
		windows: platformtest.NewWindows(),
		keys:    platformtest.Keys{},
		tracker: &stubTracker{},
	}
	f.animator = New(f.cfg, f.tracker, f.windows, f.keys, platform.FixedScale(scale), exclude.New(f.cfg), nil)
	return f
}

// focus puts a window owned by pid in the foreground and makes the tracker
// agree with it.
func (f *fixture) focus(pid int, name, class string, frame *platform.Bounds) *platformtest.Window {
	w := f.windows.Add(platform.WindowID(pid), &platformtest.Window{Class: class, PID: pid, Frame: frame})
	f.windows.Focus(platform.WindowID(pid))
	f.tracker.state = tracking.State{PID: pid, ProcessName: name}
	return w
}

func TestToggle_FlipsOncePerPress(t *testing.T) {
	var tg Toggle
	presses := []bool{true, true, true, false, false, true, false, true, true}
	var flips int
	for _, down := range presses {
		if tg.Sample(down) {
			flips++
		}
	}
	assert.Equal(t, 3, flips)
	assert.True(t, tg.On())
}

func TestTick_ZenModeFollowsHotkeyEdges(t *testing.T) {
	f := newFixture(1)

	f.keys["F8"] = true
	f.animator.Tick()
	assert.True(t, f.animator.State().ZenMode)

	f.animator.Tick()
	assert.True(t, f.animator.State().ZenMode, "holding the key must not toggle again")

	f.keys["F8"] = false
	f.animator.Tick()
	f.keys["F8"] = true
	f.animator.Tick()
	assert.False(t, f.animator.State().ZenMode)
}

func TestTick_SmoothingConvergesWithoutOvershoot(t *testing.T) {
	f := newFixture(1)
	f.tracker.state = tracking.State{RawCPU: 50, RawRAM: 8}

	prevCPU, prevRAM := 0.0, 0.0
	for i := 0; i < 300; i++ {
		f.animator.Tick()
		st := f.animator.State()
		require.Greater(t, st.DisplayCPU, prevCPU)
		require.GreaterOrEqual(t, st.DisplayRAM, prevRAM)
		require.LessOrEqual(t, st.DisplayCPU, 50.0)
		require.LessOrEqual(t, st.DisplayRAM, 8.0)
		prevCPU, prevRAM = st.DisplayCPU, st.DisplayRAM
	}
	assert.InDelta(t, 50, prevCPU, 0.01)
	assert.InDelta(t, 8, prevRAM, 0.01)
}

func TestTick_FirstStepIsOneSmoothingFraction(t *testing.T) {
	f := newFixture(1)
	f.tracker.state = tracking.State{RawCPU: 100}
	f.animator.Tick()
	assert.InDelta(t, 100*f.cfg.SmoothingFactor, f.animator.State().DisplayCPU, 1e-12)
}

func TestBreathSpeed_Bounds(t *testing.T) {
	base, maxSpeed := 0.02, 0.15

	assert.Equal(t, base, BreathSpeed(0, base, maxSpeed))
	assert.Equal(t, base, BreathSpeed(-5, base, maxSpeed))
	assert.Equal(t, base+maxSpeed, BreathSpeed(100, base, maxSpeed))
	assert.Equal(t, base+maxSpeed, BreathSpeed(250, base, maxSpeed))
	assert.InDelta(t, base+0.5*maxSpeed, BreathSpeed(50, base, maxSpeed), 1e-15)
}

func TestTick_BreathPhaseOnlyIncreases(t *testing.T) {
	f := newFixture(1)
	f.tracker.state = tracking.State{RawCPU: 100}

	prev := 0.0
	for i := 0; i < 1000; i++ {
		f.animator.Tick()
		phase := f.animator.State().BreathPhase
		step := phase - prev
		require.Greater(t, step, 0.0)
		require.LessOrEqual(t, step, f.cfg.BaseBreathSpeed+f.cfg.MaxBreathSpeed+1e-12)
		prev = phase
	}
	assert.Greater(t, prev, 2*math.Pi, "phase is never wrapped")
}

func TestTick_TargetFromExtendedFrame(t *testing.T) {
	f := newFixture(1)
	f.focus(100, "firefox", "Navigator", platformtest.Rect(10, 20, 800, 600))

	f.animator.Tick()
	st := f.animator.State()
	require.True(t, st.HasTarget)
	assert.Equal(t, platform.Rect{X: 10, Y: 20, Width: 800, Height: 600}, st.Target)
}

func TestTick_FallsBackToWindowBounds(t *testing.T) {
	f := newFixture(1)
	w := f.focus(100, "firefox", "Navigator", nil)
	w.Client = *platformtest.Rect(5, 5, 300, 200)

	f.animator.Tick()
	st := f.animator.State()
	require.True(t, st.HasTarget)
	assert.Equal(t, platform.Rect{X: 5, Y: 5, Width: 300, Height: 200}, st.Target)
}

func TestTick_ConvertsToLogicalPixels(t *testing.T) {
	f := newFixture(2)
	f.focus(100, "firefox", "Navigator", platformtest.Rect(101, 200, 1601, 900))

	f.animator.Tick()
	st := f.animator.State()
	require.True(t, st.HasTarget)
	assert.Equal(t, platform.Rect{X: 50, Y: 100, Width: 800, Height: 450}, st.Target)
}

func TestTick_AntiFlashSuppressesStaleTarget(t *testing.T) {
	f := newFixture(1)
	f.focus(100, "firefox", "Navigator", platformtest.Rect(0, 0, 800, 600))
	f.animator.Tick()
	require.True(t, f.animator.State().HasTarget)

	// Focus moves to pid 200 before the tracker polls again.
	f.windows.Add(200, &platformtest.Window{Class: "Code", PID: 200, Frame: platformtest.Rect(0, 0, 1000, 700)})
	f.windows.Focus(200)

	f.animator.Tick()
	assert.False(t, f.animator.State().HasTarget)
}

func TestTick_SizeFilter(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		w, h  int
		want  bool
	}{
		{"exactly minimum", 1, 60, 60, true},
		{"too narrow", 1, 59, 400, false},
		{"too short", 1, 400, 59, false},
		{"scaled to minimum", 2, 120, 120, true},
		{"scaled below minimum", 2, 118, 500, false},
		{"tiny ghost", 1, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.scale)
			f.focus(100, "firefox", "Navigator", platformtest.Rect(0, 0, tt.w, tt.h))
			f.animator.Tick()
			assert.Equal(t, tt.want, f.animator.State().HasTarget)
		})
	}
}

func TestTick_ExcludedWindowsNeverTargeted(t *testing.T) {
	huge := platformtest.Rect(0, 0, 3000, 2000)
	tests := []struct {
		name, process, class string
	}{
		{"blacklisted class", "firefox", "Shell_TrayWnd"},
		{"blacklisted process", "SearchHost.exe", "Windows.Search"},
		{"blacklisted process any case", "SEARCHHOST.EXE", "Windows.Search"},
		{"system ui sentinel", exclude.SystemUI, "DesktopWindow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(1)
			f.focus(100, tt.process, tt.class, huge)
			f.animator.Tick()
			assert.False(t, f.animator.State().HasTarget)
		})
	}
}

func TestTick_TargetClearedWhenFocusLost(t *testing.T) {
	f := newFixture(1)
	f.focus(100, "firefox", "Navigator", platformtest.Rect(0, 0, 800, 600))
	f.animator.Tick()
	require.True(t, f.animator.State().HasTarget)

	f.windows.Focus(0)
	f.animator.Tick()
	assert.False(t, f.animator.State().HasTarget)
	assert.Equal(t, platform.Rect{}, f.animator.State().Target)
}

func TestTick_NoTrackedPIDMeansNoTarget(t *testing.T) {
	f := newFixture(1)
	f.focus(100, "firefox", "Navigator", platformtest.Rect(0, 0, 800, 600))
	f.tracker.state.PID = 0

	f.animator.Tick()
	assert.False(t, f.animator.State().HasTarget)
}

func TestTick_RequestsRepaintEveryFrame(t *testing.T) {
	f := newFixture(1)
	var frames []VisualState
	f.animator.OnFrame(func(vs VisualState) { frames = append(frames, vs) })

	for i := 0; i < 3; i++ {
		f.animator.Tick()
	}
	require.Len(t, frames, 3)
	assert.Equal(t, f.animator.State(), frames[2])
}
