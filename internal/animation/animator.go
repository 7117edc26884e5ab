// Package animation turns tracker snapshots into smoothed, time-varying
// visual state once per frame.
package animation

import (
	"github.com/1broseidon/aura/internal/config"
	"github.com/1broseidon/aura/internal/exclude"
	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/tracking"
	"go.uber.org/zap"
)

// VisualState is the per-frame snapshot handed to the renderer.
type VisualState struct {
	// Target is the outlined rectangle in logical pixels, valid when HasTarget.
	Target    platform.Rect
	HasTarget bool

	DisplayCPU float64
	DisplayRAM float64

	// BreathPhase grows without bound; consumers take its sine.
	BreathPhase float64

	ZenMode bool
}

// StateSource provides the tracker's latest snapshot.
type StateSource interface {
	State() tracking.State
}

// Animator owns VisualState. Tick is called once per frame on the same
// thread as the tracker's Poll.
type Animator struct {
	cfg     *config.Config
	tracker StateSource
	windows platform.WindowSystem
	keys    platform.KeyState
	scale   platform.DisplayScale
	rules   *exclude.Rules
	logger  *zap.Logger

	zen     Toggle
	state   VisualState
	onFrame func(VisualState)
}

// New creates an animator with zero visual state.
func New(cfg *config.Config, tracker StateSource, windows platform.WindowSystem, keys platform.KeyState, scale platform.DisplayScale, rules *exclude.Rules, logger *zap.Logger) *Animator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Animator{
		cfg:     cfg,
		tracker: tracker,
		windows: windows,
		keys:    keys,
		scale:   scale,
		rules:   rules,
		logger:  logger,
	}
}

// OnFrame registers the repaint request issued at the end of every tick.
func (a *Animator) OnFrame(fn func(VisualState)) {
	a.onFrame = fn
}

// State returns a copy of the current visual state.
func (a *Animator) State() VisualState {
	return a.state
}

// Tick advances the animation by one frame.
func (a *Animator) Tick() {
	if a.zen.Sample(a.keys.IsKeyDown(a.cfg.ZenToggleKey)) {
		a.state.ZenMode = a.zen.On()
		a.logger.Info("zen mode toggled", zap.Bool("enabled", a.state.ZenMode))
	}

	ts := a.tracker.State()

	a.state.Target, a.state.HasTarget = a.resolveTarget(ts)

	f := a.cfg.SmoothingFactor
	a.state.DisplayCPU += (ts.RawCPU - a.state.DisplayCPU) * f
	a.state.DisplayRAM += (ts.RawRAM - a.state.DisplayRAM) * f

	a.state.BreathPhase += BreathSpeed(a.state.DisplayCPU, a.cfg.BaseBreathSpeed, a.cfg.MaxBreathSpeed)

	if a.onFrame != nil {
		a.onFrame(a.state)
	}
}

// resolveTarget recomputes the outline rectangle from scratch. The live
// foreground window must still belong to the tracked pid; otherwise focus
// moved since the last poll and the old border would flash on the new window.
func (a *Animator) resolveTarget(ts tracking.State) (platform.Rect, bool) {
	wid, err := a.windows.ForegroundWindow()
	if err != nil || !a.windows.IsWindowValid(wid) {
		return platform.Rect{}, false
	}
	if ts.PID == 0 {
		return platform.Rect{}, false
	}

	pid, err := a.windows.WindowOwnerPID(wid)
	if err != nil || pid != ts.PID {
		return platform.Rect{}, false
	}

	class, err := a.windows.WindowClassName(wid)
	if err != nil {
		class = ""
	}
	if a.rules.Suppressed(ts.ProcessName, class) {
		return platform.Rect{}, false
	}

	bounds, err := a.windows.ExtendedFrameBounds(wid)
	if err != nil {
		bounds, err = a.windows.WindowBounds(wid)
		if err != nil {
			a.logger.Debug("window bounds unavailable", zap.Uint32("window", uint32(wid)), zap.Error(err))
			return platform.Rect{}, false
		}
	}

	rect := bounds.Logical(a.scale.DisplayScaleFactor())
	if rect.Width < a.cfg.MinTargetSize || rect.Height < a.cfg.MinTargetSize {
		return platform.Rect{}, false
	}
	return rect, true
}

// BreathSpeed is the phase increment per frame: base at idle, base+max at
// full load. CPU is clamped to [0,100].
func BreathSpeed(displayCPU, baseSpeed, maxSpeed float64) float64 {
	load := displayCPU / 100
	if load < 0 {
		load = 0
	} else if load > 1 {
		load = 1
	}
	return baseSpeed + load*maxSpeed
}
