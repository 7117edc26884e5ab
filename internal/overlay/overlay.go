// Package overlay is the presentation surface: a transparent, undecorated,
// always-on-top window that ignores mouse input and covers one display's
// work area.
package overlay

import (
	"context"
	"time"

	"github.com/1broseidon/aura/internal/animation"
	"github.com/1broseidon/aura/internal/config"
	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/render"
	"github.com/1broseidon/aura/internal/scheduler"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Title is the overlay window title.
const Title = "Aura Monitor"

// Overlay hosts the scheduler on ebiten's update loop and draws the most
// recent visual state on every frame.
type Overlay struct {
	cfg      *config.Config
	sched    *scheduler.Scheduler
	renderer *render.Renderer
	logger   *zap.Logger

	// display is in root-window physical pixels. area is its work area and
	// bounds is the work area's logical form, which is also the surface origin.
	display platform.Display
	area    platform.Bounds
	bounds  platform.Rect
	scale   float64
	placed  bool

	frame   animation.VisualState
	surface *surface
	ctx     context.Context
}

var _ platform.DisplayScale = (*Overlay)(nil)

// New creates an overlay covering the work area of display.
func New(cfg *config.Config, sched *scheduler.Scheduler, renderer *render.Renderer, display platform.Display, logger *zap.Logger) *Overlay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Overlay{
		cfg:      cfg,
		sched:    sched,
		renderer: renderer,
		logger:   logger,
		display:  display,
		area:     display.WorkArea.Bounds(),
		bounds:   display.WorkArea,
		scale:    1,
	}
}

// Present stores the state to draw on the next frame. It is the animator's
// repaint request.
func (o *Overlay) Present(vs animation.VisualState) {
	o.frame = vs
}

// DisplayScaleFactor is the device scale of the monitor the overlay is on.
func (o *Overlay) DisplayScaleFactor() float64 {
	return o.scale
}

// Run opens the window and blocks until ctx is cancelled or the window closes.
// ebiten requires this to be called from the main goroutine.
func (o *Overlay) Run(ctx context.Context) error {
	o.ctx = ctx

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(o.cfg.FPS)
	o.selectMonitor()
	ebiten.SetWindowSize(max(o.bounds.Width, 1), max(o.bounds.Height, 1))
	ebiten.SetWindowPosition(windowPosition(o.display, o.scale))

	o.logger.Info("overlay starting",
		zap.String("monitor", o.display.Name),
		zap.Int("x", o.bounds.X),
		zap.Int("y", o.bounds.Y),
		zap.Int("width", o.bounds.Width),
		zap.Int("height", o.bounds.Height),
		zap.Int("fps", o.cfg.FPS))

	return ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
		X11ClassName:      "Aura",
		X11InstanceName:   "aura",
	})
}

// Update runs due scheduler tasks. ebiten calls it at the configured TPS.
func (o *Overlay) Update() error {
	if o.ctx != nil && o.ctx.Err() != nil {
		o.logger.Info("overlay stopping")
		return ebiten.Termination
	}

	o.refreshScale()
	o.sched.Step(time.Now())
	return nil
}

// Draw paints the latest state. The screen is cleared every frame.
func (o *Overlay) Draw(screen *ebiten.Image) {
	screen.Clear()
	if o.surface == nil {
		o.surface = newSurface()
	}
	o.surface.reset(screen, o.bounds)
	o.renderer.Render(o.surface, o.frame)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// refreshScale reads the monitor's device scale and, on the first call or when
// it changes, places the window over the work area in logical pixels.
func (o *Overlay) refreshScale() {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	if scale <= 0 {
		scale = 1
	}
	if o.placed && scale == o.scale {
		return
	}

	o.scale = scale
	o.bounds = o.area.Logical(scale)
	ebiten.SetWindowPosition(windowPosition(o.display, scale))
	ebiten.SetWindowSize(max(o.bounds.Width, 1), max(o.bounds.Height, 1))
	o.placed = true
	o.logger.Debug("overlay placed", zap.Float64("scale", scale), zap.Any("bounds", o.bounds))
}

// selectMonitor moves the window onto the ebiten monitor matching the RandR
// primary output.
func (o *Overlay) selectMonitor() {
	monitors := ebiten.AppendMonitors(nil)
	if len(monitors) == 0 {
		return
	}
	names := make([]string, len(monitors))
	for i, m := range monitors {
		names[i] = m.Name()
	}
	ebiten.SetMonitor(monitors[pickMonitor(names, o.display.Name)])
}
