// Package render paints the aura border and zen mask from a VisualState.
package render

import (
	"image/color"
	"math"

	"github.com/1broseidon/aura/internal/animation"
	"github.com/1broseidon/aura/internal/config"
	"github.com/1broseidon/aura/internal/palette"
	"github.com/1broseidon/aura/internal/platform"
)

// Surface is a frame being painted. Coordinates passed to FillRect and
// StrokeRect are local to the surface; Bounds reports where the surface
// sits on screen in logical pixels.
type Surface interface {
	Bounds() platform.Rect
	FillRect(r platform.Rect, c color.NRGBA)
	// StrokeRect outlines r with a line of the given width centered on its
	// edge, with rounded joins and caps.
	StrokeRect(r platform.Rect, width float64, c color.NRGBA)
}

const (
	layerWidthStep = 1.5
	layerPeakAlpha = 140
	maskMargin     = 1
)

// Renderer draws one frame per call. It keeps no per-frame state.
type Renderer struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render paints vs onto s. Nothing is drawn without a target.
func (r *Renderer) Render(s Surface, vs animation.VisualState) {
	origin := s.Bounds()
	target := vs.Target.Translate(-origin.X, -origin.Y)

	if vs.ZenMode && vs.HasTarget {
		full := platform.Rect{Width: origin.Width, Height: origin.Height}
		mask := color.NRGBA{A: uint8(r.cfg.ZenModeAlpha)}
		for _, part := range MaskRegion(full, target.Expand(maskMargin)) {
			s.FillRect(part, mask)
		}
	}

	if !vs.HasTarget {
		return
	}

	base := r.BaseColor(vs.DisplayRAM)
	b := BreathIntensity(vs.BreathPhase)
	for _, layer := range GlowLayers(target, r.cfg.BorderWidth, r.cfg.GlowLayers, b) {
		s.StrokeRect(layer.Rect, layer.Width, base.NRGBA(layer.Alpha))
	}
}

// BaseColor maps smoothed RAM usage against the sensitivity cap to a hue.
func (r *Renderer) BaseColor(displayRAM float64) palette.RGB {
	return palette.Interpolate(clamp01(displayRAM/r.cfg.RAMSensitivityCap), r.cfg.ColorStops)
}

// BreathIntensity maps the breath phase to [0.2, 1.0].
func BreathIntensity(phase float64) float64 {
	return 0.2 + 0.8*(math.Sin(phase)+1)/2
}

// GlowLayer is one stroked outline of the border.
type GlowLayer struct {
	Rect  platform.Rect
	Width float64
	Alpha uint8
}

// GlowLayers returns n outlines nesting outward from target, widest and
// faintest last.
func GlowLayers(target platform.Rect, baseWidth float64, n int, intensity float64) []GlowLayer {
	layers := make([]GlowLayer, 0, n)
	for i := 0; i < n; i++ {
		layers = append(layers, GlowLayer{
			Rect:  target.Expand(i),
			Width: baseWidth + float64(i)*layerWidthStep,
			Alpha: uint8(int(layerPeakAlpha * intensity / float64(i+1))),
		})
	}
	return layers
}

// MaskRegion returns full minus hole as at most four disjoint rectangles.
func MaskRegion(full, hole platform.Rect) []platform.Rect {
	hole = hole.Intersect(full)
	if hole.Empty() {
		if full.Empty() {
			return nil
		}
		return []platform.Rect{full}
	}

	fullRight, fullBottom := full.X+full.Width, full.Y+full.Height
	holeRight, holeBottom := hole.X+hole.Width, hole.Y+hole.Height

	parts := []platform.Rect{
		{X: full.X, Y: full.Y, Width: full.Width, Height: hole.Y - full.Y},
		{X: full.X, Y: holeBottom, Width: full.Width, Height: fullBottom - holeBottom},
		{X: full.X, Y: hole.Y, Width: hole.X - full.X, Height: hole.Height},
		{X: holeRight, Y: hole.Y, Width: fullRight - holeRight, Height: hole.Height},
	}
	out := parts[:0]
	for _, p := range parts {
		if !p.Empty() {
			out = append(out, p)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
