// Package palette maps a normalized load value onto a gradient of color stops.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGB is an opaque 8-bit color. Alpha is applied by the renderer per layer.
type RGB struct {
	R, G, B uint8
}

// NRGBA returns the color with the given straight alpha.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func (c RGB) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHex(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Stop anchors a color at a threshold in [0,1].
type Stop struct {
	At    float64 `yaml:"at"`
	Color RGB     `yaml:"color"`
}

var (
	White  = RGB{255, 255, 255}
	Cyan   = RGB{0, 255, 255}
	Yellow = RGB{255, 255, 0}
	Orange = RGB{255, 165, 0}
	Red    = RGB{255, 0, 0}
)

// DefaultStops escalates from white at idle to red at the sensitivity cap.
func DefaultStops() []Stop {
	return []Stop{
		{At: 0.0, Color: White},
		{At: 0.25, Color: Cyan},
		{At: 0.5, Color: Yellow},
		{At: 0.75, Color: Orange},
		{At: 1.0, Color: Red},
	}
}

// Validate checks that stops are sorted ascending and span 0 and 1.
func Validate(stops []Stop) error {
	if len(stops) < 2 {
		return fmt.Errorf("need at least two color stops, got %d", len(stops))
	}
	if stops[0].At != 0 {
		return fmt.Errorf("first color stop must be at 0, got %g", stops[0].At)
	}
	if last := stops[len(stops)-1].At; last != 1 {
		return fmt.Errorf("last color stop must be at 1, got %g", last)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].At < stops[i-1].At {
			return fmt.Errorf("color stops must be sorted: %g follows %g", stops[i].At, stops[i-1].At)
		}
	}
	return nil
}

// Interpolate returns the color at v, linearly blended between the two
// bracketing stops. Values outside [0,1] clamp to the end colors. Channels
// truncate toward zero. stops must satisfy Validate.
func Interpolate(v float64, stops []Stop) RGB {
	if len(stops) == 0 {
		return RGB{}
	}
	if v <= stops[0].At {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if v >= last.At {
		return last.Color
	}

	for i := 0; i < len(stops)-1; i++ {
		lo, hi := stops[i], stops[i+1]
		if v < lo.At || v > hi.At {
			continue
		}
		span := hi.At - lo.At
		if span <= 0 {
			return hi.Color
		}
		t := (v - lo.At) / span
		return RGB{
			R: lerp(lo.Color.R, hi.Color.R, t),
			G: lerp(lo.Color.G, hi.Color.G, t),
			B: lerp(lo.Color.B, hi.Color.B, t),
		}
	}
	return last.Color
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}
