package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInterpolate_ExactAtEveryStop(t *testing.T) {
	stops := DefaultStops()
	for _, s := range stops {
		assert.Equal(t, s.Color, Interpolate(s.At, stops), "stop at %g", s.At)
	}
}

func TestInterpolate_Clamps(t *testing.T) {
	stops := DefaultStops()

	for _, v := range []float64{-0.001, -1, -1e9} {
		assert.Equal(t, Interpolate(0, stops), Interpolate(v, stops))
	}
	for _, v := range []float64{1.001, 2, 1e9} {
		assert.Equal(t, Interpolate(1, stops), Interpolate(v, stops))
	}
}

func TestInterpolate_HalfRAMCapIsYellow(t *testing.T) {
	// 5% of a 10% cap.
	got := Interpolate(5.0/10.0, DefaultStops())
	assert.Equal(t, RGB{255, 255, 0}, got)
}

func TestInterpolate_Midpoints(t *testing.T) {
	stops := DefaultStops()

	tests := []struct {
		name string
		v    float64
		want RGB
	}{
		{name: "white to cyan", v: 0.125, want: RGB{127, 255, 255}},
		{name: "cyan to yellow", v: 0.375, want: RGB{127, 255, 127}},
		{name: "yellow to orange", v: 0.625, want: RGB{255, 210, 0}},
		{name: "orange to red", v: 0.875, want: RGB{255, 82, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Interpolate(tt.v, stops))
		})
	}
}

func TestInterpolate_RepeatedThreshold(t *testing.T) {
	stops := []Stop{
		{At: 0, Color: White},
		{At: 0.5, Color: Cyan},
		{At: 0.5, Color: Red},
		{At: 1, Color: Red},
	}
	assert.Equal(t, Cyan, Interpolate(0.5, stops))
	assert.Equal(t, Red, Interpolate(0.75, stops))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(DefaultStops()))

	assert.Error(t, Validate(nil))
	assert.Error(t, Validate([]Stop{{At: 0.1}, {At: 1}}))
	assert.Error(t, Validate([]Stop{{At: 0}, {At: 0.9}}))
	assert.Error(t, Validate([]Stop{{At: 0}, {At: 0.6}, {At: 0.4}, {At: 1}}))
}

func TestRGB_YAMLHex(t *testing.T) {
	var stops []Stop
	err := yaml.Unmarshal([]byte(`
- at: 0
  color: "#ffffff"
- at: 1
  color: ff0000
`), &stops)
	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, White, stops[0].Color)
	assert.Equal(t, Red, stops[1].Color)

	out, err := yaml.Marshal(Stop{At: 0.25, Color: Cyan})
	require.NoError(t, err)
	assert.Contains(t, string(out), "'#00ffff'")
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#fff", "#gggggg", "#1234567"} {
		_, err := ParseHex(in)
		assert.Error(t, err, in)
	}
}
