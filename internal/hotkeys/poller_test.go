package hotkeys

import (
	"errors"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

type fakeKeymap struct {
	mapping map[string][]xproto.Keycode
	held    map[xproto.Keycode]bool
	lookups int
	err     error
}

func (f *fakeKeymap) Keycodes(name string) []xproto.Keycode {
	f.lookups++
	return f.mapping[name]
}

func (f *fakeKeymap) KeysDown(codes []xproto.Keycode) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, c := range codes {
		if f.held[c] {
			return true, nil
		}
	}
	return false, nil
}

func TestPoller_ReportsHeldKey(t *testing.T) {
	src := &fakeKeymap{
		mapping: map[string][]xproto.Keycode{"F8": {74}},
		held:    map[xproto.Keycode]bool{74: true},
	}
	p := newPoller(src, nil)

	assert.True(t, p.IsKeyDown("F8"))
	src.held[74] = false
	assert.False(t, p.IsKeyDown("F8"))
}

func TestPoller_CachesKeycodeLookup(t *testing.T) {
	src := &fakeKeymap{mapping: map[string][]xproto.Keycode{"F8": {74}}}
	p := newPoller(src, nil)

	for i := 0; i < 5; i++ {
		p.IsKeyDown("F8")
	}
	assert.Equal(t, 1, src.lookups)
}

func TestPoller_UnknownKeyIsNeverDown(t *testing.T) {
	src := &fakeKeymap{mapping: map[string][]xproto.Keycode{}}
	p := newPoller(src, nil)

	assert.False(t, p.IsKeyDown("NoSuchKey"))
	assert.False(t, p.IsKeyDown(""))
}

func TestPoller_QueryErrorReadsAsReleased(t *testing.T) {
	src := &fakeKeymap{
		mapping: map[string][]xproto.Keycode{"F8": {74}},
		held:    map[xproto.Keycode]bool{74: true},
		err:     errors.New("connection reset"),
	}
	p := newPoller(src, nil)

	assert.False(t, p.IsKeyDown("F8"))
}

func TestNewPoller_WithoutX11Access(t *testing.T) {
	p := NewPoller(struct{}{}, nil)
	assert.False(t, p.IsKeyDown("F8"))
}

func TestPoller_CachesMissingKeycodes(t *testing.T) {
	src := &fakeKeymap{mapping: map[string][]xproto.Keycode{}}
	p := newPoller(src, nil)

	for i := 0; i < 3; i++ {
		assert.False(t, p.IsKeyDown("XF86Unknown"))
	}
	assert.Equal(t, 1, src.lookups)
}
