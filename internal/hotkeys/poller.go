package hotkeys

import (
	"github.com/1broseidon/aura/internal/platform"
	"github.com/1broseidon/aura/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
	"go.uber.org/zap"
)

// keymapSource is the slice of the X11 connection the poller needs.
type keymapSource interface {
	Keycodes(keyName string) []xproto.Keycode
	KeysDown(keycodes []xproto.Keycode) (bool, error)
}

// x11Accessor is an optional interface for backends that expose X11 internals.
type x11Accessor interface {
	Connection() *x11.Connection
}

// Poller answers "is this key held right now" by querying the global keymap.
// No grab is installed, so the key still reaches the focused application.
// It is not safe for concurrent use; the animator queries it from the
// scheduler's thread only.
type Poller struct {
	src    keymapSource
	logger *zap.Logger
	codes  map[string][]xproto.Keycode
}

var _ platform.KeyState = (*Poller)(nil)

// NewPoller builds a poller from a window system backend. Backends without
// X11 access produce a poller that never reports a key as down.
func NewPoller(backend any, logger *zap.Logger) *Poller {
	var src keymapSource
	if accessor, ok := backend.(x11Accessor); ok {
		if conn := accessor.Connection(); conn != nil {
			src = conn
		}
	}
	return newPoller(src, logger)
}

func newPoller(src keymapSource, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		src:    src,
		logger: logger,
		codes:  make(map[string][]xproto.Keycode),
	}
}

// IsKeyDown reports whether the named key is currently pressed.
func (p *Poller) IsKeyDown(key string) bool {
	if p == nil || p.src == nil || key == "" {
		return false
	}

	codes := p.keycodes(key)
	if len(codes) == 0 {
		return false
	}

	down, err := p.src.KeysDown(codes)
	if err != nil {
		p.logger.Debug("keymap query failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return down
}

func (p *Poller) keycodes(key string) []xproto.Keycode {
	if codes, ok := p.codes[key]; ok {
		return codes
	}
	codes := p.src.Keycodes(key)
	if len(codes) == 0 {
		p.logger.Warn("key name has no keycode in the current keyboard mapping", zap.String("key", key))
	}
	p.codes[key] = codes
	return codes
}
