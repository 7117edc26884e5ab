package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/keybind"
)

// Keycodes resolves a key name such as "F8" to every keycode that produces it.
func (c *Connection) Keycodes(keyName string) []xproto.Keycode {
	return keybind.StrToKeycodes(c.XUtil, keyName)
}

// KeysDown polls the server keymap and reports whether any of the keycodes is held.
// The query is global: it sees keys regardless of which client has focus.
func (c *Connection) KeysDown(keycodes []xproto.Keycode) (bool, error) {
	if len(keycodes) == 0 {
		return false, nil
	}
	reply, err := xproto.QueryKeymap(c.XUtil.Conn()).Reply()
	if err != nil {
		return false, fmt.Errorf("failed to query keymap: %w", err)
	}
	for _, kc := range keycodes {
		if keymapHas(reply.Keys, kc) {
			return true, nil
		}
	}
	return false, nil
}

func keymapHas(keys []byte, kc xproto.Keycode) bool {
	idx := int(kc) / 8
	if idx >= len(keys) {
		return false
	}
	return keys[idx]&(1<<(uint(kc)%8)) != 0
}
