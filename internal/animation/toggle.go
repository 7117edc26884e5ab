package animation

// Toggle flips once per key press. Holding the key does not repeat; the
// key must be released before the next press counts.
type Toggle struct {
	held bool
	on   bool
}

// Sample feeds the current key state and reports whether the toggle flipped.
func (t *Toggle) Sample(down bool) bool {
	if !down {
		t.held = false
		return false
	}
	if t.held {
		return false
	}
	t.held = true
	t.on = !t.on
	return true
}

// On reports the toggled state.
func (t *Toggle) On() bool {
	return t.on
}
