package overlay

import "github.com/1broseidon/aura/internal/platform"

// pickMonitor returns the index of the monitor called name. ebiten lists the
// primary monitor first, so an unknown name falls back to index 0.
func pickMonitor(names []string, name string) int {
	if name == "" {
		return 0
	}
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

// windowPosition is the work area's origin in device-independent pixels
// relative to the monitor's upper-left corner, the origin ebiten positions
// windows from.
func windowPosition(d platform.Display, scale float64) (x, y int) {
	if scale <= 0 {
		scale = 1
	}
	dx := d.WorkArea.X - d.Monitor.X
	dy := d.WorkArea.Y - d.Monitor.Y
	return int(float64(dx) / scale), int(float64(dy) / scale)
}
