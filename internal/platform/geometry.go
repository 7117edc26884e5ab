package platform

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Expand grows the rectangle by d pixels on every side. Negative d shrinks it.
func (r Rect) Expand(d int) Rect {
	return Rect{
		X:      r.X - d,
		Y:      r.Y - d,
		Width:  r.Width + 2*d,
		Height: r.Height + 2*d,
	}
}

// Translate shifts the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlap of r and o, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Bounds is an edge-based rectangle as reported by the window system.
type Bounds struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (b Bounds) Width() int  { return b.Right - b.Left }
func (b Bounds) Height() int { return b.Bottom - b.Top }

// Logical converts physical-pixel bounds to a logical Rect by dividing by scale.
// Coordinates truncate toward zero. A non-positive scale is treated as 1.
func (b Bounds) Logical(scale float64) Rect {
	if scale <= 0 {
		scale = 1
	}
	return Rect{
		X:      int(float64(b.Left) / scale),
		Y:      int(float64(b.Top) / scale),
		Width:  int(float64(b.Width()) / scale),
		Height: int(float64(b.Height()) / scale),
	}
}

// Bounds converts the rectangle to edge form.
func (r Rect) Bounds() Bounds {
	return Bounds{Left: r.X, Top: r.Y, Right: r.X + r.Width, Bottom: r.Y + r.Height}
}

// Display is one monitor in root-window coordinates (physical pixels).
type Display struct {
	// Name is the RandR output name, e.g. "DP-1".
	Name    string
	Monitor Rect
	// WorkArea is Monitor minus docks and panels.
	WorkArea Rect
}
