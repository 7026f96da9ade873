package rowan

// Viewport tracks the visible window bounds in grid coordinates, both
// for the current frame and for the window the camera is transitioning
// toward. Window size is fixed; when the world is smaller than the
// window on an axis, a small-world offset centers the drawn area and
// the camera never scrolls on that axis.
//
// Viewport is a passive data holder: the Board decides when transitions
// begin and commit.
type Viewport struct {
	worldW, worldH int
	viewW, viewH   int

	// Current window.
	xMin, xMax, yMin, yMax int
	// Pending window, the destination of an in-flight transition.
	// Equal to the current window at rest.
	newXMin, newXMax, newYMin, newYMax int

	// Small-world centering offsets, >= 0.
	offsetX, offsetY int
}

// NewViewport creates a viewport over a worldW x worldH grid showing a
// viewW x viewH window, focused on the world origin.
func NewViewport(worldW, worldH, viewW, viewH int) *Viewport {
	v := &Viewport{
		worldW: worldW,
		worldH: worldH,
		viewW:  viewW,
		viewH:  viewH,
	}
	if worldW < viewW {
		v.offsetX = (viewW - worldW) / 2
	}
	if worldH < viewH {
		v.offsetY = (viewH - worldH) / 2
	}
	v.Focus(GridPos{})
	return v
}

// maxMin returns the largest legal window minimum on an axis.
func maxMin(world, view int) int {
	m := world - view
	if m < 0 {
		return 0
	}
	return m
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Focus centers the window on p, clamped to the world bounds, and
// discards any pending window. Used at spawn and on restart.
func (v *Viewport) Focus(p GridPos) {
	v.xMin = clampRange(p.X-v.viewW/2, 0, maxMin(v.worldW, v.viewW))
	v.yMin = clampRange(p.Y-v.viewH/2, 0, maxMin(v.worldH, v.viewH))
	v.xMax = v.xMin + v.viewW - 1
	v.yMax = v.yMin + v.viewH - 1
	v.newXMin, v.newXMax = v.xMin, v.xMax
	v.newYMin, v.newYMax = v.yMin, v.yMax
}

// Window returns the current window.
func (v *Viewport) Window() Window {
	return Window{XMin: v.xMin, XMax: v.xMax, YMin: v.yMin, YMax: v.yMax}
}

// Pending returns the window an in-flight transition is heading toward.
// Equal to Window() at rest, and on axes where the camera cannot scroll.
func (v *Viewport) Pending() Window {
	return Window{XMin: v.newXMin, XMax: v.newXMax, YMin: v.newYMin, YMax: v.newYMax}
}

// SmallWorldOffset returns the centering offsets for worlds smaller
// than the window. Zero for worlds at least as large as the window.
func (v *Viewport) SmallWorldOffset() (x, y int) {
	return v.offsetX, v.offsetY
}

// BeginTransition sets the pending window one tile along d, clamped to
// the world bounds. At a world edge the pending window equals the
// current window: the camera cannot scroll further even though actors
// may still step into the edge row.
func (v *Viewport) BeginTransition(d Direction) {
	dx, dy := d.Delta()
	v.newXMin = clampRange(v.xMin+dx, 0, maxMin(v.worldW, v.viewW))
	v.newYMin = clampRange(v.yMin+dy, 0, maxMin(v.worldH, v.viewH))
	v.newXMax = v.newXMin + v.viewW - 1
	v.newYMax = v.newYMin + v.viewH - 1
}

// CameraDelta returns the pending window's offset from the current
// window. Each component is -1, 0, or +1; both are 0 at rest or when
// the move is suppressed at a world edge.
func (v *Viewport) CameraDelta() (dx, dy int) {
	return v.newXMin - v.xMin, v.newYMin - v.yMin
}

// Commit makes the pending window current. Called when a transition's
// timer reaches zero.
func (v *Viewport) Commit() {
	v.xMin, v.xMax = v.newXMin, v.newXMax
	v.yMin, v.yMax = v.newYMin, v.newYMax
}
