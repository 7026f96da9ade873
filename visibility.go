package rowan

// actorVisible implements the dual-window OR rule: an actor is visible
// iff its current position lies within the current window or its target
// lies within the pending window. This makes actors appear just before
// they scroll into frame and disappear only after they have fully
// scrolled out.
func actorVisible(pos, target GridPos, current, pending Window) bool {
	return current.Contains(pos) || pending.Contains(target)
}

// screenPlace converts a grid position to its pixel placement against
// the given window. Placement is always computed from the current
// window and current position, even when the pending window triggered
// visibility; the transition slide moves it onto the true target.
func screenPlace(pos GridPos, win Window, offX, offY, tileSize int) (x, y float64) {
	x = float64(tileSize * (pos.X + offX - win.XMin))
	y = float64(tileSize * (pos.Y + offY - win.YMin))
	return x, y
}

// updateVisibility recomputes every actor's visibility flag and, for
// visible actors, assigns screen placement including the in-flight
// slide: the board offset (opposite the camera's motion) plus the
// actor's own grid delta, clamped to a single step. Non-visible actors
// keep their last placement — no wasted positional writes.
func (b *Board) updateVisibility() {
	current := b.viewport.Window()
	pending := b.viewport.Pending()
	offX, offY := b.viewport.SmallWorldOffset()
	boardX, boardY := b.BoardOffset()
	slide := b.transition.Offset()

	visible := 0
	for _, a := range b.actors {
		pos := a.Position()
		target := a.Target()
		if !actorVisible(pos, target, current, pending) {
			a.SetVisible(false)
			continue
		}
		a.SetVisible(true)
		visible++

		x, y := screenPlace(pos, current, offX, offY, b.cfg.TileSize)
		x += float64(clampStep(target.X-pos.X)) * slide
		y += float64(clampStep(target.Y-pos.Y)) * slide
		a.SetScreenPosition(x+boardX, y+boardY)
	}
	b.stats.actorsVisible = visible
}

// BoardOffset returns the screen-space translation currently applied to
// the whole tile board. Zero at rest and exactly zero again the moment
// a transition completes. The board slides opposite the camera's
// motion; at a world edge the camera delta is zero and only actors move.
func (b *Board) BoardOffset() (x, y float64) {
	dx, dy := b.viewport.CameraDelta()
	slide := b.transition.Offset()
	return -float64(dx) * slide, -float64(dy) * slide
}
