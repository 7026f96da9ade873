package rowan

import "time"

// resolveCellColor picks the final tint for one cell by priority:
// the fixed debug color when the overlay is on and the cell is
// path-blocked; else the light's color when the cell is lit and the
// light's tint scalar is brighter than the ambient scalar; else the
// uniform ambient day/night tint. The light's full color is used, not a
// blend: once brighter, the light wins outright.
func resolveCellColor(debugOn, blocked bool, debugColor Color,
	lightLevel int, lightTint, ambient float64, lightColor Color) Color {
	if debugOn && blocked {
		return debugColor
	}
	if lightLevel > 0 && lightTint > ambient {
		return lightColor
	}
	return Color{R: ambient, G: ambient, B: ambient, A: 1}
}

// sampleTiles queries the world for every layer and every cell of the
// bordered window (skipping the four unused corners), resolves the
// final color, and updates the grid's draw state. Runs once per frame.
func (b *Board) sampleTiles() {
	var t0 time.Time
	if b.debugEnabled {
		t0 = time.Now()
	}

	win := b.viewport.Window()
	offX, offY := b.viewport.SmallWorldOffset()
	ambient := b.world.DayTint(b.turnsTaken, b.cfg.TurnsPerDay)

	sampled, cleared := 0, 0
	for y := -1; y <= b.cfg.ViewTilesHigh; y++ {
		for x := -1; x <= b.cfg.ViewTilesWide; x++ {
			if b.grid.isCorner(x, y) {
				continue
			}
			wx := win.XMin - offX + x
			wy := win.YMin - offY + y

			blocked := b.world.PathBlocked(wx, wy)
			level := b.world.LightLevel(wx, wy)
			var tint float64
			var lightColor Color
			if level > 0 {
				tint = b.world.LightTint(level)
				lightColor = b.world.LightTintColor(level)
			}
			c := resolveCellColor(b.debugEnabled, blocked, b.cfg.DebugColor,
				level, tint, ambient, lightColor)

			for l := Layer(0); l < NumLayers; l++ {
				tile := b.world.Tile(l, wx, wy)
				if tile == EmptyTile {
					b.grid.Clear(l, x, y)
					cleared++
					continue
				}
				b.grid.Set(l, x, y, tile, c)
				sampled++
			}
		}
	}

	if b.debugEnabled {
		b.stats.sampleTime = time.Since(t0)
		b.stats.cellsSampled = sampled
		b.stats.cellsCleared = cleared
	}
}

// advanceTileAnimations ticks the shared animation clock down and, on
// expiry, resets it to the full interval and asks the world to step its
// animated tiles. Decoupled from transitions and input; the reset is to
// the fixed period, not overshoot-accumulated, so the timer is never
// negative after an update.
func (b *Board) advanceTileAnimations(dt float32) {
	b.animTimer -= dt
	if b.animTimer > 0 {
		return
	}
	b.animTimer = b.cfg.TileAnimInterval
	b.world.AdvanceTileAnimations()
}
