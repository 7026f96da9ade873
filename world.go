package rowan

// World supplies tile, pathing, and lighting data to a Board. A World
// owns the full grid; the board only ever samples the visible window
// plus its one-tile border, every frame.
//
// Coordinates passed to World methods may lie outside the world bounds
// (the window border can hang past an edge, and small worlds are drawn
// centered). Implementations must answer out-of-range queries with
// EmptyTile, blocked pathing, and zero light rather than panic.
type World interface {
	// SpawnPosition returns the hero's starting cell.
	SpawnPosition() GridPos
	// TilesWide and TilesHigh are the world dimensions in tiles.
	TilesWide() int
	TilesHigh() int
	// PathBlocked reports whether actors cannot occupy (x, y).
	PathBlocked(x, y int) bool
	// Tile returns the tile type at (x, y) on the given layer, or
	// EmptyTile if the layer has no tile there.
	Tile(layer Layer, x, y int) int
	// LightLevel returns the light intensity at (x, y); 0 means unlit.
	LightLevel(x, y int) int
	// LightTint returns the tint scalar for a light level. The board
	// compares it against the ambient day/night tint: the light's color
	// is only used when its tint is brighter.
	LightTint(level int) float64
	// LightTintColor returns the full color applied near lights of the
	// given level.
	LightTintColor(level int) Color
	// DayTint returns the ambient time-of-day tint scalar in [0, 1]
	// for the given turn count and day length.
	DayTint(turnsTaken, turnsPerDay int) float64
	// AdvanceTileAnimations steps animated tiles to their next frame.
	// Called by the board on a fixed clock, independent of movement.
	AdvanceTileAnimations()
}

// Actor is the view-side contract for an on-screen entity. The board
// reads and writes grid position, target, visibility, and screen
// placement; appearance and lifetime stay with the caller.
//
// Outside a transition an actor's target equals its position. During a
// transition the board interpolates between the two and snaps position
// to target on completion.
type Actor interface {
	Position() GridPos
	SetPosition(GridPos)
	Target() GridPos
	SetTarget(GridPos)
	Visible() bool
	SetVisible(bool)
	// SetScreenPosition assigns the pixel placement of the actor's
	// tile-aligned origin. Only called while the actor is visible.
	SetScreenPosition(x, y float64)
}
