package rowan

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the neutral tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// GridPos is a discrete world-tile coordinate.
type GridPos struct {
	X, Y int
}

// EmptyTile is the sentinel tile type meaning "no tile on this layer".
const EmptyTile = -1

// Direction is one of the four grid movement directions, or DirNone.
type Direction uint8

const (
	DirNone  Direction = iota // no movement / transition at rest
	DirUp                     // +Y
	DirRight                  // +X
	DirDown                   // -Y
	DirLeft                   // -X
)

// Delta returns the grid step for this direction. UP and RIGHT increase
// the coordinate; DOWN and LEFT decrease it. DirNone returns (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "none"
	}
}

// Layer identifies one of the board's tile layers. The set is closed:
// every layer must have a non-empty sprite table at startup.
type Layer uint8

const (
	LayerGround   Layer = iota // base terrain, drawn first
	LayerFeature                // walls, furniture, doodads
	LayerOverhead               // drawn above actors (canopies, arches)

	// NumLayers is the number of tile layers on a board.
	NumLayers = 3
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerGround:
		return "ground"
	case LayerFeature:
		return "feature"
	case LayerOverhead:
		return "overhead"
	default:
		return "invalid"
	}
}

// Window is a rectangular set of world-grid cells, inclusive on all four
// sides. A Window always has fixed size ViewTilesWide x ViewTilesHigh.
type Window struct {
	XMin, XMax, YMin, YMax int
}

// Contains reports whether p lies within the window. Cells on the edge
// are inside.
func (w Window) Contains(p GridPos) bool {
	return p.X >= w.XMin && p.X <= w.XMax &&
		p.Y >= w.YMin && p.Y <= w.YMax
}

// Width returns the window width in tiles.
func (w Window) Width() int { return w.XMax - w.XMin + 1 }

// Height returns the window height in tiles.
func (w Window) Height() int { return w.YMax - w.YMin + 1 }

// clampStep limits a grid delta to a single step. Actors never slide
// more than one tile per transition even if their target is further out.
func clampStep(d int) int {
	if d > 1 {
		return 1
	}
	if d < -1 {
		return -1
	}
	return d
}
