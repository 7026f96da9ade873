package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// gridCell is one drawable cell on one layer: a tile type index plus
// the resolved frame color.
type gridCell struct {
	tileType int
	color    Color
}

// TileGrid is the layered cell store for the visible window plus a
// one-tile border on every side. The border pre-stages transition
// content; its four outer corners are never populated. Local
// coordinates range over [-1, viewW] x [-1, viewH].
//
// The grid owns the draw targets: a preallocated vertex/index buffer
// per frame, 4 vertices and 6 indices per cell (the index topology
// never changes).
type TileGrid struct {
	viewW, viewH int
	cols, rows   int // viewW+2, viewH+2
	tileSize     int

	layers [NumLayers][]gridCell

	vertices []ebiten.Vertex
	indices  []uint16
}

func newTileGrid(viewW, viewH, tileSize int) *TileGrid {
	g := &TileGrid{
		viewW:    viewW,
		viewH:    viewH,
		cols:     viewW + 2,
		rows:     viewH + 2,
		tileSize: tileSize,
	}
	n := g.cols * g.rows
	for l := range g.layers {
		cells := make([]gridCell, n)
		for i := range cells {
			cells[i].tileType = EmptyTile
		}
		g.layers[l] = cells
	}

	g.vertices = make([]ebiten.Vertex, n*4)
	g.indices = make([]uint16, n*6)
	for i := 0; i < n; i++ {
		base := uint16(i * 4)
		off := i * 6
		g.indices[off+0] = base + 0
		g.indices[off+1] = base + 1
		g.indices[off+2] = base + 2
		g.indices[off+3] = base + 1
		g.indices[off+4] = base + 3
		g.indices[off+5] = base + 2
	}
	return g
}

// index maps local coordinates to the flat cell index.
func (g *TileGrid) index(x, y int) int {
	return (y+1)*g.cols + (x + 1)
}

// inBounds reports whether (x, y) lies in [-1, viewW] x [-1, viewH].
func (g *TileGrid) inBounds(x, y int) bool {
	return x >= -1 && x <= g.viewW && y >= -1 && y <= g.viewH
}

// isCorner reports whether (x, y) is one of the four unused border
// corners outside the visible window's diagonals.
func (g *TileGrid) isCorner(x, y int) bool {
	return (x == -1 || x == g.viewW) && (y == -1 || y == g.viewH)
}

// Set stores a tile type and frame color at a local cell. Writes to the
// unused corners or outside the bordered range are ignored.
func (g *TileGrid) Set(layer Layer, x, y, tileType int, c Color) {
	if !g.inBounds(x, y) || g.isCorner(x, y) {
		return
	}
	i := g.index(x, y)
	g.layers[layer][i].tileType = tileType
	g.layers[layer][i].color = c
}

// Clear marks a local cell empty on the given layer.
func (g *TileGrid) Clear(layer Layer, x, y int) {
	if !g.inBounds(x, y) || g.isCorner(x, y) {
		return
	}
	g.layers[layer][g.index(x, y)].tileType = EmptyTile
}

// Tile returns the tile type stored at a local cell, or EmptyTile for
// empty, corner, or out-of-range cells.
func (g *TileGrid) Tile(layer Layer, x, y int) int {
	if !g.inBounds(x, y) || g.isCorner(x, y) {
		return EmptyTile
	}
	return g.layers[layer][g.index(x, y)].tileType
}

// cellColor returns the resolved frame color at a local cell.
func (g *TileGrid) cellColor(layer Layer, x, y int) Color {
	return g.layers[layer][g.index(x, y)].color
}

// draw fills the vertex buffer with the layer's non-empty cells,
// translated by the board slide offset, and submits one DrawTriangles
// call. An out-of-range tile type panics via SpriteSet.region; that is
// a data/asset mismatch, not a runtime-recoverable condition.
func (g *TileGrid) draw(screen *ebiten.Image, layer Layer, sprites *SpriteSet, offX, offY float64) int {
	if sprites.Sheet == nil {
		panic("rowan: sprite set has no sheet image")
	}

	ts := float32(g.tileSize)
	cells := g.layers[layer]
	count := 0
	for y := -1; y <= g.viewH; y++ {
		for x := -1; x <= g.viewW; x++ {
			if g.isCorner(x, y) {
				continue
			}
			cell := &cells[g.index(x, y)]
			if cell.tileType == EmptyTile {
				continue
			}
			region := sprites.region(layer, cell.tileType)

			sx := float32(region.X)
			sy := float32(region.Y)
			dx := float32(float64(x*g.tileSize) + offX)
			dy := float32(float64(y*g.tileSize) + offY)

			// Premultiply the cell color.
			a := float32(cell.color.A)
			cr := float32(cell.color.R) * a
			cg := float32(cell.color.G) * a
			cb := float32(cell.color.B) * a

			v := g.vertices[count*4:]
			v[0] = ebiten.Vertex{DstX: dx, DstY: dy, SrcX: sx, SrcY: sy,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a}
			v[1] = ebiten.Vertex{DstX: dx + ts, DstY: dy, SrcX: sx + float32(region.Width), SrcY: sy,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a}
			v[2] = ebiten.Vertex{DstX: dx, DstY: dy + ts, SrcX: sx, SrcY: sy + float32(region.Height),
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a}
			v[3] = ebiten.Vertex{DstX: dx + ts, DstY: dy + ts, SrcX: sx + float32(region.Width), SrcY: sy + float32(region.Height),
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: a}
			count++
		}
	}
	if count == 0 {
		return 0
	}

	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	screen.DrawTriangles(g.vertices[:count*4], g.indices[:count*6], sprites.Sheet, op)
	return count
}
