package rowan

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUDWidget is a small self-updating overlay showing FPS/TPS, the turn
// count, the current window, and the debug-overlay state. It refreshes
// its text every ~0.25 seconds and renders with ebitenutil.DebugPrint.
type HUDWidget struct {
	board   *Board
	img     *ebiten.Image
	elapsed float64
	op      ebiten.DrawImageOptions
}

// NewHUDWidget creates a HUD overlay bound to the given board.
func NewHUDWidget(b *Board) *HUDWidget {
	return &HUDWidget{
		board: b,
		img:   ebiten.NewImage(220, 64),
	}
}

// Update refreshes the widget text on its internal clock.
func (h *HUDWidget) Update(dt float64) {
	h.elapsed += dt
	if h.elapsed < 0.25 {
		return
	}
	h.elapsed = 0

	h.img.Clear()
	// Semi-transparent background for readability.
	h.img.Fill(color.RGBA{0, 0, 0, 128})

	win := h.board.Window()
	debug := "off"
	if h.board.DebugEnabled() {
		debug = "on"
	}
	ebitenutil.DebugPrint(h.img, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nturn: %d\nwindow: (%d,%d)-(%d,%d)\ndebug: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		h.board.TurnsTaken(),
		win.XMin, win.YMin, win.XMax, win.YMax,
		debug))
}

// Draw blits the widget at (x, y) in screen space.
func (h *HUDWidget) Draw(screen *ebiten.Image, x, y float64) {
	h.op.GeoM.Reset()
	h.op.GeoM.Translate(x, y)
	screen.DrawImage(h.img, &h.op)
}
