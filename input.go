package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is one frame's raw input snapshot. Movement fields are
// level-triggered (true while the key is held) so a held key re-fires a
// movement intent the moment a transition completes; the others are
// edge-triggered (true on the frame the key goes down).
type Input struct {
	Up, Right, Down, Left bool

	// ToggleDebug flips the path-blocked debug overlay.
	ToggleDebug bool
	// Restart force-restarts the world: turn counter, hero position,
	// and camera focus reset immediately, with no transition.
	Restart bool
	// Randomize is the cosmetic-randomize intent. It never touches grid
	// state; the board only forwards it to Board.OnRandomize.
	Randomize bool
}

// Direction resolves the movement keys to a single intent. When several
// are held, the priority is up, right, down, left.
func (in Input) Direction() Direction {
	switch {
	case in.Up:
		return DirUp
	case in.Right:
		return DirRight
	case in.Down:
		return DirDown
	case in.Left:
		return DirLeft
	default:
		return DirNone
	}
}

// ReadKeyboard polls the default key bindings into an Input snapshot:
// arrows or WASD to move, F1 for the debug overlay, R to restart, and C
// to reroll cosmetics. Call once per Tick from the game loop.
//
// Note the grid convention: UP increases Y. The up arrow maps to DirUp
// regardless of how the host orients its world rows.
func ReadKeyboard() Input {
	return Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),

		ToggleDebug: inpututil.IsKeyJustPressed(ebiten.KeyF1),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
		Randomize:   inpututil.IsKeyJustPressed(ebiten.KeyC),
	}
}
