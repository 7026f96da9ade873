// Package rowan is a lockstep tile-board view layer for [Ebitengine].
//
// Rowan renders a fixed-size scrolling window over a larger discrete tile
// grid and animates the camera and on-screen actors through grid-to-grid
// movement transitions. It is the presentation/controller half of a
// turn-lockstep tile game: world data, actor appearance, and game rules
// stay on your side of the [World] and [Actor] interfaces.
//
// # Quick start
//
// Create a [Board] from a [Config], a [World], and a [SpriteSet], then
// drive it from your game loop:
//
//	board, err := rowan.NewBoard(rowan.Config{TileSize: 32}, world, sprites)
//	if err != nil {
//		log.Fatal(err)
//	}
//	board.AddActor(hero)
//	board.SetHero(hero)
//
//	func (g *Game) Update() error {
//		g.board.Tick(1.0/float64(ebiten.TPS()), rowan.ReadKeyboard())
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.board.Draw(screen)       // ground + feature layers
//		g.drawActors(screen)       // your sprites, at their assigned placements
//		g.board.DrawOverhead(screen)
//	}
//
// # Movement model
//
// Movement is lockstep: at most one transition is in flight at a time,
// shared by the camera and every actor. A movement intent shifts the
// hero's target cell and the viewport's pending window by exactly one
// tile, then the board slides for a fixed duration until grid state and
// screen state agree again. Input is sampled every frame but movement
// has no effect while a transition is active, so a held key simply
// re-fires the moment the gate reopens.
//
// # Coordinates
//
// Grid coordinates are integers with UP and RIGHT increasing the
// coordinate. Screen placement is TileSize * (grid - windowMin +
// smallWorldOffset) with no axis flip; worlds that want screen-up can
// flip rows when building their data.
//
// Rowan is not safe for concurrent use: call Tick and Draw only from
// the Ebitengine game loop goroutine.
//
// [Ebitengine]: https://ebitengine.org
package rowan
