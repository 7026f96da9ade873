package rowan

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Board is the session object tying the view layer together: it owns
// the viewport, the tile grid, the transition controller, the actor
// list, and the turn counter. One Board per loaded world.
//
// The per-frame ordering is fixed: advance-transition-or-read-input,
// then recompute visibility, then the tile-animation clock, then world
// sampling. All mutation happens synchronously inside Tick; Draw only
// emits the already-sampled state.
type Board struct {
	cfg     Config
	world   World
	sprites *SpriteSet

	viewport   *Viewport
	grid       *TileGrid
	transition *TransitionController

	actors []Actor
	hero   Actor

	turnsTaken   int
	debugEnabled bool
	animTimer    float32

	// OnRandomize, if set, is invoked when the cosmetic-randomize
	// intent fires. Grid state is never touched; actor appearance is
	// the caller's concern.
	OnRandomize func()

	stats frameStats
}

// NewBoard creates a board over the given world. Zero Config fields
// take the package defaults. The sprite set is validated once here: a
// layer with an empty sprite table is a configuration error, surfaced
// immediately rather than at draw time.
func NewBoard(cfg Config, world World, sprites *SpriteSet) (*Board, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if world == nil {
		return nil, fmt.Errorf("rowan: nil world")
	}
	if err := sprites.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		cfg:        cfg,
		world:      world,
		sprites:    sprites,
		viewport:   NewViewport(world.TilesWide(), world.TilesHigh(), cfg.ViewTilesWide, cfg.ViewTilesHigh),
		grid:       newTileGrid(cfg.ViewTilesWide, cfg.ViewTilesHigh, cfg.TileSize),
		transition: newTransitionController(cfg.TileSize, cfg.MoveDuration, cfg.Ease),
		animTimer:  cfg.TileAnimInterval,
	}
	b.viewport.Focus(world.SpawnPosition())
	return b, nil
}

// AddActor registers an actor for visibility and placement bookkeeping.
// An actor at rest must have target == position; AddActor enforces that.
func (b *Board) AddActor(a Actor) {
	if !b.transition.Active() {
		a.SetTarget(a.Position())
	}
	b.actors = append(b.actors, a)
}

// RemoveActor unregisters an actor. The actor itself is untouched;
// deletion is owned by the caller.
func (b *Board) RemoveActor(a Actor) {
	for i, existing := range b.actors {
		if existing == a {
			b.actors = append(b.actors[:i], b.actors[i+1:]...)
			return
		}
	}
}

// SetHero designates the actor that movement intents steer and the
// camera follows. The hero must also be registered with AddActor.
func (b *Board) SetHero(a Actor) {
	b.hero = a
}

// Actors returns the registered actor list. The returned slice MUST NOT
// be mutated.
func (b *Board) Actors() []Actor {
	return b.actors
}

// TurnsTaken returns the number of completed movement transitions.
// Exposed for HUD/logging; also feeds the day/night tint.
func (b *Board) TurnsTaken() int {
	return b.turnsTaken
}

// DebugEnabled reports whether the path-blocked overlay is on.
func (b *Board) DebugEnabled() bool {
	return b.debugEnabled
}

// Window returns the current viewport window. Exposed for HUD/logging.
func (b *Board) Window() Window {
	return b.viewport.Window()
}

// Transitioning reports whether a movement transition is in flight.
func (b *Board) Transitioning() bool {
	return b.transition.Active()
}

// Tick advances the board by dt seconds with the frame's raw input.
// Movement input only takes effect while no transition is active; the
// debug, restart, and randomize intents always apply.
func (b *Board) Tick(dt float64, in Input) {
	fdt := float32(dt)

	if in.ToggleDebug {
		b.debugEnabled = !b.debugEnabled
	}
	if in.Randomize && b.OnRandomize != nil {
		b.OnRandomize()
	}

	switch {
	case in.Restart:
		b.Restart()
	case b.transition.Active():
		if b.transition.Advance(fdt) {
			b.finishTransition()
		}
	default:
		b.tryMove(in.Direction())
	}

	b.updateVisibility()
	b.advanceTileAnimations(fdt)
	b.sampleTiles()

	if b.debugEnabled {
		b.logFrameStats()
	}
}

// tryMove begins a transition toward d if the destination is legal.
// Rejections (no hero, DirNone, out-of-bounds, path-blocked) are
// expected and silent: no transition starts and no turn is counted.
func (b *Board) tryMove(d Direction) {
	if d == DirNone || b.hero == nil {
		return
	}
	dx, dy := d.Delta()
	cur := b.hero.Position()
	dest := GridPos{X: cur.X + dx, Y: cur.Y + dy}
	if dest == cur {
		return
	}
	if dest.X < 0 || dest.X >= b.world.TilesWide() ||
		dest.Y < 0 || dest.Y >= b.world.TilesHigh() {
		return
	}
	if b.world.PathBlocked(dest.X, dest.Y) {
		return
	}
	if !b.transition.Begin(d) {
		return
	}
	// Publish targets immediately: the hero's destination cell and the
	// viewport's pending window, one step along the move axis.
	b.hero.SetTarget(dest)
	b.viewport.BeginTransition(d)
}

// finishTransition runs when the transition timer reaches zero: every
// actor snaps to its target, the pending window becomes current, the
// board offset is already back at the origin, and the turn counter
// advances exactly once.
func (b *Board) finishTransition() {
	for _, a := range b.actors {
		a.SetPosition(a.Target())
	}
	b.viewport.Commit()
	b.turnsTaken++
}

// Restart resets the session: turn counter to zero, hero back at the
// spawn cell, camera refocused, any in-flight transition discarded.
// Visibility and placement are recomputed on the same tick, with no
// transition animation.
func (b *Board) Restart() {
	b.turnsTaken = 0
	if b.transition.Active() {
		// Force the state machine back to rest; Advance past the full
		// duration clamps every actor-relevant value.
		b.transition.Advance(b.cfg.MoveDuration * 2)
	}
	spawn := b.world.SpawnPosition()
	if b.hero != nil {
		b.hero.SetPosition(spawn)
		b.hero.SetTarget(spawn)
	}
	for _, a := range b.actors {
		a.SetTarget(a.Position())
	}
	b.viewport.Focus(spawn)
	b.animTimer = b.cfg.TileAnimInterval
}

// Draw renders the ground and feature layers with the current slide
// offset. Draw the host's actor sprites after this, then DrawOverhead.
func (b *Board) Draw(screen *ebiten.Image) {
	offX, offY := b.BoardOffset()
	n := b.grid.draw(screen, LayerGround, b.sprites, offX, offY)
	n += b.grid.draw(screen, LayerFeature, b.sprites, offX, offY)
	if b.debugEnabled {
		b.stats.cellsDrawn = n
	}
}

// DrawOverhead renders the overhead layer above the host's actors.
func (b *Board) DrawOverhead(screen *ebiten.Image) {
	offX, offY := b.BoardOffset()
	n := b.grid.draw(screen, LayerOverhead, b.sprites, offX, offY)
	if b.debugEnabled {
		b.stats.cellsDrawn += n
	}
}
