package rowan

import "testing"

// stubWorld is a minimal World for board tests: uniform ground tiles,
// optional feature tiles, a blocked set, point lights, and a fixed
// ambient tint.
type stubWorld struct {
	w, h  int
	spawn GridPos

	blocked    map[GridPos]bool
	features   map[GridPos]int
	lights     map[GridPos]int
	tints      map[int]float64
	tintColors map[int]Color

	day       float64
	animCalls int
}

func newStubWorld(w, h int, spawn GridPos) *stubWorld {
	return &stubWorld{
		w: w, h: h, spawn: spawn,
		blocked:    map[GridPos]bool{},
		features:   map[GridPos]int{},
		lights:     map[GridPos]int{},
		tints:      map[int]float64{},
		tintColors: map[int]Color{},
		day:        1,
	}
}

func (s *stubWorld) SpawnPosition() GridPos { return s.spawn }
func (s *stubWorld) TilesWide() int         { return s.w }
func (s *stubWorld) TilesHigh() int         { return s.h }

func (s *stubWorld) inBounds(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

func (s *stubWorld) PathBlocked(x, y int) bool {
	if !s.inBounds(x, y) {
		return true
	}
	return s.blocked[GridPos{X: x, Y: y}]
}

func (s *stubWorld) Tile(layer Layer, x, y int) int {
	if !s.inBounds(x, y) {
		return EmptyTile
	}
	switch layer {
	case LayerGround:
		return 0
	case LayerFeature:
		if t, ok := s.features[GridPos{X: x, Y: y}]; ok {
			return t
		}
	}
	return EmptyTile
}

func (s *stubWorld) LightLevel(x, y int) int {
	if !s.inBounds(x, y) {
		return 0
	}
	return s.lights[GridPos{X: x, Y: y}]
}

func (s *stubWorld) LightTint(level int) float64    { return s.tints[level] }
func (s *stubWorld) LightTintColor(level int) Color { return s.tintColors[level] }

func (s *stubWorld) DayTint(turnsTaken, turnsPerDay int) float64 { return s.day }

func (s *stubWorld) AdvanceTileAnimations() { s.animCalls++ }

// stubActor records what the board writes to it.
type stubActor struct {
	pos, target      GridPos
	visible          bool
	screenX, screenY float64
	placements       int
}

func (a *stubActor) Position() GridPos      { return a.pos }
func (a *stubActor) SetPosition(p GridPos)  { a.pos = p }
func (a *stubActor) Target() GridPos        { return a.target }
func (a *stubActor) SetTarget(p GridPos)    { a.target = p }
func (a *stubActor) Visible() bool          { return a.visible }
func (a *stubActor) SetVisible(v bool)      { a.visible = v }
func (a *stubActor) SetScreenPosition(x, y float64) {
	a.screenX, a.screenY = x, y
	a.placements++
}

// testSprites returns a headless sprite set: populated tables, nil sheet.
func testSprites() *SpriteSet {
	s := &SpriteSet{}
	regions := SliceSheet(128, 128, 32)
	for l := Layer(0); l < NumLayers; l++ {
		s.SetLayer(l, regions)
	}
	return s
}

func newTestBoard(t *testing.T, world *stubWorld) (*Board, *stubActor) {
	t.Helper()
	b, err := NewBoard(Config{}, world, testSprites())
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	hero := &stubActor{pos: world.spawn, target: world.spawn}
	b.AddActor(hero)
	b.SetHero(hero)
	return b, hero
}

func TestNewBoardDefaults(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, _ := newTestBoard(t, world)

	win := b.Window()
	if win.Width() != DefaultViewTilesWide || win.Height() != DefaultViewTilesHigh {
		t.Errorf("window size = %dx%d, want %dx%d",
			win.Width(), win.Height(), DefaultViewTilesWide, DefaultViewTilesHigh)
	}
	if !win.Contains(world.spawn) {
		t.Errorf("window %v does not contain spawn %v", win, world.spawn)
	}
	if b.TurnsTaken() != 0 {
		t.Errorf("TurnsTaken() = %d, want 0", b.TurnsTaken())
	}
	if b.Transitioning() {
		t.Error("Transitioning() = true on a fresh board")
	}
}

func TestNewBoardRejectsNilWorld(t *testing.T) {
	if _, err := NewBoard(Config{}, nil, testSprites()); err == nil {
		t.Error("NewBoard(nil world) error = nil, want error")
	}
}

func TestNewBoardRejectsEmptySpriteTable(t *testing.T) {
	s := testSprites()
	s.SetLayer(LayerOverhead, nil)
	if _, err := NewBoard(Config{}, newStubWorld(5, 5, GridPos{}), s); err == nil {
		t.Error("NewBoard with empty sprite table: error = nil, want error")
	}
}

func TestMoveCompletesAfterDuration(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, hero := newTestBoard(t, world)
	startWin := b.Window()

	b.Tick(0.016, Input{Up: true})
	if !b.Transitioning() {
		t.Fatal("not transitioning after movement input")
	}
	if hero.target != (GridPos{X: 10, Y: 11}) {
		t.Errorf("hero target = %v, want (10,11)", hero.target)
	}
	if hero.pos != (GridPos{X: 10, Y: 10}) {
		t.Errorf("hero position = %v mid-flight, want (10,10)", hero.pos)
	}
	if b.Window() != startWin {
		t.Errorf("current window = %v mid-flight, want %v", b.Window(), startWin)
	}

	b.Tick(0.1, Input{})
	if !b.Transitioning() {
		t.Fatal("transition ended early at 0.1 of 0.2 seconds")
	}

	b.Tick(0.1, Input{})
	if b.Transitioning() {
		t.Error("still transitioning after full duration")
	}
	if hero.pos != (GridPos{X: 10, Y: 11}) {
		t.Errorf("hero position = %v after completion, want (10,11)", hero.pos)
	}
	if b.TurnsTaken() != 1 {
		t.Errorf("TurnsTaken() = %d, want 1", b.TurnsTaken())
	}
	win := b.Window()
	if win.YMin != startWin.YMin+1 || win.XMin != startWin.XMin {
		t.Errorf("window = %v after completion, want %v shifted up", win, startWin)
	}
	if x, y := b.BoardOffset(); x != 0 || y != 0 {
		t.Errorf("BoardOffset() = (%f,%f) after completion, want (0,0)", x, y)
	}
}

func TestMoveRejectedBlocked(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	world.blocked[GridPos{X: 11, Y: 10}] = true
	b, hero := newTestBoard(t, world)

	b.Tick(0.016, Input{Right: true})
	if b.Transitioning() {
		t.Error("transition started into a blocked cell")
	}
	if hero.target != hero.pos {
		t.Errorf("hero target = %v, want %v", hero.target, hero.pos)
	}
	if b.TurnsTaken() != 0 {
		t.Errorf("TurnsTaken() = %d after rejected move, want 0", b.TurnsTaken())
	}
}

func TestMoveRejectedOutOfBounds(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 0, Y: 10})
	b, _ := newTestBoard(t, world)

	b.Tick(0.016, Input{Left: true})
	if b.Transitioning() {
		t.Error("transition started off the world edge")
	}
}

func TestMoveIgnoredWhileTransitioning(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, hero := newTestBoard(t, world)

	b.Tick(0.016, Input{Up: true})
	// Hold right mid-flight; the up move must finish untouched.
	b.Tick(0.1, Input{Right: true})
	if hero.target != (GridPos{X: 10, Y: 11}) {
		t.Errorf("hero target = %v after input mid-flight, want (10,11)", hero.target)
	}
	b.Tick(0.1, Input{Right: true})
	if hero.pos != (GridPos{X: 10, Y: 11}) {
		t.Errorf("hero position = %v, want (10,11)", hero.pos)
	}
	if b.TurnsTaken() != 1 {
		t.Errorf("TurnsTaken() = %d, want 1", b.TurnsTaken())
	}
}

func TestHeldKeyChainsMoves(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, hero := newTestBoard(t, world)

	// Key held for the begin frame plus two full transitions.
	in := Input{Right: true}
	b.Tick(0.016, in)
	b.Tick(0.2, in) // first move completes
	b.Tick(0.2, in) // second move begins here
	b.Tick(0.2, in)
	if b.TurnsTaken() < 2 {
		t.Errorf("TurnsTaken() = %d after holding the key, want >= 2", b.TurnsTaken())
	}
	if hero.pos.X <= 10 {
		t.Errorf("hero X = %d after chained moves, want > 10", hero.pos.X)
	}
}

func TestCameraFollowKeepsHeroStationary(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, hero := newTestBoard(t, world)

	b.Tick(0.016, Input{Up: true})
	restX, restY := hero.screenX, hero.screenY

	b.Tick(0.1, Input{})
	// Board slides down while the hero slides up: net zero on screen.
	if !approxEqual(hero.screenX, restX, testEps) || !approxEqual(hero.screenY, restY, testEps) {
		t.Errorf("hero screen position = (%f,%f) mid-follow, want (%f,%f)",
			hero.screenX, hero.screenY, restX, restY)
	}
	if _, y := b.BoardOffset(); y >= 0 {
		t.Errorf("BoardOffset Y = %f during upward follow, want < 0", y)
	}
}

func TestEdgeMoveSlidesActorOnly(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 1, Y: 5})
	b, hero := newTestBoard(t, world)

	b.Tick(0.016, Input{Left: true})
	if !b.Transitioning() {
		t.Fatal("edge-adjacent move did not start")
	}

	b.Tick(0.1, Input{})
	// Window is pinned at the world edge, so the board stays put and the
	// hero alone slides half a tile left: 32*(1-0) - 16 = 16.
	if x, y := b.BoardOffset(); x != 0 || y != 0 {
		t.Errorf("BoardOffset() = (%f,%f) at world edge, want (0,0)", x, y)
	}
	if !approxEqual(hero.screenX, 16, testEps) {
		t.Errorf("hero screenX = %f mid-slide at edge, want 16", hero.screenX)
	}

	b.Tick(0.1, Input{})
	if hero.pos != (GridPos{X: 0, Y: 5}) {
		t.Errorf("hero position = %v, want (0,5)", hero.pos)
	}
}

func TestAddActorForcesTargetAtRest(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, _ := newTestBoard(t, world)

	npc := &stubActor{pos: GridPos{X: 3, Y: 3}, target: GridPos{X: 9, Y: 9}}
	b.AddActor(npc)
	if npc.target != npc.pos {
		t.Errorf("npc target = %v after AddActor at rest, want %v", npc.target, npc.pos)
	}
}

func TestRemoveActor(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, hero := newTestBoard(t, world)
	npc := &stubActor{pos: GridPos{X: 3, Y: 3}}
	b.AddActor(npc)

	b.RemoveActor(npc)
	if len(b.Actors()) != 1 || b.Actors()[0] != Actor(hero) {
		t.Errorf("Actors() = %v after RemoveActor, want just the hero", b.Actors())
	}
}

func TestRestart(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, hero := newTestBoard(t, world)

	b.Tick(0.016, Input{Up: true})
	b.Tick(0.25, Input{})
	if b.TurnsTaken() != 1 {
		t.Fatalf("TurnsTaken() = %d before restart, want 1", b.TurnsTaken())
	}

	b.Tick(0.016, Input{Restart: true})
	if b.TurnsTaken() != 0 {
		t.Errorf("TurnsTaken() = %d after restart, want 0", b.TurnsTaken())
	}
	if hero.pos != world.spawn || hero.target != world.spawn {
		t.Errorf("hero = %v/%v after restart, want %v", hero.pos, hero.target, world.spawn)
	}
	if b.Transitioning() {
		t.Error("Transitioning() = true after restart")
	}
	if !b.Window().Contains(world.spawn) {
		t.Errorf("window %v does not contain spawn after restart", b.Window())
	}
}

func TestRestartDiscardsInFlightTransition(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, hero := newTestBoard(t, world)

	b.Tick(0.016, Input{Up: true})
	b.Tick(0.1, Input{})
	b.Tick(0.016, Input{Restart: true})

	if b.Transitioning() {
		t.Error("Transitioning() = true after restart mid-flight")
	}
	if b.TurnsTaken() != 0 {
		t.Errorf("TurnsTaken() = %d, want 0 (discarded move counts no turn)", b.TurnsTaken())
	}
	if hero.pos != world.spawn {
		t.Errorf("hero position = %v after restart, want %v", hero.pos, world.spawn)
	}
	if x, y := b.BoardOffset(); x != 0 || y != 0 {
		t.Errorf("BoardOffset() = (%f,%f) after restart, want (0,0)", x, y)
	}
}

func TestToggleDebug(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, _ := newTestBoard(t, world)

	b.Tick(0.016, Input{ToggleDebug: true})
	if !b.DebugEnabled() {
		t.Error("DebugEnabled() = false after toggle, want true")
	}
	b.Tick(0.016, Input{ToggleDebug: true})
	if b.DebugEnabled() {
		t.Error("DebugEnabled() = true after second toggle, want false")
	}
}

func TestRandomizeHook(t *testing.T) {
	world := newStubWorld(20, 20, GridPos{X: 10, Y: 10})
	b, _ := newTestBoard(t, world)

	calls := 0
	b.OnRandomize = func() { calls++ }
	b.Tick(0.016, Input{Randomize: true})
	b.Tick(0.016, Input{})
	if calls != 1 {
		t.Errorf("OnRandomize calls = %d, want 1", calls)
	}
}
