package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionController drives the single in-flight grid-step transition
// shared by the camera and all actors. At rest the direction is DirNone
// and the slide offset is zero; while active, a tween advances the
// offset from 0 to one tile over the fixed move duration.
//
// Invariant: Active() == (Direction() != DirNone). At most one
// transition is in flight; Begin while active is a no-op.
type TransitionController struct {
	direction Direction
	timeLeft  float32
	tween     *gween.Tween
	offset    float64 // pixels slid so far, in [0, tileSize]

	tileSize float64
	duration float32
	easeFn   ease.TweenFunc
}

func newTransitionController(tileSize int, duration float32, fn ease.TweenFunc) *TransitionController {
	return &TransitionController{
		tileSize: float64(tileSize),
		duration: duration,
		easeFn:   fn,
	}
}

// Active reports whether a transition is in flight.
func (t *TransitionController) Active() bool {
	return t.direction != DirNone
}

// Direction returns the in-flight direction, or DirNone at rest.
func (t *TransitionController) Direction() Direction {
	return t.direction
}

// TimeLeft returns the remaining transition time in seconds, 0 at rest.
func (t *TransitionController) TimeLeft() float32 {
	return t.timeLeft
}

// Begin starts a transition along d. Returns false without changing any
// state if d is DirNone or a transition is already active. Overlapping
// transitions are expected and silently ignored, not errors.
func (t *TransitionController) Begin(d Direction) bool {
	if d == DirNone || t.direction != DirNone {
		return false
	}
	t.direction = d
	t.timeLeft = t.duration
	t.tween = gween.New(0, float32(t.tileSize), t.duration, t.easeFn)
	t.offset = 0
	return true
}

// Advance moves the transition forward by dt seconds and returns true
// on the frame the transition completes. The tween clamps at the full
// tile, so interpolation terminates exactly on the destination
// regardless of timer overshoot; on completion the controller returns
// to rest with a zero offset.
func (t *TransitionController) Advance(dt float32) bool {
	if t.direction == DirNone {
		return false
	}
	t.timeLeft -= dt
	v, done := t.tween.Update(dt)
	t.offset = float64(v)
	if !done {
		return false
	}
	t.direction = DirNone
	t.timeLeft = 0
	t.tween = nil
	t.offset = 0
	return true
}

// Progress returns the slide fraction in [0, 1]. Zero at rest.
func (t *TransitionController) Progress() float64 {
	if t.tileSize == 0 {
		return 0
	}
	return t.offset / t.tileSize
}

// Offset returns the slide distance in pixels. Zero at rest.
func (t *TransitionController) Offset() float64 {
	return t.offset
}
