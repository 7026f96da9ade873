package rowan

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// Defaults applied by NewBoard when the corresponding Config field is zero.
const (
	DefaultTileSize         = 32
	DefaultViewTilesWide    = 10
	DefaultViewTilesHigh    = 9
	DefaultMoveDuration     = 0.2 // seconds per grid-step transition
	DefaultTileAnimInterval = 0.5 // seconds between animated-tile frame advances
	DefaultTurnsPerDay      = 24
)

// DefaultDebugColor is the fixed overlay color painted on path-blocked
// cells while the debug overlay is enabled. It overrides lighting and
// the ambient day/night tint.
var DefaultDebugColor = Color{R: 1, G: 0.25, B: 0.25, A: 1}

// Config controls board geometry and timing. The zero value is usable:
// NewBoard fills in the defaults above.
type Config struct {
	// TileSize is the square tile edge length in pixels.
	TileSize int
	// ViewTilesWide and ViewTilesHigh are the visible window size in tiles.
	ViewTilesWide int
	ViewTilesHigh int
	// MoveDuration is the fixed duration of one grid-step transition,
	// in seconds.
	MoveDuration float32
	// TileAnimInterval is the period of the shared tile-animation clock,
	// in seconds. Independent of movement.
	TileAnimInterval float32
	// TurnsPerDay is the day length used for the ambient day/night tint.
	TurnsPerDay int
	// DebugColor is the path-blocked overlay color. Zero value means
	// DefaultDebugColor.
	DebugColor Color
	// Ease shapes the transition slide. nil means ease.Linear, which
	// matches classic lockstep movement; anything easing-out will still
	// terminate exactly on the destination cell.
	Ease ease.TweenFunc
}

// applyDefaults fills zero fields in place.
func (c *Config) applyDefaults() {
	if c.TileSize == 0 {
		c.TileSize = DefaultTileSize
	}
	if c.ViewTilesWide == 0 {
		c.ViewTilesWide = DefaultViewTilesWide
	}
	if c.ViewTilesHigh == 0 {
		c.ViewTilesHigh = DefaultViewTilesHigh
	}
	if c.MoveDuration == 0 {
		c.MoveDuration = DefaultMoveDuration
	}
	if c.TileAnimInterval == 0 {
		c.TileAnimInterval = DefaultTileAnimInterval
	}
	if c.TurnsPerDay == 0 {
		c.TurnsPerDay = DefaultTurnsPerDay
	}
	if c.DebugColor == (Color{}) {
		c.DebugColor = DefaultDebugColor
	}
	if c.Ease == nil {
		c.Ease = ease.Linear
	}
}

// validate rejects configurations that cannot describe a board.
func (c *Config) validate() error {
	if c.TileSize < 1 {
		return fmt.Errorf("rowan: config: tile size %d, want >= 1", c.TileSize)
	}
	if c.ViewTilesWide < 1 || c.ViewTilesHigh < 1 {
		return fmt.Errorf("rowan: config: view size %dx%d, want >= 1x1",
			c.ViewTilesWide, c.ViewTilesHigh)
	}
	if c.MoveDuration < 0 || c.TileAnimInterval < 0 {
		return fmt.Errorf("rowan: config: negative duration")
	}
	if c.TurnsPerDay < 1 {
		return fmt.Errorf("rowan: config: turns per day %d, want >= 1", c.TurnsPerDay)
	}
	return nil
}
