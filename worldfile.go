package rowan

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"
)

// minDayTint is the ambient floor at the middle of the night.
const minDayTint = 0.4

// mapFile is the on-disk YAML shape. Layer grids are written
// top-to-bottom the way a human draws a map; the loader flips the rows
// so that Y increases upward in memory.
type mapFile struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TurnsPerDay int `yaml:"turnsPerDay"`

	Spawn struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"spawn"`

	Layers map[string][][]int `yaml:"layers"`

	Blocked []struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"blocked"`

	Lights []struct {
		X     int `yaml:"x"`
		Y     int `yaml:"y"`
		Level int `yaml:"level"`
	} `yaml:"lights"`

	LightTints []struct {
		Level int     `yaml:"level"`
		Tint  float64 `yaml:"tint"`
		Color struct {
			R float64 `yaml:"r"`
			G float64 `yaml:"g"`
			B float64 `yaml:"b"`
		} `yaml:"color"`
	} `yaml:"lightTints"`

	// Animations maps a base tile type to its frame cycle. A grid cell
	// holding the base tile renders cycle[step % len] instead.
	Animations map[int][]int `yaml:"animations"`
}

type lightDef struct {
	tint  float64
	color Color
}

// MapWorld is a World loaded from a YAML map file. It is a plain data
// world: static layers, a blocked-cell set, point lights with per-level
// tints, frame-cycled tile animations, and a cosine day/night curve.
type MapWorld struct {
	width, height int
	spawn         GridPos
	turnsPerDay   int

	layers  [NumLayers][]int
	blocked mapset.Set[GridPos]
	lights  map[GridPos]int
	tints   map[int]lightDef

	animations map[int][]int
	animStep   int
}

var layerNames = map[string]Layer{
	"ground":   LayerGround,
	"feature":  LayerFeature,
	"overhead": LayerOverhead,
}

// LoadMapFile parses a YAML map document into a MapWorld. The ground
// layer is required; feature and overhead default to empty. All
// coordinates in the file are validated against the declared dimensions.
func LoadMapFile(data []byte) (*MapWorld, error) {
	var f mapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("rowan: parse map file: %w", err)
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("rowan: map file: dimensions %dx%d must be positive", f.Width, f.Height)
	}
	if f.Spawn.X < 0 || f.Spawn.X >= f.Width || f.Spawn.Y < 0 || f.Spawn.Y >= f.Height {
		return nil, fmt.Errorf("rowan: map file: spawn (%d,%d) outside %dx%d world",
			f.Spawn.X, f.Spawn.Y, f.Width, f.Height)
	}
	if _, ok := f.Layers["ground"]; !ok {
		return nil, fmt.Errorf("rowan: map file: missing ground layer")
	}

	w := &MapWorld{
		width:       f.Width,
		height:      f.Height,
		spawn:       GridPos{X: f.Spawn.X, Y: f.Spawn.Y},
		turnsPerDay: f.TurnsPerDay,
		blocked:     mapset.New[GridPos](),
		lights:      make(map[GridPos]int),
		tints:       make(map[int]lightDef),
		animations:  f.Animations,
	}
	if w.turnsPerDay <= 0 {
		w.turnsPerDay = DefaultTurnsPerDay
	}

	for l := Layer(0); l < NumLayers; l++ {
		grid := make([]int, f.Width*f.Height)
		for i := range grid {
			grid[i] = EmptyTile
		}
		w.layers[l] = grid
	}
	for name, rows := range f.Layers {
		layer, ok := layerNames[name]
		if !ok {
			return nil, fmt.Errorf("rowan: map file: unknown layer %q", name)
		}
		if len(rows) != f.Height {
			return nil, fmt.Errorf("rowan: map file: layer %q has %d rows, want %d", name, len(rows), f.Height)
		}
		for r, row := range rows {
			if len(row) != f.Width {
				return nil, fmt.Errorf("rowan: map file: layer %q row %d has %d columns, want %d",
					name, r, len(row), f.Width)
			}
			// Row 0 in the file is the top of the map.
			y := f.Height - 1 - r
			copy(w.layers[layer][y*f.Width:], row)
		}
	}

	for _, c := range f.Blocked {
		if c.X < 0 || c.X >= f.Width || c.Y < 0 || c.Y >= f.Height {
			return nil, fmt.Errorf("rowan: map file: blocked cell (%d,%d) outside %dx%d world",
				c.X, c.Y, f.Width, f.Height)
		}
		w.blocked.Put(GridPos{X: c.X, Y: c.Y})
	}

	for _, t := range f.LightTints {
		if t.Level <= 0 {
			return nil, fmt.Errorf("rowan: map file: light tint level %d must be positive", t.Level)
		}
		w.tints[t.Level] = lightDef{
			tint:  t.Tint,
			color: Color{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: 1},
		}
	}
	for _, l := range f.Lights {
		if l.X < 0 || l.X >= f.Width || l.Y < 0 || l.Y >= f.Height {
			return nil, fmt.Errorf("rowan: map file: light at (%d,%d) outside %dx%d world",
				l.X, l.Y, f.Width, f.Height)
		}
		if _, ok := w.tints[l.Level]; !ok {
			return nil, fmt.Errorf("rowan: map file: light at (%d,%d) uses undefined level %d", l.X, l.Y, l.Level)
		}
		w.lights[GridPos{X: l.X, Y: l.Y}] = l.Level
	}

	for base, cycle := range f.Animations {
		if len(cycle) == 0 {
			return nil, fmt.Errorf("rowan: map file: animation for tile %d has no frames", base)
		}
	}

	if w.blocked.Has(w.spawn) {
		return nil, fmt.Errorf("rowan: map file: spawn (%d,%d) is path-blocked", w.spawn.X, w.spawn.Y)
	}
	return w, nil
}

func (w *MapWorld) SpawnPosition() GridPos { return w.spawn }
func (w *MapWorld) TilesWide() int         { return w.width }
func (w *MapWorld) TilesHigh() int         { return w.height }

// TurnsPerDay returns the day length declared in the map file, for
// feeding into Config.
func (w *MapWorld) TurnsPerDay() int { return w.turnsPerDay }

func (w *MapWorld) inBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

func (w *MapWorld) PathBlocked(x, y int) bool {
	if !w.inBounds(x, y) {
		return true
	}
	return w.blocked.Has(GridPos{X: x, Y: y})
}

func (w *MapWorld) Tile(layer Layer, x, y int) int {
	if !w.inBounds(x, y) || layer >= NumLayers {
		return EmptyTile
	}
	tile := w.layers[layer][y*w.width+x]
	if cycle, ok := w.animations[tile]; ok {
		return cycle[w.animStep%len(cycle)]
	}
	return tile
}

func (w *MapWorld) LightLevel(x, y int) int {
	if !w.inBounds(x, y) {
		return 0
	}
	return w.lights[GridPos{X: x, Y: y}]
}

func (w *MapWorld) LightTint(level int) float64 {
	return w.tints[level].tint
}

func (w *MapWorld) LightTintColor(level int) Color {
	return w.tints[level].color
}

// DayTint follows a cosine over the day: full brightness at turn zero,
// minDayTint at midnight, back to full as the day completes.
func (w *MapWorld) DayTint(turnsTaken, turnsPerDay int) float64 {
	if turnsPerDay <= 0 {
		return 1
	}
	frac := float64(turnsTaken%turnsPerDay) / float64(turnsPerDay)
	return minDayTint + (1-minDayTint)*(0.5+0.5*math.Cos(2*math.Pi*frac))
}

func (w *MapWorld) AdvanceTileAnimations() {
	w.animStep++
}
