// Package generate produces complete dungeon floors. A Strategy builds one
// gamemap.Map atomically; gameplay systems never observe a partially built
// floor. All randomness comes from an injected *rand.Rand so a fixed seed
// reproduces a floor exactly.
package generate

import (
	"errors"
	"math/rand"
	"strings"

	"rogue-dungeon/internal/gamemap"
)

// ErrEmptyInput is returned when a text map contains no lines. It is the
// only recoverable generation error: malformed save data is an expected
// external condition, unlike the fail-fast paths for corrupt glyphs.
var ErrEmptyInput = errors.New("generate: empty map input")

// Strategy is the common contract of all dungeon generators.
type Strategy interface {
	Generate() (*gamemap.Map, error)
}

// StringMapGenerator interprets a literal multi-line string as a floor, one
// glyph per cell. The unique player marker becomes the spawn cell and is
// rewritten to floor in the stored grid. Monsters and items are not read
// from overlays; they arrive out of band.
type StringMapGenerator struct {
	Input string
}

// Generate parses the input block into a Map.
func (s *StringMapGenerator) Generate() (*gamemap.Map, error) {
	trimmed := strings.Trim(s.Input, "\n")
	if trimmed == "" {
		return nil, ErrEmptyInput
	}
	lines := strings.Split(trimmed, "\n")

	height := len(lines)
	width := len([]rune(lines[0]))

	mapping := gamemap.NewTileMapping()
	grid := gamemap.NewGrid(width, height, gamemap.TileEmpty)
	spawnX, spawnY := 0, 0

	for y, line := range lines {
		for x, r := range []rune(line) {
			kind, isPlayer := mapping.ParseGlyph(r)
			grid.Set(x, y, gamemap.Tile{Kind: kind})
			if isPlayer {
				spawnX, spawnY = x, y
			}
		}
	}

	return &gamemap.Map{
		Grid:    grid,
		Width:   width,
		Height:  height,
		SpawnX:  spawnX,
		SpawnY:  spawnY,
		CenterX: width / 2,
		CenterY: height / 2,
	}, nil
}

// FillGenerator produces a uniform grid of one tile kind with the spawn at
// the grid center. A regression fixture, not production content.
type FillGenerator struct {
	Width, Height int
	Kind          gamemap.TileKind
}

// Generate builds the uniform map.
func (f *FillGenerator) Generate() (*gamemap.Map, error) {
	return &gamemap.Map{
		Grid:    gamemap.NewGrid(f.Width, f.Height, f.Kind),
		Width:   f.Width,
		Height:  f.Height,
		SpawnX:  f.Width / 2,
		SpawnY:  f.Height / 2,
		CenterX: f.Width / 2,
		CenterY: f.Height / 2,
	}, nil
}

// TwoRoomGenerator stamps two fixed rooms, optionally joined by a tunnel —
// the regression fixture for Room and tunnel mechanics in isolation.
type TwoRoomGenerator struct {
	Width, Height int
	Tunnel        bool
	Rand          *rand.Rand
}

// Generate builds the two-room map. The spawn is the first room's center.
func (g *TwoRoomGenerator) Generate() (*gamemap.Map, error) {
	grid := gamemap.NewGrid(g.Width, g.Height, gamemap.TileWall)

	room1 := NewRoom(20, 15, 10, 15)
	room2 := NewRoom(35, 15, 10, 15)
	room1.FillGrid(grid)
	room2.FillGrid(grid)

	if g.Tunnel {
		room1.CreateTunnel(grid, room2, g.Rand)
	}

	spawnX, spawnY := room1.Center()

	return &gamemap.Map{
		Grid:    grid,
		Width:   g.Width,
		Height:  g.Height,
		SpawnX:  spawnX,
		SpawnY:  spawnY,
		CenterX: g.Width / 2,
		CenterY: g.Height / 2,
	}, nil
}
