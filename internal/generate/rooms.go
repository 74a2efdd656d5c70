package generate

import (
	"math/rand"

	"rogue-dungeon/internal/gamemap"
)

// Point is a grid cell.
type Point struct {
	X, Y int
}

// Config drives the randomized room-packing generator for one floor.
type Config struct {
	Width, Height int

	// MaxRooms is an attempt budget, not a success target: a rejected
	// candidate consumes one attempt and is never retried, so dense or
	// small grids yield fewer rooms than requested. Valid output, not an
	// error.
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int

	MaxMonstersPerRoom int
	MaxItemsPerRoom    int

	FloorNumber  int
	MonsterTable []MonsterEntry
	ItemTable    []ItemEntry

	// Entry, when set, overrides the spawn cell — used when the player
	// arrives through the previous floor's stairwell.
	Entry *Point

	Rand *rand.Rand
}

// RoomsGenerator is the primary strategy: rejection-sampled room packing
// with chain tunnels, per-room population, wall pruning and a staircase.
type RoomsGenerator struct {
	cfg *Config
}

// NewRoomsGenerator wraps cfg in the primary strategy.
func NewRoomsGenerator(cfg *Config) *RoomsGenerator {
	return &RoomsGenerator{cfg: cfg}
}

// Generate builds one floor. The random draw order is fixed — room loop,
// then per-room monsters, then per-room items, then the staircase pick —
// so a given seed always reproduces the same floor.
func (g *RoomsGenerator) Generate() (*gamemap.Map, error) {
	cfg := g.cfg
	rng := cfg.Rand

	grid := gamemap.NewGrid(cfg.Width, cfg.Height, gamemap.TileWall)

	spawnX, spawnY := 0, 0
	var rooms []Room

	for i := 0; i < cfg.MaxRooms; i++ {
		roomW := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)
		roomH := cfg.RoomMinSize + rng.Intn(cfg.RoomMaxSize-cfg.RoomMinSize+1)

		// Top-left position keeping the room inside the grid with a
		// one-cell margin.
		x := rng.Intn(cfg.Width - roomW - 1)
		y := rng.Intn(cfg.Height - roomH - 1)

		candidate := NewRoom(x, y, roomW, roomH)

		rejected := false
		for _, room := range rooms {
			if room.Intersects(candidate) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		candidate.FillGrid(grid)

		if len(rooms) == 0 {
			// The first accepted room is the spawn room.
			spawnX, spawnY = candidate.Center()
		} else {
			// Chain: tunnel to the immediately previously accepted room,
			// not the nearest one. The chain is what keeps the floor
			// connected.
			candidate.CreateTunnel(grid, rooms[len(rooms)-1], rng)
		}

		rooms = append(rooms, candidate)
	}

	monsters := addMonsters(rooms, cfg)
	items := addItems(rooms, cfg)

	pruneWalls(grid)

	placeStaircase(grid, rooms, rng)

	if cfg.Entry != nil {
		spawnX, spawnY = cfg.Entry.X, cfg.Entry.Y
	}

	return &gamemap.Map{
		Grid:     grid,
		Width:    cfg.Width,
		Height:   cfg.Height,
		SpawnX:   spawnX,
		SpawnY:   spawnY,
		CenterX:  cfg.Width / 2,
		CenterY:  cfg.Height / 2,
		Monsters: monsters,
		Items:    items,
	}, nil
}

// placeStaircase turns one interior cell of a random non-spawn room into
// the staircase down. Floors with fewer than two rooms get no staircase.
func placeStaircase(grid *gamemap.Grid, rooms []Room, rng *rand.Rand) {
	if len(rooms) < 2 {
		return
	}
	room := rooms[1+rng.Intn(len(rooms)-1)]
	x, y := randomInRoom(room, rng)
	grid.At(x, y).Kind = gamemap.TileStairsDown
}

// randomInRoom picks a cell uniformly from the room's open interior.
func randomInRoom(room Room, rng *rand.Rand) (int, int) {
	x := room.X1 + 1 + rng.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + rng.Intn(room.Y2-room.Y1-1)
	return x, y
}
