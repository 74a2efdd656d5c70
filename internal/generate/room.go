package generate

import (
	"math/rand"

	"rogue-dungeon/internal/gamemap"
)

// Room is an axis-aligned rectangle used only while a floor is generated.
// X2/Y2 are the exclusive outer edge (X2 = X1 + width); the one-cell band
// along the nominal rectangle stays wall when the room is stamped, so two
// rooms that merely touch still share a wall border.
type Room struct {
	X1, Y1, X2, Y2 int
}

// NewRoom creates a room with its top-left corner at (x, y).
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the room's center cell.
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether the outer rectangles of r and other overlap,
// edges inclusive. Rooms that share even a single wall-border edge count as
// intersecting and are rejected during placement.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// FillGrid stamps the room's open interior (X1+1..X2, Y1+1..Y2, exclusive
// upper bounds) as room floor, leaving the one-cell wall border intact.
func (r Room) FillGrid(g *gamemap.Grid) {
	for x := r.X1 + 1; x < r.X2; x++ {
		for y := r.Y1 + 1; y < r.Y2; y++ {
			g.Set(x, y, gamemap.MakeRoomFloor())
		}
	}
}

// CreateTunnel carves an L-shaped corridor from r's center to other's
// center through one elbow point. The elbow orientation is an independent
// per-call coin flip; both legs are rasterized with a diagonal-allowed
// Bresenham line (each leg is axis-aligned, so no diagonal step occurs).
// Only the tile kind changes, so carving through a room interior keeps its
// render hint.
func (r Room) CreateTunnel(g *gamemap.Grid, other Room, rng *rand.Rand) {
	x1, y1 := r.Center()
	x2, y2 := other.Center()

	cornerX, cornerY := x1, y2
	if rng.Intn(2) == 0 {
		// Horizontal first, then vertical.
		cornerX, cornerY = x2, y1
	}

	carveLine(g, x1, y1, cornerX, cornerY)
	carveLine(g, cornerX, cornerY, x2, y2)
}

func carveLine(g *gamemap.Grid, x0, y0, x1, y1 int) {
	line := gamemap.NewLine(x0, y0, x1, y1, true)
	for {
		x, y, ok := line.Next()
		if !ok {
			return
		}
		g.At(x, y).Kind = gamemap.TileFloor
	}
}
