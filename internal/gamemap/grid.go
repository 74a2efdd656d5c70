package gamemap

// Grid is a dense row-major tile array. Every row has the same length and
// coordinates are always (x, y) = (column, row).
//
// Two access contracts coexist: Get bounds-checks and returns nil out of
// range, for probing; At indexes directly and panics out of range, for
// interior loops whose ranges already guarantee validity.
type Grid struct {
	width, height int
	tiles         [][]Tile
}

// NewGrid creates a width×height grid with every cell set to fill.
func NewGrid(width, height int, fill TileKind) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: fill}
		}
	}
	return &Grid{width: width, height: height, tiles: tiles}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at (x, y), or nil when out of bounds.
func (g *Grid) Get(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.tiles[y][x]
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (g *Grid) At(x, y int) *Tile {
	return &g.tiles[y][x]
}

// Set replaces the tile at (x, y). Panics if out of bounds.
func (g *Grid) Set(x, y int, t Tile) {
	g.tiles[y][x] = t
}

// IsWallBetween walks a diagonal-disallowed Bresenham line from (x0,y0) to
// (x1,y1), endpoints inclusive, and reports whether any visited cell is a
// wall. Cells off the grid are ignored.
func (g *Grid) IsWallBetween(x0, y0, x1, y1 int) bool {
	line := NewLine(x0, y0, x1, y1, false)
	for {
		x, y, ok := line.Next()
		if !ok {
			return false
		}
		if t := g.Get(x, y); t != nil && t.Kind == TileWall {
			return true
		}
	}
}
