package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TileFloor
	TileStairsDown
)

// RenderHint distinguishes otherwise identical tiles for the renderer.
// Room interiors are stamped with HintRoomFloor; corridor floors keep
// HintNone.
type RenderHint uint8

const (
	HintNone RenderHint = iota
	HintRoomFloor
)

// Tile holds the kind and render hint for one map cell.
type Tile struct {
	Kind TileKind
	Hint RenderHint
}

// MakeEmpty returns an empty (never rendered) tile.
func MakeEmpty() Tile {
	return Tile{Kind: TileEmpty}
}

// MakeWall returns a blocking wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall}
}

// MakeFloor returns a passable corridor floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor}
}

// MakeRoomFloor returns a passable floor tile stamped as room interior.
func MakeRoomFloor() Tile {
	return Tile{Kind: TileFloor, Hint: HintRoomFloor}
}

// MakeStairsDown returns a downward staircase tile.
func MakeStairsDown() Tile {
	return Tile{Kind: TileStairsDown}
}

// Walkable reports whether an entity may occupy this tile.
func (t Tile) Walkable() bool {
	return t.Kind == TileFloor || t.Kind == TileStairsDown
}
