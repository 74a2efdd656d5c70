package gamemap

// TileSize is the world-space edge length of one grid cell.
const TileSize = 4.0

// losStepSize is the sampling increment of the continuous line-of-sight
// walk, in world units.
const losStepSize = 0.5

// MonsterKind identifies a monster species.
type MonsterKind uint8

const (
	MonsterOrc MonsterKind = iota
	MonsterTroll
)

// ItemKind identifies an item type.
type ItemKind uint8

const (
	ItemHealPotion ItemKind = iota
	ItemLightning
)

// MonsterSpawn is one monster placement produced by generation.
type MonsterSpawn struct {
	X, Y int
	Kind MonsterKind
}

// ItemSpawn is one item placement produced by generation.
type ItemSpawn struct {
	X, Y int
	Kind ItemKind
}

// Map is the generated world for one floor: the tile grid plus the spawn
// bookkeeping gameplay systems need to set the floor up. A Map is built
// atomically by a generator strategy and replaced wholesale on floor
// descent; after generation only spatial queries touch it.
type Map struct {
	Grid          *Grid
	Width, Height int

	// SpawnX, SpawnY is the player's starting cell.
	SpawnX, SpawnY int

	// CenterX, CenterY is the grid cell mapped to the world origin. Fixed
	// at creation, never recomputed.
	CenterX, CenterY int

	Monsters []MonsterSpawn
	Items    []ItemSpawn
}

// GridToWorld maps cell (x, y) to the world position of its center. The
// vertical component is always 0.
func (m *Map) GridToWorld(x, y int) Vec3 {
	return Vec3{
		X: (float64(x) - float64(m.CenterX)) * TileSize,
		Y: 0,
		Z: (float64(y) - float64(m.CenterY)) * TileSize,
	}
}

// WorldToGrid maps a world position to the cell whose center is nearest
// along each axis. The half-tile bias before truncation is what makes
// WorldToGrid(GridToWorld(x, y)) == (x, y) hold for in-bounds cells.
func (m *Map) WorldToGrid(p Vec3) (int, int) {
	x := int((p.X+0.5*TileSize)/TileSize + float64(m.CenterX))
	y := int((p.Z+0.5*TileSize)/TileSize + float64(m.CenterY))
	return x, y
}

// CollideWithWall probes four axis-offset points around p (±probe on each
// horizontal axis) and reports whether any of them falls on a wall cell.
// Probes that leave the grid entirely count as collisions.
func (m *Map) CollideWithWall(p Vec3, probe float64) bool {
	offsets := [4]Vec3{
		{Z: -probe},
		{Z: probe},
		{X: -probe},
		{X: probe},
	}
	for _, off := range offsets {
		x, y := m.WorldToGrid(p.Add(off))
		t := m.Grid.Get(x, y)
		if t == nil || t.Kind == TileWall {
			return true
		}
	}
	return false
}

// LineOfSight steps a ray from start to end in fixed 0.5-unit increments
// and reports whether no sampled cell is a wall. This is deliberately a
// different algorithm from Grid.IsWallBetween: continuous sampling serves
// the AI's world-space callers and the two may disagree at cell boundaries.
func (m *Map) LineOfSight(start, end Vec3) bool {
	dir := end.Sub(start).Normalize()
	total := start.Distance(end)

	cur := start
	for cur.Distance(start) < total {
		x, y := m.WorldToGrid(cur)
		t := m.Grid.Get(x, y)
		if t == nil || t.Kind == TileWall {
			return false
		}
		cur = cur.Add(dir.Scale(losStepSize))
	}
	return true
}
