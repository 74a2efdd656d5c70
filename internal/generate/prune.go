package generate

import "rogue-dungeon/internal/gamemap"

// pruneWalls downgrades every wall cell with no 4-adjacent floor neighbor
// to empty. Such walls border nothing walkable and are never drawn. Runs
// exactly once per generation, after population and before the staircase
// pick; cells on the grid boundary simply skip their missing sides.
func pruneWalls(g *gamemap.Grid) {
	width, height := g.Width(), g.Height()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if g.At(x, y).Kind != gamemap.TileWall {
				continue
			}
			if y > 0 && g.At(x, y-1).Kind == gamemap.TileFloor {
				continue
			}
			if y < height-1 && g.At(x, y+1).Kind == gamemap.TileFloor {
				continue
			}
			if x > 0 && g.At(x-1, y).Kind == gamemap.TileFloor {
				continue
			}
			if x < width-1 && g.At(x+1, y).Kind == gamemap.TileFloor {
				continue
			}
			g.At(x, y).Kind = gamemap.TileEmpty
		}
	}
}
