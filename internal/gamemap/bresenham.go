package gamemap

// Line is an incremental Bresenham rasterizer over integer grid
// coordinates. It yields every cell from (x0,y0) to (x1,y1), both endpoints
// inclusive, without allocating the whole sequence. Each constructed Line is
// independent; construct a new one to restart.
//
// With diagonal disabled, a diagonal step is decomposed into two
// axis-aligned steps, so consecutive cells always differ by exactly one
// unit on exactly one axis. Corridor carving uses the diagonal form on
// axis-aligned legs; sightline occlusion uses the non-diagonal form so a
// line cannot slip between two diagonally adjacent walls.
type Line struct {
	x0, y0   int
	x1, y1   int
	dx, dy   int
	sx, sy   int
	err      int
	diagonal bool
	finished bool
}

// NewLine creates a rasterizer for the segment (x0,y0)-(x1,y1).
func NewLine(x0, y0, x1, y1 int, diagonal bool) *Line {
	dx := abs(x1 - x0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	return &Line{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dx: dx, dy: dy,
		sx: sx, sy: sy,
		err:      dx + dy,
		diagonal: diagonal,
	}
}

// Next returns the next cell on the line. ok is false once the endpoint has
// been emitted.
func (l *Line) Next() (x, y int, ok bool) {
	if l.finished {
		return 0, 0, false
	}

	x, y = l.x0, l.y0

	if l.x0 == l.x1 && l.y0 == l.y1 {
		l.finished = true
		return x, y, true
	}

	e2 := 2 * l.err
	xWalked := false

	if e2 > l.dy {
		l.err += l.dy
		l.x0 += l.sx
		xWalked = true
	}
	// When diagonal movement is disabled an x step consumes the whole
	// iteration; the pending y step happens on a later call.
	if l.diagonal || !xWalked {
		if e2 < l.dx {
			l.err += l.dx
			l.y0 += l.sy
		}
	}

	return x, y, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
