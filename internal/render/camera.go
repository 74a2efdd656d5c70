package render

// Camera translates between grid coordinates and screen coordinates.
// Tiles are drawn one terminal column wide.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on grid cell (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so that cell (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.ViewWidth/2
	c.OffsetY = cy - c.ViewHeight/2
}

// GridToScreen converts cell (gx, gy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) GridToScreen(gx, gy int) (sx, sy int, visible bool) {
	sx = gx - c.OffsetX
	sy = gy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToGrid converts screen (sx, sy) to grid coordinates.
func (c *Camera) ScreenToGrid(sx, sy int) (int, int) {
	return sx + c.OffsetX, sy + c.OffsetY
}
