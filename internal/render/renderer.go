package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"rogue-dungeon/internal/gamemap"
)

// Sprite is one drawable occupant: a world-space position plus its codec
// glyph and color.
type Sprite struct {
	Position gamemap.Vec3
	Glyph    rune
	Style    tcell.Style
}

// Renderer draws a floor and its occupants onto a tcell screen using the
// text-codec glyph table, so the screen shows exactly what a save file
// would contain.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	mapping *gamemap.TileMapping
}

var (
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor     = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleRoomFloor = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleStairs    = tcell.StyleDefault.Foreground(tcell.ColorYellow)

	// StylePlayer, StyleMonster and StyleItem are the occupant styles used
	// by the game loop when it builds sprites.
	StylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	StyleMonster = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleItem    = tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
)

// NewRenderer creates a Renderer for the given screen. The bottom two rows
// are reserved for status text.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(0, 0, w, h-2),
		mapping: gamemap.NewTileMapping(),
	}
}

// CenterOn recenters the camera on grid cell (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Resize updates the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - 2
}

// DrawFrame renders the floor tiles, the occupant sprites and the status
// line, then flushes the screen.
func (r *Renderer) DrawFrame(m *gamemap.Map, sprites []Sprite, status string) {
	r.screen.Clear()
	r.drawMap(m)
	for _, s := range sprites {
		x, y := m.WorldToGrid(s.Position)
		sx, sy, visible := r.camera.GridToScreen(x, y)
		if visible {
			r.screen.SetContent(sx, sy, s.Glyph, nil, s.Style)
		}
	}
	r.putText(0, r.camera.ViewHeight+1, status, tcell.StyleDefault)
	r.screen.Show()
}

// drawMap renders every tile through the codec glyph table. Empty tiles
// are pruned space and are skipped entirely.
func (r *Renderer) drawMap(m *gamemap.Map) {
	for y := 0; y < m.Grid.Height(); y++ {
		for x := 0; x < m.Grid.Width(); x++ {
			tile := m.Grid.At(x, y)
			if tile.Kind == gamemap.TileEmpty {
				continue
			}
			sx, sy, visible := r.camera.GridToScreen(x, y)
			if !visible {
				continue
			}

			style := styleFloor
			switch tile.Kind {
			case gamemap.TileWall:
				style = styleWall
			case gamemap.TileStairsDown:
				style = styleStairs
			case gamemap.TileFloor:
				if tile.Hint == gamemap.HintRoomFloor {
					style = styleRoomFloor
				}
			}
			r.screen.SetContent(sx, sy, r.mapping.TileGlyph(tile.Kind), nil, style)
		}
	}
}

// putText writes a string, advancing by rune display width so wide runes
// do not smear the row.
func (r *Renderer) putText(x, y int, s string, style tcell.Style) {
	col := x
	for _, ru := range s {
		r.screen.SetContent(col, y, ru, nil, style)
		col += runewidth.RuneWidth(ru)
	}
}
