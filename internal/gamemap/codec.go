package gamemap

import (
	"fmt"
	"strings"
)

// PlayerGlyph marks the player in the text map format. It is a parse-time
// marker and a serialize-time overlay, never a persistent tile.
const PlayerGlyph = '@'

// TileMapping is the bidirectional table between tile semantics and the
// single-character glyphs of the text map format. The glyph assignments are
// the save-file format and must not change:
//
//	'#' wall   '.' floor   '>' stairs down   ' ' empty
//	'@' player   '!' heal potion   '?' lightning   'o' orc   'T' troll
//
// Item and monster glyphs are overlays: Write stamps them over the base
// terrain, while parsing resolves them to the floor tile they stand on.
type TileMapping struct {
	tileToGlyph    map[TileKind]rune
	glyphToTile    map[rune]TileKind
	monsterToGlyph map[MonsterKind]rune
	itemToGlyph    map[ItemKind]rune
}

// NewTileMapping builds the standard glyph table.
func NewTileMapping() *TileMapping {
	m := &TileMapping{
		tileToGlyph: map[TileKind]rune{
			TileWall:       '#',
			TileFloor:      '.',
			TileStairsDown: '>',
			TileEmpty:      ' ',
		},
		monsterToGlyph: map[MonsterKind]rune{
			MonsterOrc:   'o',
			MonsterTroll: 'T',
		},
		itemToGlyph: map[ItemKind]rune{
			ItemHealPotion: '!',
			ItemLightning:  '?',
		},
	}
	m.glyphToTile = make(map[rune]TileKind, len(m.tileToGlyph))
	for kind, glyph := range m.tileToGlyph {
		m.glyphToTile[glyph] = kind
	}
	return m
}

// TileGlyph returns the glyph for a tile kind. Panics on a kind missing
// from the table; that is a programming error, not a data condition.
func (m *TileMapping) TileGlyph(k TileKind) rune {
	glyph, ok := m.tileToGlyph[k]
	if !ok {
		panic(fmt.Sprintf("gamemap: no glyph for tile kind %d", k))
	}
	return glyph
}

// MonsterGlyph returns the overlay glyph for a monster kind.
func (m *TileMapping) MonsterGlyph(k MonsterKind) rune {
	glyph, ok := m.monsterToGlyph[k]
	if !ok {
		panic(fmt.Sprintf("gamemap: no glyph for monster kind %d", k))
	}
	return glyph
}

// ItemGlyph returns the overlay glyph for an item kind.
func (m *TileMapping) ItemGlyph(k ItemKind) rune {
	glyph, ok := m.itemToGlyph[k]
	if !ok {
		panic(fmt.Sprintf("gamemap: no glyph for item kind %d", k))
	}
	return glyph
}

// ParseGlyph resolves one glyph to the tile it denotes. isPlayer is true
// for the player marker, whose underlying tile is floor. Overlay glyphs
// resolve to floor as well: the occupant is supplied out of band, only the
// terrain under it persists. A glyph outside the table panics — a corrupted
// save should fail loudly, not be patched over.
func (m *TileMapping) ParseGlyph(r rune) (kind TileKind, isPlayer bool) {
	if r == PlayerGlyph {
		return TileFloor, true
	}
	if kind, ok := m.glyphToTile[r]; ok {
		return kind, false
	}
	for _, glyph := range m.monsterToGlyph {
		if r == glyph {
			return TileFloor, false
		}
	}
	for _, glyph := range m.itemToGlyph {
		if r == glyph {
			return TileFloor, false
		}
	}
	panic(fmt.Sprintf("gamemap: unknown map glyph %q", r))
}

// PlacedMonster is a live monster position for serialization.
type PlacedMonster struct {
	Position Vec3
	Kind     MonsterKind
}

// PlacedItem is a live item position for serialization.
type PlacedItem struct {
	Position Vec3
	Kind     ItemKind
}

// Writer serializes the current world state back to the text map format.
type Writer struct {
	mapping *TileMapping
}

// NewWriter returns a Writer using the standard glyph table.
func NewWriter() *Writer {
	return &Writer{mapping: NewTileMapping()}
}

// Write renders the base grid, then overlays item glyphs, then monster
// glyphs, then the player glyph last, so the player wins any overlap.
// Rows are joined with '\n' and there is no trailing newline.
func (w *Writer) Write(m *Map, player Vec3, items []PlacedItem, monsters []PlacedMonster) string {
	rows := make([][]rune, m.Grid.Height())
	for y := range rows {
		row := make([]rune, m.Grid.Width())
		for x := range row {
			row[x] = w.mapping.TileGlyph(m.Grid.At(x, y).Kind)
		}
		rows[y] = row
	}

	for _, it := range items {
		x, y := m.WorldToGrid(it.Position)
		rows[y][x] = w.mapping.ItemGlyph(it.Kind)
	}
	for _, mo := range monsters {
		x, y := m.WorldToGrid(mo.Position)
		rows[y][x] = w.mapping.MonsterGlyph(mo.Kind)
	}
	px, py := m.WorldToGrid(player)
	rows[py][px] = PlayerGlyph

	var b strings.Builder
	for y, row := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
