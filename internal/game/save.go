package game

import (
	"fmt"
	"os"

	"rogue-dungeon/internal/gamemap"
	"rogue-dungeon/internal/generate"
)

// FloorItem is one live item lying on the floor.
type FloorItem struct {
	Kind     gamemap.ItemKind
	Position gamemap.Vec3
}

// WriteSave serializes the current floor to path in the text map format:
// base terrain with item, monster and player overlays stamped on top.
func WriteSave(path string, m *gamemap.Map, player gamemap.Vec3, monsters []*Monster, items []FloorItem) error {
	placedItems := make([]gamemap.PlacedItem, len(items))
	for i, it := range items {
		placedItems[i] = gamemap.PlacedItem{Position: it.Position, Kind: it.Kind}
	}
	placedMonsters := make([]gamemap.PlacedMonster, len(monsters))
	for i, mo := range monsters {
		placedMonsters[i] = gamemap.PlacedMonster{Position: mo.Position, Kind: mo.Kind}
	}

	text := gamemap.NewWriter().Write(m, player, placedItems, placedMonsters)
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// LoadSave restores a floor from a save file. Only terrain and the player
// cell are read back; occupants are supplied out of band by the caller.
func LoadSave(path string) (*gamemap.Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read save: %w", err)
	}
	m, err := (&generate.StringMapGenerator{Input: string(data)}).Generate()
	if err != nil {
		return nil, fmt.Errorf("parse save: %w", err)
	}
	return m, nil
}
