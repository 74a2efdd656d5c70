package generate

import (
	"math/rand"

	"rogue-dungeon/internal/gamemap"
)

// MonsterEntry is one row of a floor's weighted monster table.
type MonsterEntry struct {
	Kind   gamemap.MonsterKind
	Weight float64
}

// ItemEntry is one row of a floor's weighted item table.
type ItemEntry struct {
	Kind   gamemap.ItemKind
	Weight float64
}

// addMonsters scatters monsters room by room. Every room — the spawn room
// included — independently draws a count in [0, MaxMonstersPerRoom], a
// uniform interior position per spawn, and a kind from the weighted table.
func addMonsters(rooms []Room, cfg *Config) []gamemap.MonsterSpawn {
	var monsters []gamemap.MonsterSpawn
	rng := cfg.Rand

	for _, room := range rooms {
		count := rng.Intn(cfg.MaxMonstersPerRoom + 1)
		for i := 0; i < count; i++ {
			kind := pickMonster(rng, cfg.MonsterTable)
			x, y := randomInRoom(room, rng)
			monsters = append(monsters, gamemap.MonsterSpawn{X: x, Y: y, Kind: kind})
		}
	}
	return monsters
}

// addItems scatters items room by room, mirroring addMonsters.
func addItems(rooms []Room, cfg *Config) []gamemap.ItemSpawn {
	var items []gamemap.ItemSpawn
	rng := cfg.Rand

	for _, room := range rooms {
		count := rng.Intn(cfg.MaxItemsPerRoom + 1)
		for i := 0; i < count; i++ {
			x, y := randomInRoom(room, rng)
			kind := pickItem(rng, cfg.ItemTable)
			items = append(items, gamemap.ItemSpawn{X: x, Y: y, Kind: kind})
		}
	}
	return items
}

// pickMonster selects a kind by cumulative-probability thresholding of one
// uniform [0,1) draw. Weights need not sum to 1: any residual probability
// falls through to the last entry.
func pickMonster(rng *rand.Rand, table []MonsterEntry) gamemap.MonsterKind {
	r := rng.Float64()
	acc := 0.0
	for _, e := range table {
		acc += e.Weight
		if r < acc {
			return e.Kind
		}
	}
	return table[len(table)-1].Kind
}

// pickItem is the item-table counterpart of pickMonster.
func pickItem(rng *rand.Rand, table []ItemEntry) gamemap.ItemKind {
	r := rng.Float64()
	acc := 0.0
	for _, e := range table {
		acc += e.Weight
		if r < acc {
			return e.Kind
		}
	}
	return table[len(table)-1].Kind
}
