package generate

import (
	"math"
	"math/rand"

	"rogue-dungeon/internal/gamemap"
)

// MaxFloors is the depth of the dungeon.
const MaxFloors = 10

// LevelConfig builds the generation config for the given floor number
// (1-indexed). Dimensions, room budget and spawn tables scale linearly
// with depth: later floors are larger, denser and troll-heavier.
func LevelConfig(floor int, rng *rand.Rand) *Config {
	t := 0.0
	if MaxFloors > 1 {
		t = float64(floor-1) / float64(MaxFloors-1)
	}

	return &Config{
		Width:              lerpi(60, 90, t),
		Height:             lerpi(35, 50, t),
		MaxRooms:           30,
		RoomMinSize:        6,
		RoomMaxSize:        10,
		MaxMonstersPerRoom: lerpi(2, 4, t),
		MaxItemsPerRoom:    2,
		FloorNumber:        floor,
		MonsterTable: []MonsterEntry{
			{Kind: gamemap.MonsterOrc, Weight: lerp(0.8, 0.4, t)},
			{Kind: gamemap.MonsterTroll, Weight: lerp(0.2, 0.6, t)},
		},
		ItemTable: []ItemEntry{
			{Kind: gamemap.ItemHealPotion, Weight: 0.6},
			{Kind: gamemap.ItemLightning, Weight: 0.4},
		},
		Rand: rng,
	}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
