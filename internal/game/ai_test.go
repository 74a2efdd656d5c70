package game

import (
	"testing"

	"rogue-dungeon/internal/gamemap"
)

// openMap builds an all-floor map large enough for world-space movement.
func openMap(width, height int) *gamemap.Map {
	return &gamemap.Map{
		Grid:    gamemap.NewGrid(width, height, gamemap.TileFloor),
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

func TestMonsterPursuesVisiblePlayer(t *testing.T) {
	m := openMap(21, 21)
	mon := NewMonster(gamemap.MonsterOrc, m.GridToWorld(5, 10))
	player := m.GridToWorld(12, 10)

	before := mon.Position.Distance(player)
	UpdateMonsters(m, []*Monster{mon}, player, 0.1)

	if mon.State != StatePursuing {
		t.Fatalf("state = %d, want pursuing", mon.State)
	}
	if after := mon.Position.Distance(player); after >= before {
		t.Errorf("pursuing monster should close distance: %f -> %f", before, after)
	}
}

func TestMonsterIdleWithoutSightline(t *testing.T) {
	m := openMap(21, 21)
	// Wall column between monster and player.
	for y := 0; y < 21; y++ {
		m.Grid.Set(8, y, gamemap.MakeWall())
	}
	mon := NewMonster(gamemap.MonsterOrc, m.GridToWorld(5, 10))
	player := m.GridToWorld(12, 10)

	UpdateMonsters(m, []*Monster{mon}, player, 0.1)

	if mon.State != StateIdle {
		t.Errorf("state = %d, want idle behind a wall", mon.State)
	}
	if mon.Position != m.GridToWorld(5, 10) {
		t.Error("idle monster should not move")
	}
}

func TestMonsterIdleBeyondSightRange(t *testing.T) {
	m := openMap(41, 5)
	mon := NewMonster(gamemap.MonsterOrc, m.GridToWorld(0, 2))
	player := m.GridToWorld(40, 2) // 160 world units away, sight range is 40

	UpdateMonsters(m, []*Monster{mon}, player, 0.1)
	if mon.State != StateIdle {
		t.Errorf("state = %d, want idle beyond sight range", mon.State)
	}
}

func TestMonsterAttacksInRange(t *testing.T) {
	m := openMap(11, 11)
	player := m.GridToWorld(5, 5)
	mon := NewMonster(gamemap.MonsterTroll, player.Add(gamemap.Vec3{X: 1}))

	dmg := UpdateMonsters(m, []*Monster{mon}, player, 0.1)
	if mon.State != StateAttacking {
		t.Fatalf("state = %d, want attacking", mon.State)
	}
	if dmg != trollDamage {
		t.Errorf("first swing damage = %d, want %d", dmg, trollDamage)
	}

	// The swing cooldown gates further damage.
	if dmg := UpdateMonsters(m, []*Monster{mon}, player, 0.1); dmg != 0 {
		t.Errorf("cooldown should suppress immediate re-attack, got %d", dmg)
	}
}

func TestMonsterBlockedByWall(t *testing.T) {
	m := openMap(21, 5)
	// Wall right next to the monster, player beyond it but diagonal sight
	// kept clear on another row would not matter — block the whole column.
	mon := NewMonster(gamemap.MonsterOrc, m.GridToWorld(4, 2))
	player := m.GridToWorld(6, 2)
	m.Grid.Set(5, 2, gamemap.MakeWall())

	// Sightline is blocked, monster idles; force pursuit by clearing the
	// state machine's input: move player adjacent around the wall row.
	UpdateMonsters(m, []*Monster{mon}, player, 0.1)
	if mon.State != StateIdle {
		t.Errorf("state = %d, want idle (wall blocks sight)", mon.State)
	}

	// moveWithCollision itself must refuse to enter the wall.
	from := m.GridToWorld(4, 2)
	got := moveWithCollision(m, from, gamemap.Vec3{X: gamemap.TileSize})
	if got != from {
		t.Error("step into a wall cell should leave the mover in place")
	}
}

func TestNewMonsterStats(t *testing.T) {
	orc := NewMonster(gamemap.MonsterOrc, gamemap.Vec3{})
	troll := NewMonster(gamemap.MonsterTroll, gamemap.Vec3{})
	if orc.HP >= troll.HP {
		t.Error("trolls should have more HP than orcs")
	}
	if orc.damage() >= troll.damage() {
		t.Error("trolls should hit harder than orcs")
	}
	if orc.State != StateIdle {
		t.Error("monsters start idle")
	}
}
