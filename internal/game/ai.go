package game

import "rogue-dungeon/internal/gamemap"

// AIState is the monster behaviour state.
type AIState uint8

const (
	StateIdle AIState = iota
	StatePursuing
	StateAttacking
)

const (
	monsterSpeed = 2.0
	monsterProbe = 0.5
	attackRange  = 2.0
	sightRange   = 10 * gamemap.TileSize
	attackPeriod = 1.0 // seconds between melee swings
	orcDamage    = 2
	trollDamage  = 4
)

// Monster is one live monster on the floor.
type Monster struct {
	Kind     gamemap.MonsterKind
	Position gamemap.Vec3
	HP       int
	State    AIState

	cooldown float64
}

// NewMonster creates a monster of the given kind at a world position.
func NewMonster(kind gamemap.MonsterKind, pos gamemap.Vec3) *Monster {
	hp := 10
	if kind == gamemap.MonsterTroll {
		hp = 16
	}
	return &Monster{Kind: kind, Position: pos, HP: hp}
}

func (m *Monster) damage() int {
	if m.Kind == gamemap.MonsterTroll {
		return trollDamage
	}
	return orcDamage
}

// UpdateMonsters advances every monster by dt seconds: state transitions
// from distance and the continuous line-of-sight query, pursuit through
// the four-probe collision test, and melee swings against the player.
// It returns the total damage dealt to the player this tick.
func UpdateMonsters(m *gamemap.Map, monsters []*Monster, player gamemap.Vec3, dt float64) int {
	total := 0
	for _, mon := range monsters {
		mon.updateState(m, player)

		switch mon.State {
		case StatePursuing:
			dir := player.Sub(mon.Position).Normalize()
			step := dir.Scale(monsterSpeed * dt)
			mon.Position = moveWithCollision(m, mon.Position, step)
		case StateAttacking:
			mon.cooldown -= dt
			if mon.cooldown <= 0 {
				total += mon.damage()
				mon.cooldown = attackPeriod
			}
		}
	}
	return total
}

// updateState picks the state from the player's distance; pursuit requires
// a clear sightline.
func (m *Monster) updateState(gm *gamemap.Map, player gamemap.Vec3) {
	d := m.Position.Distance(player)
	switch {
	case d <= attackRange:
		m.State = StateAttacking
	case d <= sightRange && gm.LineOfSight(m.Position, player):
		m.State = StatePursuing
	default:
		m.State = StateIdle
		m.cooldown = 0
	}
}

// moveWithCollision applies step to pos unless the destination's probe
// points hit a wall, in which case the mover stays put.
func moveWithCollision(m *gamemap.Map, pos, step gamemap.Vec3) gamemap.Vec3 {
	next := pos.Add(step)
	if m.CollideWithWall(next, monsterProbe) {
		return pos
	}
	return next
}
