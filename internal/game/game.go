package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"rogue-dungeon/internal/gamemap"
	"rogue-dungeon/internal/generate"
	"rogue-dungeon/internal/render"
)

const (
	playerStep   = 1.0 // world units per movement keypress
	playerProbe  = 0.5
	playerMaxHP  = 20
	playerAttack = 5
	playerReach  = 2.5
	pickupRange  = 1.5
	tickInterval = 100 * time.Millisecond
)

// Options configures a new game.
type Options struct {
	Seed     int64  // 0 means time-based
	SavePath string // where 's' writes the floor
	Restore  string // when non-empty, start from this save file
}

// Game owns one run: the current floor's Map, the live occupants and the
// tcell screen. A new floor replaces the Map wholesale on descent.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	rng      *rand.Rand
	mapping  *gamemap.TileMapping

	floor     int
	m         *gamemap.Map
	playerPos gamemap.Vec3
	playerHP  int
	monsters  []*Monster
	items     []FloorItem

	savePath string
	status   string
	quit     bool
	won      bool
}

// New creates a game on the given screen, generating the first floor (or
// restoring one from opts.Restore).
func New(screen tcell.Screen, opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		rng:      rand.New(rand.NewSource(seed)),
		mapping:  gamemap.NewTileMapping(),
		playerHP: playerMaxHP,
		savePath: opts.SavePath,
	}

	if opts.Restore != "" {
		m, err := LoadSave(opts.Restore)
		if err != nil {
			return nil, err
		}
		g.floor = 1
		g.setMap(m)
		g.status = "floor restored"
		return g, nil
	}

	g.loadFloor(1)
	return g, nil
}

// loadFloor generates floor n and replaces the whole world state.
func (g *Game) loadFloor(n int) {
	g.floor = n
	cfg := generate.LevelConfig(n, g.rng)
	m, err := generate.NewRoomsGenerator(cfg).Generate()
	if err != nil {
		// The randomized strategy never fails; reaching this is a bug.
		panic(err)
	}
	g.setMap(m)
	g.status = fmt.Sprintf("floor %d", n)
}

// setMap installs a freshly generated or restored map and spawns its
// occupants from the generation lists.
func (g *Game) setMap(m *gamemap.Map) {
	g.m = m
	g.playerPos = m.GridToWorld(m.SpawnX, m.SpawnY)

	g.monsters = g.monsters[:0]
	for _, ms := range m.Monsters {
		g.monsters = append(g.monsters, NewMonster(ms.Kind, m.GridToWorld(ms.X, ms.Y)))
	}
	g.items = g.items[:0]
	for _, is := range m.Items {
		g.items = append(g.items, FloorItem{Kind: is.Kind, Position: m.GridToWorld(is.X, is.Y)})
	}
}

// Run drives the event/tick loop until the player quits, dies or wins.
func (g *Game) Run() {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	g.draw()
	for !g.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			g.handleEvent(ev)
		case <-ticker.C:
			g.tick(tickInterval.Seconds())
		}
		g.draw()
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.renderer.Resize()
		g.screen.Sync()
	case *tcell.EventKey:
		g.handleKey(ev)
	}
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.quit = true
	case tcell.KeyUp:
		g.tryMove(0, -playerStep)
	case tcell.KeyDown:
		g.tryMove(0, playerStep)
	case tcell.KeyLeft:
		g.tryMove(-playerStep, 0)
	case tcell.KeyRight:
		g.tryMove(playerStep, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			g.quit = true
		case 'k':
			g.tryMove(0, -playerStep)
		case 'j':
			g.tryMove(0, playerStep)
		case 'h':
			g.tryMove(-playerStep, 0)
		case 'l':
			g.tryMove(playerStep, 0)
		case ' ':
			g.attack()
		case 'g':
			g.pickup()
		case '>':
			g.tryDescend()
		case 's':
			g.save()
		}
	}
}

// tryMove shifts the player in world space unless the four-probe collision
// test or a monster blocks the destination.
func (g *Game) tryMove(dx, dz float64) {
	next := g.playerPos.Add(gamemap.Vec3{X: dx, Z: dz})
	if g.m.CollideWithWall(next, playerProbe) {
		return
	}
	for _, mon := range g.monsters {
		if next.Distance(mon.Position) <= playerProbe*2 {
			return
		}
	}
	g.playerPos = next
}

// attack hits the nearest monster within reach.
func (g *Game) attack() {
	var target *Monster
	best := playerReach
	for _, mon := range g.monsters {
		if d := g.playerPos.Distance(mon.Position); d <= best {
			best = d
			target = mon
		}
	}
	if target == nil {
		g.status = "nothing in reach"
		return
	}
	target.HP -= playerAttack
	if target.HP <= 0 {
		g.removeMonster(target)
		g.status = fmt.Sprintf("slain %c", g.mapping.MonsterGlyph(target.Kind))
	} else {
		g.status = fmt.Sprintf("hit %c", g.mapping.MonsterGlyph(target.Kind))
	}
}

func (g *Game) removeMonster(target *Monster) {
	for i, mon := range g.monsters {
		if mon == target {
			g.monsters = append(g.monsters[:i], g.monsters[i+1:]...)
			return
		}
	}
}

// pickup collects the nearest item within range. Potions heal; lightning
// strikes every monster the player can see.
func (g *Game) pickup() {
	for i, it := range g.items {
		if g.playerPos.Distance(it.Position) > pickupRange {
			continue
		}
		g.items = append(g.items[:i], g.items[i+1:]...)
		switch it.Kind {
		case gamemap.ItemHealPotion:
			g.playerHP = min(playerMaxHP, g.playerHP+8)
			g.status = "you feel better"
		case gamemap.ItemLightning:
			g.castLightning()
		}
		return
	}
	g.status = "nothing here"
}

func (g *Game) castLightning() {
	struck := 0
	for _, mon := range append([]*Monster(nil), g.monsters...) {
		if g.m.LineOfSight(g.playerPos, mon.Position) {
			mon.HP -= playerAttack
			struck++
			if mon.HP <= 0 {
				g.removeMonster(mon)
			}
		}
	}
	g.status = fmt.Sprintf("lightning strikes %d", struck)
}

// tryDescend regenerates the next floor when the player stands on the
// staircase; the old Map is discarded wholesale.
func (g *Game) tryDescend() {
	x, y := g.m.WorldToGrid(g.playerPos)
	if g.m.Grid.At(x, y).Kind != gamemap.TileStairsDown {
		g.status = "no staircase here"
		return
	}
	if g.floor >= generate.MaxFloors {
		g.won = true
		g.quit = true
		return
	}
	g.loadFloor(g.floor + 1)
}

func (g *Game) save() {
	if g.savePath == "" {
		g.status = "no save path configured"
		return
	}
	if err := WriteSave(g.savePath, g.m, g.playerPos, g.monsters, g.items); err != nil {
		g.status = err.Error()
		return
	}
	g.status = "saved"
}

func (g *Game) tick(dt float64) {
	g.playerHP -= UpdateMonsters(g.m, g.monsters, g.playerPos, dt)
	if g.playerHP <= 0 {
		g.quit = true
	}
}

// Won reports whether the run ended by descending past the last floor.
func (g *Game) Won() bool { return g.won }

// Dead reports whether the run ended with the player at zero HP.
func (g *Game) Dead() bool { return g.playerHP <= 0 }

func (g *Game) draw() {
	px, py := g.m.WorldToGrid(g.playerPos)
	g.renderer.CenterOn(px, py)

	sprites := make([]render.Sprite, 0, len(g.items)+len(g.monsters)+1)
	for _, it := range g.items {
		sprites = append(sprites, render.Sprite{
			Position: it.Position,
			Glyph:    g.mapping.ItemGlyph(it.Kind),
			Style:    render.StyleItem,
		})
	}
	for _, mon := range g.monsters {
		sprites = append(sprites, render.Sprite{
			Position: mon.Position,
			Glyph:    g.mapping.MonsterGlyph(mon.Kind),
			Style:    render.StyleMonster,
		})
	}
	sprites = append(sprites, render.Sprite{
		Position: g.playerPos,
		Glyph:    gamemap.PlayerGlyph,
		Style:    render.StylePlayer,
	})

	status := fmt.Sprintf("floor %d/%d  hp %d/%d  %s",
		g.floor, generate.MaxFloors, g.playerHP, playerMaxHP, g.status)
	g.renderer.DrawFrame(g.m, sprites, status)
}
