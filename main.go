// rogue-dungeon is a terminal dungeon crawler: procedurally generated
// floors, continuous world-space movement on a tile grid, and text-format
// saves readable with any pager.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"rogue-dungeon/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "generation seed (0 = random)")
	savePath := flag.String("save", "dungeon.sav", "file written by the in-game save key")
	restore := flag.String("restore", "", "start from a previously saved floor")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	g, err := game.New(screen, game.Options{
		Seed:     *seed,
		SavePath: *savePath,
		Restore:  *restore,
	})
	if err != nil {
		screen.Fini()
		log.Fatalf("setup: %v", err)
	}

	g.Run()
	screen.Fini()

	switch {
	case g.Won():
		fmt.Println("You escaped the depths!")
	case g.Dead():
		fmt.Println("You died in the dark.")
	}
	os.Exit(0)
}
