package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rodaine/triumph-cap4053sp2011/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug HUD and prefab hot reload")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("triumph")

	game, err := NewGame(*levelName, *debug)
	if err != nil {
		log.Fatal(err)
	}

	// The game draws its own cursor sprite in world space.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
