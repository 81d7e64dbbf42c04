package main

import (
	"log"

	"github.com/golangdaddy/autorennen/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	ebiten.SetWindowTitle("Autorennen")
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
