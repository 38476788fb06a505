package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"lightcycle/game"
)

func main() {
	config := game.DefaultConfig()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := game.NewGameState(config, rng)
	g := game.NewGame(config, state)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Light Cycle")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
