package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"log"
)

func main() {
	game := NewGame()

	// Set up Ebitengine game
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("2D Particle Constraints")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60) // Target 60 ticks per second

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
