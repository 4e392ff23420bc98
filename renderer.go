package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer draws a simulation's particle snapshot as filled discs, main
// particle first, then the rest in index order.
type Renderer struct {
	Background color.RGBA
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: color.RGBA{40, 40, 40, 255},
	}
}

func (r *Renderer) Render(screen *ebiten.Image, sim Simulation) {
	screen.Fill(r.Background)

	if sim.DrawsMainParticle() {
		r.drawParticle(screen, sim.MainParticle())
	}
	particles := sim.Particles()
	for i := range particles {
		r.drawParticle(screen, &particles[i])
	}
}

func (r *Renderer) drawParticle(screen *ebiten.Image, p *Particle) {
	vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), p.Color, true)
}

// RenderOverlay prints the scene status and key help in the top-left
// corner.
func (r *Renderer) RenderOverlay(screen *ebiten.Image, g *Game) {
	lines := []string{
		fmt.Sprintf("Scene: %s | FPS: %.0f", g.scene.Name(), ebiten.ActualFPS()),
		fmt.Sprintf("Particles: %d", len(g.sim.Particles())),
		"Keys: [1] Containment | [2] Separation | [3] Chain | [Space] Next | [S]ave / [L]oad options",
	}
	switch sim := g.sim.(type) {
	case *MassSeparation:
		lines = append(lines, fmt.Sprintf("Options: [Up/Down] Iterations: %d", sim.Iterations()))
	case *LinkChain:
		lines = append(lines, fmt.Sprintf(
			"Options: [F] FABRIK: %s | [C] Collision: %s | [Up/Down] Link distance: %.0f",
			onOff(sim.FabrikEnabled()), onOff(sim.BallCollisionEnabled()), sim.LinkDistance()))
	}

	y := 8
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, y)
		y += 16
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
