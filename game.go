package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

// Game wires the host side together: it turns ebiten's input state into a
// cursor-position stream for the active simulation, handles scene switching
// and live option tuning, and hands the post-Update snapshot to the
// renderer. The simulations themselves never touch ebiten.
type Game struct {
	scene    SceneType
	sim      Simulation
	renderer *Renderer
	rng      *rand.Rand
}

func NewGame() *Game {
	g := &Game{
		renderer: NewRenderer(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.selectScene(SceneBasicContainment)
	return g
}

// selectScene replaces the active simulation. The previous scene's
// particle set is discarded wholesale; sets are never resized in place.
func (g *Game) selectScene(scene SceneType) {
	sim, err := g.createScene(scene)
	if err != nil {
		// Default scenes are hard-coded valid; this is a programming error.
		log.Fatalf("scene %s: %v", scene.Name(), err)
	}
	g.scene = scene
	g.sim = sim
}

func (g *Game) createScene(scene SceneType) (Simulation, error) {
	start := V(400, 400)
	switch scene {
	case SceneMassSeparation:
		return NewMassSeparation(4000, 5, 50, start, colorWhite, ColorRandom, g.rng)
	case SceneLinkChain:
		return NewLinkChain(20, 15, 30, start, ColorNoise, g.rng)
	default:
		return NewBasicContainment(50, 15, start, colorWhite, colorBlack)
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	mx, my := ebiten.CursorPosition()
	g.sim.Update(V(float64(mx), float64(my)))
	return nil
}

func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.selectScene(g.scene.Next())
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.selectScene(SceneBasicContainment)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.selectScene(SceneMassSeparation)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key3) {
		g.selectScene(SceneLinkChain)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveOptions(optionsFile)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loadOptions(optionsFile)
	}

	switch sim := g.sim.(type) {
	case *MassSeparation:
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			sim.SetIterations(sim.Iterations() + 1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			sim.SetIterations(sim.Iterations() - 1)
		}
	case *LinkChain:
		if inpututil.IsKeyJustPressed(ebiten.KeyF) {
			sim.SetFabrik(!sim.FabrikEnabled())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			sim.SetBallCollision(!sim.BallCollisionEnabled())
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
			sim.SetLinkDistance(sim.LinkDistance() + 5)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
			sim.SetLinkDistance(sim.LinkDistance() - 5)
		}
		// The FABRIK tail anchor stays pinned to the window center.
		sim.SetAnchorPos(V(screenWidth/2, screenHeight/2))
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.sim)
	g.renderer.RenderOverlay(screen, g)
}

// Layout returns the screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
