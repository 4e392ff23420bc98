package main

import (
	"encoding/json"
	"os"
)

const optionsFile = "options.json"

// sceneOptions is the on-disk snapshot of the live tunables. Particle state
// itself is never persisted; only the knobs are.
type sceneOptions struct {
	Iterations    int     `json:"iterations"`
	LinkDistance  float64 `json:"link_distance"`
	UseFabrik     bool    `json:"use_fabrik"`
	BallCollision bool    `json:"ball_collision"`
}

// saveOptions writes the current scene's tunables to disk. Errors are
// ignored the same way a failed save is ignored in the UI: the simulation
// keeps running either way.
func (g *Game) saveOptions(filename string) {
	opts := sceneOptions{Iterations: DefaultSeparationIterations}
	switch sim := g.sim.(type) {
	case *MassSeparation:
		opts.Iterations = sim.Iterations()
	case *LinkChain:
		opts.LinkDistance = sim.LinkDistance()
		opts.UseFabrik = sim.FabrikEnabled()
		opts.BallCollision = sim.BallCollisionEnabled()
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return
	}
	os.WriteFile(filename, data, 0644)
}

// loadOptions applies saved tunables to the current scene.
func (g *Game) loadOptions(filename string) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}
	var opts sceneOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		return
	}
	switch sim := g.sim.(type) {
	case *MassSeparation:
		if opts.Iterations > 0 {
			sim.SetIterations(opts.Iterations)
		}
	case *LinkChain:
		sim.SetLinkDistance(opts.LinkDistance)
		sim.SetFabrik(opts.UseFabrik)
		sim.SetBallCollision(opts.BallCollision)
	}
}
