package main

// Simulation is the single capability shared by all scene variants: advance
// the constraint solve for a new cursor position, then expose the particle
// state read-only. Each Update runs to completion on the caller's
// goroutine; nothing here is concurrent.
type Simulation interface {
	// Update re-projects particle positions for the new cursor position.
	Update(cursor Vec2)
	// Particles returns the ordered particle snapshot. It aliases internal
	// state and is only valid until the next Update.
	Particles() []Particle
	// MainParticle returns the cursor-follower / anchor particle.
	MainParticle() *Particle
	// DrawsMainParticle reports whether the renderer should paint the main
	// particle for this scene.
	DrawsMainParticle() bool
}

// SceneType enumerates the selectable scenes.
type SceneType int

const (
	SceneBasicContainment SceneType = iota
	SceneMassSeparation
	SceneLinkChain
	sceneCount
)

func (s SceneType) Next() SceneType {
	return (s + 1) % sceneCount
}

func (s SceneType) Name() string {
	switch s {
	case SceneBasicContainment:
		return "Basic Containment"
	case SceneMassSeparation:
		return "Mass Separation"
	case SceneLinkChain:
		return "Link Chain"
	}
	return "Unknown"
}
