package main

import "testing"

func TestSceneTypeCycle(t *testing.T) {
	order := []SceneType{SceneBasicContainment, SceneMassSeparation, SceneLinkChain, SceneBasicContainment}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i].Name(), got.Name(), order[i+1].Name())
		}
	}
}

func TestDefaultScenesConstruct(t *testing.T) {
	g := NewGame()
	for _, scene := range []SceneType{SceneBasicContainment, SceneMassSeparation, SceneLinkChain} {
		sim, err := g.createScene(scene)
		if err != nil {
			t.Fatalf("default %s scene: %v", scene.Name(), err)
		}
		sim.Update(V(512, 384))
		if len(sim.Particles()) == 0 {
			t.Errorf("%s has no particles", scene.Name())
		}
	}
}
