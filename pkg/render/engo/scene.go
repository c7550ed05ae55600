// pkg/render/engo/scene.go
package engo

import (
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-softbody/pkg/engine"
	"github.com/opd-ai/go-softbody/pkg/physics"
	"github.com/opd-ai/go-softbody/pkg/shape"
)

// disturbRadius is how far around the pointer sleeping bodies are woken.
const disturbRadius = 60.0

// SimulationScene steps the soft-body engine at a fixed timestep and draws
// every particle, routing pointer movement into DisturbArea wake calls.
type SimulationScene struct {
	world    *ecs.World
	sim      *engine.Engine
	renderer *EngoRenderer
	throttle *shape.DisturbThrottle
}

// NewSimulationScene creates a scene around an existing engine.
func NewSimulationScene(sim *engine.Engine) *SimulationScene {
	return &SimulationScene{
		sim:      sim,
		world:    &ecs.World{},
		throttle: shape.NewDisturbThrottle(30, time.Second),
	}
}

// Type returns the scene type (required by Engo)
func (scene *SimulationScene) Type() string {
	return "SimulationScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *SimulationScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *SimulationScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	scene.world.AddSystem(&common.MouseSystem{})

	scene.renderer = NewEngoRenderer(scene.world)
	scene.renderer.Initialize()

	scene.world.AddSystem(&stepSystem{scene: scene})
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *SimulationScene) Exit() {}

// stepSystem advances the simulation once per rendered frame and refreshes
// the particle entities from the engine's read-only views.
type stepSystem struct {
	scene *SimulationScene
}

// Update implements ecs.System. Engo hands in the real frame delta; the
// engine clamps stability-sensitive behavior itself via its dt guard.
func (s *stepSystem) Update(dt float32) {
	sim := s.scene.sim

	s.handlePointer()
	sim.Update(float64(dt))

	for _, p := range sim.GetParticles() {
		s.scene.renderer.RenderParticle(p)
	}
}

// Remove implements ecs.System.
func (s *stepSystem) Remove(basic ecs.BasicEntity) {}

// handlePointer wakes sleeping bodies near the pointer, throttled so a
// fast-moving mouse does not flood the engine with scans.
func (s *stepSystem) handlePointer() {
	mouseX := engo.Input.Mouse.X
	mouseY := engo.Input.Mouse.Y
	if mouseX == 0 && mouseY == 0 {
		return
	}
	if !s.scene.throttle.Allow("pointer") {
		return
	}
	s.scene.sim.DisturbArea(physics.Vector2D{
		X: float64(mouseX),
		Y: float64(mouseY),
	}, disturbRadius)
}
