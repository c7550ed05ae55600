// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-softbody/pkg/body"
	"github.com/opd-ai/go-softbody/pkg/physics"
)

const particleSize = 8

// EngoRenderer draws soft-body particles through the Engo render system,
// one ECS entity per particle keyed by particle ID.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	particleEntities map[body.ID]*ecs.BasicEntity
	spaceComponents  map[body.ID]*common.SpaceComponent
	renderComponents map[body.ID]*common.RenderComponent
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:            world,
		particleEntities: make(map[body.ID]*ecs.BasicEntity),
		spaceComponents:  make(map[body.ID]*common.SpaceComponent),
		renderComponents: make(map[body.ID]*common.RenderComponent),
	}
}

// Initialize sets up the renderer's systems
func (r *EngoRenderer) Initialize() {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)
}

// RenderParticle creates or updates the render entity for a particle.
func (r *EngoRenderer) RenderParticle(p *body.Particle) {
	r.getOrCreateParticleEntity(p)
	r.updateParticleComponents(p)
}

// updateParticleComponents refreshes the particle's screen position and
// color from its simulation state.
func (r *EngoRenderer) updateParticleComponents(p *body.Particle) {
	if spaceComponent := r.spaceComponents[p.ID]; spaceComponent != nil {
		pos := worldToScreen(p.Position)
		spaceComponent.Position = engo.Point{
			X: pos.X - particleSize/2,
			Y: pos.Y - particleSize/2,
		}
	}

	if renderComponent := r.renderComponents[p.ID]; renderComponent != nil {
		renderComponent.Color = particleColor(p)
	}
}

// getOrCreateParticleEntity gets an existing particle entity or creates a new one
func (r *EngoRenderer) getOrCreateParticleEntity(p *body.Particle) *ecs.BasicEntity {
	if entity, exists := r.particleEntities[p.ID]; exists {
		return entity
	}

	basicEntity := ecs.NewBasic()
	r.particleEntities[p.ID] = &basicEntity

	renderComponent := common.RenderComponent{
		Drawable: common.Circle{},
		Color:    particleColor(p),
	}

	spaceComponent := common.SpaceComponent{
		Position: engo.Point{X: 0, Y: 0},
		Width:    particleSize,
		Height:   particleSize,
	}

	r.renderComponents[p.ID] = &renderComponent
	r.spaceComponents[p.ID] = &spaceComponent
	r.renderSystem.Add(&basicEntity, &renderComponent, &spaceComponent)

	return &basicEntity
}

// RemoveParticle removes a particle entity from rendering
func (r *EngoRenderer) RemoveParticle(id body.ID) {
	if entity, exists := r.particleEntities[id]; exists {
		r.renderSystem.Remove(*entity)
		delete(r.particleEntities, id)
		delete(r.spaceComponents, id)
		delete(r.renderComponents, id)
	}
}

// particleColor distinguishes pinned particles from free ones.
func particleColor(p *body.Particle) color.Color {
	if p.Static {
		return color.RGBA{200, 60, 60, 255}
	}
	return color.RGBA{240, 240, 240, 255}
}

// worldToScreen converts world coordinates to screen coordinates. The
// simulation already works in viewport pixels, so this is a cast.
func worldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X),
		Y: float32(worldPos.Y),
	}
}
