// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-softbody/pkg/body"
	"github.com/opd-ai/go-softbody/pkg/logging"
)

// Renderer consumes the engine's read-only body views each frame. Renderers
// must never mutate particle or constraint state.
type Renderer interface {
	Clear()
	RenderParticle(p *body.Particle)
	RenderConstraint(c body.Constraint)
	Present()
}

// NullRenderer is a no-op Renderer that logs calls at debug level.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderParticle implements Renderer.
func (d *NullRenderer) RenderParticle(p *body.Particle) {
	ctx := context.Background()
	if p == nil {
		d.logger.Debug(ctx, "RenderParticle called with nil particle")
		return
	}
	d.logger.Debug(ctx, "RenderParticle called",
		"particle_id", p.ID,
		"body_id", p.BodyID,
		"x", p.Position.X,
		"y", p.Position.Y,
	)
}

// RenderConstraint implements Renderer.
func (d *NullRenderer) RenderConstraint(c body.Constraint) {
	ctx := context.Background()
	if c == nil {
		d.logger.Debug(ctx, "RenderConstraint called with nil constraint")
		return
	}
	d.logger.Debug(ctx, "RenderConstraint called",
		"particle_a", c.ParticleA().ID,
		"particle_b", c.ParticleB().ID,
	)
}
