// pkg/body/particle.go
package body

import (
	"github.com/opd-ai/go-softbody/pkg/physics"
)

// ID is a unique identifier for a particle
type ID uint64

// GenerateID generates a unique, monotonically increasing particle ID.
// The simulation is single-threaded (see pkg/engine), so a plain counter
// is sufficient.
var nextID ID = 1

func GenerateID() ID {
	id := nextID
	nextID++
	return id
}

// Particle is a point mass integrated with the Verlet scheme: velocity is
// implicit in the difference between Position and PrevPosition.
type Particle struct {
	ID           ID
	BodyID       string // id of the soft body that owns this particle
	Position     physics.Vector2D
	PrevPosition physics.Vector2D
	Acceleration physics.Vector2D
	Mass         float64
	InvMass      float64
	Static       bool
}

// NewParticle creates a particle at rest at the given position.
// A zero mass makes the particle static (infinite mass).
func NewParticle(position physics.Vector2D, mass float64) *Particle {
	p := &Particle{
		ID:           GenerateID(),
		Position:     position,
		PrevPosition: position,
		Mass:         mass,
	}
	if mass == 0 {
		p.Static = true
	} else {
		p.InvMass = 1 / mass
	}
	return p
}

// ApplyForce accumulates acceleration for the next integration step.
// No-op for static particles.
func (p *Particle) ApplyForce(force physics.Vector2D) {
	if p.Static {
		return
	}
	p.Acceleration = p.Acceleration.Add(force.Scale(p.InvMass))
}

// Integrate advances the particle by one Verlet step. Drag damps only the
// velocity carried over from the previous step; acceleration accumulated
// this frame is applied undamped. The accumulator is cleared afterwards.
func (p *Particle) Integrate(dt, drag float64) {
	if p.Static {
		return
	}
	velocity := p.Position.Sub(p.PrevPosition).Scale(1 - drag)
	p.PrevPosition = p.Position
	p.Position = p.Position.Add(velocity).Add(p.Acceleration.Scale(dt * dt))
	p.Acceleration = physics.Vector2D{}
}

// ApplyCorrection displaces the particle by delta scaled by weight and the
// particle's inverse mass. Callers pass the particle's own inverse mass as
// weight, so the net displacement scales with InvMass squared. Constraint
// tuning throughout assumes this weighting; do not change it to the
// conventional ratio.
func (p *Particle) ApplyCorrection(delta physics.Vector2D, weight float64) {
	if p.Static {
		return
	}
	p.Position = p.Position.Add(delta.Scale(weight * p.InvMass))
}

// Pin irreversibly fixes the particle in place by giving it infinite mass.
func (p *Particle) Pin() {
	p.Mass = 0
	p.InvMass = 0
	p.Static = true
}

// Velocity returns the implicit per-step velocity.
func (p *Particle) Velocity() physics.Vector2D {
	return p.Position.Sub(p.PrevPosition)
}
