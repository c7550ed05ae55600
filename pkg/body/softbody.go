// pkg/body/softbody.go
package body

import (
	"github.com/opd-ai/go-softbody/pkg/physics"
)

// SoftBody is a named chain of particles held together by distance
// constraints. Particle order is meaningful: adjacency in Particles defines
// the structural topology.
type SoftBody struct {
	ID          string
	Particles   []*Particle
	Constraints []Constraint
	Loop        bool
}

// NewSoftBody assembles a soft body from point offsets around an origin.
// Constraints are created structural-first, then the loop-closing segment,
// then bending constraints; the solver evaluates them in this order.
func NewSoftBody(id string, points []physics.Vector2D, origin physics.Vector2D, loop bool, pinned []int, structuralStiffness, bendingStiffness float64) *SoftBody {
	sb := &SoftBody{
		ID:        id,
		Particles: make([]*Particle, 0, len(points)),
		Loop:      loop,
	}

	pinSet := make(map[int]bool, len(pinned))
	for _, idx := range pinned {
		pinSet[idx] = true
	}

	for i, offset := range points {
		p := NewParticle(origin.Add(offset), 1)
		p.BodyID = id
		if pinSet[i] {
			p.Pin()
		}
		sb.Particles = append(sb.Particles, p)
	}

	sb.addStructuralConstraints(structuralStiffness)
	sb.addBendingConstraints(bendingStiffness)

	return sb
}

// addStructuralConstraints links every consecutive pair, plus the closing
// segment for looped bodies. Rest lengths are captured from the initial
// geometry so the body starts at rest, not under tension.
func (sb *SoftBody) addStructuralConstraints(stiffness float64) {
	count := len(sb.Particles)
	for i := 0; i+1 < count; i++ {
		sb.Constraints = append(sb.Constraints,
			NewDistanceConstraint(sb.Particles[i], sb.Particles[i+1], stiffness))
	}
	if sb.Loop && count >= 2 {
		sb.Constraints = append(sb.Constraints,
			NewDistanceConstraint(sb.Particles[count-1], sb.Particles[0], stiffness))
	}
}

// addBendingConstraints links second neighbors to resist local buckling.
// Looped bodies wrap the second index modulo the particle count; open
// chains stop two short of the end. Degenerate pairs are skipped.
func (sb *SoftBody) addBendingConstraints(stiffness float64) {
	count := len(sb.Particles)
	if stiffness <= 0 || count < 3 {
		return
	}

	limit := count - 2
	if sb.Loop {
		limit = count
	}

	for i := 0; i < limit; i++ {
		j := (i + 2) % count
		a, b := sb.Particles[i], sb.Particles[j]
		if a.Position.Distance(b.Position) < minLength {
			continue
		}
		sb.Constraints = append(sb.Constraints, NewDistanceConstraint(a, b, stiffness))
	}
}
