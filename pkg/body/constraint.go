// pkg/body/constraint.go
package body

// Constraint nudges a pair of particles toward satisfying a geometric
// relation. Each Solve call applies only a partial correction; the engine
// runs several solver iterations per frame so the constraint set relaxes
// toward a consistent configuration.
type Constraint interface {
	Solve()
	ParticleA() *Particle
	ParticleB() *Particle
}

const (
	// minLengthSquared guards the squared-length test before any division.
	minLengthSquared = 1e-9
	// minLength guards the direction computation.
	minLength = 1e-6
)

// DistanceConstraint keeps two particles at a fixed rest length.
// Stiffness is the fraction of the violation corrected per iteration,
// not a spring constant.
type DistanceConstraint struct {
	A          *Particle
	B          *Particle
	RestLength float64
	Stiffness  float64
}

// NewDistanceConstraint creates a constraint whose rest length is the
// current distance between the two particles, so the pair starts at rest.
func NewDistanceConstraint(a, b *Particle, stiffness float64) *DistanceConstraint {
	return &DistanceConstraint{
		A:          a,
		B:          b,
		RestLength: a.Position.Distance(b.Position),
		Stiffness:  stiffness,
	}
}

// Solve applies one position-based correction. Degenerate geometry
// (coincident particles) and fully pinned pairs are skipped silently;
// failing an iteration would be worse than missing one.
func (c *DistanceConstraint) Solve() {
	delta := c.B.Position.Sub(c.A.Position)
	if delta.LengthSquared() < minLengthSquared {
		return
	}

	currentLength := delta.Length()
	if currentLength < minLength {
		return
	}

	lengthError := currentLength - c.RestLength

	totalInvMass := c.A.InvMass + c.B.InvMass
	if totalInvMass == 0 {
		return
	}

	direction := delta.Div(currentLength)
	scalar := (lengthError / totalInvMass) * c.Stiffness
	correction := direction.Scale(scalar)

	c.A.ApplyCorrection(correction, c.A.InvMass)
	c.B.ApplyCorrection(correction.Scale(-1), c.B.InvMass)
}

// ParticleA returns the first endpoint.
func (c *DistanceConstraint) ParticleA() *Particle {
	return c.A
}

// ParticleB returns the second endpoint.
func (c *DistanceConstraint) ParticleB() *Particle {
	return c.B
}
