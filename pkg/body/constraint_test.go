// pkg/body/constraint_test.go
package body

import (
	"math"
	"testing"

	"github.com/opd-ai/go-softbody/pkg/physics"
)

func TestDistanceConstraint_RestLengthFromInitialGeometry(t *testing.T) {
	a := NewParticle(physics.Vector2D{X: 0, Y: 0}, 1)
	b := NewParticle(physics.Vector2D{X: 3, Y: 4}, 1)

	c := NewDistanceConstraint(a, b, 0.9)
	if c.RestLength != 5 {
		t.Errorf("RestLength = %v, expected 5", c.RestLength)
	}
}

func TestDistanceConstraint_FullStiffnessConverges(t *testing.T) {
	a := NewParticle(physics.Vector2D{X: 0, Y: 0}, 1)
	b := NewParticle(physics.Vector2D{X: 20, Y: 0}, 1)

	c := &DistanceConstraint{A: a, B: b, RestLength: 10, Stiffness: 1}
	c.Solve()

	// error 10 split over total inverse mass 2: each endpoint moves 5 units
	if math.Abs(a.Position.X-5) > 1e-12 {
		t.Errorf("A.Position.X = %v, expected 5", a.Position.X)
	}
	if math.Abs(b.Position.X-15) > 1e-12 {
		t.Errorf("B.Position.X = %v, expected 15", b.Position.X)
	}
	if sep := a.Position.Distance(b.Position); math.Abs(sep-10) > 1e-12 {
		t.Errorf("separation after solve = %v, expected 10", sep)
	}
}

func TestDistanceConstraint_PartialStiffness(t *testing.T) {
	a := NewParticle(physics.Vector2D{X: 0, Y: 0}, 1)
	b := NewParticle(physics.Vector2D{X: 20, Y: 0}, 1)

	c := &DistanceConstraint{A: a, B: b, RestLength: 10, Stiffness: 0.5}
	c.Solve()

	// half the correction of the stiffness-1 case
	if math.Abs(a.Position.X-2.5) > 1e-12 {
		t.Errorf("A.Position.X = %v, expected 2.5", a.Position.X)
	}
	if math.Abs(b.Position.X-17.5) > 1e-12 {
		t.Errorf("B.Position.X = %v, expected 17.5", b.Position.X)
	}
}

func TestDistanceConstraint_RepeatedIterationsApproachRest(t *testing.T) {
	a := NewParticle(physics.Vector2D{X: 0, Y: 0}, 1)
	b := NewParticle(physics.Vector2D{X: 20, Y: 0}, 1)

	// each iteration halves the violation, so the residual after n
	// iterations is 10 * 0.5^n: ~9.5e-6 at n=20, ~9.3e-9 at n=30
	c := &DistanceConstraint{A: a, B: b, RestLength: 10, Stiffness: 0.5}
	for i := 0; i < 30; i++ {
		c.Solve()
	}

	if sep := a.Position.Distance(b.Position); math.Abs(sep-10) > 1e-6 {
		t.Errorf("separation after 30 iterations = %v, expected ~10", sep)
	}
}

func TestDistanceConstraint_DegenerateGeometrySkipped(t *testing.T) {
	a := NewParticle(physics.Vector2D{X: 7, Y: 7}, 1)
	b := NewParticle(physics.Vector2D{X: 7, Y: 7}, 1)

	c := &DistanceConstraint{A: a, B: b, RestLength: 10, Stiffness: 1}
	c.Solve()

	if a.Position.X != 7 || a.Position.Y != 7 || b.Position.X != 7 || b.Position.Y != 7 {
		t.Errorf("coincident particles moved: A=%v B=%v", a.Position, b.Position)
	}
}

func TestDistanceConstraint_BothPinnedSkipped(t *testing.T) {
	a := NewParticle(physics.Vector2D{X: 0, Y: 0}, 1)
	b := NewParticle(physics.Vector2D{X: 20, Y: 0}, 1)
	a.Pin()
	b.Pin()

	c := &DistanceConstraint{A: a, B: b, RestLength: 10, Stiffness: 1}
	c.Solve()

	if a.Position.X != 0 || b.Position.X != 20 {
		t.Errorf("fully pinned pair moved: A=%v B=%v", a.Position, b.Position)
	}
}

func TestDistanceConstraint_OnePinnedEndpointTakesFullCorrection(t *testing.T) {
	a := NewParticle(physics.Vector2D{X: 0, Y: 0}, 1)
	b := NewParticle(physics.Vector2D{X: 20, Y: 0}, 1)
	a.Pin()

	c := &DistanceConstraint{A: a, B: b, RestLength: 10, Stiffness: 1}
	c.Solve()

	if a.Position.X != 0 {
		t.Errorf("pinned endpoint moved to %v", a.Position)
	}
	if math.Abs(b.Position.X-10) > 1e-12 {
		t.Errorf("B.Position.X = %v, expected 10", b.Position.X)
	}
}

func TestDistanceConstraint_Endpoints(t *testing.T) {
	a := NewParticle(physics.Vector2D{}, 1)
	b := NewParticle(physics.Vector2D{X: 1}, 1)

	var c Constraint = NewDistanceConstraint(a, b, 1)
	if c.ParticleA() != a || c.ParticleB() != b {
		t.Error("endpoint accessors returned wrong particles")
	}
}
