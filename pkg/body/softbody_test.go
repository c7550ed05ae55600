// pkg/body/softbody_test.go
package body

import (
	"testing"

	"github.com/opd-ai/go-softbody/pkg/physics"
)

func linePoints(count int, spacing float64) []physics.Vector2D {
	points := make([]physics.Vector2D, count)
	for i := range points {
		points[i] = physics.Vector2D{X: float64(i) * spacing}
	}
	return points
}

func TestNewSoftBody_ParticlesAtOriginPlusOffset(t *testing.T) {
	origin := physics.Vector2D{X: 100, Y: 200}
	sb := NewSoftBody("b", linePoints(3, 10), origin, false, nil, 0.9, 0)

	if len(sb.Particles) != 3 {
		t.Fatalf("particle count = %d, expected 3", len(sb.Particles))
	}
	for i, p := range sb.Particles {
		expected := origin.Add(physics.Vector2D{X: float64(i) * 10})
		if p.Position != expected {
			t.Errorf("particle %d at %v, expected %v", i, p.Position, expected)
		}
		if p.BodyID != "b" {
			t.Errorf("particle %d BodyID = %q, expected %q", i, p.BodyID, "b")
		}
	}
}

func TestNewSoftBody_StructuralConstraintCounts(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		loop     bool
		expected int
	}{
		{
			name:     "open_chain_has_n_minus_1",
			count:    5,
			loop:     false,
			expected: 4,
		},
		{
			name:     "loop_has_n_including_closure",
			count:    5,
			loop:     true,
			expected: 5,
		},
		{
			name:     "two_particle_loop_closes",
			count:    2,
			loop:     true,
			expected: 2,
		},
		{
			name:     "single_particle_has_none",
			count:    1,
			loop:     false,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewSoftBody("b", linePoints(tt.count, 10), physics.Vector2D{}, tt.loop, nil, 0.9, 0)
			if len(sb.Constraints) != tt.expected {
				t.Errorf("constraint count = %d, expected %d", len(sb.Constraints), tt.expected)
			}
		})
	}
}

func TestNewSoftBody_LoopClosureConnectsLastToFirst(t *testing.T) {
	sb := NewSoftBody("b", linePoints(4, 10), physics.Vector2D{}, true, nil, 0.9, 0)

	closing := sb.Constraints[3]
	if closing.ParticleA() != sb.Particles[3] || closing.ParticleB() != sb.Particles[0] {
		t.Error("closing constraint does not connect last particle to first")
	}
}

func TestNewSoftBody_BendingConstraints(t *testing.T) {
	tests := []struct {
		name            string
		count           int
		loop            bool
		bending         float64
		expectedBending int
	}{
		{
			name:            "open_chain_stops_two_short",
			count:           5,
			loop:            false,
			bending:         0.1,
			expectedBending: 3,
		},
		{
			name:            "loop_wraps_modulo_count",
			count:           5,
			loop:            true,
			bending:         0.1,
			expectedBending: 5,
		},
		{
			name:            "zero_bending_stiffness_adds_none",
			count:           5,
			loop:            false,
			bending:         0,
			expectedBending: 0,
		},
		{
			name:            "too_few_particles_adds_none",
			count:           2,
			loop:            false,
			bending:         0.1,
			expectedBending: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewSoftBody("b", linePoints(tt.count, 10), physics.Vector2D{}, tt.loop, nil, 0.9, tt.bending)

			structural := tt.count - 1
			if tt.loop && tt.count >= 2 {
				structural = tt.count
			}
			bending := len(sb.Constraints) - structural
			if bending != tt.expectedBending {
				t.Errorf("bending constraint count = %d, expected %d", bending, tt.expectedBending)
			}
		})
	}
}

func TestNewSoftBody_BendingSkipsDegeneratePairs(t *testing.T) {
	// second neighbors coincide, so every bending pair is degenerate
	points := []physics.Vector2D{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 0, Y: 0},
	}
	sb := NewSoftBody("b", points, physics.Vector2D{}, false, nil, 0.9, 0.1)

	if len(sb.Constraints) != 2 {
		t.Errorf("constraint count = %d, expected 2 structural only", len(sb.Constraints))
	}
}

func TestNewSoftBody_PinnedIndices(t *testing.T) {
	sb := NewSoftBody("b", linePoints(4, 10), physics.Vector2D{}, false, []int{0, 3}, 0.9, 0)

	for i, p := range sb.Particles {
		expectPinned := i == 0 || i == 3
		if p.Static != expectPinned {
			t.Errorf("particle %d static = %v, expected %v", i, p.Static, expectPinned)
		}
	}
}

func TestNewSoftBody_StartsAtRest(t *testing.T) {
	sb := NewSoftBody("b", linePoints(4, 10), physics.Vector2D{}, false, nil, 1, 0)

	before := make([]physics.Vector2D, len(sb.Particles))
	for i, p := range sb.Particles {
		before[i] = p.Position
	}

	// rest lengths equal initial distances, so solving changes nothing
	for _, c := range sb.Constraints {
		c.Solve()
	}

	for i, p := range sb.Particles {
		if p.Position != before[i] {
			t.Errorf("particle %d moved from %v to %v while at rest", i, before[i], p.Position)
		}
	}
}
