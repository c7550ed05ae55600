// pkg/engine/simulation.go
package engine

import (
	"context"

	"github.com/opd-ai/go-softbody/pkg/body"
	"github.com/opd-ai/go-softbody/pkg/config"
	"github.com/opd-ai/go-softbody/pkg/event"
	"github.com/opd-ai/go-softbody/pkg/logging"
	"github.com/opd-ai/go-softbody/pkg/physics"
)

// Engine owns all particles and constraints, groups them into soft bodies,
// and advances them with a position-based dynamics pipeline: gravity, Verlet
// integration, iterative constraint relaxation interleaved with boundary
// clamping, then per-body sleep bookkeeping.
//
// The engine is synchronous and frame-stepped. It is not safe for concurrent
// calls; a host that needs multi-threaded access must serialize externally.
type Engine struct {
	Config   *config.SimulationConfig
	EventBus *event.Bus

	bounds physics.Bounds
	logger *logging.Logger

	bodies    map[string]*body.SoftBody
	active    map[string]struct{}
	stillTime map[string]float64

	// Append-only stores. Bodies replaced under an existing id leave their
	// particles and constraints here, so stale entries keep being simulated
	// while their id is active. Callers re-creating bodies get a warning,
	// not a cleanup.
	particles   []*body.Particle
	constraints []body.Constraint

	// Scratch buffers reused every frame to avoid allocation growth.
	activeParticles   []*body.Particle
	activeConstraints []body.Constraint
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg *config.SimulationConfig) *Engine {
	return &Engine{
		Config:    cfg,
		EventBus:  event.NewEventBus(),
		bounds:    cfg.WorldBounds(),
		logger:    logging.NewLogger(),
		bodies:    make(map[string]*body.SoftBody),
		active:    make(map[string]struct{}),
		stillTime: make(map[string]float64),
	}
}

// CreateSoftBody assembles a soft body from point offsets, registers it, and
// marks it active. Re-using an existing id is accepted but flagged: the old
// body's particles and constraints are not released.
func (e *Engine) CreateSoftBody(id string, points []physics.Vector2D, origin physics.Vector2D, loop bool, pinned []int, structuralStiffness, bendingStiffness float64) *body.SoftBody {
	if old, exists := e.bodies[id]; exists {
		e.logger.Warn(context.Background(), "soft body id already registered, replacing without cleanup",
			"body_id", id,
			"stale_particles", len(old.Particles),
			"stale_constraints", len(old.Constraints),
		)
		e.EventBus.Publish(event.NewBodyEvent(event.BodyReplaced, e, id, len(old.Particles)))
	}

	sb := body.NewSoftBody(id, points, origin, loop, pinned, structuralStiffness, bendingStiffness)

	e.bodies[id] = sb
	e.particles = append(e.particles, sb.Particles...)
	e.constraints = append(e.constraints, sb.Constraints...)
	e.active[id] = struct{}{}
	e.stillTime[id] = 0

	e.EventBus.Publish(event.NewBodyEvent(event.BodyCreated, e, id, len(sb.Particles)))

	return sb
}

// Update advances the simulation by dt seconds. Non-positive dt is a no-op
// frame, guarding against host scheduling anomalies.
func (e *Engine) Update(dt float64) {
	if dt <= 0 {
		return
	}

	e.gatherActive()
	e.applyGravity()
	e.integrate(dt)
	e.relax()
	e.updateActivity(dt)
}

// gatherActive rebuilds the scratch slices of particles and constraints
// belonging to currently active bodies. Capacity is reused across frames.
func (e *Engine) gatherActive() {
	e.activeParticles = e.activeParticles[:0]
	for _, p := range e.particles {
		if _, ok := e.active[p.BodyID]; ok {
			e.activeParticles = append(e.activeParticles, p)
		}
	}

	e.activeConstraints = e.activeConstraints[:0]
	for _, c := range e.constraints {
		if _, ok := e.active[c.ParticleA().BodyID]; ok {
			e.activeConstraints = append(e.activeConstraints, c)
		}
	}
}

// applyGravity applies the configured gravity as a uniform acceleration.
func (e *Engine) applyGravity() {
	for _, p := range e.activeParticles {
		if p.Static {
			continue
		}
		p.ApplyForce(e.Config.Gravity.Scale(p.Mass))
	}
}

// integrate advances every active particle by one Verlet step.
func (e *Engine) integrate(dt float64) {
	for _, p := range e.activeParticles {
		p.Integrate(dt, e.Config.Drag)
	}
}

// relax runs the solver iterations. Boundary clamping is interleaved inside
// the loop rather than applied once at the end, so the bounds participate in
// the same relaxation process as the constraints and high-stiffness bodies
// cannot tunnel through them.
func (e *Engine) relax() {
	for i := 0; i < e.Config.SolverIterations; i++ {
		for _, c := range e.activeConstraints {
			c.Solve()
		}
		for _, p := range e.activeParticles {
			e.clampToBounds(p)
		}
	}
}

// clampToBounds resolves boundary contact per axis. The pre-clamp implicit
// velocity is reflected into PrevPosition scaled by the bounce factor, so
// the next frame's implicit velocity comes out reversed and damped.
func (e *Engine) clampToBounds(p *body.Particle) {
	if p.Static {
		return
	}

	bounce := e.Config.BounceFactor
	velocity := p.Position.Sub(p.PrevPosition)

	if p.Position.X < e.bounds.Min.X {
		p.Position.X = e.bounds.Min.X
		p.PrevPosition.X = p.Position.X + velocity.X*bounce
	} else if p.Position.X > e.bounds.Max.X {
		p.Position.X = e.bounds.Max.X
		p.PrevPosition.X = p.Position.X + velocity.X*bounce
	}

	if p.Position.Y < e.bounds.Min.Y {
		p.Position.Y = e.bounds.Min.Y
		p.PrevPosition.Y = p.Position.Y + velocity.Y*bounce
	} else if p.Position.Y > e.bounds.Max.Y {
		p.Position.Y = e.bounds.Max.Y
		p.PrevPosition.Y = p.Position.Y + velocity.Y*bounce
	}
}

// updateActivity accumulates per-body stationary time and demotes bodies
// that have stayed below the sleep velocity threshold for long enough.
func (e *Engine) updateActivity(dt float64) {
	thresholdSq := e.Config.SleepVelocityThreshold * e.Config.SleepVelocityThreshold

	for id, sb := range e.bodies {
		if _, ok := e.active[id]; !ok {
			continue
		}

		maxSpeedSq := 0.0
		for _, p := range sb.Particles {
			if p.Static {
				continue
			}
			speedSq := p.Velocity().LengthSquared() / (dt * dt)
			if speedSq > maxSpeedSq {
				maxSpeedSq = speedSq
			}
		}

		if maxSpeedSq < thresholdSq {
			e.stillTime[id] += dt
			if e.stillTime[id] > e.Config.SleepTimeLimit {
				delete(e.active, id)
				e.EventBus.Publish(event.NewBodyEvent(event.BodySlept, e, id, len(sb.Particles)))
			}
		} else {
			e.stillTime[id] = 0
		}
	}
}

// WakeUpBody moves a sleeping body back to the active set and resets its
// stationary timer. Unknown ids and already-active bodies are no-ops.
func (e *Engine) WakeUpBody(id string) {
	sb, exists := e.bodies[id]
	if !exists {
		return
	}
	if _, ok := e.active[id]; ok {
		return
	}

	e.active[id] = struct{}{}
	e.stillTime[id] = 0
	e.EventBus.Publish(event.NewBodyEvent(event.BodyWoken, e, id, len(sb.Particles)))
}

// DisturbArea wakes every sleeping body with at least one particle inside
// the given circle. No force is applied; this is purely a state transition.
// Already-active bodies are skipped, and the scan short-circuits per body on
// the first particle found in range.
func (e *Engine) DisturbArea(center physics.Vector2D, radius float64) {
	radiusSq := radius * radius

	for id, sb := range e.bodies {
		if _, ok := e.active[id]; ok {
			continue
		}
		for _, p := range sb.Particles {
			if p.Position.DistanceSquared(center) <= radiusSq {
				e.active[id] = struct{}{}
				e.stillTime[id] = 0
				e.EventBus.Publish(event.NewBodyEvent(event.BodyDisturbed, e, id, len(sb.Particles)))
				break
			}
		}
	}
}

// GetAllSoftBodies returns the live body registry. Consumers must treat the
// returned map and everything reachable from it as read-only.
func (e *Engine) GetAllSoftBodies() map[string]*body.SoftBody {
	return e.bodies
}

// GetActiveSoftBodyIDs returns the ids of bodies currently being simulated.
func (e *Engine) GetActiveSoftBodyIDs() []string {
	ids := make([]string, 0, len(e.active))
	for id := range e.active {
		ids = append(ids, id)
	}
	return ids
}

// IsActive reports whether the body with the given id is currently active.
func (e *Engine) IsActive(id string) bool {
	_, ok := e.active[id]
	return ok
}

// GetParticles returns every particle the engine owns, including particles
// of replaced bodies. Read-only for consumers.
func (e *Engine) GetParticles() []*body.Particle {
	return e.particles
}

// Bounds returns the world bounds particles are clamped against.
func (e *Engine) Bounds() physics.Bounds {
	return e.bounds
}
