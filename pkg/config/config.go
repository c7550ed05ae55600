// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-softbody/pkg/physics"
)

// SimulationConfig contains the tunable surface of the soft-body engine and
// its host loop. It is set once at startup and treated as read-only after.
type SimulationConfig struct {
	Gravity                physics.Vector2D `json:"gravity"`
	SolverIterations       int              `json:"solverIterations"`
	Drag                   float64          `json:"drag"`
	BounceFactor           float64          `json:"bounceFactor"`
	SleepVelocityThreshold float64          `json:"sleepVelocityThreshold"`
	SleepTimeLimit         float64          `json:"sleepTimeLimit"`
	ViewportWidth          float64          `json:"viewportWidth"`
	ViewportHeight         float64          `json:"viewportHeight"`
	BoundaryPadding        float64          `json:"boundaryPadding"`
	StructuralStiffness    float64          `json:"structuralStiffness"`
	BendingStiffness       float64          `json:"bendingStiffness"`
	TickRate               int              `json:"tickRate"`
}

// DefaultConfig returns a configuration tuned for a 1280x720 viewport at
// 60 ticks per second.
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		Gravity:                physics.Vector2D{X: 0, Y: 900},
		SolverIterations:       8,
		Drag:                   0.01,
		BounceFactor:           0.3,
		SleepVelocityThreshold: 4.0,
		SleepTimeLimit:         2.0,
		ViewportWidth:          1280,
		ViewportHeight:         720,
		BoundaryPadding:        16,
		StructuralStiffness:    0.9,
		BendingStiffness:       0.1,
		TickRate:               60,
	}
}

// WorldBounds derives the engine's world bounds from the viewport
// dimensions minus the boundary padding.
func (c *SimulationConfig) WorldBounds() physics.Bounds {
	return physics.BoundsFromViewport(c.ViewportWidth, c.ViewportHeight, c.BoundaryPadding)
}

// TimeStep returns the fixed step duration in seconds for the host loop.
func (c *SimulationConfig) TimeStep() float64 {
	return 1.0 / float64(c.TickRate)
}

// Validate checks the configuration for values the solver cannot run with.
// Out-of-range stiffness is deliberately not rejected here: it produces
// unstable but well-defined behavior, documented rather than enforced.
func (c *SimulationConfig) Validate() error {
	if c.SolverIterations < 1 {
		return fmt.Errorf("solverIterations must be at least 1, got %d", c.SolverIterations)
	}
	if c.TickRate < 1 {
		return fmt.Errorf("tickRate must be at least 1, got %d", c.TickRate)
	}
	if c.Drag < 0 || c.Drag >= 1 {
		return fmt.Errorf("drag must be in [0, 1), got %g", c.Drag)
	}
	if c.BounceFactor < 0 || c.BounceFactor > 1 {
		return fmt.Errorf("bounceFactor must be in [0, 1], got %g", c.BounceFactor)
	}
	if c.SleepVelocityThreshold < 0 {
		return fmt.Errorf("sleepVelocityThreshold must be non-negative, got %g", c.SleepVelocityThreshold)
	}
	if c.SleepTimeLimit < 0 {
		return fmt.Errorf("sleepTimeLimit must be non-negative, got %g", c.SleepTimeLimit)
	}
	if c.ViewportWidth <= 2*c.BoundaryPadding || c.ViewportHeight <= 2*c.BoundaryPadding {
		return fmt.Errorf("viewport %gx%g is too small for padding %g",
			c.ViewportWidth, c.ViewportHeight, c.BoundaryPadding)
	}
	return nil
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// SaveConfig writes a configuration to a file
func SaveConfig(config *SimulationConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
