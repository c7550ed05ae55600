// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnvironmentOverrides.
const (
	EnvGravityX               = "SOFTBODY_GRAVITY_X"
	EnvGravityY               = "SOFTBODY_GRAVITY_Y"
	EnvSolverIterations       = "SOFTBODY_SOLVER_ITERATIONS"
	EnvDrag                   = "SOFTBODY_DRAG"
	EnvBounceFactor           = "SOFTBODY_BOUNCE_FACTOR"
	EnvSleepVelocityThreshold = "SOFTBODY_SLEEP_VELOCITY_THRESHOLD"
	EnvSleepTimeLimit         = "SOFTBODY_SLEEP_TIME_LIMIT"
	EnvViewportWidth          = "SOFTBODY_VIEWPORT_WIDTH"
	EnvViewportHeight         = "SOFTBODY_VIEWPORT_HEIGHT"
	EnvBoundaryPadding        = "SOFTBODY_BOUNDARY_PADDING"
	EnvTickRate               = "SOFTBODY_TICK_RATE"
)

// ApplyEnvironmentOverrides overlays SOFTBODY_* environment variables onto
// an existing configuration. Unset variables leave the value untouched;
// malformed values are reported, not silently ignored.
func ApplyEnvironmentOverrides(config *SimulationConfig) error {
	if err := overrideFloat(EnvGravityX, &config.Gravity.X); err != nil {
		return err
	}
	if err := overrideFloat(EnvGravityY, &config.Gravity.Y); err != nil {
		return err
	}
	if err := overrideInt(EnvSolverIterations, &config.SolverIterations); err != nil {
		return err
	}
	if err := overrideFloat(EnvDrag, &config.Drag); err != nil {
		return err
	}
	if err := overrideFloat(EnvBounceFactor, &config.BounceFactor); err != nil {
		return err
	}
	if err := overrideFloat(EnvSleepVelocityThreshold, &config.SleepVelocityThreshold); err != nil {
		return err
	}
	if err := overrideFloat(EnvSleepTimeLimit, &config.SleepTimeLimit); err != nil {
		return err
	}
	if err := overrideFloat(EnvViewportWidth, &config.ViewportWidth); err != nil {
		return err
	}
	if err := overrideFloat(EnvViewportHeight, &config.ViewportHeight); err != nil {
		return err
	}
	if err := overrideFloat(EnvBoundaryPadding, &config.BoundaryPadding); err != nil {
		return err
	}
	if err := overrideInt(EnvTickRate, &config.TickRate); err != nil {
		return err
	}

	return config.Validate()
}

// overrideFloat parses an environment variable into a float64 target if set.
func overrideFloat(key string, target *float64) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q: %w", key, raw, err)
	}
	*target = value
	return nil
}

// overrideInt parses an environment variable into an int target if set.
func overrideInt(key string, target *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %q: %w", key, raw, err)
	}
	*target = value
	return nil
}
