// cmd/softbody/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-softbody/pkg/config"
	"github.com/opd-ai/go-softbody/pkg/engine"
	"github.com/opd-ai/go-softbody/pkg/event"
	"github.com/opd-ai/go-softbody/pkg/logging"
	"github.com/opd-ai/go-softbody/pkg/physics"
	"github.com/opd-ai/go-softbody/pkg/render"
	engorender "github.com/opd-ai/go-softbody/pkg/render/engo"
	"github.com/opd-ai/go-softbody/pkg/shape"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	shapePath := flag.String("shapes", "", "Path to shape library file (built-in shapes if empty)")
	rendererName := flag.String("renderer", "terminal", "Renderer type: 'terminal', 'engo', or 'null'")
	flag.Parse()

	if *createDefault {
		defaultConfig := config.DefaultConfig()
		if err := config.SaveConfig(defaultConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	simConfig := loadConfig(ctx, logger, *configPath)
	library := loadShapes(ctx, logger, *shapePath)

	sim := engine.NewEngine(simConfig)
	subscribeActivityLogging(ctx, logger, sim)
	spawnBodies(sim, simConfig, library)

	logger.Info(ctx, "Simulation started",
		"bodies", len(sim.GetAllSoftBodies()),
		"particles", len(sim.GetParticles()),
		"tick_rate", simConfig.TickRate,
	)

	switch *rendererName {
	case "engo":
		runEngo(sim, simConfig)
	case "null":
		runLoop(sim, simConfig, render.NewNullRenderer())
	case "terminal":
		fallthrough
	default:
		runLoop(sim, simConfig, render.NewTerminalRenderer(100, 32, simConfig.ViewportWidth/100))
	}
}

// loadConfig loads the configuration file, falling back to defaults when the
// file does not exist, and applies SOFTBODY_* environment overrides.
func loadConfig(ctx context.Context, logger *logging.Logger, path string) *config.SimulationConfig {
	var simConfig *config.SimulationConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(path)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", path,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(simConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	return simConfig
}

// loadShapes loads a shape library file, or the built-in library when no
// path is given.
func loadShapes(ctx context.Context, logger *logging.Logger, path string) shape.Library {
	if path == "" {
		return shape.BuiltinLibrary()
	}

	library, err := shape.LoadLibrary(path)
	if err != nil {
		logger.Error(ctx, "Failed to load shape library", err,
			"shape_path", path,
		)
		os.Exit(1)
	}
	return library
}

// spawnBodies creates one soft body per library shape, spread evenly across
// the upper half of the world so they fall into view.
func spawnBodies(sim *engine.Engine, cfg *config.SimulationConfig, library shape.Library) {
	bounds := sim.Bounds()
	spacing := bounds.Width() / float64(len(library)+1)

	i := 1
	for name, s := range library {
		origin := physics.Vector2D{
			X: bounds.Min.X + spacing*float64(i),
			Y: bounds.Min.Y + bounds.Height()*0.25,
		}
		sim.CreateSoftBody(name, s.Points, origin, s.Loop, s.Pinned,
			cfg.StructuralStiffness, cfg.BendingStiffness)
		i++
	}
}

// subscribeActivityLogging logs sleep and wake transitions so the state
// machine is observable in headless runs.
func subscribeActivityLogging(ctx context.Context, logger *logging.Logger, sim *engine.Engine) {
	sim.EventBus.Subscribe(event.BodySlept, func(e event.Event) {
		if be, ok := e.(*event.BodyEvent); ok {
			logger.Info(ctx, "Body went to sleep", "body_id", be.BodyID)
		}
	})
	sim.EventBus.Subscribe(event.BodyWoken, func(e event.Event) {
		if be, ok := e.(*event.BodyEvent); ok {
			logger.Info(ctx, "Body woken", "body_id", be.BodyID)
		}
	})
	sim.EventBus.Subscribe(event.BodyDisturbed, func(e event.Event) {
		if be, ok := e.(*event.BodyEvent); ok {
			logger.Info(ctx, "Body woken by disturbance", "body_id", be.BodyID)
		}
	})
}

// runLoop drives the engine at a fixed timestep until interrupted,
// disturbing the world periodically so sleeping bodies wake again.
func runLoop(sim *engine.Engine, cfg *config.SimulationConfig, renderer render.Renderer) {
	dt := cfg.TimeStep()
	bounds := sim.Bounds()
	center := physics.Vector2D{
		X: bounds.Min.X + bounds.Width()/2,
		Y: bounds.Min.Y + bounds.Height()/2,
	}

	if tr, ok := renderer.(*render.TerminalRenderer); ok {
		tr.SetCenter(center)
	}

	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	disturb := time.NewTicker(10 * time.Second)
	defer disturb.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			sim.Update(dt)
			drawFrame(sim, renderer)
		case <-disturb.C:
			sim.DisturbArea(center, bounds.Width()/2)
		case <-sigChan:
			return
		}
	}
}

// drawFrame renders constraints first so particle glyphs overwrite them.
func drawFrame(sim *engine.Engine, renderer render.Renderer) {
	renderer.Clear()
	for _, sb := range sim.GetAllSoftBodies() {
		for _, c := range sb.Constraints {
			renderer.RenderConstraint(c)
		}
		for _, p := range sb.Particles {
			renderer.RenderParticle(p)
		}
	}
	renderer.Present()
}

// runEngo opens a window and lets the scene drive the engine per frame.
func runEngo(sim *engine.Engine, cfg *config.SimulationConfig) {
	scene := engorender.NewSimulationScene(sim)

	opts := engo.RunOptions{
		Title:  "Soft Bodies",
		Width:  int(cfg.ViewportWidth),
		Height: int(cfg.ViewportHeight),
		VSync:  true,
	}

	engo.Run(opts, scene)
}
