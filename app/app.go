// Package app wires the world, the schedule and the renderer into the
// per-frame loop that a window or a headless driver calls into.
package app

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-circles/config"
	"ebiten-circles/data"
	"ebiten-circles/ecs"
	"ebiten-circles/logging"
	"ebiten-circles/render"
	"ebiten-circles/spawners"
	"ebiten-circles/systems"
)

// messageLogSize is how many position messages are kept for the overlay
const messageLogSize = 32

type settings struct {
	sink systems.PositionSink
}

// Option customizes New
type Option func(*settings)

// WithSink sends position records to sink instead of the logger
func WithSink(sink systems.PositionSink) Option {
	return func(s *settings) {
		s.sink = sink
	}
}

// App owns the simulation state for the lifetime of the process. One frame
// is one scheduler tick followed by one draw.
type App struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	Renderer  *systems.RenderSystem
	Messages  *systems.MessageLog
	// Entities maps scene template ids to the entities they produced
	Entities map[string]ecs.Entity

	logger zerolog.Logger
}

// New builds the world from scene and the reference schedule from cfg
func New(cfg config.Config, scene *data.Scene, logger zerolog.Logger, opts ...Option) (*App, error) {
	st := settings{
		sink: systems.NewLogSink(logging.ForSystem(logger, systems.PositionLogSystemName)),
	}
	for _, opt := range opts {
		opt(&st)
	}

	world, entities, err := spawners.BuildWorld(scene, logger)
	if err != nil {
		return nil, eris.Wrap(err, "failed to build world")
	}

	messages := systems.NewMessageLog(messageLogSize)
	scheduler, err := spawners.BuildScheduler(world, cfg, systems.MultiSink(st.sink, messages), logger)
	if err != nil {
		return nil, eris.Wrap(err, "failed to build scheduler")
	}

	renderer, err := systems.NewRenderSystem(world, float32(cfg.CircleRadius), float32(cfg.CircleStroke))
	if err != nil {
		return nil, eris.Wrap(err, "failed to build renderer")
	}

	return &App{
		World:     world,
		Scheduler: scheduler,
		Renderer:  renderer,
		Messages:  messages,
		Entities:  entities,
		logger:    logger,
	}, nil
}

// Update advances the simulation by one tick
func (a *App) Update() {
	a.Scheduler.Tick()
}

// Draw renders the current state to backend
func (a *App) Draw(backend render.Backend) error {
	return a.Renderer.Draw(backend)
}

// Frame runs one tick and one draw
func (a *App) Frame(backend render.Backend) error {
	a.Update()
	return a.Draw(backend)
}

// Run drives n frames against backend, stopping at the first draw error
func (a *App) Run(n int, backend render.Backend) error {
	for i := 0; i < n; i++ {
		if err := a.Frame(backend); err != nil {
			return err
		}
	}
	a.logger.Debug().
		Int("frames", n).
		Uint64("tick", a.Scheduler.CurrentTick()).
		Msg("run finished")
	return nil
}

// Snapshot captures the world after the last completed tick
func (a *App) Snapshot() data.WorldSnapshot {
	return data.Snapshot(a.World, a.Scheduler.CurrentTick())
}
