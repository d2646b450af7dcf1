package spawners

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-circles/components"
	"ebiten-circles/config"
	"ebiten-circles/data"
	"ebiten-circles/ecs"
	"ebiten-circles/systems"
)

// EntitySpawner manages the creation of entities from scene templates
type EntitySpawner struct {
	world  *ecs.World
	logger zerolog.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, logger zerolog.Logger) *EntitySpawner {
	return &EntitySpawner{
		world:  world,
		logger: logger,
	}
}

// Spawn creates one entity from a template
func (s *EntitySpawner) Spawn(tmpl data.EntityTemplate) (ecs.Entity, error) {
	builder := s.world.CreateEntity()
	if tmpl.Position != nil {
		builder.With(components.Position{X: tmpl.Position.X, Y: tmpl.Position.Y})
	}
	if tmpl.Velocity != nil {
		builder.With(components.Velocity{X: tmpl.Velocity.X, Y: tmpl.Velocity.Y})
	}
	entity, err := builder.Build()
	if err != nil {
		return ecs.InvalidEntity, eris.Wrapf(err, "failed to spawn %q", tmpl.ID)
	}
	s.logger.Debug().
		Str("template", tmpl.ID).
		Uint64("entity", uint64(entity)).
		Msg("entity spawned")
	return entity, nil
}

// SpawnScene creates every entity of scene in order and returns them by template id
func (s *EntitySpawner) SpawnScene(scene *data.Scene) (map[string]ecs.Entity, error) {
	spawned := make(map[string]ecs.Entity, len(scene.Entities))
	for _, tmpl := range scene.Entities {
		entity, err := s.Spawn(tmpl)
		if err != nil {
			return nil, err
		}
		spawned[tmpl.ID] = entity
	}
	return spawned, nil
}

// BuildWorld creates a world with every component registered and the
// scene's entities seeded. The returned map goes from template id to entity.
func BuildWorld(scene *data.Scene, logger zerolog.Logger) (*ecs.World, map[string]ecs.Entity, error) {
	world := ecs.NewWorld()
	components.Register(world)

	world.Events().Subscribe(ecs.EntityCreated, func(ev ecs.Event) {
		created := ev.(ecs.EntityCreatedEvent)
		logger.Trace().
			Uint64("entity", uint64(created.Entity)).
			Strs("components", created.Components).
			Msg("entity created")
	})
	world.Events().Subscribe(ecs.EntityDestroyed, func(ev ecs.Event) {
		logger.Trace().
			Uint64("entity", uint64(ev.(ecs.EntityDestroyedEvent).Entity)).
			Msg("entity destroyed")
	})

	spawned, err := NewEntitySpawner(world, logger).SpawnScene(scene)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug().EmbedObject(world).Str("scene", scene.Name).Msg("world built")
	return world, spawned, nil
}

// BuildScheduler creates the reference schedule: position logging, then
// integration with the configured time step.
func BuildScheduler(world *ecs.World, cfg config.Config, sink systems.PositionSink, logger zerolog.Logger) (*ecs.Scheduler, error) {
	scheduler, err := ecs.NewScheduler(world,
		systems.NewPositionLogSystem(sink),
		systems.NewIntegrationSystem(cfg.TimeStep),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug().EmbedObject(scheduler).Msg("scheduler built")
	return scheduler, nil
}
