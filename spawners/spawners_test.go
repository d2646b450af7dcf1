package spawners_test

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"

	"ebiten-circles/components"
	"ebiten-circles/config"
	"ebiten-circles/data"
	"ebiten-circles/ecs"
	"ebiten-circles/spawners"
	"ebiten-circles/systems"
)

func TestBuildWorldDefaultScene(t *testing.T) {
	scene, err := data.DefaultScene()
	assert.NilError(t, err)

	world, spawned, err := spawners.BuildWorld(scene, zerolog.Nop())
	assert.NilError(t, err)
	assert.Equal(t, world.Len(), 2)

	still, drifter := spawned["still"], spawned["drifter"]
	pos, ok := ecs.Get[components.Position](world, still)
	assert.Assert(t, ok)
	assert.Equal(t, pos, components.Position{X: 4, Y: 7})
	_, ok = ecs.Get[components.Velocity](world, still)
	assert.Assert(t, !ok)

	vel, ok := ecs.Get[components.Velocity](world, drifter)
	assert.Assert(t, ok)
	assert.Equal(t, vel, components.Velocity{X: 5, Y: 0.1})
}

func TestBuildSchedulerOrder(t *testing.T) {
	scene, err := data.DefaultScene()
	assert.NilError(t, err)
	world, _, err := spawners.BuildWorld(scene, zerolog.Nop())
	assert.NilError(t, err)

	scheduler, err := spawners.BuildScheduler(world, config.Default(), systems.NewMessageLog(10), zerolog.Nop())
	assert.NilError(t, err)
	assert.DeepEqual(t, scheduler.Systems(), []string{
		systems.PositionLogSystemName,
		systems.IntegrationSystemName,
	})
}

func TestBuildSchedulerUnregisteredWorld(t *testing.T) {
	_, err := spawners.BuildScheduler(ecs.NewWorld(), config.Default(), systems.NewMessageLog(10), zerolog.Nop())
	assert.Assert(t, eris.Is(err, ecs.ErrConfiguration))
}

func TestSpawnerWrapsTemplateID(t *testing.T) {
	w := ecs.NewWorld()
	_, err := spawners.NewEntitySpawner(w, zerolog.Nop()).Spawn(data.EntityTemplate{
		ID:       "orphan",
		Position: &data.Vec2{},
	})
	assert.Assert(t, eris.Is(err, ecs.ErrConfiguration))
	assert.ErrorContains(t, err, `"orphan"`)
}
