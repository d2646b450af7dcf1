package data_test

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"ebiten-circles/components"
	"ebiten-circles/data"
	"ebiten-circles/ecs"
)

func TestSnapshot(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w)
	a := w.CreateEntity().With(components.Position{X: 4, Y: 7}).MustBuild()
	gone := w.CreateEntity().With(components.Position{}).MustBuild()
	b := w.CreateEntity().With(components.Velocity{X: 1, Y: 2}).MustBuild()
	w.DestroyEntity(gone)

	snap := data.Snapshot(w, 20)
	assert.DeepEqual(t, snap, data.WorldSnapshot{
		Tick: 20,
		Entities: []data.EntitySnapshot{
			{Entity: uint64(a), Position: &data.Vec2{X: 4, Y: 7}},
			{Entity: uint64(b), Velocity: &data.Vec2{X: 1, Y: 2}},
		},
	})

	raw, err := snap.MarshalIndent()
	assert.NilError(t, err)
	assert.Assert(t, len(raw) > 0)
	assert.Assert(t, !strings.Contains(string(raw), "null"), string(raw))
}

func TestSnapshotEmptyWorld(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w)

	raw, err := data.Snapshot(w, 0).MarshalIndent()
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(string(raw), "null"), string(raw))
}
