package ecs_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"

	"ebiten-circles/ecs"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type tag struct{}

func newWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	ecs.Register[position](w)
	ecs.Register[velocity](w)
	return w
}

func TestRegisterIsIdempotent(t *testing.T) {
	w := ecs.NewWorld()
	first := ecs.Register[position](w)
	second := ecs.Register[velocity](w)
	again := ecs.Register[position](w)

	assert.Equal(t, first, again)
	assert.Assert(t, first != second)
	assert.Equal(t, len(w.Components()), 2)
}

func TestBuildWritesComponents(t *testing.T) {
	w := newWorld(t)

	a, err := w.CreateEntity().With(position{X: 4, Y: 7}).Build()
	assert.NilError(t, err)
	b, err := w.CreateEntity().
		With(position{X: 0, Y: 380}).
		With(velocity{X: 5, Y: 0.1}).
		Build()
	assert.NilError(t, err)

	assert.Assert(t, a != b)
	assert.Assert(t, a != ecs.InvalidEntity)

	pos, ok := ecs.Get[position](w, a)
	assert.Assert(t, ok)
	assert.Equal(t, pos, position{X: 4, Y: 7})

	_, ok = ecs.Get[velocity](w, a)
	assert.Assert(t, !ok)

	vel, ok := ecs.Get[velocity](w, b)
	assert.Assert(t, ok)
	assert.Equal(t, vel, velocity{X: 5, Y: 0.1})
}

func TestBuildLaterComponentReplacesEarlier(t *testing.T) {
	w := newWorld(t)
	e := w.CreateEntity().With(position{X: 1}).With(position{X: 2}).MustBuild()

	pos, _ := ecs.Get[position](w, e)
	assert.Equal(t, pos.X, 2.0)
}

func TestEntityCreatedEventListsEachTypeOnce(t *testing.T) {
	w := newWorld(t)
	var got []string
	w.Events().Subscribe(ecs.EntityCreated, func(ev ecs.Event) {
		got = ev.(ecs.EntityCreatedEvent).Components
	})

	e := w.CreateEntity().
		With(position{X: 1}).
		With(velocity{X: 3}).
		With(position{X: 2}).
		MustBuild()

	assert.DeepEqual(t, got, []string{"ecs_test.position", "ecs_test.velocity"})
	pos, _ := ecs.Get[position](w, e)
	assert.Equal(t, pos.X, 2.0)
}

func TestBuildUnregisteredComponent(t *testing.T) {
	w := newWorld(t)

	e, err := w.CreateEntity().With(position{}).With(tag{}).Build()
	assert.Assert(t, eris.Is(err, ecs.ErrConfiguration))
	assert.Equal(t, e, ecs.InvalidEntity)
	assert.Equal(t, w.Len(), 0)

	s, err := ecs.StorageOf[position](w)
	assert.NilError(t, err)
	assert.Equal(t, s.Len(), 0)
}

func TestBuilderIsSingleUse(t *testing.T) {
	w := newWorld(t)
	b := w.CreateEntity().With(position{})
	_, err := b.Build()
	assert.NilError(t, err)
	_, err = b.Build()
	assert.ErrorContains(t, err, "already built")
	assert.Equal(t, w.Len(), 1)
}

func TestStorageOfUnregistered(t *testing.T) {
	w := newWorld(t)
	_, err := ecs.StorageOf[tag](w)
	assert.Assert(t, eris.Is(err, ecs.ErrConfiguration))
	assert.ErrorContains(t, err, "ecs_test.tag")
}

func TestDestroyEntityIsIdempotent(t *testing.T) {
	w := newWorld(t)
	keep := w.CreateEntity().With(position{X: 1}).MustBuild()
	gone := w.CreateEntity().With(position{X: 2}).With(velocity{X: 3}).MustBuild()

	destroyed := 0
	w.Events().Subscribe(ecs.EntityDestroyed, func(ecs.Event) { destroyed++ })

	w.DestroyEntity(gone)
	positions, _ := ecs.StorageOf[position](w)
	velocities, _ := ecs.StorageOf[velocity](w)
	afterOnce := []int{w.Len(), positions.Len(), velocities.Len()}

	w.DestroyEntity(gone)
	afterTwice := []int{w.Len(), positions.Len(), velocities.Len()}

	assert.DeepEqual(t, afterOnce, afterTwice)
	assert.DeepEqual(t, afterOnce, []int{1, 1, 0})
	assert.Equal(t, destroyed, 1)
	assert.Assert(t, w.IsAlive(keep))
	assert.Assert(t, !w.IsAlive(gone))
}

func TestIdsAreNotReused(t *testing.T) {
	w := newWorld(t)
	first := w.CreateEntity().MustBuild()
	w.DestroyEntity(first)
	second := w.CreateEntity().MustBuild()
	assert.Assert(t, first != second)
}

func TestEntitiesAscending(t *testing.T) {
	w := newWorld(t)
	var built []ecs.Entity
	for range 5 {
		built = append(built, w.CreateEntity().MustBuild())
	}
	w.DestroyEntity(built[2])

	got := slices.Collect(w.Entities())
	assert.DeepEqual(t, got, []ecs.Entity{built[0], built[1], built[3], built[4]})
}

func TestAddAndRemove(t *testing.T) {
	w := newWorld(t)
	e := w.CreateEntity().MustBuild()

	assert.NilError(t, ecs.Add(w, e, velocity{X: 1}))
	_, ok := ecs.Get[velocity](w, e)
	assert.Assert(t, ok)

	ecs.Remove[velocity](w, e)
	ecs.Remove[velocity](w, e)
	_, ok = ecs.Get[velocity](w, e)
	assert.Assert(t, !ok)

	w.DestroyEntity(e)
	err := ecs.Add(w, e, velocity{})
	assert.Assert(t, eris.Is(err, ecs.ErrEntityNotAlive))

	err = ecs.Add(w, e, tag{})
	assert.Assert(t, eris.Is(err, ecs.ErrConfiguration))
}

func TestEntityCreatedEvent(t *testing.T) {
	w := newWorld(t)
	var got []ecs.EntityCreatedEvent
	id := w.Events().Subscribe(ecs.EntityCreated, func(ev ecs.Event) {
		got = append(got, ev.(ecs.EntityCreatedEvent))
	})

	e := w.CreateEntity().With(position{}).With(velocity{}).MustBuild()
	w.Events().Unsubscribe(id)
	w.CreateEntity().MustBuild()

	assert.Equal(t, len(got), 1)
	assert.Equal(t, got[0].Entity, e)
	assert.DeepEqual(t, got[0].Components, []string{"ecs_test.position", "ecs_test.velocity"})
}

func TestWorldLogObject(t *testing.T) {
	w := newWorld(t)
	w.CreateEntity().With(position{}).MustBuild()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Info().EmbedObject(w).Msg("world")

	assert.Assert(t, bytes.Contains(buf.Bytes(), []byte(`"total_entities":1`)))
	assert.Assert(t, bytes.Contains(buf.Bytes(), []byte(`"component_name":"ecs_test.position"`)))
}
