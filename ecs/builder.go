package ecs

import (
	"slices"

	"github.com/rotisserie/eris"
)

// EntityBuilder accumulates components for an entity that does not exist yet
type EntityBuilder struct {
	world      *World
	components []any
	built      bool
}

// CreateEntity starts building a new entity. Nothing is allocated until Build.
func (w *World) CreateEntity() *EntityBuilder {
	return &EntityBuilder{world: w}
}

// With queues a component value. A later value of the same type replaces
// an earlier one.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	b.components = append(b.components, component)
	return b
}

// Build allocates the entity and writes the queued components. If any
// component type is unregistered nothing is written and no id is used.
func (b *EntityBuilder) Build() (Entity, error) {
	if b.built {
		return InvalidEntity, eris.New("entity builder already built")
	}
	// one slot per component type; a later With overwrites the earlier value
	stores := make([]storage, 0, len(b.components))
	values := make([]any, 0, len(b.components))
	for _, c := range b.components {
		s, err := b.world.lookup(typeOfValue(c))
		if err != nil {
			return InvalidEntity, err
		}
		if i := slices.Index(stores, s); i >= 0 {
			values[i] = c
			continue
		}
		stores = append(stores, s)
		values = append(values, c)
	}
	b.built = true

	e := b.world.spawn()
	names := make([]string, len(stores))
	for i, s := range stores {
		s.setAny(e, values[i])
		names[i] = s.componentType().Name()
	}
	b.world.eventManager.Emit(EntityCreatedEvent{Entity: e, Components: names})
	return e, nil
}

// MustBuild is Build for bootstrap code where a failure is a programming error
func (b *EntityBuilder) MustBuild() Entity {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}
