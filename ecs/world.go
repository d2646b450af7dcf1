package ecs

import (
	"iter"
	"maps"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World owns every component storage and the set of alive entities
type World struct {
	allocator entityAllocator
	alive     map[Entity]struct{}
	storages  map[ComponentType]storage
	// registration order, indexed by ComponentID
	registered   []storage
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		alive:        make(map[Entity]struct{}),
		storages:     make(map[ComponentType]storage),
		eventManager: NewEventManager(),
	}
}

// Register makes T usable as a component in w. Registering the same type
// again returns the id assigned the first time.
func Register[T any](w *World) ComponentID {
	ct := TypeOf[T]()
	if s, ok := w.storages[ct]; ok {
		return s.componentID()
	}
	s := newStorage[T](ComponentID(len(w.registered)))
	w.storages[ct] = s
	w.registered = append(w.registered, s)
	return s.id
}

// StorageOf returns the storage for T. It fails with ErrConfiguration when T
// was never registered.
func StorageOf[T any](w *World) (*Storage[T], error) {
	s, err := w.lookup(TypeOf[T]())
	if err != nil {
		return nil, err
	}
	return s.(*Storage[T]), nil
}

// Add attaches v to e, replacing any previous T
func Add[T any](w *World, e Entity, v T) error {
	s, err := StorageOf[T](w)
	if err != nil {
		return err
	}
	if !w.IsAlive(e) {
		return eris.Wrapf(ErrEntityNotAlive, "cannot add %s to %s", TypeOf[T]().Name(), e)
	}
	s.Set(e, v)
	return nil
}

// Get returns e's T if both the type is registered and e has one
func Get[T any](w *World, e Entity) (T, bool) {
	s, err := StorageOf[T](w)
	if err != nil {
		var zero T
		return zero, false
	}
	return s.Get(e)
}

// Remove detaches T from e. It is a no-op when e has no T.
func Remove[T any](w *World, e Entity) {
	if s, err := StorageOf[T](w); err == nil {
		s.Remove(e)
	}
}

// IsRegistered reports whether ct has a storage in w
func (w *World) IsRegistered(ct ComponentType) bool {
	_, ok := w.storages[ct]
	return ok
}

func (w *World) lookup(ct ComponentType) (storage, error) {
	s, ok := w.storages[ct]
	if !ok {
		return nil, unregistered(ct)
	}
	return s, nil
}

func (w *World) spawn() Entity {
	e := w.allocator.allocate()
	w.alive[e] = struct{}{}
	return e
}

// DestroyEntity removes an entity and all its components from the world.
// Destroying an entity that is not alive does nothing.
func (w *World) DestroyEntity(e Entity) {
	if _, ok := w.alive[e]; !ok {
		return
	}
	for _, s := range w.registered {
		s.Remove(e)
	}
	delete(w.alive, e)
	w.eventManager.Emit(EntityDestroyedEvent{Entity: e})
}

// IsAlive reports whether e was built and not yet destroyed
func (w *World) IsAlive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// Len returns the number of alive entities
func (w *World) Len() int {
	return len(w.alive)
}

// Entities yields the entities alive at call time in ascending id order
func (w *World) Entities() iter.Seq[Entity] {
	return slices.Values(slices.Sorted(maps.Keys(w.alive)))
}

// Components describes every registered component type in registration order
func (w *World) Components() []ComponentInfo {
	infos := make([]ComponentInfo, 0, len(w.registered))
	for _, s := range w.registered {
		infos = append(infos, ComponentInfo{
			ID:   s.componentID(),
			Name: s.componentType().Name(),
			Len:  s.Len(),
		})
	}
	return infos
}

// Events returns the world's event manager
func (w *World) Events() *EventManager {
	return w.eventManager
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (w *World) MarshalZerologObject(e *zerolog.Event) {
	arr := zerolog.Arr()
	for _, info := range w.Components() {
		arr.Dict(zerolog.Dict().
			Uint("component_id", uint(info.ID)).
			Str("component_name", info.Name).
			Int("len", info.Len))
	}
	e.Int("total_entities", w.Len()).
		Int("total_components", len(w.registered)).
		Array("components", arr)
}
