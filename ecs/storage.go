package ecs

import "iter"

// Reader is the read-only view of a Storage handed to systems that only
// declared read access to T.
type Reader[T any] interface {
	Get(e Entity) (T, bool)
	Has(e Entity) bool
	Len() int
	All() iter.Seq2[Entity, T]
}

// storage is the type-erased side of Storage used by the World
type storage interface {
	componentID() ComponentID
	componentType() ComponentType
	setAny(e Entity, v any)
	Remove(e Entity)
	Has(e Entity) bool
	Len() int
}

// Storage is a sparse set mapping entities to values of one component type.
// Values live in a dense slice; the index map points each entity at its slot.
type Storage[T any] struct {
	id       ComponentID
	entities []Entity
	values   []T
	index    map[Entity]int
}

// NewStorage creates an empty storage that is not attached to a World
func NewStorage[T any]() *Storage[T] {
	return newStorage[T](0)
}

func newStorage[T any](id ComponentID) *Storage[T] {
	return &Storage[T]{
		id:    id,
		index: make(map[Entity]int),
	}
}

// Set inserts or replaces the value for e
func (s *Storage[T]) Set(e Entity, v T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = v
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, v)
}

// Get returns the value for e if present
func (s *Storage[T]) Get(e Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Mut returns a pointer to the stored value for e, or nil. The pointer is
// valid until the next Set or Remove on this storage.
func (s *Storage[T]) Mut(e Entity) *T {
	if i, ok := s.index[e]; ok {
		return &s.values[i]
	}
	return nil
}

// Has reports whether e has a value in this storage
func (s *Storage[T]) Has(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Len returns the number of entries
func (s *Storage[T]) Len() int {
	return len(s.entities)
}

// Remove deletes the value for e. It is a no-op when e has none.
func (s *Storage[T]) Remove(e Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.values[i] = s.values[last]
		s.index[moved] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// All yields every entry present when iteration starts. Order is not part
// of the contract. Removing entries while iterating is not supported.
func (s *Storage[T]) All() iter.Seq2[Entity, T] {
	return func(yield func(Entity, T) bool) {
		for i := 0; i < len(s.entities); i++ {
			if !yield(s.entities[i], s.values[i]) {
				return
			}
		}
	}
}

// AllMut is All with pointers into the storage, for systems holding write access
func (s *Storage[T]) AllMut() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := 0; i < len(s.entities); i++ {
			if !yield(s.entities[i], &s.values[i]) {
				return
			}
		}
	}
}

func (s *Storage[T]) componentID() ComponentID {
	return s.id
}

func (s *Storage[T]) componentType() ComponentType {
	return TypeOf[T]()
}

func (s *Storage[T]) setAny(e Entity, v any) {
	s.Set(e, v.(T))
}
