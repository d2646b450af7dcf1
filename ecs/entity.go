package ecs

import "strconv"

// Entity is an opaque handle for a simulated object
type Entity uint64

// InvalidEntity is never allocated by a World
const InvalidEntity Entity = 0

// String implements fmt.Stringer
func (e Entity) String() string {
	return "entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}

// entityAllocator hands out ids from a per-world counter. Ids are never
// recycled, so a destroyed entity cannot come back alive under a new owner.
type entityAllocator struct {
	last Entity
}

func (a *entityAllocator) allocate() Entity {
	a.last++
	return a.last
}
