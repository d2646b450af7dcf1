package ecs

import (
	"slices"

	"github.com/rotisserie/eris"
)

// System defines a unit of per-tick behavior over declared storages
type System interface {
	// Name identifies the system in logs and errors; unique per Scheduler
	Name() string
	// Access declares the component types Run reads and writes
	Access() Access
	// Run is called once per tick with handles to the declared storages
	Run(ctx *Context)
}

// Access is the set of component types a system reads and writes.
// A type listed in both is treated as written.
type Access struct {
	Reads  []ComponentType
	Writes []ComponentType
}

// ConflictsWith reports whether a and b could not hold their storages at the
// same instant: both write a type, or one writes what the other reads.
func (a Access) ConflictsWith(b Access) bool {
	for _, w := range a.Writes {
		if slices.Contains(b.Writes, w) || slices.Contains(b.Reads, w) {
			return true
		}
	}
	for _, w := range b.Writes {
		if slices.Contains(a.Reads, w) {
			return true
		}
	}
	return false
}

// readOnly returns the reads that are not also writes, without duplicates
func (a Access) readOnly() []ComponentType {
	var out []ComponentType
	for _, r := range a.Reads {
		if !slices.Contains(a.Writes, r) && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

func (a Access) writes() []ComponentType {
	var out []ComponentType
	for _, w := range a.Writes {
		if !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}

// Context is the scoped view a system receives during Run
type Context struct {
	system string
	tick   uint64
	reads  map[ComponentType]storage
	writes map[ComponentType]storage
}

// Tick returns the index of the tick being run, starting at zero
func (c *Context) Tick() uint64 {
	return c.tick
}

// System returns the name of the system the context belongs to
func (c *Context) System() string {
	return c.system
}

// Read returns a read-only handle to T. Write access implies read access.
// It panics with ErrUndeclaredAccess when the system declared neither.
func Read[T any](ctx *Context) Reader[T] {
	ct := TypeOf[T]()
	if s, ok := ctx.reads[ct]; ok {
		return s.(*Storage[T])
	}
	if s, ok := ctx.writes[ct]; ok {
		return s.(*Storage[T])
	}
	panic(eris.Wrapf(ErrUndeclaredAccess, "system %q did not declare access to %s", ctx.system, ct.Name()))
}

// Write returns a mutable handle to T. It panics with ErrUndeclaredAccess
// when the system did not declare write access.
func Write[T any](ctx *Context) *Storage[T] {
	ct := TypeOf[T]()
	if s, ok := ctx.writes[ct]; ok {
		return s.(*Storage[T])
	}
	panic(eris.Wrapf(ErrUndeclaredAccess, "system %q did not declare write access to %s", ctx.system, ct.Name()))
}
