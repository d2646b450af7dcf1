package ecs

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type scheduled struct {
	system   System
	ctx      *Context
	readOnly []ComponentType
	writes   []ComponentType
}

// Scheduler runs an ordered list of systems once per tick
type Scheduler struct {
	world   *World
	entries []scheduled
	borrows map[ComponentType]int
	tick    uint64
}

// NewScheduler resolves every system's declared access against w. Any
// unregistered component type, nil system or repeated system name fails
// here with ErrConfiguration, before a single tick runs.
func NewScheduler(w *World, systems ...System) (*Scheduler, error) {
	s := &Scheduler{
		world:   w,
		entries: make([]scheduled, 0, len(systems)),
		borrows: make(map[ComponentType]int),
	}
	seen := make(map[string]bool, len(systems))
	for i, sys := range systems {
		if sys == nil {
			return nil, eris.Wrapf(ErrConfiguration, "system at index %d is nil", i)
		}
		name := sys.Name()
		if seen[name] {
			return nil, eris.Wrapf(ErrConfiguration, "duplicate system %q", name)
		}
		seen[name] = true

		access := sys.Access()
		entry := scheduled{
			system:   sys,
			readOnly: access.readOnly(),
			writes:   access.writes(),
			ctx: &Context{
				system: name,
				reads:  make(map[ComponentType]storage),
				writes: make(map[ComponentType]storage),
			},
		}
		for _, ct := range entry.readOnly {
			st, err := w.lookup(ct)
			if err != nil {
				return nil, eris.Wrapf(err, "system %q", name)
			}
			entry.ctx.reads[ct] = st
		}
		for _, ct := range entry.writes {
			st, err := w.lookup(ct)
			if err != nil {
				return nil, eris.Wrapf(err, "system %q", name)
			}
			entry.ctx.writes[ct] = st
		}
		s.entries = append(s.entries, entry)
	}
	return s, nil
}

// Tick runs every system exactly once, in the order given to NewScheduler.
// Each system completes before the next one starts.
func (s *Scheduler) Tick() {
	for i := range s.entries {
		s.run(&s.entries[i])
	}
	s.tick++
}

func (s *Scheduler) run(entry *scheduled) {
	s.acquire(entry)
	defer s.release(entry)
	entry.ctx.tick = s.tick
	entry.system.Run(entry.ctx)
}

// acquire takes shared borrows on read-only storages and exclusive borrows on
// written ones. A borrow count of -1 marks an exclusive holder.
func (s *Scheduler) acquire(entry *scheduled) {
	for _, ct := range entry.readOnly {
		if s.borrows[ct] < 0 {
			panic(eris.Wrapf(ErrBorrowConflict, "system %q reads %s while it is written", entry.ctx.system, ct.Name()))
		}
	}
	for _, ct := range entry.writes {
		if s.borrows[ct] != 0 {
			panic(eris.Wrapf(ErrBorrowConflict, "system %q writes %s while it is borrowed", entry.ctx.system, ct.Name()))
		}
	}
	for _, ct := range entry.readOnly {
		s.borrows[ct]++
	}
	for _, ct := range entry.writes {
		s.borrows[ct] = -1
	}
}

func (s *Scheduler) release(entry *scheduled) {
	for _, ct := range entry.readOnly {
		s.borrows[ct]--
	}
	for _, ct := range entry.writes {
		s.borrows[ct] = 0
	}
}

// CurrentTick returns the number of completed ticks
func (s *Scheduler) CurrentTick() uint64 {
	return s.tick
}

// Systems returns the system names in run order
func (s *Scheduler) Systems() []string {
	names := make([]string, 0, len(s.entries))
	for _, entry := range s.entries {
		names = append(names, entry.ctx.system)
	}
	return names
}

// World returns the world the scheduler was built against
func (s *Scheduler) World() *World {
	return s.world
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (s *Scheduler) MarshalZerologObject(e *zerolog.Event) {
	arr := zerolog.Arr()
	for _, entry := range s.entries {
		reads := zerolog.Arr()
		for _, ct := range entry.readOnly {
			reads.Str(ct.Name())
		}
		writes := zerolog.Arr()
		for _, ct := range entry.writes {
			writes.Str(ct.Name())
		}
		arr.Dict(zerolog.Dict().
			Str("name", entry.ctx.system).
			Array("reads", reads).
			Array("writes", writes))
	}
	e.Int("total_systems", len(s.entries)).
		Uint64("tick", s.tick).
		Array("systems", arr)
}
