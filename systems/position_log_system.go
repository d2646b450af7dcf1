package systems

import (
	"ebiten-circles/components"
	"ebiten-circles/ecs"
)

// PositionLogSystemName is the scheduler name of PositionLogSystem
const PositionLogSystemName = "position_log"

// PositionLogSystem reports every entity position once per tick
type PositionLogSystem struct {
	sink PositionSink
}

// NewPositionLogSystem creates a system that writes to sink
func NewPositionLogSystem(sink PositionSink) *PositionLogSystem {
	return &PositionLogSystem{sink: sink}
}

// Name implements ecs.System
func (s *PositionLogSystem) Name() string {
	return PositionLogSystemName
}

// Access implements ecs.System
func (s *PositionLogSystem) Access() ecs.Access {
	return ecs.Access{
		Reads: []ecs.ComponentType{ecs.TypeOf[components.Position]()},
	}
}

// Run implements ecs.System
func (s *PositionLogSystem) Run(ctx *ecs.Context) {
	for entity, pos := range ecs.Read[components.Position](ctx).All() {
		s.sink.Record(ctx.Tick(), entity, pos)
	}
}
