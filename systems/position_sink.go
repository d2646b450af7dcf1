package systems

import (
	"github.com/rs/zerolog"

	"ebiten-circles/components"
	"ebiten-circles/ecs"
)

// PositionSink receives one record per Position-bearing entity per tick
type PositionSink interface {
	Record(tick uint64, entity ecs.Entity, pos components.Position)
}

// PositionSinkFunc adapts a function to PositionSink
type PositionSinkFunc func(tick uint64, entity ecs.Entity, pos components.Position)

// Record implements PositionSink
func (f PositionSinkFunc) Record(tick uint64, entity ecs.Entity, pos components.Position) {
	f(tick, entity, pos)
}

// LogSink writes each record as an info event
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a sink on top of logger
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Record implements PositionSink
func (s *LogSink) Record(tick uint64, entity ecs.Entity, pos components.Position) {
	s.logger.Info().
		Uint64("tick", tick).
		Uint64("entity", uint64(entity)).
		Float64("x", pos.X).
		Float64("y", pos.Y).
		Msgf("Hello, %v", pos)
}

// MultiSink fans every record out to each sink in order
func MultiSink(sinks ...PositionSink) PositionSink {
	return PositionSinkFunc(func(tick uint64, entity ecs.Entity, pos components.Position) {
		for _, s := range sinks {
			s.Record(tick, entity, pos)
		}
	})
}
