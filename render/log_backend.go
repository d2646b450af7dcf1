package render

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// LogBackend is a headless Backend that records draw calls to a logger
type LogBackend struct {
	logger  zerolog.Logger
	open    bool
	frames  int
	circles int
}

// NewLogBackend returns a LogBackend writing trace events to logger
func NewLogBackend(logger zerolog.Logger) *LogBackend {
	return &LogBackend{logger: logger.With().Str("backend", "log").Logger()}
}

// Clear starts a frame
func (b *LogBackend) Clear() error {
	if b.open {
		return eris.New("clear called twice without present")
	}
	b.open = true
	b.logger.Trace().Int("frame", b.frames).Msg("clear")
	return nil
}

// DrawFilledCircle logs one circle
func (b *LogBackend) DrawFilledCircle(x, y, radius, stroke float32) error {
	if !b.open {
		return eris.New("draw called outside of a frame")
	}
	b.circles++
	b.logger.Trace().
		Int("frame", b.frames).
		Float32("x", x).
		Float32("y", y).
		Float32("radius", radius).
		Float32("stroke", stroke).
		Msg("circle")
	return nil
}

// Present ends the frame
func (b *LogBackend) Present() error {
	if !b.open {
		return eris.New("present called without clear")
	}
	b.open = false
	b.logger.Trace().Int("frame", b.frames).Msg("present")
	b.frames++
	return nil
}

// Frames returns the number of presented frames
func (b *LogBackend) Frames() int {
	return b.frames
}

// Circles returns the number of circles drawn across all frames
func (b *LogBackend) Circles() int {
	return b.circles
}
