package config

// Screen layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 800
	WindowHeight = 600

	// Window title used when none is configured
	WindowTitle = "super_simple"

	// Ticks per second driven by the window loop
	TicksPerSecond = 60
)

// Circle drawing defaults
const (
	CircleRadius = 100.0
	CircleStroke = 2.0
)

// TimeStep is the simulated time advanced by one tick, independent of wall time
const TimeStep = 0.05
