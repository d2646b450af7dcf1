// Package render defines the drawing contract between the simulation and
// whatever presents frames.
package render

// Backend receives one frame of draw calls: Clear, any number of circles,
// then Present. Errors are returned unchanged to the caller of the frame.
type Backend interface {
	Clear() error
	DrawFilledCircle(x, y, radius, stroke float32) error
	Present() error
}
