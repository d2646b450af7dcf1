package components

import (
	"ebiten-circles/ecs"
)

// Register adds every component type of this package to world.
// Calling it more than once is harmless.
func Register(world *ecs.World) {
	ecs.Register[Position](world)
	ecs.Register[Velocity](world)
}
