package components

import "fmt"

// Position stores an entity's location in screen units
type Position struct {
	X, Y float64
}

// String renders the position the way the position log prints it
func (p Position) String() string {
	return fmt.Sprintf("Position { x: %g, y: %g }", p.X, p.Y)
}

// Add returns p moved by v scaled by dt
func (p Position) Add(v Velocity, dt float64) Position {
	return Position{X: p.X + v.X*dt, Y: p.Y + v.Y*dt}
}

// Velocity stores an entity's displacement per time unit
type Velocity struct {
	X, Y float64
}

// String implements fmt.Stringer
func (v Velocity) String() string {
	return fmt.Sprintf("Velocity { x: %g, y: %g }", v.X, v.Y)
}
