package components_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"ebiten-circles/components"
	"ebiten-circles/ecs"
)

func TestRegister(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w)
	components.Register(w)

	assert.Equal(t, len(w.Components()), 2)
	assert.Assert(t, w.IsRegistered(ecs.TypeOf[components.Position]()))
	assert.Assert(t, w.IsRegistered(ecs.TypeOf[components.Velocity]()))
}

func TestPositionAdd(t *testing.T) {
	p := components.Position{X: 0, Y: 380}.Add(components.Velocity{X: 5, Y: 0.1}, 0.05)
	assert.Assert(t, p.X > 0.2499 && p.X < 0.2501)
	assert.Assert(t, p.Y > 380.0049 && p.Y < 380.0051)
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, components.Position{X: 4, Y: 7}.String(), "Position { x: 4, y: 7 }")
}
