package systems

import (
	"ebiten-circles/components"
	"ebiten-circles/ecs"
)

// IntegrationSystemName is the scheduler name of IntegrationSystem
const IntegrationSystemName = "integration"

// IntegrationSystem advances positions by velocity with a fixed step
type IntegrationSystem struct {
	// DT is the simulated time per tick; it does not follow wall time
	DT float64
}

// NewIntegrationSystem creates an integrator stepping dt per tick
func NewIntegrationSystem(dt float64) *IntegrationSystem {
	return &IntegrationSystem{DT: dt}
}

// Name implements ecs.System
func (s *IntegrationSystem) Name() string {
	return IntegrationSystemName
}

// Access implements ecs.System
func (s *IntegrationSystem) Access() ecs.Access {
	return ecs.Access{
		Reads:  []ecs.ComponentType{ecs.TypeOf[components.Velocity]()},
		Writes: []ecs.ComponentType{ecs.TypeOf[components.Position]()},
	}
}

// Run moves every entity that has both a Velocity and a Position
func (s *IntegrationSystem) Run(ctx *ecs.Context) {
	velocities := ecs.Read[components.Velocity](ctx)
	positions := ecs.Write[components.Position](ctx)
	for entity := range ecs.Join2(velocities, ecs.Reader[components.Position](positions)) {
		vel, _ := velocities.Get(entity)
		pos := positions.Mut(entity)
		*pos = pos.Add(vel, s.DT)
	}
}
