package systems

import (
	"ebiten-circles/components"
	"ebiten-circles/ecs"
	"ebiten-circles/render"
)

// RenderSystem draws a filled circle at every entity position. It only
// reads Position and never runs inside the scheduler.
type RenderSystem struct {
	world     *ecs.World
	positions ecs.Reader[components.Position]
	Radius    float32
	Stroke    float32
}

// NewRenderSystem creates a rendering system over world. It fails when
// Position is not registered.
func NewRenderSystem(world *ecs.World, radius, stroke float32) (*RenderSystem, error) {
	positions, err := ecs.StorageOf[components.Position](world)
	if err != nil {
		return nil, err
	}
	return &RenderSystem{
		world:     world,
		positions: positions,
		Radius:    radius,
		Stroke:    stroke,
	}, nil
}

// Draw clears the frame, draws every alive entity with a Position in id
// order and presents. The first backend error aborts the frame.
func (s *RenderSystem) Draw(backend render.Backend) error {
	if err := backend.Clear(); err != nil {
		return err
	}
	for entity := range s.world.Entities() {
		pos, ok := s.positions.Get(entity)
		if !ok {
			continue
		}
		if err := backend.DrawFilledCircle(float32(pos.X), float32(pos.Y), s.Radius, s.Stroke); err != nil {
			return err
		}
	}
	return backend.Present()
}
