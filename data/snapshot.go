package data

import (
	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"

	"ebiten-circles/components"
	"ebiten-circles/ecs"
)

// EntitySnapshot is the serializable state of one alive entity
type EntitySnapshot struct {
	Entity   uint64 `json:"entity"`
	Position *Vec2  `json:"position,omitempty"`
	Velocity *Vec2  `json:"velocity,omitempty"`
}

// WorldSnapshot is the serializable state of a world after a given tick
type WorldSnapshot struct {
	Tick     uint64           `json:"tick"`
	Entities []EntitySnapshot `json:"entities"`
}

// Snapshot captures every alive entity in ascending id order
func Snapshot(world *ecs.World, tick uint64) WorldSnapshot {
	snap := WorldSnapshot{Tick: tick, Entities: []EntitySnapshot{}}
	for entity := range world.Entities() {
		es := EntitySnapshot{Entity: uint64(entity)}
		if pos, ok := ecs.Get[components.Position](world, entity); ok {
			es.Position = &Vec2{X: pos.X, Y: pos.Y}
		}
		if vel, ok := ecs.Get[components.Velocity](world, entity); ok {
			es.Velocity = &Vec2{X: vel.X, Y: vel.Y}
		}
		snap.Entities = append(snap.Entities, es)
	}
	return snap
}

// MarshalIndent encodes the snapshot for output
func (s WorldSnapshot) MarshalIndent() ([]byte, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, eris.Wrap(err, "failed to encode snapshot")
	}
	return raw, nil
}
