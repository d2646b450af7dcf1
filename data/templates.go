package data

import (
	"embed"
	"os"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

//go:embed scenes/default.json
var sceneFS embed.FS

// Vec2 is a pair of coordinates in a scene file
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EntityTemplate describes one entity to seed into a world
type EntityTemplate struct {
	ID       string `json:"id"`                 // Unique identifier within the scene
	Position *Vec2  `json:"position,omitempty"` // No Position component when nil
	Velocity *Vec2  `json:"velocity,omitempty"` // No Velocity component when nil
}

// Scene is the list of entities a world starts with
type Scene struct {
	Name     string           `json:"name"`
	Entities []EntityTemplate `json:"entities"`
}

// DefaultScene returns the built-in two entity scene
func DefaultScene() (*Scene, error) {
	raw, err := sceneFS.ReadFile("scenes/default.json")
	if err != nil {
		return nil, eris.Wrap(err, "failed to read embedded scene")
	}
	return ParseScene(raw)
}

// LoadScene reads a scene from a JSON file
func LoadScene(path string) (*Scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read scene %s", path)
	}
	scene, err := ParseScene(raw)
	if err != nil {
		return nil, eris.Wrapf(err, "scene %s", path)
	}
	return scene, nil
}

// ParseScene decodes and validates a scene
func ParseScene(raw []byte) (*Scene, error) {
	var scene Scene
	if err := json.Unmarshal(raw, &scene); err != nil {
		return nil, eris.Wrap(err, "failed to decode scene")
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// Validate checks that the scene has entities and that their ids are unique
func (s *Scene) Validate() error {
	if len(s.Entities) == 0 {
		return eris.Errorf("scene %q has no entities", s.Name)
	}
	seen := make(map[string]bool, len(s.Entities))
	for i, tmpl := range s.Entities {
		if tmpl.ID == "" {
			return eris.Errorf("entity at index %d has no id", i)
		}
		if seen[tmpl.ID] {
			return eris.Errorf("duplicate entity id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
	return nil
}
