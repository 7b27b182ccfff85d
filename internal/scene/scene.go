// internal/scene/scene.go
package scene

import "github.com/google/uuid"

// Scene is one fully materialized member of a hypercube: the room, the shared
// performer start, and this scene's object roster.
type Scene struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Room          Room              `json:"room"`
	Performer     PerformerStart    `json:"performer"`
	Objects       []*ObjectInstance `json:"objects"`
	FloorMaterial string            `json:"floorMaterial"`
	WallMaterial  string            `json:"wallMaterial"`
}

// NewScene creates an empty scene for the given room and performer.
func NewScene(name string, room Room, performer PerformerStart) *Scene {
	return &Scene{
		ID:        uuid.NewString(),
		Name:      name,
		Room:      room,
		Performer: performer,
	}
}

// AddObject appends an instance to the scene roster.
func (s *Scene) AddObject(o *ObjectInstance) {
	s.Objects = append(s.Objects, o)
}

// ObjectByID returns the instance with the given ID, or nil.
func (s *Scene) ObjectByID(id string) *ObjectInstance {
	for _, o := range s.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Hypercube is a family of linked scenes sharing shapes, colors and room
// layout while differing along controlled placement axes.
type Hypercube struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Seed   int64    `json:"seed"`
	Scenes []*Scene `json:"scenes"`
}

// NewHypercube creates an empty hypercube.
func NewHypercube(name string, seed int64) *Hypercube {
	return &Hypercube{
		ID:   uuid.NewString(),
		Name: name,
		Seed: seed,
	}
}
