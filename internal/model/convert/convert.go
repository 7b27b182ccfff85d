// Package convert maps generator scene structures to GORM models and back.
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/scenekit/scenegen/internal/model"
	"github.com/scenekit/scenegen/internal/scene"
)

func vecToArray(v scene.Vector3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func arrayToVec(a [3]float64) scene.Vector3 {
	return scene.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// ObjectToPayload flattens an instance and its finalized definition into the
// JSON shape stored on a scene row.
func ObjectToPayload(o *scene.ObjectInstance) model.ObjectPayload {
	d := o.Definition
	p := model.ObjectPayload{
		UUID:           o.ID,
		Type:           o.Type,
		Position:       vecToArray(o.Position),
		Rotation:       o.Rotation,
		Scale:          vecToArray(o.Scale),
		MaterialID:     o.MaterialID,
		Colors:         append([]string(nil), o.Colors...),
		Pickupable:     o.Pickupable,
		Moveable:       o.Moveable,
		Receptacle:     o.Receptacle,
		Openable:       o.Openable,
		Occluder:       o.Occluder,
		Obstacle:       o.Obstacle,
		LocationParent: o.LocationParent,
		ParentArea:     o.ParentArea,
		Children:       append([]string(nil), o.Children...),
	}
	if d != nil {
		p.Untrained = d.Untrained
		p.Dimensions = vecToArray(d.Dimensions)
		p.Offset = vecToArray(d.Offset)
		p.Mass = d.Mass
	}
	return p
}

// PayloadToObject rebuilds an instance from its stored JSON shape. The
// reconstructed definition carries only the finalized fields.
func PayloadToObject(p model.ObjectPayload) *scene.ObjectInstance {
	def := &scene.ObjectDefinition{
		Type:       p.Type,
		Untrained:  p.Untrained,
		Dimensions: arrayToVec(p.Dimensions),
		Offset:     arrayToVec(p.Offset),
		Scale:      arrayToVec(p.Scale),
		Mass:       p.Mass,
		MaterialID: p.MaterialID,
		Colors:     append([]string(nil), p.Colors...),
		Pickupable: p.Pickupable,
		Moveable:   p.Moveable,
		Receptacle: p.Receptacle,
		Openable:   p.Openable,
		Occluder:   p.Occluder,
		Obstacle:   p.Obstacle,
	}
	o := &scene.ObjectInstance{
		ID:             p.UUID,
		Type:           p.Type,
		Scale:          arrayToVec(p.Scale),
		MaterialID:     p.MaterialID,
		Colors:         append([]string(nil), p.Colors...),
		Pickupable:     p.Pickupable,
		Moveable:       p.Moveable,
		Receptacle:     p.Receptacle,
		Openable:       p.Openable,
		Occluder:       p.Occluder,
		Obstacle:       p.Obstacle,
		Definition:     def,
		LocationParent: p.LocationParent,
		ParentArea:     p.ParentArea,
		Children:       append([]string(nil), p.Children...),
	}
	o.SetPose(arrayToVec(p.Position), p.Rotation)
	return o
}

// SceneToGorm converts one scene to its row form, marshaling the object
// roster into the JSON column.
func SceneToGorm(s *scene.Scene) (model.Scene, error) {
	payloads := make([]model.ObjectPayload, 0, len(s.Objects))
	for _, o := range s.Objects {
		payloads = append(payloads, ObjectToPayload(o))
	}
	blob, err := json.Marshal(payloads)
	if err != nil {
		return model.Scene{}, fmt.Errorf("marshaling scene objects: %w", err)
	}

	return model.Scene{
		UUID:              s.ID,
		Name:              s.Name,
		RoomMinX:          s.Room.MinX,
		RoomMaxX:          s.Room.MaxX,
		RoomMinZ:          s.Room.MinZ,
		RoomMaxZ:          s.Room.MaxZ,
		PerformerX:        s.Performer.Position.X,
		PerformerZ:        s.Performer.Position.Z,
		PerformerRotation: s.Performer.Rotation,
		FloorMaterial:     s.FloorMaterial,
		WallMaterial:      s.WallMaterial,
		Objects:           blob,
	}, nil
}

// GormToScene is the inverse of SceneToGorm.
func GormToScene(row model.Scene) (*scene.Scene, error) {
	var payloads []model.ObjectPayload
	if len(row.Objects) > 0 {
		if err := json.Unmarshal(row.Objects, &payloads); err != nil {
			return nil, fmt.Errorf("unmarshaling scene objects: %w", err)
		}
	}

	s := &scene.Scene{
		ID:   row.UUID,
		Name: row.Name,
		Room: scene.Room{
			MinX: row.RoomMinX,
			MaxX: row.RoomMaxX,
			MinZ: row.RoomMinZ,
			MaxZ: row.RoomMaxZ,
		},
		Performer: scene.PerformerStart{
			Position: scene.Vector3{X: row.PerformerX, Z: row.PerformerZ},
			Rotation: row.PerformerRotation,
		},
		FloorMaterial: row.FloorMaterial,
		WallMaterial:  row.WallMaterial,
	}
	for _, p := range payloads {
		s.AddObject(PayloadToObject(p))
	}
	return s, nil
}

// HypercubeToGorm converts a generated hypercube, including all scenes, to
// its row form.
func HypercubeToGorm(hc *scene.Hypercube, design string) (model.Hypercube, error) {
	row := model.Hypercube{
		UUID:   hc.ID,
		Name:   hc.Name,
		Design: design,
		Seed:   hc.Seed,
	}
	for _, s := range hc.Scenes {
		sceneRow, err := SceneToGorm(s)
		if err != nil {
			return model.Hypercube{}, err
		}
		row.Scenes = append(row.Scenes, sceneRow)
	}
	return row, nil
}

// GormToHypercube is the inverse of HypercubeToGorm.
func GormToHypercube(row model.Hypercube) (*scene.Hypercube, error) {
	hc := &scene.Hypercube{
		ID:   row.UUID,
		Name: row.Name,
		Seed: row.Seed,
	}
	for _, sceneRow := range row.Scenes {
		s, err := GormToScene(sceneRow)
		if err != nil {
			return nil, err
		}
		hc.Scenes = append(hc.Scenes, s)
	}
	return hc, nil
}
