// internal/scene/instance.go
package scene

import (
	"github.com/google/uuid"

	"github.com/scenekit/scenegen/internal/geom"
)

// ObjectInstance is a definition materialized into one scene: identity plus a
// concrete pose and the derived oriented bounding rectangle in the floor
// plane.
type ObjectInstance struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Position Vector3 `json:"position"`
	Rotation float64 `json:"rotation"`
	Scale    Vector3 `json:"scale"`

	MaterialID string   `json:"materialId,omitempty"`
	Colors     []string `json:"colors,omitempty"`

	Moveable   bool `json:"moveable"`
	Pickupable bool `json:"pickupable"`
	Receptacle bool `json:"receptacle"`
	Openable   bool `json:"openable"`
	Occluder   bool `json:"occluder"`
	Obstacle   bool `json:"obstacle"`

	// Definition is the finalized template this instance was built from.
	Definition *ObjectDefinition `json:"-"`

	// BoundingRect is recomputed whenever the pose changes.
	BoundingRect geom.Rect `json:"boundingRect"`

	// LocationParent links a contained object to its receptacle.
	LocationParent string `json:"locationParent,omitempty"`
	ParentArea     string `json:"parentArea,omitempty"`

	// Children lists the IDs of objects placed inside this instance.
	Children []string `json:"-"`
}

// NewInstance materializes a finalized definition with a zero pose.
func NewInstance(def *ObjectDefinition) *ObjectInstance {
	inst := &ObjectInstance{
		ID:         uuid.NewString(),
		Type:       def.Type,
		Scale:      def.Scale,
		MaterialID: def.MaterialID,
		Colors:     append([]string(nil), def.Colors...),
		Moveable:   def.Moveable,
		Pickupable: def.Pickupable,
		Receptacle: def.Receptacle,
		Openable:   def.Openable,
		Occluder:   def.Occluder,
		Obstacle:   def.Obstacle,
		Definition: def,
	}
	inst.RefreshBoundingRect()
	return inst
}

// SetPose moves the instance and recomputes its bounding rectangle.
func (o *ObjectInstance) SetPose(pos Vector3, rotation float64) {
	o.Position = pos
	o.Rotation = rotation
	o.RefreshBoundingRect()
}

// RefreshBoundingRect recomputes the oriented bounding rectangle from the
// current pose and the definition's extents and center offset.
func (o *ObjectInstance) RefreshBoundingRect() {
	d := o.Definition
	o.BoundingRect = geom.RectangleCorners(
		o.Position.X, o.Position.Z,
		d.HalfX(), d.HalfZ(),
		d.Offset.X, d.Offset.Z,
		o.Rotation,
	)
}

// Clone returns a deep copy of the instance with the same identity. Scenes of
// one hypercube share definitions but each materializes its own instances.
func (o *ObjectInstance) Clone() *ObjectInstance {
	out := *o
	out.Colors = append([]string(nil), o.Colors...)
	out.Children = append([]string(nil), o.Children...)
	return &out
}
