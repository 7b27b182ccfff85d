// internal/scene/definition.go
package scene

// EnclosedArea is an interior sub-volume of a receptacle capable of holding
// other objects. Position is relative to the receptacle's own origin.
type EnclosedArea struct {
	ID         string  `json:"id"`
	Position   Vector3 `json:"position"`
	Dimensions Vector3 `json:"dimensions"`
}

// SizeChoice is one unresolved size option of a definition. Finalize picks
// one and bakes it into the concrete definition.
type SizeChoice struct {
	Dimensions    Vector3        `json:"dimensions"`
	Mass          float64        `json:"mass"`
	Scale         Vector3        `json:"scale"`
	Offset        Vector3        `json:"offset"`
	PositionY     float64        `json:"positionY"`
	EnclosedAreas []EnclosedArea `json:"enclosedAreas,omitempty"`
}

// ObjectDefinition is an immutable object template drawn from the catalog.
// A definition fresh out of the catalog may still carry choice-points
// (ChooseSizes, MaterialCategories); the catalog's Finalize step resolves
// them into one concrete definition before placement.
type ObjectDefinition struct {
	Type      string  `json:"type"`
	Untrained bool    `json:"untrained"`
	Dimensions Vector3 `json:"dimensions"`
	// Offset corrects for shapes whose geometric center is not their bounds
	// center.
	Offset    Vector3 `json:"offset"`
	PositionY float64 `json:"positionY"`
	Scale     Vector3 `json:"scale"`
	Mass      float64 `json:"mass"`

	Moveable   bool `json:"moveable"`
	Pickupable bool `json:"pickupable"`
	Receptacle bool `json:"receptacle"`
	Openable   bool `json:"openable"`
	Occluder   bool `json:"occluder"`
	Obstacle   bool `json:"obstacle"`
	Stackable  bool `json:"stackable"`

	EnclosedAreas []EnclosedArea `json:"enclosedAreas,omitempty"`

	// Unresolved choice-points.
	ChooseSizes        []SizeChoice `json:"-"`
	MaterialCategories []string     `json:"-"`

	// Resolved material.
	MaterialID string   `json:"materialId,omitempty"`
	Colors     []string `json:"colors,omitempty"`
}

// HalfX returns half the X extent after scale.
func (d *ObjectDefinition) HalfX() float64 {
	return d.Dimensions.X / 2
}

// HalfZ returns half the Z extent after scale.
func (d *ObjectDefinition) HalfZ() float64 {
	return d.Dimensions.Z / 2
}

// Finalized reports whether all choice-points have been resolved.
func (d *ObjectDefinition) Finalized() bool {
	return len(d.ChooseSizes) == 0 && len(d.MaterialCategories) == 0
}

// Clone returns a deep copy of the definition.
func (d *ObjectDefinition) Clone() *ObjectDefinition {
	out := *d
	out.EnclosedAreas = append([]EnclosedArea(nil), d.EnclosedAreas...)
	out.ChooseSizes = append([]SizeChoice(nil), d.ChooseSizes...)
	out.MaterialCategories = append([]string(nil), d.MaterialCategories...)
	out.Colors = append([]string(nil), d.Colors...)
	return &out
}
