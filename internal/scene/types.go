// internal/scene/types.go
package scene

import "github.com/scenekit/scenegen/internal/geom"

// Vector3 is a 3D coordinate in scene space (Y up).
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PerformerHalfWidth is half the performer's footprint edge. Room bounds are
// inset by this margin so the performer can always fully enter and exit.
const PerformerHalfWidth = 0.27

// DefaultRoomDimension is the edge length of the square default room.
const DefaultRoomDimension = 10.0

// ValidRotations are the eight compass headings the performer and placed
// objects may face.
var ValidRotations = []int{0, 45, 90, 135, 180, 225, 270, 315}

// Room is the rectangular floor area available for placement. Immutable for
// the duration of a generation run.
type Room struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinZ float64 `json:"minZ"`
	MaxZ float64 `json:"maxZ"`
}

// NewRoom builds a room of the given outer dimensions with the performer
// margin applied on every side.
func NewRoom(dimX, dimZ float64) Room {
	return Room{
		MinX: -dimX/2 + PerformerHalfWidth,
		MaxX: dimX/2 - PerformerHalfWidth,
		MinZ: -dimZ/2 + PerformerHalfWidth,
		MaxZ: dimZ/2 - PerformerHalfWidth,
	}
}

// DefaultRoom returns the standard square room.
func DefaultRoom() Room {
	return NewRoom(DefaultRoomDimension, DefaultRoomDimension)
}

// Contains reports whether the point lies within the room bounds.
func (r Room) Contains(p geom.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Z >= r.MinZ && p.Z <= r.MaxZ
}

// ContainsRect reports whether every corner of the rectangle lies within the
// room bounds.
func (r Room) ContainsRect(rect geom.Rect) bool {
	for _, c := range rect {
		if !r.Contains(c) {
			return false
		}
	}
	return true
}

// PerformerStart is the performer's initial pose for every scene of a
// hypercube. It may be discarded and redrawn during an attempt when no valid
// front/back anchor locations exist for it.
type PerformerStart struct {
	Position Vector3 `json:"position"`
	Rotation int     `json:"rotation"`
}

// Footprint returns the performer's oriented bounding rectangle.
func (p PerformerStart) Footprint() geom.Rect {
	return geom.RectangleCorners(
		p.Position.X, p.Position.Z,
		PerformerHalfWidth, PerformerHalfWidth,
		0, 0,
		float64(p.Rotation),
	)
}

// Point returns the performer's plan-view position.
func (p PerformerStart) Point() geom.Point {
	return geom.Pt(p.Position.X, p.Position.Z)
}
