// internal/geom/point.go
package geom

import "math"

// Point is a location in the room's horizontal plane. The scene coordinate
// system is Y-up, so the floor plane is spanned by X and Z.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, z float64) Point {
	return Point{X: x, Z: z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Z - q.Z}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Z*q.Z
}

// Cross returns the 2D cross product (the Y component of the 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Z - p.Z*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Z)
}

// Distance returns the planar Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Z-q.Z)
}

// Distance3D returns the Euclidean distance between two points with an
// explicit vertical difference.
func Distance3D(ax, ay, az, bx, by, bz float64) float64 {
	dx := ax - bx
	dy := ay - by
	dz := az - bz
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
