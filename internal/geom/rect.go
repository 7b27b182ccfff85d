// internal/geom/rect.go
package geom

import "math"

// Rect is the oriented bounding rectangle of an object in the floor plane,
// stored as 4 corners in order (front-right, front-left, back-left,
// back-right when unrotated).
type Rect [4]Point

// RectangleCorners computes the corners of a rectangle of the given half
// extents centered on (cx, cz), shifted by the definition's center offset and
// rotated about the center by the given compass angle in degrees.
func RectangleCorners(cx, cz, halfX, halfZ, offsetX, offsetZ, rotationDeg float64) Rect {
	// Compass degrees increase clockwise; the trig convention is CCW.
	rad := -rotationDeg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	local := [4]Point{
		{offsetX + halfX, offsetZ + halfZ},
		{offsetX - halfX, offsetZ + halfZ},
		{offsetX - halfX, offsetZ - halfZ},
		{offsetX + halfX, offsetZ - halfZ},
	}
	var out Rect
	for i, p := range local {
		out[i] = Point{
			X: cx + p.X*cos - p.Z*sin,
			Z: cz + p.X*sin + p.Z*cos,
		}
	}
	return out
}

// Center returns the average of the four corners.
func (r Rect) Center() Point {
	var sum Point
	for _, c := range r {
		sum = sum.Add(c)
	}
	return sum.Scale(0.25)
}

// HalfDiagonal returns the distance from the rectangle center to a corner.
func (r Rect) HalfDiagonal() float64 {
	return r.Center().Distance(r[0])
}

// EdgeMidpoints returns the midpoints of the four edges.
func (r Rect) EdgeMidpoints() [4]Point {
	var mids [4]Point
	for i := 0; i < 4; i++ {
		a := r[i]
		b := r[(i+1)%4]
		mids[i] = Point{(a.X + b.X) / 2, (a.Z + b.Z) / 2}
	}
	return mids
}

// Translate returns a copy of the rectangle moved by (dx, dz).
func (r Rect) Translate(dx, dz float64) Rect {
	var out Rect
	for i, c := range r {
		out[i] = Point{c.X + dx, c.Z + dz}
	}
	return out
}
