// internal/geom/sightline.go
package geom

import (
	sf "github.com/peterstace/simplefeatures/geom"
)

// Obstruction classifies how much of a target an observer can still see past
// a blocker.
type Obstruction int

const (
	// ObstructionNone means every sampled sightline reaches the target.
	ObstructionNone Obstruction = iota
	// ObstructionPartial means at least one sightline is blocked.
	ObstructionPartial
	// ObstructionFull means every sightline is blocked.
	ObstructionFull
)

func (o Obstruction) String() string {
	switch o {
	case ObstructionPartial:
		return "partial"
	case ObstructionFull:
		return "full"
	default:
		return "none"
	}
}

// SightlineObstruction tests straight lines from the observer to a fixed set
// of sample points on the target (its 4 corners, centroid, and 4 edge
// midpoints) against the blocker's footprint polygon. The sampled point set
// is part of the scene-validity contract and must not be replaced by an
// exact outline intersection.
func SightlineObstruction(observer Point, blocker Rect, target Rect) Obstruction {
	poly, err := blocker.asPolygon()
	if err != nil {
		// A degenerate blocker footprint blocks nothing.
		return ObstructionNone
	}

	samples := make([]Point, 0, 9)
	samples = append(samples, target[:]...)
	samples = append(samples, target.Center())
	mids := target.EdgeMidpoints()
	samples = append(samples, mids[:]...)

	blocked := 0
	for _, s := range samples {
		if lineIntersects(observer, s, poly) {
			blocked++
		}
	}
	switch blocked {
	case 0:
		return ObstructionNone
	case len(samples):
		return ObstructionFull
	default:
		return ObstructionPartial
	}
}

// asPolygon converts the rectangle to a simplefeatures polygon (closed ring).
func (r Rect) asPolygon() (sf.Geometry, error) {
	coords := make([]float64, 0, 10)
	for _, c := range r {
		coords = append(coords, c.X, c.Z)
	}
	coords = append(coords, r[0].X, r[0].Z)
	ring, err := sf.NewLineString(sf.NewSequence(coords, sf.DimXY))
	if err != nil {
		return sf.Geometry{}, err
	}
	poly, err := sf.NewPolygon([]sf.LineString{ring})
	if err != nil {
		return sf.Geometry{}, err
	}
	return poly.AsGeometry(), nil
}

// lineIntersects reports whether the segment from a to b crosses the polygon.
func lineIntersects(a, b Point, poly sf.Geometry) bool {
	seq := sf.NewSequence([]float64{a.X, a.Z, b.X, b.Z}, sf.DimXY)
	line, err := sf.NewLineString(seq)
	if err != nil {
		// Zero-length sightline: the observer stands on the sample point.
		return false
	}
	return sf.Intersects(line.AsGeometry(), poly)
}
