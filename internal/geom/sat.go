// internal/geom/sat.go
package geom

// satEpsilon guards the strict-overlap tie break: configurations that touch
// along an edge or at a corner project onto a zero-length interval overlap
// and must not count as intersecting.
const satEpsilon = 1e-9

// Intersects reports whether the two rectangles overlap with positive area,
// using a separating-axis test over both rectangles' edge normals.
// Touching-only configurations return false.
func (r Rect) Intersects(other Rect) bool {
	return !hasSeparatingAxis(r, other) && !hasSeparatingAxis(other, r)
}

// hasSeparatingAxis checks the edge normals of a for an axis on which the
// projections of a and b do not overlap with positive measure.
func hasSeparatingAxis(a, b Rect) bool {
	for i := 0; i < 4; i++ {
		edge := a[(i+1)%4].Sub(a[i])
		// Perpendicular to the edge; length is irrelevant for interval tests.
		axis := Point{X: -edge.Z, Z: edge.X}
		minA, maxA := project(a, axis)
		minB, maxB := project(b, axis)
		if maxA-minB <= satEpsilon || maxB-minA <= satEpsilon {
			return true
		}
	}
	return false
}

// project returns the min and max scalar projections of the corners onto axis.
func project(r Rect, axis Point) (float64, float64) {
	min := r[0].Dot(axis)
	max := min
	for _, c := range r[1:] {
		d := c.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
