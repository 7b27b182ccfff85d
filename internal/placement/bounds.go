// internal/placement/bounds.go
package placement

import "github.com/scenekit/scenegen/internal/geom"

// Bounds is the append-only registry of every validated footprint for the
// current hypercube attempt: the performer plus each placed object. It is
// cleared only at the start of a whole-attempt retry.
type Bounds struct {
	rects []geom.Rect
}

// NewBounds returns an empty registry.
func NewBounds() *Bounds {
	return &Bounds{}
}

// Reset drops every registered rectangle.
func (b *Bounds) Reset() {
	b.rects = b.rects[:0]
}

// Append registers a validated rectangle.
func (b *Bounds) Append(r geom.Rect) {
	b.rects = append(b.rects, r)
}

// Len returns the number of registered rectangles.
func (b *Bounds) Len() int {
	return len(b.rects)
}

// Collides reports whether the rectangle overlaps any registered rectangle.
// Exempt rectangles (a contained child's own parent container) are skipped.
func (b *Bounds) Collides(r geom.Rect, exempt ...geom.Rect) bool {
	for _, placed := range b.rects {
		if isExempt(placed, exempt) {
			continue
		}
		if placed.Intersects(r) {
			return true
		}
	}
	return false
}

func isExempt(r geom.Rect, exempt []geom.Rect) bool {
	for _, e := range exempt {
		if r == e {
			return true
		}
	}
	return false
}
