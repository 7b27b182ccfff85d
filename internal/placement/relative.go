// internal/placement/relative.go
package placement

import (
	"github.com/scenekit/scenegen/internal/geom"
	"github.com/scenekit/scenegen/internal/scene"
)

// RelativeOptions selects the flavor of an anchored placement.
type RelativeOptions struct {
	// Adjacent walks the two rays perpendicular to the performer-anchor
	// bearing instead of the straight-on ray.
	Adjacent bool

	// Behind walks the ray continuing past the anchor, away from the
	// performer.
	Behind bool

	// Far starts the walk one reach-distance beyond the minimum separation.
	Far bool

	// Unreachable additionally requires the candidate center to sit more
	// than ReachDistance from the anchor center.
	Unreachable bool

	// Obstruct requires the candidate to obstruct the performer's sightline
	// to the anchor at least this much. ObstructionNone imposes nothing.
	Obstruct geom.Obstruction

	// AvoidObstruct requires the candidate to leave the sightline fully
	// clear.
	AvoidObstruct bool

	// MaxDistance caps the outward walk. Zero means the room diagonal.
	MaxDistance float64
}

// RelativeTo walks candidate positions outward from the anchor along 1-2 rays
// derived from the performer-anchor bearing, returning the first step that
// satisfies room containment, non-overlap, and the requested sightline and
// reach constraints. Rays are tried in random order.
func (s *Searcher) RelativeTo(
	def *scene.ObjectDefinition,
	anchor *scene.ObjectInstance,
	performer scene.PerformerStart,
	opts RelativeOptions,
) (*Location, error) {
	anchorCenter := anchor.BoundingRect.Center()
	toAnchor := anchorCenter.Sub(performer.Point())
	if toAnchor.Length() < 1e-9 {
		return nil, ErrNoValidLocation
	}
	bearing := headingDegrees(toAnchor)

	rays := s.candidateRays(bearing, opts)

	candidateRect := geom.RectangleCorners(0, 0, def.HalfX(), def.HalfZ(), def.Offset.X, def.Offset.Z, bearing)
	minSep := anchor.BoundingRect.HalfDiagonal() + candidateRect.HalfDiagonal() + anchorGap
	start := minSep
	if opts.Far {
		start = minSep + ReachDistance
	}
	maxDist := opts.MaxDistance
	if maxDist == 0 {
		maxDist = geom.Pt(s.Room.MinX, s.Room.MinZ).Distance(geom.Pt(s.Room.MaxX, s.Room.MaxZ))
	}

	for _, rayDeg := range rays {
		dir := headingVector(rayDeg)
		for dist := start; dist <= maxDist; dist += stepSize {
			p := anchorCenter.Add(dir.Scale(dist))
			pos := scene.Vector3{X: p.X, Y: def.PositionY, Z: p.Z}
			// Anchored objects face along the sightline.
			loc := s.validate(def, pos, bearing, performer)
			if loc == nil {
				continue
			}
			if !s.satisfiesConstraints(loc, anchor, performer, opts) {
				continue
			}
			s.Bounds.Append(loc.Rect)
			return loc, nil
		}
	}
	return nil, ErrNoValidLocation
}

// candidateRays derives the walk directions from the performer-anchor
// bearing, shuffled so ties break randomly.
func (s *Searcher) candidateRays(bearing float64, opts RelativeOptions) []float64 {
	var rays []float64
	switch {
	case opts.Adjacent:
		rays = []float64{bearing + 90, bearing - 90}
	case opts.Behind:
		rays = []float64{bearing}
	default:
		// Straight-on: from the anchor back toward the performer, so the
		// candidate can sit between them.
		rays = []float64{bearing + 180}
	}
	s.RNG.Shuffle(len(rays), func(i, j int) {
		rays[i], rays[j] = rays[j], rays[i]
	})
	return rays
}

// satisfiesConstraints applies the optional sightline and reach requirements.
func (s *Searcher) satisfiesConstraints(
	loc *Location,
	anchor *scene.ObjectInstance,
	performer scene.PerformerStart,
	opts RelativeOptions,
) bool {
	if opts.Unreachable {
		d := loc.Rect.Center().Distance(anchor.BoundingRect.Center())
		if d <= ReachDistance {
			return false
		}
	}
	if opts.Obstruct != geom.ObstructionNone || opts.AvoidObstruct {
		level := geom.SightlineObstruction(performer.Point(), loc.Rect, anchor.BoundingRect)
		if opts.AvoidObstruct && level != geom.ObstructionNone {
			return false
		}
		if opts.Obstruct == geom.ObstructionFull && level != geom.ObstructionFull {
			return false
		}
		if opts.Obstruct == geom.ObstructionPartial && level == geom.ObstructionNone {
			return false
		}
	}
	return true
}
