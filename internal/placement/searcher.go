// internal/placement/searcher.go
package placement

import (
	"errors"
	"math"
	"math/rand"

	"github.com/scenekit/scenegen/internal/geom"
	"github.com/scenekit/scenegen/internal/scene"
)

// MaxTries bounds every sampling loop in this package, and the orchestrator's
// whole-attempt retry loop.
const MaxTries = 50

const (
	// MinForwardVisibility is the closest an in-front placement may sit to
	// the performer.
	MinForwardVisibility = 1.25

	// ReachDistance is how far the performer can reach from a standstill;
	// beyond it an object counts as unreachable.
	ReachDistance = 1.0

	// anchorGap separates an anchored candidate from its anchor on top of
	// the two half-diagonals.
	anchorGap = 0.1

	// stepSize is the outward increment of the anchored ray walk.
	stepSize = 0.1
)

// ErrNoValidLocation is returned when a policy exhausts its sampling budget.
var ErrNoValidLocation = errors.New("no valid location found")

// ErrPerformerBoxedIn signals the orchestrator to discard the performer start
// and redraw it: no front/back segment is geometrically possible.
var ErrPerformerBoxedIn = errors.New("performer start has no usable front segment")

// Location is a resolved placement: position, rotation, and the validated
// oriented bounding rectangle.
type Location struct {
	Position scene.Vector3
	Rotation float64
	Rect     geom.Rect
}

// Searcher produces one valid location for one object under one policy. A
// successful search appends the winning rectangle to the bounds registry; a
// failed search leaves the registry untouched.
type Searcher struct {
	Room   scene.Room
	Bounds *Bounds
	RNG    *rand.Rand
}

// NewSearcher builds a searcher over the given room and registry.
func NewSearcher(room scene.Room, bounds *Bounds, rng *rand.Rand) *Searcher {
	return &Searcher{Room: room, Bounds: bounds, RNG: rng}
}

// DrawPerformer samples a performer start anywhere in the room with one of
// the eight compass headings.
func (s *Searcher) DrawPerformer() scene.PerformerStart {
	return scene.PerformerStart{
		Position: scene.Vector3{
			X: s.uniform(s.Room.MinX, s.Room.MaxX),
			Y: 0,
			Z: s.uniform(s.Room.MinZ, s.Room.MaxZ),
		},
		Rotation: scene.ValidRotations[s.RNG.Intn(len(scene.ValidRotations))],
	}
}

// Random finds a free spot for the definition anywhere in the room.
func (s *Searcher) Random(def *scene.ObjectDefinition, performer scene.PerformerStart) (*Location, error) {
	for try := 0; try < MaxTries; try++ {
		pos := scene.Vector3{
			X: s.uniform(s.Room.MinX, s.Room.MaxX),
			Y: def.PositionY,
			Z: s.uniform(s.Room.MinZ, s.Room.MaxZ),
		}
		rot := float64(scene.ValidRotations[s.RNG.Intn(len(scene.ValidRotations))])
		if loc := s.validate(def, pos, rot, performer); loc != nil {
			s.Bounds.Append(loc.Rect)
			return loc, nil
		}
	}
	return nil, ErrNoValidLocation
}

// InFront places the definition on the visible segment ahead of the
// performer, at least MinForwardVisibility away and inside the room. Returns
// ErrPerformerBoxedIn when the forward ray leaves the room before the minimum
// visibility distance.
func (s *Searcher) InFront(def *scene.ObjectDefinition, performer scene.PerformerStart) (*Location, error) {
	origin := performer.Point()
	dir := headingVector(float64(performer.Rotation))
	maxDist := s.rayRoomDistance(origin, dir)
	if maxDist <= MinForwardVisibility {
		return nil, ErrPerformerBoxedIn
	}

	for try := 0; try < MaxTries; try++ {
		dist := s.uniform(MinForwardVisibility, maxDist)
		p := origin.Add(dir.Scale(dist))
		pos := scene.Vector3{X: p.X, Y: def.PositionY, Z: p.Z}
		rot := float64(scene.ValidRotations[s.RNG.Intn(len(scene.ValidRotations))])
		if loc := s.validate(def, pos, rot, performer); loc != nil {
			s.Bounds.Append(loc.Rect)
			return loc, nil
		}
	}
	return nil, ErrNoValidLocation
}

// Behind places the definition somewhere in the 180-degree rear arc of the
// performer, clipped to the room.
func (s *Searcher) Behind(def *scene.ObjectDefinition, performer scene.PerformerStart) (*Location, error) {
	origin := performer.Point()

	for try := 0; try < MaxTries; try++ {
		// Rear arc: heading +90 through +270 compass degrees.
		arc := float64(performer.Rotation) + 90 + s.RNG.Float64()*180
		dir := headingVector(arc)
		maxDist := s.rayRoomDistance(origin, dir)
		if maxDist <= 0 {
			continue
		}
		dist := s.uniform(0, maxDist)
		p := origin.Add(dir.Scale(dist))
		pos := scene.Vector3{X: p.X, Y: def.PositionY, Z: p.Z}
		rot := float64(scene.ValidRotations[s.RNG.Intn(len(scene.ValidRotations))])
		if loc := s.validate(def, pos, rot, performer); loc != nil {
			s.Bounds.Append(loc.Rect)
			return loc, nil
		}
	}
	return nil, ErrNoValidLocation
}

// validate builds the candidate rectangle and checks room containment, the
// performer footprint, and the bounds registry. Returns nil when invalid.
func (s *Searcher) validate(def *scene.ObjectDefinition, pos scene.Vector3, rot float64, performer scene.PerformerStart) *Location {
	rect := geom.RectangleCorners(
		pos.X, pos.Z,
		def.HalfX(), def.HalfZ(),
		def.Offset.X, def.Offset.Z,
		rot,
	)
	if !s.Room.ContainsRect(rect) {
		return nil
	}
	if rect.Intersects(performer.Footprint()) {
		return nil
	}
	if s.Bounds.Collides(rect) {
		return nil
	}
	return &Location{Position: pos, Rotation: rot, Rect: rect}
}

// uniform samples uniformly from [lo, hi).
func (s *Searcher) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.RNG.Float64()*(hi-lo)
}

// headingVector converts a compass heading (0 = +Z, clockwise) to a unit
// direction in the floor plane.
func headingVector(deg float64) geom.Point {
	rad := deg * math.Pi / 180
	return geom.Point{X: math.Sin(rad), Z: math.Cos(rad)}
}

// headingDegrees converts a floor-plane direction to a compass heading.
func headingDegrees(dir geom.Point) float64 {
	deg := math.Atan2(dir.X, dir.Z) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// rayRoomDistance returns how far a ray from origin can travel before leaving
// the room. Zero when the origin is already outside.
func (s *Searcher) rayRoomDistance(origin, dir geom.Point) float64 {
	best := math.Inf(1)
	if dir.X > 1e-12 {
		best = math.Min(best, (s.Room.MaxX-origin.X)/dir.X)
	} else if dir.X < -1e-12 {
		best = math.Min(best, (s.Room.MinX-origin.X)/dir.X)
	}
	if dir.Z > 1e-12 {
		best = math.Min(best, (s.Room.MaxZ-origin.Z)/dir.Z)
	} else if dir.Z < -1e-12 {
		best = math.Min(best, (s.Room.MinZ-origin.Z)/dir.Z)
	}
	if math.IsInf(best, 1) || best < 0 {
		return 0
	}
	return best
}
