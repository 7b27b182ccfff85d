package placement

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenegen/internal/geom"
	"github.com/scenekit/scenegen/internal/scene"
)

func testDef(x, y, z float64) *scene.ObjectDefinition {
	return &scene.ObjectDefinition{
		Type:       "test_box",
		Dimensions: scene.Vector3{X: x, Y: y, Z: z},
		Scale:      scene.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func centeredPerformer() scene.PerformerStart {
	return scene.PerformerStart{Position: scene.Vector3{}, Rotation: 0}
}

func anchorAt(t *testing.T, s *Searcher, def *scene.ObjectDefinition, x, z float64) *scene.ObjectInstance {
	t.Helper()
	inst := scene.NewInstance(def)
	inst.SetPose(scene.Vector3{X: x, Z: z}, 0)
	require.True(t, s.Room.ContainsRect(inst.BoundingRect))
	s.Bounds.Append(inst.BoundingRect)
	return inst
}

func TestRandom_AlwaysInsideRoom(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(11))
	bounds := NewBounds()
	s := NewSearcher(room, bounds, rng)
	performer := centeredPerformer()

	def := testDef(0.5, 0.5, 0.5)
	for i := 0; i < 25; i++ {
		loc, err := s.Random(def, performer)
		if err != nil {
			// A dense registry may legitimately run out of space, but it
			// must never yield an invalid rectangle.
			assert.ErrorIs(t, err, ErrNoValidLocation)
			return
		}
		assert.True(t, room.ContainsRect(loc.Rect), "placement %d left the room", i)
	}
}

func TestRandom_NeverOverlapsRegistry(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(5))
	bounds := NewBounds()
	s := NewSearcher(room, bounds, rng)
	performer := centeredPerformer()

	def := testDef(1, 1, 1)
	var placed []geom.Rect
	for i := 0; i < 15; i++ {
		loc, err := s.Random(def, performer)
		if err != nil {
			break
		}
		for j, prev := range placed {
			assert.False(t, prev.Intersects(loc.Rect), "placement %d overlaps %d", i, j)
		}
		assert.False(t, loc.Rect.Intersects(performer.Footprint()))
		placed = append(placed, loc.Rect)
	}
	require.NotEmpty(t, placed)
}

func TestRandom_FailureLeavesRegistryUntouched(t *testing.T) {
	room := scene.NewRoom(2, 2)
	rng := rand.New(rand.NewSource(2))
	bounds := NewBounds()
	s := NewSearcher(room, bounds, rng)

	// A definition larger than the room can never be placed.
	def := testDef(5, 1, 5)
	loc, err := s.Random(def, centeredPerformer())

	require.ErrorIs(t, err, ErrNoValidLocation)
	assert.Nil(t, loc)
	assert.Zero(t, bounds.Len())
}

func TestInFront_RespectsMinVisibility(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(9))
	s := NewSearcher(room, NewBounds(), rng)
	performer := centeredPerformer()

	def := testDef(0.4, 0.4, 0.4)
	loc, err := s.InFront(def, performer)
	require.NoError(t, err)

	d := loc.Rect.Center().Distance(performer.Point())
	assert.GreaterOrEqual(t, d, MinForwardVisibility-def.HalfZ()-1e-9)
	// Facing 0 degrees means in-front locations sit at larger Z.
	assert.Greater(t, loc.Position.Z, performer.Position.Z)
}

func TestInFront_SignalsRedrawWhenFacingWall(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(4))
	s := NewSearcher(room, NewBounds(), rng)

	// Standing at the north wall facing north leaves no forward segment.
	performer := scene.PerformerStart{
		Position: scene.Vector3{X: 0, Z: room.MaxZ - 0.1},
		Rotation: 0,
	}
	_, err := s.InFront(testDef(0.4, 0.4, 0.4), performer)
	assert.ErrorIs(t, err, ErrPerformerBoxedIn)
}

func TestBehind_PlacesInRearArc(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(21))
	s := NewSearcher(room, NewBounds(), rng)
	performer := centeredPerformer()

	loc, err := s.Behind(testDef(0.4, 0.4, 0.4), performer)
	require.NoError(t, err)
	// Facing 0 degrees, the rear arc is strictly negative Z.
	assert.Less(t, loc.Position.Z, performer.Position.Z)
}

func TestRelativeTo_CloseStartsAtMinSeparation(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(17))
	s := NewSearcher(room, NewBounds(), rng)
	performer := centeredPerformer()

	anchorDef := testDef(0.8, 0.5, 0.5)
	anchor := anchorAt(t, s, anchorDef, 0, 3)

	def := testDef(0.3, 0.3, 0.3)
	loc, err := s.RelativeTo(def, anchor, performer, RelativeOptions{})
	require.NoError(t, err)

	minSep := anchor.BoundingRect.HalfDiagonal() + loc.Rect.HalfDiagonal()
	d := loc.Rect.Center().Distance(anchor.BoundingRect.Center())
	assert.GreaterOrEqual(t, d, minSep-1e-9)
	assert.False(t, loc.Rect.Intersects(anchor.BoundingRect))
}

func TestRelativeTo_FarIsFartherThanClose(t *testing.T) {
	room := scene.DefaultRoom()
	performer := centeredPerformer()
	def := testDef(0.3, 0.3, 0.3)
	anchorDef := testDef(0.8, 0.5, 0.5)

	closeSearcher := NewSearcher(room, NewBounds(), rand.New(rand.NewSource(30)))
	closeAnchor := anchorAt(t, closeSearcher, anchorDef, 0, 2)
	closeLoc, err := closeSearcher.RelativeTo(def, closeAnchor, performer, RelativeOptions{})
	require.NoError(t, err)

	farSearcher := NewSearcher(room, NewBounds(), rand.New(rand.NewSource(30)))
	farAnchor := anchorAt(t, farSearcher, anchorDef, 0, 2)
	farLoc, err := farSearcher.RelativeTo(def, farAnchor, performer, RelativeOptions{Far: true})
	require.NoError(t, err)

	closeDist := closeLoc.Rect.Center().Distance(closeAnchor.BoundingRect.Center())
	farDist := farLoc.Rect.Center().Distance(farAnchor.BoundingRect.Center())
	assert.Greater(t, farDist, closeDist)
}

func TestRelativeTo_ObstructFullBlocksSightline(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(13))
	s := NewSearcher(room, NewBounds(), rng)
	performer := centeredPerformer()

	targetDef := testDef(0.3, 0.3, 0.3)
	anchor := anchorAt(t, s, targetDef, 0, 4)

	// Wide blocker so full obstruction is feasible.
	blockerDef := testDef(2.0, 1.2, 0.5)
	loc, err := s.RelativeTo(blockerDef, anchor, performer, RelativeOptions{
		Obstruct: geom.ObstructionFull,
	})
	require.NoError(t, err)

	level := geom.SightlineObstruction(performer.Point(), loc.Rect, anchor.BoundingRect)
	assert.Equal(t, geom.ObstructionFull, level)
}

func TestRelativeTo_UnreachableExceedsReachDistance(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(23))
	s := NewSearcher(room, NewBounds(), rng)
	performer := centeredPerformer()

	anchor := anchorAt(t, s, testDef(0.5, 0.5, 0.5), -2, 3)
	loc, err := s.RelativeTo(testDef(0.3, 0.3, 0.3), anchor, performer, RelativeOptions{
		Unreachable: true,
	})
	require.NoError(t, err)

	d := loc.Rect.Center().Distance(anchor.BoundingRect.Center())
	assert.Greater(t, d, ReachDistance)
}

func TestRelativeTo_AdjacentSitsBesideTheSightline(t *testing.T) {
	room := scene.DefaultRoom()
	rng := rand.New(rand.NewSource(19))
	s := NewSearcher(room, NewBounds(), rng)
	performer := centeredPerformer()

	anchor := anchorAt(t, s, testDef(0.5, 0.5, 0.5), 0, 3)
	loc, err := s.RelativeTo(testDef(0.3, 0.3, 0.3), anchor, performer, RelativeOptions{
		Adjacent: true,
	})
	require.NoError(t, err)

	// Performer at origin looking at an anchor on the Z axis: adjacent
	// candidates deviate in X, not Z.
	assert.InDelta(t, anchor.Position.Z, loc.Position.Z, 0.25)
	assert.Greater(t, math.Abs(loc.Position.X-anchor.Position.X), 0.4)
}

func TestDrawPerformer_InsideRoom(t *testing.T) {
	room := scene.DefaultRoom()
	s := NewSearcher(room, NewBounds(), rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		p := s.DrawPerformer()
		assert.True(t, room.Contains(p.Point()))
		assert.Contains(t, scene.ValidRotations, p.Rotation)
	}
}

func TestBounds_ParentExemption(t *testing.T) {
	b := NewBounds()
	parent := geom.RectangleCorners(0, 0, 1, 1, 0, 0, 0)
	child := geom.RectangleCorners(0, 0, 0.3, 0.3, 0, 0, 0)
	b.Append(parent)

	assert.True(t, b.Collides(child))
	assert.False(t, b.Collides(child, parent))
}
