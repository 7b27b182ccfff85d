package containment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenegen/internal/scene"
)

func def(t string, x, y, z float64) *scene.ObjectDefinition {
	return &scene.ObjectDefinition{
		Type:       t,
		Dimensions: scene.Vector3{X: x, Y: y, Z: z},
		Scale:      scene.Vector3{X: 1, Y: 1, Z: 1},
	}
}

func containerDef(areaX, areaY, areaZ float64) *scene.ObjectDefinition {
	c := def("chest", areaX+0.2, areaY+0.1, areaZ+0.2)
	c.Receptacle = true
	c.EnclosedAreas = []scene.EnclosedArea{{
		ID:         "interior",
		Position:   scene.Vector3{Y: areaY/2 + 0.05},
		Dimensions: scene.Vector3{X: areaX, Y: areaY, Z: areaZ},
	}}
	return c
}

func TestCanEnclose_FitsUnrotated(t *testing.T) {
	area := scene.EnclosedArea{Dimensions: scene.Vector3{X: 1, Y: 1, Z: 1}}

	rot, ok := CanEnclose(area, def("cube", 0.5, 0.5, 0.5))
	require.True(t, ok)
	assert.Equal(t, 0.0, rot)
}

func TestCanEnclose_FitsOnlyRotated(t *testing.T) {
	area := scene.EnclosedArea{Dimensions: scene.Vector3{X: 1, Y: 1, Z: 2}}

	rot, ok := CanEnclose(area, def("bar", 1.5, 0.5, 0.5))
	require.True(t, ok)
	assert.Equal(t, 90.0, rot)
}

func TestCanEnclose_TooLargeOnBothOrientations(t *testing.T) {
	area := scene.EnclosedArea{Dimensions: scene.Vector3{X: 1, Y: 1, Z: 1}}

	_, ok := CanEnclose(area, def("bar", 0.5, 1, 2))
	assert.False(t, ok)
}

func TestCanContain_FirstFittingAreaWins(t *testing.T) {
	c := def("cabinet", 2, 2, 2)
	c.EnclosedAreas = []scene.EnclosedArea{
		{ID: "tiny", Dimensions: scene.Vector3{X: 0.1, Y: 0.1, Z: 0.1}},
		{ID: "shelf", Dimensions: scene.Vector3{X: 1, Y: 0.5, Z: 0.5}},
	}

	fit, ok := CanContain(c, def("ball", 0.3, 0.3, 0.3))
	require.True(t, ok)
	assert.Equal(t, 1, fit.AreaIndex)
	assert.Equal(t, []float64{0}, fit.Rotations)
}

func TestCanContain_MultipleTargetsTestedIndependently(t *testing.T) {
	c := containerDef(1, 0.5, 0.5)

	fit, ok := CanContain(c, def("a", 0.9, 0.4, 0.4), def("b", 0.4, 0.4, 0.9))
	require.True(t, ok)
	assert.Equal(t, []float64{0, 90}, fit.Rotations)
}

func TestCanContainBoth_CombinedFootprintNeverExceedsArea(t *testing.T) {
	c := containerDef(1.0, 0.5, 0.6)
	a := def("a", 0.5, 0.4, 0.45)
	b := def("b", 0.45, 0.4, 0.5)

	fit, ok := CanContainBoth(c, a, b)
	require.True(t, ok)

	area := c.EnclosedAreas[fit.AreaIndex].Dimensions
	ax, az := rotatedFootprint(a, fit.RotationA)
	bx, bz := rotatedFootprint(b, fit.RotationB)
	if fit.Orientation == SideBySide {
		assert.LessOrEqual(t, ax+bx, area.X)
		assert.LessOrEqual(t, max(az, bz), area.Z)
	} else {
		assert.LessOrEqual(t, max(ax, bx), area.X)
		assert.LessOrEqual(t, az+bz, area.Z)
	}
}

func TestCanContainBoth_RejectsWhenNoCombinationFits(t *testing.T) {
	c := containerDef(1.0, 0.5, 0.5)

	_, ok := CanContainBoth(c, def("a", 0.9, 0.4, 0.45), def("b", 0.9, 0.4, 0.45))
	assert.False(t, ok)
}

func TestPlaceInside_PositionsAtAreaFloorCenter(t *testing.T) {
	c := containerDef(1, 0.5, 0.5)
	container := scene.NewInstance(c)
	container.SetPose(scene.Vector3{X: 2, Y: 0, Z: -1}, 0)

	target := scene.NewInstance(def("ball", 0.3, 0.3, 0.3))
	require.NoError(t, PlaceInside(target, container, 0, 0))

	assert.InDelta(t, 2, target.Position.X, 1e-9)
	assert.InDelta(t, -1, target.Position.Z, 1e-9)
	// Area center Y minus half the area height drops the object to the
	// area floor.
	wantY := container.Position.Y + c.EnclosedAreas[0].Position.Y - c.EnclosedAreas[0].Dimensions.Y/2
	assert.InDelta(t, wantY, target.Position.Y, 1e-9)
	assert.Equal(t, container.ID, target.LocationParent)
	assert.Equal(t, "interior", target.ParentArea)
	assert.Contains(t, container.Children, target.ID)
}

func TestPlaceInside_Idempotent(t *testing.T) {
	container := scene.NewInstance(containerDef(1, 0.5, 0.5))
	container.SetPose(scene.Vector3{X: 1, Z: 1}, 45)

	target := scene.NewInstance(def("ball", 0.3, 0.3, 0.3))
	require.NoError(t, PlaceInside(target, container, 0, 90))
	first := target.BoundingRect

	require.NoError(t, PlaceInside(target, container, 0, 90))
	assert.Equal(t, first, target.BoundingRect)
	assert.Len(t, container.Children, 1)
}

func TestPlaceInside_UnknownAreaFails(t *testing.T) {
	container := scene.NewInstance(containerDef(1, 0.5, 0.5))
	target := scene.NewInstance(def("ball", 0.3, 0.3, 0.3))

	assert.Error(t, PlaceInside(target, container, 3, 0))
}

func TestPlaceBothInside_SymmetricAboutAreaCenter(t *testing.T) {
	c := containerDef(1.2, 0.5, 0.6)
	container := scene.NewInstance(c)
	container.SetPose(scene.Vector3{}, 0)

	a := scene.NewInstance(def("a", 0.5, 0.4, 0.4))
	b := scene.NewInstance(def("b", 0.5, 0.4, 0.4))
	fit, ok := CanContainBoth(c, a.Definition, b.Definition)
	require.True(t, ok)
	require.NoError(t, PlaceBothInside(a, b, container, fit))

	if fit.Orientation == SideBySide {
		assert.InDelta(t, -a.Position.X, b.Position.X, 1e-9)
		assert.InDelta(t, a.Position.Z, b.Position.Z, 1e-9)
	} else {
		assert.InDelta(t, -a.Position.Z, b.Position.Z, 1e-9)
		assert.InDelta(t, a.Position.X, b.Position.X, 1e-9)
	}
	assert.Equal(t, container.ID, a.LocationParent)
	assert.Equal(t, container.ID, b.LocationParent)
}
