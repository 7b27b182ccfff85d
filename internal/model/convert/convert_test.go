package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenegen/internal/scene"
)

func sampleScene() *scene.Scene {
	room := scene.NewRoom(10, 10)
	performer := scene.PerformerStart{
		Position: scene.Vector3{X: 1, Z: -2},
		Rotation: 45,
	}
	s := scene.NewScene("target_close", room, performer)
	s.FloorMaterial = "wood_oak"
	s.WallMaterial = "drywall_white"

	def := &scene.ObjectDefinition{
		Type:       "chest",
		Dimensions: scene.Vector3{X: 0.83, Y: 0.42, Z: 0.55},
		Scale:      scene.Vector3{X: 1, Y: 1, Z: 1},
		Mass:       7,
		MaterialID: "wood_oak",
		Colors:     []string{"brown"},
		Receptacle: true,
		Openable:   true,
		Moveable:   true,
	}
	inst := scene.NewInstance(def)
	inst.SetPose(scene.Vector3{X: 2, Y: 0.21, Z: 3}, 90)
	inst.Children = []string{"child-1"}
	s.AddObject(inst)

	target := scene.NewInstance(&scene.ObjectDefinition{
		Type:       "ball",
		Dimensions: scene.Vector3{X: 0.25, Y: 0.25, Z: 0.25},
		Scale:      scene.Vector3{X: 1, Y: 1, Z: 1},
		Mass:       1,
		Pickupable: true,
		Moveable:   true,
	})
	target.ID = "child-1"
	target.SetPose(scene.Vector3{X: 2, Y: 0.13, Z: 3}, 0)
	target.LocationParent = inst.ID
	target.ParentArea = "chest_interior"
	s.AddObject(target)

	return s
}

func TestSceneRoundTrip(t *testing.T) {
	orig := sampleScene()

	row, err := SceneToGorm(orig)
	require.NoError(t, err)
	assert.Equal(t, orig.ID, row.UUID)
	assert.Equal(t, "target_close", row.Name)
	assert.NotEmpty(t, row.Objects)

	back, err := GormToScene(row)
	require.NoError(t, err)

	assert.Equal(t, orig.Room, back.Room)
	assert.Equal(t, orig.Performer, back.Performer)
	assert.Equal(t, orig.FloorMaterial, back.FloorMaterial)
	require.Len(t, back.Objects, 2)

	chest := back.Objects[0]
	assert.Equal(t, "chest", chest.Type)
	assert.True(t, chest.Receptacle)
	assert.Equal(t, scene.Vector3{X: 2, Y: 0.21, Z: 3}, chest.Position)
	assert.Equal(t, 90.0, chest.Rotation)
	assert.Equal(t, []string{"child-1"}, chest.Children)
	require.NotNil(t, chest.Definition)
	assert.Equal(t, 7.0, chest.Definition.Mass)

	ball := back.Objects[1]
	assert.Equal(t, chest.ID, ball.LocationParent)
	assert.Equal(t, "chest_interior", ball.ParentArea)
}

func TestPayloadToObject_RecomputesBoundingRect(t *testing.T) {
	orig := sampleScene().Objects[0]

	back := PayloadToObject(ObjectToPayload(orig))

	for i := range orig.BoundingRect {
		assert.InDelta(t, orig.BoundingRect[i].X, back.BoundingRect[i].X, 1e-9)
		assert.InDelta(t, orig.BoundingRect[i].Z, back.BoundingRect[i].Z, 1e-9)
	}
}

func TestHypercubeRoundTrip(t *testing.T) {
	hc := scene.NewHypercube("container", 1234)
	hc.Scenes = append(hc.Scenes, sampleScene(), sampleScene())

	row, err := HypercubeToGorm(hc, "container")
	require.NoError(t, err)
	assert.Equal(t, hc.ID, row.UUID)
	assert.Equal(t, "container", row.Design)
	assert.Equal(t, int64(1234), row.Seed)
	require.Len(t, row.Scenes, 2)

	back, err := GormToHypercube(row)
	require.NoError(t, err)
	assert.Equal(t, hc.ID, back.ID)
	assert.Equal(t, hc.Seed, back.Seed)
	require.Len(t, back.Scenes, 2)
	assert.Equal(t, hc.Scenes[0].ID, back.Scenes[0].ID)
}
