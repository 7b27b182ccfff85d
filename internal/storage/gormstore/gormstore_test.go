package gormstore

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenekit/scenegen/internal/database"
	"github.com/scenekit/scenegen/internal/logging"
	"github.com/scenekit/scenegen/internal/scene"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	mgr := database.NewManager(zerolog.Nop())
	db, err := mgr.GetSqliteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	b := New(Dependencies{DB: db, LogManager: logging.NewSlogManager()})
	require.NoError(t, b.Init())
	t.Cleanup(func() { b.Close() })
	return b
}

func sampleHypercube() *scene.Hypercube {
	hc := scene.NewHypercube("container", 7)
	s := scene.NewScene("target_close", scene.DefaultRoom(), scene.PerformerStart{})
	s.FloorMaterial = "wood_oak"

	inst := scene.NewInstance(&scene.ObjectDefinition{
		Type:       "chest",
		Dimensions: scene.Vector3{X: 0.83, Y: 0.42, Z: 0.55},
		Scale:      scene.Vector3{X: 1, Y: 1, Z: 1},
		Mass:       7,
		Receptacle: true,
	})
	inst.SetPose(scene.Vector3{X: 1, Y: 0.21, Z: 1}, 0)
	s.AddObject(inst)
	hc.Scenes = append(hc.Scenes, s)
	return hc
}

func TestSaveHypercube_PersistsAfterFlush(t *testing.T) {
	b := newTestBackend(t)

	hc := sampleHypercube()
	require.NoError(t, b.SaveHypercube(hc, "container"))

	b.flush()

	n, err := b.CountHypercubes()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestLoadHypercube_RoundTrip(t *testing.T) {
	b := newTestBackend(t)

	hc := sampleHypercube()
	require.NoError(t, b.SaveHypercube(hc, "container"))
	b.flush()

	got, err := b.LoadHypercube(hc.ID)
	require.NoError(t, err)
	assert.Equal(t, hc.ID, got.ID)
	assert.Equal(t, int64(7), got.Seed)
	require.Len(t, got.Scenes, 1)
	assert.Equal(t, "target_close", got.Scenes[0].Name)
	require.Len(t, got.Scenes[0].Objects, 1)
	assert.Equal(t, "chest", got.Scenes[0].Objects[0].Type)
}

func TestLoadHypercube_UnknownUUID(t *testing.T) {
	b := newTestBackend(t)

	_, err := b.LoadHypercube("no-such-uuid")
	assert.Error(t, err)
}

func TestFlush_EmptyQueueIsNoop(t *testing.T) {
	b := newTestBackend(t)
	b.flush()

	n, err := b.CountHypercubes()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
