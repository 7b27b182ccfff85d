package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalize_ResolvesAllChoicePoints(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, def := range Pickupables() {
		got, err := Finalize(def, rng)
		require.NoError(t, err, def.Type)

		assert.True(t, got.Finalized(), "%s still has choice-points", def.Type)
		assert.NotZero(t, got.Dimensions.X, def.Type)
		assert.NotZero(t, got.Dimensions.Y, def.Type)
		assert.NotZero(t, got.Dimensions.Z, def.Type)
		assert.NotEmpty(t, got.MaterialID, def.Type)
		assert.NotEmpty(t, got.Colors, def.Type)
	}
}

func TestFinalize_DoesNotMutateCatalogEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	def := Containers()[0]

	before := len(def.ChooseSizes)
	_, err := Finalize(def, rng)
	require.NoError(t, err)

	assert.Equal(t, before, len(def.ChooseSizes))
	assert.Empty(t, def.MaterialID)
}

func TestFinalize_ContainersKeepEnclosedAreas(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, def := range Containers() {
		got, err := Finalize(def, rng)
		require.NoError(t, err)

		require.NotEmpty(t, got.EnclosedAreas, def.Type)
		area := got.EnclosedAreas[0]
		assert.Less(t, area.Dimensions.X, got.Dimensions.X, def.Type)
		assert.Less(t, area.Dimensions.Z, got.Dimensions.Z, def.Type)
	}
}

func TestFinalize_Deterministic(t *testing.T) {
	a, err := Finalize(Pickupables()[0], rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := Finalize(Pickupables()[0], rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a.Dimensions, b.Dimensions)
	assert.Equal(t, a.MaterialID, b.MaterialID)
}

func TestCatalog_UntrainedVariantsExistPerRole(t *testing.T) {
	count := 0
	for _, d := range Pickupables() {
		if d.Untrained {
			count++
		}
	}
	assert.Greater(t, count, 0, "pickupables need untrained variants")

	count = 0
	for _, d := range Containers() {
		if d.Untrained {
			count++
		}
	}
	assert.Greater(t, count, 0, "containers need untrained variants")
}
