// internal/catalog/finalize.go
package catalog

import (
	"fmt"
	"math/rand"

	"github.com/scenekit/scenegen/internal/scene"
)

// Finalize deep-copies a catalog definition and resolves its choice-points:
// one size option and one concrete material from one of the definition's
// material categories. The returned definition carries no remaining choices.
func Finalize(def *scene.ObjectDefinition, rng *rand.Rand) (*scene.ObjectDefinition, error) {
	out := def.Clone()

	if len(out.ChooseSizes) > 0 {
		applySize(out, out.ChooseSizes[rng.Intn(len(out.ChooseSizes))])
	}
	return finalizeMaterial(out, rng)
}

// Variants finalizes one definition per size option, so a caller testing
// placement feasibility can try every size rather than a single random draw.
// Material choice-points are still resolved randomly per variant.
func Variants(def *scene.ObjectDefinition, rng *rand.Rand) ([]*scene.ObjectDefinition, error) {
	if len(def.ChooseSizes) == 0 {
		f, err := Finalize(def, rng)
		if err != nil {
			return nil, err
		}
		return []*scene.ObjectDefinition{f}, nil
	}
	out := make([]*scene.ObjectDefinition, 0, len(def.ChooseSizes))
	for _, size := range def.ChooseSizes {
		v := def.Clone()
		applySize(v, size)
		v, err := finalizeMaterial(v, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func applySize(out *scene.ObjectDefinition, size scene.SizeChoice) {
	out.Dimensions = size.Dimensions
	out.Mass = size.Mass
	out.Scale = size.Scale
	out.Offset = size.Offset
	out.PositionY = size.PositionY
	if len(size.EnclosedAreas) > 0 {
		out.EnclosedAreas = append([]scene.EnclosedArea(nil), size.EnclosedAreas...)
	}
	out.ChooseSizes = nil
}

func finalizeMaterial(out *scene.ObjectDefinition, rng *rand.Rand) (*scene.ObjectDefinition, error) {
	if len(out.MaterialCategories) > 0 {
		category := out.MaterialCategories[rng.Intn(len(out.MaterialCategories))]
		mats := materialsByCategory(category)
		if len(mats) == 0 {
			return nil, fmt.Errorf("definition %q references unknown material category %q", out.Type, category)
		}
		mat := mats[rng.Intn(len(mats))]
		out.MaterialID = mat.ID
		out.Colors = append([]string(nil), mat.Colors...)
		out.MaterialCategories = nil
	}

	return out, nil
}
