// internal/hypercube/select.go
package hypercube

import (
	"math/rand"

	"github.com/scenekit/scenegen/internal/catalog"
	"github.com/scenekit/scenegen/internal/containment"
	"github.com/scenekit/scenegen/internal/scene"
)

// roleDefinitions holds the finalized trained and untrained definition of
// each role for one attempt. Every scene of the hypercube draws from this
// shared set.
type roleDefinitions map[Role]map[bool]*scene.ObjectDefinition

func (r roleDefinitions) get(role Role, untrained bool) *scene.ObjectDefinition {
	variants, ok := r[role]
	if !ok {
		return nil
	}
	if def, ok := variants[untrained]; ok {
		return def
	}
	// Designs that never exercise the untrained axis for a role only
	// resolve the trained variant.
	return variants[false]
}

func (r roleDefinitions) put(role Role, untrained bool, def *scene.ObjectDefinition) {
	if r[role] == nil {
		r[role] = map[bool]*scene.ObjectDefinition{}
	}
	r[role][untrained] = def
}

// dimensionsSimilar reports whether each axis of b is within [1/ratio, ratio]
// of a's corresponding axis.
func dimensionsSimilar(a, b scene.Vector3, ratio float64) bool {
	axes := [][2]float64{{a.X, b.X}, {a.Y, b.Y}, {a.Z, b.Z}}
	for _, ax := range axes {
		if ax[1] > ax[0]*ratio || ax[1] < ax[0]/ratio {
			return false
		}
	}
	return true
}

// confusorSimilarityRatio bounds how much a confusor's dimensions may deviate
// from the target's while staying "similar but distinguishable".
const confusorSimilarityRatio = 2.0

// selectDefinitions resolves the definition set for every role the design
// uses, honoring the role-pairing rules. Returns a definition failure when
// the catalog cannot satisfy a role.
func (g *Generator) selectDefinitions(design Design, rng *rand.Rand) (roleDefinitions, error) {
	defs := roleDefinitions{}

	needUntrained := map[Role]bool{}
	for _, f := range design.Frames {
		for role, u := range f.Untrained {
			if u {
				needUntrained[role] = true
			}
		}
	}

	for _, role := range design.Roles() {
		if err := g.selectRole(defs, role, false, rng); err != nil {
			return nil, err
		}
		if needUntrained[role] {
			if err := g.selectRole(defs, role, true, rng); err != nil {
				return nil, err
			}
		}
	}
	return defs, nil
}

func (g *Generator) selectRole(defs roleDefinitions, role Role, untrained bool, rng *rand.Rand) error {
	target := defs.get(RoleTarget, false)
	confusor := defs.get(RoleConfusor, false)

	var pool []*scene.ObjectDefinition
	var fits func(*scene.ObjectDefinition) bool

	switch role {
	case RoleTarget:
		pool = catalog.Pickupables()
		fits = func(d *scene.ObjectDefinition) bool { return true }
	case RoleConfusor:
		pool = catalog.Pickupables()
		fits = func(d *scene.ObjectDefinition) bool {
			if !dimensionsSimilar(target.Dimensions, d.Dimensions, confusorSimilarityRatio) {
				return false
			}
			// Distinguishable: a different shape, or the same shape in a
			// different color.
			return d.Type != target.Type || !sameColors(d.Colors, target.Colors)
		}
	case RoleContainer:
		pool = catalog.Containers()
		fits = func(d *scene.ObjectDefinition) bool {
			if confusor != nil {
				if _, ok := containment.CanContainBoth(d, target, confusor); ok {
					return true
				}
			}
			_, ok := containment.CanContain(d, target)
			return ok
		}
	case RoleObstacle:
		pool = catalog.Obstacles()
		fits = func(d *scene.ObjectDefinition) bool {
			return d.Dimensions.Y >= target.Dimensions.Y &&
				d.Dimensions.X >= target.Dimensions.X &&
				d.Mass > target.Mass
		}
	case RoleOccluder:
		pool = catalog.Occluders()
		fits = func(d *scene.ObjectDefinition) bool {
			return d.Dimensions.Y >= target.Dimensions.Y &&
				d.Dimensions.X >= target.Dimensions.X
		}
	default:
		return definitionFailure("unknown role %q", role)
	}

	if untrained {
		// Untrained variants keep the trained shape's rough size so every
		// pairing and already-resolved location still holds.
		trained := defs.get(role, false)
		base := fits
		fits = func(d *scene.ObjectDefinition) bool {
			return dimensionsSimilar(trained.Dimensions, d.Dimensions, confusorSimilarityRatio) && base(d)
		}
	}

	candidates := make([]*scene.ObjectDefinition, 0, len(pool))
	for _, d := range pool {
		if d.Untrained == untrained {
			candidates = append(candidates, d)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, candidate := range candidates {
		variants, err := catalog.Variants(candidate, rng)
		if err != nil {
			return definitionFailure("finalizing %s: %v", candidate.Type, err)
		}
		rng.Shuffle(len(variants), func(i, j int) {
			variants[i], variants[j] = variants[j], variants[i]
		})
		for _, finalized := range variants {
			if fits(finalized) {
				defs.put(role, untrained, finalized)
				return nil
			}
		}
	}
	return definitionFailure("no catalog definition satisfies role %s (untrained=%v)", role, untrained)
}

func sameColors(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
