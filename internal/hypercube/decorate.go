// internal/hypercube/decorate.go
package hypercube

import (
	"github.com/scenekit/scenegen/internal/catalog"
	"github.com/scenekit/scenegen/internal/scene"
)

// decorate adds non-critical set dressing after an attempt has committed.
// Decoration failures are ignored: they never invalidate a hypercube.
func (g *Generator) decorate(hc *scene.Hypercube, st *attemptState) {
	count := g.RNG.Intn(3)
	if count == 0 {
		return
	}

	pool := catalog.Decoratives()
	for i := 0; i < count; i++ {
		def, err := catalog.Finalize(pool[g.RNG.Intn(len(pool))], g.RNG)
		if err != nil {
			continue
		}
		loc, err := st.searcher.Random(def, st.performer)
		if err != nil {
			continue
		}
		// Shared decoration: the same object at the same spot in every
		// scene of the family.
		for _, sc := range hc.Scenes {
			inst := scene.NewInstance(def)
			inst.SetPose(loc.Position, loc.Rotation)
			sc.AddObject(inst)
		}
	}
}

// declashMaterials picks floor and wall materials that do not share a color
// word with any placed object, so no object visually melts into the room.
// When every candidate clashes, the last one is kept anyway.
func (g *Generator) declashMaterials(hc *scene.Hypercube) {
	used := map[string]bool{}
	for _, sc := range hc.Scenes {
		for _, obj := range sc.Objects {
			for _, c := range obj.Colors {
				used[c] = true
			}
		}
	}

	floor := g.pickSurface(catalog.FloorMaterials, used)
	wall := g.pickSurface(catalog.WallMaterials, used)
	for _, sc := range hc.Scenes {
		sc.FloorMaterial = floor
		sc.WallMaterial = wall
	}
}

func (g *Generator) pickSurface(candidates []catalog.Material, used map[string]bool) string {
	shuffled := append([]catalog.Material(nil), candidates...)
	g.RNG.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	pick := shuffled[len(shuffled)-1]
	for _, m := range shuffled {
		clash := false
		for _, c := range m.Colors {
			if used[c] {
				clash = true
				break
			}
		}
		if !clash {
			pick = m
			break
		}
	}
	return pick.ID
}
