// internal/containment/containment.go
package containment

import (
	"github.com/scenekit/scenegen/internal/scene"
)

// Orientation describes how two objects share one enclosed area.
type Orientation int

const (
	// SideBySide splits the area along its X axis.
	SideBySide Orientation = iota
	// FrontToBack splits the area along its Z axis.
	FrontToBack
)

func (o Orientation) String() string {
	if o == FrontToBack {
		return "front_to_back"
	}
	return "side_by_side"
}

// Fit is a successful single-object containment result.
type Fit struct {
	AreaIndex int
	Rotations []float64
}

// PairFit is a successful two-object containment result.
type PairFit struct {
	AreaIndex   int
	RotationA   float64
	RotationB   float64
	Orientation Orientation
}

// CanEnclose reports the rotation (0 or 90 degrees) at which the target fits
// inside the area, testing the axis-aligned comparison first and the x-z
// swapped comparison second.
func CanEnclose(area scene.EnclosedArea, target *scene.ObjectDefinition) (float64, bool) {
	a := area.Dimensions
	t := target.Dimensions
	if t.X <= a.X && t.Y <= a.Y && t.Z <= a.Z {
		return 0, true
	}
	if t.Z <= a.X && t.Y <= a.Y && t.X <= a.Z {
		return 90, true
	}
	return 0, false
}

// CanContain scans the container's enclosed areas in order and returns the
// first that encloses every target independently. Targets are not packed
// against each other here.
func CanContain(container *scene.ObjectDefinition, targets ...*scene.ObjectDefinition) (*Fit, bool) {
	for i, area := range container.EnclosedAreas {
		rotations := make([]float64, 0, len(targets))
		ok := true
		for _, target := range targets {
			rot, fits := CanEnclose(area, target)
			if !fits {
				ok = false
				break
			}
			rotations = append(rotations, rot)
		}
		if ok {
			return &Fit{AreaIndex: i, Rotations: rotations}, true
		}
	}
	return nil, false
}

// CanContainBoth finds the first enclosed area and arrangement holding both
// targets at once. For each area it tries the eight combinations of
// side-by-side / front-to-back with each target at 0 or 90 degrees, accepting
// the first whose combined footprint (sum along the shared axis, max along
// the other) fits.
func CanContainBoth(container, a, b *scene.ObjectDefinition) (*PairFit, bool) {
	for i, area := range container.EnclosedAreas {
		for _, orientation := range []Orientation{SideBySide, FrontToBack} {
			for _, rotA := range []float64{0, 90} {
				for _, rotB := range []float64{0, 90} {
					ax, az := rotatedFootprint(a, rotA)
					bx, bz := rotatedFootprint(b, rotB)
					if a.Dimensions.Y > area.Dimensions.Y || b.Dimensions.Y > area.Dimensions.Y {
						continue
					}
					var fits bool
					if orientation == SideBySide {
						fits = ax+bx <= area.Dimensions.X && max(az, bz) <= area.Dimensions.Z
					} else {
						fits = max(ax, bx) <= area.Dimensions.X && az+bz <= area.Dimensions.Z
					}
					if fits {
						return &PairFit{
							AreaIndex:   i,
							RotationA:   rotA,
							RotationB:   rotB,
							Orientation: orientation,
						}, true
					}
				}
			}
		}
	}
	return nil, false
}

// rotatedFootprint returns the plan-view extents of a definition after an
// optional 90-degree rotation.
func rotatedFootprint(def *scene.ObjectDefinition, rotation float64) (x, z float64) {
	if rotation == 90 {
		return def.Dimensions.Z, def.Dimensions.X
	}
	return def.Dimensions.X, def.Dimensions.Z
}
