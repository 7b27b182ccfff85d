// internal/containment/place.go
package containment

import (
	"fmt"

	"github.com/scenekit/scenegen/internal/scene"
)

// PlaceInside repositions the instance to the floor center of the container's
// enclosed area, applies the fitting rotation, recomputes its bounding
// rectangle, and links the parent/child relationship. Calling it again with
// the same area and rotation yields an identical pose.
func PlaceInside(inst, container *scene.ObjectInstance, areaIndex int, rotation float64) error {
	area, err := enclosedArea(container, areaIndex)
	if err != nil {
		return err
	}

	inst.SetPose(areaPose(inst, container, area, 0, 0), container.Rotation+rotation)
	link(inst, container, area)
	return nil
}

// PlaceBothInside positions two instances symmetrically about the area center
// along the axis picked by the orientation.
func PlaceBothInside(a, b, container *scene.ObjectInstance, fit *PairFit) error {
	area, err := enclosedArea(container, fit.AreaIndex)
	if err != nil {
		return err
	}

	ax, az := rotatedFootprint(a.Definition, fit.RotationA)
	bx, bz := rotatedFootprint(b.Definition, fit.RotationB)

	var shiftAX, shiftAZ, shiftBX, shiftBZ float64
	if fit.Orientation == SideBySide {
		// Each object's center sits half its own width from the shared
		// midline, keeping the pair symmetric about the area center.
		shiftAX = -ax / 2
		shiftBX = bx / 2
	} else {
		shiftAZ = -az / 2
		shiftBZ = bz / 2
	}

	a.SetPose(areaPose(a, container, area, shiftAX, shiftAZ), container.Rotation+fit.RotationA)
	b.SetPose(areaPose(b, container, area, shiftBX, shiftBZ), container.Rotation+fit.RotationB)
	link(a, container, area)
	link(b, container, area)
	return nil
}

func enclosedArea(container *scene.ObjectInstance, areaIndex int) (scene.EnclosedArea, error) {
	areas := container.Definition.EnclosedAreas
	if areaIndex < 0 || areaIndex >= len(areas) {
		return scene.EnclosedArea{}, fmt.Errorf(
			"container %s has no enclosed area %d", container.Type, areaIndex)
	}
	return areas[areaIndex], nil
}

// areaPose computes the contained instance's position: the area center in
// scene space, offset by the instance's own center offset, dropped to the
// area floor by half the area height.
func areaPose(inst, container *scene.ObjectInstance, area scene.EnclosedArea, shiftX, shiftZ float64) scene.Vector3 {
	d := inst.Definition
	return scene.Vector3{
		X: container.Position.X + area.Position.X - d.Offset.X + shiftX,
		Y: container.Position.Y + area.Position.Y - area.Dimensions.Y/2 + d.PositionY,
		Z: container.Position.Z + area.Position.Z - d.Offset.Z + shiftZ,
	}
}

func link(inst, container *scene.ObjectInstance, area scene.EnclosedArea) {
	inst.LocationParent = container.ID
	inst.ParentArea = area.ID
	for _, id := range container.Children {
		if id == inst.ID {
			return
		}
	}
	container.Children = append(container.Children, inst.ID)
}
