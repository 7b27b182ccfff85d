// internal/hypercube/design.go
package hypercube

import "github.com/scenekit/scenegen/internal/placement"

// Role names one slot in a hypercube's object roster.
type Role string

const (
	RoleTarget   Role = "target"
	RoleConfusor Role = "confusor"
	RoleContainer Role = "container"
	RoleObstacle Role = "obstacle"
	RoleOccluder Role = "occluder"
)

// placementOrder is the fixed dependency order roles resolve in: the confusor
// depends on the target, the container on both, obstacles and occluders on
// whichever of target or container anchors them.
var placementOrder = []Role{RoleTarget, RoleConfusor, RoleContainer, RoleObstacle, RoleOccluder}

// Frame is one scene slot of a hypercube design: the per-role location plans
// and which roles use their untrained shape variant in this scene.
type Frame struct {
	Name      string
	Plans     map[Role]placement.Plan
	Untrained map[Role]bool
}

// Plan returns the frame's plan for a role (PlanNone when absent).
func (f Frame) Plan(role Role) placement.Plan {
	return f.Plans[role]
}

// Design is a named hypercube family: the linked scene slots that share
// shapes, colors and room layout while differing along controlled axes.
type Design struct {
	Name   string
	Frames []Frame
}

// Roles returns every role any frame of the design uses.
func (d Design) Roles() []Role {
	seen := map[Role]bool{}
	var out []Role
	for _, role := range placementOrder {
		for _, f := range d.Frames {
			if f.Plan(role) != placement.PlanNone && !seen[role] {
				seen[role] = true
				out = append(out, role)
			}
		}
	}
	return out
}

// ContainerDesign is the retrieval family varying where the target sits
// relative to one shared container: next to it, out of reach, or inside it,
// with an untrained-shape scene for novelty exposure.
func ContainerDesign() Design {
	return Design{
		Name: "container",
		Frames: []Frame{
			{
				Name: "target_close",
				Plans: map[Role]placement.Plan{
					RoleTarget:    placement.PlanClose,
					RoleContainer: placement.PlanRandom,
				},
			},
			{
				Name: "target_far",
				Plans: map[Role]placement.Plan{
					RoleTarget:    placement.PlanFar,
					RoleContainer: placement.PlanRandom,
				},
			},
			{
				Name: "target_inside",
				Plans: map[Role]placement.Plan{
					RoleTarget:    placement.PlanInside,
					RoleContainer: placement.PlanRandom,
				},
			},
			{
				Name: "target_inside_untrained_container",
				Plans: map[Role]placement.Plan{
					RoleTarget:    placement.PlanInside,
					RoleContainer: placement.PlanRandom,
				},
				Untrained: map[Role]bool{RoleContainer: true},
			},
		},
	}
}

// ObstacleDesign varies whether an obstacle interposes between the performer
// and an in-front target.
func ObstacleDesign() Design {
	return Design{
		Name: "obstacle",
		Frames: []Frame{
			{
				Name: "target_front_clear",
				Plans: map[Role]placement.Plan{
					RoleTarget: placement.PlanFront,
				},
			},
			{
				Name: "target_front_obstructed",
				Plans: map[Role]placement.Plan{
					RoleTarget:   placement.PlanFront,
					RoleObstacle: placement.PlanBetween,
				},
			},
			{
				Name: "target_front_obstructed_untrained",
				Plans: map[Role]placement.Plan{
					RoleTarget:   placement.PlanFront,
					RoleObstacle: placement.PlanBetween,
				},
				Untrained: map[Role]bool{RoleObstacle: true},
			},
		},
	}
}

// OccluderDesign varies whether an occluder fully hides the target, with a
// confusor beside the target to control distinguishability.
func OccluderDesign() Design {
	return Design{
		Name: "occluder",
		Frames: []Frame{
			{
				Name: "target_visible",
				Plans: map[Role]placement.Plan{
					RoleTarget:   placement.PlanFront,
					RoleConfusor: placement.PlanClose,
				},
			},
			{
				Name: "target_hidden",
				Plans: map[Role]placement.Plan{
					RoleTarget:   placement.PlanFront,
					RoleConfusor: placement.PlanClose,
					RoleOccluder: placement.PlanBetween,
				},
			},
			{
				Name: "target_hidden_confusor_far",
				Plans: map[Role]placement.Plan{
					RoleTarget:   placement.PlanFront,
					RoleConfusor: placement.PlanFar,
					RoleOccluder: placement.PlanBetween,
				},
			},
		},
	}
}

// Designs maps design names to constructors for the batch driver.
var Designs = map[string]func() Design{
	"container": ContainerDesign,
	"obstacle":  ObstacleDesign,
	"occluder":  OccluderDesign,
}
