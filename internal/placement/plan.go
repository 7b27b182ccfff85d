// internal/placement/plan.go
package placement

// Plan is the placement policy assigned to one object role in one scene.
// Scenes of a hypercube that share a plan value for a role must receive the
// identical resolved location for that role.
type Plan int

const (
	PlanNone Plan = iota
	PlanRandom
	PlanFront
	PlanBack
	PlanClose
	PlanFar
	PlanBetween
	PlanInside
)

func (p Plan) String() string {
	switch p {
	case PlanRandom:
		return "random"
	case PlanFront:
		return "front"
	case PlanBack:
		return "back"
	case PlanClose:
		return "close"
	case PlanFar:
		return "far"
	case PlanBetween:
		return "between"
	case PlanInside:
		return "inside"
	default:
		return "none"
	}
}
