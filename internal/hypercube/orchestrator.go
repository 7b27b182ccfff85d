// internal/hypercube/orchestrator.go
package hypercube

import (
	"errors"
	"log/slog"
	"math/rand"

	"github.com/scenekit/scenegen/internal/containment"
	"github.com/scenekit/scenegen/internal/geom"
	"github.com/scenekit/scenegen/internal/placement"
	"github.com/scenekit/scenegen/internal/scene"
)

// Generator orchestrates one hypercube family at a time: it selects object
// definitions per role, sequences placement and containment in dependency
// order, materializes one instance per scene, and retries the whole attempt
// on failure.
type Generator struct {
	Room scene.Room
	RNG  *rand.Rand
	Log  *slog.Logger
	Seed int64
}

// Stats summarizes one generation run for logging and metrics.
type Stats struct {
	Attempts          int
	PlacementFailures int
	PerformerRedraws  int
	// PlanResolutions counts the committed attempt's shared locations per
	// plan value. Empty until an attempt commits.
	PlanResolutions map[string]int
}

// New builds a generator over the given room with a seeded RNG.
func New(room scene.Room, rng *rand.Rand, seed int64, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.Default()
	}
	return &Generator{Room: room, RNG: rng, Log: log, Seed: seed}
}

// locKey identifies one shared resolved location. Scenes whose frame assigns
// the same plan value to a role receive the identical location.
type locKey struct {
	role Role
	plan placement.Plan
}

// attemptState is the mutable placement context of one whole-hypercube
// attempt.
type attemptState struct {
	defs      roleDefinitions
	bounds    *placement.Bounds
	searcher  *placement.Searcher
	performer scene.PerformerStart
	locations map[locKey]*placement.Location
	// anchors are the resolution-time instances later placements anchor on.
	anchors map[Role]*scene.ObjectInstance
}

// Generate runs the whole-attempt retry loop for one design. It returns a
// committed hypercube or the domain error of the final failed attempt; no
// partially valid hypercube is ever returned.
func (g *Generator) Generate(design Design) (*scene.Hypercube, *Stats, error) {
	stats := &Stats{}
	bounds := placement.NewBounds()

	var lastErr error
	for try := 0; try < placement.MaxTries; try++ {
		stats.Attempts++

		hc, err := g.attempt(design, bounds, stats)
		if err == nil {
			g.Log.Info("hypercube committed",
				"design", design.Name, "attempts", stats.Attempts, "scenes", len(hc.Scenes))
			return hc, stats, nil
		}

		var domainErr *Error
		if errors.As(err, &domainErr) && domainErr.Kind == FailureDefinition {
			// Geometry retries cannot fix an unsatisfiable pairing rule.
			return nil, stats, err
		}
		stats.PlacementFailures++
		lastErr = err
		g.Log.Debug("hypercube attempt failed",
			"design", design.Name, "attempt", stats.Attempts, "error", err)
	}

	return nil, stats, &Error{
		Kind:  FailureAttempts,
		Cause: "exhausted whole-attempt retries for design " + design.Name,
		Err:   lastErr,
	}
}

// attempt runs the linear phase pipeline once.
func (g *Generator) attempt(design Design, bounds *placement.Bounds, stats *Stats) (*scene.Hypercube, error) {
	// Phase 1: reset.
	bounds.Reset()
	st := &attemptState{
		bounds:    bounds,
		searcher:  placement.NewSearcher(g.Room, bounds, g.RNG),
		locations: map[locKey]*placement.Location{},
		anchors:   map[Role]*scene.ObjectInstance{},
	}
	st.performer = st.searcher.DrawPerformer()
	st.bounds.Append(st.performer.Footprint())

	// Phase 2: definition selection.
	defs, err := g.selectDefinitions(design, g.RNG)
	if err != nil {
		return nil, err
	}
	st.defs = defs

	// Phase 3: anchored placement in dependency order.
	if err := g.resolveFrontBack(design, st, stats); err != nil {
		return nil, err
	}
	if err := g.resolveContainers(design, st); err != nil {
		return nil, err
	}
	if err := g.resolveTargetPlans(design, st); err != nil {
		return nil, err
	}
	if err := g.resolveRelativePlans(design, st); err != nil {
		return nil, err
	}

	// Phase 4: materialize scenes (containment happens per frame) and
	// validate.
	hc := scene.NewHypercube(design.Name, g.Seed)
	for _, frame := range design.Frames {
		sc, err := g.materializeFrame(frame, st)
		if err != nil {
			return nil, err
		}
		hc.Scenes = append(hc.Scenes, sc)
	}

	// Phase 5: commit extras.
	g.decorate(hc, st)
	g.declashMaterials(hc)

	stats.PlanResolutions = map[string]int{}
	for key := range st.locations {
		stats.PlanResolutions[key.plan.String()]++
	}
	return hc, nil
}

// resolveFrontBack places every (role, front/back) plan the design uses,
// redrawing the performer and restarting the phase when the performer is
// boxed in.
func (g *Generator) resolveFrontBack(design Design, st *attemptState, stats *Stats) error {
	keys := designPlanKeys(design, placement.PlanFront, placement.PlanBack)
	if len(keys) == 0 {
		return nil
	}

	for redraw := 0; redraw < placement.MaxTries; redraw++ {
		err := g.placeFrontBack(keys, st)
		if err == nil {
			return nil
		}
		if !errors.Is(err, placement.ErrPerformerBoxedIn) {
			return placementFailure("front/back placement", err)
		}
		// The phase runs first, so resetting the registry only discards
		// this phase's own partial placements.
		stats.PerformerRedraws++
		st.bounds.Reset()
		for k := range st.locations {
			delete(st.locations, k)
		}
		st.performer = st.searcher.DrawPerformer()
		st.bounds.Append(st.performer.Footprint())
	}
	return placementFailure("front/back placement", placement.ErrPerformerBoxedIn)
}

func (g *Generator) placeFrontBack(keys []locKey, st *attemptState) error {
	for _, key := range keys {
		if _, done := st.locations[key]; done {
			continue
		}
		def := st.defs.get(key.role, false)
		var (
			loc *placement.Location
			err error
		)
		if key.plan == placement.PlanFront {
			loc, err = st.searcher.InFront(def, st.performer)
		} else {
			loc, err = st.searcher.Behind(def, st.performer)
		}
		if err != nil {
			return err
		}
		st.locations[key] = loc
		g.setAnchor(st, key.role, def, loc)
	}
	return nil
}

// resolveContainers places the shared container before anything anchors on
// it.
func (g *Generator) resolveContainers(design Design, st *attemptState) error {
	for _, key := range designPlanKeys(design, placement.PlanRandom) {
		if key.role != RoleContainer {
			continue
		}
		def := st.defs.get(RoleContainer, false)
		loc, err := st.searcher.Random(def, st.performer)
		if err != nil {
			return placementFailure("container placement", err)
		}
		st.locations[key] = loc
		g.setAnchor(st, RoleContainer, def, loc)
	}
	return nil
}

// resolveTargetPlans resolves the target's remaining plan values. Close and
// far anchor on the container.
func (g *Generator) resolveTargetPlans(design Design, st *attemptState) error {
	def := st.defs.get(RoleTarget, false)
	for _, key := range designPlanKeys(design, placement.PlanRandom, placement.PlanClose, placement.PlanFar) {
		if key.role != RoleTarget {
			continue
		}
		var (
			loc *placement.Location
			err error
		)
		switch key.plan {
		case placement.PlanRandom:
			loc, err = st.searcher.Random(def, st.performer)
		case placement.PlanClose, placement.PlanFar:
			anchor := st.anchors[RoleContainer]
			if anchor == nil {
				return placementFailure("target placement", errors.New("close/far target has no container anchor"))
			}
			loc, err = st.searcher.RelativeTo(def, anchor, st.performer, placement.RelativeOptions{
				Far: key.plan == placement.PlanFar,
			})
		}
		if err != nil {
			return placementFailure("target placement", err)
		}
		st.locations[key] = loc
		if st.anchors[RoleTarget] == nil {
			g.setAnchor(st, RoleTarget, def, loc)
		}
	}
	return nil
}

// resolveRelativePlans resolves confusor, obstacle and occluder locations
// relative to the target anchor.
func (g *Generator) resolveRelativePlans(design Design, st *attemptState) error {
	keys := designPlanKeys(design,
		placement.PlanClose, placement.PlanFar, placement.PlanBetween, placement.PlanRandom)
	for _, key := range keys {
		if key.role == RoleTarget || key.role == RoleContainer {
			continue
		}
		def := st.defs.get(key.role, false)

		var (
			loc *placement.Location
			err error
		)
		if key.plan == placement.PlanRandom {
			loc, err = st.searcher.Random(def, st.performer)
		} else {
			anchor := st.anchors[RoleTarget]
			if anchor == nil {
				return placementFailure(string(key.role)+" placement", errors.New("no target anchor resolved"))
			}
			opts := placement.RelativeOptions{}
			switch key.plan {
			case placement.PlanClose:
				opts.Adjacent = true
			case placement.PlanFar:
				opts.Far = true
				opts.Unreachable = true
			case placement.PlanBetween:
				if key.role == RoleOccluder {
					opts.Obstruct = geom.ObstructionFull
				} else {
					opts.Obstruct = geom.ObstructionPartial
				}
			}
			loc, err = st.searcher.RelativeTo(def, anchor, st.performer, opts)
		}
		if err != nil {
			return placementFailure(string(key.role)+" placement", err)
		}
		st.locations[key] = loc
	}
	return nil
}

// materializeFrame builds one scene: an instance per role using the frame's
// trained/untrained variant at the shared resolved location, with containment
// applied for inside plans.
func (g *Generator) materializeFrame(frame Frame, st *attemptState) (*scene.Scene, error) {
	sc := scene.NewScene(frame.Name, g.Room, st.performer)

	instances := map[Role]*scene.ObjectInstance{}
	var insidePlans []Role

	for _, role := range placementOrder {
		plan := frame.Plan(role)
		if plan == placement.PlanNone {
			continue
		}
		if plan == placement.PlanInside {
			insidePlans = append(insidePlans, role)
			continue
		}
		loc, ok := st.locations[locKey{role, plan}]
		if !ok {
			return nil, placementFailure(string(role)+" materialization",
				errors.New("no resolved location for plan "+plan.String()))
		}
		inst := scene.NewInstance(st.defs.get(role, frame.Untrained[role]))
		inst.SetPose(loc.Position, loc.Rotation)
		// Shared locations are resolved against the trained definition; the
		// untrained variant may carry a larger footprint at the same pose.
		if err := validateFootprint(sc, inst, instances); err != nil {
			return nil, placementFailure(string(role)+" materialization", err)
		}
		instances[role] = inst
		sc.AddObject(inst)
	}

	if err := g.placeInside(frame, st, sc, instances, insidePlans); err != nil {
		return nil, err
	}

	// A scene without a target is never valid.
	if instances[RoleTarget] == nil {
		return nil, placementFailure("scene validation",
			errors.New("scene "+frame.Name+" ended without a target instance"))
	}
	return sc, nil
}

// placeInside materializes the frame's contained roles into its container
// instance.
func (g *Generator) placeInside(
	frame Frame,
	st *attemptState,
	sc *scene.Scene,
	instances map[Role]*scene.ObjectInstance,
	roles []Role,
) error {
	if len(roles) == 0 {
		return nil
	}
	container := instances[RoleContainer]
	if container == nil {
		return placementFailure("containment", errors.New("inside plan without a container in scene "+frame.Name))
	}

	for _, role := range roles {
		def := st.defs.get(role, frame.Untrained[role])
		inst := scene.NewInstance(def)
		instances[role] = inst
		sc.AddObject(inst)
	}

	targetInst := instances[RoleTarget]
	confusorInst := instances[RoleConfusor]

	if len(roles) == 2 && targetInst != nil && confusorInst != nil {
		fit, ok := containment.CanContainBoth(container.Definition, targetInst.Definition, confusorInst.Definition)
		if !ok {
			return placementFailure("containment",
				errors.New("container cannot hold target and confusor together in scene "+frame.Name))
		}
		if err := containment.PlaceBothInside(targetInst, confusorInst, container, fit); err != nil {
			return placementFailure("containment", err)
		}
		return nil
	}

	for _, role := range roles {
		inst := instances[role]
		fit, ok := containment.CanContain(container.Definition, inst.Definition)
		if !ok {
			return placementFailure("containment",
				errors.New("container cannot hold "+string(role)+" in scene "+frame.Name))
		}
		if err := containment.PlaceInside(inst, container, fit.AreaIndex, fit.Rotations[0]); err != nil {
			return placementFailure("containment", err)
		}
	}
	return nil
}

// validateFootprint re-checks the room and overlap invariants for a
// materialized instance against everything already standing in its scene.
func validateFootprint(sc *scene.Scene, inst *scene.ObjectInstance, placed map[Role]*scene.ObjectInstance) error {
	if !sc.Room.ContainsRect(inst.BoundingRect) {
		return errors.New(inst.Type + " footprint leaves the room")
	}
	if inst.BoundingRect.Intersects(sc.Performer.Footprint()) {
		return errors.New(inst.Type + " footprint overlaps the performer")
	}
	for _, other := range placed {
		if inst.BoundingRect.Intersects(other.BoundingRect) {
			return errors.New(inst.Type + " footprint overlaps " + other.Type)
		}
	}
	return nil
}

// setAnchor records the resolution-time instance later phases anchor on.
func (g *Generator) setAnchor(st *attemptState, role Role, def *scene.ObjectDefinition, loc *placement.Location) {
	inst := scene.NewInstance(def)
	inst.SetPose(loc.Position, loc.Rotation)
	st.anchors[role] = inst
}

// designPlanKeys lists the distinct (role, plan) pairs the design assigns,
// restricted to the given plans, in stable role order.
func designPlanKeys(design Design, plans ...placement.Plan) []locKey {
	wanted := map[placement.Plan]bool{}
	for _, p := range plans {
		wanted[p] = true
	}
	seen := map[locKey]bool{}
	var out []locKey
	for _, role := range placementOrder {
		for _, frame := range design.Frames {
			plan := frame.Plan(role)
			if !wanted[plan] {
				continue
			}
			key := locKey{role, plan}
			if !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}
