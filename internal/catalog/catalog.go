// internal/catalog/catalog.go
package catalog

import "github.com/scenekit/scenegen/internal/scene"

// The definition tables below are the compiled-in object catalog. They are
// loaded once and treated as immutable; callers must go through Finalize,
// which deep-copies, before binding a definition to a scene.

func v3(x, y, z float64) scene.Vector3 {
	return scene.Vector3{X: x, Y: y, Z: z}
}

func unitScale() scene.Vector3 {
	return scene.Vector3{X: 1, Y: 1, Z: 1}
}

// pickupables are candidate targets and confusors.
var pickupables = []*scene.ObjectDefinition{
	{
		Type:       "ball",
		Pickupable: true,
		Moveable:   true,
		Scale:      unitScale(),
		MaterialCategories: []string{"plastic", "rubber"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.25, 0.25, 0.25), Mass: 0.5, Scale: unitScale()},
			{Dimensions: v3(0.5, 0.5, 0.5), Mass: 1, Scale: v3(2, 2, 2)},
		},
	},
	{
		Type:       "block",
		Pickupable: true,
		Moveable:   true,
		Stackable:  true,
		Scale:      unitScale(),
		MaterialCategories: []string{"wood", "plastic"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.2, 0.2, 0.2), Mass: 0.4, Scale: unitScale()},
			{Dimensions: v3(0.4, 0.4, 0.4), Mass: 0.8, Scale: v3(2, 2, 2)},
		},
	},
	{
		Type:       "duck",
		Pickupable: true,
		Moveable:   true,
		Scale:      unitScale(),
		Offset:     v3(0, 0, 0.03),
		MaterialCategories: []string{"rubber", "plastic"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.21, 0.25, 0.34), Mass: 0.3, Scale: unitScale(), Offset: v3(0, 0, 0.03)},
		},
	},
	{
		Type:       "toy_car",
		Pickupable: true,
		Moveable:   true,
		Scale:      unitScale(),
		MaterialCategories: []string{"metal", "plastic"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.25, 0.2, 0.41), Mass: 0.5, Scale: unitScale()},
		},
	},
	{
		Type:       "trophy",
		Untrained:  true,
		Pickupable: true,
		Moveable:   true,
		Scale:      unitScale(),
		MaterialCategories: []string{"metal"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.19, 0.3, 0.14), Mass: 0.3, Scale: unitScale()},
			{Dimensions: v3(0.38, 0.6, 0.28), Mass: 0.6, Scale: v3(2, 2, 2)},
		},
	},
	{
		Type:       "bowl",
		Untrained:  true,
		Pickupable: true,
		Moveable:   true,
		Scale:      unitScale(),
		MaterialCategories: []string{"plastic", "wood"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.25, 0.1, 0.25), Mass: 0.3, Scale: unitScale()},
		},
	},
}

// containers are openable receptacles with interior volumes.
var containers = []*scene.ObjectDefinition{
	{
		Type:       "chest",
		Receptacle: true,
		Openable:   true,
		Moveable:   true,
		Scale:      unitScale(),
		MaterialCategories: []string{"wood", "metal"},
		ChooseSizes: []scene.SizeChoice{
			{
				Dimensions: v3(0.83, 0.42, 0.55), Mass: 5, Scale: unitScale(),
				EnclosedAreas: []scene.EnclosedArea{{
					ID:         "chest_interior",
					Position:   v3(0, 0.2, 0),
					Dimensions: v3(0.68, 0.31, 0.41),
				}},
			},
			{
				Dimensions: v3(1.2, 0.7, 0.8), Mass: 10, Scale: v3(1.45, 1.65, 1.45),
				EnclosedAreas: []scene.EnclosedArea{{
					ID:         "chest_interior",
					Position:   v3(0, 0.33, 0),
					Dimensions: v3(1.0, 0.52, 0.6),
				}},
			},
		},
	},
	{
		Type:       "case",
		Receptacle: true,
		Openable:   true,
		Moveable:   true,
		Pickupable: true,
		Scale:      unitScale(),
		MaterialCategories: []string{"plastic", "metal"},
		ChooseSizes: []scene.SizeChoice{
			{
				Dimensions: v3(0.71, 0.26, 0.42), Mass: 2, Scale: unitScale(),
				EnclosedAreas: []scene.EnclosedArea{{
					ID:         "case_interior",
					Position:   v3(0, 0.12, 0),
					Dimensions: v3(0.62, 0.21, 0.36),
				}},
			},
		},
	},
	{
		Type:       "crate",
		Untrained:  true,
		Receptacle: true,
		Openable:   true,
		Moveable:   true,
		Scale:      unitScale(),
		MaterialCategories: []string{"wood"},
		ChooseSizes: []scene.SizeChoice{
			{
				Dimensions: v3(0.8, 0.52, 0.8), Mass: 7, Scale: unitScale(),
				EnclosedAreas: []scene.EnclosedArea{{
					ID:         "crate_interior",
					Position:   v3(0, 0.25, 0),
					Dimensions: v3(0.68, 0.41, 0.68),
				}},
			},
			{
				Dimensions: v3(1.1, 0.72, 1.1), Mass: 12, Scale: v3(1.38, 1.38, 1.38),
				EnclosedAreas: []scene.EnclosedArea{{
					ID:         "crate_interior",
					Position:   v3(0, 0.35, 0),
					Dimensions: v3(0.95, 0.6, 0.95),
				}},
			},
		},
	},
	{
		Type:       "suitcase",
		Untrained:  true,
		Receptacle: true,
		Openable:   true,
		Moveable:   true,
		Pickupable: true,
		Scale:      unitScale(),
		MaterialCategories: []string{"fabric", "plastic"},
		ChooseSizes: []scene.SizeChoice{
			{
				Dimensions: v3(0.66, 0.3, 0.48), Mass: 3, Scale: unitScale(),
				EnclosedAreas: []scene.EnclosedArea{{
					ID:         "suitcase_interior",
					Position:   v3(0, 0.14, 0),
					Dimensions: v3(0.56, 0.21, 0.4),
				}},
			},
		},
	},
}

// obstacles block movement without fully hiding what is behind them.
var obstacles = []*scene.ObjectDefinition{
	{
		Type:     "chair",
		Obstacle: true,
		Moveable: true,
		Scale:    unitScale(),
		MaterialCategories: []string{"wood", "metal", "plastic"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.54, 1.04, 0.46), Mass: 4, Scale: unitScale()},
		},
	},
	{
		Type:     "stool",
		Obstacle: true,
		Moveable: true,
		Scale:    unitScale(),
		MaterialCategories: []string{"wood", "metal"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.4, 0.65, 0.4), Mass: 3, Scale: unitScale()},
		},
	},
	{
		Type:     "coat_rack",
		Untrained: true,
		Obstacle: true,
		Moveable: true,
		Scale:    unitScale(),
		MaterialCategories: []string{"wood", "metal"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.45, 1.7, 0.45), Mass: 5, Scale: unitScale()},
		},
	},
	{
		// Sized to stay within the similarity ratio of both the chair and
		// the stool while clearing every pickupable's width and height.
		Type:     "side_table",
		Untrained: true,
		Obstacle: true,
		Moveable: true,
		Scale:    unitScale(),
		MaterialCategories: []string{"wood", "metal"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.55, 0.6, 0.55), Mass: 6, Scale: unitScale()},
		},
	},
}

// occluders are large enough to fully hide a target behind them.
var occluders = []*scene.ObjectDefinition{
	{
		Type:     "sofa",
		Occluder: true,
		Obstacle: true,
		Scale:    unitScale(),
		MaterialCategories: []string{"fabric"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(2.06, 0.84, 0.89), Mass: 45, Scale: unitScale()},
		},
	},
	{
		Type:     "bookcase",
		Occluder: true,
		Obstacle: true,
		Receptacle: true,
		Scale:    unitScale(),
		MaterialCategories: []string{"wood", "metal"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(1.0, 1.5, 0.4), Mass: 25, Scale: unitScale()},
			{Dimensions: v3(1.0, 2.0, 0.4), Mass: 30, Scale: v3(1, 1.33, 1)},
		},
	},
	{
		Type:     "wardrobe",
		Untrained: true,
		Occluder: true,
		Obstacle: true,
		Receptacle: true,
		Openable: true,
		Scale:    unitScale(),
		MaterialCategories: []string{"wood"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(1.07, 2.1, 0.49), Mass: 50, Scale: unitScale()},
		},
	},
}

// decoratives are non-critical set dressing placed only after an attempt
// commits.
var decoratives = []*scene.ObjectDefinition{
	{
		Type:     "potted_plant",
		Scale:    unitScale(),
		MaterialCategories: []string{"plastic"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.35, 0.75, 0.35), Mass: 2, Scale: unitScale()},
		},
	},
	{
		Type:     "floor_lamp",
		Scale:    unitScale(),
		MaterialCategories: []string{"metal"},
		ChooseSizes: []scene.SizeChoice{
			{Dimensions: v3(0.33, 1.5, 0.33), Mass: 3, Scale: unitScale()},
		},
	},
}

// Pickupables returns candidate target/confusor definitions.
func Pickupables() []*scene.ObjectDefinition { return pickupables }

// Containers returns openable receptacle definitions.
func Containers() []*scene.ObjectDefinition { return containers }

// Obstacles returns obstacle definitions.
func Obstacles() []*scene.ObjectDefinition { return obstacles }

// Occluders returns occluder definitions.
func Occluders() []*scene.ObjectDefinition { return occluders }

// Decoratives returns non-critical set dressing definitions.
func Decoratives() []*scene.ObjectDefinition { return decoratives }
