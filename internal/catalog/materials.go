// internal/catalog/materials.go
package catalog

// Material pairs a renderable material id with the color words a viewer
// would use for it. The solver only ever reads these entries.
type Material struct {
	ID     string
	Colors []string
}

// MaterialCategories groups materials the way definitions reference them.
// Loaded once at startup; never written at runtime.
var MaterialCategories = map[string][]Material{
	"wood": {
		{ID: "wood/dark_oak", Colors: []string{"brown", "black"}},
		{ID: "wood/light_birch", Colors: []string{"brown", "yellow"}},
		{ID: "wood/white_pine", Colors: []string{"white"}},
	},
	"metal": {
		{ID: "metal/brushed_steel", Colors: []string{"grey"}},
		{ID: "metal/hammered_copper", Colors: []string{"orange", "brown"}},
		{ID: "metal/green_enamel", Colors: []string{"green"}},
	},
	"plastic": {
		{ID: "plastic/glossy_red", Colors: []string{"red"}},
		{ID: "plastic/glossy_blue", Colors: []string{"blue"}},
		{ID: "plastic/matte_yellow", Colors: []string{"yellow"}},
		{ID: "plastic/matte_purple", Colors: []string{"purple"}},
	},
	"fabric": {
		{ID: "fabric/grey_weave", Colors: []string{"grey"}},
		{ID: "fabric/red_velvet", Colors: []string{"red"}},
		{ID: "fabric/cream_linen", Colors: []string{"white", "yellow"}},
	},
	"rubber": {
		{ID: "rubber/flat_black", Colors: []string{"black"}},
		{ID: "rubber/flat_blue", Colors: []string{"blue"}},
	},
}

// FloorMaterials and WallMaterials are the room surface candidates the
// orchestrator adjusts when they would visually clash with placed objects.
var FloorMaterials = []Material{
	{ID: "floor/grey_carpet", Colors: []string{"grey"}},
	{ID: "floor/brown_boards", Colors: []string{"brown"}},
	{ID: "floor/blue_carpet", Colors: []string{"blue"}},
	{ID: "floor/white_tile", Colors: []string{"white"}},
}

var WallMaterials = []Material{
	{ID: "wall/off_white_drywall", Colors: []string{"white"}},
	{ID: "wall/yellow_drywall", Colors: []string{"yellow"}},
	{ID: "wall/green_drywall", Colors: []string{"green"}},
	{ID: "wall/red_brick", Colors: []string{"red"}},
}

// materialsByCategory returns the materials for a category, or nil for an
// unknown category.
func materialsByCategory(category string) []Material {
	return MaterialCategories[category]
}
