// internal/defs/battletech.go
package defs

import (
	"strconv"

	"go-battlemap/pkg/hexgrid"
)

// Builtin BattleTech tile library. Sprite ids follow the atlas
// extraction convention: bt_<sheet> for single-hex sprites and
// bt_<sheet>_<slot> for hexes cut out of a multi-hex sheet. Offsets
// assume a flat-top grid with odd columns shifted down and are listed
// in the sheet's slot order, anchor first.

// groupShapes maps a shape name to its anchor-relative footprint.
var groupShapes = map[string][]Offset{
	"v2":             {{0, 0}, {0, 1}},
	"v3":             {{0, 0}, {0, 1}, {0, 2}},
	"v4":             {{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	"diag_br":        {{0, 0}, {1, 0}},
	"left2":          {{0, 0}, {-1, -1}, {-1, 0}},
	"right2":         {{0, 0}, {1, -1}, {1, 0}},
	"diag3_r":        {{0, 0}, {1, 0}, {2, 1}},
	"v2_topright":    {{0, 0}, {0, 1}, {1, -1}},
	"h2v2_left_down": {{0, 0}, {0, 1}, {1, -1}, {1, 0}},
	"h2v2_right_down": {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	"cross4":         {{0, 0}, {0, 2}, {-1, 1}, {1, 1}},
	"col3_col2":      {{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}},
	"mega7":          {{0, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 0}, {1, -1}, {1, 0}},
	"mega9": {
		{0, 0}, {0, 1}, {0, 2},
		{1, -1}, {1, 0}, {1, 1},
		{2, 0}, {2, 1}, {2, 2},
	},
	"mega11": {
		{0, 0}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
		{2, 0}, {2, 1},
		{3, -1}, {3, 0}, {3, 1},
		{4, 0},
	},
	"mega23": {
		{0, 0}, {0, 1}, {0, 2}, {0, 3},
		{1, -1}, {1, 0}, {1, 1}, {1, 2}, {1, 3},
		{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4},
		{3, -1}, {3, 0}, {3, 1}, {3, 2}, {3, 3},
		{4, 0}, {4, 1}, {4, 2}, {4, 3},
	},
}

// builtinGroups lists every multi-hex sheet: id, display name,
// category and shape. Tiles and offsets are derived from the shape.
var builtinGroups = []struct {
	sheet    int
	name     string
	category TileCategory
	shape    string
}{
	{12, "Plain Mega", CategoryTerrain, "mega7"},
	{26, "Plain Field", CategoryTerrain, "mega23"},
	{58, "Plain Spread", CategoryTerrain, "mega11"},

	{13, "Woods 1", CategoryWoods, "v2"},
	{14, "Woods 2", CategoryWoods, "v2"},
	{16, "Woods 3", CategoryWoods, "left2"},
	{19, "Woods 4", CategoryWoods, "mega7"},
	{20, "Woods 5", CategoryWoods, "mega7"},

	{15, "Heavy Woods 1", CategoryWoodsHeavy, "v3"},
	{17, "Heavy Woods 2", CategoryWoodsHeavy, "h2v2_left_down"},
	{18, "Heavy Woods 3", CategoryWoodsHeavy, "col3_col2"},
	{21, "Heavy Woods 4", CategoryWoodsHeavy, "mega9"},

	{22, "Lake 1", CategoryWaterLake, "diag_br"},
	{23, "Lake 2", CategoryWaterLake, "right2"},
	{24, "Lake 3", CategoryWaterLake, "mega7"},
	{25, "Lake 4", CategoryWaterLake, "mega7"},

	{46, "Mid Building 1", CategoryUrban, "v2"},
	{47, "Mid Building 2", CategoryUrban, "diag_br"},
	{48, "Mid Building 3", CategoryUrban, "diag_br"},
	{49, "Mid Building 4", CategoryUrban, "diag_br"},
	{50, "Mid Building 5", CategoryUrban, "left2"},
	{51, "Large Building 1", CategoryUrban, "cross4"},
	{52, "Large Building 2", CategoryUrban, "mega7"},
	{53, "Large Building 3", CategoryUrban, "mega7"},
	{54, "Large Building 4", CategoryUrban, "mega7"},
	{55, "Large Building 5", CategoryUrban, "mega7"},
	{56, "Large Building 6", CategoryUrban, "mega7"},
	{57, "Large Building 7", CategoryUrban, "mega7"},
}

// builtinSingles is the per-terrain fallback sprite catalog.
var builtinSingles = map[TerrainType][]string{
	TerrainClear:      {"bt_11"},
	TerrainWoods:      {"bt_13_0", "bt_13_1", "bt_14_0", "bt_14_1"},
	TerrainWoodsHeavy: {"bt_15_0", "bt_15_1", "bt_15_2"},
	TerrainRough:      {"bt_59", "bt_60", "bt_61", "bt_62", "bt_63", "bt_64", "bt_65", "bt_66"},
	TerrainRubble:     {"bt_67", "bt_68", "bt_69", "bt_70"},
	TerrainUrban:      {"bt_40", "bt_41", "bt_42", "bt_43", "bt_44", "bt_45"},
	TerrainHazards:    {"bt_71", "bt_72", "bt_73", "bt_74"},
	TerrainWaterRiver: {"bt_27", "bt_28", "bt_29", "bt_30"},
	TerrainWaterLake:  {"bt_22_0", "bt_22_1", "bt_23_0"},
	TerrainWaterDepth: {"bt_22_0", "bt_22_1"},
}

// DefaultLibrary builds the compiled-in BattleTech library. The result
// is fresh on every call; callers may mutate it freely.
func DefaultLibrary() *TileLibrary {
	lib := &TileLibrary{
		Groups:  make(map[string]TileGroup, len(builtinGroups)),
		Singles: make(map[TerrainType][]string, len(builtinSingles)),
	}
	for _, b := range builtinGroups {
		offsets := groupShapes[b.shape]
		tiles := make([]string, len(offsets))
		for i := range offsets {
			tiles[i] = spriteID(b.sheet, i)
		}
		id := spriteID(b.sheet, -1)
		lib.Groups[id] = TileGroup{
			ID:       id,
			Name:     b.name,
			Category: b.category,
			Shape:    b.shape,
			Tiles:    tiles,
			Offsets:  append([]Offset(nil), offsets...),
		}
	}
	for t, ids := range builtinSingles {
		lib.Singles[t] = append([]string(nil), ids...)
	}
	return lib
}

func spriteID(sheet, slot int) string {
	if slot < 0 {
		return "bt_" + strconv.Itoa(sheet)
	}
	return "bt_" + strconv.Itoa(sheet) + "_" + strconv.Itoa(slot)
}

// DefaultRiverTile is the sprite used when a side pair has no mapping.
const DefaultRiverTile = "bt_27"

// riverTileBySides maps the unordered {entry, exit} side pair of a
// river hex to the sprite whose artwork carries water between those
// sides. Eight pairs have exact sprites; the remaining seven have no
// matching artwork and borrow the visually closest piece. The
// approximate choices are heuristic and pending sprite-atlas review —
// see riverApproxPairs in the tests.
var riverTileBySides = map[hexgrid.SidePair]string{
	// Exact matches.
	hexgrid.NewSidePair(hexgrid.SideN, hexgrid.SideS):   "bt_27",
	hexgrid.NewSidePair(hexgrid.SideNE, hexgrid.SideSW): "bt_28",
	hexgrid.NewSidePair(hexgrid.SideSE, hexgrid.SideNW): "bt_29",
	hexgrid.NewSidePair(hexgrid.SideN, hexgrid.SideSE):  "bt_30",
	hexgrid.NewSidePair(hexgrid.SideN, hexgrid.SideSW):  "bt_31_0",
	hexgrid.NewSidePair(hexgrid.SideS, hexgrid.SideNE):  "bt_31_1",
	hexgrid.NewSidePair(hexgrid.SideS, hexgrid.SideNW):  "bt_32_0",
	hexgrid.NewSidePair(hexgrid.SideNE, hexgrid.SideNW): "bt_32_1",
	// Nearest-sprite approximations.
	hexgrid.NewSidePair(hexgrid.SideN, hexgrid.SideNE):  "bt_30",
	hexgrid.NewSidePair(hexgrid.SideN, hexgrid.SideNW):  "bt_31_0",
	hexgrid.NewSidePair(hexgrid.SideS, hexgrid.SideSE):  "bt_30",
	hexgrid.NewSidePair(hexgrid.SideS, hexgrid.SideSW):  "bt_32_0",
	hexgrid.NewSidePair(hexgrid.SideSE, hexgrid.SideSW): "bt_32_1",
	hexgrid.NewSidePair(hexgrid.SideNE, hexgrid.SideSE): "bt_28",
	hexgrid.NewSidePair(hexgrid.SideNW, hexgrid.SideSW): "bt_29",
}

// RiverTileForSides returns the sprite for a river hex entered and
// left through the given sides. Unmapped pairs (including entry ==
// exit, which a meandering walk never produces) fall back to
// DefaultRiverTile.
func RiverTileForSides(entry, exit hexgrid.Side) string {
	if id, ok := riverTileBySides[hexgrid.NewSidePair(entry, exit)]; ok {
		return id
	}
	return DefaultRiverTile
}
