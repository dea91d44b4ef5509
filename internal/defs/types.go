// internal/defs/types.go
package defs

import "sort"

// TerrainType identifies what occupies a hex after generation.
type TerrainType string

const (
	TerrainClear      TerrainType = "clear"
	TerrainWoods      TerrainType = "woods"
	TerrainWoodsHeavy TerrainType = "woods_heavy"
	TerrainRough      TerrainType = "rough"
	TerrainRubble     TerrainType = "rubble"
	TerrainUrban      TerrainType = "urban"
	TerrainHazards    TerrainType = "hazards"
	TerrainWaterRiver TerrainType = "water_river"
	TerrainWaterLake  TerrainType = "water_lake"
	TerrainWaterDepth TerrainType = "water_depth0"
)

// AllTerrainTypes lists every terrain type in a stable order.
var AllTerrainTypes = []TerrainType{
	TerrainClear, TerrainWoods, TerrainWoodsHeavy, TerrainRough,
	TerrainRubble, TerrainUrban, TerrainHazards,
	TerrainWaterRiver, TerrainWaterLake, TerrainWaterDepth,
}

// TerrainWaterAlias stands for all three water subtypes in proximity
// queries.
const TerrainWaterAlias TerrainType = "water"

// IsWater reports whether t is one of the three water subtypes.
func (t TerrainType) IsWater() bool {
	return t == TerrainWaterRiver || t == TerrainWaterLake || t == TerrainWaterDepth
}

// Matches reports whether t satisfies query, expanding the "water"
// alias to every water subtype.
func (t TerrainType) Matches(query TerrainType) bool {
	if query == TerrainWaterAlias {
		return t.IsWater()
	}
	return t == query
}

// TileCategory classifies tile groups and generated clusters for
// matching them against each other.
type TileCategory string

const (
	CategoryTerrain    TileCategory = "terrain"
	CategoryWoods      TileCategory = "woods"
	CategoryWoodsHeavy TileCategory = "woods_heavy"
	CategoryWaterRiver TileCategory = "water_river"
	CategoryWaterLake  TileCategory = "water_lake"
	CategoryUrban      TileCategory = "urban"
	CategoryRough      TileCategory = "rough"
	CategoryRubble     TileCategory = "rubble"
	CategoryHazards    TileCategory = "hazards"
)

// CategoryForTerrain maps a terrain type to the category its clusters
// are packed under.
func CategoryForTerrain(t TerrainType) TileCategory {
	switch t {
	case TerrainWoods:
		return CategoryWoods
	case TerrainWoodsHeavy:
		return CategoryWoodsHeavy
	case TerrainRough:
		return CategoryRough
	case TerrainRubble:
		return CategoryRubble
	case TerrainUrban:
		return CategoryUrban
	case TerrainHazards:
		return CategoryHazards
	case TerrainWaterRiver:
		return CategoryWaterRiver
	case TerrainWaterLake, TerrainWaterDepth:
		return CategoryWaterLake
	default:
		return CategoryTerrain
	}
}

// CompatibleCategories returns the group categories that may cover a
// cluster of the given category. Heavy woods clusters accept plain
// woods groups as filler; everything else only matches itself.
func CompatibleCategories(c TileCategory) []TileCategory {
	if c == CategoryWoodsHeavy {
		return []TileCategory{CategoryWoodsHeavy, CategoryWoods}
	}
	return []TileCategory{c}
}

// Offset is an anchor-relative hex displacement. Offsets are never
// rotated or mirrored: each slot's artwork is baked for its specific
// relative position.
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// TileGroup is a pre-rendered multi-hex sprite pattern. Tiles[i] is
// the sprite occupying the hex at Offsets[i] relative to the anchor;
// index 0 is the anchor itself.
type TileGroup struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category TileCategory `json:"category"`
	Shape    string       `json:"shape"`
	Tiles    []string     `json:"tiles"`
	Offsets  []Offset     `json:"offsets"`
}

// Size returns the number of hexes the group covers.
func (g TileGroup) Size() int { return len(g.Tiles) }

// TileLibrary holds every tile group and the per-terrain single-tile
// catalogs the packer falls back to.
type TileLibrary struct {
	Groups  map[string]TileGroup     `json:"groups"`
	Singles map[TerrainType][]string `json:"singles"`
}

// GroupsForCategories returns the groups matching any of the given
// categories, sorted largest first. Ties break on ID so the packing
// order is stable under a fixed seed.
func (l *TileLibrary) GroupsForCategories(cats ...TileCategory) []TileGroup {
	if l == nil {
		return nil
	}
	var out []TileGroup
	for _, g := range l.Groups {
		for _, c := range cats {
			if g.Category == c {
				out = append(out, g)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size() != out[j].Size() {
			return out[i].Size() > out[j].Size()
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SinglesFor returns the single-hex sprite candidates for a terrain
// type. The result may be empty for an empty or missing library.
func (l *TileLibrary) SinglesFor(t TerrainType) []string {
	if l == nil {
		return nil
	}
	return l.Singles[t]
}
