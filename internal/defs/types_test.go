// internal/defs/types_test.go
package defs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerrainMatches_WaterAlias(t *testing.T) {
	require.True(t, TerrainWaterRiver.Matches(TerrainWaterAlias))
	require.True(t, TerrainWaterLake.Matches(TerrainWaterAlias))
	require.True(t, TerrainWaterDepth.Matches(TerrainWaterAlias))
	require.False(t, TerrainClear.Matches(TerrainWaterAlias))
	require.True(t, TerrainWoods.Matches(TerrainWoods))
	require.False(t, TerrainWoods.Matches(TerrainWoodsHeavy))
}

func TestCategoryForTerrain(t *testing.T) {
	require.Equal(t, CategoryTerrain, CategoryForTerrain(TerrainClear))
	require.Equal(t, CategoryWaterRiver, CategoryForTerrain(TerrainWaterRiver))
	require.Equal(t, CategoryWaterLake, CategoryForTerrain(TerrainWaterLake))
	require.Equal(t, CategoryWaterLake, CategoryForTerrain(TerrainWaterDepth))
	require.Equal(t, CategoryWoodsHeavy, CategoryForTerrain(TerrainWoodsHeavy))
}

func TestCompatibleCategories_HeavyWoodsAcceptsWoods(t *testing.T) {
	require.Equal(t, []TileCategory{CategoryWoodsHeavy, CategoryWoods}, CompatibleCategories(CategoryWoodsHeavy))
	require.Equal(t, []TileCategory{CategoryUrban}, CompatibleCategories(CategoryUrban))
}

// TestGroupsForCategories_Order checks the largest-first order with a
// stable ID tie-break, which the greedy packer depends on.
func TestGroupsForCategories_Order(t *testing.T) {
	lib := &TileLibrary{Groups: map[string]TileGroup{
		"b": {ID: "b", Category: CategoryWoods, Tiles: []string{"t", "t"}, Offsets: []Offset{{0, 0}, {0, 1}}},
		"a": {ID: "a", Category: CategoryWoods, Tiles: []string{"t", "t"}, Offsets: []Offset{{0, 0}, {0, 1}}},
		"c": {ID: "c", Category: CategoryWoods, Tiles: []string{"t", "t", "t"}, Offsets: []Offset{{0, 0}, {0, 1}, {0, 2}}},
		"d": {ID: "d", Category: CategoryUrban, Tiles: []string{"t"}, Offsets: []Offset{{0, 0}}},
	}}

	got := lib.GroupsForCategories(CategoryWoods)
	require.Len(t, got, 3)
	require.Equal(t, "c", got[0].ID)
	require.Equal(t, "a", got[1].ID)
	require.Equal(t, "b", got[2].ID)
}

func TestNilLibraryIsEmpty(t *testing.T) {
	var lib *TileLibrary
	require.Empty(t, lib.GroupsForCategories(CategoryWoods))
	require.Empty(t, lib.SinglesFor(TerrainClear))
}
