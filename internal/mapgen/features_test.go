// internal/mapgen/features_test.go
package mapgen

import (
	"testing"

	"go-battlemap/internal/defs"
	"go-battlemap/internal/utils"
	"go-battlemap/pkg/hexgrid"

	"github.com/stretchr/testify/require"
)

// Urban and water hexes must survive later overlay passes even at full
// density.
func TestScatterTerrain_SkipsProtected(t *testing.T) {
	f := newField(8, 8, utils.NewPRNGService(1))
	f.fillTerrain(defs.TerrainClear, 1)
	f.terrain.Set(3, 3, defs.TerrainUrban)
	f.terrain.Set(4, 4, defs.TerrainWaterLake)

	f.scatterTerrain(defs.TerrainRough, 1.0)

	require.Equal(t, defs.TerrainUrban, f.terrain.At(3, 3))
	require.Equal(t, defs.TerrainWaterLake, f.terrain.At(4, 4))
	require.Equal(t, defs.TerrainRough, f.terrain.At(0, 0))
	require.Equal(t, defs.TerrainRough, f.terrain.At(7, 7))
}

func TestPlaceBuildingBlocks_AvoidsWater(t *testing.T) {
	f := newField(8, 8, utils.NewPRNGService(2))
	f.fillTerrain(defs.TerrainWaterLake, 0)

	f.placeBuildingBlocks(10)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, defs.TerrainWaterLake, f.terrain.At(x, y))
		}
	}
}

func TestPlaceRiver_StraightCrossing(t *testing.T) {
	f := newField(14, 10, utils.NewPRNGService(3))
	f.fillTerrain(defs.TerrainClear, 1)

	path := f.placeRiver(0)

	// With no meander the river runs straight across one full axis.
	require.True(t, len(path) == 14 || len(path) == 10)
	require.Len(t, f.riverSides, len(path))

	for _, hx := range path {
		require.Equal(t, defs.TerrainWaterRiver, f.terrain.At(hx.X, hx.Y))
		require.Equal(t, 0, f.elevation.At(hx.X, hx.Y))
		require.NotEqual(t, hx.Entry, hx.Exit, "water flows through, never back out the same side")
		sides := f.riverSides[hexgrid.Coord{X: hx.X, Y: hx.Y}]
		require.Equal(t, hx.Entry, sides[0])
		require.Equal(t, hx.Exit, sides[1])
	}
}

func TestPlaceRiver_StaysOffPerpendicularBorder(t *testing.T) {
	f := newField(14, 10, utils.NewPRNGService(4))
	f.fillTerrain(defs.TerrainClear, 1)

	path := f.placeRiver(0.9)

	if len(path) == 10 {
		// Vertical river: x stays clear of both side borders.
		for _, hx := range path {
			require.GreaterOrEqual(t, hx.X, 1)
			require.LessOrEqual(t, hx.X, 12)
		}
	} else {
		require.Len(t, path, 14)
		for _, hx := range path {
			require.GreaterOrEqual(t, hx.Y, 1)
			require.LessOrEqual(t, hx.Y, 8)
		}
	}
}

func TestPlaceNarrowStream_NoSideBookkeeping(t *testing.T) {
	f := newField(10, 10, utils.NewPRNGService(5))
	f.fillTerrain(defs.TerrainClear, 1)

	f.placeNarrowStream(0.5)

	require.Empty(t, f.riverSides)
	water := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if f.terrain.At(x, y) == defs.TerrainWaterRiver {
				water++
			}
		}
	}
	require.Equal(t, 10, water, "one stream hex per row")
}

func TestNormalizeWaterElevation(t *testing.T) {
	f := newField(5, 5, utils.NewPRNGService(1))
	f.fillTerrain(defs.TerrainClear, 2)
	f.terrain.Set(2, 2, defs.TerrainWaterLake)
	f.setElevation(2, 2, 3)

	f.normalizeWaterElevation()

	require.Equal(t, 0, f.elevation.At(2, 2))
	require.Equal(t, 2, f.elevation.At(1, 1))
}

func TestPlaceLake_CircularFootprint(t *testing.T) {
	f := newField(12, 12, utils.NewPRNGService(1))
	f.fillTerrain(defs.TerrainClear, 2)

	f.placeLake(5, 5, 2)

	require.Equal(t, defs.TerrainWaterLake, f.terrain.At(5, 5))
	require.Equal(t, defs.TerrainWaterLake, f.terrain.At(5, 3))
	require.Equal(t, 0, f.elevation.At(5, 5))
	require.Equal(t, defs.TerrainClear, f.terrain.At(8, 5), "outside the radius")
}

func TestPlacePond_SmallFootprint(t *testing.T) {
	f := newField(12, 12, utils.NewPRNGService(1))
	f.fillTerrain(defs.TerrainClear, 1)

	f.placePond(5, 5, false)

	water := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if f.terrain.At(x, y) == defs.TerrainWaterLake {
				water++
				require.Equal(t, 0, f.elevation.At(x, y))
			}
		}
	}
	require.Equal(t, 7, water)
}

func TestPlaceCraters_CoreAndRim(t *testing.T) {
	f := newField(10, 10, utils.NewPRNGService(6))
	f.fillTerrain(defs.TerrainClear, 1)

	f.placeCraters(1, 2)

	var centers, raised int
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if f.terrain.At(x, y) == defs.TerrainRough {
				centers++
				require.Equal(t, 0, f.elevation.At(x, y))
			}
			if f.elevation.At(x, y) == 3 {
				raised++
			}
		}
	}
	require.Equal(t, 1, centers)
	require.GreaterOrEqual(t, raised, 1, "rim hexes rise above the floor")
}

func TestCarveMountainPass_CapsElevation(t *testing.T) {
	f := newField(12, 8, utils.NewPRNGService(7))
	f.fillTerrain(defs.TerrainRough, 4)

	f.carveMountainPass()

	for x := 0; x < 12; x++ {
		found := false
		for y := 0; y < 8; y++ {
			if f.elevation.At(x, y) <= 1 && f.terrain.At(x, y) == defs.TerrainClear {
				found = true
				break
			}
		}
		require.True(t, found, "column %d has no walkable pass hex", x)
	}
}

func TestCarveValley_LowersCorridor(t *testing.T) {
	f := newField(12, 10, utils.NewPRNGService(8))
	f.fillTerrain(defs.TerrainClear, 3)

	f.carveValley(3, 2)

	lowered := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 12; x++ {
			if f.elevation.At(x, y) == 1 {
				lowered++
			}
		}
	}
	require.GreaterOrEqual(t, lowered, 12, "at least one lowered hex per column")
}

func TestPlaceOasis_FloodsLowestHex(t *testing.T) {
	f := newField(10, 10, utils.NewPRNGService(9))
	f.fillTerrain(defs.TerrainClear, 2)
	f.setElevation(6, 3, 0)

	f.placeOasis()

	require.Equal(t, defs.TerrainWaterLake, f.terrain.At(6, 3))
	require.Equal(t, 0, f.elevation.At(6, 3))
}

func TestPlaceWadi_ChannelPerRow(t *testing.T) {
	f := newField(10, 10, utils.NewPRNGService(10))
	f.fillTerrain(defs.TerrainClear, 2)

	f.placeWadi()

	for y := 0; y < 10; y++ {
		found := false
		for x := 0; x < 10; x++ {
			if f.terrain.At(x, y) == defs.TerrainRough && f.elevation.At(x, y) == 1 {
				found = true
			}
		}
		require.True(t, found, "row %d has no channel hex", y)
	}
}

func TestPlaceRuinBlocks_OnlyUrbanAndRubble(t *testing.T) {
	f := newField(10, 10, utils.NewPRNGService(11))
	f.fillTerrain(defs.TerrainClear, 1)

	f.placeRuinBlocks(6)

	changed := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			switch f.terrain.At(x, y) {
			case defs.TerrainUrban, defs.TerrainRubble:
				changed++
			case defs.TerrainClear:
			default:
				t.Fatalf("unexpected terrain %s at (%d,%d)", f.terrain.At(x, y), x, y)
			}
		}
	}
	require.GreaterOrEqual(t, changed, 6)
}
