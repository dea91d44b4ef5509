// internal/mapgen/generator_test.go
package mapgen

import (
	"testing"

	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/internal/utils"

	"github.com/stretchr/testify/require"
)

// riverTileIDs is every sprite the river lookup can emit.
var riverTileIDs = map[string]struct{}{
	"bt_27": {}, "bt_28": {}, "bt_29": {}, "bt_30": {},
	"bt_31_0": {}, "bt_31_1": {}, "bt_32_0": {}, "bt_32_1": {},
}

func TestGenerate_RiverMap(t *testing.T) {
	gen := NewGenerator(defs.DefaultLibrary())
	doc, err := gen.Generate(20, 15, BiomeRiver, utils.NewPRNGService(42))
	require.NoError(t, err)

	require.Equal(t, 20, doc.Width)
	require.Equal(t, 15, doc.Height)
	require.Equal(t, "hex", doc.GridType)
	require.Len(t, doc.Layers.Terrain, 15)

	populated := 0
	riverCells := 0
	for _, row := range doc.Layers.Terrain {
		require.Len(t, row, 20)
		for _, cell := range row {
			require.NotEmpty(t, cell.TileID)
			populated++
			if _, ok := riverTileIDs[cell.TileID]; ok {
				riverCells++
			}
		}
	}
	require.Equal(t, 300, populated)
	require.GreaterOrEqual(t, riverCells, 1, "a river map must carry at least one river hex")
}

func TestGenerate_AllBiomesCoverEveryCell(t *testing.T) {
	gen := NewGenerator(defs.DefaultLibrary())
	for i, biome := range AllBiomes {
		doc, err := gen.Generate(16, 12, biome, utils.NewPRNGService(int64(i+1)))
		require.NoError(t, err, "biome %s", biome)
		for y, row := range doc.Layers.Terrain {
			for x, cell := range row {
				require.NotEmpty(t, cell.TileID, "biome %s cell (%d,%d)", biome, x, y)
				require.GreaterOrEqual(t, cell.Elevation, config.MinElevation)
				require.LessOrEqual(t, cell.Elevation, config.MaxElevation)
				if cell.GroupID != "" {
					require.NotNil(t, cell.GroupIndex)
				} else {
					require.Nil(t, cell.GroupIndex)
					require.False(t, cell.IsCenter)
				}
			}
		}
	}
}

func TestGenerate_SameSeedSameMap(t *testing.T) {
	gen := NewGenerator(defs.DefaultLibrary())
	for _, biome := range AllBiomes {
		a, err := gen.Generate(18, 14, biome, utils.NewPRNGService(99))
		require.NoError(t, err)
		b, err := gen.Generate(18, 14, biome, utils.NewPRNGService(99))
		require.NoError(t, err)
		require.Equal(t, a, b, "biome %s", biome)
	}
}

func TestGenerate_WaterCellsAtElevationZero(t *testing.T) {
	rng := utils.NewPRNGService(7)
	f := newField(20, 15, rng)
	f.runBiome(BiomeRiver)
	f.normalizeWaterElevation()

	water := 0
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.terrain.At(x, y).IsWater() {
				water++
				require.Equal(t, 0, f.elevation.At(x, y), "water at (%d,%d)", x, y)
			}
		}
	}
	require.GreaterOrEqual(t, water, 1)
}

func TestGenerate_InvalidInputs(t *testing.T) {
	gen := NewGenerator(defs.DefaultLibrary())

	_, err := gen.Generate(0, 10, BiomeForest, utils.NewPRNGService(1))
	require.Error(t, err)
	_, err = gen.Generate(10, -1, BiomeForest, utils.NewPRNGService(1))
	require.Error(t, err)
	_, err = gen.Generate(10, 10, Biome("swamp"), utils.NewPRNGService(1))
	require.Error(t, err)
}

func TestGenerate_NilRNG(t *testing.T) {
	gen := NewGenerator(defs.DefaultLibrary())
	doc, err := gen.Generate(10, 8, BiomeGrasslands, nil)
	require.NoError(t, err)
	require.Equal(t, 10, doc.Width)
}

// A generator with no library still produces a structurally complete
// document; every hex falls through to the fallback sprite.
func TestGenerate_EmptyLibraryFallsBack(t *testing.T) {
	gen := NewGenerator(nil)
	doc, err := gen.Generate(12, 10, BiomeGrasslands, utils.NewPRNGService(3))
	require.NoError(t, err)
	for _, row := range doc.Layers.Terrain {
		for _, cell := range row {
			require.Equal(t, fallbackTileID, cell.TileID)
			require.Empty(t, cell.GroupID)
		}
	}
}
