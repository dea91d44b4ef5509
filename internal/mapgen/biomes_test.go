// internal/mapgen/biomes_test.go
package mapgen

import (
	"testing"

	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/internal/utils"

	"github.com/stretchr/testify/require"
)

func TestParseBiome(t *testing.T) {
	for _, biome := range AllBiomes {
		got, err := ParseBiome(string(biome))
		require.NoError(t, err)
		require.Equal(t, biome, got)
	}

	_, err := ParseBiome("swamp")
	require.Error(t, err)
	_, err = ParseBiome("")
	require.Error(t, err)
}

func TestBiomeDisplayName(t *testing.T) {
	require.Equal(t, "Grasslands", BiomeGrasslands.DisplayName())
	require.Equal(t, "River", BiomeRiver.DisplayName())
	require.Equal(t, "swamp", Biome("swamp").DisplayName(), "unknown ids pass through")
}

// Every biome must leave the whole grid painted with a known terrain
// type and in-range elevation.
func TestRunBiome_PaintsEveryHex(t *testing.T) {
	known := make(map[defs.TerrainType]struct{}, len(defs.AllTerrainTypes))
	for _, tt := range defs.AllTerrainTypes {
		known[tt] = struct{}{}
	}

	for i, biome := range AllBiomes {
		f := newField(16, 12, utils.NewPRNGService(int64(100+i)))
		f.runBiome(biome)

		for y := 0; y < f.h; y++ {
			for x := 0; x < f.w; x++ {
				_, ok := known[f.terrain.At(x, y)]
				require.True(t, ok, "biome %s painted %q at (%d,%d)", biome, f.terrain.At(x, y), x, y)
				e := f.elevation.At(x, y)
				require.GreaterOrEqual(t, e, config.MinElevation)
				require.LessOrEqual(t, e, config.MaxElevation)
			}
		}
	}
}

func TestGenerateCity_HasBuildings(t *testing.T) {
	f := newField(16, 12, utils.NewPRNGService(8))
	f.runBiome(BiomeCity)

	urban := 0
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.terrain.At(x, y) == defs.TerrainUrban {
				urban++
			}
		}
	}
	require.GreaterOrEqual(t, urban, 1)
}

func TestGenerateRiverlands_CarvesRiver(t *testing.T) {
	f := newField(16, 12, utils.NewPRNGService(9))
	f.runBiome(BiomeRiver)

	require.NotEmpty(t, f.riverSides)

	// Later features may repaint individual river hexes, but the bulk
	// of the carved path survives.
	surviving := 0
	for coord := range f.riverSides {
		if f.terrain.At(coord.X, coord.Y) == defs.TerrainWaterRiver {
			surviving++
		}
	}
	require.GreaterOrEqual(t, surviving, 1)
}
