// internal/mapgen/biomes.go
package mapgen

import (
	"fmt"

	"go-battlemap/internal/defs"
)

// Biome selects one of the seven generation presets. Each biome is a
// fixed, parameterized composition of the shared terrain and feature
// primitives; the contract is a fully painted terrain+elevation grid
// suitable for clustering, not a specific look.
type Biome string

const (
	BiomeGrasslands Biome = "bt_grasslands"
	BiomeForest     Biome = "bt_forest"
	BiomeCity       Biome = "bt_city"
	BiomeRiver      Biome = "bt_river"
	BiomeRuins      Biome = "bt_ruins"
	BiomeDesert     Biome = "bt_desert"
	BiomeMountains  Biome = "bt_mountains"
)

// AllBiomes lists every biome in a stable order.
var AllBiomes = []Biome{
	BiomeGrasslands, BiomeForest, BiomeCity, BiomeRiver,
	BiomeRuins, BiomeDesert, BiomeMountains,
}

var biomeNames = map[Biome]string{
	BiomeGrasslands: "Grasslands",
	BiomeForest:     "Forest",
	BiomeCity:       "City",
	BiomeRiver:      "River",
	BiomeRuins:      "Ruins",
	BiomeDesert:     "Desert",
	BiomeMountains:  "Mountains",
}

// DisplayName returns the human-readable biome name used for document
// naming.
func (b Biome) DisplayName() string {
	if n, ok := biomeNames[b]; ok {
		return n
	}
	return string(b)
}

// ParseBiome validates a biome id from external input.
func ParseBiome(s string) (Biome, error) {
	b := Biome(s)
	if _, ok := biomeNames[b]; !ok {
		return "", fmt.Errorf("unknown biome %q", s)
	}
	return b, nil
}

// runBiome executes the biome's pipeline over the field. Parameter
// ranges are re-rolled per call from the field's RNG.
func (f *field) runBiome(b Biome) {
	switch b {
	case BiomeGrasslands:
		f.generateGrasslands()
	case BiomeForest:
		f.generateForest()
	case BiomeCity:
		f.generateCity()
	case BiomeRiver:
		f.generateRiverlands()
	case BiomeRuins:
		f.generateRuins()
	case BiomeDesert:
		f.generateDesert()
	case BiomeMountains:
		f.generateMountains()
	}
}

func (f *field) generateGrasslands() {
	f.fillTerrain(defs.TerrainClear, 1)
	f.generateSmoothElevation(0, 3, 0.25+f.rng.Float64()*0.2)
	f.placeTerrainClusters(defs.TerrainWoods, 0.08+f.rng.Float64()*0.07, 2, 7)
	f.scatterTerrain(defs.TerrainRough, 0.03)
	f.placeTerrainOnElevation(defs.TerrainRough, 3, 0.3)
	if f.rng.Chance(0.3) {
		f.placePond(f.rng.IntRange(2, f.w-3), f.rng.IntRange(2, f.h-3), false)
	}
}

func (f *field) generateForest() {
	f.fillTerrain(defs.TerrainClear, 1)
	f.generateSmoothElevation(0, 3, 0.3+f.rng.Float64()*0.2)
	f.placeTerrainClusters(defs.TerrainWoods, 0.2+f.rng.Float64()*0.1, 2, 9)
	f.placeTerrainClusters(defs.TerrainWoodsHeavy, 0.08+f.rng.Float64()*0.06, 3, 9)
	f.scatterTerrain(defs.TerrainWoods, 0.05)
	if f.rng.Chance(0.4) {
		f.placePond(f.rng.IntRange(2, f.w-3), f.rng.IntRange(2, f.h-3), f.rng.Chance(0.3))
		f.placeTerrainNear(defs.TerrainWaterAlias, defs.TerrainWoods, 2, 0.4)
	}
}

func (f *field) generateCity() {
	f.fillTerrain(defs.TerrainClear, 1)
	f.generateSmoothElevation(0, 2, 0.15)
	blocks := f.w * f.h / f.rng.IntRange(18, 26)
	f.placeBuildingBlocks(max(blocks, 4))
	f.placeTerrainNear(defs.TerrainUrban, defs.TerrainRubble, 1, 0.15)
	f.scatterTerrain(defs.TerrainRough, 0.04)
	f.scatterTerrain(defs.TerrainHazards, 0.015)
	if f.rng.Chance(0.25) {
		f.placeNarrowStream(0.3)
	}
}

func (f *field) generateRiverlands() {
	f.fillTerrain(defs.TerrainClear, 1)
	f.generateSmoothElevation(0, 3, 0.25+f.rng.Float64()*0.15)
	f.placeRiver(0.35 + f.rng.Float64()*0.15)
	if f.rng.Chance(0.3) {
		f.placeNarrowStream(0.45)
	}
	f.placeTerrainClusters(defs.TerrainWoods, 0.1+f.rng.Float64()*0.08, 2, 7)
	f.placeTerrainNear(defs.TerrainWaterAlias, defs.TerrainWoods, 2, 0.3)
	if f.rng.Chance(0.2) {
		f.placePond(f.rng.IntRange(2, f.w-3), f.rng.IntRange(2, f.h-3), false)
	}
}

func (f *field) generateRuins() {
	f.fillTerrain(defs.TerrainClear, 1)
	f.generateChaoticElevation(0, 3)
	f.placeRuinBlocks(f.rng.IntRange(4, 8))
	f.placeTerrainClusters(defs.TerrainRubble, 0.1+f.rng.Float64()*0.08, 2, 7)
	f.placeCraters(f.rng.IntRange(2, 4), f.rng.IntRange(1, 2))
	f.scatterTerrain(defs.TerrainRough, 0.06)
	f.scatterTerrain(defs.TerrainHazards, 0.02)
}

func (f *field) generateDesert() {
	f.fillTerrain(defs.TerrainClear, 1)
	f.generateSmoothElevation(0, 4, 0.4+f.rng.Float64()*0.2)
	f.scatterTerrain(defs.TerrainRough, 0.08)
	for i := f.rng.IntRange(1, 2); i > 0; i-- {
		f.placeWadi()
	}
	if f.rng.Chance(0.5) {
		f.placeOasis()
	}
	if f.rng.Chance(0.3) {
		f.placeCamp()
	}
	f.scatterTerrain(defs.TerrainHazards, 0.01)
}

func (f *field) generateMountains() {
	f.fillTerrain(defs.TerrainClear, 1)
	f.generateMountainousElevation(f.rng.IntRange(3, 5))
	f.placeTerrainOnElevation(defs.TerrainRough, 4, 0.7)
	f.placeTerrainOnElevation(defs.TerrainRough, 3, 0.5)
	f.carveMountainPass()
	f.carveValley(3, 1)
	f.placeTerrainOnElevation(defs.TerrainWoods, 1, 0.25)
	if f.rng.Chance(0.3) {
		f.placeLake(f.rng.IntRange(2, f.w-3), f.rng.IntRange(2, f.h-3), f.rng.IntRange(1, 2))
	}
}
