// pkg/render/color.go
package render

import (
	"image/color"

	"go-battlemap/internal/defs"
)

// Base fill colors per terrain type for the debug viewer.
var terrainColors = map[defs.TerrainType]color.RGBA{
	defs.TerrainClear:      {110, 140, 70, 255},
	defs.TerrainWoods:      {46, 125, 50, 255},
	defs.TerrainWoodsHeavy: {27, 94, 32, 255},
	defs.TerrainRough:      {141, 110, 99, 255},
	defs.TerrainRubble:     {161, 136, 127, 255},
	defs.TerrainUrban:      {117, 117, 117, 255},
	defs.TerrainHazards:    {244, 67, 54, 255},
	defs.TerrainWaterRiver: {25, 118, 210, 255},
	defs.TerrainWaterLake:  {21, 101, 192, 255},
	defs.TerrainWaterDepth: {13, 71, 161, 255},
}

var categoryColors = map[defs.TileCategory]color.RGBA{
	defs.CategoryTerrain:    {110, 140, 70, 255},
	defs.CategoryWoods:      {46, 125, 50, 255},
	defs.CategoryWoodsHeavy: {27, 94, 32, 255},
	defs.CategoryWaterRiver: {25, 118, 210, 255},
	defs.CategoryWaterLake:  {21, 101, 192, 255},
	defs.CategoryUrban:      {117, 117, 117, 255},
	defs.CategoryRough:      {141, 110, 99, 255},
	defs.CategoryRubble:     {161, 136, 127, 255},
	defs.CategoryHazards:    {244, 67, 54, 255},
}

// unknownTileColor marks sprites the index has never heard of.
var unknownTileColor = color.RGBA{200, 60, 200, 255}

// BuildTileColors indexes every sprite id of the library to a fill
// color: singles take their terrain's color, group slots take their
// group's category color.
func BuildTileColors(lib *defs.TileLibrary) map[string]color.RGBA {
	colors := make(map[string]color.RGBA)
	if lib == nil {
		return colors
	}
	for t, ids := range lib.Singles {
		c, ok := terrainColors[t]
		if !ok {
			c = unknownTileColor
		}
		for _, id := range ids {
			colors[id] = c
		}
	}
	for _, g := range lib.Groups {
		c, ok := categoryColors[g.Category]
		if !ok {
			c = unknownTileColor
		}
		for _, id := range g.Tiles {
			colors[id] = c
		}
	}
	return colors
}

// TileColor resolves a sprite id against the index.
func TileColor(colors map[string]color.RGBA, tileID string) color.RGBA {
	if c, ok := colors[tileID]; ok {
		return c
	}
	return unknownTileColor
}

// ShadeByElevation brightens a fill color with elevation so terraced
// ground reads at a glance. Elevation 0 leaves the color untouched.
func ShadeByElevation(c color.RGBA, elevation int) color.RGBA {
	boost := elevation * 18
	return color.RGBA{
		R: uint8(min(255, int(c.R)+boost)),
		G: uint8(min(255, int(c.G)+boost)),
		B: uint8(min(255, int(c.B)+boost)),
		A: c.A,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
