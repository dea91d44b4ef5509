// internal/config/config.go
package config

import "image/color"

const (
	// Elevation bounds for every generated hex.
	MinElevation = 0
	MaxElevation = 4

	// Attempt budget for randomized placement loops (terrain clusters,
	// craters, lakes). Loops give up rather than spin forever on maps
	// too small for their targets.
	PlacementAttemptBudget = 1000

	// Clear-terrain clusters above this size are tiled over their
	// bounding box instead of packed greedily.
	LargeClearClusterSize = 20

	// Bounding-box tiling spacing for large clear clusters, with ±1
	// jitter per anchor to break up the lattice.
	ClearTileSpacingX = 4
	ClearTileSpacingY = 3

	// Lake groups must be fully self-contained and exactly this size.
	LakeGroupSize = 7

	DefaultMapWidth  = 30
	DefaultMapHeight = 22

	// Viewer window.
	ScreenWidth  = 1280
	ScreenHeight = 900
	HexSize      = 22.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridStrokeColor = color.RGBA{40, 40, 55, 255}
	AnchorMarkColor = color.RGBA{255, 215, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
)
