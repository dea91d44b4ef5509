// internal/mapgen/features.go
package mapgen

import (
	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/pkg/hexgrid"
	putils "go-battlemap/pkg/utils"
)

// RiverHex is one step of a carved river with the sides the water
// enters and leaves through.
type RiverHex struct {
	X, Y  int
	Entry hexgrid.Side
	Exit  hexgrid.Side
}

// RiverPath is the ordered hex sequence of one river.
type RiverPath []RiverHex

// placeRiver carves a meandering river across the grid along a random
// primary axis and records entry/exit sides per hex for the
// direction-aware tile lookup.
func (f *field) placeRiver(meanderProb float64) RiverPath {
	vertical := f.rng.Chance(0.5)

	var path []hexgrid.Coord
	if vertical {
		x := f.rng.IntRange(1, f.w-2)
		for y := 0; y < f.h; y++ {
			if y > 0 && f.rng.Chance(meanderProb) {
				x = putils.Clamp(x+f.rng.IntRange(0, 1)*2-1, 1, f.w-2)
			}
			path = append(path, hexgrid.Coord{X: x, Y: y})
		}
	} else {
		y := f.rng.IntRange(1, f.h-2)
		for x := 0; x < f.w; x++ {
			if x > 0 && f.rng.Chance(meanderProb) {
				y = putils.Clamp(y+f.rng.IntRange(0, 1)*2-1, 1, f.h-2)
			}
			path = append(path, hexgrid.Coord{X: x, Y: y})
		}
	}

	river := make(RiverPath, 0, len(path))
	for i, c := range path {
		if !f.isValid(c.X, c.Y) {
			continue
		}
		f.terrain.Set(c.X, c.Y, defs.TerrainWaterRiver)
		f.elevation.Set(c.X, c.Y, 0)

		// Border hexes continue straight off the map.
		prev := hexgrid.Coord{X: c.X, Y: c.Y - 1}
		next := hexgrid.Coord{X: c.X, Y: c.Y + 1}
		if !vertical {
			prev = hexgrid.Coord{X: c.X - 1, Y: c.Y}
			next = hexgrid.Coord{X: c.X + 1, Y: c.Y}
		}
		if i > 0 {
			prev = path[i-1]
		}
		if i < len(path)-1 {
			next = path[i+1]
		}

		entry, ok := hexgrid.DirectionBetween(c, prev)
		if !ok {
			entry = hexgrid.SideN
		}
		exit, ok := hexgrid.DirectionBetween(c, next)
		if !ok {
			exit = entry.Opposite()
		}
		f.riverSides[c] = [2]hexgrid.Side{entry, exit}
		river = append(river, RiverHex{X: c.X, Y: c.Y, Entry: entry, Exit: exit})
	}
	return river
}

// placeNarrowStream carves a thin watercourse without direction
// bookkeeping; its hexes are covered by the generic single-tile
// fallback.
func (f *field) placeNarrowStream(meanderProb float64) {
	x := f.rng.IntRange(1, f.w-2)
	for y := 0; y < f.h; y++ {
		if y > 0 && f.rng.Chance(meanderProb) {
			x = putils.Clamp(x+f.rng.IntRange(0, 1)*2-1, 1, f.w-2)
		}
		if f.isValid(x, y) {
			f.terrain.Set(x, y, defs.TerrainWaterRiver)
			f.elevation.Set(x, y, 0)
		}
	}
}

// placeLake floods a roughly circular footprint around a center.
func (f *field) placeLake(cx, cy, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			x, y := cx+dx, cy+dy
			if f.isValid(x, y) {
				f.terrain.Set(x, y, defs.TerrainWaterLake)
				f.elevation.Set(x, y, 0)
			}
		}
	}
}

// Fixed pond footprints matching the 7- and 13-hex lake group shapes.
var (
	pond7 = []defs.Offset{
		{DX: 0, DY: 0}, {DX: 0, DY: -1}, {DX: 0, DY: 1},
		{DX: -1, DY: -1}, {DX: -1, DY: 0}, {DX: 1, DY: -1}, {DX: 1, DY: 0},
	}
	pond13 = append(append([]defs.Offset{}, pond7...),
		defs.Offset{DX: 0, DY: -2}, defs.Offset{DX: 0, DY: 2},
		defs.Offset{DX: -2, DY: -1}, defs.Offset{DX: -2, DY: 0},
		defs.Offset{DX: 2, DY: -1}, defs.Offset{DX: 2, DY: 0},
	)
)

// placePond stamps a fixed lake footprint at the anchor. big selects
// the 13-hex variant.
func (f *field) placePond(cx, cy int, big bool) {
	pattern := pond7
	if big {
		pattern = pond13
	}
	for _, off := range pattern {
		x, y := cx+off.DX, cy+off.DY
		if f.isValid(x, y) {
			f.terrain.Set(x, y, defs.TerrainWaterLake)
			f.elevation.Set(x, y, 0)
		}
	}
}

// placeCraters drops count craters of the given ring radius. Centers
// keep their distance from each other so rims never merge into mush.
func (f *field) placeCraters(count, size int) {
	var centers []hexgrid.Coord
	for attempt := 0; attempt < config.PlacementAttemptBudget && len(centers) < count; attempt++ {
		cx := f.rng.Intn(f.w)
		cy := f.rng.Intn(f.h)
		tooClose := false
		for _, c := range centers {
			if putils.Abs(c.X-cx)+putils.Abs(c.Y-cy) < size*2+1 {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}
		centers = append(centers, hexgrid.Coord{X: cx, Y: cy})

		for dy := -size; dy <= size; dy++ {
			for dx := -size; dx <= size; dx++ {
				x, y := cx+dx, cy+dy
				if !f.isValid(x, y) {
					continue
				}
				dist := putils.Abs(dx) + putils.Abs(dy)
				switch {
				case dist == 0:
					if !f.protected(x, y) {
						f.terrain.Set(x, y, defs.TerrainRough)
					}
					f.setElevation(x, y, 0)
				case dist == size:
					f.setElevation(x, y, f.elevation.At(x, y)+2)
				}
			}
		}
	}
}

// carveValley traces a serpentine low corridor across the grid width,
// lowering every hex within valleyWidth rows of the trace.
func (f *field) carveValley(valleyWidth, depth int) {
	y := f.rng.IntRange(valleyWidth, f.h-1-valleyWidth)
	half := valleyWidth / 2
	for x := 0; x < f.w; x++ {
		if x > 0 && f.rng.Chance(0.35) {
			y = putils.Clamp(y+f.rng.IntRange(0, 1)*2-1, half, f.h-1-half)
		}
		for dy := -half; dy <= half; dy++ {
			if f.isValid(x, y+dy) {
				f.setElevation(x, y+dy, f.elevation.At(x, y+dy)-depth)
			}
		}
	}
}

// carveMountainPass cuts a one-hex walkable corridor through high
// ground, capping its elevation at 1 and clearing its terrain.
func (f *field) carveMountainPass() {
	y := f.rng.IntRange(1, f.h-2)
	for x := 0; x < f.w; x++ {
		if x > 0 && f.rng.Chance(0.3) {
			y = putils.Clamp(y+f.rng.IntRange(0, 1)*2-1, 1, f.h-2)
		}
		if !f.isValid(x, y) {
			continue
		}
		if f.elevation.At(x, y) > 1 {
			f.setElevation(x, y, 1)
		}
		if !f.protected(x, y) {
			f.terrain.Set(x, y, defs.TerrainClear)
		}
	}
}

// Building stamp footprints, small to large.
var buildingPatterns = [][]defs.Offset{
	{{DX: 0, DY: 0}},
	{{DX: 0, DY: 0}, {DX: 0, DY: 1}},
	{{DX: 0, DY: 0}, {DX: 1, DY: 0}},
	{{DX: 0, DY: 0}, {DX: 0, DY: 1}, {DX: 1, DY: -1}, {DX: 1, DY: 0}},
	{{DX: 0, DY: 0}, {DX: 0, DY: -1}, {DX: 0, DY: 1}, {DX: -1, DY: -1}, {DX: -1, DY: 0}, {DX: 1, DY: -1}, {DX: 1, DY: 0}},
}

// placeBuildingBlocks stamps count building footprints at random
// anchors. Urban hexes guard against later overlay passes.
func (f *field) placeBuildingBlocks(count int) {
	for i := 0; i < count; i++ {
		pattern := buildingPatterns[f.rng.Intn(len(buildingPatterns))]
		ax := f.rng.Intn(f.w)
		ay := f.rng.Intn(f.h)
		for _, off := range pattern {
			x, y := ax+off.DX, ay+off.DY
			if f.isValid(x, y) && !f.terrain.At(x, y).IsWater() {
				f.terrain.Set(x, y, defs.TerrainUrban)
			}
		}
	}
}

// placeRuinBlocks stamps collapsed structures: a rubble core with a
// few surviving urban hexes.
func (f *field) placeRuinBlocks(count int) {
	for i := 0; i < count; i++ {
		pattern := buildingPatterns[f.rng.Intn(len(buildingPatterns))]
		ax := f.rng.Intn(f.w)
		ay := f.rng.Intn(f.h)
		for _, off := range pattern {
			x, y := ax+off.DX, ay+off.DY
			if !f.isValid(x, y) || f.terrain.At(x, y).IsWater() {
				continue
			}
			if f.rng.Chance(0.3) {
				f.terrain.Set(x, y, defs.TerrainUrban)
			} else {
				f.terrain.Set(x, y, defs.TerrainRubble)
			}
		}
	}
}

// placeCamp stamps a small encampment: one urban hex ringed by
// cleared ground.
func (f *field) placeCamp() {
	cx := f.rng.IntRange(1, f.w-2)
	cy := f.rng.IntRange(1, f.h-2)
	if f.protected(cx, cy) {
		return
	}
	f.terrain.Set(cx, cy, defs.TerrainUrban)
	for _, n := range (hexgrid.Coord{X: cx, Y: cy}).Neighbors() {
		if f.isValid(n.X, n.Y) && !f.protected(n.X, n.Y) {
			f.terrain.Set(n.X, n.Y, defs.TerrainClear)
		}
	}
}

// placeOasis floods the lowest hex on the map and greens its
// surroundings. The anchor comes from a full elevation scan.
func (f *field) placeOasis() {
	lx, ly := 0, 0
	lowest := config.MaxElevation + 1
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if e := f.elevation.At(x, y); e < lowest && !f.protected(x, y) {
				lowest = e
				lx, ly = x, y
			}
		}
	}
	f.terrain.Set(lx, ly, defs.TerrainWaterLake)
	f.elevation.Set(lx, ly, 0)
	for _, n := range (hexgrid.Coord{X: lx, Y: ly}).Neighbors() {
		if !f.isValid(n.X, n.Y) || f.protected(n.X, n.Y) {
			continue
		}
		if f.rng.Chance(0.5) {
			f.terrain.Set(n.X, n.Y, defs.TerrainWoods)
		} else {
			f.terrain.Set(n.X, n.Y, defs.TerrainClear)
		}
	}
}

// placeWadi carves a dry riverbed: a meandering rough channel one
// level below its surroundings.
func (f *field) placeWadi() {
	x := f.rng.IntRange(1, f.w-2)
	for y := 0; y < f.h; y++ {
		if y > 0 && f.rng.Chance(0.45) {
			x = putils.Clamp(x+f.rng.IntRange(0, 1)*2-1, 1, f.w-2)
		}
		if !f.isValid(x, y) || f.protected(x, y) {
			continue
		}
		f.terrain.Set(x, y, defs.TerrainRough)
		f.setElevation(x, y, f.elevation.At(x, y)-1)
	}
}
