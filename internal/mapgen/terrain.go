// internal/mapgen/terrain.go
package mapgen

import (
	"math"

	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/internal/utils"
	"go-battlemap/pkg/hexgrid"
	putils "go-battlemap/pkg/utils"
)

// field carries the working grids of one generation call. Grids are
// call-scoped: nothing here survives past Generate, so concurrent
// calls with separate RNGs never share state.
type field struct {
	w, h      int
	terrain   *hexgrid.Grid[defs.TerrainType]
	elevation *hexgrid.Grid[int]
	rng       *utils.PRNGService

	// riverSides records {entry, exit} per carved river hex for the
	// direction-aware single-tile lookup. Narrow streams skip it.
	riverSides map[hexgrid.Coord][2]hexgrid.Side
}

func newField(w, h int, rng *utils.PRNGService) *field {
	return &field{
		w:          w,
		h:          h,
		terrain:    hexgrid.NewGrid[defs.TerrainType](w, h),
		elevation:  hexgrid.NewGrid[int](w, h),
		rng:        rng,
		riverSides: make(map[hexgrid.Coord][2]hexgrid.Side),
	}
}

func (f *field) isValid(x, y int) bool {
	return f.terrain.InBounds(x, y)
}

// protected reports whether a hex must not be repainted by overlay
// passes. Water keeps its carved footprint and buildings keep their
// blocks.
func (f *field) protected(x, y int) bool {
	t := f.terrain.At(x, y)
	return t.IsWater() || t == defs.TerrainUrban
}

// setElevation writes a clamped elevation value.
func (f *field) setElevation(x, y, e int) {
	if !f.isValid(x, y) {
		return
	}
	f.elevation.Set(x, y, putils.Clamp(e, config.MinElevation, config.MaxElevation))
}

// fillTerrain paints the whole grid with one terrain type and
// elevation.
func (f *field) fillTerrain(t defs.TerrainType, elev int) {
	f.terrain.Fill(t)
	f.elevation.Fill(putils.Clamp(elev, config.MinElevation, config.MaxElevation))
}

// generateSmoothElevation synthesizes a coherent elevation surface
// from three octaves of phase-shifted sines, normalized to [0,1],
// jittered by roughness and mapped into [min, max]. It reads like
// noise at map scale without needing a noise library.
func (f *field) generateSmoothElevation(min, max int, roughness float64) {
	type octave struct {
		freq, amp, px, py float64
	}
	octaves := make([]octave, 3)
	freq, amp := 0.35, 1.0
	var totalAmp float64
	for i := range octaves {
		octaves[i] = octave{
			freq: freq,
			amp:  amp,
			px:   f.rng.Float64() * 2 * math.Pi,
			py:   f.rng.Float64() * 2 * math.Pi,
		}
		totalAmp += amp * 2
		freq *= 2
		amp *= 0.5
	}

	span := float64(max - min)
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			var v float64
			for _, o := range octaves {
				v += o.amp * (math.Sin(float64(x)*o.freq+o.px) + math.Sin(float64(y)*o.freq*1.31+o.py))
			}
			norm := (v + totalAmp) / (2 * totalAmp)
			norm += (f.rng.Float64()*2 - 1) * roughness
			e := min + int(math.Round(norm*span))
			f.setElevation(x, y, putils.Clamp(e, min, max))
		}
	}
}

// generateChaoticElevation draws every hex independently. Used for
// ruins, where the ground is deliberately jagged.
func (f *field) generateChaoticElevation(min, max int) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			f.setElevation(x, y, f.rng.IntRange(min, max))
		}
	}
}

// generateMountainousElevation lays a smooth low base and raises
// radial peaks with Manhattan-distance falloff at random centers. A
// hex takes the higher of base and peak contribution.
func (f *field) generateMountainousElevation(peakCount int) {
	f.generateSmoothElevation(0, 2, 0.2)
	for i := 0; i < peakCount; i++ {
		px := f.rng.Intn(f.w)
		py := f.rng.Intn(f.h)
		peakHeight := f.rng.IntRange(3, config.MaxElevation)
		reach := peakHeight
		for dy := -reach; dy <= reach; dy++ {
			for dx := -reach; dx <= reach; dx++ {
				x, y := px+dx, py+dy
				if !f.isValid(x, y) {
					continue
				}
				contribution := peakHeight - (putils.Abs(dx) + putils.Abs(dy))
				if contribution > f.elevation.At(x, y) {
					f.setElevation(x, y, contribution)
				}
			}
		}
	}
}

// Compact footprints stamped by placeTerrainClusters, biased toward
// the 7- and 9-hex shapes the tile-group library renders best.
var clusterPatterns = [][]defs.Offset{
	{{DX: 0, DY: 0}, {DX: 0, DY: 1}},
	{{DX: 0, DY: 0}, {DX: 0, DY: 1}, {DX: 0, DY: 2}},
	{{DX: 0, DY: 0}, {DX: 0, DY: 1}, {DX: 1, DY: -1}, {DX: 1, DY: 0}},
	{{DX: 0, DY: 0}, {DX: 0, DY: -1}, {DX: 0, DY: 1}, {DX: -1, DY: -1}, {DX: -1, DY: 0}, {DX: 1, DY: -1}, {DX: 1, DY: 0}},
	{{DX: 0, DY: 0}, {DX: 0, DY: 1}, {DX: 0, DY: 2}, {DX: 1, DY: -1}, {DX: 1, DY: 0}, {DX: 1, DY: 1}, {DX: 2, DY: 0}, {DX: 2, DY: 1}, {DX: 2, DY: 2}},
}

// clusterPatternBias indexes clusterPatterns; the 7/9-hex entries
// appear twice so they are drawn more often.
var clusterPatternBias = []int{0, 1, 2, 3, 3, 4, 4}

// placeTerrainClusters stamps compact patches of t at random anchors
// until roughly coverage·(w·h) hexes are painted or the attempt budget
// runs out. Water and urban hexes are never overwritten.
func (f *field) placeTerrainClusters(t defs.TerrainType, coverage float64, minSize, maxSize int) {
	target := int(coverage * float64(f.w*f.h))
	placed := 0
	for attempt := 0; attempt < config.PlacementAttemptBudget && placed < target; attempt++ {
		pattern := clusterPatterns[clusterPatternBias[f.rng.Intn(len(clusterPatternBias))]]
		if len(pattern) < minSize || (maxSize > 0 && len(pattern) > maxSize) {
			continue
		}
		ax := f.rng.Intn(f.w)
		ay := f.rng.Intn(f.h)
		for _, off := range pattern {
			x, y := ax+off.DX, ay+off.DY
			if !f.isValid(x, y) || f.protected(x, y) {
				continue
			}
			if f.terrain.At(x, y) != t {
				f.terrain.Set(x, y, t)
				placed++
			}
		}
	}
}

// scatterTerrain paints isolated hexes of t with independent
// probability density per hex.
func (f *field) scatterTerrain(t defs.TerrainType, density float64) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.protected(x, y) {
				continue
			}
			if f.rng.Chance(density) {
				f.terrain.Set(x, y, t)
			}
		}
	}
}

// placeTerrainOnElevation converts hexes sitting at exactly elev with
// the given probability.
func (f *field) placeTerrainOnElevation(t defs.TerrainType, elev int, prob float64) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.protected(x, y) || f.elevation.At(x, y) != elev {
				continue
			}
			if f.rng.Chance(prob) {
				f.terrain.Set(x, y, t)
			}
		}
	}
}

// placeTerrainNear paints place on hexes within distance of any hex
// matching near. The "water" alias matches all three water subtypes.
// The proximity test scans a square window, cheap at battle-map sizes.
func (f *field) placeTerrainNear(near, place defs.TerrainType, distance int, prob float64) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.protected(x, y) || !f.nearTerrain(x, y, near, distance) {
				continue
			}
			if f.rng.Chance(prob) {
				f.terrain.Set(x, y, place)
			}
		}
	}
}

func (f *field) nearTerrain(x, y int, near defs.TerrainType, distance int) bool {
	for dy := -distance; dy <= distance; dy++ {
		for dx := -distance; dx <= distance; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if f.isValid(nx, ny) && f.terrain.At(nx, ny).Matches(near) {
				return true
			}
		}
	}
	return false
}

// normalizeWaterElevation forces every water hex to elevation 0. Runs
// after all elevation-mutating features so carving can never leave a
// lake hanging on a slope.
func (f *field) normalizeWaterElevation() {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			if f.terrain.At(x, y).IsWater() {
				f.elevation.Set(x, y, 0)
			}
		}
	}
}
