// internal/mapgen/packer.go
package mapgen

import (
	"sort"

	"go-battlemap/internal/config"
	"go-battlemap/internal/defs"
	"go-battlemap/internal/utils"
	"go-battlemap/pkg/hexgrid"
	putils "go-battlemap/pkg/utils"
)

// fallbackTileID covers hexes for which even the single-tile catalog
// has no candidate, e.g. when running with an empty library. The map
// stays structurally complete either way.
const fallbackTileID = "bt_11"

// packer assigns sprites to the finished terrain grid: multi-hex
// groups per cluster first, then a single-tile sweep over everything
// left. One packer handles one generation call.
type packer struct {
	lib         *defs.TileLibrary
	terrain     *hexgrid.Grid[defs.TerrainType]
	elevation   *hexgrid.Grid[int]
	assignments *hexgrid.Grid[*TileAssignment]
	riverSides  map[hexgrid.Coord][2]hexgrid.Side
	rng         *utils.PRNGService
}

func newPacker(f *field, lib *defs.TileLibrary, rng *utils.PRNGService) *packer {
	return &packer{
		lib:         lib,
		terrain:     f.terrain,
		elevation:   f.elevation,
		assignments: hexgrid.NewGrid[*TileAssignment](f.w, f.h),
		riverSides:  f.riverSides,
		rng:         rng,
	}
}

// packClusters runs group placement over every cluster. Clusters
// arrive largest first from the analyzer.
func (p *packer) packClusters(clusters []TerrainCluster) {
	for _, c := range clusters {
		p.packCluster(c)
	}
}

// packCluster places groups into one cluster. Strategy dispatches on
// the cluster's category.
func (p *packer) packCluster(c TerrainCluster) {
	switch {
	case c.Category == defs.CategoryWaterRiver:
		// Fixed-shape groups cannot follow an arbitrary river path;
		// every river hex goes to the direction-aware single fallback.
		return
	case c.Category == defs.CategoryWaterLake:
		p.packLake(c)
	case c.Category == defs.CategoryTerrain && c.Size() > config.LargeClearClusterSize:
		p.packLargeClear(c)
	default:
		p.packGreedy(c, p.availableSet(c))
	}
}

// availableSet builds the cluster's mutable free-hex set.
func (p *packer) availableSet(c TerrainCluster) map[hexgrid.Coord]struct{} {
	available := make(map[hexgrid.Coord]struct{}, c.Size())
	for _, hx := range c.Hexes {
		if p.assignments.At(hx.X, hx.Y) == nil {
			available[hexgrid.Coord{X: hx.X, Y: hx.Y}] = struct{}{}
		}
	}
	return available
}

// canPlaceGroup reports whether anchoring g at (x, y) keeps every
// covered hex in bounds and inside available.
func (p *packer) canPlaceGroup(x, y int, g defs.TileGroup, available map[hexgrid.Coord]struct{}) bool {
	for _, off := range g.Offsets {
		hx, hy := x+off.DX, y+off.DY
		if !p.assignments.InBounds(hx, hy) {
			return false
		}
		if _, ok := available[hexgrid.Coord{X: hx, Y: hy}]; !ok {
			return false
		}
	}
	return true
}

// placeGroup writes g's sprites anchored at (x, y), carrying the
// anchor hex's elevation across all slots, and removes the covered
// hexes from available so no later attempt reconsiders them.
func (p *packer) placeGroup(x, y int, g defs.TileGroup, available map[hexgrid.Coord]struct{}) {
	anchorElev := p.elevation.At(x, y)
	for i, off := range g.Offsets {
		hx, hy := x+off.DX, y+off.DY
		p.assignments.Set(hx, hy, &TileAssignment{
			TileID:     g.Tiles[i],
			GroupID:    g.ID,
			GroupIndex: i,
			Elevation:  anchorElev,
			IsCenter:   i == 0,
		})
		delete(available, hexgrid.Coord{X: hx, Y: hy})
	}
}

// packLake places at most one fully self-contained 7-tile group per
// lake, anchored as close to the cluster centroid as it fits.
func (p *packer) packLake(c TerrainCluster) {
	var groups []defs.TileGroup
	for _, g := range p.lib.GroupsForCategories(defs.CategoryWaterLake) {
		if g.Size() == config.LakeGroupSize {
			groups = append(groups, g)
		}
	}
	if len(groups) == 0 {
		return
	}

	var sumX, sumY int
	for _, hx := range c.Hexes {
		sumX += hx.X
		sumY += hx.Y
	}
	cx := sumX / c.Size()
	cy := sumY / c.Size()

	hexes := append([]ClusterHex(nil), c.Hexes...)
	sort.SliceStable(hexes, func(i, j int) bool {
		di := putils.Abs(hexes[i].X-cx) + putils.Abs(hexes[i].Y-cy)
		dj := putils.Abs(hexes[j].X-cx) + putils.Abs(hexes[j].Y-cy)
		return di < dj
	})

	available := p.availableSet(c)
	for _, hx := range hexes {
		for _, g := range groups {
			if p.canPlaceGroup(hx.X, hx.Y, g, available) {
				p.placeGroup(hx.X, hx.Y, g, available)
				return
			}
		}
	}
}

// packLargeClear tiles a big clear cluster's bounding box with its
// largest group at a fixed spacing, jittering each anchor by up to one
// hex so the lattice does not read as a grid, then fills leftovers
// greedily.
func (p *packer) packLargeClear(c TerrainCluster) {
	groups := p.lib.GroupsForCategories(defs.CategoryTerrain)
	available := p.availableSet(c)
	if len(groups) == 0 {
		return
	}
	largest := groups[0]

	minX, minY := c.Hexes[0].X, c.Hexes[0].Y
	maxX, maxY := minX, minY
	for _, hx := range c.Hexes {
		minX = min(minX, hx.X)
		maxX = max(maxX, hx.X)
		minY = min(minY, hx.Y)
		maxY = max(maxY, hx.Y)
	}

	for ay := minY; ay <= maxY; ay += config.ClearTileSpacingY {
		for ax := minX; ax <= maxX; ax += config.ClearTileSpacingX {
			x := ax + p.rng.IntRange(-1, 1)
			y := ay + p.rng.IntRange(-1, 1)
			if p.canPlaceGroup(x, y, largest, available) {
				p.placeGroup(x, y, largest, available)
			}
		}
	}

	p.packGreedy(c, available)
}

// packGreedy walks the cluster row-major and drops the first group
// that fits at each still-free hex, trying largest first.
func (p *packer) packGreedy(c TerrainCluster, available map[hexgrid.Coord]struct{}) {
	groups := p.lib.GroupsForCategories(defs.CompatibleCategories(c.Category)...)
	if len(groups) == 0 {
		return
	}

	hexes := append([]ClusterHex(nil), c.Hexes...)
	sort.SliceStable(hexes, func(i, j int) bool {
		if hexes[i].Y != hexes[j].Y {
			return hexes[i].Y < hexes[j].Y
		}
		return hexes[i].X < hexes[j].X
	})

	for _, hx := range hexes {
		if _, ok := available[hexgrid.Coord{X: hx.X, Y: hx.Y}]; !ok {
			continue
		}
		for _, g := range groups {
			if p.canPlaceGroup(hx.X, hx.Y, g, available) {
				p.placeGroup(hx.X, hx.Y, g, available)
				break
			}
		}
	}
}

// assignSingleTiles sweeps every hex the group passes left bare.
// River hexes use the side-pair lookup; everything else draws from the
// per-terrain catalog.
func (p *packer) assignSingleTiles() {
	for y := 0; y < p.terrain.Height(); y++ {
		for x := 0; x < p.terrain.Width(); x++ {
			if p.assignments.At(x, y) != nil {
				continue
			}
			t := p.terrain.At(x, y)

			var tileID string
			if sides, ok := p.riverSides[hexgrid.Coord{X: x, Y: y}]; ok && t == defs.TerrainWaterRiver {
				tileID = defs.RiverTileForSides(sides[0], sides[1])
			} else {
				tileID = utils.Pick(p.rng, p.lib.SinglesFor(t))
			}
			if tileID == "" {
				tileID = fallbackTileID
			}

			p.assignments.Set(x, y, &TileAssignment{
				TileID:    tileID,
				Elevation: p.elevation.At(x, y),
			})
		}
	}
}
