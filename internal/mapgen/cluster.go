// internal/mapgen/cluster.go
package mapgen

import (
	"sort"

	"go-battlemap/internal/defs"
	"go-battlemap/pkg/hexgrid"
)

// ClusterHex is one member of a terrain cluster, carrying its
// elevation so the packer does not have to re-read the grid.
type ClusterHex struct {
	X, Y      int
	Elevation int
}

// TerrainCluster is a maximal 6-connected region of same-type terrain.
type TerrainCluster struct {
	Terrain  defs.TerrainType
	Category defs.TileCategory
	Hexes    []ClusterHex
}

// Size returns the number of hexes in the cluster.
func (c TerrainCluster) Size() int { return len(c.Hexes) }

// analyzeClusters segments the terrain grid into its connected
// components via BFS flood fill. The returned clusters exactly
// partition the grid and are sorted largest first so packing covers
// the biggest regions with the biggest groups.
func analyzeClusters(terrain *hexgrid.Grid[defs.TerrainType], elevation *hexgrid.Grid[int]) []TerrainCluster {
	w, h := terrain.Width(), terrain.Height()
	seen := make([]bool, w*h)
	var clusters []TerrainCluster

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seen[y*w+x] {
				continue
			}
			t := terrain.At(x, y)
			seen[y*w+x] = true
			queue := []hexgrid.Coord{{X: x, Y: y}}
			var hexes []ClusterHex

			for qi := 0; qi < len(queue); qi++ {
				c := queue[qi]
				hexes = append(hexes, ClusterHex{X: c.X, Y: c.Y, Elevation: elevation.At(c.X, c.Y)})
				for _, n := range c.Neighbors() {
					if !terrain.InBounds(n.X, n.Y) || terrain.At(n.X, n.Y) != t {
						continue
					}
					if !seen[n.Y*w+n.X] {
						seen[n.Y*w+n.X] = true
						queue = append(queue, n)
					}
				}
			}
			clusters = append(clusters, TerrainCluster{
				Terrain:  t,
				Category: defs.CategoryForTerrain(t),
				Hexes:    hexes,
			})
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Size() > clusters[j].Size()
	})
	return clusters
}
