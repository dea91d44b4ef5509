// internal/mapgen/assemble.go
package mapgen

import (
	"fmt"

	"go-battlemap/internal/utils"
	"go-battlemap/pkg/hexgrid"
)

// assembleDocument serializes the grids and tile assignments into the
// layered document the editor consumes. Objects and effects are
// emitted empty for the editor to populate; every terrain cell is
// guaranteed non-null.
func assembleDocument(f *field, assignments *hexgrid.Grid[*TileAssignment], biome Biome, rng *utils.PRNGService) *MapDocument {
	terrain := make([][]TerrainCell, f.h)
	for y := 0; y < f.h; y++ {
		terrain[y] = make([]TerrainCell, f.w)
		for x := 0; x < f.w; x++ {
			a := assignments.At(x, y)
			cell := TerrainCell{
				TileID:    a.TileID,
				Elevation: a.Elevation,
			}
			if a.GroupID != "" {
				idx := a.GroupIndex
				cell.GroupID = a.GroupID
				cell.GroupIndex = &idx
				cell.IsCenter = a.IsCenter
			}
			terrain[y][x] = cell
		}
	}

	return &MapDocument{
		ID:       fmt.Sprintf("map_%08x", rng.Intn(1<<31)),
		Name:     fmt.Sprintf("%s %dx%d", biome.DisplayName(), f.w, f.h),
		Width:    f.w,
		Height:   f.h,
		GridType: "hex",
		Layers: Layers{
			Terrain: terrain,
			Objects: []ObjectCell{},
			Effects: []ObjectCell{},
		},
	}
}
