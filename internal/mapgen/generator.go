// internal/mapgen/generator.go
package mapgen

import (
	"fmt"

	"go-battlemap/internal/defs"
	"go-battlemap/internal/utils"
)

// Generator produces battle maps from a tile-group library. The
// library is read-only; all mutable state lives in the call, so one
// Generator is safe to share across goroutines as long as each call
// brings its own RNG.
type Generator struct {
	lib *defs.TileLibrary
}

// NewGenerator wraps a tile library. A nil or empty library is a valid
// degenerate case: every hex falls through to the single-tile sweep.
func NewGenerator(lib *defs.TileLibrary) *Generator {
	return &Generator{lib: lib}
}

// Generate runs the full pipeline: paint terrain and elevation for the
// biome, normalize water, segment into clusters, pack tile groups,
// sweep single tiles and assemble the document. The call is atomic and
// synchronous; it allocates fresh grids and retains nothing.
func (g *Generator) Generate(width, height int, biome Biome, rng *utils.PRNGService) (*MapDocument, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	if _, err := ParseBiome(string(biome)); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	f := newField(width, height, rng)
	f.runBiome(biome)
	f.normalizeWaterElevation()

	clusters := analyzeClusters(f.terrain, f.elevation)

	p := newPacker(f, g.lib, rng)
	p.packClusters(clusters)
	p.assignSingleTiles()

	return assembleDocument(f, p.assignments, biome, rng), nil
}
