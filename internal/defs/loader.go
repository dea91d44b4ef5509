// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTileLibrary reads a tile-group configuration file and returns the
// validated library. A group whose tiles and offsets disagree in length
// would write mismatched sprite ids during placement, so such groups
// fail the load instead of being clamped.
func LoadTileLibrary(path string) (*TileLibrary, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile library file: %w", err)
	}

	var lib TileLibrary
	if err := json.Unmarshal(file, &lib); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tile library: %w", err)
	}

	if lib.Groups == nil {
		lib.Groups = make(map[string]TileGroup)
	}
	if lib.Singles == nil {
		lib.Singles = make(map[TerrainType][]string)
	}
	for id, g := range lib.Groups {
		if g.ID == "" {
			g.ID = id
			lib.Groups[id] = g
		}
	}

	if err := lib.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Loaded %d tile groups and %d single catalogs from %s",
		len(lib.Groups), len(lib.Singles), path)
	return &lib, nil
}

// Validate checks every group's structural invariants.
func (l *TileLibrary) Validate() error {
	for id, g := range l.Groups {
		if len(g.Tiles) == 0 {
			return fmt.Errorf("tile group %q has no tiles", id)
		}
		if len(g.Tiles) != len(g.Offsets) {
			return fmt.Errorf("tile group %q has %d tiles but %d offsets",
				id, len(g.Tiles), len(g.Offsets))
		}
		if g.Offsets[0] != (Offset{}) {
			return fmt.Errorf("tile group %q anchor offset is %+v, want (0,0)",
				id, g.Offsets[0])
		}
		if g.Category == "" {
			return fmt.Errorf("tile group %q has no category", id)
		}
	}
	return nil
}
