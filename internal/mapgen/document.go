// internal/mapgen/document.go
package mapgen

// TileAssignment records the sprite chosen for one hex during packing.
// GroupID and GroupIndex are set only for hexes covered by a multi-hex
// group; IsCenter marks the group's anchor slot.
type TileAssignment struct {
	TileID     string
	GroupID    string
	GroupIndex int
	Elevation  int
	IsCenter   bool
}

// TerrainCell is one cell of the finished document's terrain layer.
// Every cell is populated by the time a document is assembled.
type TerrainCell struct {
	TileID     string `json:"tileId"`
	Elevation  int    `json:"elevation"`
	GroupID    string `json:"groupId,omitempty"`
	GroupIndex *int   `json:"groupIndex,omitempty"`
	IsCenter   bool   `json:"isCenter,omitempty"`
}

// ObjectCell is a placeholder entry for the objects and effects
// layers, which the generator emits empty for the editor to fill.
type ObjectCell struct {
	X  int    `json:"x"`
	Y  int    `json:"y"`
	ID string `json:"id"`
}

// Layers groups the three stacked layers of a map document.
type Layers struct {
	Terrain [][]TerrainCell `json:"terrain"`
	Objects []ObjectCell    `json:"objects"`
	Effects []ObjectCell    `json:"effects"`
}

// MapDocument is the finished battle map handed to the editor. It is
// immutable once assembled; the generator keeps no reference to it.
type MapDocument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	GridType string `json:"gridType"`
	Layers   Layers `json:"layers"`
}
