// pkg/hexgrid/hex.go
package hexgrid

// Coord is a position on a flat-top hex grid in offset coordinates.
// Odd columns are shifted half a hex down, so the neighbor offsets of a
// hex depend on the parity of its column.
type Coord struct {
	X, Y int
}

// Side identifies one of the six edges of a hex. Sides are used to
// describe directional connectivity, e.g. where a river enters and
// leaves a hex.
type Side int

const (
	SideN Side = iota
	SideNE
	SideSE
	SideS
	SideSW
	SideNW
)

var sideNames = [...]string{"N", "NE", "SE", "S", "SW", "NW"}

func (s Side) String() string {
	if s < SideN || s > SideNW {
		return "?"
	}
	return sideNames[s]
}

// Opposite returns the side facing s from the neighboring hex.
func (s Side) Opposite() Side {
	switch s {
	case SideN:
		return SideS
	case SideNE:
		return SideSW
	case SideSE:
		return SideNW
	case SideS:
		return SideN
	case SideSW:
		return SideNE
	default:
		return SideSE
	}
}

// Neighbor offsets indexed by Side, one table per column parity.
var (
	evenColOffsets = [6]Coord{
		SideN:  {0, -1},
		SideNE: {1, -1},
		SideSE: {1, 0},
		SideS:  {0, 1},
		SideSW: {-1, 0},
		SideNW: {-1, -1},
	}
	oddColOffsets = [6]Coord{
		SideN:  {0, -1},
		SideNE: {1, 0},
		SideSE: {1, 1},
		SideS:  {0, 1},
		SideSW: {-1, 1},
		SideNW: {-1, 0},
	}
)

// NeighborOffsets returns the six neighbor offsets for a hex in column x.
func NeighborOffsets(x int) [6]Coord {
	if x&1 == 1 {
		return oddColOffsets
	}
	return evenColOffsets
}

// Neighbor returns the coordinate adjacent to c across the given side.
func (c Coord) Neighbor(s Side) Coord {
	off := NeighborOffsets(c.X)[s]
	return Coord{c.X + off.X, c.Y + off.Y}
}

// Neighbors returns all six adjacent coordinates of c, in side order.
// Callers are expected to bounds-check the results themselves.
func (c Coord) Neighbors() [6]Coord {
	offs := NeighborOffsets(c.X)
	var out [6]Coord
	for i, off := range offs {
		out[i] = Coord{c.X + off.X, c.Y + off.Y}
	}
	return out
}

// DirectionBetween classifies which side of from leads toward to.
// It is exact for adjacent hexes and a sign-based approximation
// otherwise. ok is false when from == to or the hexes share a column
// and a row.
func DirectionBetween(from, to Coord) (side Side, ok bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	if dx == 0 {
		if dy < 0 {
			return SideN, true
		}
		if dy > 0 {
			return SideS, true
		}
		return 0, false
	}
	odd := from.X&1 == 1
	if dx > 0 {
		if (odd && dy <= 0) || (!odd && dy < 0) {
			return SideNE, true
		}
		return SideSE, true
	}
	if (odd && dy <= 0) || (!odd && dy < 0) {
		return SideNW, true
	}
	return SideSW, true
}

// SidePair is an unordered pair of hex sides in canonical order
// (A <= B). There are 15 distinct pairs of distinct sides.
type SidePair struct {
	A, B Side
}

// NewSidePair builds the canonical pair for a and b.
func NewSidePair(a, b Side) SidePair {
	if b < a {
		a, b = b, a
	}
	return SidePair{A: a, B: b}
}
