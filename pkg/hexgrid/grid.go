// pkg/hexgrid/grid.go
package hexgrid

// Grid is a width×height row-major container indexed by (x, y).
type Grid[T any] struct {
	w, h  int
	cells []T
}

// NewGrid allocates a zero-valued grid with the given dimensions.
// Non-positive dimensions are bumped to 1.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.h }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the value at (x, y). Out-of-bounds reads return the zero
// value; every mutation site in the generator bounds-checks first, so
// reads never need to distinguish the two.
func (g *Grid[T]) At(x, y int) T {
	if !g.InBounds(x, y) {
		var zero T
		return zero
	}
	return g.cells[y*g.w+x]
}

// Set writes v at (x, y). Out-of-bounds writes are silently dropped.
func (g *Grid[T]) Set(x, y int, v T) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = v
}

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}
