// Package dla implements the simulation core for diffusion limited
// aggregation: an occupancy grid, a random walker, the generation engine
// that drives particles until they stick, and a tick-based controller.
// The package is UI-agnostic and deterministic under a fixed seed.
package dla

// Cell is a single grid position. Order is the 1-based deposit index of the
// stick that filled it; seed cells carry Order 0. Renderers use Order to
// color the aggregate by age.
type Cell struct {
	Filled bool
	Order  int
}

// Grid is the occupancy field: a fixed W×H grid of cells stored row-major
// in a flat slice (index = y*W + x). Dimensions are immutable; cells are
// mutated only through Fill, which the engine owns.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates an empty grid. Dimensions must be positive; callers go
// through Params.Validate first, so this only guards direct constructions.
func NewGrid(w, h int) *Grid {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.w }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.h }

func (g *Grid) index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies within [0, W) × [0, H).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// IsFilled reports whether the cell at (x, y) is filled.
// Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) IsFilled(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, ErrOutOfBounds
	}
	return g.cells[g.index(x, y)].Filled, nil
}

// filled is the unchecked fast path used by the walker's inner loop.
// Callers must guarantee (x, y) is in bounds.
func (g *Grid) filled(x, y int) bool {
	return g.cells[g.index(x, y)].Filled
}

// Fill marks the cell at (x, y) as filled with the given deposit order.
// Filling an already filled cell is a no-op that preserves the original
// order. Returns ErrOutOfBounds for coordinates outside the grid.
func (g *Grid) Fill(x, y, order int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	i := g.index(x, y)
	if g.cells[i].Filled {
		return nil
	}
	g.cells[i] = Cell{Filled: true, Order: order}
	return nil
}

// FilledCount returns the number of filled cells, seed cells included.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// IsFull reports whether every cell is filled. Used as a termination
// condition by the engine.
func (g *Grid) IsFull() bool {
	for _, c := range g.cells {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
