package dla

// GridView is a read-only copy of the occupancy field handed to renderers.
// Mutating the view (there is no way to from outside the package) or the
// engine's grid after the copy never affects the other side, so the render
// layer needs no locking against the simulation.
type GridView struct {
	w, h  int
	cells []Cell
}

// Width returns the view width in cells.
func (v GridView) Width() int { return v.w }

// Height returns the view height in cells.
func (v GridView) Height() int { return v.h }

// Filled reports whether the cell at (x, y) is filled.
// Out-of-bounds coordinates read as empty.
func (v GridView) Filled(x, y int) bool {
	if x < 0 || x >= v.w || y < 0 || y >= v.h {
		return false
	}
	return v.cells[y*v.w+x].Filled
}

// Order returns the deposit index of the cell at (x, y): 0 for seed cells
// and empty or out-of-bounds cells, 1..N for walker deposits.
func (v GridView) Order(x, y int) int {
	if x < 0 || x >= v.w || y < 0 || y >= v.h {
		return 0
	}
	return v.cells[y*v.w+x].Order
}

// FilledCount returns the number of filled cells in the view.
func (v GridView) FilledCount() int {
	n := 0
	for _, c := range v.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// Snapshot captures the run counters for determinism tests and the HUD.
type Snapshot struct {
	Width       int
	Height      int
	Placed      int
	Target      int
	Generations int
	Timeouts    int
	WalkSteps   uint64
	Filled      int
	Done        bool
}
