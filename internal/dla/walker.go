package dla

import "github.com/vovakirdan/tui-dla/internal/core"

// neighbor offset tables. The orthogonal offsets come first so the
// 4-connected table is a prefix of the 8-connected one.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// offsets returns the neighbor deltas for this adjacency rule.
func (a Adjacency) offsets() [][2]int {
	if a == Adjacency4 {
		return neighborOffsets[:4]
	}
	return neighborOffsets[:]
}

// Walker steps a single particle across the grid. It is stateless with
// respect to particles: the engine owns the particle position and calls
// Step/Touching on it. Movement directions follow the adjacency rule, so a
// 4-connected run walks orthogonally and an 8-connected run may move
// diagonally.
type Walker struct {
	grid *Grid
	adj  Adjacency
	rng  *core.RNG

	// scratch buffer for candidate moves, avoids a per-step allocation
	candidates [8][2]int
}

// NewWalker creates a walker bound to a grid and adjacency rule.
func NewWalker(g *Grid, adj Adjacency, rng *core.RNG) *Walker {
	return &Walker{grid: g, adj: adj, rng: rng}
}

// Step moves the particle at (x, y) to a uniformly chosen in-bounds,
// unfilled neighbor cell and returns the new position. The boundary policy
// is re-roll: out-of-grid candidates are excluded before the draw, so a
// step can never leave [0, W) × [0, H). Filled candidates are excluded for
// the same reason; with movement tied to the adjacency rule a walker next
// to the cluster has already stuck, so this only matters on degenerate
// grids, where Step returns ErrNoMove.
func (w *Walker) Step(x, y int) (int, int, error) {
	n := 0
	for _, d := range w.adj.offsets() {
		nx, ny := x+d[0], y+d[1]
		if w.grid.InBounds(nx, ny) && !w.grid.filled(nx, ny) {
			w.candidates[n] = [2]int{nx, ny}
			n++
		}
	}
	if n == 0 {
		return x, y, ErrNoMove
	}
	c := w.candidates[w.rng.IntN(n)]
	return c[0], c[1], nil
}

// Touching reports whether any neighbor of (x, y) per the adjacency rule is
// filled. The engine calls this after each arrival (spawn included), so a
// particle sticks at its post-move position, never its pre-move one.
func (w *Walker) Touching(x, y int) bool {
	for _, d := range w.adj.offsets() {
		nx, ny := x+d[0], y+d[1]
		if w.grid.InBounds(nx, ny) && w.grid.filled(nx, ny) {
			return true
		}
	}
	return false
}
