package dla

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-dla/internal/core"
)

// spawn attempts before falling back to an exhaustive candidate scan.
const maxSpawnAttempts = 1000

// OutcomeKind classifies what a generation produced.
type OutcomeKind int

const (
	// OutcomeStuck: the particle attached to the cluster.
	OutcomeStuck OutcomeKind = iota
	// OutcomeTimedOut: the walk exceeded its step budget (or had no legal
	// move) and the particle was abandoned without touching the grid.
	OutcomeTimedOut
	// OutcomeGridFull: no cell satisfies the spawn policy; the run cannot
	// place more particles.
	OutcomeGridFull
	// OutcomeComplete: the target particle count was already reached; no
	// walk was attempted.
	OutcomeComplete
)

// String returns a short name for logging and the HUD.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeStuck:
		return "stuck"
	case OutcomeTimedOut:
		return "timed-out"
	case OutcomeGridFull:
		return "grid-full"
	case OutcomeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Outcome reports one generation. X and Y are meaningful only for
// OutcomeStuck; Steps counts walker moves spent this generation.
type Outcome struct {
	Kind  OutcomeKind
	X, Y  int
	Steps int
}

// Engine owns the grid and drives the generation loop: spawn a particle,
// walk it until it sticks or the step budget runs out, record the result.
// It runs exactly one particle at a time and never suspends mid-walk, so a
// generation is an atomic unit of work for callers.
type Engine struct {
	grid   *Grid
	params Params
	walker *Walker
	rng    *core.RNG

	placed      int    // particles stuck by walkers, seed cells excluded
	generations int    // successful sticks; timeouts do not advance it
	timeouts    int    // abandoned walks
	walkSteps   uint64 // total walker moves, for benchmarking
}

// NewEngine validates the parameters, builds the seeded grid, and fails
// with ErrInvalidInitialState if the layout left no filled cell.
func NewEngine(p Params, rng *core.RNG) (*Engine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := NewGrid(p.Width, p.Height)
	if err := ApplyLayout(g, p.Layout, rng); err != nil {
		return nil, err
	}
	if g.FilledCount() == 0 {
		return nil, fmt.Errorf("%w: layout %q filled nothing on a %dx%d grid",
			ErrInvalidInitialState, p.Layout, p.Width, p.Height)
	}
	return &Engine{
		grid:   g,
		params: p,
		walker: NewWalker(g, p.Adjacency, rng),
		rng:    rng,
	}, nil
}

// Grid exposes the engine's grid to the controller for snapshotting.
// External packages only ever see copies.
func (e *Engine) Grid() *Grid { return e.grid }

// Placed returns the number of particles stuck so far, seeds excluded.
func (e *Engine) Placed() int { return e.placed }

// Generations returns the count of successful sticks.
func (e *Engine) Generations() int { return e.generations }

// Timeouts returns the count of abandoned walks.
func (e *Engine) Timeouts() int { return e.timeouts }

// WalkSteps returns the total walker moves performed across the run.
func (e *Engine) WalkSteps() uint64 { return e.walkSteps }

// SpawnParticle selects an unfilled starting cell per the spawn policy.
// Returns ErrNoSpawnableCell when no candidate exists.
func (e *Engine) SpawnParticle() (int, int, error) {
	switch e.params.SpawnPolicy {
	case SpawnPerimeter:
		return e.spawnPerimeter()
	default:
		return e.spawnRandom()
	}
}

// spawnRandom picks a uniform unfilled cell, honoring the exclusion radius
// around the grid center. Bounded rejection sampling covers the common
// sparse case; the exhaustive fallback makes ErrNoSpawnableCell exact on
// dense grids instead of probabilistic. If the radius alone exhausted the
// candidates the fallback relaxes it, so late runs keep progressing.
func (e *Engine) spawnRandom() (int, int, error) {
	w, h := e.grid.Width(), e.grid.Height()
	for i := 0; i < maxSpawnAttempts; i++ {
		x, y := e.rng.IntN(w), e.rng.IntN(h)
		if !e.grid.filled(x, y) && e.outsideRadius(x, y) {
			return x, y, nil
		}
	}
	if x, y, ok := e.scanCandidates(true); ok {
		return x, y, nil
	}
	if e.params.SpawnRadius > 0 {
		if x, y, ok := e.scanCandidates(false); ok {
			return x, y, nil
		}
	}
	return 0, 0, ErrNoSpawnableCell
}

// scanCandidates collects every unfilled cell (optionally honoring the
// spawn radius) and picks one uniformly. Returns false if none exist.
func (e *Engine) scanCandidates(honorRadius bool) (int, int, bool) {
	w, h := e.grid.Width(), e.grid.Height()
	var cands [][2]int
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if e.grid.filled(x, y) {
				continue
			}
			if honorRadius && !e.outsideRadius(x, y) {
				continue
			}
			cands = append(cands, [2]int{x, y})
		}
	}
	if len(cands) == 0 {
		return 0, 0, false
	}
	c := cands[e.rng.IntN(len(cands))]
	return c[0], c[1], true
}

// spawnPerimeter picks a uniform unfilled cell from the outermost ring that
// still has one, moving ring by ring toward the center as the cluster
// reaches the borders.
func (e *Engine) spawnPerimeter() (int, int, error) {
	w, h := e.grid.Width(), e.grid.Height()
	maxRing := (min(w, h) + 1) / 2
	var cands [][2]int
	for r := 0; r < maxRing; r++ {
		cands = cands[:0]
		for x := r; x < w-r; x++ {
			for _, y := range []int{r, h - 1 - r} {
				if y >= r && y < h-r && !e.grid.filled(x, y) {
					cands = append(cands, [2]int{x, y})
				}
			}
		}
		for y := r + 1; y < h-1-r; y++ {
			for _, x := range []int{r, w - 1 - r} {
				if !e.grid.filled(x, y) {
					cands = append(cands, [2]int{x, y})
				}
			}
		}
		if len(cands) > 0 {
			c := cands[e.rng.IntN(len(cands))]
			return c[0], c[1], nil
		}
	}
	return 0, 0, ErrNoSpawnableCell
}

// outsideRadius reports whether (x, y) lies outside the configured spawn
// exclusion radius around the grid center. A zero radius admits everything.
func (e *Engine) outsideRadius(x, y int) bool {
	if e.params.SpawnRadius == 0 {
		return true
	}
	return cellDistance(x, y, e.grid.Width()/2, e.grid.Height()/2) > e.params.SpawnRadius
}

// RunGeneration performs one full spawn→walk→stick cycle. The stick check
// runs after every arrival, including the spawn cell itself, so a particle
// that spawns next to the cluster sticks without walking. Timed-out walks
// leave the grid untouched and do not advance the generation counter.
func (e *Engine) RunGeneration() Outcome {
	x, y, err := e.SpawnParticle()
	if err != nil {
		if errors.Is(err, ErrNoSpawnableCell) {
			return Outcome{Kind: OutcomeGridFull}
		}
		// SpawnParticle only fails with ErrNoSpawnableCell; keep the
		// fallthrough recoverable anyway.
		return Outcome{Kind: OutcomeGridFull}
	}

	steps := 0
	for {
		if e.walker.Touching(x, y) {
			e.placed++
			e.generations++
			// Fill cannot fail: the walker never leaves the grid.
			_ = e.grid.Fill(x, y, e.placed)
			return Outcome{Kind: OutcomeStuck, X: x, Y: y, Steps: steps}
		}
		if steps >= e.params.MaxWalkSteps {
			e.timeouts++
			return Outcome{Kind: OutcomeTimedOut, Steps: steps}
		}
		nx, ny, err := e.walker.Step(x, y)
		if err != nil {
			e.timeouts++
			return Outcome{Kind: OutcomeTimedOut, Steps: steps}
		}
		x, y = nx, ny
		steps++
		e.walkSteps++
	}
}
