package dla

import (
	"github.com/vovakirdan/tui-dla/internal/core"
)

// Controller is the externally facing advancement interface. One Tick runs
// exactly one generation (one particle's full lifecycle), which lets the
// caller throttle simulation speed independently of its frame rate. The
// controller owns the engine exclusively and is not safe for concurrent
// use; the baseline design runs on a single logical thread of control.
type Controller struct {
	params Params
	engine *Engine
	done   bool
}

// NewController builds a controller for the given parameters. Fails with
// ErrInvalidParams or ErrInvalidInitialState without allocating a run.
func NewController(p Params) (*Controller, error) {
	eng, err := NewEngine(p, core.NewRNG(p.Seed))
	if err != nil {
		return nil, err
	}
	c := &Controller{params: p, engine: eng}
	c.refreshDone()
	return c, nil
}

// refreshDone recomputes the termination flag from the placed count.
// Grid-fullness is not probed here; it surfaces as an OutcomeGridFull from
// the first spawn attempt that finds no candidate, which also covers
// spawn policies that exhaust before the grid literally fills.
func (c *Controller) refreshDone() {
	if c.engine.Placed() >= c.params.TargetParticles {
		c.done = true
	}
}

// Tick advances the simulation by one generation and returns its outcome.
// Once the run is complete every further Tick returns OutcomeComplete
// without touching the grid.
func (c *Controller) Tick() Outcome {
	if c.done {
		return Outcome{Kind: OutcomeComplete}
	}
	out := c.engine.RunGeneration()
	if out.Kind == OutcomeGridFull {
		c.done = true
		return out
	}
	c.refreshDone()
	return out
}

// TickN advances up to n generations, short-circuiting as soon as the run
// terminates. It returns the last outcome produced.
func (c *Controller) TickN(n int) Outcome {
	out := Outcome{Kind: OutcomeComplete}
	for i := 0; i < n; i++ {
		out = c.Tick()
		if c.done {
			break
		}
	}
	return out
}

// Done reports whether the run reached its target or filled the grid.
func (c *Controller) Done() bool { return c.done }

// Params returns the parameters of the current run.
func (c *Controller) Params() Params { return c.params }

// Reconfigure replaces the run with a fresh one built from p. The swap is
// all-or-nothing: if p fails validation or seeds an empty grid the previous
// run stays intact and the error is returned.
func (c *Controller) Reconfigure(p Params) error {
	eng, err := NewEngine(p, core.NewRNG(p.Seed))
	if err != nil {
		return err
	}
	c.params = p
	c.engine = eng
	c.done = false
	c.refreshDone()
	return nil
}

// Snapshot returns a read-only copy of the occupancy grid for rendering.
func (c *Controller) Snapshot() GridView {
	g := c.engine.Grid()
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return GridView{w: g.w, h: g.h, cells: cells}
}

// Stats returns the current run counters.
func (c *Controller) Stats() Snapshot {
	return Snapshot{
		Width:       c.params.Width,
		Height:      c.params.Height,
		Placed:      c.engine.Placed(),
		Target:      c.params.TargetParticles,
		Generations: c.engine.Generations(),
		Timeouts:    c.engine.Timeouts(),
		WalkSteps:   c.engine.WalkSteps(),
		Filled:      c.engine.Grid().FilledCount(),
		Done:        c.done,
	}
}
