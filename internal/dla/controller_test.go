package dla

import (
	"errors"
	"testing"
)

func TestControllerDeterminism(t *testing.T) {
	p := testParams(41, 41)
	p.TargetParticles = 300
	p.Seed = 12345

	a, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}

	a.TickN(500)
	b.TickN(500)

	if a.Stats() != b.Stats() {
		t.Errorf("same seed diverged: %+v vs %+v", a.Stats(), b.Stats())
	}
	if !a.engine.Grid().Equal(b.engine.Grid()) {
		t.Error("same seed produced different grids")
	}
}

func TestControllerTerminates(t *testing.T) {
	// On a tiny grid the run must end in GridFull or Complete well before
	// the tick budget runs out, no matter how large the target is.
	p := testParams(4, 4)
	p.TargetParticles = 1 << 20
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}

	c.TickN(1_000_000)
	if !c.Done() {
		t.Fatalf("4x4 run still going after a million ticks: %+v", c.Stats())
	}
	if out := c.Tick(); out.Kind != OutcomeComplete {
		t.Errorf("Tick after done: want OutcomeComplete, got %v", out.Kind)
	}
}

func TestControllerGridFullOnFirstTick(t *testing.T) {
	p := testParams(1, 1)
	p.TargetParticles = 1
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Done() {
		t.Fatal("run done before the first tick")
	}
	if out := c.Tick(); out.Kind != OutcomeGridFull {
		t.Fatalf("first tick: want OutcomeGridFull, got %v", out.Kind)
	}
	if !c.Done() {
		t.Error("run not done after GridFull")
	}
	if s := c.Stats(); s.Filled != 1 || s.Placed != 0 {
		t.Errorf("stats after GridFull: %+v", s)
	}
}

func TestControllerReachesTarget(t *testing.T) {
	p := testParams(15, 15)
	p.TargetParticles = 5
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}

	c.TickN(100000)
	s := c.Stats()
	if !s.Done || s.Placed != 5 {
		t.Fatalf("run did not stop at target: %+v", s)
	}
	if s.Filled != 6 {
		t.Errorf("Filled = %d for 5 sticks plus one seed, want 6", s.Filled)
	}
}

func TestReconfigureIsAllOrNothing(t *testing.T) {
	p := testParams(15, 15)
	p.TargetParticles = 3
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}
	c.TickN(100000)
	before := c.Stats()

	bad := testParams(0, 0)
	if err := c.Reconfigure(bad); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("Reconfigure with bad params: want ErrInvalidParams, got %v", err)
	}
	if c.Stats() != before {
		t.Errorf("failed Reconfigure mutated state: %+v vs %+v", c.Stats(), before)
	}
	if c.Params() != p {
		t.Error("failed Reconfigure replaced params")
	}

	// A valid Reconfigure starts over from scratch.
	next := testParams(9, 9)
	next.TargetParticles = 2
	if err := c.Reconfigure(next); err != nil {
		t.Fatal(err)
	}
	s := c.Stats()
	if s.Placed != 0 || s.Generations != 0 || s.Done {
		t.Errorf("fresh run carries old counters: %+v", s)
	}
	if s.Width != 9 || s.Height != 9 {
		t.Errorf("fresh run kept old dimensions: %+v", s)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	p := testParams(21, 21)
	p.TargetParticles = 50
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}
	c.TickN(20)

	view := c.Snapshot()
	countAtCopy := view.FilledCount()

	c.TickN(100000)
	if view.FilledCount() != countAtCopy {
		t.Error("later ticks mutated an already taken snapshot")
	}
	if got := c.Snapshot().FilledCount(); got != c.Stats().Filled {
		t.Errorf("fresh snapshot count %d disagrees with stats %d", got, c.Stats().Filled)
	}
}

func TestSnapshotMatchesGrid(t *testing.T) {
	p := testParams(11, 11)
	p.TargetParticles = 10
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}
	c.TickN(100000)

	view := c.Snapshot()
	g := c.engine.Grid()
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			filled, _ := g.IsFilled(x, y)
			if view.Filled(x, y) != filled {
				t.Fatalf("view and grid disagree at (%d,%d)", x, y)
			}
			if filled && view.Order(x, y) != g.cells[g.index(x, y)].Order {
				t.Fatalf("view order differs at (%d,%d)", x, y)
			}
		}
	}

	// Out-of-bounds reads are empty, not a panic.
	if view.Filled(-1, 0) || view.Filled(11, 11) {
		t.Error("out-of-bounds view cell reads as filled")
	}
	if view.Order(-1, -1) != 0 {
		t.Error("out-of-bounds view order is nonzero")
	}
}
