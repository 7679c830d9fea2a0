package dla

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-dla/internal/core"
)

func testParams(w, h int) Params {
	p := DefaultParams()
	p.Width = w
	p.Height = h
	return p
}

func TestNewEngineValidatesParams(t *testing.T) {
	bad := testParams(0, 10)
	if _, err := NewEngine(bad, core.NewRNG(1)); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("zero width: want ErrInvalidParams, got %v", err)
	}

	bad = testParams(10, 10)
	bad.Adjacency = 6
	if _, err := NewEngine(bad, core.NewRNG(1)); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("adjacency 6: want ErrInvalidParams, got %v", err)
	}

	bad = testParams(10, 10)
	bad.Layout = "diamond"
	if _, err := NewEngine(bad, core.NewRNG(1)); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("unknown layout: want ErrInvalidParams, got %v", err)
	}
}

func TestSpawnOnFullGrid(t *testing.T) {
	// A 1x1 center seed fills the whole grid before the first generation.
	p := testParams(1, 1)
	e, err := NewEngine(p, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := e.SpawnParticle(); !errors.Is(err, ErrNoSpawnableCell) {
		t.Errorf("spawn on full grid: want ErrNoSpawnableCell, got %v", err)
	}

	out := e.RunGeneration()
	if out.Kind != OutcomeGridFull {
		t.Errorf("generation on full grid: want OutcomeGridFull, got %v", out.Kind)
	}
	if e.Placed() != 0 || e.Generations() != 0 {
		t.Errorf("full-grid generation mutated counters: placed=%d generations=%d",
			e.Placed(), e.Generations())
	}
}

func TestSticksGrowCluster(t *testing.T) {
	p := testParams(5, 5)
	e, err := NewEngine(p, core.NewRNG(99))
	if err != nil {
		t.Fatal(err)
	}

	const want = 5
	for i := 0; e.Placed() < want; i++ {
		if i > 100000 {
			t.Fatal("cluster did not reach 5 particles")
		}
		out := e.RunGeneration()
		if out.Kind == OutcomeStuck {
			if filled, _ := e.Grid().IsFilled(out.X, out.Y); !filled {
				t.Fatalf("stuck at (%d,%d) but cell is empty", out.X, out.Y)
			}
		}
	}

	// Seed cell plus one cell per stick.
	if got := e.Grid().FilledCount(); got != want+1 {
		t.Errorf("FilledCount = %d after %d sticks, want %d", got, want, want+1)
	}
	if e.Generations() != want {
		t.Errorf("Generations = %d, want %d", e.Generations(), want)
	}
}

func TestDepositOrderIsSequential(t *testing.T) {
	p := testParams(9, 9)
	e, err := NewEngine(p, core.NewRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	for e.Placed() < 8 {
		e.RunGeneration()
	}

	seen := make(map[int]bool)
	g := e.Grid()
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			c := g.cells[g.index(x, y)]
			if !c.Filled || c.Order == 0 {
				continue
			}
			if c.Order < 1 || c.Order > e.Placed() {
				t.Fatalf("deposit order %d out of range 1..%d", c.Order, e.Placed())
			}
			if seen[c.Order] {
				t.Fatalf("deposit order %d assigned twice", c.Order)
			}
			seen[c.Order] = true
		}
	}
	if len(seen) != e.Placed() {
		t.Errorf("%d distinct orders for %d placed particles", len(seen), e.Placed())
	}
}

func TestTimeoutLeavesGridUntouched(t *testing.T) {
	// The spawn radius keeps the walker far from the lone center seed, and a
	// one-step budget cannot close that distance.
	p := testParams(101, 101)
	p.SpawnRadius = 40
	p.MaxWalkSteps = 1
	e, err := NewEngine(p, core.NewRNG(11))
	if err != nil {
		t.Fatal(err)
	}

	out := e.RunGeneration()
	if out.Kind != OutcomeTimedOut {
		t.Fatalf("want OutcomeTimedOut, got %v", out.Kind)
	}
	if got := e.Grid().FilledCount(); got != 1 {
		t.Errorf("timed-out walk changed FilledCount to %d, want 1", got)
	}
	if e.Generations() != 0 {
		t.Errorf("timed-out walk advanced generations to %d", e.Generations())
	}
	if e.Timeouts() != 1 {
		t.Errorf("Timeouts = %d, want 1", e.Timeouts())
	}
}

func TestPerimeterSpawnMovesInward(t *testing.T) {
	p := testParams(5, 5)
	p.SpawnPolicy = SpawnPerimeter
	e, err := NewEngine(p, core.NewRNG(2))
	if err != nil {
		t.Fatal(err)
	}

	onRing := func(x, y, r int) bool {
		return x == r || y == r || x == 4-r || y == 4-r
	}

	x, y, err := e.SpawnParticle()
	if err != nil {
		t.Fatal(err)
	}
	if !onRing(x, y, 0) {
		t.Errorf("spawn (%d,%d) not on the outer ring", x, y)
	}

	// Fill the outer ring; the next spawn must come from the ring inside it.
	for i := 0; i < 5; i++ {
		for _, pos := range [][2]int{{i, 0}, {i, 4}, {0, i}, {4, i}} {
			if err := e.Grid().Fill(pos[0], pos[1], 0); err != nil {
				t.Fatal(err)
			}
		}
	}
	x, y, err = e.SpawnParticle()
	if err != nil {
		t.Fatal(err)
	}
	if !onRing(x, y, 1) || onRing(x, y, 0) {
		t.Errorf("spawn (%d,%d) not on ring 1", x, y)
	}
}

func TestSpawnRadiusExcludesCenter(t *testing.T) {
	p := testParams(41, 41)
	p.SpawnRadius = 10
	e, err := NewEngine(p, core.NewRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 200; i++ {
		x, y, err := e.SpawnParticle()
		if err != nil {
			t.Fatal(err)
		}
		if d := cellDistance(x, y, 20, 20); d <= 10 {
			t.Fatalf("spawn (%d,%d) at distance %d, inside radius 10", x, y, d)
		}
	}
}

func TestSpawnRadiusRelaxesWhenExhausted(t *testing.T) {
	// A radius wider than the grid leaves no candidate outside it; the spawn
	// must fall back to ignoring the radius rather than failing.
	p := testParams(5, 5)
	p.SpawnRadius = 10
	e, err := NewEngine(p, core.NewRNG(4))
	if err != nil {
		t.Fatal(err)
	}
	x, y, err := e.SpawnParticle()
	if err != nil {
		t.Fatalf("spawn with over-wide radius: %v", err)
	}
	if filled, _ := e.Grid().IsFilled(x, y); filled {
		t.Errorf("spawned on filled cell (%d,%d)", x, y)
	}
}
