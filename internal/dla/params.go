package dla

import "fmt"

// SpawnPolicy selects how the engine picks a walker's starting cell.
type SpawnPolicy string

const (
	// SpawnRandom picks uniformly among unfilled cells, optionally
	// excluding a radius around the grid center.
	SpawnRandom SpawnPolicy = "random"
	// SpawnPerimeter picks uniformly among unfilled cells of the outermost
	// ring that still has one, moving inward as the cluster grows.
	SpawnPerimeter SpawnPolicy = "perimeter"
)

// Adjacency is the neighbor rule used for both movement and stick checks:
// 4-connected (orthogonal) or 8-connected (orthogonal plus diagonal).
type Adjacency int

const (
	Adjacency4 Adjacency = 4
	Adjacency8 Adjacency = 8
)

// Params describes one run. Changing any field invalidates the current grid;
// the controller rebuilds the whole state on Reconfigure rather than
// patching it in place.
type Params struct {
	Width           int         `yaml:"width"`
	Height          int         `yaml:"height"`
	TargetParticles int         `yaml:"target_particles"`
	MaxWalkSteps    int         `yaml:"max_walk_steps"`
	Adjacency       Adjacency   `yaml:"adjacency"`
	SpawnPolicy     SpawnPolicy `yaml:"spawn_policy"`
	SpawnRadius     int         `yaml:"spawn_radius"`
	Layout          SeedLayout  `yaml:"layout"`
	Seed            int64       `yaml:"seed"`
}

// DefaultParams mirrors the classic configuration: a 400×400 grid growing
// 10000 particles from a center seed with 8-connected sticking.
func DefaultParams() Params {
	return Params{
		Width:           400,
		Height:          400,
		TargetParticles: 10000,
		MaxWalkSteps:    50000,
		Adjacency:       Adjacency8,
		SpawnPolicy:     SpawnRandom,
		Layout:          LayoutCenter,
		Seed:            1,
	}
}

// Validate reports the first problem that makes the parameter set unusable.
// All failures wrap ErrInvalidParams.
func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d",
			ErrInvalidParams, p.Width, p.Height)
	}
	if p.TargetParticles < 0 {
		return fmt.Errorf("%w: target particle count %d is negative",
			ErrInvalidParams, p.TargetParticles)
	}
	if p.MaxWalkSteps < 1 {
		return fmt.Errorf("%w: max walk steps must be positive, got %d",
			ErrInvalidParams, p.MaxWalkSteps)
	}
	if p.Adjacency != Adjacency4 && p.Adjacency != Adjacency8 {
		return fmt.Errorf("%w: adjacency must be 4 or 8, got %d",
			ErrInvalidParams, p.Adjacency)
	}
	if p.SpawnPolicy != SpawnRandom && p.SpawnPolicy != SpawnPerimeter {
		return fmt.Errorf("%w: unknown spawn policy %q",
			ErrInvalidParams, p.SpawnPolicy)
	}
	if p.SpawnRadius < 0 {
		return fmt.Errorf("%w: spawn radius %d is negative",
			ErrInvalidParams, p.SpawnRadius)
	}
	if !p.Layout.valid() {
		return fmt.Errorf("%w: unknown seed layout %q",
			ErrInvalidParams, p.Layout)
	}
	return nil
}
