package dla

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the grid. Walker logic
	// never produces one; it exists so API-level accessors fail recoverably
	// instead of panicking.
	ErrOutOfBounds = errors.New("dla: coordinate out of bounds")

	// ErrNoSpawnableCell means no unfilled cell satisfies the spawn policy.
	// This is the expected terminal condition of a run, not a fault.
	ErrNoSpawnableCell = errors.New("dla: no spawnable cell")

	// ErrNoMove means the walker has no in-bounds unfilled neighbor to step
	// to. Only reachable on degenerate grids; a walker adjacent to the
	// cluster has already stuck.
	ErrNoMove = errors.New("dla: walker has no reachable neighbor")

	// ErrInvalidParams reports a parameter set that cannot describe a run.
	ErrInvalidParams = errors.New("dla: invalid parameters")

	// ErrInvalidInitialState means the configured seed layout produced a
	// grid with no filled cell, so sticking could never occur.
	ErrInvalidInitialState = errors.New("dla: initial state has no seed cell")
)
