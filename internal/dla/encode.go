package dla

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/tui-dla/internal/core"
)

// savedRun is the on-disk form of a run: the full cell field with deposit
// orders, the parameters (seed included) and the counters. Rebuilding the
// run from Params and calling TickN(Generations) replays it exactly; Load
// instead restores the field as-is and continues from a derived seed,
// which is cheap and still deterministic per saved file.
type savedRun struct {
	Params      Params
	Cells       []Cell
	Placed      int
	Generations int
	Timeouts    int
	WalkSteps   uint64
}

// Save writes the run as a gzip-compressed gob stream.
func (c *Controller) Save(w io.Writer) error {
	zw := gzip.NewWriter(w)
	sr := savedRun{
		Params:      c.params,
		Cells:       append([]Cell(nil), c.engine.grid.cells...),
		Placed:      c.engine.placed,
		Generations: c.engine.generations,
		Timeouts:    c.engine.timeouts,
		WalkSteps:   c.engine.walkSteps,
	}
	if err := gob.NewEncoder(zw).Encode(sr); err != nil {
		zw.Close()
		return fmt.Errorf("dla: encode run: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("dla: compress run: %w", err)
	}
	return nil
}

// SaveFile writes the run to the given path, refusing to overwrite an
// existing file.
func (c *Controller) SaveFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("dla: create save file: %w", err)
	}
	defer f.Close()
	return c.Save(f)
}

// Load restores a controller from a stream produced by Save. Further ticks
// draw from a continuation seed (Seed XOR generation counter) so resuming
// the same file always produces the same future.
func Load(r io.Reader) (*Controller, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("dla: open saved run: %w", err)
	}
	defer zr.Close()

	var sr savedRun
	if err := gob.NewDecoder(zr).Decode(&sr); err != nil {
		return nil, fmt.Errorf("dla: decode run: %w", err)
	}
	if err := sr.Params.Validate(); err != nil {
		return nil, err
	}
	if len(sr.Cells) != sr.Params.Width*sr.Params.Height {
		return nil, fmt.Errorf("%w: saved cell field has %d cells for a %dx%d grid",
			ErrInvalidParams, len(sr.Cells), sr.Params.Width, sr.Params.Height)
	}

	g := &Grid{w: sr.Params.Width, h: sr.Params.Height, cells: sr.Cells}
	if g.FilledCount() == 0 {
		return nil, fmt.Errorf("%w: saved run has no filled cell", ErrInvalidInitialState)
	}
	rng := core.NewRNG(sr.Params.Seed ^ int64(sr.Generations))
	eng := &Engine{
		grid:        g,
		params:      sr.Params,
		walker:      NewWalker(g, sr.Params.Adjacency, rng),
		rng:         rng,
		placed:      sr.Placed,
		generations: sr.Generations,
		timeouts:    sr.Timeouts,
		walkSteps:   sr.WalkSteps,
	}
	c := &Controller{params: sr.Params, engine: eng}
	c.refreshDone()
	return c, nil
}

// LoadFile restores a controller from a file written by SaveFile.
func LoadFile(path string) (*Controller, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dla: open save file: %w", err)
	}
	defer f.Close()
	return Load(f)
}
