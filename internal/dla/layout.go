package dla

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dla/internal/core"
)

// SeedLayout selects the initial filled cells present before any walk.
type SeedLayout string

const (
	// LayoutCenter fills the single center cell.
	LayoutCenter SeedLayout = "center"
	// LayoutBottomEdge fills the entire bottom row.
	LayoutBottomEdge SeedLayout = "bottom-edge"
	// LayoutAllEdges fills all four border rows/columns.
	LayoutAllEdges SeedLayout = "all-edges"
	// LayoutFourDots fills one cell in each quadrant, at thirds.
	LayoutFourDots SeedLayout = "four-dots"
	// LayoutRandomFive fills five cells chosen uniformly at random.
	LayoutRandomFive SeedLayout = "random-five"
	// LayoutRing fills a circle of radius min(W,H)/10 around the center.
	LayoutRing SeedLayout = "ring"
)

// Layouts lists every supported seed layout, in presentation order.
func Layouts() []SeedLayout {
	return []SeedLayout{
		LayoutCenter, LayoutBottomEdge, LayoutAllEdges,
		LayoutFourDots, LayoutRandomFive, LayoutRing,
	}
}

func (l SeedLayout) valid() bool {
	switch l {
	case LayoutCenter, LayoutBottomEdge, LayoutAllEdges,
		LayoutFourDots, LayoutRandomFive, LayoutRing:
		return true
	}
	return false
}

// ApplyLayout fills the seed cells for the given layout. Seed cells carry
// deposit order 0. The rng is consumed only by LayoutRandomFive, so the
// other layouts do not perturb the walk sequence.
func ApplyLayout(g *Grid, layout SeedLayout, rng *core.RNG) error {
	w, h := g.Width(), g.Height()
	switch layout {
	case LayoutCenter:
		return g.Fill(w/2, h/2, 0)
	case LayoutBottomEdge:
		for x := 0; x < w; x++ {
			if err := g.Fill(x, h-1, 0); err != nil {
				return err
			}
		}
	case LayoutAllEdges:
		for x := 0; x < w; x++ {
			if err := g.Fill(x, 0, 0); err != nil {
				return err
			}
			if err := g.Fill(x, h-1, 0); err != nil {
				return err
			}
		}
		for y := 0; y < h; y++ {
			if err := g.Fill(0, y, 0); err != nil {
				return err
			}
			if err := g.Fill(w-1, y, 0); err != nil {
				return err
			}
		}
	case LayoutFourDots:
		for _, fx := range []int{1, 2} {
			for _, fy := range []int{1, 2} {
				if err := g.Fill(fx*w/3, fy*h/3, 0); err != nil {
					return err
				}
			}
		}
	case LayoutRandomFive:
		for i := 0; i < 5; i++ {
			if err := g.Fill(rng.IntN(w), rng.IntN(h), 0); err != nil {
				return err
			}
		}
	case LayoutRing:
		r := min(w, h) / 10
		cx, cy := w/2, h/2
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if cellDistance(x, y, cx, cy) == r {
					if err := g.Fill(x, y, 0); err != nil {
						return err
					}
				}
			}
		}
	default:
		return fmt.Errorf("%w: unknown seed layout %q", ErrInvalidParams, layout)
	}
	return nil
}

// cellDistance is the euclidean distance between cells, truncated to an
// integer so ring membership is a simple equality test.
func cellDistance(x, y, x2, y2 int) int {
	dx := float64(x - x2)
	dy := float64(y - y2)
	return int(math.Sqrt(dx*dx + dy*dy))
}
