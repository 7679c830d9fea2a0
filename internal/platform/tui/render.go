package tui

import (
	"strings"

	"github.com/vovakirdan/tui-dla/internal/dla"
)

// cell glyphs. Filled cells render as a solid block, empty cells as a space.
const (
	filledRune = '█'
	emptyRune  = ' '
)

// RenderView converts a grid view to a styled string for display, clipped
// to maxW×maxH cells from the top-left corner. Non-positive limits mean
// unclipped. Groups adjacent cells with the same gradient stop to minimize
// ANSI escape sequences.
func RenderView(v dla.GridView, theme Theme, placed, maxW, maxH int) string {
	w, h := v.Width(), v.Height()
	if maxW > 0 && w > maxW {
		w = maxW
	}
	if maxH > 0 && h > maxH {
		h = maxH
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(w*h*2 + h)

	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same stop for efficiency
		x := 0
		for x < w {
			if !v.Filled(x, y) {
				for x < w && !v.Filled(x, y) {
					sb.WriteRune(emptyRune)
					x++
				}
				continue
			}

			stop := cellStop(v, x, y, placed)
			var run strings.Builder
			for x < w && v.Filled(x, y) && cellStop(v, x, y, placed) == stop {
				run.WriteRune(filledRune)
				x++
			}
			sb.WriteString(theme.StyleFor(stop, gradientStops).Render(run.String()))
		}
	}
	return sb.String()
}

// cellStop maps a filled cell onto a stable run key: 0 for seeds, 1..10 for
// gradient stops. Passing the key back through StyleFor with a full-range
// denominator picks the matching style.
func cellStop(v dla.GridView, x, y, placed int) int {
	order := v.Order(x, y)
	if order == 0 {
		return 0
	}
	return stopIndex(order, placed) + 1
}
