package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dla/internal/dla"
)

func testView(t *testing.T) (dla.GridView, int) {
	t.Helper()
	p := dla.DefaultParams()
	p.Width, p.Height = 15, 15
	p.TargetParticles = 10
	c, err := dla.NewController(p)
	if err != nil {
		t.Fatal(err)
	}
	c.TickN(100000)
	return c.Snapshot(), c.Stats().Placed
}

func TestRenderViewDimensions(t *testing.T) {
	view, placed := testView(t)
	theme := Themes()[0]

	out := RenderView(view, theme, placed, 0, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 15 {
		t.Errorf("unclipped render has %d lines, want 15", len(lines))
	}

	// One block glyph per filled cell.
	if got := strings.Count(out, string(filledRune)); got != view.FilledCount() {
		t.Errorf("render shows %d filled cells, grid has %d", got, view.FilledCount())
	}
}

func TestRenderViewClipping(t *testing.T) {
	view, placed := testView(t)
	theme := Themes()[0]

	out := RenderView(view, theme, placed, 8, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Errorf("clipped render has %d lines, want 5", len(lines))
	}
	for i, line := range lines {
		// Styled runs add escape codes; count cells, not bytes.
		cells := strings.Count(line, string(filledRune)) + strings.Count(line, string(emptyRune))
		if cells != 8 {
			t.Errorf("line %d has %d cells, want 8", i, cells)
		}
	}
}

func TestStopIndexSpansGradient(t *testing.T) {
	// First deposit lands on the first stop, last on the last.
	if got := stopIndex(1, 100); got != 0 {
		t.Errorf("stopIndex(1, 100) = %d, want 0", got)
	}
	if got := stopIndex(100, 100); got != gradientStops-1 {
		t.Errorf("stopIndex(100, 100) = %d, want %d", got, gradientStops-1)
	}

	// Small clusters and degenerate counts stay in range.
	for order := 0; order <= 12; order++ {
		for _, placed := range []int{0, 1, 3, 12} {
			got := stopIndex(order, placed)
			if got < 0 || got >= gradientStops {
				t.Fatalf("stopIndex(%d, %d) = %d out of range", order, placed, got)
			}
		}
	}
}

func TestThemeByName(t *testing.T) {
	for _, want := range []string{"seafoam", "lemon", "forest", "candy", "christmas", "creamsicle", "vibrant"} {
		if got := ThemeByName(want).Name; got != want {
			t.Errorf("ThemeByName(%q).Name = %q", want, got)
		}
	}

	// Unknown names fall back to the first theme.
	if got := ThemeByName("plasma").Name; got != Themes()[0].Name {
		t.Errorf("unknown theme resolved to %q", got)
	}
}
