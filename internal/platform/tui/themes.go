package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// gradientStops is the number of color stops per theme. Deposits are
// bucketed by age into one stop each, oldest first.
const gradientStops = 10

// Theme colors the cluster by deposit age: seed cells get their own style
// and walker deposits fade through ten gradient stops from the oldest
// particle to the newest.
type Theme struct {
	Name  string
	Seed  lipgloss.Style
	Stops [gradientStops]lipgloss.Style
}

func gradient(name, seed string, stops [gradientStops]string) Theme {
	t := Theme{
		Name: name,
		Seed: lipgloss.NewStyle().Foreground(lipgloss.Color(seed)),
	}
	for i, hex := range stops {
		t.Stops[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return t
}

// Themes returns every built-in theme, in cycling order.
func Themes() []Theme {
	return []Theme{
		gradient("seafoam", "#FFFFFF", [gradientStops]string{
			"#43C197", "#3FAE90", "#3A9B88", "#368881", "#327579",
			"#2D6172", "#294E6A", "#253B63", "#20285B", "#1C1554",
		}),
		gradient("lemon", "#FFFFFF", [gradientStops]string{
			"#F4E900", "#E4E31B", "#D3DE36", "#C3D850", "#B2D26B",
			"#A2CD86", "#91C7A1", "#81C1BB", "#70BCD6", "#60B6F1",
		}),
		gradient("forest", "#FFFFFF", [gradientStops]string{
			"#215600", "#356517", "#4A732E", "#5E8245", "#73915C",
			"#879F72", "#9CAE89", "#B0BDA0", "#C5CBB7", "#D9DACE",
		}),
		gradient("candy", "#FFFFFF", [gradientStops]string{
			"#5DE0F0", "#6EDAF1", "#7FD3F1", "#90CDF2", "#A1C6F2",
			"#B3C0F3", "#C4B9F3", "#D5B3F4", "#E6ACF4", "#F7A6F5",
		}),
		gradient("christmas", "#FFFFFF", [gradientStops]string{
			"#BB0909", "#A61608", "#912307", "#7D3006", "#683D05",
			"#534904", "#3E5603", "#2A6302", "#157001", "#007D00",
		}),
		gradient("creamsicle", "#FFFFFF", [gradientStops]string{
			"#F4711F", "#E4742C", "#D47739", "#C47A46", "#B47D17",
			"#A37F61", "#93826E", "#83857B", "#738888", "#638B95",
		}),
		gradient("vibrant", "#FFFFFF", [gradientStops]string{
			"#54478C", "#2C699A", "#048BA8", "#0DB39E", "#16DB93",
			"#83E377", "#B9E769", "#EFEA5A", "#F1C453", "#F29E4C",
		}),
	}
}

// ThemeByName returns the named theme, falling back to the first theme for
// unknown names.
func ThemeByName(name string) Theme {
	themes := Themes()
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// stopIndex maps a deposit order onto a gradient stop. The gradient spans
// the particles placed so far, so colors shift as the cluster grows.
func stopIndex(order, placed int) int {
	if placed < 1 {
		return 0
	}
	i := (order - 1) * gradientStops / placed
	if i < 0 {
		i = 0
	}
	if i >= gradientStops {
		i = gradientStops - 1
	}
	return i
}

// StyleFor returns the style for a filled cell given its deposit order and
// the number of particles placed so far. Order 0 is a seed cell.
func (t Theme) StyleFor(order, placed int) lipgloss.Style {
	if order == 0 {
		return t.Seed
	}
	return t.Stops[stopIndex(order, placed)]
}
