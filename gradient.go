package heatmap

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownScheme is returned by Scheme for names it does not know.
var ErrUnknownScheme = errors.New("heatmap: unknown color scheme")

// ColorStop is a keypoint of a Gradient.
type ColorStop struct {
	Offset float64 // Position in the gradient, 0.0 to 1.0
	Color  colorful.Color
}

// Gradient is a Colormap that blends between color stops in HCL space.
// Alpha follows the normalized density, so sparse areas fade out the same
// way they do with Classic.
type Gradient struct {
	stops []ColorStop
}

// NewGradient returns a gradient through the given stops. At least two
// stops are required and every offset must lie in [0, 1]. Stops are
// sorted by offset; the input slice is not modified.
func NewGradient(stops ...ColorStop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: gradient needs at least two stops, got %d", ErrInvalidInput, len(stops))
	}
	for _, s := range stops {
		if s.Offset < 0 || s.Offset > 1 {
			return nil, fmt.Errorf("%w: stop offset %v outside [0,1]", ErrInvalidInput, s.Offset)
		}
	}
	sorted := slices.Clone(stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &Gradient{stops: sorted}, nil
}

// Stops returns a copy of the gradient's stops in offset order.
func (g *Gradient) Stops() []ColorStop {
	return slices.Clone(g.stops)
}

// ColorAt returns the unpremultiplied gradient color at t.
func (g *Gradient) ColorAt(t float64) colorful.Color {
	t = clamp01(t)
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 0; i < len(g.stops)-1; i++ {
		c1, c2 := g.stops[i], g.stops[i+1]
		if c1.Offset <= t && t <= c2.Offset {
			span := c2.Offset - c1.Offset
			if span <= 0 {
				return c2.Color
			}
			return c1.Color.BlendHcl(c2.Color, (t-c1.Offset)/span).Clamped()
		}
	}
	return last.Color
}

// Map implements Colormap.
func (g *Gradient) Map(f float64) color.RGBA {
	a := channel(clamp01(f))
	r, gr, b := g.ColorAt(f).RGB255()
	return color.RGBA{
		R: premultiply(r, a),
		G: premultiply(gr, a),
		B: premultiply(b, a),
		A: a,
	}
}

// schemes holds ColorBrewer ramps ordered from low to high density.
var schemes = map[string][]string{
	"YlOrRd": {"#FFFFCC", "#FFEDA0", "#FED976", "#FEB24C", "#FD8D3C", "#FC4E2A", "#E31A1C", "#BD0026", "#800026"},
	"Blues":  {"#F7FBFF", "#DEEBF7", "#C6DBEF", "#9ECAE1", "#6BAED6", "#4292C6", "#2171B5", "#08519C", "#08306B"},
	"BuPu":   {"#F7FCFD", "#E0ECF4", "#BFD3E6", "#9EBCDA", "#8C96C6", "#8C6BB1", "#88419D", "#810F7C", "#4D004B"},
	"Spectral": {"#5e4fa2", "#3288bd", "#66c2a5", "#abdda4", "#e6f598", "#f1f3a7",
		"#fee090", "#fdae61", "#f46d43", "#d53e4f", "#9e0142"},
}

// SchemeNames returns the names accepted by Scheme, sorted.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes)+1)
	names = append(names, "classic")
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Scheme returns a named colormap. "classic" (or "") selects Classic; the
// other names are evenly spaced ColorBrewer gradients.
func Scheme(name string) (Colormap, error) {
	if name == "" || name == "classic" {
		return Classic, nil
	}
	hexes, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	stops := make([]ColorStop, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("heatmap: scheme %s: %w", name, err)
		}
		stops[i] = ColorStop{Offset: float64(i) / float64(len(hexes)-1), Color: c}
	}
	return NewGradient(stops...)
}
