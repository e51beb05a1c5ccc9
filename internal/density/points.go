// Package density implements the point-to-pixel stages of the heatmap
// pipeline: preprocessing, weight normalization, grouping and density
// accumulation.
//
// All types here are owned by a single Render call. Nothing is shared
// between calls and nothing is safe for concurrent mutation, except where
// a function documents banded parallelism.
package density

import "math"

// Frame describes the pixel grid points are prepared for.
type Frame struct {
	// OriginX and OriginY are subtracted from point coordinates to obtain
	// frame-local pixel coordinates.
	OriginX, OriginY float64

	// Width and Height are the grid dimensions in pixels. Both must be
	// positive.
	Width, Height int

	// Radius is the falloff radius in pixels. Points further than Radius
	// outside the grid cannot influence it and are dropped.
	Radius int
}

// RadiusForBoost converts a caller boost factor into a pixel radius.
func RadiusForBoost(boost float64) int {
	if !(boost > 0) || math.IsInf(boost, 0) {
		return 0
	}
	return int(math.Round(50 * boost))
}

// Points is the working point set, stored as parallel slices.
//
// A point is active when it has not been removed and its weight percent
// is positive. Removed points keep their slot until Compact.
type Points struct {
	X, Y []int

	// Percent is the weight in percent of MaxWeight, filled by Normalize.
	Percent []float64

	// MaxWeight is the largest raw weight among the prepared points.
	MaxWeight float64

	raw     []float64
	removed []bool
}

// Prepare copies the points that can influence the frame into a dense
// working set. point reports the coordinates and raw weight of the i-th
// input point.
//
// Coordinates are truncated toward zero after the origin is subtracted.
// Points with non-finite coordinates or weights are dropped.
func (f Frame) Prepare(n int, point func(i int) (x, y, weight float64)) *Points {
	p := &Points{
		X:   make([]int, 0, n),
		Y:   make([]int, 0, n),
		raw: make([]float64, 0, n),
	}
	r := f.Radius
	for i := range n {
		x, y, w := point(i)
		lx, ly := x-f.OriginX, y-f.OriginY
		if !finite(lx) || !finite(ly) || !finite(w) {
			continue
		}
		// Compare in float space first so huge coordinates cannot
		// overflow the int conversion.
		if lx <= float64(-r-1) || ly <= float64(-r-1) ||
			lx >= float64(f.Width+r+1) || ly >= float64(f.Height+r+1) {
			continue
		}
		px, py := int(lx), int(ly)
		if px < -r || py < -r || px >= f.Width+r || py >= f.Height+r {
			continue
		}
		p.X = append(p.X, px)
		p.Y = append(p.Y, py)
		p.raw = append(p.raw, w)
		if w > p.MaxWeight {
			p.MaxWeight = w
		}
	}
	p.Percent = make([]float64, len(p.X))
	p.removed = make([]bool, len(p.X))
	return p
}

// Len returns the number of slots, including removed points.
func (p *Points) Len() int {
	return len(p.X)
}

// Active reports whether point i takes part in grouping and accumulation.
func (p *Points) Active(i int) bool {
	return !p.removed[i] && p.Percent[i] > 0
}

// ActiveCount returns the number of active points.
func (p *Points) ActiveCount() int {
	n := 0
	for i := range p.X {
		if p.Active(i) {
			n++
		}
	}
	return n
}

// Remove marks point i as removed.
func (p *Points) Remove(i int) {
	p.removed[i] = true
}

// Compact drops removed points, preserving the order of the rest.
func (p *Points) Compact() {
	k := 0
	for i := range p.X {
		if p.removed[i] {
			continue
		}
		p.X[k] = p.X[i]
		p.Y[k] = p.Y[i]
		p.Percent[k] = p.Percent[i]
		p.raw[k] = p.raw[i]
		k++
	}
	p.X = p.X[:k]
	p.Y = p.Y[:k]
	p.Percent = p.Percent[:k]
	p.raw = p.raw[:k]
	p.removed = p.removed[:k]
	clear(p.removed)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
