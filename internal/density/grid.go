package density

import (
	"math"

	"github.com/gogpu/heatmap/internal/parallel"
)

// Grid is a per-pixel density accumulator in row-major order.
type Grid struct {
	Width, Height int
	Cells         []int
}

// NewGrid returns a zeroed grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]int, width*height),
	}
}

// At returns the density at pixel (x, y).
func (g *Grid) At(x, y int) int {
	return g.Cells[y*g.Width+x]
}

// Max returns the largest cell value, or 0 for an empty grid.
func (g *Grid) Max() int {
	m := 0
	for _, v := range g.Cells {
		m = max(m, v)
	}
	return m
}

// Accumulate splats every active point onto a fresh grid.
//
// Each point contributes round((radius - ISqrt(d²)) * percent) to every
// pixel within radius of it, a cone that falls off linearly with pixel
// distance. Overlapping cones add up.
//
// With a non-nil pool the rows are split into bands and each band is
// filled by one task. The result is identical to the sequential one.
func Accumulate(p *Points, radius, width, height int, pool *parallel.WorkerPool) *Grid {
	g := NewGrid(width, height)
	if radius <= 0 || p.ActiveCount() == 0 {
		return g
	}
	parallel.ForEachBand(pool, height, func(b parallel.Band) {
		g.splat(p, radius, b)
	})
	return g
}

// splat adds the contributions of all active points to the rows of b.
//
// The footprint is the square box around the point. Corner pixels beyond
// radius get a non-positive falloff and are skipped.
func (g *Grid) splat(p *Points, radius int, b parallel.Band) {
	r2 := radius * radius
	for i := range p.Len() {
		if !p.Active(i) {
			continue
		}
		px, py, pct := p.X[i], p.Y[i], p.Percent[i]

		x0, x1 := max(px-radius, 0), min(px+radius, g.Width-1)
		y0, y1 := max(py-radius, b.Y0), min(py+radius, b.Y1-1)
		for y := y0; y <= y1; y++ {
			dy := y - py
			row := g.Cells[y*g.Width : (y+1)*g.Width]
			for x := x0; x <= x1; x++ {
				dx := x - px
				d2 := dx*dx + dy*dy
				if d2 >= r2 {
					continue
				}
				falloff := radius - ISqrt(d2)
				row[x] += int(math.Round(float64(falloff) * pct))
			}
		}
	}
}
