package heatmap

import (
	"errors"
	"fmt"

	"github.com/gogpu/heatmap/internal/density"
	"github.com/gogpu/heatmap/internal/parallel"
)

// ErrInvalidInput is returned when the points are missing or the
// rectangle has no area. No partial buffer is produced.
var ErrInvalidInput = errors.New("heatmap: invalid input")

// Compute renders points into a raw RGBA buffer of
// rect.Width × rect.Height × 4 bytes using the Classic colormap.
//
// boost scales the heat radius: each point spreads over
// round(50 × boost) pixels. adjustWeights compresses the weight range so
// faint points stay visible; group merges points closer than 10 pixels
// and dampens dense peaks.
//
// Compute fails only for a nil points slice or a rectangle without area.
// Empty input, all-zero weights, or points that all fall outside the
// rectangle produce a fully transparent buffer.
func Compute(rect Rect, boost float64, points []WeightedPoint, adjustWeights, group bool) ([]byte, error) {
	pm, err := Render(rect, boost, points,
		WithWeightsAdjustment(adjustWeights),
		WithGrouping(group))
	if err != nil {
		return nil, err
	}
	return pm.Data(), nil
}

// Render renders points into a new Pixmap sized to rect.
//
// The pipeline is: drop points that cannot reach the rectangle, normalize
// weights to percentages of the maximum, optionally group nearby points,
// accumulate a cone of density around every point, then map density to
// color. See the Option functions for the available settings.
func Render(rect Rect, boost float64, points []WeightedPoint, opts ...Option) (*Pixmap, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if points == nil {
		Logger().Warn("heatmap: rejected input", "reason", "nil points")
		return nil, fmt.Errorf("%w: nil points", ErrInvalidInput)
	}
	if err := rect.validate(); err != nil {
		Logger().Warn("heatmap: rejected input", "err", err)
		return nil, err
	}

	width, height := rect.Size()
	radius := density.RadiusForBoost(boost)
	frame := density.Frame{
		OriginX: rect.X,
		OriginY: rect.Y,
		Width:   width,
		Height:  height,
		Radius:  radius,
	}

	pts := frame.Prepare(len(points), func(i int) (x, y, w float64) {
		p := points[i]
		return p.X, p.Y, p.Weight
	})
	pts.Normalize(o.adjustWeights)

	merged := 0
	if o.grouping {
		merged = pts.Group(o.groupParams)
		pts.Compact()
	}

	var pool *parallel.WorkerPool
	if o.workers != 1 {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}

	grid := density.Accumulate(pts, radius, width, height, pool)
	maxDensity := grid.Max()

	pm := NewPixmap(width, height)
	paint(pm, grid, maxDensity, o.colormap, pool)

	Logger().Debug("heatmap: rendered",
		"width", width,
		"height", height,
		"radius", radius,
		"points", pts.Len(),
		"active", pts.ActiveCount(),
		"merged", merged,
		"maxWeight", pts.MaxWeight,
		"maxDensity", maxDensity)

	return pm, nil
}

// paint maps every non-zero density cell through cm. Cells without
// density stay transparent; a zero maxDensity leaves pm untouched.
func paint(pm *Pixmap, g *density.Grid, maxDensity int, cm Colormap, pool *parallel.WorkerPool) {
	if maxDensity <= 0 {
		return
	}
	m := float64(maxDensity)
	parallel.ForEachBand(pool, g.Height, func(b parallel.Band) {
		for y := b.Y0; y < b.Y1; y++ {
			for x := range g.Width {
				d := g.At(x, y)
				if d <= 0 {
					continue
				}
				pm.setRGBA(x, y, cm.Map(float64(d)/m))
			}
		}
	})
}
