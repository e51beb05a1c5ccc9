package heatmap

import "fmt"

// WeightedPoint is a data point in rectangle coordinates together with its
// intensity. Weight should be non-negative; points with zero or negative
// weight never contribute heat.
type WeightedPoint struct {
	X, Y   float64
	Weight float64
}

// Pt is a convenience function to create a WeightedPoint.
func Pt(x, y, weight float64) WeightedPoint {
	return WeightedPoint{X: x, Y: y, Weight: weight}
}

// WeightedPoints zips parallel coordinate and weight slices.
//
// A nil weights slice gives every point weight 1, an even distribution.
// Otherwise all three slices must have the same length.
func WeightedPoints(xs, ys, weights []float64) ([]WeightedPoint, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x coordinates, %d y coordinates", ErrInvalidInput, len(xs), len(ys))
	}
	if weights != nil && len(weights) != len(xs) {
		return nil, fmt.Errorf("%w: %d points, %d weights", ErrInvalidInput, len(xs), len(weights))
	}
	pts := make([]WeightedPoint, len(xs))
	for i := range xs {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		pts[i] = WeightedPoint{X: xs[i], Y: ys[i], Weight: w}
	}
	return pts, nil
}

// Rect is the region a heatmap is rendered for. X and Y are subtracted
// from point coordinates; Width and Height, truncated to whole pixels,
// give the size of the output.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Size returns the pixel dimensions of r.
func (r Rect) Size() (width, height int) {
	return int(r.Width), int(r.Height)
}

// validate reports why r cannot be rendered, or nil.
func (r Rect) validate() error {
	if !(r.Width > 0) || !(r.Height > 0) {
		return fmt.Errorf("%w: rectangle size %vx%v", ErrInvalidInput, r.Width, r.Height)
	}
	if w, h := r.Size(); w <= 0 || h <= 0 {
		return fmt.Errorf("%w: rectangle %vx%v is smaller than one pixel", ErrInvalidInput, r.Width, r.Height)
	}
	return nil
}
