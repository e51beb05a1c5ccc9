// Package geo maps geographic locations onto the pixel space of a heatmap.
//
// A Viewport describes a map view the way MapKit does: a center location
// and a span in degrees, shown in a view of fixed pixel size. Locations are
// projected with spherical Web Mercator and then placed through an affine
// transform, so the view matches a slippy-map tile layer of the same
// region.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/heatmap"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// MaxLatitude is the latitude limit of Web Mercator in degrees.
const MaxLatitude = 85.05112878

// ErrInvalidViewport is returned for viewports that cannot be projected.
var ErrInvalidViewport = errors.New("geo: invalid viewport")

// Location is a point on the globe in degrees.
type Location struct {
	Lat, Lon float64
}

// Region is the visible part of the map: a center and the extent in
// degrees of latitude and longitude.
type Region struct {
	Center  Location
	SpanLat float64
	SpanLon float64
}

// Viewport is a Region shown in a view of Width × Height pixels.
type Viewport struct {
	Region Region
	Width  int
	Height int
}

// Mercator projects loc into spherical Web Mercator units (radians of
// longitude, with y growing northward). Latitudes are clamped to
// ±MaxLatitude.
func Mercator(loc Location) vec.Vec2 {
	lat := max(-MaxLatitude, min(MaxLatitude, loc.Lat)) * math.Pi / 180
	return vec.Vec2{
		X: loc.Lon * math.Pi / 180,
		Y: math.Log(math.Tan(math.Pi/4 + lat/2)),
	}
}

// Validate reports whether v can be projected.
func (v Viewport) Validate() error {
	r := v.Region
	switch {
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("%w: view size %dx%d", ErrInvalidViewport, v.Width, v.Height)
	case !(r.SpanLat > 0) || !(r.SpanLon > 0):
		return fmt.Errorf("%w: span %vx%v", ErrInvalidViewport, r.SpanLat, r.SpanLon)
	case r.SpanLat >= 2*MaxLatitude:
		return fmt.Errorf("%w: latitude span %v too large", ErrInvalidViewport, r.SpanLat)
	}
	return nil
}

// Bounds returns the region's extent in Mercator units.
func (v Viewport) Bounds() rect.Rect {
	c := v.Region.Center
	sw := Mercator(Location{Lat: c.Lat - v.Region.SpanLat/2, Lon: c.Lon - v.Region.SpanLon/2})
	ne := Mercator(Location{Lat: c.Lat + v.Region.SpanLat/2, Lon: c.Lon + v.Region.SpanLon/2})
	return rect.Rect{LLx: sw.X, LLy: sw.Y, URx: ne.X, URy: ne.Y}
}

// Transform returns the matrix taking Mercator units to view pixels, with
// the north-west corner of the region at (0,0) and y pointing down.
func (v Viewport) Transform() matrix.Matrix {
	b := v.Bounds()
	sx := float64(v.Width) / (b.URx - b.LLx)
	sy := float64(v.Height) / (b.URy - b.LLy)
	return matrix.Matrix{
		sx, 0,
		0, -sy,
		-b.LLx * sx, b.URy * sy,
	}
}

// Project returns the view pixel position of loc.
func (v Viewport) Project(loc Location) vec.Vec2 {
	return apply(v.Transform(), Mercator(loc))
}

// Rect returns the heatmap rectangle covering the whole view.
func (v Viewport) Rect() heatmap.Rect {
	return heatmap.Rect{Width: float64(v.Width), Height: float64(v.Height)}
}

// Points projects locs into view pixels and attaches weights. A nil
// weights slice gives every location weight 1; otherwise its length must
// match locs.
func (v Viewport) Points(locs []Location, weights []float64) ([]heatmap.WeightedPoint, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if weights != nil && len(weights) != len(locs) {
		return nil, fmt.Errorf("%w: %d locations, %d weights", heatmap.ErrInvalidInput, len(locs), len(weights))
	}

	m := v.Transform()
	pts := make([]heatmap.WeightedPoint, len(locs))
	for i, loc := range locs {
		p := apply(m, Mercator(loc))
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		pts[i] = heatmap.WeightedPoint{X: p.X, Y: p.Y, Weight: w}
	}
	heatmap.Logger().Debug("geo: projected locations", "count", len(pts), "width", v.Width, "height", v.Height)
	return pts, nil
}

// Render projects locs through v and renders them with heatmap.Render.
func (v Viewport) Render(boost float64, locs []Location, weights []float64, opts ...heatmap.Option) (*heatmap.Pixmap, error) {
	pts, err := v.Points(locs, weights)
	if err != nil {
		return nil, err
	}
	return heatmap.Render(v.Rect(), boost, pts, opts...)
}

// apply maps p through m using the PDF matrix convention
// [a b c d e f]: x' = a·x + c·y + e, y' = b·x + d·y + f.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
