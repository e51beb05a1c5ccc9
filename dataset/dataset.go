// Package dataset loads earthquake catalogs for the heatmap demo.
//
// Catalogs are GeoJSON FeatureCollections of Point features, as served by
// the USGS earthquake feeds. The magnitude is read from the "mag"
// property, falling back to "magnitude".
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/heatmap"
	"github.com/gogpu/heatmap/geo"
	geojson "github.com/paulmach/go.geojson"
)

// DefaultWeightScale converts magnitudes into heatmap weights.
const DefaultWeightScale = 10

// Errors returned by the loaders.
var (
	// ErrEmptyData is returned when the input holds no bytes.
	ErrEmptyData = errors.New("dataset: empty data")

	// ErrNoQuakes is returned when no feature could be used.
	ErrNoQuakes = errors.New("dataset: no usable features")
)

// magnitudeKeys are the property names tried in order.
var magnitudeKeys = []string{"mag", "magnitude"}

// Quake is a single catalog entry.
type Quake struct {
	Location  geo.Location
	Magnitude float64
}

// Quakes is a catalog.
type Quakes []Quake

// Locations returns the epicenters in catalog order.
func (q Quakes) Locations() []geo.Location {
	locs := make([]geo.Location, len(q))
	for i, e := range q {
		locs[i] = e.Location
	}
	return locs
}

// Weights returns magnitude × scale for each entry. Negative magnitudes,
// which some catalogs report for micro-quakes, become zero weight.
func (q Quakes) Weights(scale float64) []float64 {
	w := make([]float64, len(q))
	for i, e := range q {
		w[i] = max(0, e.Magnitude*scale)
	}
	return w
}

// MaxMagnitude returns the largest magnitude in the catalog, or 0.
func (q Quakes) MaxMagnitude() float64 {
	m := 0.0
	for _, e := range q {
		m = max(m, e.Magnitude)
	}
	return m
}

// Decode parses a GeoJSON FeatureCollection.
//
// Features without Point geometry or without a numeric magnitude are
// skipped and logged at debug level. Decode fails if nothing is left.
func Decode(data []byte) (Quakes, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("dataset: decode GeoJSON: %w", err)
	}

	quakes := make(Quakes, 0, len(fc.Features))
	skipped := 0
	for _, f := range fc.Features {
		q, ok := quakeFromFeature(f)
		if !ok {
			skipped++
			continue
		}
		quakes = append(quakes, q)
	}
	heatmap.Logger().Debug("dataset: decoded catalog", "quakes", len(quakes), "skipped", skipped)

	if len(quakes) == 0 {
		return nil, fmt.Errorf("%w: %d features skipped", ErrNoQuakes, skipped)
	}
	return quakes, nil
}

// Read decodes a catalog from r.
func Read(r io.Reader) (Quakes, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	return Decode(data)
}

// Load decodes the catalog stored at path.
func Load(path string) (Quakes, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("dataset: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

func quakeFromFeature(f *geojson.Feature) (Quake, bool) {
	if f == nil || f.Geometry == nil || !f.Geometry.IsPoint() || len(f.Geometry.Point) < 2 {
		return Quake{}, false
	}
	for _, key := range magnitudeKeys {
		mag, err := f.PropertyFloat64(key)
		if err != nil {
			continue
		}
		// GeoJSON positions are longitude first.
		return Quake{
			Location:  geo.Location{Lat: f.Geometry.Point[1], Lon: f.Geometry.Point[0]},
			Magnitude: mag,
		}, true
	}
	return Quake{}, false
}
