// Package heatmap renders weighted points into a density ("heat") map.
//
// # Overview
//
// heatmap is a Pure Go density map renderer. It takes points in screen
// coordinates, each with a weight such as an earthquake magnitude,
// and produces a premultiplied RGBA buffer that can be laid over a map.
//
// # Quick Start
//
//	import "github.com/gogpu/heatmap"
//
//	points := []heatmap.WeightedPoint{
//	    heatmap.Pt(120, 80, 4.5),
//	    heatmap.Pt(130, 95, 6.1),
//	}
//	pm, err := heatmap.Render(heatmap.Rect{Width: 320, Height: 240}, 0.5, points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("heat.png")
//
// For the classic signature returning raw bytes, use Compute.
//
// # Pipeline
//
// Rendering runs five stages, each over whole in-memory arrays:
//   - Points more than one radius outside the rectangle are dropped.
//   - Weights become percentages of the maximum weight, optionally with
//     the low end of the range boosted.
//   - Optionally, points within 10 pixels merge and dense peaks are
//     dampened.
//   - Each point adds a cone of density, linear in pixel distance, over
//     round(50 × boost) pixels.
//   - Density is normalized to [0, 1] and mapped through a Colormap.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. The geo
// sub-package converts latitude and longitude into this space.
//
// # Concurrency
//
// Render is safe to call from multiple goroutines; every call owns its
// buffers. WithParallelism splits a single render across goroutines by
// row bands without changing its output.
package heatmap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
