package heatmap

import "github.com/gogpu/heatmap/internal/density"

// Option configures a Render call.
//
// Example:
//
//	// Defaults: classic colormap, grouping on, no weight adjustment.
//	pm, err := heatmap.Render(rect, 0.5, points)
//
//	// Compress the weight range and use four goroutines.
//	pm, err := heatmap.Render(rect, 0.5, points,
//	    heatmap.WithWeightsAdjustment(true),
//	    heatmap.WithParallelism(4))
type Option func(*options)

// options holds the configuration of one Render call.
type options struct {
	adjustWeights bool
	grouping      bool
	groupParams   GroupingParams
	colormap      Colormap
	workers       int
}

// GroupingParams tunes the grouping pass. See WithGroupingParams.
type GroupingParams = density.GroupingParams

// DefaultGroupingParams returns the parameters grouping uses unless
// overridden: merge within 10 pixels, dampen peaks within 20 pixels with
// factor 0.4.
func DefaultGroupingParams() GroupingParams {
	return density.DefaultGrouping
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		grouping:    true,
		groupParams: density.DefaultGrouping,
		colormap:    Classic,
		workers:     1,
	}
}

// WithWeightsAdjustment enables or disables weight balancing. When
// enabled, weights below 1% of the maximum are lifted to 50% and the rest
// of the range is compressed accordingly.
func WithWeightsAdjustment(enabled bool) Option {
	return func(o *options) {
		o.adjustWeights = enabled
	}
}

// WithGrouping enables or disables merging of nearby points and peak
// removal. Grouping is enabled by default.
func WithGrouping(enabled bool) Option {
	return func(o *options) {
		o.grouping = enabled
	}
}

// WithGroupingParams replaces the grouping parameters. It does not enable
// grouping by itself. If PeaksThreshold is below Threshold it is raised
// to Threshold, and PeaksFactor is clamped to [0, 1].
func WithGroupingParams(p GroupingParams) Option {
	return func(o *options) {
		p.PeaksThreshold = max(p.PeaksThreshold, p.Threshold)
		p.PeaksFactor = clamp01(p.PeaksFactor)
		o.groupParams = p
	}
}

// WithColormap sets the colormap. A nil colormap selects Classic.
func WithColormap(cm Colormap) Option {
	return func(o *options) {
		if cm == nil {
			cm = Classic
		}
		o.colormap = cm
	}
}

// WithParallelism spreads density accumulation and painting over n
// goroutines, each owning a band of rows. The output is identical to a
// sequential render. n <= 0 uses GOMAXPROCS; 1 (the default) renders on
// the calling goroutine.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
