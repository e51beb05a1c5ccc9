// Command heatmap renders an earthquake catalog as a heat map PNG.
//
// It reads a GeoJSON FeatureCollection of quakes (for example a USGS feed),
// projects the epicenters into a map view and writes the rendered heat,
// optionally laid over a base map and annotated with a legend.
//
//	heatmap -in quakes.geojson -out heat.png -boost 0.5 -legend
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/heatmap"
	"github.com/gogpu/heatmap/dataset"
	"github.com/gogpu/heatmap/geo"
	"github.com/gogpu/heatmap/overlay"
)

type config struct {
	in, out, base string
	width, height int
	boost         float64
	adjust, group bool
	scheme        string
	legend        bool
	workers       int
	verbose       bool
	region        geo.Region
	weightScale   float64
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "GeoJSON quake catalog (required)")
	flag.StringVar(&cfg.out, "out", "heat.png", "output PNG file")
	flag.StringVar(&cfg.base, "base", "", "optional base map PNG to draw the heat over")
	flag.IntVar(&cfg.width, "width", 800, "view width in pixels")
	flag.IntVar(&cfg.height, "height", 600, "view height in pixels")
	flag.Float64Var(&cfg.boost, "boost", 0.5, "heat radius multiplier (radius = 50*boost pixels)")
	flag.BoolVar(&cfg.adjust, "adjust", false, "boost faint weights")
	flag.BoolVar(&cfg.group, "group", true, "merge nearby points and dampen peaks")
	flag.StringVar(&cfg.scheme, "scheme", "classic", "colormap: "+strings.Join(heatmap.SchemeNames(), ", "))
	flag.BoolVar(&cfg.legend, "legend", false, "draw a colorbar legend")
	flag.IntVar(&cfg.workers, "workers", 1, "goroutines per render (0 = GOMAXPROCS)")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Float64Var(&cfg.region.Center.Lat, "lat", 39.0, "view center latitude")
	flag.Float64Var(&cfg.region.Center.Lon, "lon", -77.0, "view center longitude")
	flag.Float64Var(&cfg.region.SpanLat, "span-lat", 10.0, "view span in degrees of latitude")
	flag.Float64Var(&cfg.region.SpanLon, "span-lon", 13.0, "view span in degrees of longitude")
	flag.Float64Var(&cfg.weightScale, "weight-scale", dataset.DefaultWeightScale, "weight per unit of magnitude")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	heatmap.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("heatmap failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	if cfg.in == "" {
		flag.Usage()
		return errors.New("missing -in")
	}

	cm, err := heatmap.Scheme(cfg.scheme)
	if err != nil {
		return err
	}

	quakes, err := dataset.Load(cfg.in)
	if err != nil {
		return err
	}

	view := geo.Viewport{Region: cfg.region, Width: cfg.width, Height: cfg.height}
	heat, err := view.Render(cfg.boost, quakes.Locations(), quakes.Weights(cfg.weightScale),
		heatmap.WithWeightsAdjustment(cfg.adjust),
		heatmap.WithGrouping(cfg.group),
		heatmap.WithColormap(cm),
		heatmap.WithParallelism(cfg.workers))
	if err != nil {
		return err
	}

	var base image.Image
	if cfg.base != "" {
		if base, err = loadPNG(cfg.base); err != nil {
			return err
		}
	}
	img := overlay.Compose(base, heat)

	if cfg.legend {
		lg := overlay.Legend(cm, min(img.Bounds().Dx(), 240), overlay.LegendOptions{
			Low:   0,
			High:  quakes.MaxMagnitude(),
			Title: "magnitude",
		})
		overlay.Place(img, lg, image.Pt(8, img.Bounds().Dy()-lg.Bounds().Dy()-8))
	}

	if err := savePNG(cfg.out, img); err != nil {
		return err
	}
	logger.Info("heat map saved", "path", cfg.out, "quakes", len(quakes),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open base map: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode base map: %w", err)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode output: %w", err)
	}
	return f.Close()
}
