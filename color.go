package heatmap

import (
	"image/color"
	"math"
)

// Colormap maps a normalized density to a premultiplied color.
//
// Map is only called with f in (0, 1]; pixels with no density stay fully
// transparent.
type Colormap interface {
	Map(f float64) color.RGBA
}

// ColormapFunc adapts a plain function to the Colormap interface.
type ColormapFunc func(f float64) color.RGBA

// Map calls fn(f).
func (fn ColormapFunc) Map(f float64) color.RGBA {
	return fn(f)
}

// Classic is the default heat ramp: transparent to red, through yellow,
// to white-hot. Alpha always equals red, which makes the output
// premultiplied by construction.
//
//	R = A = f
//	G = 0 below 0.5, 3(f-0.5) below 0.75, f from 0.75
//	B = 0 below 0.8, 5(f-0.8) from 0.8
var Classic Colormap = ColormapFunc(classic)

func classic(f float64) color.RGBA {
	r := channel(f)
	var g, b uint8
	switch {
	case f >= 0.75:
		g = r
	case f >= 0.5:
		g = channel((f - 0.5) * 3)
	}
	if f >= 0.8 {
		b = channel((f - 0.8) * 5)
	}
	return color.RGBA{R: r, G: g, B: b, A: r}
}

// channel converts a [0,1] intensity into a byte, rounding to nearest.
func channel(v float64) uint8 {
	return uint8(clamp255(math.Round(v * 255)))
}

// premultiply scales an opaque color byte by alpha.
func premultiply(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
