// Package overlay turns rendered heatmaps into displayable images: it
// scales them, lays them over a base map and draws a colorbar legend.
package overlay

import (
	"image"
	"image/color"

	"github.com/gogpu/heatmap"
	xdraw "golang.org/x/image/draw"
)

// Compose returns a new image of base's size with heat drawn over it.
//
// The heatmap is premultiplied, so it composites with a plain Over. If
// the sizes differ, heat is stretched to fit base with Catmull-Rom
// resampling. A nil base yields the heatmap on a transparent canvas.
func Compose(base image.Image, heat *heatmap.Pixmap) *image.RGBA {
	if base == nil {
		dst := image.NewRGBA(heat.Bounds())
		copy(dst.Pix, heat.Data())
		return dst
	}

	b := base.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), base, b.Min, xdraw.Src)

	src := heat.ToImage()
	if src.Bounds().Size() == dst.Bounds().Size() {
		xdraw.Draw(dst, dst.Bounds(), src, image.Point{}, xdraw.Over)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
		heatmap.Logger().Debug("overlay: scaled heatmap",
			"from", src.Bounds().Size(), "to", dst.Bounds().Size())
	}
	return dst
}

// Scale resamples img to width × height with Catmull-Rom filtering.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Fill returns a width × height image filled with c, useful as a plain
// base when no map tile is available.
func Fill(width, height int, c color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
	return dst
}

// Place draws src onto dst with its top-left corner at pt.
func Place(dst *image.RGBA, src image.Image, pt image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(pt)
	xdraw.Draw(dst, r, src, src.Bounds().Min, xdraw.Over)
}
