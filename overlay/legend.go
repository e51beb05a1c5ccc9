package overlay

import (
	"image"
	"image/color"

	"github.com/gogpu/heatmap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Legend layout in pixels.
const (
	legendPadding = 4
	legendBarH    = 10
)

// LegendOptions configures Legend.
type LegendOptions struct {
	// Low and High label the two ends of the bar.
	Low, High float64

	// Title is printed above the bar when non-empty.
	Title string

	// Lang selects number formatting for the labels.
	// The zero value formats like English.
	Lang language.Tag

	// Background fills the legend box. Nil means semi-transparent black.
	Background color.Color

	// Foreground is the text color. Nil means white.
	Foreground color.Color
}

// Legend draws a horizontal colorbar for cm, width pixels wide, with the
// Low and High labels underneath.
func Legend(cm heatmap.Colormap, width int, opts LegendOptions) *image.RGBA {
	face := basicfont.Face7x13
	lineH := face.Metrics().Height.Ceil()

	height := legendPadding + legendBarH + legendPadding + lineH + legendPadding
	if opts.Title != "" {
		height += lineH
	}
	width = max(width, 2*legendPadding+2)

	bg := opts.Background
	if bg == nil {
		bg = color.RGBA{A: 0xa0}
	}
	fg := opts.Foreground
	if fg == nil {
		fg = color.White
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	y := legendPadding
	if opts.Title != "" {
		d.Dot = fixed.P(legendPadding, y+face.Metrics().Ascent.Ceil())
		d.DrawString(opts.Title)
		y += lineH
	}

	// The bar starts at the smallest positive density.
	barW := width - 2*legendPadding
	for i := range barW {
		c := cm.Map(float64(i+1) / float64(barW))
		col := image.Rect(legendPadding+i, y, legendPadding+i+1, y+legendBarH)
		xdraw.Draw(dst, col, image.NewUniform(c), image.Point{}, xdraw.Over)
	}
	y += legendBarH + legendPadding

	p := message.NewPrinter(opts.Lang)
	lo, hi := p.Sprintf("%.1f", opts.Low), p.Sprintf("%.1f", opts.High)
	base := y + face.Metrics().Ascent.Ceil()

	d.Dot = fixed.P(legendPadding, base)
	d.DrawString(lo)

	hiW := d.MeasureString(hi).Ceil()
	d.Dot = fixed.P(max(legendPadding, width-legendPadding-hiW), base)
	d.DrawString(hi)

	return dst
}
