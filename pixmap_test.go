package heatmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var _ image.Image = (*Pixmap)(nil)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(7, 3)
	if pm.Width() != 7 || pm.Height() != 3 {
		t.Errorf("size = %dx%d, want 7x3", pm.Width(), pm.Height())
	}
	if pm.Stride() != 28 {
		t.Errorf("Stride() = %d, want 28", pm.Stride())
	}
	if len(pm.Data()) != 7*3*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 7*3*4)
	}
	if !isZero(pm.Data()) {
		t.Error("new pixmap is not transparent")
	}
	if got, want := pm.Bounds(), image.Rect(0, 0, 7, 3); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if pm.ColorModel() != color.RGBAModel {
		t.Error("ColorModel() is not RGBAModel")
	}
}

func TestPixmapRGBAAt(t *testing.T) {
	pm := NewPixmap(4, 4)
	c := color.RGBA{200, 100, 0, 200}
	pm.setRGBA(2, 1, c)

	if got := pm.RGBAAt(2, 1); got != c {
		t.Errorf("RGBAAt(2, 1) = %v, want %v", got, c)
	}
	i := (1*4 + 2) * 4
	if d := pm.Data()[i : i+4]; !bytes.Equal(d, []byte{200, 100, 0, 200}) {
		t.Errorf("raw bytes = %v, want [200 100 0 200]", d)
	}
	if got := pm.At(2, 1); got != color.Color(c) {
		t.Errorf("At(2, 1) = %v, want %v", got, c)
	}

	for _, p := range []image.Point{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		if got := pm.RGBAAt(p.X, p.Y); got != (color.RGBA{}) {
			t.Errorf("RGBAAt(%d, %d) = %v, want transparent", p.X, p.Y, got)
		}
	}
}

func TestPixmapToImageAliases(t *testing.T) {
	pm := NewPixmap(3, 2)
	img := pm.ToImage()
	if img.Bounds() != pm.Bounds() || img.Stride != pm.Stride() {
		t.Fatalf("ToImage() bounds %v stride %d", img.Bounds(), img.Stride)
	}

	img.SetRGBA(1, 1, color.RGBA{9, 8, 7, 255})
	if got := pm.RGBAAt(1, 1); got != (color.RGBA{9, 8, 7, 255}) {
		t.Errorf("write through image not visible in pixmap: %v", got)
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.setRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	pm.setRGBA(4, 4, color.RGBA{255, 255, 255, 255})

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	assertSameColors(t, img, pm)
}

func TestPixmapSavePNG(t *testing.T) {
	pm, err := Render(Rect{Width: 32, Height: 32}, 0.2, []WeightedPoint{Pt(16, 16, 1)})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "heat.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != pm.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), pm.Bounds())
	}
	if _, _, _, a := img.At(16, 16).RGBA(); a != 0xffff {
		t.Errorf("center alpha = %#x, want opaque", a)
	}
}

func TestPixmapSavePNGBadPath(t *testing.T) {
	pm := NewPixmap(1, 1)
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("SavePNG() into a missing directory should fail")
	}
}

// assertSameColors compares opaque and transparent pixels, which survive
// the round trip through non-premultiplied PNG exactly.
func assertSameColors(t *testing.T, got image.Image, want *Pixmap) {
	t.Helper()
	for y := range want.Height() {
		for x := range want.Width() {
			wr, wg, wb, wa := want.At(x, y).RGBA()
			gr, gg, gb, ga := got.At(x, y).RGBA()
			if wr != gr || wg != gg || wb != gb || wa != ga {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
			}
		}
	}
}
