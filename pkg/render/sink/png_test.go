package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/render/styles"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	return img
}

func gray(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestRenderPNGSize(t *testing.T) {
	s := tileSheet(t, 2, []int{0, 0}, layout.Options{})
	data, err := RenderPNG(s, WithDPI(100))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	b := decodePNG(t, data).Bounds()
	if b.Dx() != 170 || b.Dy() != 100 {
		t.Errorf("size = %dx%d, want 170x100", b.Dx(), b.Dy())
	}
}

func TestRenderPNGSolid(t *testing.T) {
	// Value 0 lights slots 0 and 7 of both rows.
	s := tileSheet(t, 1, []int{0, 0}, layout.Options{})
	data, err := RenderPNG(s, WithDPI(100))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img := decodePNG(t, data)

	if g := gray(img, 85, 25); g > 50 {
		t.Errorf("tile body gray = %d, want black", g)
	}
	if g := gray(img, 15, 15); g < 200 {
		t.Errorf("first pip gray = %d, want white", g)
	}
	if g := gray(img, 155, 35); g < 200 {
		t.Errorf("last pip gray = %d, want white", g)
	}
}

func TestRenderPNGOutline(t *testing.T) {
	s := tileSheet(t, 1, []int{0, 0}, layout.Options{})
	data, err := RenderPNG(s, WithDPI(100), WithPNGStyle(styles.NewOutline(1)))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img := decodePNG(t, data)
	if g := gray(img, 85, 25); g < 200 {
		t.Errorf("tile body gray = %d, want white", g)
	}
	if g := gray(img, 15, 15); g > 50 {
		t.Errorf("pip gray = %d, want black", g)
	}
}

func TestRenderPNGInvalidDPI(t *testing.T) {
	s := tileSheet(t, 1, []int{0, 0}, layout.Options{})
	for _, dpi := range []float64{0, -10} {
		if _, err := RenderPNG(s, WithDPI(dpi)); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("dpi %v: error = %v, want invalid input", dpi, err)
		}
	}
	s.Pages = make([]layout.Page, 5000)
	if _, err := RenderPNG(s, WithDPI(600)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("oversized raster error = %v, want invalid input", err)
	}
}
