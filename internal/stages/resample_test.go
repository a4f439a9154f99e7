package stages

import (
	"testing"

	"github.com/inkgrain/pressline/internal/raster"
)

func solidImage(w, h int, r, g, b, a byte) *raster.Image {
	img := raster.New(w, h)
	for i := 0; i < w*h; i++ {
		img.Pix[i*4+0] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = a
	}
	return img
}

func rampImage(w, h int) *raster.Image {
	img := raster.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(x * 255 / maxInt(1, w-1))
			i := img.At(x, y)
			img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = v, v, v, 255
		}
	}
	return img
}

func TestResamplePassthrough(t *testing.T) {
	src := solidImage(100, 80, 10, 20, 30, 255)
	out, err := Resample(src, false, 1024, 1)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if out.Width != 100 || out.Height != 80 {
		t.Fatalf("expected passthrough dims 100x80, got %dx%d", out.Width, out.Height)
	}
}

func TestResamplePreviewDownscale(t *testing.T) {
	src := solidImage(2000, 1000, 5, 5, 5, 255)
	out, err := Resample(src, false, 500, 1)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if out.Width != 500 {
		t.Errorf("expected longest side scaled to 500, got %dx%d", out.Width, out.Height)
	}
	wantH := 250
	if out.Height < wantH-1 || out.Height > wantH+1 {
		t.Errorf("aspect ratio not preserved: got %dx%d, want ~%dx%d", out.Width, out.Height, 500, wantH)
	}
}

func TestResampleExportUpscale(t *testing.T) {
	src := solidImage(50, 50, 0, 0, 0, 255)
	out, err := Resample(src, true, 0, 3)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if out.Width != 150 || out.Height != 150 {
		t.Fatalf("expected 150x150 after 3x upscale, got %dx%d", out.Width, out.Height)
	}
}

func TestResampleUpscaleIdempotentOnSolidColor(t *testing.T) {
	src := solidImage(20, 20, 128, 64, 200, 255)
	out, err := Resample(src, true, 0, 4)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	// interior pixels of a solid-color upscale should reproduce the source
	// color exactly; only edge blending from the scaler could differ.
	cx, cy := out.Width/2, out.Height/2
	i := out.At(cx, cy)
	if out.Pix[i+0] != 128 || out.Pix[i+1] != 64 || out.Pix[i+2] != 200 {
		t.Errorf("interior pixel drifted on solid-color upscale: got %v", out.Pix[i:i+3])
	}
}
