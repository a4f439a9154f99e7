package stages

import (
	"testing"

	"github.com/inkgrain/pressline/internal/params"
)

func TestVeloxCrushesToExtremes(t *testing.T) {
	cfg := params.Velox{Threshold: 0.5, Contrast: 3.0}
	dark := solidImage(4, 4, 10, 10, 10, 255)
	light := solidImage(4, 4, 245, 245, 245, 255)

	outDark := Velox(dark, cfg)
	outLight := Velox(light, cfg)

	if outDark.Pix[0] > 30 {
		t.Errorf("dark input should crush toward black, got %d", outDark.Pix[0])
	}
	if outLight.Pix[0] < 225 {
		t.Errorf("light input should crush toward white, got %d", outLight.Pix[0])
	}
}

func TestVeloxReplicatesToAllChannels(t *testing.T) {
	cfg := params.Velox{Threshold: 0.5, Contrast: 1.5}
	src := solidImage(2, 2, 200, 30, 90, 128)
	out := Velox(src, cfg)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != out.Pix[i+1] || out.Pix[i+1] != out.Pix[i+2] {
			t.Fatalf("velox output should be gray, got R=%d G=%d B=%d", out.Pix[i], out.Pix[i+1], out.Pix[i+2])
		}
		if out.Pix[i+3] != 128 {
			t.Fatalf("alpha should be preserved unchanged, got %d", out.Pix[i+3])
		}
	}
}

func TestVeloxPreservesDimensions(t *testing.T) {
	src := solidImage(7, 5, 1, 2, 3, 255)
	out := Velox(src, params.Velox{Threshold: 0.5, Contrast: 2})
	if !src.SameDims(out) {
		t.Fatalf("velox must preserve dimensions: %dx%d -> %dx%d", src.Width, src.Height, out.Width, out.Height)
	}
}
