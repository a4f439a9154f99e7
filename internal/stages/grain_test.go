package stages

import (
	"testing"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
)

func TestGrainPreservesDimensionsAndAlpha(t *testing.T) {
	src := solidImage(20, 20, 128, 128, 128, 200)
	out := Grain(src, params.Grain{Amount: 0.2, Weighted: true})
	if !src.SameDims(out) {
		t.Fatalf("grain must preserve dimensions")
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 200 {
			t.Fatalf("alpha channel must be untouched by grain, index %d = %d", i, out.Pix[i])
		}
	}
}

func TestGrainZeroAmountLeavesImageUnchanged(t *testing.T) {
	src := solidImage(10, 10, 90, 90, 90, 255)
	out := Grain(src, params.Grain{Amount: 0, Weighted: false})
	for i := 0; i < len(out.Pix); i++ {
		if out.Pix[i] != src.Pix[i] {
			t.Fatalf("zero grain amount should leave pixels unchanged, index %d: %d != %d", i, out.Pix[i], src.Pix[i])
		}
	}
}

func TestGrainWeightedAffectsShadowsMore(t *testing.T) {
	// with Weighted, the noise magnitude scales with (1 - luminance), so a
	// dark image should show more absolute deviation than a bright one for
	// the same amount, on average over many pixels.
	dark := solidImage(64, 64, 10, 10, 10, 255)
	bright := solidImage(64, 64, 240, 240, 240, 255)
	cfg := params.Grain{Amount: 0.3, Weighted: true}

	sumDevDark := sumAbsDeviation(Grain(dark, cfg), dark)
	sumDevBright := sumAbsDeviation(Grain(bright, cfg), bright)

	if sumDevDark <= sumDevBright {
		t.Errorf("weighted grain should perturb shadows more than highlights on average: dark=%v bright=%v", sumDevDark, sumDevBright)
	}
}

func sumAbsDeviation(a, b *raster.Image) float64 {
	var sum float64
	for i := 0; i < len(a.Pix); i += 4 {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d < 0 {
			d = -d
		}
		sum += float64(d)
	}
	return sum
}
