package stages

import (
	"testing"

	"github.com/inkgrain/pressline/internal/colorspec"
	"github.com/inkgrain/pressline/internal/params"
)

func TestPaperToothPreservesDimensionsAndAlpha(t *testing.T) {
	src := solidImage(30, 30, 128, 128, 128, 240)
	cfg := params.Paper{Texture: 0.15, Fibers: 0.2}
	out := PaperTooth(src, cfg, 1.0, false, colorspec.DefaultPaperColor, nil, 1)
	if !src.SameDims(out) {
		t.Fatalf("paper tooth must preserve dimensions")
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 240 {
			t.Fatalf("alpha must be preserved unchanged, got %d", out.Pix[i])
		}
	}
}

func TestPaperMapCacheReusesBuild(t *testing.T) {
	cache := &PaperMapCache{}
	cfg := params.Paper{Texture: 0.1, Fibers: 0.1, Seeded: true}
	src := solidImage(16, 16, 200, 200, 200, 255)

	out1 := PaperTooth(src, cfg, 0.8, false, colorspec.DefaultPaperColor, cache, 99)
	built := cache.val
	out2 := PaperTooth(src, cfg, 0.8, false, colorspec.DefaultPaperColor, cache, 99)
	if len(built) == 0 || &cache.val[0] != &built[0] {
		t.Fatal("second run with the same key should reuse the cached paper map")
	}

	for i := range out1.Pix {
		if out1.Pix[i] != out2.Pix[i] {
			t.Fatalf("seeded paper map runs with the same key should be bit-identical, index %d: %d != %d", i, out1.Pix[i], out2.Pix[i])
		}
	}
}

func TestPaperToothSeededRunsAreDeterministic(t *testing.T) {
	src := solidImage(20, 20, 150, 150, 150, 255)
	cfg := params.Paper{Texture: 0.2, Fibers: 0.3, Seeded: true}
	out1 := PaperTooth(src, cfg, 0.5, true, colorspec.DefaultPaperColor, nil, 42)
	out2 := PaperTooth(src, cfg, 0.5, true, colorspec.DefaultPaperColor, nil, 42)
	for i := range out1.Pix {
		if out1.Pix[i] != out2.Pix[i] {
			t.Fatalf("same run seed should produce identical output, index %d: %d != %d", i, out1.Pix[i], out2.Pix[i])
		}
	}
}
