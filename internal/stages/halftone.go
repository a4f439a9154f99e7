package stages

import (
	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
)

// Halftone rasterizes per-plate dotted screens, composited
// multiplicatively onto a paper-colored base in laydown order. halftone
// and press are always effectively active, so this stage always runs.
func Halftone(src *raster.Image, cfg params.Config) *raster.Image {
	w, h := src.Width, src.Height
	feedVertical := cfg.Press.Feed == "vertical"

	reg := cfg.Registration
	if !reg.Active {
		reg = params.Registration{}
	}

	preSort := buildPlates(cfg.Halftone, reg)
	renderOrder := sortByLaydown(preSort, cfg.Press.Laydown)

	rendered := make(map[int]*raster.Image, len(preSort))
	for _, p := range preSort {
		var skipMap []float64
		if cfg.InkSkip.Active {
			skipMap = buildInkSkipMap(w, h, p.index, cfg.InkSkip, feedVertical)
		}
		ctx := plateRenderCtx{
			cellSize:     float64(cfg.Halftone.CellSize),
			dotShape:     cfg.Halftone.DotShape,
			dotGain:      cfg.DotGain,
			fanout:       reg.Fanout,
			feedVertical: feedVertical,
			slur:         cfg.Press.Slur,
			hickeys:      cfg.Hickeys,
			skipMap:      skipMap,
		}
		rendered[p.index] = buildPlate(src, p, ctx)
	}

	out := raster.New(w, h)
	fillWithColor(out, cfg.Halftone.PaperColor.R, cfg.Halftone.PaperColor.G, cfg.Halftone.PaperColor.B)
	for _, p := range renderOrder {
		compositeMultiply(out, rendered[p.index])
	}

	copyAlpha(out, src)
	return out
}

func fillWithColor(img *raster.Image, r, g, b byte) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = 255
	}
}

// compositeMultiply composites a plate onto the running output:
// out <- out * plate / 255 per channel.
func compositeMultiply(out, plate *raster.Image) {
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i+0] = byte(int(out.Pix[i+0]) * int(plate.Pix[i+0]) / 255)
		out.Pix[i+1] = byte(int(out.Pix[i+1]) * int(plate.Pix[i+1]) / 255)
		out.Pix[i+2] = byte(int(out.Pix[i+2]) * int(plate.Pix[i+2]) / 255)
	}
}
