package stages

import (
	"math"

	"github.com/inkgrain/pressline/internal/colorspec"
	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/prng"
	"github.com/inkgrain/pressline/internal/raster"
)

// plateRenderCtx bundles the run-wide settings a plate rasterizer needs
// beyond its own plate struct and the mode-wide cell/shape settings.
type plateRenderCtx struct {
	cellSize     float64
	dotShape     string
	dotGain      params.DotGain
	fanout       float64
	feedVertical bool
	slur         float64
	hickeys      params.Hickeys
	skipMap      []float64 // nil if inkskip inactive
}

// buildPlate rasterizes one plate: fill white, walk a rotated sampling
// grid, apply dot gain/shadow fill/ink skip, compute radius and position
// (registration + fan-out), apply slur, draw the dot, then stamp
// hickeys.
func buildPlate(src *raster.Image, p plate, ctx plateRenderCtx) *raster.Image {
	w, h := src.Width, src.Height
	out := raster.New(w, h)
	fillWhite(out)

	cellSize := ctx.cellSize
	theta := p.angle * math.Pi / 180.0
	cosT, sinT := math.Cos(theta), math.Sin(theta)
	diag := math.Hypot(float64(w), float64(h))
	half := diag/2 + cellSize
	maxR := cellSize * 0.5 * 0.98

	var stretchX, stretchY float64
	maxStretch := ctx.fanout * float64(p.index-1) / 3
	if ctx.feedVertical {
		stretchX = maxStretch / (float64(w) / 2)
	} else {
		stretchY = maxStretch / (float64(h) / 2)
	}

	scaleX, scaleY := 1.0, 1.0
	if !ctx.feedVertical {
		scaleX = 1 + ctx.slur
	} else {
		scaleY = 1 + ctx.slur
	}

	for gy := -half; gy <= half; gy += cellSize {
		for gx := -half; gx <= half; gx += cellSize {
			gcx := gx + cellSize/2
			gcy := gy + cellSize/2
			imgX := float64(w)/2 + gcx*cosT - gcy*sinT
			imgY := float64(h)/2 + gcx*sinT + gcy*cosT
			if imgX < 0 || imgX >= float64(w) || imgY < 0 || imgY >= float64(h) {
				continue
			}
			sx, sy := clampCoord(int(math.Round(imgX)), w), clampCoord(int(math.Round(imgY)), h)

			ink := p.valueAt(src, sx, sy)

			if ctx.dotGain.Active {
				// Dot gain.
				ink = clamp01(ink + ctx.dotGain.Amount*ink*(1-ink)*2)

				// Shadow fill.
				if ink > 0.75 && ctx.dotGain.Shadow > 0 {
					ink = clamp01(ink + (1-ink)*ctx.dotGain.Shadow*(ink-0.75)/0.25)
				}
			}

			// Ink skip.
			if ctx.skipMap != nil {
				ink = clamp01(ink * (1 - ctx.skipMap[sy*w+sx]))
			}

			radius := maxR * math.Sqrt(ink)
			if radius < 0.3 {
				continue
			}

			dx := imgX + p.offX + (imgX-float64(w)/2)*stretchX
			dy := imgY + p.offY + (imgY-float64(h)/2)*stretchY

			drawDot(out, ctx.dotShape, dx, dy, radius, scaleX, scaleY, theta, cellSize, maxR, p.ink)
		}
	}

	if ctx.hickeys.Active {
		stampHickeys(out, p, ctx.hickeys)
	}

	return out
}

func clampCoord(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

func fillWhite(img *raster.Image) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 255
		img.Pix[i+1] = 255
		img.Pix[i+2] = 255
		img.Pix[i+3] = 255
	}
}

// stampHickeys draws donut-shaped ink defects, seeded per plate at
// plateIndex*5000 so the same plate always places its hickeys the same
// way.
func stampHickeys(img *raster.Image, p plate, cfg params.Hickeys) {
	rng := prng.New(uint32(p.index * 5000))
	w, h := img.Width, img.Height
	darkInk := shadeColor(p.ink, 0.6)

	for i := 0; i < cfg.Count; i++ {
		cx := rng.Range(0, float64(w))
		cy := rng.Range(0, float64(h))
		outerR := rng.Range(2, float64(cfg.SizeMax))
		innerR := outerR * rng.Range(0.35, 0.60)
		fillDisk(img, cx, cy, outerR, darkInk)
		fillDisk(img, cx, cy, innerR, colorspec.RGB{R: 255, G: 255, B: 255})
	}
}

func shadeColor(c colorspec.RGB, f float64) colorspec.RGB {
	return colorspec.RGB{
		R: byte(float64(c.R) * f),
		G: byte(float64(c.G) * f),
		B: byte(float64(c.B) * f),
	}
}
