package stages

import (
	"math"

	"github.com/inkgrain/pressline/internal/colorspec"
	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
)

// InkBleed applies a directional, paper-oriented, density-weighted blur
// that wicks ink outward from dark regions. This reads src while writing
// dst — the convolution needs the original neighborhood, so it cannot
// run in place.
func InkBleed(src *raster.Image, cfg params.InkBleed, paper colorspec.RGB, feedVertical bool) *raster.Image {
	w, h := src.Width, src.Height
	dst := src.Clone()

	density := make([]float64, w*h)
	for i := 0; i < w*h; i++ {
		r, g, b := src.Pix[i*4+0], src.Pix[i*4+1], src.Pix[i*4+2]
		d := 1 - (1 + 0.299*(float64(r)-float64(paper.R))/255 +
			0.587*(float64(g)-float64(paper.G))/255 +
			0.114*(float64(b)-float64(paper.B))/255)
		density[i] = clamp01(d)
	}

	kernel, total := inkBleedKernel(cfg.Radius, cfg.Directionality, feedVertical)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sumD, sumR, sumG, sumB float64
			for _, k := range kernel {
				sx := clampCoord(x+k.dx, w)
				sy := clampCoord(y+k.dy, h)
				si := sy*w + sx
				sumD += density[si] * k.weight
				sumR += float64(src.Pix[si*4+0]) * k.weight
				sumG += float64(src.Pix[si*4+1]) * k.weight
				sumB += float64(src.Pix[si*4+2]) * k.weight
			}
			densityBlurred := sumD / total
			blurredR := sumR / total
			blurredG := sumG / total
			blurredB := sumB / total

			densityCurve := math.Sqrt(clamp01(densityBlurred))
			blend := clamp01(densityCurve * cfg.Absorbency * 1.5)

			i := y*w + x
			dst.Pix[i*4+0] = raster.ClampByte(lerp(float64(src.Pix[i*4+0]), blurredR, blend))
			dst.Pix[i*4+1] = raster.ClampByte(lerp(float64(src.Pix[i*4+1]), blurredG, blend))
			dst.Pix[i*4+2] = raster.ClampByte(lerp(float64(src.Pix[i*4+2]), blurredB, blend))
		}
	}

	copyAlpha(dst, src)
	return dst
}

type kernelTap struct {
	dx, dy int
	weight float64
}

// inkBleedKernel builds an oriented, stretched kernel — a disk flattened
// along the feed axis when directionality is high.
func inkBleedKernel(radius int, directionality float64, feedVertical bool) ([]kernelTap, float64) {
	ang := 0.0
	if feedVertical {
		ang = math.Pi / 2
	}
	stretch := math.Max(0.1, 1-directionality)
	cosA, sinA := math.Cos(ang), math.Sin(ang)

	var taps []kernelTap
	var total float64
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			rx := float64(x)*cosA - float64(y)*sinA
			ry := float64(x)*sinA + float64(y)*cosA
			d := math.Sqrt(rx*rx + (ry/stretch)*(ry/stretch))
			if d <= float64(radius) {
				weight := 1 - d/float64(radius)
				taps = append(taps, kernelTap{dx: x, dy: y, weight: weight})
				total += weight
			}
		}
	}
	if total == 0 {
		total = 1
	}
	return taps, total
}
