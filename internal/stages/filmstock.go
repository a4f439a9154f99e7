package stages

import (
	"math"

	"github.com/inkgrain/pressline/internal/filmstock"
	"github.com/inkgrain/pressline/internal/lut"
	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
)

// FilmStock applies a film stock's halation bloom, exposure+curve LUTs,
// optional B&W conversion, saturation, and fade — in that order, so
// halation contributes to the curve and fade runs last.
func FilmStock(src *raster.Image, cfg params.FilmStock) *raster.Image {
	stock := filmstock.Lookup(cfg.Stock)
	dst := src.Clone()
	n := src.Width * src.Height

	work := make([]float64, n*3) // R,G,B as float, pre-curve
	for i := 0; i < n; i++ {
		work[i*3+0] = float64(src.Pix[i*4+0])
		work[i*3+1] = float64(src.Pix[i*4+1])
		work[i*3+2] = float64(src.Pix[i*4+2])
	}

	// Step 2: halation, added onto the pre-curve buffer.
	stockStrength := stock.Halation.Strength
	if cfg.Halation*stockStrength > 0.005 {
		applyHalation(work, src, stock, cfg.Halation, n)
	}

	// Step 1 + 3: exposure+curve LUT, applied per channel.
	luts := buildCurveLUTs(stock, cfg.Exposure)
	for i := 0; i < n; i++ {
		for c := 0; c < 3; c++ {
			v := work[i*3+c]
			idx := clampIndex(v)
			work[i*3+c] = float64(luts[c][idx])
		}
	}

	// Step 4: B&W conversion.
	if stock.BW {
		for i := 0; i < n; i++ {
			l := stock.BWWeights[0]*work[i*3+0] + stock.BWWeights[1]*work[i*3+1] + stock.BWWeights[2]*work[i*3+2]
			work[i*3+0], work[i*3+1], work[i*3+2] = l, l, l
		}
	} else if stock.Saturation != 1.0 {
		// Step 5: saturation.
		for i := 0; i < n; i++ {
			r, g, b := work[i*3+0], work[i*3+1], work[i*3+2]
			l := 0.299*r + 0.587*g + 0.114*b
			work[i*3+0] = l + (r-l)*stock.Saturation
			work[i*3+1] = l + (g-l)*stock.Saturation
			work[i*3+2] = l + (b-l)*stock.Saturation
		}
	}

	// Step 6: fade.
	if cfg.Fade > 0.01 {
		applyFade(work, stock.BW, cfg.Fade, n)
	}

	for i := 0; i < n; i++ {
		dst.Pix[i*4+0] = raster.ClampByte(work[i*3+0])
		dst.Pix[i*4+1] = raster.ClampByte(work[i*3+1])
		dst.Pix[i*4+2] = raster.ClampByte(work[i*3+2])
	}
	copyAlpha(dst, src)
	return dst
}

func clampIndex(v float64) int {
	i := int(v + 0.5)
	if i < 0 {
		return 0
	}
	if i > 255 {
		return 255
	}
	return i
}

// buildCurveLUTs builds one 256-entry LUT per RGB channel: exposure scales
// the input, then the piecewise-smoothstep curve through the stock's five
// control points maps it to output.
func buildCurveLUTs(stock filmstock.Stock, exposure float64) [3]lut.Table {
	scale := math.Pow(2, exposure)
	var out [3]lut.Table
	for c := 0; c < 3; c++ {
		points := stock.Curves[c]
		out[c] = lut.Build(func(x float64) float64 {
			return lut.PiecewiseSmoothstep(points, clamp01(x*scale))
		})
	}
	return out
}

func applyHalation(work []float64, src *raster.Image, stock filmstock.Stock, halation float64, n int) {
	brightness := make([]float64, n)
	for i := 0; i < n; i++ {
		l := raster.Luminance601(src.Pix[i*4+0], src.Pix[i*4+1], src.Pix[i*4+2])
		b := (l/255.0 - 0.65) / 0.35
		if b < 0 {
			b = 0
		}
		brightness[i] = b
	}
	blurred := boxBlurGray(brightness, src.Width, src.Height, stock.Halation.Radius)
	tint := [3]float64{
		float64(stock.Halation.Tint.R) / 255.0,
		float64(stock.Halation.Tint.G) / 255.0,
		float64(stock.Halation.Tint.B) / 255.0,
	}
	strength := stock.Halation.Strength
	for i := 0; i < n; i++ {
		add := blurred[i] * halation * strength
		work[i*3+0] += add * tint[0] * 255.0
		work[i*3+1] += add * tint[1] * 255.0
		work[i*3+2] += add * tint[2] * 255.0
	}
}

func applyFade(work []float64, bw bool, fade float64, n int) {
	lift := 0.07 * fade
	contrast := 1 - 0.22*fade
	rScale, gScale, bScale := 1.0, 1.0, 1.0
	if !bw {
		rScale = 1 + 0.14*fade
		gScale = 1 + 0.03*fade
		bScale = 1 - 0.08*fade
	}
	desat := 0.35 * fade
	scales := [3]float64{rScale, gScale, bScale}

	faded := func(x01 float64, scale float64) float64 {
		return clamp01(lift + (x01-0.5)*contrast*scale + 0.5)
	}

	for i := 0; i < n; i++ {
		var faded3 [3]float64
		for c := 0; c < 3; c++ {
			x01 := work[i*3+c] / 255.0
			faded3[c] = faded(x01, scales[c])
		}
		l := 0.299*faded3[0] + 0.587*faded3[1] + 0.114*faded3[2]
		for c := 0; c < 3; c++ {
			v := l + (faded3[c]-l)*(1-desat)
			work[i*3+c] = clamp01(v) * 255.0
		}
	}
}
