// Package stages implements the seven pixel-pipeline stages: Resample,
// FilmStock, Velox, Grain, Halftone, InkBleed, PaperTooth. Each stage is
// a pure function from (input raster, stage config) to a freshly
// allocated output raster; none mutate their input.
package stages

import "github.com/inkgrain/pressline/internal/raster"

// copyAlpha carries the A channel through unchanged; every core stage
// leaves alpha untouched.
func copyAlpha(dst, src *raster.Image) {
	for i := 3; i < len(src.Pix); i += 4 {
		dst.Pix[i] = src.Pix[i]
	}
}

// boxBlurGray applies a separable box blur of the given radius to a single
// float64 channel stored row-major, W×H. Two passes (horizontal then
// vertical) approximate a Gaussian falloff.
func boxBlurGray(src []float64, w, h, radius int) []float64 {
	if radius < 1 {
		out := make([]float64, len(src))
		copy(out, src)
		return out
	}
	tmp := boxBlur1D(src, w, h, radius, true)
	return boxBlur1D(tmp, w, h, radius, false)
}

func boxBlur1D(src []float64, w, h, radius int, horizontal bool) []float64 {
	out := make([]float64, len(src))
	if horizontal {
		for y := 0; y < h; y++ {
			row := y * w
			var sum float64
			count := 0
			for x := -radius; x <= radius; x++ {
				if x >= 0 && x < w {
					sum += src[row+x]
					count++
				}
			}
			for x := 0; x < w; x++ {
				out[row+x] = sum / float64(count)
				leave := x - radius
				enter := x + radius + 1
				if leave >= 0 {
					sum -= src[row+leave]
					count--
				}
				if enter < w {
					sum += src[row+enter]
					count++
				}
			}
		}
		return out
	}
	for x := 0; x < w; x++ {
		var sum float64
		count := 0
		for y := -radius; y <= radius; y++ {
			if y >= 0 && y < h {
				sum += src[y*w+x]
				count++
			}
		}
		for y := 0; y < h; y++ {
			out[y*w+x] = sum / float64(count)
			leave := y - radius
			enter := y + radius + 1
			if leave >= 0 {
				sum -= src[leave*w+x]
				count--
			}
			if enter < h {
				sum += src[enter*w+x]
				count++
			}
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
