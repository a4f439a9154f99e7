package stages

import (
	"math"

	"github.com/inkgrain/pressline/internal/lut"
	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
)

// Velox applies a high-contrast sigmoid crush to luminance and
// replicates the result to all three channels.
func Velox(src *raster.Image, cfg params.Velox) *raster.Image {
	dst := src.Clone()
	table := lut.Build(func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-10*cfg.Contrast*(x-cfg.Threshold)))
	})

	n := src.Width * src.Height
	for i := 0; i < n; i++ {
		l := raster.Luminance601(src.Pix[i*4+0], src.Pix[i*4+1], src.Pix[i*4+2])
		idx := clampIndex(l)
		v := table[idx]
		dst.Pix[i*4+0] = v
		dst.Pix[i*4+1] = v
		dst.Pix[i*4+2] = v
	}
	copyAlpha(dst, src)
	return dst
}
