package stages

import (
	"math/rand/v2"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
)

// Grain applies luminance-weighted additive noise. This stage is
// intentionally unseeded — math/rand/v2's default source is used
// directly rather than through internal/prng, so repeated runs over the
// same input differ.
func Grain(src *raster.Image, cfg params.Grain) *raster.Image {
	dst := src.Clone()
	n := src.Width * src.Height
	for i := 0; i < n; i++ {
		w := 1.0
		if cfg.Weighted {
			l := raster.Luminance601(src.Pix[i*4+0], src.Pix[i*4+1], src.Pix[i*4+2])
			w = (1 - l/255.0) * 1.5
		}
		r := rand.Float64()*2 - 1 // uniform in [-1, +1)
		add := r * cfg.Amount * 255.0 * w
		dst.Pix[i*4+0] = raster.ClampByte(float64(src.Pix[i*4+0]) + add)
		dst.Pix[i*4+1] = raster.ClampByte(float64(src.Pix[i*4+1]) + add)
		dst.Pix[i*4+2] = raster.ClampByte(float64(src.Pix[i*4+2]) + add)
	}
	copyAlpha(dst, src)
	return dst
}
