package stages

import (
	"math"

	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/prng"
)

// buildInkSkipMap constructs an ink-skip map from elliptical blobs, major
// axis along the feed direction, seeded per plate at plateIndex*1000 so
// repeated runs with the same inputs are bit-identical.
func buildInkSkipMap(w, h, plateIndex int, cfg params.InkSkip, feedVertical bool) []float64 {
	rng := prng.New(uint32(plateIndex * 1000))

	n := math.Max(3, (1-cfg.Scale)*12+3) * 3
	count := int(math.Round(n))

	baseR := cfg.Scale * math.Min(float64(w), float64(h)) * 0.6
	var rxBase, ryBase float64
	if feedVertical {
		rxBase, ryBase = baseR*0.15, baseR*2.5
	} else {
		rxBase, ryBase = baseR*2.5, baseR*0.15
	}

	type blob struct {
		cx, cy, rx, ry, v float64
	}
	blobs := make([]blob, count)
	for i := range blobs {
		spread := rng.Range(0.5, 1.5)
		blobs[i] = blob{
			cx: rng.Range(0, float64(w)),
			cy: rng.Range(0, float64(h)),
			rx: rxBase * spread,
			ry: ryBase * spread,
			v:  rng.Signed() * cfg.Intensity,
		}
	}

	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sumW, sumV float64
			for _, b := range blobs {
				dx := (float64(x) - b.cx) / b.rx
				dy := (float64(y) - b.cy) / b.ry
				d := math.Sqrt(dx*dx + dy*dy)
				if d < 1 {
					weight := 1 - d
					sumW += weight
					sumV += b.v * weight
				}
			}
			v := 0.0
			if sumW > 0 {
				v = sumV / sumW
			}
			if v > cfg.Intensity {
				v = cfg.Intensity
			}
			if v < -cfg.Intensity {
				v = -cfg.Intensity
			}
			out[y*w+x] = v
		}
	}
	return out
}
