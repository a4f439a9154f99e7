package stages

import (
	"math/rand/v2"
	"sync"

	"github.com/inkgrain/pressline/internal/colorspec"
	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/prng"
	"github.com/inkgrain/pressline/internal/raster"
)

// PaperMapCache memoizes a built paper map across runs that share
// dimensions and paper parameters, so a caller re-rendering the same
// preview repeatedly doesn't rebuild the fiber texture every time. Zero
// value is ready to use.
type PaperMapCache struct {
	mu  sync.Mutex
	key paperMapKey
	val []float64
}

type paperMapKey struct {
	w, h         int
	texture      float64
	fibers       float64
	feedVertical bool
	seeded       bool
	seed         uint32
}

func (c *PaperMapCache) get(key paperMapKey, build func() []float64) []float64 {
	if c == nil {
		return build()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.val != nil && c.key == key {
		return c.val
	}
	c.val = build()
	c.key = key
	return c.val
}

// PaperTooth uses a shared paper map to drive highlight noise (pixels
// above 40% luminance, at any pressure) and shadow mottle (pixels below
// 60% luminance, only when pressure < 1). This is unseeded by default;
// params.Paper.Seeded opts into a run-scoped seeded generator instead.
func PaperTooth(src *raster.Image, cfg params.Paper, pressure float64, feedVertical bool, paperColor colorspec.RGB, cache *PaperMapCache, runSeed uint32) *raster.Image {
	w, h := src.Width, src.Height
	dst := src.Clone()

	key := paperMapKey{w: w, h: h, texture: cfg.Texture, fibers: cfg.Fibers, feedVertical: feedVertical, seeded: cfg.Seeded, seed: runSeed}
	paperMap := cache.get(key, func() []float64 {
		return buildPaperMap(w, h, cfg, feedVertical, runSeed)
	})

	safeT := cfg.Texture
	if safeT < 0.001 {
		safeT = 0.001
	}

	for i := 0; i < w*h; i++ {
		r, g, b := src.Pix[i*4+0], src.Pix[i*4+1], src.Pix[i*4+2]
		l := raster.Luminance601(r, g, b) / 255.0
		mapVal := paperMap[i]

		nr, ng, nb := float64(r), float64(g), float64(b)

		if l > 0.4 {
			hw := clamp01((l - 0.4) / 0.6)
			add := mapVal * hw * 150
			nr += add
			ng += add
			nb += add
		}

		if l < 0.6 && mapVal > 0 && pressure < 1 {
			sw := clamp01((0.6 - l) / 0.6)
			m := clamp01((1 - pressure) * (mapVal / safeT) * sw * 2)
			nr = lerp(nr, float64(paperColor.R), m)
			ng = lerp(ng, float64(paperColor.G), m)
			nb = lerp(nb, float64(paperColor.B), m)
		}

		dst.Pix[i*4+0] = raster.ClampByte(nr)
		dst.Pix[i*4+1] = raster.ClampByte(ng)
		dst.Pix[i*4+2] = raster.ClampByte(nb)
	}

	copyAlpha(dst, src)
	return dst
}

// buildPaperMap builds a paper texture map: a uniform noise base plus
// directional fiber strokes.
func buildPaperMap(w, h int, cfg params.Paper, feedVertical bool, runSeed uint32) []float64 {
	m := make([]float64, w*h)

	draw01 := rand.Float64
	drawIntn := rand.IntN
	var seeded *prng.Mulberry32
	if cfg.Seeded {
		seeded = prng.New(runSeed)
		draw01 = seeded.Float64
		drawIntn = seeded.Intn
	}

	for i := range m {
		m[i] = (draw01()*2 - 1) * cfg.Texture
	}

	longest := w
	if h > longest {
		longest = h
	}
	fiberCount := int(float64(longest)*cfg.Fibers*0.3 + 0.5)

	for f := 0; f < fiberCount; f++ {
		length := 10 + draw01()*(float64(longest)*0.2)
		startX := drawIntn(w)
		startY := drawIntn(h)
		steps := int(length)
		for step := 0; step < steps; step++ {
			var x, y int
			if feedVertical {
				x, y = startX, startY+step
			} else {
				x, y = startX+step, startY
			}
			if x < 0 || x >= w || y < 0 || y >= h {
				break
			}
			value := (draw01()*2 - 1) * cfg.Fibers
			frac := 1 - float64(step)/length
			m[y*w+x] += value * frac
		}
	}

	return m
}
