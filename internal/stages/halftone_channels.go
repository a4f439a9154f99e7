package stages

import (
	"github.com/inkgrain/pressline/internal/colorspec"
	"github.com/inkgrain/pressline/internal/params"
	"github.com/inkgrain/pressline/internal/raster"
)

// channelKind selects a plate's value function, one per halftone mode's
// channel setup.
type channelKind int

const (
	kindBW channelKind = iota
	kindDuo1
	kindDuo2
	kindC
	kindM
	kindY
	kindK
)

// plate is one channel's screen parameters, built in mode-defined channel
// array order before the laydown sort. Index is that pre-sort position
// (1-based), used for fan-out and seeded-map generation so seeding stays
// stable regardless of laydown order.
type plate struct {
	letter byte // 'k', 'c', 'm', or 'y' — laydown sort key
	index  int  // pre-sort plateIndex, 1..4
	kind   channelKind
	ink    colorspec.RGB
	angle  float64 // degrees, includes masterAngle
	offX   float64
	offY   float64
}

// valueAt samples this plate's ink coverage in [0,1] from the source pixel
// at (x, y).
func (p plate) valueAt(src *raster.Image, x, y int) float64 {
	i := src.At(x, y)
	r, g, b := src.Pix[i], src.Pix[i+1], src.Pix[i+2]
	l := raster.Luminance601(r, g, b) / 255.0
	switch p.kind {
	case kindBW, kindDuo1:
		return clamp01(1 - l)
	case kindDuo2:
		return clamp01(l)
	case kindK:
		return kValue(r, g, b)
	case kindC:
		return cmyValue(r, g, b, 0)
	case kindM:
		return cmyValue(r, g, b, 1)
	case kindY:
		return cmyValue(r, g, b, 2)
	}
	return 0
}

// kValue computes K = 1 - max(R,G,B)/255.
func kValue(r, g, b byte) float64 {
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	return 1 - float64(max)/255.0
}

// cmyValue implements the CMY separation formulas: C = (1-R/255-K)/(1-K),
// M and Y analogous on G and B. channel: 0=C(R), 1=M(G), 2=Y(B).
func cmyValue(r, g, b byte, channel int) float64 {
	k := kValue(r, g, b)
	if k >= 1 {
		return 0
	}
	var comp float64
	switch channel {
	case 0:
		comp = float64(r) / 255.0
	case 1:
		comp = float64(g) / 255.0
	case 2:
		comp = float64(b) / 255.0
	}
	return clamp01((1 - comp - k) / (1 - k))
}

// buildPlates constructs the channel array for the halftone mode, in
// pre-sort channel-array order.
func buildPlates(cfg params.Halftone, reg params.Registration) []plate {
	if !reg.Active {
		reg = params.Registration{}
	}
	master := float64(cfg.MasterAngle)
	switch cfg.Mode {
	case "bw":
		return []plate{
			{letter: 'k', index: 1, kind: kindBW, ink: cfg.DuotoneColor1, angle: float64(cfg.AngleK) + master},
		}
	case "duotone":
		return []plate{
			{letter: 'k', index: 1, kind: kindDuo1, ink: cfg.DuotoneColor1, angle: float64(cfg.AngleK) + master},
			{letter: 'c', index: 2, kind: kindDuo2, ink: cfg.DuotoneColor2, angle: float64(cfg.AngleC) + master,
				offX: reg.CX, offY: reg.CY},
		}
	default: // cmyk
		return []plate{
			{letter: 'k', index: 1, kind: kindK, ink: colorspec.InkBlack, angle: float64(cfg.AngleK) + master},
			{letter: 'c', index: 2, kind: kindC, ink: colorspec.InkCyan, angle: float64(cfg.AngleC) + master,
				offX: reg.CX, offY: reg.CY},
			{letter: 'm', index: 3, kind: kindM, ink: colorspec.InkMagenta, angle: float64(cfg.AngleM) + master,
				offX: reg.MX, offY: reg.MY},
			{letter: 'y', index: 4, kind: kindY, ink: colorspec.InkYellow, angle: float64(cfg.AngleY) + master,
				offX: reg.YX, offY: reg.YY},
		}
	}
}

// PlateInfo summarizes one plate's build and render position, for
// diagnostic reporting.
type PlateInfo struct {
	Letter      byte
	PreSortIdx  int
	RenderOrder int
	Ink         colorspec.RGB
	Angle       float64
	OffsetX     float64
	OffsetY     float64
}

// DescribePlates builds the plate set for a halftone configuration and
// reports it in both pre-sort and laydown render order, without
// rasterizing anything.
func DescribePlates(cfg params.Halftone, reg params.Registration, laydown string) []PlateInfo {
	preSort := buildPlates(cfg, reg)
	renderOrder := sortByLaydown(preSort, laydown)
	pos := make(map[int]int, len(renderOrder))
	for i, p := range renderOrder {
		pos[p.index] = i + 1
	}
	out := make([]PlateInfo, len(preSort))
	for i, p := range preSort {
		out[i] = PlateInfo{
			Letter:      p.letter,
			PreSortIdx:  p.index,
			RenderOrder: pos[p.index],
			Ink:         p.ink,
			Angle:       p.angle,
			OffsetX:     p.offX,
			OffsetY:     p.offY,
		}
	}
	return out
}

// sortByLaydown reorders plates for rendering per the laydown string
// (e.g. "k-c-m-y"); a laydown letter with no matching plate is skipped.
func sortByLaydown(plates []plate, laydown string) []plate {
	order := make(map[byte]int)
	pos := 0
	for i := 0; i < len(laydown); i++ {
		c := laydown[i]
		if c == '-' {
			continue
		}
		order[c] = pos
		pos++
	}
	out := make([]plate, len(plates))
	copy(out, plates)
	// stable insertion sort by laydown position; N <= 4, no need for sort.Slice overhead
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && order[out[j].letter] < order[out[j-1].letter]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
