package stages

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/inkgrain/pressline/internal/raster"
)

// Resample rescales the source: on export, an integer upscale factor >= 2
// rescales with bicubic-equivalent smoothing; on preview, a source whose
// longest side exceeds previewMaxPx is scaled down to fit, preserving
// aspect; otherwise the source is copied through unchanged.
func Resample(src *raster.Image, forExport bool, previewMaxPx, upscale int) (*raster.Image, error) {
	if forExport && upscale >= 2 {
		return scaleTo(src, src.Width*upscale, src.Height*upscale, xdraw.CatmullRom), nil
	}
	if !forExport && previewMaxPx > 0 {
		longest := src.Width
		if src.Height > longest {
			longest = src.Height
		}
		if longest > previewMaxPx {
			ratio := float64(previewMaxPx) / float64(longest)
			w := maxInt(1, int(float64(src.Width)*ratio+0.5))
			h := maxInt(1, int(float64(src.Height)*ratio+0.5))
			return scaleTo(src, w, h, xdraw.BiLinear), nil
		}
	}
	return src.Clone(), nil
}

func scaleTo(src *raster.Image, w, h int, scaler xdraw.Scaler) *raster.Image {
	srcImg := &image.NRGBA{
		Pix:    src.Pix,
		Stride: src.Width * 4,
		Rect:   image.Rect(0, 0, src.Width, src.Height),
	}
	dstImg := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)
	return &raster.Image{Width: w, Height: h, Pix: dstImg.Pix}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
