package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/inkgrain/pressline/internal/raster"
)

// loadPNG decodes a PNG from disk into a raster.Image. Decode/load is
// host-side plumbing outside the pixel pipeline itself, so this uses the
// standard library codec rather than a core dependency (see DESIGN.md).
func loadPNG(path string) (*raster.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	nrgba := image.NewNRGBA(b)
	draw.Draw(nrgba, b, img, b.Min, draw.Src)

	return &raster.Image{Width: b.Dx(), Height: b.Dy(), Pix: nrgba.Pix}, nil
}

// savePNG encodes a raster.Image to disk as PNG.
func savePNG(path string, img *raster.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	nrgba := &image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
	if err := png.Encode(f, nrgba); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
