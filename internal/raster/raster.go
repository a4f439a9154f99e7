// Package raster defines the RGBA pixel buffer the pipeline operates on:
// a plain interleaved-byte intermediate representation passed between
// pipeline stages.
package raster

import "fmt"

// Image is a W×H RGBA raster, 4 bytes per pixel, row-major, index
// convention (y*W+x)*4.
type Image struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*4
}

// New allocates a zeroed image of the given dimensions.
func New(w, h int) *Image {
	return &Image{Width: w, Height: h, Pix: make([]byte, w*h*4)}
}

// Clone returns an independent copy; stages never mutate their input.
func (img *Image) Clone() *Image {
	out := &Image{Width: img.Width, Height: img.Height, Pix: make([]byte, len(img.Pix))}
	copy(out.Pix, img.Pix)
	return out
}

// Valid reports whether the image has non-zero dimensions and a
// correctly sized pixel buffer.
func (img *Image) Valid() bool {
	return img != nil && img.Width > 0 && img.Height > 0 && len(img.Pix) == img.Width*img.Height*4
}

// At returns the byte offset of pixel (x, y) into Pix.
func (img *Image) At(x, y int) int {
	return (y*img.Width + x) * 4
}

// SameDims reports whether two images share width and height, used to
// enforce that every stage preserves dimensions.
func (img *Image) SameDims(other *Image) bool {
	return img.Width == other.Width && img.Height == other.Height
}

// ClampByte clamps a float sample into the implicit-clamp-on-store range.
func ClampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

// Luminance601 computes Rec.601 luminance, 0-255 scale.
func Luminance601(r, g, b byte) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

func (img *Image) String() string {
	return fmt.Sprintf("raster.Image(%dx%d)", img.Width, img.Height)
}
