package stages

import (
	"math"

	"github.com/inkgrain/pressline/internal/colorspec"
	"github.com/inkgrain/pressline/internal/raster"
)

// drawDot draws a circle, diamond or line dot, axis scaled by slur
// (scaleX, scaleY) with line additionally rotated by the plate's screen
// angle theta.
func drawDot(img *raster.Image, shape string, cx, cy, radius, scaleX, scaleY, theta, cellSize, maxR float64, ink colorspec.RGB) {
	switch shape {
	case "diamond":
		drawDiamond(img, cx, cy, radius, scaleX, scaleY, ink)
	case "line":
		thickness := radius * 1.2
		if thickness < 0.3 {
			thickness = 0.3
		}
		if thickness > maxR {
			thickness = maxR
		}
		drawRotatedRect(img, cx, cy, cellSize, thickness, scaleX, scaleY, theta, ink)
	default:
		drawEllipse(img, cx, cy, radius*scaleX, radius*scaleY, ink)
	}
}

// fillDisk draws an unscaled, unrotated filled circle (used by hickeys).
func fillDisk(img *raster.Image, cx, cy, radius float64, ink colorspec.RGB) {
	drawEllipse(img, cx, cy, radius, radius, ink)
}

func drawEllipse(img *raster.Image, cx, cy, rx, ry float64, ink colorspec.RGB) {
	if rx <= 0 || ry <= 0 {
		return
	}
	minX, maxX, minY, maxY := bbox(img, cx, cy, rx, ry)
	for y := minY; y <= maxY; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		for x := minX; x <= maxX; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1.0 {
				setPixel(img, x, y, ink)
			}
		}
	}
}

func drawDiamond(img *raster.Image, cx, cy, radius, scaleX, scaleY float64, ink colorspec.RGB) {
	rx, ry := radius*scaleX, radius*scaleY
	if rx <= 0 || ry <= 0 {
		return
	}
	minX, maxX, minY, maxY := bbox(img, cx, cy, rx, ry)
	for y := minY; y <= maxY; y++ {
		dy := math.Abs(float64(y) + 0.5 - cy)
		for x := minX; x <= maxX; x++ {
			dx := math.Abs(float64(x) + 0.5 - cx)
			if dx/rx+dy/ry <= 1.0 {
				setPixel(img, x, y, ink)
			}
		}
	}
}

// drawRotatedRect draws a filled rectangle of length x thickness, centered
// at (cx,cy), stretched by slur (scaleX/scaleY) prior to rotation by theta.
func drawRotatedRect(img *raster.Image, cx, cy, length, thickness, scaleX, scaleY, theta float64, ink colorspec.RGB) {
	halfLen := length / 2 * scaleX
	halfThick := thickness / 2 * scaleY
	span := math.Hypot(halfLen, halfThick) + 1
	minX, maxX, minY, maxY := bbox(img, cx, cy, span, span)
	cosT, sinT := math.Cos(-theta), math.Sin(-theta)
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5 - cy
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5 - cx
			lx := px*cosT - py*sinT
			ly := px*sinT + py*cosT
			if math.Abs(lx) <= halfLen && math.Abs(ly) <= halfThick {
				setPixel(img, x, y, ink)
			}
		}
	}
}

func bbox(img *raster.Image, cx, cy, rx, ry float64) (minX, maxX, minY, maxY int) {
	minX = clampCoord(int(math.Floor(cx-rx)), img.Width)
	maxX = clampCoord(int(math.Ceil(cx+rx)), img.Width)
	minY = clampCoord(int(math.Floor(cy-ry)), img.Height)
	maxY = clampCoord(int(math.Ceil(cy+ry)), img.Height)
	return
}

func setPixel(img *raster.Image, x, y int, c colorspec.RGB) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	i := img.At(x, y)
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = 255
}
