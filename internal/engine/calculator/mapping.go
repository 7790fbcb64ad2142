package calculator

import "math"

// PlanePoint maps world pixel (x, y) onto the complex plane.
// At magnification 1 the axis of size pixels spans [-2, 2], centred on world pixel size/2.
func PlanePoint(x, y, size int, mag float64) (float64, float64) {
	half := float64(size) / 2
	scale := float64(size) / 4 * mag
	return (float64(x) - half) / scale, (float64(y) - half) / scale
}

// PixelOf is the inverse of PlanePoint, rounded to the nearest world pixel.
func PixelOf(re, im float64, size int, mag float64) (int, int) {
	half := float64(size) / 2
	scale := float64(size) / 4 * mag
	return int(math.Round(re*scale + half)), int(math.Round(im*scale + half))
}
