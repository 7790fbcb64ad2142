package calculator

import (
	"go.trai.ch/fractal/internal/core/cmath"
	"go.trai.ch/fractal/internal/core/domain"
)

// step advances z by one iteration of a recurrence with parameter c.
type step func(zRe, zIm, cRe, cIm float64) (float64, float64)

// escape iterates from z until |z| exceeds threshold.
// It returns i/maxIter for escape on iteration i, and 0 when z never escapes
// or degenerates to NaN or Inf.
func escape(zRe, zIm, cRe, cIm float64, maxIter int, threshold float64, next step) float64 {
	for i := 1; i <= maxIter; i++ {
		zRe, zIm = next(zRe, zIm, cRe, cIm)
		if cmath.IsBad(zRe, zIm) {
			return 0
		}
		if cmath.Modulus(zRe, zIm) > threshold {
			return float64(i) / float64(maxIter)
		}
	}
	return 0
}

func mandelbrotStep(zRe, zIm, cRe, cIm float64) (float64, float64) {
	sqRe, sqIm := cmath.Square(zRe, zIm)
	return sqRe + cRe, sqIm + cIm
}

func burningShipStep(zRe, zIm, cRe, cIm float64) (float64, float64) {
	cross := 2 * zRe * zIm
	if cross < 0 {
		cross = -cross
	}
	return zRe*zRe - zIm*zIm + cRe, cross + cIm
}

func mandelbarStep(zRe, zIm, cRe, cIm float64) (float64, float64) {
	sqRe, sqIm := cmath.Square(cmath.Conj(zRe, zIm))
	return sqRe + cRe, sqIm + cIm
}

// Mandelbrot iterates z ← z² + c from z = 0 exactly.
func Mandelbrot(x, y int, p domain.Params) float64 {
	cRe, cIm := PlanePoint(x, y, p.AxisSize, p.Magnification)
	return escape(0, 0, cRe, cIm, p.MaxIterations, p.Threshold, mandelbrotStep)
}

// BurningShip iterates z ← (re² - im², |2·re·im|) + c from z = 0.
// MirrorBurningShip flips the sign of the real axis mapping.
func BurningShip(x, y int, p domain.Params) float64 {
	cRe, cIm := PlanePoint(x, y, p.AxisSize, p.Magnification)
	if p.MirrorBurningShip {
		cRe = -cRe
	}
	return escape(0, 0, cRe, cIm, p.MaxIterations, p.Threshold, burningShipStep)
}

// Mandelbar iterates z ← conj(z)² + c from z = 0.
func Mandelbar(x, y int, p domain.Params) float64 {
	cRe, cIm := PlanePoint(x, y, p.AxisSize, p.Magnification)
	return escape(0, 0, cRe, cIm, p.MaxIterations, p.Threshold, mandelbarStep)
}

// Julia iterates z ← z² + k from the pixel position, with k the configured Julia constant.
func Julia(x, y int, p domain.Params) float64 {
	zRe, zIm := PlanePoint(x, y, p.AxisSize, p.Magnification)
	return escape(zRe, zIm, p.JuliaReal, p.JuliaImag, p.MaxIterations, p.Threshold, mandelbrotStep)
}
