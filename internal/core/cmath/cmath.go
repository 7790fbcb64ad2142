// Package cmath implements complex arithmetic over (real, imaginary) pairs of float64.
//
// The fractal calculators iterate millions of times per grid, so every function
// here is pure and allocation free. Magnitudes are expected to stay within the
// configured stability threshold; no attempt is made at extended precision.
package cmath

import "math"

// Modulus returns the Euclidean norm of re+im·i.
func Modulus(re, im float64) float64 {
	return math.Hypot(re, im)
}

// Square returns (re+im·i)².
func Square(re, im float64) (float64, float64) {
	return re*re - im*im, 2 * re * im
}

// Conj returns the complex conjugate of re+im·i.
func Conj(re, im float64) (float64, float64) {
	return re, -im
}

// Arg returns the angle of re+im·i in radians, in (-π, π].
func Arg(re, im float64) float64 {
	return math.Atan2(im, re)
}

// Pow raises re+im·i to the power n.
//
// Pow(z, 0) is (1, 0) for every z. Real inputs short-circuit to math.Pow when the
// result stays real; everything else goes through the polar form.
func Pow(re, im, n float64) (float64, float64) {
	if n == 0 {
		return 1, 0
	}
	if im == 0 && (re >= 0 || n == math.Trunc(n)) {
		return math.Pow(re, n), 0
	}
	r := math.Pow(Modulus(re, im), n)
	theta := Arg(re, im) * n
	return r * math.Cos(theta), r * math.Sin(theta)
}

// Multiply returns (aRe+aIm·i)·(bRe+bIm·i).
func Multiply(aRe, aIm, bRe, bIm float64) (float64, float64) {
	return aRe*bRe - aIm*bIm, aRe*bIm + aIm*bRe
}

// Divide returns (aRe+aIm·i)/(bRe+bIm·i).
// Dividing by zero saturates to (0, 0) instead of producing NaN or Inf.
func Divide(aRe, aIm, bRe, bIm float64) (float64, float64) {
	den := bRe*bRe + bIm*bIm
	if den == 0 {
		return 0, 0
	}
	return (aRe*bRe + aIm*bIm) / den, (aIm*bRe - aRe*bIm) / den
}

// Sin returns the complex sine of re+im·i.
func Sin(re, im float64) (float64, float64) {
	return math.Sin(re) * math.Cosh(im), math.Cos(re) * math.Sinh(im)
}

// Cos returns the complex cosine of re+im·i.
func Cos(re, im float64) (float64, float64) {
	return math.Cos(re) * math.Cosh(im), -math.Sin(re) * math.Sinh(im)
}

// Tan returns the complex tangent of re+im·i as Sin/Cos.
func Tan(re, im float64) (float64, float64) {
	sRe, sIm := Sin(re, im)
	cRe, cIm := Cos(re, im)
	return Divide(sRe, sIm, cRe, cIm)
}

// Exp returns e^(re+im·i).
func Exp(re, im float64) (float64, float64) {
	m := math.Exp(re)
	return m * math.Cos(im), m * math.Sin(im)
}

// Log returns the principal natural logarithm of re+im·i.
func Log(re, im float64) (float64, float64) {
	return math.Log(Modulus(re, im)), Arg(re, im)
}

// IsBad reports whether either component is NaN or infinite.
func IsBad(re, im float64) bool {
	return math.IsNaN(re) || math.IsNaN(im) || math.IsInf(re, 0) || math.IsInf(im, 0)
}
