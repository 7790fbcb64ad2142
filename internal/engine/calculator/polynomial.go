package calculator

import (
	"cmp"
	"math"
	"slices"

	"go.trai.ch/fractal/internal/core/cmath"
)

// polynomial holds real coefficients, highest degree first.
type polynomial []float64

// eval evaluates p at re+im·i by Horner's rule.
func (p polynomial) eval(re, im float64) (float64, float64) {
	var accRe, accIm float64
	for _, c := range p {
		accRe, accIm = cmath.Multiply(accRe, accIm, re, im)
		accRe += c
	}
	return accRe, accIm
}

func (p polynomial) derivative() polynomial {
	n := len(p) - 1
	d := make(polynomial, n)
	for i := range n {
		d[i] = p[i] * float64(n-i)
	}
	return d
}

// roots estimates every complex root of p by Durand-Kerner iteration.
// Roots are returned sorted by real, then imaginary part.
func (p polynomial) roots() [][2]float64 {
	n := len(p) - 1
	lead := p[0]

	zs := make([][2]float64, n)
	seedRe, seedIm := 1.0, 0.0
	for i := range zs {
		zs[i] = [2]float64{seedRe, seedIm}
		seedRe, seedIm = cmath.Multiply(seedRe, seedIm, 0.4, 0.9)
	}

	for range 1000 {
		worst := 0.0
		for i := range zs {
			numRe, numIm := p.eval(zs[i][0], zs[i][1])
			numRe, numIm = numRe/lead, numIm/lead
			denRe, denIm := 1.0, 0.0
			for j := range zs {
				if j != i {
					denRe, denIm = cmath.Multiply(denRe, denIm, zs[i][0]-zs[j][0], zs[i][1]-zs[j][1])
				}
			}
			dRe, dIm := cmath.Divide(numRe, numIm, denRe, denIm)
			zs[i][0] -= dRe
			zs[i][1] -= dIm
			worst = math.Max(worst, cmath.Modulus(dRe, dIm))
		}
		if worst < 1e-14 {
			break
		}
	}

	slices.SortFunc(zs, func(a, b [2]float64) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	return zs
}

// unityRoots returns the n-th roots of unity, counter-clockwise from 1.
func unityRoots(n int) [][2]float64 {
	out := make([][2]float64, n)
	for k := range out {
		theta := 2 * math.Pi * float64(k) / float64(n)
		out[k] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}
	return out
}
