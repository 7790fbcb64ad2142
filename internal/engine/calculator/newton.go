package calculator

import (
	"math"
	"sync"

	"go.trai.ch/fractal/internal/core/cmath"
	"go.trai.ch/fractal/internal/core/domain"
)

// NewtonTolerance is the distance below which an iterate counts as converged to a root.
const NewtonTolerance = 1e-6

// bucketResolution is the precision at which closest-root magnitudes share a color.
const bucketResolution = 1e3

// Root is one known root of a Newton target function with its classification value.
type Root struct {
	Re    float64
	Im    float64
	Value float64
}

// RootSet is either ExplicitRoots or ClosestRootClassifier.
type RootSet interface {
	isRootSet()
}

// ExplicitRoots is a finite root list scanned linearly each iteration.
type ExplicitRoots []Root

func (ExplicitRoots) isRootSet() {}

// ClosestRootClassifier serves functions with infinitely many roots.
// Closest returns the theoretical root nearest to a point.
type ClosestRootClassifier struct {
	Closest func(re, im float64) (float64, float64)
}

func (ClosestRootClassifier) isRootSet() {}

// NewtonFunction is a Newton target: f, its derivative, and its roots.
type NewtonFunction struct {
	Name  string
	F     func(re, im float64) (float64, float64)
	DF    func(re, im float64) (float64, float64)
	Roots RootSet
}

// Step performs one Newton-Raphson update z ← z - a·f(z)/f'(z).
// A vanishing derivative leaves z in place.
func (fn NewtonFunction) Step(zRe, zIm, aRe, aIm float64) (float64, float64) {
	fRe, fIm := fn.F(zRe, zIm)
	dRe, dIm := fn.DF(zRe, zIm)
	qRe, qIm := cmath.Divide(fRe, fIm, dRe, dIm)
	sRe, sIm := cmath.Multiply(aRe, aIm, qRe, qIm)
	return zRe - sRe, zIm - sIm
}

type verdict uint8

const (
	pending verdict = iota
	converged
	degenerate
)

// classifier reports whether z has reached a root and that root's value.
type classifier func(zRe, zIm float64) (float64, verdict)

// basinColors assigns a pseudo-random value to each closest-root magnitude bucket
// the first time it is seen. The assignment is stable until the colors are discarded.
type basinColors struct {
	mu     sync.Mutex
	values map[int64]float64
	rand   func() float64
}

func (b *basinColors) lookup(mag float64) float64 {
	key := int64(math.Round(mag * bucketResolution))
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.values[key]
	if !ok {
		v = 0.05 + 0.9*b.rand()
		b.values[key] = v
	}
	return v
}

// classify resolves the root set into a classifier.
// Closest-root classifiers get a fresh color table on every call.
func classify(set RootSet, rnd func() float64) classifier {
	switch s := set.(type) {
	case ExplicitRoots:
		return func(zRe, zIm float64) (float64, verdict) {
			for _, r := range s {
				if cmath.Modulus(zRe-r.Re, zIm-r.Im) < NewtonTolerance {
					return r.Value, converged
				}
			}
			return 0, pending
		}
	case ClosestRootClassifier:
		colors := &basinColors{values: make(map[int64]float64), rand: rnd}
		return func(zRe, zIm float64) (float64, verdict) {
			rRe, rIm := s.Closest(zRe, zIm)
			mag := cmath.Modulus(rRe, rIm)
			if math.IsNaN(mag) {
				return 0, degenerate
			}
			if cmath.Modulus(zRe-rRe, zIm-rIm) >= NewtonTolerance {
				return 0, pending
			}
			return colors.lookup(mag), converged
		}
	default:
		return func(float64, float64) (float64, verdict) { return 0, degenerate }
	}
}

// newton runs the Newton iteration for world pixel (x, y).
func newton(x, y int, p domain.Params, fn NewtonFunction, roots classifier) float64 {
	zRe, zIm := PlanePoint(x, y, p.AxisSize, p.Magnification)
	for i := 1; i <= p.MaxIterations; i++ {
		zRe, zIm = fn.Step(zRe, zIm, p.NewtonCoefficientReal, p.NewtonCoefficientImag)
		if cmath.IsBad(zRe, zIm) {
			return 0
		}
		v, state := roots(zRe, zIm)
		switch state {
		case degenerate:
			return 0
		case converged:
			if p.PreferRootBasis {
				return v
			}
			return float64(i) / float64(p.MaxIterations)
		}
	}
	return 0
}

func polynomialFunction(name string, p polynomial, roots [][2]float64) NewtonFunction {
	dp := p.derivative()
	set := make(ExplicitRoots, len(roots))
	for i, r := range roots {
		set[i] = Root{Re: r[0], Im: r[1], Value: (float64(i) + 0.5) / float64(len(roots))}
	}
	return NewtonFunction{Name: name, F: p.eval, DF: dp.eval, Roots: set}
}

func negSin(re, im float64) (float64, float64) {
	sRe, sIm := cmath.Sin(re, im)
	return -sRe, -sIm
}

// newtonFunctions builds the built-in Newton targets.
func newtonFunctions() map[string]NewtonFunction {
	quintic := polynomial{1, 0, 0, 1, -1, 1}
	fns := []NewtonFunction{
		polynomialFunction("quadratic", polynomial{1, 0, -1}, unityRoots(2)),
		polynomialFunction("cubic", polynomial{1, 0, 0, -1}, unityRoots(3)),
		polynomialFunction("quartic", polynomial{1, 0, 0, 0, -1}, unityRoots(4)),
		polynomialFunction("quintic", quintic, quintic.roots()),
		{
			Name: "sin",
			F:    cmath.Sin,
			DF:   cmath.Cos,
			Roots: ClosestRootClassifier{Closest: func(re, _ float64) (float64, float64) {
				return math.Round(re/math.Pi) * math.Pi, 0
			}},
		},
		{
			Name: "cos",
			F:    cmath.Cos,
			DF:   negSin,
			Roots: ClosestRootClassifier{Closest: func(re, _ float64) (float64, float64) {
				return math.Pi/2 + math.Round((re-math.Pi/2)/math.Pi)*math.Pi, 0
			}},
		},
	}
	out := make(map[string]NewtonFunction, len(fns))
	for _, fn := range fns {
		out[fn.Name] = fn
	}
	return out
}
