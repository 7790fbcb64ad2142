// Package calculator maps world pixels to hue scalars for every built-in fractal kind.
package calculator

import (
	"math/rand/v2"

	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry dispatches parameter records to the calculator of their kind.
type Registry struct {
	newton map[string]NewtonFunction
	rand   func() float64
}

// Option configures a Registry.
type Option func(*Registry)

// WithRand replaces the source of the pseudo-random basin colors.
func WithRand(fn func() float64) Option {
	return func(r *Registry) {
		r.rand = fn
	}
}

// New creates a Registry with the built-in Newton targets.
func New(opts ...Option) *Registry {
	r := &Registry{
		newton: newtonFunctions(),
		rand:   rand.Float64,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewtonFunction looks up a Newton target by name.
func (r *Registry) NewtonFunction(name string) (NewtonFunction, bool) {
	fn, ok := r.newton[name]
	return fn, ok
}

// Bind returns the per-pixel computation for p.
//
// Custom formulas are compiled here, once per call. Plane-sweep kinds fail with
// domain.ErrNotPerPixel.
func (r *Registry) Bind(p domain.Params) (ports.PixelFunc, error) {
	switch p.Kind {
	case domain.KindMandelbrot:
		return pixel(Mandelbrot, p), nil
	case domain.KindBurningShip:
		return pixel(BurningShip, p), nil
	case domain.KindMandelbar:
		return pixel(Mandelbar, p), nil
	case domain.KindJulia:
		return pixel(Julia, p), nil
	case domain.KindNewton:
		fn, ok := r.newton[p.NewtonFunction]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingNewtonFunction, "no newton data"), "function", p.NewtonFunction)
		}
		roots := classify(fn.Roots, r.rand)
		return func(x, y int) (float64, error) {
			return newton(x, y, p, fn, roots), nil
		}, nil
	case domain.KindCustom:
		return bindCustom(p)
	case domain.KindBuddhabrot:
		return nil, zerr.With(zerr.Wrap(domain.ErrNotPerPixel, "use a plane sweep"), "kind", p.Kind.String())
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownKind, "no calculator registered"), "kind", int(p.Kind))
	}
}

// BindPlane returns the whole-plane computation for p.
func (r *Registry) BindPlane(p domain.Params) (ports.PlaneSweep, error) {
	if p.Kind != domain.KindBuddhabrot {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownKind, "no plane sweep registered"), "kind", p.Kind.String())
	}
	return NewBuddhabrot(p), nil
}

func pixel(fn func(x, y int, p domain.Params) float64, p domain.Params) ports.PixelFunc {
	return func(x, y int) (float64, error) {
		return fn(x, y, p), nil
	}
}
