// Package domain contains the core domain models of the fractal engine.
package domain

import (
	"math"

	"go.trai.ch/zerr"
)

// Params is the parameter record of one fractal computation.
// It is owned by the caller and never mutated by the engine.
type Params struct {
	Kind Kind `json:"kind"`

	// OffsetX and OffsetY shift the visible window in world pixels.
	OffsetX int `json:"offset_x"`
	OffsetY int `json:"offset_y"`

	Magnification float64 `json:"magnification"`
	AxisSize      int     `json:"axis_size"`
	MaxIterations int     `json:"max_iterations"`
	Threshold     float64 `json:"threshold"`

	JuliaReal float64 `json:"julia_real"`
	JuliaImag float64 `json:"julia_imag"`

	NewtonFunction        string  `json:"newton_function"`
	NewtonCoefficientReal float64 `json:"newton_coefficient_real"`
	NewtonCoefficientImag float64 `json:"newton_coefficient_imag"`
	PreferRootBasis       bool    `json:"prefer_root_basis"`

	MirrorBurningShip bool `json:"mirror_burning_ship"`

	CustomInitial   string `json:"custom_initial"`
	CustomIteration string `json:"custom_iteration"`

	// HueShift rotates output hues without touching computed values.
	HueShift float64 `json:"hue_shift"`

	// UsePivot keeps the screen pixel (PivotX, PivotY) fixed on the plane
	// when the magnification changes.
	UsePivot bool `json:"use_pivot"`
	PivotX   int  `json:"pivot_x"`
	PivotY   int  `json:"pivot_y"`
}

// DefaultParams returns the parameter record used when nothing else is configured.
func DefaultParams() Params {
	return Params{
		Kind:                  KindMandelbrot,
		Magnification:         1,
		AxisSize:              256,
		MaxIterations:         100,
		Threshold:             2,
		JuliaReal:             -0.8,
		JuliaImag:             0.156,
		NewtonFunction:        "quadratic",
		NewtonCoefficientReal: 1,
		PreferRootBasis:       true,
		CustomInitial:         "0",
		CustomIteration:       "z^2 + c",
	}
}

// CachePreservingFields lists the parameters whose change keeps cached results valid.
// Offsets only move the visible window over world-keyed results; the pivot only
// feeds Reconcile; the hue shift is applied after the cache.
// Plane-sweep kinds trace the visible window, so for them offsets invalidate.
func CachePreservingFields() []string {
	return []string{"offset_x", "offset_y", "hue_shift", "use_pivot", "pivot_x", "pivot_y"}
}

// cacheKey returns p with every cache-preserving field cleared.
func (p Params) cacheKey() Params {
	if !p.Kind.PlaneSweep() {
		p.OffsetX, p.OffsetY = 0, 0
	}
	p.HueShift = 0
	p.UsePivot, p.PivotX, p.PivotY = false, 0, 0
	return p
}

// CacheKey returns the projection of p that determines cached values.
// Two records with equal cache keys produce identical results at every world coordinate.
func (p Params) CacheKey() Params {
	return p.cacheKey()
}

// RequiresInvalidation reports whether moving from prev to next invalidates cached results.
func RequiresInvalidation(prev, next Params) bool {
	return prev.cacheKey() != next.cacheKey()
}

// Validate checks the record for values no calculator can work with.
func (p Params) Validate() error {
	switch {
	case !p.Kind.Valid():
		return zerr.With(zerr.Wrap(ErrUnknownKind, "invalid fractal kind"), "kind", int(p.Kind))
	case p.AxisSize <= 0:
		return invalid("axis_size", "axis size must be positive")
	case !validMagnification(p.Magnification):
		return invalid("magnification", "magnification must be at least 1")
	case p.MaxIterations <= 0:
		return invalid("max_iterations", "iteration cap must be positive")
	case math.IsNaN(p.Threshold) || p.Threshold <= 0:
		return invalid("threshold", "stability threshold must be positive")
	case p.Kind == KindCustom && p.CustomIteration == "":
		return invalid("custom_iteration", "custom fractal needs an iteration formula")
	}
	return nil
}

func validMagnification(m float64) bool {
	return !math.IsNaN(m) && !math.IsInf(m, 0) && m >= 1
}

func invalid(field, msg string) error {
	return zerr.With(zerr.Wrap(ErrInvalidParams, msg), "field", field)
}

// Reconcile returns next corrected against prev.
//
// When next.UsePivot is set and the magnification changed, the offsets are
// adjusted so that the plane point under the pivot pixel stays under it.
// A magnification below 1 is left for Validate to reject.
func Reconcile(prev, next Params) Params {
	if !next.UsePivot || !validMagnification(prev.Magnification) || !validMagnification(next.Magnification) ||
		prev.Magnification == next.Magnification {
		return next
	}

	half := float64(next.AxisSize) / 2
	ratio := next.Magnification / prev.Magnification
	next.OffsetX = pivotOffset(next.PivotX, prev.OffsetX, half, ratio)
	next.OffsetY = pivotOffset(next.PivotY, prev.OffsetY, half, ratio)
	return next
}

// pivotOffset solves (pivot+off'-half)/m' = (pivot+off-half)/m for off'.
func pivotOffset(pivot, offset int, half, ratio float64) int {
	world := float64(pivot+offset) - half
	return int(math.Round(world*ratio - float64(pivot) + half))
}
