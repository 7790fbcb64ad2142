package ports

import "go.trai.ch/fractal/internal/core/domain"

// PixelFunc computes the hue scalar of one world coordinate.
// An error marks a failure of that pixel only.
type PixelFunc func(x, y int) (float64, error)

// PlaneSweep is a whole-plane computation whose output cells depend on many inputs.
// It is driven column by column so the caller can yield between columns.
type PlaneSweep interface {
	// Bounds returns the half-open range of world columns Trace must visit.
	Bounds() (lo, hi int)
	// Trace accumulates the contributions of every input point in world column x.
	Trace(x int)
	// Normalized returns the accumulated cells scaled into [0,1], keyed world x then world y.
	Normalized() map[int]map[int]float64
}

// Calculator binds a parameter record to the computation for its fractal kind.
//
//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks
type Calculator interface {
	// Bind returns the per-pixel computation for p.
	Bind(p domain.Params) (PixelFunc, error)
	// BindPlane returns the whole-plane computation for p.
	BindPlane(p domain.Params) (PlaneSweep, error)
}
