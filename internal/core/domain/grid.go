package domain

import "math"

// Grid is a square matrix of hue scalars in [0,1], stored column-major.
type Grid struct {
	Size   int       `json:"size"`
	Values []float64 `json:"values"`
}

// NewGrid allocates a zeroed grid with the given side length.
func NewGrid(size int) *Grid {
	return &Grid{Size: size, Values: make([]float64, size*size)}
}

// At returns the value at screen column x and row y.
func (g *Grid) At(x, y int) float64 {
	return g.Values[x*g.Size+y]
}

// Set stores v at screen column x and row y.
func (g *Grid) Set(x, y int, v float64) {
	g.Values[x*g.Size+y] = v
}

// Column returns the backing slice of screen column x.
func (g *Grid) Column(x int) []float64 {
	return g.Values[x*g.Size : (x+1)*g.Size]
}

// ShiftHue rotates a hue scalar by shift, wrapping into (0,1].
// Zero marks non-escaping cells and is never shifted, nor produced: a
// rotation landing on 0 yields 1, the same hue.
func ShiftHue(v, shift float64) float64 {
	if v == 0 || shift == 0 {
		return v
	}
	h := math.Mod(v+shift, 1)
	if h < 0 {
		h++
	}
	if h == 0 {
		return 1
	}
	return h
}

// Snapshot is a completed grid keyed by the fingerprint of the parameters that produced it.
// Cells are stored in world coordinates so a snapshot can seed a cache whose
// offsets have moved since.
type Snapshot struct {
	Fingerprint string                  `json:"fingerprint"`
	Params      Params                  `json:"params"`
	Cells       map[int]map[int]float64 `json:"cells,omitzero"`
}
