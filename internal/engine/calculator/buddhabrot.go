package calculator

import (
	"go.trai.ch/fractal/internal/core/cmath"
	"go.trai.ch/fractal/internal/core/domain"
)

// Buddhabrot accumulates the trajectories of escaping Mandelbrot points.
//
// Every point of the visible window is iterated; when it escapes within the
// iteration cap, each intermediate z is re-walked and the window cell it falls
// on gets one more hit. Counts are normalized by the maximum only after the
// whole window was traced.
type Buddhabrot struct {
	p      domain.Params
	lo, hi int
	top    int
	hits   []float64
	max    float64
	trail  [][2]float64
}

// NewBuddhabrot returns an empty accumulator over the window of p.
func NewBuddhabrot(p domain.Params) *Buddhabrot {
	return &Buddhabrot{
		p:     p,
		lo:    p.OffsetX,
		hi:    p.OffsetX + p.AxisSize,
		top:   p.OffsetY,
		hits:  make([]float64, p.AxisSize*p.AxisSize),
		trail: make([][2]float64, 0, p.MaxIterations),
	}
}

// Bounds returns the world columns of the window.
func (b *Buddhabrot) Bounds() (int, int) {
	return b.lo, b.hi
}

// Trace iterates every point of world column x.
func (b *Buddhabrot) Trace(x int) {
	size := b.p.AxisSize
	for y := b.top; y < b.top+size; y++ {
		cRe, cIm := PlanePoint(x, y, size, b.p.Magnification)
		if !b.walk(cRe, cIm) {
			continue
		}
		for _, z := range b.trail {
			px, py := PixelOf(z[0], z[1], size, b.p.Magnification)
			col, row := px-b.lo, py-b.top
			if col < 0 || col >= size || row < 0 || row >= size {
				continue
			}
			i := col*size + row
			b.hits[i]++
			if b.hits[i] > b.max {
				b.max = b.hits[i]
			}
		}
	}
}

// walk records the orbit of c and reports whether it escaped.
func (b *Buddhabrot) walk(cRe, cIm float64) bool {
	b.trail = b.trail[:0]
	var zRe, zIm float64
	for range b.p.MaxIterations {
		zRe, zIm = mandelbrotStep(zRe, zIm, cRe, cIm)
		if cmath.IsBad(zRe, zIm) {
			return false
		}
		if cmath.Modulus(zRe, zIm) > b.p.Threshold {
			return true
		}
		b.trail = append(b.trail, [2]float64{zRe, zIm})
	}
	return false
}

// Normalized returns every window cell scaled by the maximum hit count.
func (b *Buddhabrot) Normalized() map[int]map[int]float64 {
	size := b.p.AxisSize
	out := make(map[int]map[int]float64, size)
	for col := range size {
		column := make(map[int]float64, size)
		for row := range size {
			v := 0.0
			if b.max > 0 {
				v = b.hits[col*size+row] / b.max
			}
			column[b.top+row] = v
		}
		out[b.lo+col] = column
	}
	return out
}
