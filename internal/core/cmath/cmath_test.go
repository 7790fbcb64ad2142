package cmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/fractal/internal/core/cmath"
)

const eps = 1e-12

func TestModulus(t *testing.T) {
	assert.InDelta(t, 5.0, cmath.Modulus(3, 4), eps)
	assert.InDelta(t, 13.0, cmath.Modulus(-5, 12), eps)
	assert.Zero(t, cmath.Modulus(0, 0))
	assert.Positive(t, cmath.Modulus(0, 1e-300))
}

func TestSquare(t *testing.T) {
	re, im := cmath.Square(0, 1)
	assert.InDelta(t, -1.0, re, eps)
	assert.InDelta(t, 0.0, im, eps)

	re, im = cmath.Square(1, 2)
	assert.InDelta(t, -3.0, re, eps)
	assert.InDelta(t, 4.0, im, eps)
}

func TestPow(t *testing.T) {
	t.Run("zero exponent is one", func(t *testing.T) {
		for _, z := range [][2]float64{{1, 1}, {-3, 0.5}, {0, -7}, {1e3, 1e3}} {
			re, im := cmath.Pow(z[0], z[1], 0)
			assert.Equal(t, 1.0, re)
			assert.Equal(t, 0.0, im)
		}
	})

	t.Run("real short circuit", func(t *testing.T) {
		re, im := cmath.Pow(2, 0, 10)
		assert.Equal(t, 1024.0, re)
		assert.Equal(t, 0.0, im)

		re, im = cmath.Pow(-2, 0, 3)
		assert.Equal(t, -8.0, re)
		assert.Equal(t, 0.0, im)
	})

	t.Run("polar form", func(t *testing.T) {
		re, im := cmath.Pow(0, 1, 2)
		assert.InDelta(t, -1.0, re, eps)
		assert.InDelta(t, 0.0, im, eps)

		sqRe, sqIm := cmath.Square(1.5, -0.5)
		re, im = cmath.Pow(1.5, -0.5, 2)
		assert.InDelta(t, sqRe, re, 1e-9)
		assert.InDelta(t, sqIm, im, 1e-9)
	})

	t.Run("negative real with fractional exponent goes complex", func(t *testing.T) {
		re, im := cmath.Pow(-4, 0, 0.5)
		assert.InDelta(t, 0.0, re, 1e-9)
		assert.InDelta(t, 2.0, im, 1e-9)
	})
}

func TestMultiplyDivide(t *testing.T) {
	re, im := cmath.Multiply(1, 2, 3, 4)
	assert.InDelta(t, -5.0, re, eps)
	assert.InDelta(t, 10.0, im, eps)

	re, im = cmath.Divide(-5, 10, 3, 4)
	assert.InDelta(t, 1.0, re, eps)
	assert.InDelta(t, 2.0, im, eps)
}

func TestDivideByZeroSaturates(t *testing.T) {
	re, im := cmath.Divide(1, 1, 0, 0)
	assert.Equal(t, 0.0, re)
	assert.Equal(t, 0.0, im)
}

func TestTrig(t *testing.T) {
	re, im := cmath.Sin(math.Pi/2, 0)
	assert.InDelta(t, 1.0, re, eps)
	assert.InDelta(t, 0.0, im, eps)

	re, im = cmath.Cos(0, 1)
	assert.InDelta(t, math.Cosh(1), re, eps)
	assert.InDelta(t, 0.0, im, eps)

	sRe, sIm := cmath.Sin(0.3, 0.7)
	cRe, cIm := cmath.Cos(0.3, 0.7)
	wantRe, wantIm := cmath.Divide(sRe, sIm, cRe, cIm)
	re, im = cmath.Tan(0.3, 0.7)
	assert.InDelta(t, wantRe, re, eps)
	assert.InDelta(t, wantIm, im, eps)

	// sin² + cos² = 1 holds on the whole plane.
	s2Re, s2Im := cmath.Square(sRe, sIm)
	c2Re, c2Im := cmath.Square(cRe, cIm)
	assert.InDelta(t, 1.0, s2Re+c2Re, 1e-9)
	assert.InDelta(t, 0.0, s2Im+c2Im, 1e-9)
}

func TestExpLog(t *testing.T) {
	re, im := cmath.Exp(0, math.Pi)
	assert.InDelta(t, -1.0, re, eps)
	assert.InDelta(t, 0.0, im, eps)

	re, im = cmath.Log(cmath.Exp(0.5, 1.2))
	assert.InDelta(t, 0.5, re, eps)
	assert.InDelta(t, 1.2, im, eps)
}

func TestIsBad(t *testing.T) {
	assert.False(t, cmath.IsBad(1, 2))
	assert.True(t, cmath.IsBad(math.NaN(), 0))
	assert.True(t, cmath.IsBad(0, math.Inf(-1)))
}
