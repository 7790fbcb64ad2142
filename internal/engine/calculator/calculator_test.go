package calculator_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractal/internal/core/cmath"
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/engine/calculator"
	"go.trai.ch/fractal/internal/expression"
)

func params(kind domain.Kind) domain.Params {
	p := domain.DefaultParams()
	p.Kind = kind
	return p
}

// pixelAt returns the world pixel mapping onto re+im·i for p.
func pixelAt(p domain.Params, re, im float64) (int, int) {
	return calculator.PixelOf(re, im, p.AxisSize, p.Magnification)
}

func TestPlanePoint(t *testing.T) {
	re, im := calculator.PlanePoint(0, 0, 256, 1)
	assert.Equal(t, -2.0, re)
	assert.Equal(t, -2.0, im)

	re, im = calculator.PlanePoint(128, 128, 256, 1)
	assert.Zero(t, re)
	assert.Zero(t, im)

	re, _ = calculator.PlanePoint(0, 0, 256, 4)
	assert.Equal(t, -0.5, re)

	x, y := calculator.PixelOf(-0.5, 0.25, 256, 4)
	re, im = calculator.PlanePoint(x, y, 256, 4)
	assert.InDelta(t, -0.5, re, 1e-12)
	assert.InDelta(t, 0.25, im, 1e-12)
}

func TestMandelbrot(t *testing.T) {
	p := params(domain.KindMandelbrot)

	t.Run("origin never escapes", func(t *testing.T) {
		x, y := pixelAt(p, 0, 0)
		for _, limit := range []int{1, 10, 1000} {
			p.MaxIterations = limit
			assert.Zero(t, calculator.Mandelbrot(x, y, p))
		}
	})

	t.Run("far point escapes on the first iteration", func(t *testing.T) {
		p.MaxIterations = 100
		x, y := pixelAt(p, 3, 0)
		assert.InDelta(t, 0.01, calculator.Mandelbrot(x, y, p), 1e-12)
	})

	t.Run("results stay in unit range", func(t *testing.T) {
		p.AxisSize = 32
		for x := range 32 {
			for y := range 32 {
				v := calculator.Mandelbrot(x, y, p)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	})
}

func TestBurningShipMirror(t *testing.T) {
	p := params(domain.KindBurningShip)
	p.AxisSize = 64
	mirrored := p
	mirrored.MirrorBurningShip = true

	for x := 1; x < 64; x += 7 {
		for y := 0; y < 64; y += 5 {
			assert.Equal(t, calculator.BurningShip(64-x, y, p), calculator.BurningShip(x, y, mirrored))
		}
	}
}

func TestMandelbar(t *testing.T) {
	p := params(domain.KindMandelbar)
	x, y := pixelAt(p, 0, 0)
	assert.Zero(t, calculator.Mandelbar(x, y, p))

	x, y = pixelAt(p, -3, 0)
	assert.InDelta(t, 0.01, calculator.Mandelbar(x, y, p), 1e-12)
}

func TestJulia(t *testing.T) {
	p := params(domain.KindJulia)
	p.JuliaReal, p.JuliaImag = 0, 0

	x, y := pixelAt(p, 0.5, 0)
	assert.Zero(t, calculator.Julia(x, y, p))

	x, y = pixelAt(p, 1.5, 0)
	assert.InDelta(t, 0.01, calculator.Julia(x, y, p), 1e-12)
}

func TestNewtonQuadraticConverges(t *testing.T) {
	reg := calculator.New()
	fn, ok := reg.NewtonFunction("quadratic")
	require.True(t, ok)

	zRe, zIm := 1.3, 0.2
	const maxIterations = 100
	steps := 0
	for ; steps < maxIterations; steps++ {
		if cmath.Modulus(zRe-1, zIm) < calculator.NewtonTolerance {
			break
		}
		zRe, zIm = fn.Step(zRe, zIm, 1, 0)
	}
	assert.Less(t, steps, maxIterations)
	assert.InDelta(t, 1.0, zRe, calculator.NewtonTolerance)
	assert.InDelta(t, 0.0, zIm, calculator.NewtonTolerance)
}

func TestNewtonBind(t *testing.T) {
	reg := calculator.New()
	p := params(domain.KindNewton)
	x, y := pixelAt(p, 1, 0)

	p.PreferRootBasis = true
	fn, err := reg.Bind(p)
	require.NoError(t, err)
	v, err := fn(x, y)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	p.PreferRootBasis = false
	fn, err = reg.Bind(p)
	require.NoError(t, err)
	v, err = fn(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/float64(p.MaxIterations), v, 1e-12)
}

func TestNewtonRootValuesAreDistinct(t *testing.T) {
	reg := calculator.New()
	p := params(domain.KindNewton)
	p.NewtonFunction = "quartic"
	fn, err := reg.Bind(p)
	require.NoError(t, err)

	seen := make(map[float64]bool)
	for _, root := range [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} {
		x, y := pixelAt(p, root[0]*1.02, root[1]*1.02)
		v, err := fn(x, y)
		require.NoError(t, err)
		assert.Positive(t, v)
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestNewtonClosestRootClassifier(t *testing.T) {
	calls := 0
	reg := calculator.New(calculator.WithRand(func() float64 {
		calls++
		return 0.5
	}))
	p := params(domain.KindNewton)
	p.NewtonFunction = "sin"
	fn, err := reg.Bind(p)
	require.NoError(t, err)

	x, y := pixelAt(p, 3.1, 0)
	v, err := fn(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12)

	// The same magnitude bucket reuses its color.
	_, err = fn(x+1, y)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestNewtonNaNShortCircuits(t *testing.T) {
	for _, name := range []string{"quadratic", "sin"} {
		t.Run(name, func(t *testing.T) {
			p := params(domain.KindNewton)
			p.NewtonFunction = name
			p.PreferRootBasis = true
			p.NewtonCoefficientReal = math.NaN()
			fn, err := calculator.New().Bind(p)
			require.NoError(t, err)

			for _, px := range [][2]int{{5, 4}, {200, 130}, {128, 128}} {
				v, err := fn(px[0], px[1])
				require.NoError(t, err)
				assert.Zero(t, v)
			}
		})
	}

	t.Run("nan root magnitude", func(t *testing.T) {
		set := calculator.ClosestRootClassifier{Closest: func(float64, float64) (float64, float64) {
			return math.NaN(), 0
		}}
		v, stop := calculator.Classify(set, func() float64 { return 0.5 }, 1, 0)
		assert.True(t, stop)
		assert.Zero(t, v)
	})
}

func TestNewtonQuinticRoots(t *testing.T) {
	reg := calculator.New()
	fn, ok := reg.NewtonFunction("quintic")
	require.True(t, ok)

	roots, ok := fn.Roots.(calculator.ExplicitRoots)
	require.True(t, ok)
	require.Len(t, roots, 5)
	for _, r := range roots {
		re, im := fn.F(r.Re, r.Im)
		assert.Less(t, cmath.Modulus(re, im), 1e-9)
	}
}

func TestNewtonMissingFunction(t *testing.T) {
	p := params(domain.KindNewton)
	p.NewtonFunction = "tangent"
	_, err := calculator.New().Bind(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingNewtonFunction)
}

func TestBindDispatch(t *testing.T) {
	reg := calculator.New()

	_, err := reg.Bind(params(domain.Kind(99)))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)

	_, err = reg.Bind(params(domain.KindBuddhabrot))
	assert.ErrorIs(t, err, domain.ErrNotPerPixel)

	_, err = reg.BindPlane(params(domain.KindMandelbrot))
	assert.ErrorIs(t, err, domain.ErrUnknownKind)

	for _, kind := range []domain.Kind{
		domain.KindMandelbrot, domain.KindBurningShip, domain.KindMandelbar,
		domain.KindJulia, domain.KindNewton, domain.KindCustom,
	} {
		fn, err := reg.Bind(params(kind))
		require.NoError(t, err, kind.String())
		_, err = fn(10, 20)
		assert.NoError(t, err, kind.String())
	}
}

func TestCustomMatchesMandelbrot(t *testing.T) {
	p := params(domain.KindCustom)
	p.AxisSize = 32
	p.CustomInitial = "0"
	p.CustomIteration = "z*z + c"

	fn, err := calculator.New().Bind(p)
	require.NoError(t, err)
	for x := range 32 {
		for y := range 32 {
			got, err := fn(x, y)
			require.NoError(t, err)
			assert.Equal(t, calculator.Mandelbrot(x, y, p), got)
		}
	}
}

func TestCustomCompileErrors(t *testing.T) {
	tests := []struct {
		name      string
		initial   string
		iteration string
		formula   string
		cause     error
	}{
		{"lex error in initial", "1 $", "z^2 + c", "initial", expression.ErrUnexpectedCharacter},
		{"parse error in iteration", "0", "(z^2 + c", "iteration", expression.ErrUnexpectedToken},
		{"missing prefix form", "0", "z^^2", "iteration", expression.ErrNoPrefixForm},
		{"arity error in iteration", "0", "pow(z) + c", "iteration", expression.ErrWrongArity},
		{"unknown variable", "0", "w + c", "iteration", expression.ErrUnboundVariable},
		{"z is not available initially", "z", "z^2 + c", "initial", expression.ErrUnboundVariable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params(domain.KindCustom)
			p.CustomInitial = tt.initial
			p.CustomIteration = tt.iteration

			_, err := calculator.New().Bind(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrFormulaCompile)
			assert.ErrorIs(t, err, tt.cause)

			var formulaErr *domain.FormulaError
			require.True(t, errors.As(err, &formulaErr))
			assert.Equal(t, tt.formula, formulaErr.Formula)
		})
	}
}

func TestCustomEvalErrorIsPerPixel(t *testing.T) {
	p := params(domain.KindCustom)
	p.CustomIteration = "re(n) + c"

	fn, err := calculator.New().Bind(p)
	require.NoError(t, err)

	v, err := fn(0, 0)
	assert.Zero(t, v)
	assert.ErrorIs(t, err, expression.ErrTypeMismatch)
}

func TestBuddhabrot(t *testing.T) {
	p := params(domain.KindBuddhabrot)
	p.AxisSize = 24
	p.MaxIterations = 30

	sweep, err := calculator.New().BindPlane(p)
	require.NoError(t, err)

	lo, hi := sweep.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 24, hi)
	for x := lo; x < hi; x++ {
		sweep.Trace(x)
	}

	cells := sweep.Normalized()
	require.Len(t, cells, 24)
	peak := 0.0
	for _, column := range cells {
		require.Len(t, column, 24)
		for _, v := range column {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			peak = max(peak, v)
		}
	}
	assert.Equal(t, 1.0, peak)
}

func TestBuddhabrotWindowFollowsOffsets(t *testing.T) {
	p := params(domain.KindBuddhabrot)
	p.AxisSize = 8
	p.OffsetX, p.OffsetY = 100, -4

	sweep := calculator.NewBuddhabrot(p)
	lo, hi := sweep.Bounds()
	assert.Equal(t, 100, lo)
	assert.Equal(t, 108, hi)

	cells := sweep.Normalized()
	assert.Contains(t, cells, 100)
	assert.Contains(t, cells[100], -4)
	assert.NotContains(t, cells, 0)
}
