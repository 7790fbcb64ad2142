package calculator

import (
	"go.trai.ch/fractal/internal/core/cmath"
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/fractal/internal/expression"
	"go.trai.ch/zerr"
)

// Variables a custom formula may read.
var (
	varX = expression.NewName("x")
	varY = expression.NewName("y")
	varC = expression.NewName("c")
	varZ = expression.NewName("z")
	varN = expression.NewName("n")
)

var customVariables = map[expression.Name]bool{
	varX: true, varY: true, varC: true, varZ: true, varN: true,
}

// compileFormula compiles src and checks it only reads known variables.
// which names the formula in the returned error.
func compileFormula(which, src string, allowed map[expression.Name]bool) (*expression.Program, error) {
	prog, err := expression.Compile(src)
	if err != nil {
		return nil, &domain.FormulaError{Formula: which, Source: src, Err: err}
	}
	for _, name := range prog.Variables() {
		if !allowed[name] {
			err := zerr.With(zerr.Wrap(expression.ErrUnboundVariable, "formula reads an unknown variable"), "variable", name.String())
			return nil, &domain.FormulaError{Formula: which, Source: src, Err: err}
		}
	}
	return prog, nil
}

// bindCustom compiles both formulas once and returns the per-pixel iteration.
//
// The initial formula sees x, y and c; the iteration formula additionally sees
// the current z and the iteration count n. z is always promoted to complex.
func bindCustom(p domain.Params) (ports.PixelFunc, error) {
	initialSrc := p.CustomInitial
	if initialSrc == "" {
		initialSrc = "0"
	}
	initial, err := compileFormula("initial", initialSrc, map[expression.Name]bool{varX: true, varY: true, varC: true})
	if err != nil {
		return nil, err
	}
	iteration, err := compileFormula("iteration", p.CustomIteration, customVariables)
	if err != nil {
		return nil, err
	}

	return func(x, y int) (float64, error) {
		cRe, cIm := PlanePoint(x, y, p.AxisSize, p.Magnification)
		b := expression.Bindings{
			varX: expression.Real(float64(x)),
			varY: expression.Real(float64(y)),
			varC: expression.Complex(cRe, cIm),
		}

		z, err := initial.Eval(b)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "custom formula evaluation failed"), "formula", "initial")
		}
		for i := 1; i <= p.MaxIterations; i++ {
			b[varZ] = expression.Complex(z.Parts())
			b[varN] = expression.Real(float64(i))
			z, err = iteration.Eval(b)
			if err != nil {
				return 0, zerr.With(zerr.Wrap(err, "custom formula evaluation failed"), "formula", "iteration")
			}
			if cmath.IsBad(z.Re, z.Im) {
				return 0, nil
			}
			if z.Modulus() > p.Threshold {
				return float64(i) / float64(p.MaxIterations), nil
			}
		}
		return 0, nil
	}, nil
}
