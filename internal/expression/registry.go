package expression

import (
	"maps"
	"math"
	"slices"

	"go.trai.ch/fractal/internal/core/cmath"
)

// BinaryFunc evaluates an infix operator.
type BinaryFunc func(a, b Term) (Term, error)

// UnaryFunc evaluates a prefix or postfix operator.
type UnaryFunc func(a Term) (Term, error)

// FuncImpl evaluates a function call. len(args) always equals the declared arity.
type FuncImpl func(args []Term) (Term, error)

// Operator declares the forms a symbol supports. A nil form is not available,
// and using it is rejected at parse time.
type Operator struct {
	Symbol     rune
	Precedence int
	RightAssoc bool
	Binary     BinaryFunc
	Prefix     UnaryFunc
	Postfix    UnaryFunc
	Signature  string
}

// Function declares a named function of fixed arity.
type Function struct {
	Name      string
	Arity     int
	Signature string
	Exec      FuncImpl
}

// Descriptor is the read-only view of one registry entry.
type Descriptor struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Arity     int    `json:"arity"`
	Signature string `json:"signature"`
}

// Registry is the table of operators, functions and constants the lexer,
// parser and evaluator agree on. It is immutable after construction.
type Registry struct {
	order     []rune
	operators map[rune]Operator
	functions map[string]Function
	constants map[string]Term
}

// NewRegistry builds a registry from explicit tables.
func NewRegistry(ops []Operator, fns []Function, consts map[string]Term) *Registry {
	r := &Registry{
		operators: make(map[rune]Operator, len(ops)),
		functions: make(map[string]Function, len(fns)),
		constants: maps.Clone(consts),
	}
	for _, op := range ops {
		r.order = append(r.order, op.Symbol)
		r.operators[op.Symbol] = op
	}
	for _, fn := range fns {
		r.functions[fn.Name] = fn
	}
	return r
}

var defaultRegistry = NewRegistry(
	[]Operator{
		{Symbol: '+', Precedence: 1, Binary: add, Signature: "a + b"},
		{Symbol: '-', Precedence: 1, Binary: sub, Prefix: neg, Signature: "a - b, -a"},
		{Symbol: '*', Precedence: 2, Binary: mul, Signature: "a * b"},
		{Symbol: '/', Precedence: 2, Binary: div, Signature: "a / b"},
		{Symbol: '^', Precedence: 3, RightAssoc: true, Binary: pow, Signature: "a ^ b"},
		{Symbol: '\'', Postfix: unary("'", conjugate), Signature: "z'"},
	},
	[]Function{
		{Name: "abs", Arity: 1, Signature: "abs(a) -> real", Exec: one(abs)},
		{Name: "re", Arity: 1, Signature: "re(z complex) -> real", Exec: one(unary("re", realPart))},
		{Name: "im", Arity: 1, Signature: "im(z complex) -> real", Exec: one(unary("im", imagPart))},
		{Name: "conj", Arity: 1, Signature: "conj(z complex) -> complex", Exec: one(unary("conj", conjugate))},
		{Name: "arg", Arity: 1, Signature: "arg(z complex) -> real", Exec: one(unary("arg", argument))},
		{Name: "sin", Arity: 1, Signature: "sin(a)", Exec: one(analytic(math.Sin, cmath.Sin))},
		{Name: "cos", Arity: 1, Signature: "cos(a)", Exec: one(analytic(math.Cos, cmath.Cos))},
		{Name: "tan", Arity: 1, Signature: "tan(a)", Exec: one(analytic(math.Tan, cmath.Tan))},
		{Name: "exp", Arity: 1, Signature: "exp(a)", Exec: one(analytic(math.Exp, cmath.Exp))},
		{Name: "log", Arity: 1, Signature: "log(a)", Exec: one(logTerm)},
		{Name: "sqrt", Arity: 1, Signature: "sqrt(a)", Exec: one(sqrtTerm)},
		{Name: "pow", Arity: 2, Signature: "pow(a, b)", Exec: two(pow)},
		{Name: "complex", Arity: 2, Signature: "complex(re real, im real) -> complex", Exec: two(makeComplex)},
	},
	map[string]Term{
		"i":  Complex(0, 1),
		"pi": Real(math.Pi),
		"e":  Real(math.E),
	},
)

// DefaultRegistry returns the built-in registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Operator looks up an operator by symbol.
func (r *Registry) Operator(symbol rune) (Operator, bool) {
	op, ok := r.operators[symbol]
	return op, ok
}

// Function looks up a function by name.
func (r *Registry) Function(name string) (Function, bool) {
	fn, ok := r.functions[name]
	return fn, ok
}

// Constant looks up a named constant.
func (r *Registry) Constant(name string) (Term, bool) {
	t, ok := r.constants[name]
	return t, ok
}

// Describe lists every operator, function and constant.
// Operators keep declaration order; functions and constants are sorted by name.
func (r *Registry) Describe() []Descriptor {
	out := make([]Descriptor, 0, len(r.order)+len(r.functions)+len(r.constants))
	for _, sym := range r.order {
		op := r.operators[sym]
		arity := 1
		if op.Binary != nil {
			arity = 2
		}
		out = append(out, Descriptor{Name: string(sym), Kind: "operator", Arity: arity, Signature: op.Signature})
	}
	for _, name := range slices.Sorted(maps.Keys(r.functions)) {
		fn := r.functions[name]
		out = append(out, Descriptor{Name: name, Kind: "function", Arity: fn.Arity, Signature: fn.Signature})
	}
	for _, name := range slices.Sorted(maps.Keys(r.constants)) {
		out = append(out, Descriptor{Name: name, Kind: "constant", Signature: r.constants[name].String()})
	}
	return out
}

func one(fn UnaryFunc) FuncImpl {
	return func(args []Term) (Term, error) { return fn(args[0]) }
}

func two(fn BinaryFunc) FuncImpl {
	return func(args []Term) (Term, error) { return fn(args[0], args[1]) }
}

// unary restricts fn to complex operands.
func unary(op string, fn func(Term) Term) UnaryFunc {
	return func(a Term) (Term, error) {
		if !a.IsComplex() {
			return Term{}, mismatch(op, TagComplex, a)
		}
		return fn(a), nil
	}
}

// analytic applies realFn to real terms and complexFn to complex ones.
func analytic(realFn func(float64) float64, complexFn func(float64, float64) (float64, float64)) UnaryFunc {
	return func(a Term) (Term, error) {
		if !a.IsComplex() {
			return Real(realFn(a.Re)), nil
		}
		return Complex(complexFn(a.Re, a.Im)), nil
	}
}

func add(a, b Term) (Term, error) {
	return lift(a, b, a.Re+b.Re, a.Im+b.Im), nil
}

func sub(a, b Term) (Term, error) {
	return lift(a, b, a.Re-b.Re, a.Im-b.Im), nil
}

func mul(a, b Term) (Term, error) {
	re, im := cmath.Multiply(a.Re, a.Im, b.Re, b.Im)
	return lift(a, b, re, im), nil
}

// div saturates to zero on a zero divisor, for reals and complex alike.
func div(a, b Term) (Term, error) {
	if !a.IsComplex() && !b.IsComplex() {
		if b.Re == 0 {
			return Real(0), nil
		}
		return Real(a.Re / b.Re), nil
	}
	return Complex(cmath.Divide(a.Re, a.Im, b.Re, b.Im)), nil
}

func pow(a, b Term) (Term, error) {
	if b.IsComplex() {
		if a.Re == 0 && a.Im == 0 {
			return Complex(0, 0), nil
		}
		lnRe, lnIm := cmath.Log(a.Re, a.Im)
		return Complex(cmath.Exp(cmath.Multiply(lnRe, lnIm, b.Re, b.Im))), nil
	}
	re, im := cmath.Pow(a.Re, a.Im, b.Re)
	if !a.IsComplex() && im == 0 {
		return Real(re), nil
	}
	return Complex(re, im), nil
}

func neg(a Term) (Term, error) {
	if !a.IsComplex() {
		return Real(-a.Re), nil
	}
	return Complex(-a.Re, -a.Im), nil
}

func abs(a Term) (Term, error) {
	return Real(a.Modulus()), nil
}

func realPart(a Term) Term { return Real(a.Re) }

func imagPart(a Term) Term { return Real(a.Im) }

func conjugate(a Term) Term { return Complex(cmath.Conj(a.Re, a.Im)) }

func argument(a Term) Term { return Real(cmath.Arg(a.Re, a.Im)) }

func logTerm(a Term) (Term, error) {
	if !a.IsComplex() && a.Re > 0 {
		return Real(math.Log(a.Re)), nil
	}
	return Complex(cmath.Log(a.Re, a.Im)), nil
}

func sqrtTerm(a Term) (Term, error) {
	if !a.IsComplex() && a.Re >= 0 {
		return Real(math.Sqrt(a.Re)), nil
	}
	return Complex(cmath.Pow(a.Re, a.Im, 0.5)), nil
}

func makeComplex(a, b Term) (Term, error) {
	if a.IsComplex() {
		return Term{}, mismatch("complex", TagReal, a)
	}
	if b.IsComplex() {
		return Term{}, mismatch("complex", TagReal, b)
	}
	return Complex(a.Re, b.Re), nil
}
