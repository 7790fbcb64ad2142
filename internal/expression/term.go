package expression

import (
	"strconv"

	"go.trai.ch/fractal/internal/core/cmath"
)

// Tag discriminates the two shapes of a Term.
type Tag uint8

const (
	// TagReal marks a real scalar.
	TagReal Tag = iota
	// TagComplex marks a complex pair.
	TagComplex
)

func (t Tag) String() string {
	if t == TagComplex {
		return "complex"
	}
	return "real"
}

// Term is a tagged value: a real scalar, or a complex pair.
// Im is always zero for real terms.
type Term struct {
	Tag Tag
	Re  float64
	Im  float64
}

// Real returns a real term.
func Real(v float64) Term {
	return Term{Tag: TagReal, Re: v}
}

// Complex returns a complex term.
func Complex(re, im float64) Term {
	return Term{Tag: TagComplex, Re: re, Im: im}
}

// IsComplex reports whether t carries the complex tag.
func (t Term) IsComplex() bool {
	return t.Tag == TagComplex
}

// Parts returns t as a complex pair, promoting real terms.
func (t Term) Parts() (float64, float64) {
	return t.Re, t.Im
}

// Modulus returns |t|.
func (t Term) Modulus() float64 {
	if t.Tag == TagReal {
		if t.Re < 0 {
			return -t.Re
		}
		return t.Re
	}
	return cmath.Modulus(t.Re, t.Im)
}

func (t Term) String() string {
	if t.Tag == TagReal {
		return strconv.FormatFloat(t.Re, 'g', -1, 64)
	}
	re := strconv.FormatFloat(t.Re, 'g', -1, 64)
	im := strconv.FormatFloat(t.Im, 'g', -1, 64)
	if t.Im >= 0 {
		return re + "+" + im + "i"
	}
	return re + im + "i"
}

// lift returns a real term when both operands are real, a complex one otherwise.
func lift(a, b Term, re, im float64) Term {
	if a.Tag == TagReal && b.Tag == TagReal {
		return Real(re)
	}
	return Complex(re, im)
}
