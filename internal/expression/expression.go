// Package expression compiles user formulas over real and complex terms.
//
// A formula is lexed and parsed once into a tree whose operator and function
// closures are taken from a Registry, then evaluated any number of times with
// different variable bindings.
package expression

import (
	"slices"
	"strings"
)

// Program is a compiled formula.
type Program struct {
	Source string
	Root   Node
	vars   []Name
}

// Compile parses src against the default registry.
func Compile(src string) (*Program, error) {
	return CompileWith(DefaultRegistry(), src)
}

// CompileWith parses src against reg.
func CompileWith(reg *Registry, src string) (*Program, error) {
	tokens, err := Tokenize(reg, src)
	if err != nil {
		return nil, err
	}
	p := NewParser(reg, tokens)
	root, err := p.Parse()
	if err != nil {
		return nil, err
	}
	vars := p.Variables()
	slices.SortFunc(vars, func(a, b Name) int {
		return strings.Compare(a.String(), b.String())
	})
	return &Program{Source: src, Root: root, vars: vars}, nil
}

// Eval evaluates the program under b.
func (p *Program) Eval(b Bindings) (Term, error) {
	return p.Root.Eval(b)
}

// Variables returns the variable names the program reads, sorted.
func (p *Program) Variables() []Name {
	return slices.Clone(p.vars)
}

// Describe lists the built-in operators, functions and constants.
func Describe() []Descriptor {
	return DefaultRegistry().Describe()
}
