package expression

import (
	"strings"

	"go.trai.ch/zerr"
)

// Node is a compiled expression tree node.
// Trees are acyclic and evaluated repeatedly with different bindings.
type Node interface {
	Eval(b Bindings) (Term, error)
	String() string
}

// Constant is a literal or a named constant resolved at parse time.
type Constant struct {
	Value Term
}

// Eval returns the constant.
func (n *Constant) Eval(Bindings) (Term, error) {
	return n.Value, nil
}

func (n *Constant) String() string {
	return n.Value.String()
}

// Variable looks its value up in the bindings.
type Variable struct {
	Name Name
}

// Eval returns the bound value. A missing binding is an EvalError.
func (n *Variable) Eval(b Bindings) (Term, error) {
	t, ok := b[n.Name]
	if !ok {
		err := zerr.With(zerr.Wrap(ErrUnboundVariable, "lookup failed"), "variable", n.Name.String())
		return Term{}, &EvalError{Op: n.Name.String(), Err: err}
	}
	return t, nil
}

func (n *Variable) String() string {
	return n.Name.String()
}

// Binary applies an infix operator.
type Binary struct {
	Op    rune
	Left  Node
	Right Node
	exec  BinaryFunc
}

// Eval evaluates both operands left to right, then the operator.
func (n *Binary) Eval(b Bindings) (Term, error) {
	l, err := n.Left.Eval(b)
	if err != nil {
		return Term{}, err
	}
	r, err := n.Right.Eval(b)
	if err != nil {
		return Term{}, err
	}
	return n.exec(l, r)
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + string(n.Op) + " " + n.Right.String() + ")"
}

// Unary applies a prefix or postfix operator.
type Unary struct {
	Op      rune
	Postfix bool
	Operand Node
	exec    UnaryFunc
}

// Eval evaluates the operand, then the operator.
func (n *Unary) Eval(b Bindings) (Term, error) {
	v, err := n.Operand.Eval(b)
	if err != nil {
		return Term{}, err
	}
	return n.exec(v)
}

func (n *Unary) String() string {
	if n.Postfix {
		return "(" + n.Operand.String() + string(n.Op) + ")"
	}
	return "(" + string(n.Op) + n.Operand.String() + ")"
}

// Call invokes a registered function.
type Call struct {
	Name string
	Args []Node
	exec FuncImpl
}

// Eval evaluates the arguments in order, then the function.
func (n *Call) Eval(b Bindings) (Term, error) {
	var buf [2]Term
	args := buf[:0]
	for _, a := range n.Args {
		v, err := a.Eval(b)
		if err != nil {
			return Term{}, err
		}
		args = append(args, v)
	}
	return n.exec(args)
}

func (n *Call) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}
