package expression

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrUnexpectedCharacter is returned when the lexer meets a character no token starts with.
	ErrUnexpectedCharacter = zerr.New("unexpected character")

	// ErrMalformedNumber is returned when a numeric literal cannot be parsed.
	ErrMalformedNumber = zerr.New("malformed number")

	// ErrUnexpectedToken is returned when the parser meets a token the grammar does not allow.
	ErrUnexpectedToken = zerr.New("unexpected token")

	// ErrWrongArity is returned when a function call has the wrong number of arguments.
	ErrWrongArity = zerr.New("wrong number of arguments")

	// ErrNoPrefixForm is returned when an operator without a prefix form is used in prefix position.
	ErrNoPrefixForm = zerr.New("operator cannot be used in unary fashion")

	// ErrUnboundVariable is returned when a variable has no binding at evaluation time.
	ErrUnboundVariable = zerr.New("unbound variable")

	// ErrTypeMismatch is returned when an operation receives a term of the wrong tag.
	ErrTypeMismatch = zerr.New("type mismatch")
)

// LexError reports a failure to tokenize a formula.
type LexError struct {
	Pos  int
	Text string
	Err  error
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %v %q", e.Pos, e.Err, e.Text)
}

func (e *LexError) Unwrap() error { return e.Err }

// ParseError reports a token sequence the grammar rejects.
// Expected describes what the parser was looking for, Got is the offending token.
type ParseError struct {
	Expected string
	Got      Token
	Err      error
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("parse error at %d: %v %s", e.Got.Pos, e.Err, e.Got)
	}
	return fmt.Sprintf("parse error at %d: %v: expected %s, got %s", e.Got.Pos, e.Err, e.Expected, e.Got)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EvalError reports a failure while evaluating a compiled formula.
type EvalError struct {
	Op  string
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("eval error in %s: %v", e.Op, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

func mismatch(op string, want Tag, got Term) error {
	err := zerr.With(zerr.Wrap(ErrTypeMismatch, "expected "+want.String()), "got", got.Tag.String())
	return &EvalError{Op: op, Err: err}
}
