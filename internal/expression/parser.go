package expression

import (
	"strconv"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// Parser builds an expression tree from a token sequence by recursive descent.
//
//	expression := term (operator term)*
//	term       := prefix-operator term | primary postfix-operator*
//	primary    := number | imaginary | identifier | '(' expression ')'
//	            | '|' expression '|' | function '(' expression (',' expression)* ')'
//
// Binary operators bind by the precedence declared in the registry, left to
// right unless declared right-associative. Prefix operators bind tighter than
// any binary operator.
type Parser struct {
	reg    *Registry
	tokens []Token
	pos    int
	vars   map[string]Name
}

// NewParser returns a parser over tokens, which must end with an EOF token.
func NewParser(reg *Registry, tokens []Token) *Parser {
	return &Parser{reg: reg, tokens: tokens, vars: make(map[string]Name)}
}

// Parse consumes the whole token sequence and returns the tree.
func (p *Parser) Parse() (Node, error) {
	n, err := p.expression(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, &ParseError{Expected: TokenEOF.String(), Got: tok, Err: ErrUnexpectedToken}
	}
	return n, nil
}

// Variables returns the distinct variable names referenced by the parsed tree.
func (p *Parser) Variables() []Name {
	out := make([]Name, 0, len(p.vars))
	for _, n := range p.vars {
		out = append(out, n)
	}
	return out
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind TokenKind) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, &ParseError{Expected: kind.String(), Got: tok, Err: ErrUnexpectedToken}
	}
	return tok, nil
}

// operator returns the registry entry behind an operator token.
func (p *Parser) operator(tok Token) Operator {
	r, _ := utf8.DecodeRuneInString(tok.Text)
	op, _ := p.reg.Operator(r)
	return op
}

func (p *Parser) expression(minPrec int) (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if tok.Kind != TokenOperator {
			return left, nil
		}
		op := p.operator(tok)
		if op.Binary == nil || op.Precedence < minPrec {
			return left, nil
		}
		p.next()

		nextPrec := op.Precedence + 1
		if op.RightAssoc {
			nextPrec = op.Precedence
		}
		right, err := p.expression(nextPrec)
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op.Symbol, Left: left, Right: right, exec: op.Binary}
	}
}

func (p *Parser) term() (Node, error) {
	if tok := p.peek(); tok.Kind == TokenOperator {
		op := p.operator(tok)
		if op.Prefix == nil {
			err := zerr.With(zerr.Wrap(ErrNoPrefixForm, "prefix use"), "operator", tok.Text)
			return nil, &ParseError{Got: tok, Err: err}
		}
		p.next()
		operand, err := p.term()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: op.Symbol, Operand: operand, exec: op.Prefix}, nil
	}

	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Kind != TokenOperator {
			return n, nil
		}
		op := p.operator(tok)
		if op.Postfix == nil || op.Binary != nil {
			return n, nil
		}
		p.next()
		n = &Unary{Op: op.Symbol, Postfix: true, Operand: n, exec: op.Postfix}
	}
}

func (p *Parser) primary() (Node, error) {
	tok := p.next()
	switch tok.Kind {
	case TokenNumber, TokenImaginary:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &ParseError{Got: tok, Err: zerr.Wrap(ErrMalformedNumber, err.Error())}
		}
		if tok.Kind == TokenImaginary {
			return &Constant{Value: Complex(0, v)}, nil
		}
		return &Constant{Value: Real(v)}, nil

	case TokenIdentifier:
		if c, ok := p.reg.Constant(tok.Text); ok {
			return &Constant{Value: c}, nil
		}
		name, ok := p.vars[tok.Text]
		if !ok {
			name = NewName(tok.Text)
			p.vars[tok.Text] = name
		}
		return &Variable{Name: name}, nil

	case TokenFunction:
		return p.call(tok)

	case TokenLParen:
		n, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return n, nil

	case TokenPipe:
		n, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenPipe); err != nil {
			return nil, err
		}
		fn, _ := p.reg.Function("abs")
		return &Call{Name: fn.Name, Args: []Node{n}, exec: fn.Exec}, nil

	default:
		return nil, &ParseError{Expected: "operand", Got: tok, Err: ErrUnexpectedToken}
	}
}

// call parses exactly the declared number of arguments.
func (p *Parser) call(name Token) (Node, error) {
	fn, _ := p.reg.Function(name.Text)
	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	args := make([]Node, 0, fn.Arity)
	for {
		arg, err := p.expression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.next()
		switch {
		case tok.Kind == TokenComma && len(args) < fn.Arity:
			continue
		case tok.Kind == TokenRParen && len(args) == fn.Arity:
			return &Call{Name: fn.Name, Args: args, exec: fn.Exec}, nil
		case tok.Kind == TokenComma || tok.Kind == TokenRParen:
			return nil, arityError(fn, tok, len(args))
		default:
			expected := TokenRParen.String()
			if len(args) < fn.Arity {
				expected = TokenComma.String()
			}
			return nil, &ParseError{Expected: expected, Got: tok, Err: ErrUnexpectedToken}
		}
	}
}

// arityError reports a call whose argument count does not match the declaration.
func arityError(fn Function, got Token, have int) error {
	expected := TokenRParen.String()
	if have < fn.Arity {
		expected = TokenComma.String()
	}
	err := zerr.With(zerr.With(zerr.Wrap(ErrWrongArity, fn.Name), "expected", fn.Arity), "got", have)
	return &ParseError{Expected: expected, Got: got, Err: err}
}
