package expression

import "fmt"

// TokenKind is the category of a lexed token.
type TokenKind int

const (
	// TokenEOF terminates every token sequence.
	TokenEOF TokenKind = iota
	// TokenNumber is a real numeric literal.
	TokenNumber
	// TokenImaginary is a numeric literal with an i suffix, e.g. 4i.
	TokenImaginary
	// TokenIdentifier is a variable or constant name.
	TokenIdentifier
	// TokenFunction is an identifier naming a registered function.
	TokenFunction
	// TokenOperator is a registered operator symbol.
	TokenOperator
	// TokenLParen is an opening parenthesis.
	TokenLParen
	// TokenRParen is a closing parenthesis.
	TokenRParen
	// TokenComma separates function arguments.
	TokenComma
	// TokenPipe delimits a modulus group.
	TokenPipe
)

var tokenKindNames = [...]string{
	TokenEOF:        "end of input",
	TokenNumber:     "number",
	TokenImaginary:  "imaginary number",
	TokenIdentifier: "identifier",
	TokenFunction:   "function",
	TokenOperator:   "operator",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
	TokenComma:      "','",
	TokenPipe:       "'|'",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "unknown"
	}
	return tokenKindNames[k]
}

// Token is one lexeme of a formula. Pos is the byte offset of its first character.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
