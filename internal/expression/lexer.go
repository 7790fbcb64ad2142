package expression

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// Lexer turns one formula into tokens with a single character of lookahead.
// A Lexer is single use; create one per formula.
type Lexer struct {
	reg *Registry
	src string
	pos int
}

// NewLexer returns a lexer over src that classifies names and symbols against reg.
func NewLexer(reg *Registry, src string) *Lexer {
	return &Lexer{reg: reg, src: src}
}

// Tokenize lexes src completely. The returned sequence always ends with an EOF token.
func Tokenize(reg *Registry, src string) ([]Token, error) {
	lx := NewLexer(reg, src)
	var tokens []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
	}
}

func (lx *Lexer) peek() rune {
	if lx.pos >= len(lx.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.pos:])
	return r
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() (Token, error) {
	for lx.pos < len(lx.src) && unicode.IsSpace(lx.peek()) {
		_, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
		lx.pos += size
	}
	if lx.pos >= len(lx.src) {
		return Token{Kind: TokenEOF, Pos: lx.pos}, nil
	}

	start := lx.pos
	r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
	switch {
	case isDigit(r) || r == '.':
		return lx.number(start)
	case isIdentStart(r):
		return lx.identifier(start), nil
	}

	lx.pos += size
	text := lx.src[start:lx.pos]
	switch r {
	case '(':
		return Token{Kind: TokenLParen, Text: text, Pos: start}, nil
	case ')':
		return Token{Kind: TokenRParen, Text: text, Pos: start}, nil
	case ',':
		return Token{Kind: TokenComma, Text: text, Pos: start}, nil
	case '|':
		return Token{Kind: TokenPipe, Text: text, Pos: start}, nil
	}
	if _, ok := lx.reg.Operator(r); ok {
		return Token{Kind: TokenOperator, Text: text, Pos: start}, nil
	}
	return Token{}, &LexError{Pos: start, Text: text, Err: ErrUnexpectedCharacter}
}

func (lx *Lexer) number(start int) (Token, error) {
	for lx.pos < len(lx.src) && (isDigit(lx.peek()) || lx.peek() == '.') {
		lx.pos++
	}
	text := lx.src[start:lx.pos]
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return Token{}, &LexError{Pos: start, Text: text, Err: zerr.Wrap(ErrMalformedNumber, err.Error())}
	}

	// A trailing i that does not start a longer identifier makes the literal imaginary.
	if lx.peek() == 'i' {
		next := lx.pos + 1
		if next >= len(lx.src) || !isIdentPart(rune(lx.src[next])) {
			lx.pos = next
			return Token{Kind: TokenImaginary, Text: text, Pos: start}, nil
		}
	}
	return Token{Kind: TokenNumber, Text: text, Pos: start}, nil
}

func (lx *Lexer) identifier(start int) Token {
	for lx.pos < len(lx.src) && isIdentPart(lx.peek()) {
		lx.pos++
	}
	text := lx.src[start:lx.pos]
	if _, ok := lx.reg.Function(text); ok {
		return Token{Kind: TokenFunction, Text: text, Pos: start}
	}
	return Token{Kind: TokenIdentifier, Text: text, Pos: start}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
