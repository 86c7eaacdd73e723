package regex

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrUnexpectedEnd  = errors.New("unexpected end of input")
	ErrReservedSymbol = errors.New("reserved symbol")
	ErrTrailingInput  = errors.New("unconsumed input")
)

// SyntaxError reports where and why a pattern failed to parse. Cause is one of
// the Err* sentinels above, or the lexer's own error.
type SyntaxError struct {
	Pos   lexer.Position
	Cause error
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("regex: %v at offset %d", e.Cause, e.Pos.Offset)
	}
	return fmt.Sprintf("regex: %v at offset %d: %s", e.Cause, e.Pos.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

/*
Recursive descent over

	R -> C | C "|" R          union, right-nested
	C -> B | B C              concatenation, right-nested
	B -> S {"*"} | "(" R ")" {"*"}
	S -> symbol | ε | ∅

C is LL(1): another factor follows iff the next token can start a B.
*/
type parser struct {
	toks []lexer.Token
	pos  int
}

// Parse parses text into a regex tree.
func Parse(text string) (*Node, error) {
	toks, err := tokenize(text)
	if err != nil {
		var pos lexer.Position
		var perr interface{ Position() lexer.Position }
		if errors.As(err, &perr) {
			pos = perr.Position()
		}
		return nil, &SyntaxError{Pos: pos, Cause: err}
	}
	p := &parser{toks: toks}
	n, err := p.parseR()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); !tok.EOF() {
		return nil, p.errorf(tok, ErrTrailingInput, "%q", p.rest())
	}
	return n, nil
}

// MustParse is Parse for patterns known to be valid.
func MustParse(text string) *Node {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) peek() lexer.Token { return p.toks[p.pos] }

func (p *parser) next() lexer.Token {
	tok := p.toks[p.pos]
	if !tok.EOF() {
		p.pos++
	}
	return tok
}

func (p *parser) rest() string {
	s := ""
	for _, tok := range p.toks[p.pos:] {
		s += tok.Value
	}
	return s
}

func (p *parser) errorf(tok lexer.Token, cause error, format string, args ...any) error {
	return &SyntaxError{Pos: tok.Pos, Cause: cause, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) parseR() (*Node, error) {
	c, err := p.parseC()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != tUnion {
		return c, nil
	}
	p.next()
	r, err := p.parseR()
	if err != nil {
		return nil, err
	}
	return Union(c, r), nil
}

func startsFactor(t lexer.TokenType) bool {
	return t == tSymbol || t == tEpsilon || t == tEmptySet || t == tLParen
}

func (p *parser) parseC() (*Node, error) {
	b, err := p.parseB()
	if err != nil {
		return nil, err
	}
	if !startsFactor(p.peek().Type) {
		return b, nil
	}
	c, err := p.parseC()
	if err != nil {
		return nil, err
	}
	return Concat(b, c), nil
}

func (p *parser) parseB() (*Node, error) {
	tok := p.peek()
	if tok.EOF() {
		return nil, p.errorf(tok, ErrUnexpectedEnd, "expected a factor")
	}

	var n *Node
	if tok.Type == tLParen {
		p.next()
		inner, err := p.parseR()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		switch {
		case closing.EOF():
			return nil, p.errorf(closing, ErrUnexpectedEnd, "missing )")
		case closing.Type != tRParen:
			return nil, p.errorf(closing, ErrReservedSymbol, "expected ) got %q", closing.Value)
		}
		n = inner
	} else {
		s, err := p.parseS()
		if err != nil {
			return nil, err
		}
		n = s
	}

	for p.peek().Type == tStar {
		p.next()
		n = Star(n)
	}
	return n, nil
}

func (p *parser) parseS() (*Node, error) {
	tok := p.next()
	switch {
	case tok.EOF():
		return nil, p.errorf(tok, ErrUnexpectedEnd, "expected a symbol")
	case tok.Type == tEpsilon:
		return Epsilon(), nil
	case tok.Type == tEmptySet:
		return Empty(), nil
	case isReserved(tok.Type):
		return nil, p.errorf(tok, ErrReservedSymbol, "unexpected %q", tok.Value)
	}
	r := []rune(tok.Value)
	return Symbol(r[0]), nil
}
