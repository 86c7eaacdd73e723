package regex

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Every rune that is not a meta-character or a designated literal is a symbol.
var surfaceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Epsilon", Pattern: `ε`},
	{Name: "EmptySet", Pattern: `∅`},
	{Name: "Union", Pattern: `\|`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Symbol", Pattern: `(?s:.)`},
})

var (
	tokenTypes = surfaceLexer.Symbols()

	tEpsilon  = tokenTypes["Epsilon"]
	tEmptySet = tokenTypes["EmptySet"]
	tUnion    = tokenTypes["Union"]
	tLParen   = tokenTypes["LParen"]
	tRParen   = tokenTypes["RParen"]
	tStar     = tokenTypes["Star"]
	tSymbol   = tokenTypes["Symbol"]
)

// tokenize returns the tokens of text, terminated by an EOF token.
func tokenize(text string) ([]lexer.Token, error) {
	lex, err := surfaceLexer.Lex("", strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	var toks []lexer.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.EOF() {
			return toks, nil
		}
	}
}

func isReserved(t lexer.TokenType) bool {
	return t == tUnion || t == tLParen || t == tRParen || t == tStar
}
