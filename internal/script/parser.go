// Package script runs assertion scripts over regular languages:
//
//	# comment
//	let evens = "(aa)*";
//	assert "a*" includes evens;
//	assert evens equals "ε|aa(aa)*";
//	assert evens accepts "aaaa";
//	assert not evens accepts "aaa";
//	assert "a∅" is empty;
package script

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Let    *Let    `parser:"  @@ ';'"`
	Assert *Assert `parser:"| @@ ';'"`
}

type Let struct {
	Pos   lexer.Position
	Name  string   `parser:"'let' @Ident"`
	Value *Operand `parser:"'=' @@"`
}

type Assert struct {
	Pos    lexer.Position
	Negate bool     `parser:"'assert' @'not'?"`
	Left   *Operand `parser:"@@"`
	Check  *Check   `parser:"@@"`
}

type Check struct {
	Includes *Operand `parser:"  'includes' @@"`
	Equals   *Operand `parser:"| 'equals' @@"`
	Accepts  *string  `parser:"| 'accepts' @String"`
	Rejects  *string  `parser:"| 'rejects' @String"`
	Empty    bool     `parser:"| 'is' @'empty'"`
}

// Operand is a quoted pattern or the name of a let binding.
type Operand struct {
	Pos     lexer.Position
	Pattern *string `parser:"  @String"`
	Ref     *string `parser:"| @Ident"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[;=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Unquote("String"),
	participle.Elide("Comment", "Whitespace"),
)

// Parse parses the script text src; name is used in positions.
func Parse(name, src string) (*Script, error) {
	s, err := parser.ParseString(name, src)
	if err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return s, nil
}

func (o *Operand) String() string {
	if o.Pattern != nil {
		return fmt.Sprintf("%q", *o.Pattern)
	}
	return *o.Ref
}

func (c *Check) String() string {
	switch {
	case c.Includes != nil:
		return "includes " + c.Includes.String()
	case c.Equals != nil:
		return "equals " + c.Equals.String()
	case c.Accepts != nil:
		return fmt.Sprintf("accepts %q", *c.Accepts)
	case c.Rejects != nil:
		return fmt.Sprintf("rejects %q", *c.Rejects)
	}
	return "is empty"
}

func (a *Assert) String() string {
	s := "assert "
	if a.Negate {
		s += "not "
	}
	return s + a.Left.String() + " " + a.Check.String()
}
