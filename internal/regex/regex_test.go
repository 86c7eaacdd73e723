package regex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringify(t *testing.T) {
	n := Concat(
		Star(Concat(
			Union(Symbol('a'), Union(Symbol('b'), Epsilon())),
			Empty(),
		)),
		Symbol('c'),
	)
	assert.Equal(t, "((a|b|ε)∅)*c", n.String())
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{
		"a",
		"ε",
		"∅",
		"ab",
		"a*",
		"a**",
		"a|b",
		"(ab)*",
		"ε|a*b",
		"(a|b)c",
		"a(b|c)*d",
		"(0|(1(01*(00)*0)*1)*)*",
		"λx→y",
	} {
		n, err := Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, n.String())
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in   string
		want *Node
	}{
		{"a|bc*", Union(Symbol('a'), Concat(Symbol('b'), Star(Symbol('c'))))},
		{"abc", Concat(Symbol('a'), Concat(Symbol('b'), Symbol('c')))},
		{"a|b|c", Union(Symbol('a'), Union(Symbol('b'), Symbol('c')))},
		{"(a|b)*", Star(Union(Symbol('a'), Symbol('b')))},
		{"((a))", Symbol('a')},
		{"ε∅", Concat(Epsilon(), Empty())},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in     string
		cause  error
		offset int
	}{
		{"", ErrUnexpectedEnd, 0},
		{"a|", ErrUnexpectedEnd, 2},
		{"(a", ErrUnexpectedEnd, 2},
		{"*a", ErrReservedSymbol, 0},
		{"|a", ErrReservedSymbol, 0},
		{"()", ErrReservedSymbol, 1},
		{"a||b", ErrReservedSymbol, 2},
		{"ab)", ErrTrailingInput, 2},
		{"(a))", ErrTrailingInput, 3},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		require.Error(t, err, tt.in)
		assert.ErrorIs(t, err, tt.cause, tt.in)

		var serr *SyntaxError
		require.True(t, errors.As(err, &serr), tt.in)
		assert.Equal(t, tt.offset, serr.Pos.Offset, tt.in)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("a(") })
	assert.NotPanics(t, func() { MustParse("a(b)") })
}

func TestIsEmpty(t *testing.T) {
	tests := map[string]bool{
		"∅":     true,
		"ε":     false,
		"a":     false,
		"a|∅":   false,
		"∅|∅":   true,
		"a∅":    true,
		"∅*":    false,
		"(a∅)*": false,
		"b(a∅)": true,
	}
	for in, want := range tests {
		assert.Equal(t, want, MustParse(in).IsEmpty(), in)
	}
}

func TestContainsEpsilon(t *testing.T) {
	tests := map[string]bool{
		"∅":     false,
		"ε":     true,
		"a":     false,
		"a|ε":   true,
		"a*b*":  true,
		"a*b":   false,
		"(ab)*": true,
		"∅*":    false,
	}
	for in, want := range tests {
		assert.Equal(t, want, MustParse(in).ContainsEpsilon(), in)
	}
}

func TestEliminateEmpty(t *testing.T) {
	tests := map[string]string{
		"a|∅":    "a",
		"∅|a":    "a",
		"a∅":     "∅",
		"∅*":     "ε",
		"(a|∅b)*": "a*",
		"ab|c":   "ab|c",
		"∅|∅":    "∅",
	}
	for in, want := range tests {
		assert.Equal(t, want, EliminateEmpty(MustParse(in)).String(), in)
	}
}

func TestLocalSets(t *testing.T) {
	n := MustParse("(ab|c)*d")
	assert.Equal(t, []rune{'a', 'c', 'd'}, n.FirstSymbols())
	assert.Equal(t, []rune{'d'}, n.LastSymbols())
	assert.Equal(t, []Factor{
		{'a', 'b'},
		{'b', 'a'}, {'b', 'c'}, {'b', 'd'},
		{'c', 'a'}, {'c', 'c'}, {'c', 'd'},
	}, n.Factors())

	m := MustParse("a*b*")
	assert.Equal(t, []rune{'a', 'b'}, m.FirstSymbols())
	assert.Equal(t, []rune{'a', 'b'}, m.LastSymbols())
	assert.Equal(t, []Factor{{'a', 'a'}, {'a', 'b'}, {'b', 'b'}}, m.Factors())

	assert.Empty(t, MustParse("ε").FirstSymbols())
	assert.Empty(t, MustParse("a").Factors())
}

func TestLinearize(t *testing.T) {
	n := MustParse("(a|ab)*a")
	lin, table := n.Linearize()

	assert.Equal(t, []rune{LinearBase, LinearBase + 1, LinearBase + 2, LinearBase + 3}, lin.Symbols())
	assert.Equal(t, Table{
		LinearBase:     'a',
		LinearBase + 1: 'a',
		LinearBase + 2: 'b',
		LinearBase + 3: 'a',
	}, table)

	assert.Equal(t, n, UnLinearize(lin, table))
	assert.Equal(t, 'z', table.Original('z'))
}

func TestSymbolsAndSize(t *testing.T) {
	n := MustParse("b(a|c)*b")
	assert.Equal(t, []rune{'a', 'b', 'c'}, n.Symbols())
	assert.Equal(t, 8, n.Size())
}
