package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regalgebra/internal/regex"
	"regalgebra/internal/stateset"
)

// words returns every word over alphabet of length at most maxLen.
func words(alphabet string, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, w := range layer {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// aStarBStar recognizes a*b*.
func aStarBStar() *NDFA {
	a := NewNDFA(2)
	a.AddTransition(0, 'a', 0)
	a.AddTransition(0, Epsilon, 1)
	a.AddTransition(1, 'b', 1)
	a.SetFinal(1)
	return a
}

func TestNDFARecognize(t *testing.T) {
	a := aStarBStar()
	for _, w := range []string{"a", "aa", "b", "bb", "aab", "abb", "aabb", ""} {
		assert.True(t, a.IsRecognized(w), "%q should be recognized", w)
	}
	for _, w := range []string{"aba", "abab", "c", "ba"} {
		assert.False(t, a.IsRecognized(w), "%q should be rejected", w)
	}
	assert.False(t, a.IsEmptyLanguage())
}

func TestEpsilonClosure(t *testing.T) {
	a := NewNDFA(5)
	a.AddTransition(0, Epsilon, 1)
	a.AddTransition(1, Epsilon, 2)
	a.AddTransition(2, Epsilon, 0)
	a.AddTransition(2, 'x', 3)
	a.AddTransition(3, Epsilon, 4)

	assert.Equal(t, []int{0, 1, 2}, a.EpsilonClosure(stateset.Of(5, 0)).Slice())
	assert.Equal(t, []int{3, 4}, a.EpsilonClosure(stateset.Of(5, 3)).Slice())
	assert.Equal(t, []int{3, 4}, a.Delta(stateset.Of(5, 1), 'x').Slice())
	assert.True(t, a.Delta(stateset.Of(5, 3), 'x').IsEmpty())

	assert.Panics(t, func() { a.EpsilonClosure(stateset.New(4)) })
}

func TestNDFANondeterminism(t *testing.T) {
	a := NewNDFA(3)
	a.AddTransition(0, 'a', 1)
	a.AddTransition(0, 'a', 2)
	a.SetFinal(2)
	assert.Equal(t, []int{1, 2}, a.Delta(stateset.Of(3, 0), 'a').Slice())
	assert.True(t, a.IsRecognized("a"))
	assert.Equal(t, []rune{'a'}, a.Symbols())
}

func TestNDFAEmptyLanguage(t *testing.T) {
	a := NewNDFA(3)
	a.AddTransition(0, 'a', 1)
	a.SetFinal(2)
	assert.True(t, a.IsEmptyLanguage())

	a.AddTransition(1, Epsilon, 2)
	assert.False(t, a.IsEmptyLanguage())
}

func TestNDFAPreconditions(t *testing.T) {
	a := NewNDFA(2)
	assert.Panics(t, func() { a.AddTransition(0, 'a', 2) })
	assert.Panics(t, func() { a.AddTransition(-1, 'a', 0) })
	assert.Panics(t, func() { a.SetFinal(5) })
	assert.Panics(t, func() { NewNDFA(0) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*PreconditionError)
		assert.True(t, ok, "panic value %T", r)
	}()
	a.SetInitial(2)
}

func TestThompson(t *testing.T) {
	a, err := Compile("(a*c)|ε")
	require.NoError(t, err)
	for _, w := range []string{"aaac", "c", ""} {
		assert.True(t, a.IsRecognized(w), w)
	}
	for _, w := range []string{"aaa", "aca"} {
		assert.False(t, a.IsRecognized(w), w)
	}
}

func TestThompsonStateCount(t *testing.T) {
	tests := map[string]int{
		"a":     2,
		"ε":     2,
		"ab":    4,
		"a|b":   6,
		"a*":    4,
		"(ab)*": 6,
	}
	for in, want := range tests {
		assert.Equal(t, want, Thompson(regex.MustParse(in)).StateCount(), in)
	}
}

func TestThompsonRejectsEmpty(t *testing.T) {
	assert.Panics(t, func() { Thompson(regex.MustParse("a|∅")) })

	a := FromRegex(regex.MustParse("a|∅"))
	assert.True(t, a.IsRecognized("a"))

	e, err := Compile("a∅")
	require.NoError(t, err)
	assert.Equal(t, 1, e.StateCount())
	assert.True(t, e.IsEmptyLanguage())
	assert.False(t, e.IsRecognized(""))
}

func TestCompileSyntaxError(t *testing.T) {
	_, err := Compile("a|")
	assert.ErrorIs(t, err, regex.ErrUnexpectedEnd)
}

func TestGlushkov(t *testing.T) {
	for _, pat := range []string{
		"a", "ε", "a*b*", "(a|ab)*a", "(ab|c)*d", "(a*c)|ε", "a(b|c)*d", "(a|b)*abb",
	} {
		n := regex.MustParse(pat)
		g := Glushkov(n)
		th := Thompson(n)

		_, table := n.Linearize()
		assert.Equal(t, len(table)+1, g.StateCount(), pat)
		for _, e := range g.edges() {
			assert.NotEqual(t, Epsilon, e.sym, pat)
		}
		for _, w := range words("abcd", 4) {
			assert.Equal(t, th.IsRecognized(w), g.IsRecognized(w), "%s on %q", pat, w)
		}
	}
	assert.True(t, Glushkov(regex.MustParse("∅")).IsEmptyLanguage())
}
