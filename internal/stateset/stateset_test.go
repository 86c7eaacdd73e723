package stateset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveContains(t *testing.T) {
	s := New(130)
	assert.True(t, s.IsEmpty())

	for _, i := range []int{0, 63, 64, 129} {
		s.Add(i)
		assert.True(t, s.Contains(i), "index %d", i)
	}
	assert.False(t, s.Contains(1))
	assert.Equal(t, 4, s.Len())

	s.Remove(64)
	assert.False(t, s.Contains(64))
	assert.Equal(t, []int{0, 63, 129}, s.Slice())
	assert.Equal(t, "{0, 63, 129}", s.String())
}

func TestOutOfRange(t *testing.T) {
	s := New(3)
	for _, i := range []int{-1, 3, 64} {
		assert.PanicsWithError(t, (&OutOfRangeError{Index: i, Capacity: 3}).Error(), func() { s.Add(i) })
		assert.Panics(t, func() { s.Contains(i) })
		assert.Panics(t, func() { s.Remove(i) })
	}
}

func TestUnionIntersect(t *testing.T) {
	a := Of(70, 1, 2, 65)
	b := Of(70, 2, 3, 65, 69)

	u := a.Clone().UnionWith(b)
	assert.Equal(t, []int{1, 2, 3, 65, 69}, u.Slice())

	i := a.Clone().IntersectWith(b)
	assert.Equal(t, []int{2, 65}, i.Slice())

	assert.True(t, a.Intersects(b))
	assert.False(t, Of(70, 1).Intersects(Of(70, 3)))

	// operands untouched by the clones
	assert.Equal(t, []int{1, 2, 65}, a.Slice())
}

func TestCapacityMismatch(t *testing.T) {
	assert.Panics(t, func() { New(3).UnionWith(New(4)) })
	assert.Panics(t, func() { New(3).IntersectWith(New(200)) })
}

func TestAllIsRestartable(t *testing.T) {
	s := Of(10, 9, 0, 4)
	var first, second []int
	for i := range s.All() {
		first = append(first, i)
	}
	for i := range s.All() {
		second = append(second, i)
	}
	assert.Equal(t, []int{0, 4, 9}, first)
	assert.Equal(t, first, second)

	var early []int
	for i := range s.All() {
		early = append(early, i)
		if i == 4 {
			break
		}
	}
	assert.Equal(t, []int{0, 4}, early)
}

func TestKey(t *testing.T) {
	a := Of(100, 3, 99)
	b := New(100)
	b.Add(99)
	b.Add(3)
	require.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	b.Remove(3)
	assert.NotEqual(t, a.Key(), b.Key())
	assert.False(t, a.Equal(b))
}

func TestFromBools(t *testing.T) {
	s := FromBools([]bool{false, true, true})
	assert.Equal(t, 3, s.Cap())
	assert.Equal(t, []int{1, 2}, s.Slice())
}

func TestZeroCapacity(t *testing.T) {
	s := New(0)
	assert.True(t, s.IsEmpty())
	assert.Empty(t, s.Slice())
	assert.Equal(t, "{}", s.String())
}
