// Package stateset implements a fixed-capacity bit set over automaton state
// indices. It is the state representation of the NDFA: recognition and
// epsilon-closure are repeated unions and intersections of live states.
package stateset

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const wordBits = 64

// OutOfRangeError is raised (via panic) when an index outside 0..Cap()-1 is used.
type OutOfRangeError struct {
	Index    int
	Capacity int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("stateset: index %d out of range [0,%d)", e.Index, e.Capacity)
}

// CapacityMismatchError is raised (via panic) when two sets of different
// capacity are combined.
type CapacityMismatchError struct {
	Left, Right int
}

func (e *CapacityMismatchError) Error() string {
	return fmt.Sprintf("stateset: capacity mismatch %d != %d", e.Left, e.Right)
}

// Set is a bit vector over the universe 0..capacity-1. The capacity is fixed
// at construction and no bit at or above it is ever set.
type Set struct {
	capacity int
	words    []uint64
}

// New returns an empty set able to hold indices below capacity.
func New(capacity int) *Set {
	if capacity < 0 {
		panic(&OutOfRangeError{Index: capacity, Capacity: 0})
	}
	return &Set{
		capacity: capacity,
		words:    make([]uint64, (capacity+wordBits-1)/wordBits),
	}
}

// FromBools builds a set of capacity len(states) holding every i with states[i].
func FromBools(states []bool) *Set {
	s := New(len(states))
	for i, v := range states {
		if v {
			s.Add(i)
		}
	}
	return s
}

// Of builds a set of the given capacity holding the listed indices.
func Of(capacity int, indices ...int) *Set {
	s := New(capacity)
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

func (s *Set) check(i int) {
	if i < 0 || i >= s.capacity {
		panic(&OutOfRangeError{Index: i, Capacity: s.capacity})
	}
}

func (s *Set) same(rhs *Set) {
	if s.capacity != rhs.capacity {
		panic(&CapacityMismatchError{Left: s.capacity, Right: rhs.capacity})
	}
}

// Cap returns the fixed capacity.
func (s *Set) Cap() int { return s.capacity }

func (s *Set) Add(i int) {
	s.check(i)
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

func (s *Set) Remove(i int) {
	s.check(i)
	s.words[i/wordBits] &^= 1 << uint(i%wordBits)
}

func (s *Set) Contains(i int) bool {
	s.check(i)
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// UnionWith adds every member of rhs to s.
func (s *Set) UnionWith(rhs *Set) *Set {
	s.same(rhs)
	for i, w := range rhs.words {
		s.words[i] |= w
	}
	return s
}

// IntersectWith keeps only the members of s also present in rhs.
func (s *Set) IntersectWith(rhs *Set) *Set {
	s.same(rhs)
	for i, w := range rhs.words {
		s.words[i] &= w
	}
	return s
}

// Intersects reports whether s and rhs share a member, without allocating.
func (s *Set) Intersects(rhs *Set) bool {
	s.same(rhs)
	for i, w := range rhs.words {
		if s.words[i]&w != 0 {
			return true
		}
	}
	return false
}

func (s *Set) IsEmpty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of members.
func (s *Set) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// All yields the members in ascending order. The sequence may be ranged over
// any number of times.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for wi, w := range s.words {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				if !yield(wi*wordBits + b) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// Slice returns the members in ascending order.
func (s *Set) Slice() []int {
	out := make([]int, 0, s.Len())
	for i := range s.All() {
		out = append(out, i)
	}
	return out
}

// Key returns a canonical encoding of the set: two sets of equal capacity have
// the same key iff they hold the same members.
func (s *Set) Key() string {
	buf := make([]byte, 8*len(s.words))
	for i, w := range s.words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	return string(buf)
}

func (s *Set) Equal(rhs *Set) bool {
	if s.capacity != rhs.capacity {
		return false
	}
	for i, w := range s.words {
		if rhs.words[i] != w {
			return false
		}
	}
	return true
}

func (s *Set) Clone() *Set {
	c := &Set{capacity: s.capacity, words: make([]uint64, len(s.words))}
	copy(c.words, s.words)
	return c
}

// String renders the set as "{0, 3, 5}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := range s.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%d", i)
	}
	b.WriteByte('}')
	return b.String()
}
