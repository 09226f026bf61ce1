package domain

import "sort"

// CompletedSet is the set of action item indices done for a day. The zero
// value is an empty set. Values are never mutated in place; With and Without
// return a new set.
type CompletedSet struct {
	indices []int
}

func NewCompletedSet(indices ...int) CompletedSet {
	var s CompletedSet
	for _, i := range indices {
		s, _ = s.With(i)
	}
	return s
}

func (s CompletedSet) Has(i int) bool {
	pos := sort.SearchInts(s.indices, i)
	return pos < len(s.indices) && s.indices[pos] == i
}

// With returns a set containing i. changed is false when i was already present.
func (s CompletedSet) With(i int) (next CompletedSet, changed bool) {
	if s.Has(i) {
		return s, false
	}
	out := make([]int, 0, len(s.indices)+1)
	out = append(out, s.indices...)
	out = append(out, i)
	sort.Ints(out)
	return CompletedSet{indices: out}, true
}

// Without returns a set lacking i. changed is false when i was absent.
func (s CompletedSet) Without(i int) (next CompletedSet, changed bool) {
	if !s.Has(i) {
		return s, false
	}
	out := make([]int, 0, len(s.indices)-1)
	for _, v := range s.indices {
		if v != i {
			out = append(out, v)
		}
	}
	return CompletedSet{indices: out}, true
}

// Indices returns a sorted copy of the members.
func (s CompletedSet) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

func (s CompletedSet) Len() int {
	return len(s.indices)
}

func (s CompletedSet) Equal(o CompletedSet) bool {
	if len(s.indices) != len(o.indices) {
		return false
	}
	for i := range s.indices {
		if s.indices[i] != o.indices[i] {
			return false
		}
	}
	return true
}
