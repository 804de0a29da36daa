package setcover

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of unique elements. A nil Set behaves as an
// empty, read-only set.
type Set[E comparable] map[E]struct{}

func NewSet[E comparable](elems ...E) Set[E] {
	s := make(Set[E], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Range returns {lo, lo+1, ..., hi}. Empty when hi < lo.
func Range(lo, hi int) Set[int] {
	if hi < lo {
		return Set[int]{}
	}
	s := make(Set[int], hi-lo+1)
	for v := lo; v <= hi; v++ {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[E]) Add(e E) { s[e] = struct{}{} }

func (s Set[E]) Len() int { return len(s) }

func (s Set[E]) Empty() bool { return len(s) == 0 }

func (s Set[E]) Has(e E) bool {
	_, ok := s[e]
	return ok
}

func (s Set[E]) Clone() Set[E] {
	out := make(Set[E], len(s))
	for e := range s {
		out[e] = struct{}{}
	}
	return out
}

// Subtract removes every element of o from s in place.
func (s Set[E]) Subtract(o Set[E]) {
	if len(o) < len(s) {
		for e := range o {
			delete(s, e)
		}
		return
	}
	for e := range s {
		if _, ok := o[e]; ok {
			delete(s, e)
		}
	}
}

// Overlap returns |s ∩ o|.
func (s Set[E]) Overlap(o Set[E]) int {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	n := 0
	for e := range small {
		if _, ok := large[e]; ok {
			n++
		}
	}
	return n
}

func (s Set[E]) Equal(o Set[E]) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if _, ok := o[e]; !ok {
			return false
		}
	}
	return true
}

func Union[E comparable](sets ...Set[E]) Set[E] {
	out := make(Set[E])
	for _, s := range sets {
		for e := range s {
			out[e] = struct{}{}
		}
	}
	return out
}

// Sorted returns the elements of s in ascending order.
func Sorted[E cmp.Ordered](s Set[E]) []E {
	out := make([]E, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}
