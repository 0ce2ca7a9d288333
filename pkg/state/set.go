package state

import "sort"

// comparable by the description key (Source, Target.Target). Compare must be
// a strict total order; both description types satisfy it by construction.
type keyed[T any] interface {
	Compare(T) int
}

// descriptionSet is an ordered, duplicate-free collection of descriptions,
// kept sorted by the identity key. A sorted slice is used instead of a tree:
// sets here are built once and only iterated afterwards.
type descriptionSet[T keyed[T]] struct {
	items []T
}

// insert adds d unless an element with the same identity key is already
// present.
func (s *descriptionSet[T]) insert(d T) {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].Compare(d) >= 0
	})
	if i < len(s.items) && s.items[i].Compare(d) == 0 {
		return
	}
	s.items = append(s.items, d)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = d
}

// contains reports whether an element with d's identity key is present.
func (s *descriptionSet[T]) contains(d T) bool {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].Compare(d) >= 0
	})
	return i < len(s.items) && s.items[i].Compare(d) == 0
}

// difference returns the elements of s whose identity is absent from other,
// in key order.
func (s *descriptionSet[T]) difference(other *descriptionSet[T]) []T {
	result := make([]T, 0, len(s.items))
	for _, d := range s.items {
		if !other.contains(d) {
			result = append(result, d)
		}
	}
	return result
}

// intersection returns the elements of s whose identity is also present in
// other, in key order. Elements come from s, so desired-state metadata wins
// when s is the desired set.
func (s *descriptionSet[T]) intersection(other *descriptionSet[T]) []T {
	result := make([]T, 0, len(s.items))
	for _, d := range s.items {
		if other.contains(d) {
			result = append(result, d)
		}
	}
	return result
}
