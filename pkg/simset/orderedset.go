// Package simset implements approximate set-similarity search under the
// Jaccard distance: an ordered-set representation, a frequency-based
// element remapping, a length/position-filtered Jaccard evaluator, and two
// indices (LinearScan, PrefixIndex) built on top of them.
package simset

import (
	"fmt"
	"sort"
)

// OrderedSet is a strictly increasing, duplicate-free sequence of uint32
// feature codes.
type OrderedSet struct {
	elems []uint32
}

// NewOrderedSet returns the empty set.
func NewOrderedSet() OrderedSet {
	return OrderedSet{}
}

// FromSorted builds a set from an already-sorted input. It fails if any two
// consecutive elements are not strictly increasing.
func FromSorted(sorted []uint32) (OrderedSet, error) {
	elems := make([]uint32, 0, len(sorted))
	for _, e := range sorted {
		if len(elems) > 0 && elems[len(elems)-1] >= e {
			return OrderedSet{}, fmt.Errorf("simset: input must be sorted and unique, got %d after %d", e, elems[len(elems)-1])
		}
		elems = append(elems, e)
	}
	return OrderedSet{elems: elems}, nil
}

// FromUnsorted builds a set from an arbitrary input, sorting it and
// dropping adjacent duplicates.
func FromUnsorted(unsorted []uint32) OrderedSet {
	elems := make([]uint32, len(unsorted))
	copy(elems, unsorted)
	sort.Slice(elems, func(i, j int) bool { return elems[i] < elems[j] })

	deduped := elems[:0]
	for i, e := range elems {
		if i == 0 || e != deduped[len(deduped)-1] {
			deduped = append(deduped, e)
		}
	}
	return OrderedSet{elems: deduped}
}

// Len returns the number of elements.
func (s OrderedSet) Len() int { return len(s.elems) }

// IsEmpty reports whether the set has no elements.
func (s OrderedSet) IsEmpty() bool { return len(s.elems) == 0 }

// Get returns the element at index i and whether i was in range.
func (s OrderedSet) Get(i int) (uint32, bool) {
	if i < 0 || i >= len(s.elems) {
		return 0, false
	}
	return s.elems[i], true
}

// Elems returns the underlying sorted slice. Callers must not mutate it.
func (s OrderedSet) Elems() []uint32 { return s.elems }

// Equal reports whether s and o hold the same elements in the same order.
func (s OrderedSet) Equal(o OrderedSet) bool {
	if len(s.elems) != len(o.elems) {
		return false
	}
	for i, e := range s.elems {
		if e != o.elems[i] {
			return false
		}
	}
	return true
}
