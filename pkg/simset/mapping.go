package simset

import (
	"fmt"
	"sort"
)

// Mapping is a permutation of [0, universe) that renumbers feature codes by
// ascending global frequency, so rare elements get the smallest codes and
// common elements the largest. Indices and evaluators place the rarest
// elements first in a set's prefix, which is where prefix-based pruning
// gets its selectivity.
type Mapping struct {
	table []uint32
}

// FromRecords builds a Mapping from a record collection. It fails if
// universe is zero. Elements of equal frequency are ranked by ascending
// source id, a deterministic tie-break chosen for reproducible builds.
func FromRecords(records []Record, universe uint32) (Mapping, error) {
	if universe == 0 {
		return Mapping{}, fmt.Errorf("simset: invalid universe: must be > 0")
	}

	freq := make([]int, universe)
	for _, r := range records {
		for _, e := range r.Set.Elems() {
			freq[e]++
		}
	}

	order := make([]uint32, universe)
	for e := range order {
		order[e] = uint32(e)
	}
	sort.SliceStable(order, func(i, j int) bool {
		ei, ej := order[i], order[j]
		if freq[ei] != freq[ej] {
			return freq[ei] < freq[ej]
		}
		return ei < ej
	})

	table := make([]uint32, universe)
	for rank, src := range order {
		table[src] = uint32(rank)
	}
	return Mapping{table: table}, nil
}

// Apply maps every element of set through the table and rebuilds an
// OrderedSet, since the permutation destroys the original sort order.
func (m Mapping) Apply(set OrderedSet) OrderedSet {
	mapped := make([]uint32, set.Len())
	for i, e := range set.Elems() {
		mapped[i] = m.table[e]
	}
	return FromUnsorted(mapped)
}

// Universe returns the size of the mapped universe.
func (m Mapping) Universe() uint32 { return uint32(len(m.table)) }
