package simset

import "sort"

// distEpsilon is the absolute tolerance used when comparing distances, so
// that values differing only in the last few ULPs sort by id instead of by
// noise.
const distEpsilon = 1e-6

// Answer is a query hit: the matched record's id and its distance to the
// query.
type Answer struct {
	ID   uint32
	Dist float32
}

// distEqual reports whether a and b are equal within distEpsilon.
func distEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= distEpsilon
}

// Less orders Answers by distance ascending, then id ascending, treating
// distances within distEpsilon of each other as equal.
func (a Answer) Less(b Answer) bool {
	if distEqual(a.Dist, b.Dist) {
		return a.ID < b.ID
	}
	return a.Dist < b.Dist
}

// Equal reports whether a and b are the same answer (id equal, distance
// equal within distEpsilon).
func (a Answer) Equal(b Answer) bool {
	return a.ID == b.ID && distEqual(a.Dist, b.Dist)
}

// sortAnswers sorts answers in place by the Answer order.
func sortAnswers(answers []Answer) {
	sort.Slice(answers, func(i, j int) bool { return answers[i].Less(answers[j]) })
}
