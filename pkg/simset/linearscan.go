package simset

import (
	"container/heap"
	"math"
)

// LinearScan owns a remapped record collection and answers range and top-k
// queries by evaluating every record against the query. It never indexes
// anything beyond the Mapping; all selectivity comes from the Jaccard
// evaluator's filters.
type LinearScan struct {
	mapping Mapping
	records []Record
	cfg     FilterConfig
}

// NewLinearScan builds the Mapping from records and stores the remapped
// collection.
func NewLinearScan(records []Record, universe uint32) (*LinearScan, error) {
	mapping, err := FromRecords(records, universe)
	if err != nil {
		return nil, err
	}
	remapped := make([]Record, len(records))
	for i, r := range records {
		remapped[i] = Record{ID: r.ID, Set: mapping.Apply(r.Set)}
	}
	return &LinearScan{mapping: mapping, records: remapped}, nil
}

// FilterConfig returns the index's current filter configuration.
func (ls *LinearScan) FilterConfig() FilterConfig { return ls.cfg }

// SetFilterConfig updates the filter configuration used by subsequent
// queries. Purely advisory: it never changes which pairs are Accepted,
// only which filter branch the evaluator takes to reject the rest.
func (ls *LinearScan) SetFilterConfig(cfg FilterConfig) { ls.cfg = cfg }

// RangeQuery returns every record whose Jaccard distance to query is at
// most radius, sorted by the Answer order.
func (ls *LinearScan) RangeQuery(query OrderedSet, radius float32) []Answer {
	query = ls.mapping.Apply(query)
	jac := NewJaccard(query, radius, ls.cfg)

	var answers []Answer
	for _, r := range ls.records {
		if eval := jac.Evaluate(r.Set); eval.Kind == Accepted {
			answers = append(answers, Answer{ID: r.ID, Dist: eval.Dist})
		}
	}
	sortAnswers(answers)
	return answers
}

// answerMaxHeap is a container/heap max-heap on Answer.Dist (largest first),
// used to keep the k smallest distances seen so far.
type answerMaxHeap []Answer

func (h answerMaxHeap) Len() int            { return len(h) }
func (h answerMaxHeap) Less(i, j int) bool  { return h[j].Less(h[i]) }
func (h answerMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *answerMaxHeap) Push(x interface{}) { *h = append(*h, x.(Answer)) }
func (h *answerMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopKQuery returns the k records of smallest Jaccard distance to query,
// sorted ascending. Fewer than k answers are returned if the index holds
// fewer than k records. The radius is tightened as the heap fills so later
// records benefit from sharper filters; any record admitted before the
// heap filled can only ever be displaced by a strictly closer one, so this
// never drops a true top-k member.
func (ls *LinearScan) TopKQuery(query OrderedSet, k int) []Answer {
	if k <= 0 {
		return nil
	}

	query = ls.mapping.Apply(query)
	jac := NewJaccard(query, 1.0, ls.cfg)

	h := make(answerMaxHeap, 0, k)
	for _, r := range ls.records {
		eval := jac.Evaluate(r.Set)
		if eval.Kind != Accepted {
			continue
		}
		ans := Answer{ID: r.ID, Dist: eval.Dist}

		if h.Len() < k {
			heap.Push(&h, ans)
			if h.Len() == k {
				jac.UpdateRadius(h[0].Dist)
			}
		} else if ans.Dist < h[0].Dist {
			heap.Pop(&h)
			heap.Push(&h, ans)
			jac.UpdateRadius(h[0].Dist)
		}
	}

	answers := []Answer(h)
	sortAnswers(answers)
	return answers
}

// AllDistances returns the distance of every record to query, substituting
// +Inf when both sets are empty so the result always has one entry per
// record.
func (ls *LinearScan) AllDistances(query OrderedSet) []Answer {
	query = ls.mapping.Apply(query)
	jac := NewJaccard(query, 1.0, ls.cfg)

	answers := make([]Answer, len(ls.records))
	for i, r := range ls.records {
		dist, ok := jac.Distance(r.Set)
		if !ok {
			dist = float32(math.Inf(1))
		}
		answers[i] = Answer{ID: r.ID, Dist: dist}
	}
	return answers
}

// Evaluate returns the Evaluation of every record against query at radius,
// in record order, for diagnostic counting.
func (ls *LinearScan) Evaluate(query OrderedSet, radius float32) []Evaluation {
	query = ls.mapping.Apply(query)
	jac := NewJaccard(query, radius, ls.cfg)

	evals := make([]Evaluation, len(ls.records))
	for i, r := range ls.records {
		evals[i] = jac.Evaluate(r.Set)
	}
	return evals
}
