package simset

// prefixFilterConfig is the filter configuration the prefix index always
// verifies candidates with: the index structurally enforces a prefix
// bound, so there's no use for the "no filter" evaluator mode here.
var prefixFilterConfig = FilterConfig{Length: true, Position: true}

// PrefixIndex is an inverted index on each record's prefix (its first few,
// rarest-first elements after frequency remapping). Range queries only
// scan candidates that share at least one prefix element with the query's
// own prefix, except at radius 1, where every record is evaluated.
type PrefixIndex struct {
	mapping Mapping
	records []Record
	index   map[uint32][]int
	radius  float32
}

// NewPrefixIndex builds the Mapping, remaps records, and inserts each
// record under its first pL elements, where pL is derived from radius so
// that any true positive at that radius shares an indexed element with any
// query's own prefix.
func NewPrefixIndex(records []Record, universe uint32, radius float32) (*PrefixIndex, error) {
	mapping, err := FromRecords(records, universe)
	if err != nil {
		return nil, err
	}

	remapped := make([]Record, len(records))
	for i, r := range records {
		remapped[i] = Record{ID: r.ID, Set: mapping.Apply(r.Set)}
	}

	t := threshold(radius)
	index := make(map[uint32][]int)
	for pos, r := range remapped {
		pL := indexPrefixLen(r.Set.Len(), t)
		elems := r.Set.Elems()
		for _, e := range elems[:pL] {
			index[e] = append(index[e], pos)
		}
	}

	return &PrefixIndex{mapping: mapping, records: remapped, index: index, radius: radius}, nil
}

// indexPrefixLen computes the build-time prefix length for a record of
// size l at threshold t, clamped to [0, l].
func indexPrefixLen(l int, t float32) int {
	pL := int(float32(l)*(1-t)/(1+t)) + 1
	if pL > l {
		pL = l
	}
	if pL < 0 {
		pL = 0
	}
	return pL
}

// queryPrefixLen computes the query-time prefix length for a query of
// size m at threshold t, clamped to [0, m].
func queryPrefixLen(m int, t float32) int {
	pM := int(float32(m)*(1-t)) + 1
	if pM > m {
		pM = m
	}
	if pM < 0 {
		pM = 0
	}
	return pM
}

// RangeQuery returns every record within the index's build radius of query,
// sorted by the Answer order.
func (pi *PrefixIndex) RangeQuery(query OrderedSet) []Answer {
	q := pi.mapping.Apply(query)
	t := threshold(pi.radius)
	pM := queryPrefixLen(q.Len(), t)

	jac := NewJaccard(q, pi.radius, prefixFilterConfig)

	var answers []Answer
	if t == 0 {
		// At radius 1 every record is a hit, including records that share no
		// element with the query, so the posting lists cannot find them all.
		for _, r := range pi.records {
			if eval := jac.Evaluate(r.Set); eval.Kind == Accepted {
				answers = append(answers, Answer{ID: r.ID, Dist: eval.Dist})
			}
		}
		sortAnswers(answers)
		return answers
	}

	seen := make(map[int]bool)
	for _, e := range q.Elems()[:pM] {
		for _, pos := range pi.index[e] {
			if seen[pos] {
				continue
			}
			seen[pos] = true
			r := pi.records[pos]
			if eval := jac.Evaluate(r.Set); eval.Kind == Accepted {
				answers = append(answers, Answer{ID: r.ID, Dist: eval.Dist})
			}
		}
	}
	sortAnswers(answers)
	return answers
}
