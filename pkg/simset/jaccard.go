package simset

import "math"

// EvalKind identifies which branch a Jaccard evaluation terminated in.
type EvalKind int

const (
	// Undefined means both sets were empty.
	Undefined EvalKind = iota
	// LengthFiltered means the candidate's length filter rejected it.
	LengthFiltered
	// PositionFiltered means the position filter rejected it mid-merge.
	PositionFiltered
	// Verified means the merge completed but the intersection was too small.
	Verified
	// Accepted means the candidate is within the query radius; Dist holds
	// its Jaccard distance.
	Accepted
)

// Evaluation is the outcome of classifying a candidate set against a
// Jaccard query: one of Undefined, LengthFiltered, PositionFiltered,
// Verified, or Accepted (with a distance).
type Evaluation struct {
	Kind EvalKind
	Dist float32
}

// Equal reports whether two evaluations are the same kind, comparing
// Accepted distances within distEpsilon.
func (e Evaluation) Equal(o Evaluation) bool {
	if e.Kind != o.Kind {
		return false
	}
	if e.Kind == Accepted {
		return distEqual(e.Dist, o.Dist)
	}
	return true
}

// lengthBounds is an inclusive [lo, hi] range on candidate set size.
type lengthBounds struct {
	lo, hi int
}

func (b lengthBounds) contains(n int) bool { return n >= b.lo && n <= b.hi }

// Jaccard evaluates candidate sets against a fixed base set and radius,
// applying the length and position prefix filters configured by cfg.
type Jaccard struct {
	base          OrderedSet
	overlapFactor float32
	bounds        lengthBounds
	cfg           FilterConfig
}

// NewJaccard builds an evaluator for base at the given radius (clamped to
// [0,1]) and filter configuration.
func NewJaccard(base OrderedSet, radius float32, cfg FilterConfig) *Jaccard {
	t := threshold(radius)
	j := &Jaccard{base: base, cfg: cfg}
	j.overlapFactor = overlapFactor(t)
	j.bounds = computeLengthBounds(base.Len(), t)
	return j
}

// UpdateRadius recomputes the evaluator's derived thresholds for a new
// radius, keeping the same base set. Used by top-k queries to tighten the
// radius as the result heap fills.
func (j *Jaccard) UpdateRadius(radius float32) {
	t := threshold(radius)
	j.overlapFactor = overlapFactor(t)
	j.bounds = computeLengthBounds(j.base.Len(), t)
}

func threshold(radius float32) float32 {
	if radius < 0 {
		radius = 0
	} else if radius > 1 {
		radius = 1
	}
	return 1 - radius
}

func overlapFactor(t float32) float32 {
	return t / (1 + t)
}

func computeLengthBounds(baseLen int, t float32) lengthBounds {
	if t == 0 {
		return lengthBounds{lo: 0, hi: math.MaxInt}
	}
	fLen := float32(baseLen)
	lo := int(math.Ceil(float64(fLen * t)))
	hi := int(math.Floor(float64(fLen / t)))
	return lengthBounds{lo: lo, hi: hi}
}

// Distance returns the Jaccard distance between the base set and other, or
// false if both are empty (undefined distance).
func (j *Jaccard) Distance(other OrderedSet) (float32, bool) {
	a, b := j.base, other
	if a.IsEmpty() && b.IsEmpty() {
		return 0, false
	}
	if a.IsEmpty() || b.IsEmpty() {
		return 1.0, true
	}

	intersection := mergeIntersection(a, b)
	union := a.Len() + b.Len() - intersection
	return 1 - float32(intersection)/float32(union), true
}

// mergeIntersection counts the shared elements of two ordered sets via a
// two-pointer merge.
func mergeIntersection(a, b OrderedSet) int {
	ae, be := a.Elems(), b.Elems()
	i, j, intersection := 0, 0, 0
	for i < len(ae) && j < len(be) {
		switch {
		case ae[i] == be[j]:
			intersection++
			i++
			j++
		case ae[i] < be[j]:
			i++
		default:
			j++
		}
	}
	return intersection
}

// Evaluate classifies other against the evaluator's base set and radius,
// applying whichever filters are configured.
func (j *Jaccard) Evaluate(other OrderedSet) Evaluation {
	a, b := j.base, other

	if a.IsEmpty() && b.IsEmpty() {
		return Evaluation{Kind: Undefined}
	}

	if j.overlapFactor == 0 {
		dist, _ := j.Distance(b)
		return Evaluation{Kind: Accepted, Dist: dist}
	}

	if a.IsEmpty() || b.IsEmpty() {
		return Evaluation{Kind: Verified}
	}

	if j.cfg.Length && !j.bounds.contains(b.Len()) {
		return Evaluation{Kind: LengthFiltered}
	}

	totalLen := float32(a.Len() + b.Len())
	overlapThreshold := int(math.Ceil(float64(j.overlapFactor * totalLen)))

	ae, be := a.Elems(), b.Elems()
	i, jj, intersection := 0, 0, 0
	for i < len(ae) && jj < len(be) {
		switch {
		case ae[i] == be[jj]:
			intersection++
			i++
			jj++
		case ae[i] < be[jj]:
			i++
		default:
			jj++
		}

		if j.cfg.Position {
			aSfx := a.Len() - i
			bSfx := b.Len() - jj
			minSfx := aSfx
			if bSfx < minSfx {
				minSfx = bSfx
			}
			if intersection+minSfx < overlapThreshold {
				return Evaluation{Kind: PositionFiltered}
			}
		}
	}

	if intersection < overlapThreshold {
		return Evaluation{Kind: Verified}
	}

	union := a.Len() + b.Len() - intersection
	dist := 1 - float32(intersection)/float32(union)
	return Evaluation{Kind: Accepted, Dist: dist}
}
