package simset

import (
	"math"
	"testing"
)

func TestJaccardDistance(t *testing.T) {
	a := FromUnsorted([]uint32{1, 2, 3, 4, 5})
	b := FromUnsorted([]uint32{3, 4, 5, 6, 7})
	jac := NewJaccard(a, 1.0, FilterConfig{})
	dist, ok := jac.Distance(b)
	if !ok {
		t.Fatalf("expected defined distance")
	}
	wantAbsDiffEq(t, dist, 1.0-3.0/7.0)
}

func TestJaccardLengthFilter1(t *testing.T) {
	cfg := FilterConfig{Length: true, Position: false}

	// J(a,b) = 1 - 4/6 = 0.333...
	a := FromUnsorted([]uint32{1, 2, 3, 4, 5})
	b := FromUnsorted([]uint32{2, 3, 4, 5, 6})

	// length_bounds = 4..=7
	wantEval(t, NewJaccard(a, 0.33, cfg).Evaluate(b), Evaluation{Kind: Verified})
	// length_bounds = 4..=7
	wantEval(t, NewJaccard(a, 0.34, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 1.0 / 3.0})
}

func TestJaccardLengthFilter2(t *testing.T) {
	cfg := FilterConfig{Length: true, Position: false}

	// J(a,b) = 1 - 2/3 = 0.333...
	a := FromUnsorted([]uint32{1, 2})
	b := FromUnsorted([]uint32{1, 2, 3})

	// length_bounds = 2..=2
	wantEval(t, NewJaccard(a, 0.33, cfg).Evaluate(b), Evaluation{Kind: LengthFiltered})
	// length_bounds = 2..=3
	wantEval(t, NewJaccard(a, 0.34, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 1.0 / 3.0})
}

func TestJaccardPositionFilter1(t *testing.T) {
	cfg := FilterConfig{Length: false, Position: true}

	// J(a,b) = 1 - 4/6 = 0.333...
	a := FromUnsorted([]uint32{1, 2, 3, 4, 5})
	b := FromUnsorted([]uint32{2, 3, 4, 5, 6})

	wantEval(t, NewJaccard(a, 0.33, cfg).Evaluate(b), Evaluation{Kind: PositionFiltered})
	wantEval(t, NewJaccard(a, 0.34, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 1.0 / 3.0})
}

func TestJaccardPositionFilter2(t *testing.T) {
	cfg := FilterConfig{Length: false, Position: true}

	// J(a,b) = 1 - 4/6 = 0.333...
	a := FromUnsorted([]uint32{2, 3, 4, 5, 6})
	b := FromUnsorted([]uint32{2, 3, 4, 5, 7})

	wantEval(t, NewJaccard(a, 0.33, cfg).Evaluate(b), Evaluation{Kind: PositionFiltered})
	wantEval(t, NewJaccard(a, 0.34, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 1.0 / 3.0})
}

func TestJaccardPositionFilter3(t *testing.T) {
	cfg := FilterConfig{Length: false, Position: true}

	// J(a,b) = 1 - 1/3 = 0.666...
	a := FromUnsorted([]uint32{1})
	b := FromUnsorted([]uint32{1, 2, 3})

	wantEval(t, NewJaccard(a, 0.66, cfg).Evaluate(b), Evaluation{Kind: PositionFiltered})
	wantEval(t, NewJaccard(a, 0.67, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 2.0 / 3.0})
}

func TestJaccardIdentical(t *testing.T) {
	cfg := FilterConfig{Length: true, Position: true}

	a := FromUnsorted([]uint32{1, 2, 3, 4, 5})
	b := FromUnsorted([]uint32{1, 2, 3, 4, 5})

	wantEval(t, NewJaccard(a, 0.00, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 0.0})
	wantEval(t, NewJaccard(a, 1.00, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 0.0})
}

func TestJaccardOneSideEmpty(t *testing.T) {
	cfg := FilterConfig{Length: true, Position: true}

	a := FromUnsorted([]uint32{1, 2, 3, 4, 5})
	b := FromUnsorted(nil)

	wantEval(t, NewJaccard(a, 0.00, cfg).Evaluate(b), Evaluation{Kind: Verified})
	wantEval(t, NewJaccard(a, 1.00, cfg).Evaluate(b), Evaluation{Kind: Accepted, Dist: 1.0})
}

func TestJaccardUndefined(t *testing.T) {
	cfg := FilterConfig{Length: true, Position: true}

	a := FromUnsorted(nil)
	b := FromUnsorted(nil)

	wantEval(t, NewJaccard(a, 0.00, cfg).Evaluate(b), Evaluation{Kind: Undefined})
	wantEval(t, NewJaccard(a, 1.00, cfg).Evaluate(b), Evaluation{Kind: Undefined})
}

func TestJaccardSymmetry(t *testing.T) {
	a := FromUnsorted([]uint32{1, 2, 3, 7, 9})
	b := FromUnsorted([]uint32{2, 3, 4, 5})

	ab, _ := NewJaccard(a, 1.0, FilterConfig{}).Distance(b)
	ba, _ := NewJaccard(b, 1.0, FilterConfig{}).Distance(a)
	wantAbsDiffEq(t, ab, ba)
}

func TestJaccardBounds(t *testing.T) {
	a := FromUnsorted([]uint32{1, 2, 3, 7, 9})
	b := FromUnsorted([]uint32{2, 3, 4, 5})

	dist, _ := NewJaccard(a, 1.0, FilterConfig{}).Distance(b)
	if dist < 0 || dist > 1 {
		t.Errorf("distance out of [0,1]: %v", dist)
	}

	selfDist, _ := NewJaccard(a, 1.0, FilterConfig{}).Distance(a)
	wantAbsDiffEq(t, selfDist, 0.0)
}

func TestJaccardRadiusOneBypass(t *testing.T) {
	cfg := FilterConfig{Length: true, Position: true}
	a := FromUnsorted([]uint32{1, 5, 9})
	b := FromUnsorted([]uint32{2, 6, 10, 11})

	eval := NewJaccard(a, 1.0, cfg).Evaluate(b)
	if eval.Kind != Accepted {
		t.Errorf("radius 1.0 should always Accept, got %v", eval.Kind)
	}
}

func wantEval(t *testing.T, got, want Evaluation) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func wantAbsDiffEq(t *testing.T, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-5 {
		t.Errorf("got %v, want %v", got, want)
	}
}
