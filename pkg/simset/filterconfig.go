package simset

// FilterConfig toggles which pruning filters the Jaccard evaluator applies
// before verifying a candidate. Both default to off. Configuration never
// changes which pairs end up Accepted, only which branch rejects the
// false ones along the way.
type FilterConfig struct {
	Length   bool
	Position bool
}
