// Package textfeat extracts bounded-universe integer feature sets from
// token sequences via seeded sliding-window n-gram hashing, the collaborator
// simset's indices are built from.
package textfeat

import (
	"fmt"
	"math/rand"

	farm "github.com/dgryski/go-farm"

	"github.com/kittclouds/simset/pkg/simset"
)

// FeatureExtractor hashes sliding windows of tokens into a bounded universe
// of feature codes.
type FeatureExtractor struct {
	nMin, nMax int
	universe   uint32
	seed       uint64
}

// NewFeatureExtractor builds an extractor for n-gram windows of size
// [nMin, nMax] reduced modulo universe. It fails if universe is zero, if
// nMin > nMax, or if nMin < 1 (0-grams are not supported).
func NewFeatureExtractor(nMin, nMax int, universe uint32, seed *uint64) (*FeatureExtractor, error) {
	if universe == 0 {
		return nil, fmt.Errorf("textfeat: invalid universe: must be > 0")
	}
	if nMin > nMax {
		return nil, fmt.Errorf("textfeat: invalid ngram range: nMin=%d > nMax=%d", nMin, nMax)
	}
	if nMin < 1 {
		return nil, fmt.Errorf("textfeat: invalid ngram range: nMin must be >= 1, got %d", nMin)
	}

	s := uint64(0)
	if seed != nil {
		s = *seed
	} else {
		s = rand.Uint64()
	}

	return &FeatureExtractor{nMin: nMin, nMax: nMax, universe: universe, seed: s}, nil
}

// Extract produces an OrderedSet of feature codes for a token sequence: for
// each window size n in [nMin, nMax] with enough tokens, every sliding
// window of size n is hashed and reduced modulo the universe.
func (fe *FeatureExtractor) Extract(tokens []string) simset.OrderedSet {
	if len(tokens) == 0 {
		return simset.NewOrderedSet()
	}

	var features []uint32
	for n := fe.nMin; n <= fe.nMax; n++ {
		if len(tokens) < n {
			break
		}
		for i := 0; i+n <= len(tokens); i++ {
			features = append(features, fe.hashWindow(tokens[i:i+n]))
		}
	}
	return simset.FromUnsorted(features)
}

// hashWindow hashes a token window seeded by the extractor's seed, reducing
// the result modulo the universe.
func (fe *FeatureExtractor) hashWindow(window []string) uint32 {
	var buf []byte
	for _, tok := range window {
		buf = append(buf, tok...)
		buf = append(buf, 0) // separator so "ab","c" != "a","bc"
	}
	h := farm.Hash64WithSeed(buf, fe.seed)
	return uint32(h % uint64(fe.universe))
}

// Universe returns the feature universe size.
func (fe *FeatureExtractor) Universe() uint32 { return fe.universe }

// Seed returns the seed used for hashing, so callers can reproduce the
// same feature set on a later run.
func (fe *FeatureExtractor) Seed() uint64 { return fe.seed }
