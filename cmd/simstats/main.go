// Command simstats reports set-length and per-element-frequency
// distributions for a corpus, useful for picking a universe size and
// sanity-checking the feature extractor before building an index.
package main

import (
	"encoding/json"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kittclouds/simset/pkg/corpus"
	"github.com/kittclouds/simset/pkg/textfeat"
)

type output struct {
	Metadata  metadata `json:"metadata"`
	Lengths   []int    `json:"lengths"`
	ElemFreqs []int    `json:"elem_freqs"`
}

type metadata struct {
	InputTxt string `json:"input_txt"`
	MaxN     int    `json:"max_n"`
	NInput   int    `json:"n_input"`
	NElems   int    `json:"n_elems"`
}

func main() {
	var (
		inputTxt   = flag.StringP("input-txt", "i", "", "input corpus file")
		outputJSON = flag.StringP("output-json", "o", "", "output JSON file")
		maxN       = flag.IntP("max-n", "n", 1, "maximum n-gram size")
		universe   = flag.Uint32P("universe", "u", 1<<20, "feature universe size")
	)
	flag.Parse()

	if *inputTxt == "" || *outputJSON == "" {
		log.Fatal("simstats: --input-txt and --output-json are required")
	}

	extractor, err := textfeat.NewFeatureExtractor(1, *maxN, *universe, nil)
	if err != nil {
		log.Fatalf("simstats: %v", err)
	}

	records, err := corpus.LoadRecords(*inputTxt, extractor)
	if err != nil {
		log.Fatalf("simstats: %v", err)
	}

	elemFreqs := make([]int, *universe)
	lengths := make([]int, len(records))
	for i, r := range records {
		lengths[i] = r.Set.Len()
		for _, e := range r.Set.Elems() {
			elemFreqs[e]++
		}
	}

	out := output{
		Metadata: metadata{
			InputTxt: *inputTxt,
			MaxN:     *maxN,
			NInput:   len(records),
			NElems:   int(*universe),
		},
		Lengths:   lengths,
		ElemFreqs: elemFreqs,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("simstats: %v", err)
	}
	if err := os.WriteFile(*outputJSON, data, 0o644); err != nil {
		log.Fatalf("simstats: %v", err)
	}
}
