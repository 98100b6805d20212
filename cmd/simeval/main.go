// Command simeval runs every query against a database under each of the
// four filter configurations and reports how many candidates land in each
// Evaluation kind, for pruning diagnostics.
package main

import (
	"encoding/json"
	"log"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kittclouds/simset/pkg/corpus"
	"github.com/kittclouds/simset/pkg/simset"
	"github.com/kittclouds/simset/pkg/textfeat"
)

type output struct {
	Metadata       metadata  `json:"metadata"`
	NoFilter       []counter `json:"no_filter"`
	LengthFilter   []counter `json:"length_filter"`
	PositionFilter []counter `json:"position_filter"`
	AllFilters     []counter `json:"all_filters"`
}

type metadata struct {
	DatabaseFile string  `json:"database_file"`
	QueryFile    string  `json:"query_file"`
	NDatabase    int     `json:"n_database"`
	NQueries     int     `json:"n_queries"`
	MaxN         int     `json:"max_n"`
	Radius       float32 `json:"radius"`
}

type counter struct {
	Undefined        int `json:"undefined"`
	LengthFiltered   int `json:"length_filtered"`
	PositionFiltered int `json:"position_filtered"`
	Verified         int `json:"verified"`
	Accepted         int `json:"accepted"`
}

func tally(evals []simset.Evaluation) counter {
	var c counter
	for _, e := range evals {
		switch e.Kind {
		case simset.Undefined:
			c.Undefined++
		case simset.LengthFiltered:
			c.LengthFiltered++
		case simset.PositionFiltered:
			c.PositionFiltered++
		case simset.Verified:
			c.Verified++
		case simset.Accepted:
			c.Accepted++
		}
	}
	return c
}

func main() {
	var (
		databaseFile = flag.StringP("database", "d", "", "database corpus file")
		queryFile    = flag.StringP("queries", "q", "", "query file")
		outputJSON   = flag.StringP("output", "o", "", "output JSON file")
		maxN         = flag.IntP("max-n", "n", 3, "maximum n-gram size")
		universe     = flag.Uint32P("universe", "u", 1<<20, "feature universe size")
		radius       = flag.Float32P("radius", "r", 0.5, "evaluation radius")
	)
	flag.Parse()

	if *databaseFile == "" || *queryFile == "" || *outputJSON == "" {
		log.Fatal("simeval: --database, --queries and --output are required")
	}

	extractor, err := textfeat.NewFeatureExtractor(1, *maxN, *universe, nil)
	if err != nil {
		log.Fatalf("simeval: %v", err)
	}

	records, err := corpus.LoadRecords(*databaseFile, extractor)
	if err != nil {
		log.Fatalf("simeval: %v", err)
	}
	queries, err := corpus.LoadQueries(*queryFile)
	if err != nil {
		log.Fatalf("simeval: %v", err)
	}

	ls, err := simset.NewLinearScan(records, *universe)
	if err != nil {
		log.Fatalf("simeval: %v", err)
	}

	out := output{
		Metadata: metadata{
			DatabaseFile: *databaseFile,
			QueryFile:    *queryFile,
			NDatabase:    len(records),
			NQueries:     len(queries),
			MaxN:         *maxN,
			Radius:       *radius,
		},
	}

	configs := []struct {
		cfg  simset.FilterConfig
		dest *[]counter
	}{
		{simset.FilterConfig{}, &out.NoFilter},
		{simset.FilterConfig{Length: true}, &out.LengthFilter},
		{simset.FilterConfig{Position: true}, &out.PositionFilter},
		{simset.FilterConfig{Length: true, Position: true}, &out.AllFilters},
	}

	for _, tokens := range queries {
		querySet := extractor.Extract(tokens)
		for _, c := range configs {
			ls.SetFilterConfig(c.cfg)
			*c.dest = append(*c.dest, tally(ls.Evaluate(querySet, *radius)))
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("simeval: %v", err)
	}
	if err := os.WriteFile(*outputJSON, data, 0o644); err != nil {
		log.Fatalf("simeval: %v", err)
	}
}
