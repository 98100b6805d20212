// Command simsearch builds a similarity-search index from a corpus file
// and answers range or top-k queries, writing a JSON report.
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
	Metadata metadata `json:"metadata"`
	Answers  []answer `json:"answers"`
}

type metadata struct {
	DatabaseFile string   `json:"database_file"`
	QueryFile    string   `json:"query_file"`
	NDatabase    int      `json:"n_database"`
	NQueries     int      `json:"n_queries"`
	MaxN         int      `json:"max_n"`
	Radius       *float32 `json:"radius,omitempty"`
	TopK         *int     `json:"topk,omitempty"`
	Length       bool     `json:"length"`
	Position     bool     `json:"position"`
	Prefix       bool     `json:"prefix"`
}

type answer struct {
	Query  string  `json:"query"`
	Founds []found `json:"founds"`
}

type found struct {
	ID   uint32  `json:"id"`
	Dist float32 `json:"dist"`
}

func main() {
	var (
		databaseFile = flag.StringP("database", "d", "", "database corpus file")
		queryFile    = flag.StringP("queries", "q", "", "query file")
		outputJSON   = flag.StringP("output", "o", "", "output JSON file")
		maxN         = flag.IntP("max-n", "n", 3, "maximum n-gram size")
		universe     = flag.Uint32P("universe", "u", 1<<20, "feature universe size")
		radius       = flag.Float32P("radius", "r", -1, "range query radius; mutually exclusive with --topk")
		topk         = flag.IntP("topk", "k", 0, "top-k query size; mutually exclusive with --radius")
		length       = flag.Bool("length", false, "enable the length filter (LinearScan only)")
		position     = flag.Bool("position", false, "enable the position filter (LinearScan only)")
		usePrefix    = flag.Bool("prefix", false, "use the PrefixIndex instead of LinearScan")
	)
	flag.Parse()

	if *databaseFile == "" || *queryFile == "" || *outputJSON == "" {
		log.Fatal("simsearch: --database, --queries and --output are required")
	}
	if *radius < 0 && *topk == 0 {
		log.Fatal("simsearch: one of --radius or --topk is required")
	}
	if *radius >= 0 && *topk > 0 {
		log.Fatal("simsearch: --radius and --topk are mutually exclusive")
	}

	extractor, err := textfeat.NewFeatureExtractor(1, *maxN, *universe, nil)
	if err != nil {
		log.Fatalf("simsearch: %v", err)
	}

	records, err := corpus.LoadRecords(*databaseFile, extractor)
	if err != nil {
		log.Fatalf("simsearch: %v", err)
	}
	queries, err := corpus.LoadQueries(*queryFile)
	if err != nil {
		log.Fatalf("simsearch: %v", err)
	}

	out := output{
		Metadata: metadata{
			DatabaseFile: *databaseFile,
			QueryFile:    *queryFile,
			NDatabase:    len(records),
			NQueries:     len(queries),
			MaxN:         *maxN,
			Length:       *length,
			Position:     *position,
			Prefix:       *usePrefix,
		},
	}
	if *radius >= 0 {
		out.Metadata.Radius = radius
	}
	if *topk > 0 {
		out.Metadata.TopK = topk
	}

	runQueries := buildRunner(records, *universe, *radius, *topk, simset.FilterConfig{Length: *length, Position: *position}, *usePrefix)

	for _, tokens := range queries {
		querySet := extractor.Extract(tokens)
		results := runQueries(querySet)
		founds := make([]found, len(results))
		for i, r := range results {
			founds[i] = found{ID: r.ID, Dist: r.Dist}
		}
		out.Answers = append(out.Answers, answer{Query: joinTokens(tokens), Founds: founds})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("simsearch: %v", err)
	}
	if err := os.WriteFile(*outputJSON, data, 0o644); err != nil {
		log.Fatalf("simsearch: %v", err)
	}
}

// buildRunner returns a function answering one query against either a
// LinearScan or a PrefixIndex, depending on usePrefix. Top-k is only
// supported by LinearScan, since PrefixIndex only answers range queries.
func buildRunner(records []simset.Record, universe uint32, radius float32, topk int, cfg simset.FilterConfig, usePrefix bool) func(simset.OrderedSet) []simset.Answer {
	if usePrefix {
		r := radius
		if r < 0 {
			r = 1.0
		}
		pi, err := simset.NewPrefixIndex(records, universe, r)
		if err != nil {
			log.Fatalf("simsearch: %v", err)
		}
		return pi.RangeQuery
	}

	ls, err := simset.NewLinearScan(records, universe)
	if err != nil {
		log.Fatalf("simsearch: %v", err)
	}
	ls.SetFilterConfig(cfg)

	if topk > 0 {
		return func(q simset.OrderedSet) []simset.Answer { return ls.TopKQuery(q, topk) }
	}
	return func(q simset.OrderedSet) []simset.Answer { return ls.RangeQuery(q, radius) }
}

func joinTokens(tokens []string) string {
	out := ""
	for i, tok := range tokens {
		if i > 0 {
			out += " "
		}
		out += tok
	}
	return out
}
