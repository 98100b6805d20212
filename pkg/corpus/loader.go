// Package corpus reads newline-delimited, whitespace-tokenized text files
// into simset records or raw token queries, the shared loading step behind
// all three CLI drivers.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kittclouds/simset/pkg/simset"
	"github.com/kittclouds/simset/pkg/textfeat"
)

// LoadRecords reads one record per line from path, tokenizing on
// whitespace and extracting features with extractor. Record ids are
// assigned by 0-based line number.
func LoadRecords(path string, extractor *textfeat.FeatureExtractor) ([]simset.Record, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}

	records := make([]simset.Record, len(lines))
	for i, line := range lines {
		tokens := strings.Fields(line)
		records[i] = simset.Record{ID: uint32(i), Set: extractor.Extract(tokens)}
	}
	return records, nil
}

// LoadQueries reads one whitespace-tokenized query per line from path. It
// does not extract features, so a caller can reuse one extractor across
// many queries.
func LoadQueries(path string) ([][]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	queries := make([][]string, len(lines))
	for i, line := range lines {
		queries[i] = strings.Fields(line)
	}
	return queries, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: reading %s: %w", path, err)
	}
	return lines, nil
}
