package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kittclouds/simset/pkg/textfeat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRecords(t *testing.T) {
	path := writeTempFile(t, "the quick brown fox\njumps over the lazy dog\n")

	seed := uint64(1)
	extractor, err := textfeat.NewFeatureExtractor(1, 2, 1<<16, &seed)
	require.NoError(t, err)

	records, err := LoadRecords(path, extractor)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, uint32(0), records[0].ID)
	assert.Equal(t, uint32(1), records[1].ID)
	assert.False(t, records[0].Set.IsEmpty())
	assert.False(t, records[1].Set.IsEmpty())
}

func TestLoadQueries(t *testing.T) {
	path := writeTempFile(t, "hello world\nfoo bar baz\n")

	queries, err := LoadQueries(path)
	require.NoError(t, err)
	require.Len(t, queries, 2)
	assert.Equal(t, []string{"hello", "world"}, queries[0])
	assert.Equal(t, []string{"foo", "bar", "baz"}, queries[1])
}

func TestLoadRecordsMissingFile(t *testing.T) {
	seed := uint64(1)
	extractor, err := textfeat.NewFeatureExtractor(1, 2, 1<<16, &seed)
	require.NoError(t, err)

	_, err = LoadRecords(filepath.Join(t.TempDir(), "missing.txt"), extractor)
	assert.Error(t, err)
}
