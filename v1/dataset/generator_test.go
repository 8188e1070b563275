package dataset

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCounts(t *testing.T) {
	ds := Generate(GeneratorConfig{Entries: 25, Queries: 7, Seed: 1})

	assert.Len(t, ds.Corpus.Data, 25)
	assert.Len(t, ds.Queries.Data, 7)
}

func TestGenerateDefaultsOnZeroValues(t *testing.T) {
	ds := Generate(GeneratorConfig{Seed: 1})

	def := DefaultGeneratorConfig()
	assert.Len(t, ds.Corpus.Data, def.Entries)
	assert.Len(t, ds.Queries.Data, def.Queries)
}

func TestGenerateIsDeterministicWithSeed(t *testing.T) {
	cfg := GeneratorConfig{Entries: 10, Queries: 5, Seed: 42}

	first := Generate(cfg)
	second := Generate(cfg)

	assert.Equal(t, first, second)
}

func TestGenerateRecordsCarryTextField(t *testing.T) {
	ds := Generate(GeneratorConfig{Entries: 5, Queries: 2, Seed: 3, TextField: "body"})

	for _, rec := range ds.Corpus.Data {
		text, ok := rec["body"].(string)
		require.True(t, ok, "record missing text field")
		assert.NotEmpty(t, text)
	}
}

func TestGenerateStatistics(t *testing.T) {
	ds := Generate(GeneratorConfig{Entries: 20, Queries: 10, Seed: 7})

	var corpusChars int
	for _, rec := range ds.Corpus.Data {
		corpusChars += len(rec["text"].(string))
	}
	assert.Equal(t, corpusChars, ds.Corpus.TotalChars)
	assert.InDelta(t, float64(corpusChars)/20, ds.Corpus.AvgChars, 1e-9)

	var queryChars int
	for _, q := range ds.Queries.Data {
		queryChars += len(q)
		assert.True(t, strings.HasSuffix(q, "."), "query should be a sentence")
	}
	assert.Equal(t, queryChars, ds.Queries.TotalChars)
	assert.InDelta(t, float64(queryChars)/10, ds.Queries.AvgChars, 1e-9)
}

func TestDatasetRoundTripsThroughJSON(t *testing.T) {
	ds := Generate(GeneratorConfig{Entries: 3, Queries: 2, Seed: 9})

	payload, err := json.Marshal(ds)
	require.NoError(t, err)

	var decoded Dataset
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Len(t, decoded.Corpus.Data, 3)
	assert.Equal(t, ds.Queries.Data, decoded.Queries.Data)
	assert.Equal(t, ds.Corpus.TotalChars, decoded.Corpus.TotalChars)
}
