package milvus

import (
	"testing"

	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenstad/milsearch/v1/search"
)

func TestBuildSchema(t *testing.T) {
	opts := search.DefaultCollectionOptions()
	schema := buildSchema("c1", opts)

	assert.Equal(t, "c1", schema.CollectionName)
	require.Len(t, schema.Fields, 3)

	byName := make(map[string]*entity.Field, len(schema.Fields))
	for _, f := range schema.Fields {
		byName[f.Name] = f
	}

	pk, ok := byName[opts.PrimaryField]
	require.True(t, ok, "schema missing primary key field")
	assert.Equal(t, entity.FieldTypeInt64, pk.DataType)
	assert.True(t, pk.PrimaryKey)
	assert.True(t, pk.AutoID)

	text, ok := byName[opts.TextField]
	require.True(t, ok, "schema missing text field")
	assert.Equal(t, entity.FieldTypeVarChar, text.DataType)

	sparse, ok := byName[opts.SparseField]
	require.True(t, ok, "schema missing sparse field")
	assert.Equal(t, entity.FieldTypeSparseVector, sparse.DataType)

	require.Len(t, schema.Functions, 1)
	fn := schema.Functions[0]
	assert.Equal(t, bm25FunctionName, fn.Name)
	assert.Equal(t, entity.FunctionTypeBM25, fn.Type)
	assert.Equal(t, []string{opts.TextField}, fn.InputFieldNames)
	assert.Equal(t, []string{opts.SparseField}, fn.OutputFieldNames)
}

func TestBuildSparseIndex(t *testing.T) {
	idx := buildSparseIndex(DefaultIndexOptions())
	params := idx.Params()

	assert.Equal(t, "SPARSE_INVERTED_INDEX", params["index_type"])
	assert.Equal(t, "BM25", params["metric_type"])
	assert.Equal(t, "DAAT_MAXSCORE", params["inverted_index_algo"])
	assert.Equal(t, "3", params["bm25_k1"])
	assert.Equal(t, "1", params["bm25_b"])
}

func TestBuildSparseIndexOmitsUnsetTuning(t *testing.T) {
	idx := buildSparseIndex(IndexOptions{})
	params := idx.Params()

	assert.Equal(t, "SPARSE_INVERTED_INDEX", params["index_type"])
	assert.Equal(t, "BM25", params["metric_type"])
	assert.NotContains(t, params, "inverted_index_algo")
	assert.NotContains(t, params, "bm25_k1")
	assert.NotContains(t, params, "bm25_b")
}
