package milvus

import (
	"strconv"

	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"

	"github.com/arenstad/milsearch/v1/search"
)

// bm25FunctionName is the name of the service-side function that derives
// the sparse representation from the raw text field on insert.
const bm25FunctionName = "text_bm25_emb"

// IndexOptions tunes the sparse inverted index built over the derived
// text representation. The defaults mirror the demo setup: maximize the
// weight of term frequency (k1) and fully normalize document length (b).
type IndexOptions struct {
	// InvertedIndexAlgo selects the posting-list traversal algorithm.
	InvertedIndexAlgo string `yaml:"inverted_index_algo"`

	// BM25K1 controls term-frequency saturation.
	BM25K1 float64 `yaml:"bm25_k1"`

	// BM25B controls document-length normalization.
	BM25B float64 `yaml:"bm25_b"`
}

// DefaultIndexOptions returns the index tuning used by the demo flow.
func DefaultIndexOptions() IndexOptions {
	return IndexOptions{
		InvertedIndexAlgo: "DAAT_MAXSCORE",
		BM25K1:            3,
		BM25B:             1,
	}
}

// buildSchema assembles the collection schema: an auto-id INT64 primary key,
// an analyzed VARCHAR text field, and a sparse vector field populated by the
// service-side BM25 function. Callers never write the sparse field directly.
func buildSchema(name string, opts search.CollectionOptions) *entity.Schema {
	return entity.NewSchema().
		WithName(name).
		WithField(entity.NewField().
			WithName(opts.PrimaryField).
			WithDataType(entity.FieldTypeInt64).
			WithIsPrimaryKey(true).
			WithIsAutoID(true)).
		WithField(entity.NewField().
			WithName(opts.TextField).
			WithDataType(entity.FieldTypeVarChar).
			WithMaxLength(int64(opts.TextMaxLength)).
			WithEnableAnalyzer(true)).
		WithField(entity.NewField().
			WithName(opts.SparseField).
			WithDataType(entity.FieldTypeSparseVector)).
		WithFunction(entity.NewFunction().
			WithName(bm25FunctionName).
			WithInputFields(opts.TextField).
			WithOutputFields(opts.SparseField).
			WithType(entity.FunctionTypeBM25))
}

// buildSparseIndex renders the full-text index definition for the sparse
// field. The BM25 metric is what makes search rank by term relevance rather
// than vector distance.
func buildSparseIndex(opts IndexOptions) index.Index {
	params := map[string]string{
		index.IndexTypeKey:  string(index.SparseInverted),
		index.MetricTypeKey: string(entity.BM25),
	}
	if opts.InvertedIndexAlgo != "" {
		params["inverted_index_algo"] = opts.InvertedIndexAlgo
	}
	if opts.BM25K1 > 0 {
		params["bm25_k1"] = strconv.FormatFloat(opts.BM25K1, 'f', -1, 64)
	}
	if opts.BM25B > 0 {
		params["bm25_b"] = strconv.FormatFloat(opts.BM25B, 'f', -1, 64)
	}
	return index.NewGenericIndex("sparse_inverted_bm25", params)
}
