package milvus

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"github.com/arenstad/milsearch/v1/search"
)

// Compile-time check: the client satisfies the backend-agnostic interface.
var _ search.Service = (*Client)(nil)

// CreateCollection ──────────────────────────────────────────────────────────────
// CreateCollection
// ──────────────────────────────────────────────────────────────
//
// CreateCollection creates a named collection with the text schema, attaches
// the BM25 sparse index, and loads the collection so it is immediately
// searchable.
//
// Name collisions are reported as ErrAlreadyExists rather than silently
// reusing the existing collection, so callers that want create-if-missing
// must check HasCollection first.
func (c *Client) CreateCollection(ctx context.Context, name string, opts search.CollectionOptions) error {
	if err := validateCollectionOptions(name, opts); err != nil {
		return err
	}

	exists, err := c.api.HasCollection(ctx, milvusclient.NewHasCollectionOption(name))
	if err != nil {
		return classify("create collection", err)
	}
	if exists {
		return fmt.Errorf("create collection: %w: collection %q", ErrAlreadyExists, name)
	}

	schema := buildSchema(name, opts)
	idx := buildSparseIndex(c.cfg.Index)

	err = c.api.CreateCollection(ctx, milvusclient.NewCreateCollectionOption(name, schema).
		WithIndexOptions(milvusclient.NewCreateIndexOption(name, opts.SparseField, idx)))
	if err != nil {
		return classify("create collection", err)
	}

	// The collection must be loaded before search requests are accepted.
	task, err := c.api.LoadCollection(ctx, milvusclient.NewLoadCollectionOption(name))
	if err != nil {
		return classify("load collection", err)
	}
	if err := task.Await(ctx); err != nil {
		return classify("load collection", err)
	}

	c.log.Info("Created collection", nil, map[string]interface{}{
		"collection": name,
		"text_field": opts.TextField,
	})
	return nil
}

// DropCollection ──────────────────────────────────────────────────────────────
// DropCollection
// ──────────────────────────────────────────────────────────────
//
// DropCollection deletes a collection and all contained data irreversibly.
//
// Dropping is deliberately NOT idempotent: the collection's existence is
// verified first, and a second drop of the same name fails with ErrNotFound.
// The server itself treats drops of unknown collections as no-ops, so the
// check here is what gives callers a deterministic error.
func (c *Client) DropCollection(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("drop collection: %w: collection name cannot be empty", ErrValidation)
	}

	exists, err := c.api.HasCollection(ctx, milvusclient.NewHasCollectionOption(name))
	if err != nil {
		return classify("drop collection", err)
	}
	if !exists {
		return fmt.Errorf("drop collection: %w: collection %q", ErrNotFound, name)
	}

	if err := c.api.DropCollection(ctx, milvusclient.NewDropCollectionOption(name)); err != nil {
		return classify("drop collection", err)
	}

	c.log.Info("Dropped collection", nil, map[string]interface{}{
		"collection": name,
	})
	return nil
}

// HasCollection reports whether a collection with the given name exists.
func (c *Client) HasCollection(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("has collection: %w: collection name cannot be empty", ErrValidation)
	}

	exists, err := c.api.HasCollection(ctx, milvusclient.NewHasCollectionOption(name))
	if err != nil {
		return false, classify("has collection", err)
	}
	return exists, nil
}

// ListCollections retrieves all existing collections and returns their names.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	names, err := c.api.ListCollections(ctx, milvusclient.NewListCollectionOption())
	if err != nil {
		return nil, classify("list collections", err)
	}

	c.log.Debug("Listed collections", nil, map[string]interface{}{
		"count": len(names),
	})
	return names, nil
}

// Insert ──────────────────────────────────────────────────────────────
// Insert
// ──────────────────────────────────────────────────────────────
//
// Insert adds records to a collection and returns the assigned primary keys
// in input order. Each record must carry a non-empty string under the
// configured text field; the sparse representation is derived server-side.
//
// The collection's existence is checked before the write, so inserting into
// an unknown name fails with ErrNotFound and performs no partial insert.
func (c *Client) Insert(ctx context.Context, name string, records []search.Record) ([]int64, error) {
	if name == "" {
		return nil, fmt.Errorf("insert: %w: collection name cannot be empty", ErrValidation)
	}

	texts, err := extractTexts(records, c.cfg.Schema.TextField)
	if err != nil {
		return nil, err
	}

	exists, err := c.api.HasCollection(ctx, milvusclient.NewHasCollectionOption(name))
	if err != nil {
		return nil, classify("insert", err)
	}
	if !exists {
		return nil, fmt.Errorf("insert: %w: collection %q", ErrNotFound, name)
	}

	res, err := c.api.Insert(ctx, milvusclient.NewColumnBasedInsertOption(name,
		column.NewColumnVarChar(c.cfg.Schema.TextField, texts)))
	if err != nil {
		return nil, classify("insert", err)
	}

	ids, err := primaryKeys(res.IDs)
	if err != nil {
		return nil, err
	}
	if len(ids) != len(records) {
		return nil, fmt.Errorf("insert: %w: got %d ids for %d records", ErrService, len(ids), len(records))
	}

	c.log.Info("Inserted records", nil, map[string]interface{}{
		"collection": name,
		"count":      len(ids),
	})
	return ids, nil
}

// FullTextSearch ──────────────────────────────────────────────────────────────
// FullTextSearch
// ──────────────────────────────────────────────────────────────
//
// FullTextSearch runs each query string against the collection's BM25 index
// in a single round trip and returns one ranked hit slice per query, ordered
// by descending relevance score, each at most limit long.
//
// The call is read-only. A query that matches nothing yields an empty hit
// slice for that query, not an error.
func (c *Client) FullTextSearch(ctx context.Context, name string, queries []string, limit int) ([][]search.Hit, error) {
	if err := validateQueries(name, queries, limit); err != nil {
		return nil, err
	}

	vectors := make([]entity.Vector, len(queries))
	for i, q := range queries {
		vectors[i] = entity.Text(q)
	}

	resultSets, err := c.api.Search(ctx, milvusclient.NewSearchOption(name, limit, vectors).
		WithANNSField(c.cfg.Schema.SparseField).
		WithOutputFields(c.cfg.Schema.TextField))
	if err != nil {
		return nil, classify("full text search", err)
	}

	out := make([][]search.Hit, len(queries))
	for qi := range out {
		out[qi] = []search.Hit{}
	}
	for qi, set := range resultSets {
		if qi >= len(out) {
			break
		}
		hits, err := collectHits(set, c.cfg.Schema.TextField)
		if err != nil {
			return nil, err
		}
		out[qi] = hits
	}

	c.log.Debug("Search completed", nil, map[string]interface{}{
		"collection": name,
		"queries":    len(queries),
		"limit":      limit,
	})
	return out, nil
}

// collectHits flattens one SDK result set into ranked hits. The server
// returns hits already ordered by descending score.
func collectHits(set milvusclient.ResultSet, textField string) ([]search.Hit, error) {
	hits := make([]search.Hit, 0, set.ResultCount)
	textCol := set.GetColumn(textField)

	for i := 0; i < set.ResultCount; i++ {
		id, err := set.IDs.GetAsInt64(i)
		if err != nil {
			return nil, fmt.Errorf("full text search: %w: decoding id at %d: %s", ErrService, i, err)
		}

		var text string
		if textCol != nil {
			text, err = textCol.GetAsString(i)
			if err != nil {
				return nil, fmt.Errorf("full text search: %w: decoding text at %d: %s", ErrService, i, err)
			}
		}

		hits = append(hits, search.Hit{
			ID:    id,
			Score: set.Scores[i],
			Text:  text,
		})
	}
	return hits, nil
}
