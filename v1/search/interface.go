package search

import "context"

// Service is the common interface for full-text document search backends.
// It provides a backend-agnostic abstraction over the collection/data
// lifecycle: create a collection with a text schema, insert documents,
// query the full-text index, and tear down.
//
// Each call is a blocking round trip to the remote service. The interface
// implements no retries, caching, or backoff; failures surface immediately
// as errors that the implementation classifies into its error kinds.
//
// Example usage:
//
//	func RunDemo(ctx context.Context, svc search.Service) error {
//	    if err := svc.CreateCollection(ctx, "docs", search.DefaultCollectionOptions()); err != nil {
//	        return err
//	    }
//	    defer svc.DropCollection(ctx, "docs")
//	    ...
//	}
type Service interface {
	// CreateCollection creates a named collection with the given schema and
	// its full-text index. Fails if the name is already taken or the
	// options are malformed.
	CreateCollection(ctx context.Context, name string, opts CollectionOptions) error

	// DropCollection deletes a collection and all contained data
	// irreversibly. Dropping a collection that does not exist is an error,
	// not a no-op.
	DropCollection(ctx context.Context, name string) error

	// HasCollection reports whether a collection with the given name exists.
	HasCollection(ctx context.Context, name string) (bool, error)

	// ListCollections returns the names of all collections.
	ListCollections(ctx context.Context) ([]string, error)

	// Insert adds records to a collection and returns the assigned primary
	// keys in input order, exactly one per record. Every record must carry
	// a non-empty text field.
	Insert(ctx context.Context, name string, records []Record) ([]int64, error)

	// FullTextSearch runs each query string independently against the
	// collection's full-text index and returns one ranked hit slice per
	// query, each at most limit long, ordered by descending score.
	// A query that matches nothing yields an empty slice, not an error.
	FullTextSearch(ctx context.Context, name string, queries []string, limit int) ([][]Hit, error)
}
