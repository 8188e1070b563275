// Package milvus provides a modular, dependency-injected client for BM25
// full-text search on the Milvus vector database.
//
// The package wraps the official Milvus Go SDK with a small, strongly typed
// surface for the collection/data lifecycle: create a collection whose schema
// pairs a raw text field with a service-derived sparse representation, insert
// documents, run ranked full-text queries, and tear the collection down. It
// integrates with the fx dependency injection framework and supports
// builder-style configuration.
//
// # Core Features
//
//   - Managed client lifecycle with Fx integration
//   - Config struct supporting environment and YAML loading
//   - Fail-fast connectivity check on client initialization
//   - Collection schema with auto-id primary key, analyzed text field, and
//     BM25-derived sparse field (computed by the service, never by callers)
//   - Sparse inverted index tuned via IndexOptions (algorithm, k1, b)
//   - Backend-agnostic interface via search.Service
//   - Input validation before every remote call, and a stable error taxonomy
//
// # Basic Usage
//
//	import (
//	    "github.com/arenstad/milsearch/v1/milvus"
//	    "github.com/arenstad/milsearch/v1/search"
//	)
//
//	client, err := milvus.NewClient(milvus.Params{
//	    Config: milvus.FromHost("localhost").WithPort(19530),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close(context.Background())
//
//	name := "documents"
//
//	if err := client.CreateCollection(ctx, name, search.DefaultCollectionOptions()); err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, err := client.Insert(ctx, name, []search.Record{
//	    {"text": "information retrieval is a field of study."},
//	    {"text": "data mining and information retrieval overlap in research."},
//	})
//
//	results, err := client.FullTextSearch(ctx, name, []string{"information retrieval"}, 3)
//	for _, hit := range results[0] {
//	    fmt.Printf("ID=%d Score=%.4f Text=%s\n", hit.ID, hit.Score, hit.Text)
//	}
//
//	if err := client.DropCollection(ctx, name); err != nil {
//	    log.Fatal(err)
//	}
//
// # FX Module Integration
//
// The package exposes an Fx module for automatic dependency injection:
//
//	app := fx.New(
//	    milvus.FXModule,
//	    // other modules...
//	)
//	app.Run()
//
// # Error Taxonomy
//
// Every failure wraps exactly one sentinel kind, checkable with errors.Is or
// the IsXError helpers:
//
//	ErrConnection     endpoint unreachable or handshake failed
//	ErrNotFound       referenced collection or index does not exist
//	ErrAlreadyExists  collection name collision on creation
//	ErrValidation     malformed schema, record, or query input
//	ErrService        any other failure reported by the server
//
// The package performs no local recovery: no retries, no silent fallback.
// Validation failures are raised before the remote call where feasible.
//
// # Drop Semantics
//
// DropCollection is deliberately not idempotent. The server treats drops of
// unknown collections as no-ops; this client checks existence first so that a
// second drop of the same name fails with ErrNotFound. Callers that want
// drop-if-exists combine HasCollection with DropCollection.
//
// # Concurrency
//
// A Client is one logical session: each call is a blocking round trip, and
// the handle is owned by the caller that created it. Create independent
// clients for concurrent workers; the remote service serializes concurrent
// writes to the same collection.
//
// # Package Layout
//
//	milvus/
//	├── client.go        // SDK wrapper and session lifecycle
//	├── operations.go    // search.Service implementation
//	├── schema.go        // collection schema and sparse index definitions
//	├── errors.go        // error kinds and classification
//	├── utils.go         // input validation helpers
//	├── configs.go       // configuration struct
//	└── fx_module.go     // Fx dependency injection module
//
// # Related Packages
//
//   - [search]: backend-agnostic types and the Service interface
package milvus
