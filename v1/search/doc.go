// Package search provides a database-agnostic abstraction for full-text document search.
//
// # Overview
//
// This package defines a common interface [Service] that can be implemented
// by different document-search backends (Milvus, Elasticsearch, OpenSearch, etc.),
// allowing applications to switch between services without changing application code.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                    Application Layer                        │
//	│      (uses search.Service - no backend-specific imports)    │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                      search.Service                         │
//	│         (common interface + backend-agnostic types)         │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	                           ▼
//	                  ┌───────────────┐
//	                  │ milvus.Client │
//	                  │  (implements) │
//	                  └───────────────┘
//
// # Usage
//
// In your application, depend only on the search interface:
//
//	import "github.com/arenstad/milsearch/v1/search"
//
//	func NewDemoRunner(svc search.Service) *DemoRunner {
//	    return &DemoRunner{svc: svc}
//	}
//
// # Records
//
// A [Record] is a plain field-to-value mapping. The only field a caller must
// supply is the raw text field; the primary key is assigned by the backend on
// insert, and the sparse term representation is derived by the backend from
// the text. Records are immutable once inserted; there is no update operation.
//
// # Search Results
//
// Results are returned as one ranked [Hit] slice per query string, ordered by
// non-increasing relevance score and truncated to the requested limit:
//
//	results, err := svc.FullTextSearch(ctx, "documents", []string{"grocery"}, 2)
//	for _, hit := range results[0] {
//	    fmt.Println(hit.ID, hit.Score, hit.Text)
//	}
//
// # Testing
//
// For testing, depend on the [Service] interface and substitute a fake:
//
//	type StubSearch struct{}
//
//	func (s *StubSearch) FullTextSearch(ctx context.Context, name string, queries []string, limit int) ([][]search.Hit, error) {
//	    return [][]search.Hit{{{ID: 1, Score: 0.95, Text: "stub"}}}, nil
//	}
package search
