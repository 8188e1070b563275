package milvus

import (
	"fmt"

	"github.com/milvus-io/milvus/client/v2/column"

	"github.com/arenstad/milsearch/v1/search"
)

// validateCollectionOptions rejects malformed schema input before any
// round trip to the server.
func validateCollectionOptions(name string, opts search.CollectionOptions) error {
	if name == "" {
		return fmt.Errorf("create collection: %w: collection name cannot be empty", ErrValidation)
	}
	if opts.TextField == "" {
		return fmt.Errorf("create collection: %w: schema is missing the text field", ErrValidation)
	}
	if opts.SparseField == "" {
		return fmt.Errorf("create collection: %w: schema is missing the sparse field", ErrValidation)
	}
	if opts.PrimaryField == "" {
		return fmt.Errorf("create collection: %w: schema is missing the primary key field", ErrValidation)
	}
	if opts.TextMaxLength <= 0 {
		return fmt.Errorf("create collection: %w: text max length must be greater than 0", ErrValidation)
	}
	return nil
}

// validateQueries validates common search parameters.
func validateQueries(name string, queries []string, limit int) error {
	if name == "" {
		return fmt.Errorf("full text search: %w: collection name cannot be empty", ErrValidation)
	}
	if len(queries) == 0 {
		return fmt.Errorf("full text search: %w: query list cannot be empty", ErrValidation)
	}
	for i, q := range queries {
		if q == "" {
			return fmt.Errorf("full text search: %w: query at index %d is empty", ErrValidation, i)
		}
	}
	if limit <= 0 {
		return fmt.Errorf("full text search: %w: limit must be greater than 0", ErrValidation)
	}
	return nil
}

// extractTexts pulls the mandatory text field out of each record, preserving
// input order. Any record without a non-empty string fails the whole batch
// before the remote call.
func extractTexts(records []search.Record, textField string) ([]string, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("insert: %w: records cannot be empty", ErrValidation)
	}

	texts := make([]string, len(records))
	for i, rec := range records {
		raw, ok := rec[textField]
		if !ok {
			return nil, fmt.Errorf("insert: %w: record at index %d is missing field %q", ErrValidation, i, textField)
		}
		text, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("insert: %w: record at index %d has non-string field %q", ErrValidation, i, textField)
		}
		if text == "" {
			return nil, fmt.Errorf("insert: %w: record at index %d has empty field %q", ErrValidation, i, textField)
		}
		texts[i] = text
	}
	return texts, nil
}

// primaryKeys unpacks the auto-assigned INT64 primary keys from an insert
// response, in input order.
func primaryKeys(ids column.Column) ([]int64, error) {
	if ids == nil {
		return nil, fmt.Errorf("insert: %w: server returned no ids", ErrService)
	}

	idCol, ok := ids.(*column.ColumnInt64)
	if !ok {
		return nil, fmt.Errorf("insert: %w: unexpected id column type %T", ErrService, ids)
	}

	data := idCol.Data()
	out := make([]int64, len(data))
	copy(out, data)
	return out, nil
}
