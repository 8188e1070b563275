package search

// Record is a single document to insert, expressed as a mapping of field
// name to value. The text field is mandatory and must be a non-empty string;
// the primary key is assigned by the backend and must not be supplied.
type Record map[string]any

// Hit represents a single ranked search result. Scores follow the
// backend's own relevance scale.
type Hit struct {
	// ID is the primary key of the matched record
	ID int64 `json:"id"`

	// Score is the relevance score (higher = more relevant)
	Score float32 `json:"score"`

	// Text is the stored raw text of the matched record
	Text string `json:"text"`
}

// CollectionOptions describes the schema of a collection to create.
// The zero value is not usable; start from [DefaultCollectionOptions].
type CollectionOptions struct {
	// TextField is the name of the raw text field callers insert into
	TextField string `json:"textField" yaml:"text_field"`

	// TextMaxLength caps the stored text length in characters
	TextMaxLength int `json:"textMaxLength" yaml:"text_max_length"`

	// SparseField is the name of the derived sparse representation field.
	// The backend populates it from TextField on insert; callers never
	// write it directly.
	SparseField string `json:"sparseField" yaml:"sparse_field"`

	// PrimaryField is the name of the auto-assigned primary key field
	PrimaryField string `json:"primaryField" yaml:"primary_field"`
}

// DefaultCollectionOptions returns the schema used by the demo flow:
// an auto-id "id" key, a 1000-character analyzed "text" field, and a
// derived "sparse" field.
func DefaultCollectionOptions() CollectionOptions {
	return CollectionOptions{
		TextField:     "text",
		TextMaxLength: 1000,
		SparseField:   "sparse",
		PrimaryField:  "id",
	}
}
