package dataset

// GeneratorConfig controls the shape of a synthetic dataset.
type GeneratorConfig struct {
	// Entries is how many corpus documents to generate.
	Entries int `yaml:"entries"`

	// Queries is how many search query sentences to generate.
	Queries int `yaml:"queries"`

	// SentencesPerEntry is the paragraph length of each corpus document.
	SentencesPerEntry int `yaml:"sentences_per_entry"`

	// WordsPerQuery is the length of each generated query sentence.
	WordsPerQuery int `yaml:"words_per_query"`

	// Seed makes generation deterministic when non-zero.
	Seed int64 `yaml:"seed"`

	// TextField is the record field the corpus text is stored under.
	TextField string `yaml:"text_field"`
}

// DefaultGeneratorConfig mirrors the demo dataset: 1000 three-sentence
// paragraphs and 100 five-word queries.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Entries:           1000,
		Queries:           100,
		SentencesPerEntry: 3,
		WordsPerQuery:     5,
		TextField:         "text",
	}
}

// StoreConfig contains MinIO connection details for the dataset store.
type StoreConfig struct {
	// Endpoint is the MinIO server endpoint, e.g. "localhost:9000".
	Endpoint string `yaml:"endpoint" env:"MINIO_ENDPOINT"`

	// AccessKeyID is the MinIO access key.
	AccessKeyID string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY"`

	// SecretAccessKey is the MinIO secret key.
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_KEY"`

	// UseSSL selects https when true.
	UseSSL bool `yaml:"use_ssl" env:"MINIO_USE_SSL"`

	// Bucket is the bucket datasets are stored in.
	Bucket string `yaml:"bucket" env:"MINIO_BUCKET"`

	// KeyPrefix namespaces dataset objects within the bucket.
	KeyPrefix string `yaml:"key_prefix"`
}

// DefaultStoreConfig targets the MinIO instance from docker-compose.yml.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Endpoint:        "localhost:9000",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
		Bucket:          "milsearch-datasets",
		KeyPrefix:       "datasets",
	}
}
