package dataset

import (
	"math/rand"
	"strings"

	"github.com/arenstad/milsearch/v1/search"
)

// Dataset is a generated corpus plus the queries to run against it,
// with per-set character statistics.
type Dataset struct {
	Corpus  Corpus          `json:"dataset"`
	Queries QuerySet        `json:"queries"`
	Config  GeneratorConfig `json:"config"`
}

// Corpus holds the generated documents, ready to insert.
type Corpus struct {
	Data       []search.Record `json:"data"`
	TotalChars int             `json:"total_chars"`
	AvgChars   float64         `json:"avg_chars"`
}

// QuerySet holds the generated query sentences.
type QuerySet struct {
	Data       []string `json:"data"`
	TotalChars int      `json:"total_chars"`
	AvgChars   float64  `json:"avg_chars"`
}

// vocabulary feeds the sentence generator. A small fixed word list is enough
// for BM25 latency runs: what matters is realistic token counts and enough
// term overlap between corpus and queries to produce non-empty result sets.
var vocabulary = []string{
	"information", "retrieval", "search", "index", "document", "query",
	"ranking", "relevance", "data", "mining", "text", "corpus", "term",
	"frequency", "vector", "sparse", "dense", "field", "schema", "record",
	"collection", "cluster", "storage", "engine", "system", "service",
	"latency", "throughput", "benchmark", "dataset", "analysis", "result",
	"score", "match", "token", "analyzer", "language", "model", "study",
	"research", "overlap", "focus", "large", "finding", "relevant",
}

// Generate produces a deterministic synthetic dataset when cfg.Seed is set,
// and a different one per call otherwise. Zero or negative counts fall back
// to the defaults.
func Generate(cfg GeneratorConfig) Dataset {
	def := DefaultGeneratorConfig()
	if cfg.Entries <= 0 {
		cfg.Entries = def.Entries
	}
	if cfg.Queries <= 0 {
		cfg.Queries = def.Queries
	}
	if cfg.SentencesPerEntry <= 0 {
		cfg.SentencesPerEntry = def.SentencesPerEntry
	}
	if cfg.WordsPerQuery <= 0 {
		cfg.WordsPerQuery = def.WordsPerQuery
	}
	if cfg.TextField == "" {
		cfg.TextField = def.TextField
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	corpus := Corpus{Data: make([]search.Record, 0, cfg.Entries)}
	for i := 0; i < cfg.Entries; i++ {
		text := paragraph(rng, cfg.SentencesPerEntry)
		corpus.Data = append(corpus.Data, search.Record{cfg.TextField: text})
		corpus.TotalChars += len(text)
	}
	corpus.AvgChars = float64(corpus.TotalChars) / float64(cfg.Entries)

	queries := QuerySet{Data: make([]string, 0, cfg.Queries)}
	for i := 0; i < cfg.Queries; i++ {
		q := sentence(rng, cfg.WordsPerQuery)
		queries.Data = append(queries.Data, q)
		queries.TotalChars += len(q)
	}
	queries.AvgChars = float64(queries.TotalChars) / float64(cfg.Queries)

	return Dataset{
		Corpus:  corpus,
		Queries: queries,
		Config:  cfg,
	}
}

// sentence builds one capitalized sentence of n vocabulary words.
func sentence(rng *rand.Rand, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = vocabulary[rng.Intn(len(vocabulary))]
	}
	s := strings.Join(words, " ") + "."
	return strings.ToUpper(s[:1]) + s[1:]
}

// paragraph builds a document of n sentences, each 6-12 words long.
func paragraph(rng *rand.Rand, n int) string {
	sentences := make([]string, n)
	for i := range sentences {
		sentences[i] = sentence(rng, 6+rng.Intn(7))
	}
	return strings.Join(sentences, " ")
}
