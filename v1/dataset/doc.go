// Package dataset generates synthetic text corpora for latency runs and
// persists them in MinIO.
//
// [Generate] produces a corpus of paragraph documents and a set of short
// query sentences from a fixed vocabulary, together with the character
// statistics the latency report prints. Generation is deterministic when a
// seed is configured, so a run can be reproduced exactly.
//
//	ds := dataset.Generate(dataset.GeneratorConfig{Entries: 1000, Queries: 100, Seed: 42})
//
// [Store] uploads and downloads datasets as JSON objects, so one corpus can
// be shared between runs and hosts:
//
//	store, err := dataset.NewStore(dataset.DefaultStoreConfig(), log)
//	key, err := store.Put(ctx, ds)
//	ds, err = store.Get(ctx, key)
package dataset
