package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arenstad/milsearch/v1/config"
	"github.com/arenstad/milsearch/v1/dataset"
	"github.com/arenstad/milsearch/v1/logger"
)

func newDatasetCommand() *cobra.Command {
	var (
		entries int
		queries int
		seed    int64
		upload  bool
	)

	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Generate a synthetic dataset and print its summary",
		Long: `Generates a synthetic corpus and query set for latency runs, prints the
character statistics, and optionally uploads the dataset to MinIO so later
runs can reuse it via "latency --dataset-key".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			gen := cfg.Dataset
			if entries > 0 {
				gen.Entries = entries
			}
			if queries > 0 {
				gen.Queries = queries
			}
			if seed != 0 {
				gen.Seed = seed
			}

			ds := dataset.Generate(gen)
			printDatasetSummary(ds)

			if !upload {
				return nil
			}

			log := logger.NewLoggerClient(cfg.Logger)
			store, err := dataset.NewStore(cfg.Storage, log)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			key, err := store.Put(ctx, ds)
			if err != nil {
				return err
			}
			fmt.Printf("Dataset stored as %s\n", key)
			return nil
		},
	}

	cmd.Flags().IntVar(&entries, "entries", 0, "corpus documents to generate (default from config)")
	cmd.Flags().IntVar(&queries, "queries", 0, "query sentences to generate (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for deterministic generation")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload the dataset to MinIO")
	return cmd
}

func printDatasetSummary(ds dataset.Dataset) {
	fmt.Println("=== DATASET SUMMARY ===")
	fmt.Printf("Total dataset entries: %d\n", len(ds.Corpus.Data))
	fmt.Printf("Total dataset characters: %d\n", ds.Corpus.TotalChars)
	fmt.Printf("Average dataset characters per entry: %.1f\n", ds.Corpus.AvgChars)
	fmt.Printf("Total query entries: %d\n", len(ds.Queries.Data))
	fmt.Printf("Total query characters: %d\n", ds.Queries.TotalChars)
	fmt.Printf("Average query characters per entry: %.1f\n", ds.Queries.AvgChars)
}
