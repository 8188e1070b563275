package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/arenstad/milsearch/v1/config"
	"github.com/arenstad/milsearch/v1/logger"
	"github.com/arenstad/milsearch/v1/milvus"
	"github.com/arenstad/milsearch/v1/search"
)

// sampleRecords is the fixed demo corpus inserted by the demo flow.
var sampleRecords = []search.Record{
	{"text": "information retrieval is a field of study."},
	{"text": "information retrieval focuses on finding relevant information in large datasets."},
	{"text": "data mining and information retrieval overlap in research."},
	{"text": "the rest of the lyrics go,"},
	{"text": "Last night I dreamed about"},
}

// sampleQueries is the fixed query list the demo searches for.
var sampleQueries = []string{"What's the focus of information retrieval?"}

const sampleLimit = 3

func newDemoCommand() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the end-to-end lifecycle demo",
		Long: `Connects to Milvus, creates the demo collection (dropping a leftover one
if present), inserts the sample documents, runs the sample full-text query,
prints the ranked results, and drops the collection again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cfgFile, func(ctx context.Context, cfg *config.Config, log *logger.Logger, svc search.Service) error {
				return runDemo(ctx, cfg, log, svc, keep)
			})
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "keep the collection instead of dropping it at the end")
	return cmd
}

// withApp wires the fx application for a one-shot CLI run and hands the
// invoked function a started container. The run function's error is carried
// out of the container so the caller sees the classified failure, not fx's
// wrapping of it.
func withApp(cfgPath string, run func(context.Context, *config.Config, *logger.Logger, search.Service) error) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	var runErr error
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, cfg.Logger, cfg.Milvus),
		logger.FXModule,
		milvus.FXModule,
		fx.Invoke(func(log *logger.Logger, svc search.Service) {
			runErr = run(context.Background(), cfg, log, svc)
		}),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("shutdown: %w", err)
	}
	return runErr
}

func runDemo(ctx context.Context, cfg *config.Config, log *logger.Logger, svc search.Service, keep bool) error {
	name := cfg.Milvus.DefaultCollection
	log.Info("Starting Milvus demo", nil, map[string]interface{}{
		"collection": name,
	})

	// Drop a leftover collection from a previous aborted run.
	collections, err := svc.ListCollections(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(collections, name) {
		log.Warn("Collection already exists, dropping it", nil, map[string]interface{}{
			"collection": name,
		})
		if err := svc.DropCollection(ctx, name); err != nil {
			return err
		}
	}

	if err := svc.CreateCollection(ctx, name, cfg.Milvus.Schema); err != nil {
		return err
	}

	ids, err := svc.Insert(ctx, name, sampleRecords)
	if err != nil {
		return err
	}
	fmt.Printf("Inserted %d records into %q\n", len(ids), name)

	results, err := svc.FullTextSearch(ctx, name, sampleQueries, sampleLimit)
	if err != nil {
		return err
	}
	for qi, hits := range results {
		fmt.Printf("Query: %s\n", sampleQueries[qi])
		if len(hits) == 0 {
			fmt.Println("  (no results)")
			continue
		}
		for rank, hit := range hits {
			fmt.Printf("  %d. id=%d score=%.4f text=%q\n", rank+1, hit.ID, hit.Score, hit.Text)
		}
	}

	if keep {
		log.Info("Keeping collection as requested", nil, map[string]interface{}{
			"collection": name,
		})
		return nil
	}
	if err := svc.DropCollection(ctx, name); err != nil {
		return err
	}

	log.Info("Finished Milvus demo", nil, nil)
	return nil
}
