package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/arenstad/milsearch/v1/config"
	"github.com/arenstad/milsearch/v1/dataset"
	"github.com/arenstad/milsearch/v1/logger"
	"github.com/arenstad/milsearch/v1/metrics"
	"github.com/arenstad/milsearch/v1/milvus"
	"github.com/arenstad/milsearch/v1/search"
)

const (
	latencyCollectionPrefix = "_test_collection_"
	latencySearchLimit      = 5
)

func newLatencyCommand() *cobra.Command {
	var (
		iterations  int
		concurrency int
		datasetKey  string
		upload      bool
	)

	cmd := &cobra.Command{
		Use:   "latency",
		Short: "Measure operation latency against a running Milvus server",
		Long: `Runs timed passes of create_collection, insert, and full_text_search over a
synthetic dataset and prints per-operation latency summaries. Observations
are also exported through the Prometheus /metrics endpoint for the duration
of the run.

With --concurrency above 1, iterations are spread across that many
independent client sessions (one handle per worker).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("%w: --iterations must be positive", errUsage)
			}
			if concurrency <= 0 {
				return fmt.Errorf("%w: --concurrency must be positive", errUsage)
			}
			return runLatency(cfgFile, iterations, concurrency, datasetKey, upload)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 10, "iterations per operation")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "number of concurrent client sessions")
	cmd.Flags().StringVar(&datasetKey, "dataset-key", "", "load the dataset from MinIO instead of generating one")
	cmd.Flags().BoolVar(&upload, "upload", false, "upload the generated dataset to MinIO before the run")
	return cmd
}

func runLatency(cfgPath string, iterations, concurrency int, datasetKey string, upload bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	var runErr error
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg.Logger, cfg.Metrics),
		logger.FXModule,
		metrics.FXModule,
		fx.Invoke(func(log *logger.Logger, m *metrics.Metrics) {
			r := &latencyRunner{cfg: cfg, log: log, metrics: m}
			runErr = r.run(context.Background(), iterations, concurrency, datasetKey, upload)
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

type latencyRunner struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics
}

func (r *latencyRunner) run(ctx context.Context, iterations, concurrency int, datasetKey string, upload bool) error {
	runID := uuid.NewString()
	r.log.Info("Starting latency run", nil, map[string]interface{}{
		"run_id":      runID,
		"iterations":  iterations,
		"concurrency": concurrency,
	})

	ds, err := r.loadDataset(ctx, datasetKey, upload)
	if err != nil {
		return err
	}

	// Warm up one session before timing anything.
	warm, err := milvus.NewClient(milvus.Params{Config: r.cfg.Milvus, Logger: r.log})
	if err != nil {
		return err
	}
	if _, err := warm.ListCollections(ctx); err != nil {
		_ = warm.Close(ctx)
		return err
	}
	if err := warm.Close(ctx); err != nil {
		return err
	}

	passes := []struct {
		op string
		fn func(ctx context.Context, svc search.Service, name string) error
	}{
		{"create_collection", func(ctx context.Context, svc search.Service, name string) error {
			return svc.CreateCollection(ctx, name, r.cfg.Milvus.Schema)
		}},
		{"insert", func(ctx context.Context, svc search.Service, name string) error {
			_, err := svc.Insert(ctx, name, ds.Corpus.Data)
			return err
		}},
		{"full_text_search", func(ctx context.Context, svc search.Service, name string) error {
			_, err := svc.FullTextSearch(ctx, name, ds.Queries.Data, latencySearchLimit)
			return err
		}},
	}

	for _, pass := range passes {
		durations, err := r.pass(ctx, pass.op, iterations, concurrency, pass.fn)
		if err != nil {
			return err
		}
		printSummary(pass.op, durations)
	}

	// Cleanup: drop every per-iteration collection.
	cleanup, err := milvus.NewClient(milvus.Params{Config: r.cfg.Milvus, Logger: r.log})
	if err != nil {
		return err
	}
	defer func() { _ = cleanup.Close(ctx) }()
	for i := 0; i < iterations; i++ {
		if err := cleanup.DropCollection(ctx, collectionName(i)); err != nil {
			return err
		}
	}

	r.log.Info("Finished latency run", nil, map[string]interface{}{
		"run_id": runID,
	})
	return nil
}

// loadDataset fetches the dataset named by key from MinIO, or generates one
// from the configured shape, optionally uploading it for later reuse.
func (r *latencyRunner) loadDataset(ctx context.Context, key string, upload bool) (dataset.Dataset, error) {
	if key != "" {
		store, err := dataset.NewStore(r.cfg.Storage, r.log)
		if err != nil {
			return dataset.Dataset{}, err
		}
		return store.Get(ctx, key)
	}

	ds := dataset.Generate(r.cfg.Dataset)
	if upload {
		store, err := dataset.NewStore(r.cfg.Storage, r.log)
		if err != nil {
			return dataset.Dataset{}, err
		}
		storedKey, err := store.Put(ctx, ds)
		if err != nil {
			return dataset.Dataset{}, err
		}
		fmt.Printf("Dataset stored as %s\n", storedKey)
	}
	return ds, nil
}

// pass runs one timed operation across all iterations, spread over
// concurrency worker sessions. Each worker owns its own client handle.
func (r *latencyRunner) pass(ctx context.Context, op string, iterations, concurrency int,
	fn func(ctx context.Context, svc search.Service, name string) error) ([]time.Duration, error) {

	durations := make([]time.Duration, iterations)
	indices := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < concurrency; w++ {
		g.Go(func() error {
			client, err := milvus.NewClient(milvus.Params{Config: r.cfg.Milvus})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close(ctx) }()

			for i := range indices {
				start := time.Now()
				err := fn(gctx, client, collectionName(i))
				elapsed := time.Since(start)
				r.metrics.ObserveOperation(op, elapsed, err)
				if err != nil {
					return err
				}
				durations[i] = elapsed
			}
			return nil
		})
	}

	for i := 0; i < iterations; i++ {
		select {
		case indices <- i:
		case <-gctx.Done():
		}
	}
	close(indices)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return durations, nil
}

func collectionName(i int) string {
	return fmt.Sprintf("%s%d", latencyCollectionPrefix, i)
}

// printSummary renders the latency distribution of one pass.
func printSummary(op string, durations []time.Duration) {
	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	avg := total / time.Duration(len(sorted))

	fmt.Printf("%-20s n=%d avg=%.1fms min=%.1fms p50=%.1fms p95=%.1fms max=%.1fms\n",
		op,
		len(sorted),
		millis(avg),
		millis(sorted[0]),
		millis(percentile(sorted, 50)),
		millis(percentile(sorted, 95)),
		millis(sorted[len(sorted)-1]),
	)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// percentile picks the nearest-rank percentile from an ascending slice.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
