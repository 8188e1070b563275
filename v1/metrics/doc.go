// Package metrics exposes Prometheus metrics for the demo's search workload.
//
// Each service gets an isolated registry with a constant "service" label, an
// operation counter, and an operation-latency histogram, served over HTTP at
// /metrics. The latency runner feeds observations through
// [Metrics.ObserveOperation]; additional metrics can be registered with the
// CreateCounter/CreateHistogram helpers.
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	start := time.Now()
//	err := svc.Insert(ctx, name, records)
//	m.ObserveOperation("insert", time.Since(start), err)
//
// The [FXModule] starts the HTTP server on application start and shuts it
// down gracefully on stop.
package metrics
