// Package logger provides a thin structured-logging wrapper around Uber's Zap.
//
// The wrapper fixes the calling convention used across this repository:
// every method takes a message, an optional error, and optional field maps.
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "milsearch",
//	})
//
//	log.Info("Search completed", nil, map[string]interface{}{
//	    "collection": "documents",
//	    "hits":       3,
//	})
//
//	log.Error("Insert failed", err, map[string]interface{}{
//	    "collection": "documents",
//	})
//
// Output is JSON on stderr with ISO8601 timestamps, caller information, and
// pid/service default fields. Use [NewNop] where a logger is required but
// output is unwanted (tests, optional dependencies).
//
// The package integrates with fx through [FXModule], which provides the
// logger and flushes it on application shutdown.
package logger
