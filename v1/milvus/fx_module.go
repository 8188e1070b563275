package milvus

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/arenstad/milsearch/v1/logger"
	"github.com/arenstad/milsearch/v1/search"
)

// FXModule defines the Fx module for the Milvus client.
//
// This module integrates the client into an Fx-based application by providing
// the client factory and registering its lifecycle hooks.
//
// The module:
//  1. Provides the NewClient factory function to the dependency injection
//     container, making the client available to other components.
//  2. Provides NewService, which exposes the client through the
//     backend-agnostic search.Service interface.
//  3. Invokes RegisterClientLifecycle to close the session on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    milvus.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A milvus.Config instance must be available in the dependency injection container.
// - A logger.Logger instance is optional; a no-op logger is used when absent.
var FXModule = fx.Module("milvus",
	fx.Provide(
		NewClient,
		NewService,
	),
	fx.Invoke(RegisterClientLifecycle),
)

// Params defines dependencies needed to construct the Milvus client.
type Params struct {
	fx.In
	Config *Config
	Logger *logger.Logger `optional:"true"`
}

// NewService exposes the client through the backend-agnostic interface so
// application code can depend on search.Service instead of this package.
func NewService(c *Client) search.Service {
	return c
}

// RegisterClientLifecycle handles shutdown of the Milvus client.
// It ensures the session is closed exactly once when the application stops.
func RegisterClientLifecycle(lc fx.Lifecycle, client *Client) {
	var once sync.Once

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			var err error
			once.Do(func() {
				err = client.Close(ctx)
			})
			return err
		},
	})
}
