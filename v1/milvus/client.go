package milvus

import (
	"context"
	"fmt"
	"time"

	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"github.com/arenstad/milsearch/v1/logger"
)

//
// ──────────────────────────────────────────────────────────────
//   MILVUS CLIENT WRAPPER
// ──────────────────────────────────────────────────────────────
//
// This file defines a thin wrapper around the official Milvus Go client,
// providing application-level operations for managing collections,
// inserting documents, and running BM25 full-text search.
//
// The goal is to abstract away low-level SDK details while preserving
// a strongly typed, validated surface over the remote service.
//
// Responsibilities:
//   • Establish and validate connectivity with Milvus.
//   • Manage collections (create with schema + sparse index, drop, list).
//   • Insert documents and run ranked full-text queries.
//   • Offer a safe API suitable for Fx dependency injection.
//
// All consistency, indexing, and ranking guarantees are owned by the
// remote service; this layer only validates parameters and classifies
// the service's success/error outcomes.
//

// Client wraps the official Milvus Go client and provides higher-level
// operations for working with text collections and full-text search.
//
// A Client is a single logical session. The handle is owned by the caller
// that created it; concurrent use of the same handle is only as safe as
// the underlying gRPC transport makes it, and callers should default to
// one handle per logical caller.
type Client struct {
	api     *milvusclient.Client
	cfg     *Config
	log     *logger.Logger
	started bool
}

// ──────────────────────────────────────────────────────────────
// NewClient
// ──────────────────────────────────────────────────────────────
//
// NewClient constructs a new Client and validates connectivity.
//
// The SDK dials and handshakes during construction, so an unreachable
// endpoint fails fast here with ErrConnection instead of on first use.
// The configured Timeout bounds this initial connection step only.
//
// Example:
//
//	client, err := milvus.NewClient(milvus.Params{Config: cfg})
func NewClient(p Params) (*Client, error) {
	cfg := p.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := p.Logger
	if log == nil {
		log = logger.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	log.Info("Connecting to Milvus", nil, map[string]interface{}{
		"address": cfg.Address(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	api, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address:  cfg.Address(),
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w: %s", cfg.Address(), ErrConnection, err)
	}

	c := &Client{
		api:     api,
		cfg:     cfg,
		log:     log,
		started: true,
	}

	log.Info("Milvus client connected", nil, map[string]interface{}{
		"address": cfg.Address(),
	})
	return c, nil
}

// API returns the underlying Milvus SDK client.
// This is useful for direct access to low-level operations.
func (c *Client) API() *milvusclient.Client {
	return c.api
}

// Close tears down the session. The handle must not be used afterwards.
func (c *Client) Close(ctx context.Context) error {
	if !c.started {
		return nil
	}
	c.started = false

	c.log.Debug("Closing Milvus client", nil, nil)
	if err := c.api.Close(ctx); err != nil {
		return fmt.Errorf("close: %w: %s", ErrService, err)
	}
	return nil
}
