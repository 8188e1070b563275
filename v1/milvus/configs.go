package milvus

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arenstad/milsearch/v1/search"
)

// Config holds connection and schema settings for the Milvus client.
//
// It is intentionally minimal, readable, and easy to override from environment
// variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := milvus.DefaultConfig()
//	cfg.Host = "localhost"
//	cfg.Password = os.Getenv("MILVUS_PASSWORD")
//	cfg.Timeout = 10 * time.Second
//
// Example (builder style):
//
//	cfg := milvus.FromHost("localhost").
//	    WithCredentials("root", os.Getenv("MILVUS_PASSWORD")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Hostname of the Milvus server, e.g. "localhost".
	Host string `yaml:"host" env:"MILVUS_HOST"`

	// gRPC port of the Milvus server. Defaults to 19530.
	Port int `yaml:"port" env:"MILVUS_PORT"`

	// Optional username for secured deployments.
	Username string `yaml:"username" env:"MILVUS_USERNAME"`

	// Optional password for secured deployments.
	Password string `yaml:"password" env:"MILVUS_PASSWORD"`

	// Default collection name the demo flow operates on.
	DefaultCollection string `yaml:"default_collection" env:"MILVUS_DEFAULT_COLLECTION"`

	// Connection establishment timeout. Covers the initial dial and
	// handshake only; per-call deadlines are the caller's context.
	Timeout time.Duration `yaml:"timeout" env:"MILVUS_TIMEOUT"`

	// Schema describes the field layout used by Insert and FullTextSearch.
	Schema search.CollectionOptions `yaml:"schema"`

	// Index describes the sparse full-text index created with collections.
	Index IndexOptions `yaml:"index"`
}

// DefaultConfig provides sensible defaults for a local standalone Milvus.
func DefaultConfig() *Config {
	return &Config{
		Host:              "localhost",
		Port:              19530,
		DefaultCollection: "collection_ex",
		Timeout:           5 * time.Second,
		Schema:            search.DefaultCollectionOptions(),
		Index:             DefaultIndexOptions(),
	}
}

// FromHost returns a default config pre-filled with a specific host.
func FromHost(host string) *Config {
	cfg := DefaultConfig()
	cfg.Host = host
	return cfg
}

// Address renders the host:port gRPC endpoint the SDK dials.
func (c *Config) Address() string {
	port := c.Port
	if port == 0 {
		port = 19530
	}
	return fmt.Sprintf("%s:%d", c.Host, port)
}

// UnmarshalYAML decodes the config while accepting human-readable duration
// strings ("5s", "1m30s") for the timeout field. Fields absent from the
// document keep whatever value the receiver already holds, so decoding over
// DefaultConfig overlays rather than resets.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	raw := struct {
		Host              string                   `yaml:"host"`
		Port              int                      `yaml:"port"`
		Username          string                   `yaml:"username"`
		Password          string                   `yaml:"password"`
		DefaultCollection string                   `yaml:"default_collection"`
		Timeout           string                   `yaml:"timeout"`
		Schema            search.CollectionOptions `yaml:"schema"`
		Index             IndexOptions             `yaml:"index"`
	}{
		Host:              c.Host,
		Port:              c.Port,
		Username:          c.Username,
		Password:          c.Password,
		DefaultCollection: c.DefaultCollection,
		Schema:            c.Schema,
		Index:             c.Index,
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("milvus config: invalid timeout %q: %w", raw.Timeout, err)
		}
		c.Timeout = d
	}
	c.Host = raw.Host
	c.Port = raw.Port
	c.Username = raw.Username
	c.Password = raw.Password
	c.DefaultCollection = raw.DefaultCollection
	c.Schema = raw.Schema
	c.Index = raw.Index
	return nil
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithPort(port int) *Config {
	c.Port = port
	return c
}

func (c *Config) WithCredentials(username, password string) *Config {
	c.Username = username
	c.Password = password
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithDefaultCollection(name string) *Config {
	c.DefaultCollection = name
	return c
}

func (c *Config) WithSchema(opts search.CollectionOptions) *Config {
	c.Schema = opts
	return c
}

func (c *Config) WithIndex(opts IndexOptions) *Config {
	c.Index = opts
	return c
}
