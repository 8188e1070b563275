package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arenstad/milsearch/v1/dataset"
	"github.com/arenstad/milsearch/v1/logger"
	"github.com/arenstad/milsearch/v1/metrics"
	"github.com/arenstad/milsearch/v1/milvus"
)

// envConfigPath overrides the config file location when no --config flag
// is given.
const envConfigPath = "MILSEARCH_CONFIG"

// Config is the root configuration binding every package Config in one
// YAML document.
type Config struct {
	Logger  logger.Config           `yaml:"logger"`
	Milvus  *milvus.Config          `yaml:"milvus"`
	Metrics metrics.Config          `yaml:"metrics"`
	Dataset dataset.GeneratorConfig `yaml:"dataset"`
	Storage dataset.StoreConfig     `yaml:"storage"`
}

// Default returns the configuration the demo runs with out of the box:
// everything pointed at the docker-compose topology on localhost.
func Default() *Config {
	return &Config{
		Logger: logger.Config{
			Level:       logger.Info,
			ServiceName: "milsearch",
		},
		Milvus:  milvus.DefaultConfig(),
		Metrics: metrics.DefaultConfig(),
		Dataset: dataset.DefaultGeneratorConfig(),
		Storage: dataset.DefaultStoreConfig(),
	}
}

// Load reads configuration from the given YAML file, overlaying it on the
// defaults. An empty path falls back to the MILSEARCH_CONFIG environment
// variable; if neither names a file, the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(envConfigPath)
	}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
