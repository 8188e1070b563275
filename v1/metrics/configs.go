package metrics

// Config defines the configuration for the Prometheus metrics server.
type Config struct {
	// Address is the listen address for the /metrics endpoint, e.g. ":9090".
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// ServiceName is attached to every metric as a constant "service" label.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go, process, and build info
	// collectors in addition to the application metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_DEFAULT_COLLECTORS"`
}

// DefaultConfig provides sensible defaults for local runs.
func DefaultConfig() Config {
	return Config{
		Address:                 ":9090",
		ServiceName:             "milsearch",
		EnableDefaultCollectors: true,
	}
}
