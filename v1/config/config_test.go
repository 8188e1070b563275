package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Milvus.Host)
	assert.Equal(t, 19530, cfg.Milvus.Port)
	assert.Equal(t, "collection_ex", cfg.Milvus.DefaultCollection)
	assert.Equal(t, "text", cfg.Milvus.Schema.TextField)
	assert.Equal(t, 1000, cfg.Dataset.Entries)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
milvus:
  host: milvus.internal
  timeout: 12s
dataset:
  entries: 50
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "milvus.internal", cfg.Milvus.Host)
	assert.Equal(t, 12*time.Second, cfg.Milvus.Timeout)
	assert.Equal(t, 50, cfg.Dataset.Entries)

	// Untouched keys keep their defaults.
	assert.Equal(t, 19530, cfg.Milvus.Port)
	assert.Equal(t, 100, cfg.Dataset.Queries)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("milvus: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadHonorsEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("milvus:\n  port: 29530\n"), 0o600))
	t.Setenv(envConfigPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 29530, cfg.Milvus.Port)
}
