package milvus

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/arenstad/milsearch/v1/logger"
	"github.com/arenstad/milsearch/v1/search"
)

// MilvusContainer represents a Milvus standalone container for testing
type MilvusContainer struct {
	testcontainers.Container
	Host string
	Port int
}

// setupMilvusContainer starts a self-contained Milvus standalone (embedded
// etcd, local storage) so integration tests do not need the full compose
// topology.
func setupMilvusContainer(ctx context.Context) (*MilvusContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"19530/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "milvusdb/milvus:v2.5.6",
		Cmd:   []string{"milvus", "run", "standalone"},
		Env: map[string]string{
			"ETCD_USE_EMBED":     "true",
			"ETCD_DATA_DIR":      "/var/lib/milvus/etcd",
			"COMMON_STORAGETYPE": "local",
			"DEPLOY_MODE":        "STANDALONE",
		},
		ExposedPorts: []string{"19530/tcp", "9091/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("19530/tcp").WithStartupTimeout(3*time.Minute),
			wait.ForHTTP("/healthz").WithPort("9091/tcp").WithStartupTimeout(3*time.Minute),
		),
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start milvus container: %w", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := c.MappedPort(ctx, "19530")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	return &MilvusContainer{
		Container: c,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := addr.Close(); cerr != nil {
			fmt.Printf("Failed to close listener: %v", cerr)
		}
	}()

	return addr.Addr().(*net.TCPAddr).Port, nil
}

func integrationConfig(c *MilvusContainer) *Config {
	return FromHost(c.Host).
		WithPort(c.Port).
		WithTimeout(30 * time.Second)
}

// TestClientLifecycleIntegration covers the full lifecycle workflow end to
// end against a real server.
func TestClientLifecycleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupMilvusContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	client, err := NewClient(Params{Config: integrationConfig(containerInstance)})
	require.NoError(t, err)
	require.NotNil(t, client)
	defer func() { _ = client.Close(ctx) }()

	collectionName := "c1"

	t.Run("CreateAndDropLeaveNoTrace", func(t *testing.T) {
		before, err := client.ListCollections(ctx)
		require.NoError(t, err)

		require.NoError(t, client.CreateCollection(ctx, collectionName, search.DefaultCollectionOptions()))

		exists, err := client.HasCollection(ctx, collectionName)
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, client.DropCollection(ctx, collectionName))

		after, err := client.ListCollections(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, before, after)
	})

	t.Run("DuplicateCreateFails", func(t *testing.T) {
		require.NoError(t, client.CreateCollection(ctx, collectionName, search.DefaultCollectionOptions()))
		defer func() { _ = client.DropCollection(ctx, collectionName) }()

		err := client.CreateCollection(ctx, collectionName, search.DefaultCollectionOptions())
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("DropNeverCreatedFails", func(t *testing.T) {
		err := client.DropCollection(ctx, "never_created")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SecondDropFails", func(t *testing.T) {
		require.NoError(t, client.CreateCollection(ctx, collectionName, search.DefaultCollectionOptions()))
		require.NoError(t, client.DropCollection(ctx, collectionName))

		err := client.DropCollection(ctx, collectionName)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("InsertIntoMissingCollectionFails", func(t *testing.T) {
		ids, err := client.Insert(ctx, "never_created", []search.Record{{"text": "hello"}})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, ids)
	})

	t.Run("InsertReturnsOrderedUniqueKeys", func(t *testing.T) {
		require.NoError(t, client.CreateCollection(ctx, collectionName, search.DefaultCollectionOptions()))
		defer func() { _ = client.DropCollection(ctx, collectionName) }()

		records := make([]search.Record, 50)
		for i := range records {
			records[i] = search.Record{"text": fmt.Sprintf("document number %d", i)}
		}

		ids, err := client.Insert(ctx, collectionName, records)
		require.NoError(t, err)
		require.Len(t, ids, len(records))

		seen := make(map[int64]bool, len(ids))
		for _, id := range ids {
			assert.False(t, seen[id], "primary key %d assigned twice", id)
			seen[id] = true
		}
	})
}

// TestFullTextSearchIntegration covers the ranked-search contract, including
// the fixed grocery-list scenario.
func TestFullTextSearchIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupMilvusContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	client, err := NewClient(Params{Config: integrationConfig(containerInstance)})
	require.NoError(t, err)
	defer func() { _ = client.Close(ctx) }()

	collectionName := "c1"
	require.NoError(t, client.CreateCollection(ctx, collectionName, search.DefaultCollectionOptions()))
	defer func() { _ = client.DropCollection(ctx, collectionName) }()

	groceryTexts := []string{
		"grocery list: bananas, bread, choco",
		"grocery: green beans",
		"study list: langchain v1",
	}
	records := make([]search.Record, len(groceryTexts))
	for i, text := range groceryTexts {
		records[i] = search.Record{"text": text}
	}

	ids, err := client.Insert(ctx, collectionName, records)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	// BM25 search happens on the growing segment; give the server a moment
	// to flush and index the fresh rows.
	time.Sleep(2 * time.Second)

	t.Run("GroceryQueryReturnsTopTwo", func(t *testing.T) {
		results, err := client.FullTextSearch(ctx, collectionName, []string{"grocery"}, 2)
		require.NoError(t, err)
		require.Len(t, results, 1)

		hits := results[0]
		require.Len(t, hits, 2)

		matched := []string{hits[0].Text, hits[1].Text}
		assert.ElementsMatch(t, groceryTexts[:2], matched)
		assert.NotContains(t, matched, groceryTexts[2])
	})

	t.Run("ScoresDescendAndLimitHolds", func(t *testing.T) {
		results, err := client.FullTextSearch(ctx, collectionName, []string{"grocery list"}, 3)
		require.NoError(t, err)
		require.Len(t, results, 1)

		hits := results[0]
		assert.LessOrEqual(t, len(hits), 3)
		for i := 1; i < len(hits); i++ {
			assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score,
				"hits must be ordered by non-increasing score")
		}
	})

	t.Run("RepeatedSearchIsIdempotent", func(t *testing.T) {
		first, err := client.FullTextSearch(ctx, collectionName, []string{"grocery"}, 2)
		require.NoError(t, err)
		second, err := client.FullTextSearch(ctx, collectionName, []string{"grocery"}, 2)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("UnmatchedQueryYieldsEmptyResult", func(t *testing.T) {
		results, err := client.FullTextSearch(ctx, collectionName, []string{"nonexistent-term"}, 2)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Empty(t, results[0])
	})

	t.Run("MultipleQueriesKeepOrder", func(t *testing.T) {
		results, err := client.FullTextSearch(ctx, collectionName,
			[]string{"grocery", "study langchain"}, 3)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.NotEmpty(t, results[0])
		assert.NotEmpty(t, results[1])
		assert.Equal(t, groceryTexts[2], results[1][0].Text)
	})

	t.Run("SearchMissingCollectionFails", func(t *testing.T) {
		_, err := client.FullTextSearch(ctx, "never_created", []string{"grocery"}, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// TestFXModuleIntegration verifies the module wires construction and
// shutdown through the fx lifecycle.
func TestFXModuleIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	containerInstance, err := setupMilvusContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	var svc search.Service
	app := fxtest.New(t,
		fx.Supply(integrationConfig(containerInstance), logger.Config{Level: logger.Error, ServiceName: "test"}),
		logger.FXModule,
		FXModule,
		fx.Populate(&svc),
	)
	app.RequireStart()

	_, err = svc.ListCollections(ctx)
	assert.NoError(t, err)

	app.RequireStop()
}
