//go:build integration

package ticket

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis starts a real Redis container for testing.
func setupRedis(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	addr := fmt.Sprintf("%s:%s", host, port.Port())
	cleanup := func() { _ = redisC.Terminate(ctx) }
	return addr, cleanup
}

// Full CRUD cycle against a real Redis server.
func TestRepositoryAgainstRealRedis(t *testing.T) {
	addr, cleanup := setupRedis(t)
	defer cleanup()

	store := NewRedisStore(&redis.Options{Addr: addr})
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))

	repo, err := NewRepository(store)
	require.NoError(t, err)

	created, err := repo.Add(ctx, Fields{
		Title:    "Fix bug",
		Status:   StatusOpen,
		Priority: PriorityHigh,
	})
	require.NoError(t, err)

	closed := StatusClosed
	_, err = repo.Update(ctx, created.ID, Patch{Status: &closed})
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 1, Closed: 1}, stats)

	tickets, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
