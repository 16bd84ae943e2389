package commands

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/seytic/seytic/internal/config"
	"github.com/seytic/seytic/internal/printer"
	"github.com/seytic/seytic/internal/session"
	"github.com/seytic/seytic/pkg/ticket"
)

// cmdEnv bundles the wired-up collaborators every command needs:
// config, store, ticket repository, and session manager.
type cmdEnv struct {
	cfg      *config.Config
	store    *ticket.RedisStore
	tickets  *ticket.Repository
	sessions *session.Manager
}

// setupEnv loads seytic.yml, connects to Redis, and wires the repository
// and session manager. Callers must Close() the returned environment.
func setupEnv(ctx context.Context) (*cmdEnv, error) {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		return nil, err
	}

	store := ticket.NewRedisStore(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, printer.Error(
			"cannot reach Redis",
			"Seytic stores all state in Redis, but the server did not respond.",
			[]string{
				"Start a local Redis:\n  seytic up",
				"Check the redis.addr value in seytic.yml (current: " + cfg.Redis.Addr + ")",
			},
		)
	}

	repo, err := ticket.NewRepository(store, ticket.WithKey(ticket.TicketsKey(cfg.Workspace)))
	if err != nil {
		store.Close()
		return nil, err
	}

	sessions, err := session.NewManager(store, session.WithWorkspace(cfg.Workspace))
	if err != nil {
		store.Close()
		return nil, err
	}

	return &cmdEnv{cfg: cfg, store: store, tickets: repo, sessions: sessions}, nil
}

// Close releases the Redis connection.
func (e *cmdEnv) Close() error {
	return e.store.Close()
}
