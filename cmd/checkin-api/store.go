package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JonnyWalker81/checkin/backend/internal/config"
	"github.com/JonnyWalker81/checkin/backend/internal/logger"
	"github.com/JonnyWalker81/checkin/backend/internal/repository"
	"github.com/JonnyWalker81/checkin/backend/pkg/supabase"
)

// pinger is implemented by stores that can report their health
type pinger interface {
	Ping(ctx context.Context) error
}

// store bundles the record store with its health check and cleanup
type store struct {
	checkins repository.CheckinRepository
	health   pinger
	close    func()
}

func openPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func openStore(ctx context.Context, cfg *config.Config, sb *supabase.Client, log logger.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := openPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		log.Info("connected to postgres", logger.Int("max_conns", int(pool.Config().MaxConns)))
		return &store{
			checkins: repository.NewPostgresCheckinRepository(pool),
			health:   pool,
			close:    pool.Close,
		}, nil

	case config.StoreSupabase:
		log.Info("using supabase record store", logger.String("supabase_url", cfg.Supabase.URL))
		return &store{checkins: repository.NewSupabaseCheckinRepository(sb), close: func() {}}, nil

	default:
		log.Warn("using in-memory record store; data is lost on restart")
		return &store{checkins: repository.NewMemoryCheckinRepository(), close: func() {}}, nil
	}
}
