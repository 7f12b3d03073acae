package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dict-crawler/internal/config"
)

const applicationName = "dict-crawler"

// NewPool opens the crawler's connection pool and pings it. workers is the
// number of words processed concurrently; see PoolConfig for how it sizes
// the pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, workers int) (*pgxpool.Pool, error) {
	poolCfg, err := PoolConfig(cfg, workers)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// PoolConfig builds the pool settings. Every worker may hold one connection
// for its save transaction while another worker runs an existence check, so
// MaxConns is raised to workers+1 when the configured value is lower.
// Sessions are tagged with application_name for pg_stat_activity.
func PoolConfig(cfg config.DatabaseConfig, workers int) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	maxConns := cfg.MaxConns
	if need := int32(workers) + 1; need > maxConns {
		maxConns = need
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = min(cfg.MinConns, maxConns)
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}

	return poolCfg, nil
}
