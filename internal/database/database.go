package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolLimits sizes the connection pool. Zero fields keep the pgx defaults.
type PoolLimits struct {
	MaxConns    int
	MinConns    int
	MaxLifetime time.Duration
}

func (l PoolLimits) apply(cfg *pgxpool.Config) {
	if l.MaxConns > 0 {
		cfg.MaxConns = int32(min(l.MaxConns, math.MaxInt32))
	}
	switch {
	case l.MinConns < 0, int32(min(l.MinConns, math.MaxInt32)) > cfg.MaxConns:
		cfg.MinConns = DefaultMinConnections
	case l.MinConns > 0:
		cfg.MinConns = int32(l.MinConns)
	}
	if l.MaxLifetime > 0 {
		cfg.MaxConnLifetime = l.MaxLifetime
	}
	cfg.MaxConnIdleTime = DefaultMaxConnIdleTime
}

// NewPool opens a pgx pool and pings it before handing it out
func NewPool(ctx context.Context, connString string, limits PoolLimits) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	limits.apply(cfg)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase,
		"max_conns", cfg.MaxConns, "min_conns", cfg.MinConns)
	return pool, nil
}
