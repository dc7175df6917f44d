package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/WolfJourney_Go/internal/config"
	"github.com/osse101/WolfJourney_Go/internal/database"
	"github.com/osse101/WolfJourney_Go/internal/database/jsonfile"
	"github.com/osse101/WolfJourney_Go/internal/database/postgres"
	"github.com/osse101/WolfJourney_Go/internal/repository"
)

// OpenStore opens the configured storage backend. The Postgres backend is
// migrated before it is returned. Close releases whichever backend was opened.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendFile:
		store, err := jsonfile.NewStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend, "data_dir", cfg.DataDir)
		return store, nil

	case config.StorageBackendPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolLimits{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend, "db_host", cfg.DBHost, "db_name", cfg.DBName)
		return postgres.NewStore(pool), nil
	}

	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageBackend, cfg.StorageBackend)
}
