package database

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending embedded migration
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations)
	goose.SetTableName(MigrationsTable)
	if err := goose.SetDialect(GooseDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	if version, err := goose.GetDBVersionContext(ctx, db); err == nil {
		slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	}
	return nil
}
