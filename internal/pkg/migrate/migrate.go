package migrate

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"fastship/db"
	"fastship/pkg/logger"
)

// Up applies all pending migrations from the embedded FS over the
// service's own connection pool.
func Up(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	goose.SetBaseFS(db.Migrations)
	goose.SetLogger(goose.NopLogger())

	err := goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	err = goose.UpContext(ctx, sqlDB, "migrations")
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	log.With(
		logger.NewField("version", version),
	).Info("database migrations applied")

	return nil
}
