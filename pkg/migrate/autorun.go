package migrate

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/docstream/docstream-api/pkg/config"
)

// MaybeRunDev applies pending migrations at startup when AUTO_MIGRATE is set outside production.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logger *zap.Logger, db *sqlx.DB) error {
	if cfg.IsProduction() || !cfg.AutoMigrate {
		return nil
	}

	logger.Info("running goose migrations (dev auto-run)", zap.String("env", cfg.Env))
	if err := Run(ctx, db.DB, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logger.Info("goose migrations completed")
	return nil
}
