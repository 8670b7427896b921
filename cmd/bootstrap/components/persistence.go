package components

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/snapshot"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/durability"

	"go.uber.org/fx"
)

const connectTimeout = 15 * time.Second

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSnapshotStore,
	),
)

// NewSnapshotStore opens the backend named by PERSISTENCE_DRIVER. The Postgres
// pool is closed on stop, after the final save has run.
func NewSnapshotStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (durability.Store, error) {
	if cfg.Persistence.Driver != config.PersistenceDriverPostgres {
		logger.Info("using file snapshot store", "dir", cfg.Persistence.DataDir)
		return snapshot.NewFileStore(cfg.Persistence.DataDir, logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("using postgres snapshot store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
	return snapshot.NewPostgresStore(ctx, pool, logger)
}
