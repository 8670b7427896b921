package components

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/dialog"
	"salon-booking/internal/usecase/durability"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/scheduling"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseDurabilityModule,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseDialogModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	metrics.New,
	NewCatalog,
	fx.Annotate(
		NewEngine,
		fx.As(fx.Self()),
		fx.As(new(commands.Scheduler)),
		fx.As(new(queries.Reader)),
		fx.As(new(durability.Engine)),
	),
)

var usecaseDurabilityModule = fx.Module("usecase/durability",
	fx.Provide(
		fx.Annotate(
			NewDurabilityRunner,
			fx.As(fx.Self()),
			fx.As(new(commands.FlushRequester)),
		),
	),
	fx.Invoke(registerDurabilityLifecycle),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAdminQueries,
	),
)

var usecaseDialogModule = fx.Module("usecase/dialog",
	fx.Provide(
		dialog.NewStore,
		fx.Annotate(
			NewDialogMachine,
			fx.As(new(dialog.Conversation)),
		),
	),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	c, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logger.Info("service catalog loaded", "services", c.Len(), "path", cfg.Catalog.Path)
	return c, nil
}

func NewEngine(
	cfg config.Config,
	cat *catalog.Catalog,
	hours availability.BusinessHours,
	loc *time.Location,
	clk clock.Clock,
	logger *slog.Logger,
) *scheduling.Engine {
	return scheduling.NewEngine(scheduling.Options{
		Catalog:  cat,
		Hours:    hours,
		Clock:    clk,
		Location: loc,
		HoldTTL:  cfg.Reservation.HoldTTL,
		Logger:   logger,
	})
}

func NewDurabilityRunner(
	cfg config.Config,
	engine durability.Engine,
	store durability.Store,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *durability.Runner {
	return durability.NewRunner(engine, store, clk, m, logger, durability.Options{
		FlushInterval:   cfg.Persistence.FlushInterval,
		SweepInterval:   cfg.Reservation.SweepInterval,
		ShutdownTimeout: cfg.Persistence.ShutdownTimeout,
	})
}

// registerDurabilityLifecycle restores state before the server starts taking
// requests and saves it after the server has stopped.
func registerDurabilityLifecycle(lc fx.Lifecycle, runner *durability.Runner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runner.Restore(ctx)
			runner.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
}

func NewAdminCommands(cfg config.Config, engine commands.Scheduler, flusher commands.FlushRequester, clk clock.Clock, logger *slog.Logger) commands.AdminCommands {
	return commands.NewAdminCommands(engine, flusher, clk, cfg.Retention.PurgeAfterDays, logger)
}

func NewDialogMachine(
	cfg config.Config,
	cmd commands.BookingCommands,
	qry queries.BookingQueries,
	sessions *dialog.Store,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) *dialog.Machine {
	return dialog.NewMachine(cmd, qry, sessions, clk, loc, cfg.Schedule.BookingHorizonDays, logger)
}

func NewAuthUseCase(cfg config.Config, jwtService *jwt.Service, logger *slog.Logger) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(cfg.Operator, jwtService, logger)
}
