package bootstrap

import (
	"log/slog"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// ScheduleModule derives the salon's time zone and working day from the
// loaded config, so a bad value fails startup instead of the first request.
var ScheduleModule = fx.Module("schedule",
	fx.Provide(
		NewSalonLocation,
		NewBusinessHours,
	),
)

func NewSalonLocation(cfg config.Config, logger *slog.Logger) (*time.Location, error) {
	loc, err := cfg.Schedule.Location()
	if err != nil {
		return nil, err
	}
	logger.Info("salon time zone", "zone", loc.String())
	return loc, nil
}

func NewBusinessHours(cfg config.Config) (availability.BusinessHours, error) {
	s := cfg.Schedule
	open, err := calendar.ParseTimeOfDay(s.Open)
	if err != nil {
		return availability.BusinessHours{}, err
	}
	closeAt, err := calendar.ParseTimeOfDay(s.Close)
	if err != nil {
		return availability.BusinessHours{}, err
	}
	return availability.NewBusinessHours(open, closeAt, int(s.Cadence/time.Minute), int(s.Granularity/time.Minute))
}
