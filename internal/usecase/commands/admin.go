package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin.go -package=commandsmock

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/calendar"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/readmodel"
)

type AdminCommands interface {
	// Purge drops appointments dated more than the retention age before today.
	Purge(ctx context.Context) (*readmodel.PurgeRM, error)
}

type adminCommandsImpl struct {
	engine        Scheduler
	flusher       FlushRequester
	clock         clock.Clock
	retentionDays int
	logger        *slog.Logger
}

func NewAdminCommands(engine Scheduler, flusher FlushRequester, clk clock.Clock, retentionDays int, logger *slog.Logger) AdminCommands {
	return &adminCommandsImpl{
		engine:        engine,
		flusher:       flusher,
		clock:         clk,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

func (c *adminCommandsImpl) Purge(ctx context.Context) (*readmodel.PurgeRM, error) {
	today := calendar.DateOf(c.clock.Now().In(c.engine.Location()))
	cutoff := today.AddDays(-c.retentionDays)

	removed := c.engine.PurgeBefore(cutoff)
	if len(removed) > 0 {
		c.flusher.RequestFlush()
	}
	c.logger.InfoContext(ctx, "old appointments purged", "cutoff", cutoff.String(), "removed", len(removed))

	rm := readmodel.FromPurge(cutoff, removed)
	return &rm, nil
}
