package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

import (
	"context"

	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/usecase/readmodel"
)

type AdminQueries interface {
	Summary(ctx context.Context) readmodel.SummaryRM
	ListAllAppointments(ctx context.Context) []readmodel.AppointmentRM
	Export(ctx context.Context) readmodel.ExportRM
}

type adminQueriesImpl struct {
	reader Reader
	clock  clock.Clock
}

func NewAdminQueries(reader Reader, clk clock.Clock) AdminQueries {
	return &adminQueriesImpl{reader: reader, clock: clk}
}

func (q *adminQueriesImpl) Summary(_ context.Context) readmodel.SummaryRM {
	return readmodel.FromSummary(q.reader.Summary(q.clock.Now()))
}

func (q *adminQueriesImpl) ListAllAppointments(_ context.Context) []readmodel.AppointmentRM {
	return readmodel.FromAppointments(q.reader.ListAllAppointments())
}

func (q *adminQueriesImpl) Export(_ context.Context) readmodel.ExportRM {
	return readmodel.FromSnapshot(q.reader.Snapshot(), q.reader.HoldTTL(), q.clock.Now())
}
