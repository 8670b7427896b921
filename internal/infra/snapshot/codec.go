package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"

	"salon-booking/internal/infra/converter"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/scheduling"
)

const (
	backendFile     = "file"
	backendPostgres = "postgres"
)

func encode(snap scheduling.Snapshot) (map[string][]byte, error) {
	r := converter.FromSnapshot(snap)
	values := map[string]any{
		converter.CollectionAppointments: r.Appointments,
		converter.CollectionUsers:        r.Users,
		converter.CollectionPending:      r.Pending,
		converter.CollectionCancelled:    r.Cancellations,
	}
	out := make(map[string][]byte, len(values))
	for name, v := range values {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errs.Wrapf(err, "encode %s", name)
		}
		out[name] = b
	}
	return out, nil
}

// decode turns raw collection payloads into a snapshot. An absent payload is an
// empty collection; an undecodable one is logged and treated as empty; invalid
// records are logged and skipped.
func decode(ctx context.Context, logger *slog.Logger, payloads map[string][]byte) scheduling.Snapshot {
	var r converter.Records
	targets := map[string]any{
		converter.CollectionAppointments: &r.Appointments,
		converter.CollectionUsers:        &r.Users,
		converter.CollectionPending:      &r.Pending,
		converter.CollectionCancelled:    &r.Cancellations,
	}
	for name, target := range targets {
		raw, ok := payloads[name]
		if !ok || len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			logger.WarnContext(ctx, "corrupt snapshot collection, starting it empty", "collection", name, "error", err)
			resetTarget(target)
		}
	}

	snap, skipped := converter.ToSnapshot(r)
	for _, err := range skipped {
		logger.WarnContext(ctx, "skipping invalid snapshot record", "error", err)
	}
	return snap
}

func resetTarget(target any) {
	switch t := target.(type) {
	case *[]converter.AppointmentRecord:
		*t = nil
	case *[]converter.ProfileRecord:
		*t = nil
	case *[]converter.HoldRecord:
		*t = nil
	case *[]converter.CancellationRecord:
		*t = nil
	}
}
