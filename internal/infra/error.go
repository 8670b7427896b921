package infra

import (
	"errors"
	"log/slog"

	"salon-booking/internal/pkg/errs"
)

type StoreErrorKind string

// Snapshot store failure kinds
const (
	KindEncode    StoreErrorKind = "ENCODE"
	KindIOFailure StoreErrorKind = "IO_FAILURE"
	KindDBFailure StoreErrorKind = "DB_FAILURE"
)

// StoreError is returned by snapshot backends. Backend names the store
// ("file" or "postgres") so degraded-durability logs say where saving broke.
type StoreError struct {
	Kind    StoreErrorKind
	Backend string
	op      string
	err     error
}

func (e StoreError) Error() string {
	msg := e.Backend + " store: " + string(e.Kind) + ": " + e.op
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

func WrapStoreErr(slogger *slog.Logger, kind StoreErrorKind, backend, op string, err error) error {
	slogger.Error("snapshot store error",
		slog.String("backend", backend),
		slog.String("kind", string(kind)),
		slog.String("op", op),
		slog.Any("error", err))

	if err != nil {
		err = errs.Wrap(err, op)
	}
	return StoreError{Kind: kind, Backend: backend, op: op, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
