package snapshot

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/converter"
	"salon-booking/internal/usecase/scheduling"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const snapshotTable = "booking_snapshots"

const createTableSQL = `CREATE TABLE IF NOT EXISTS booking_snapshots (
	collection text PRIMARY KEY,
	payload    jsonb NOT NULL,
	saved_at   timestamptz NOT NULL
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore keeps each collection as one jsonb row; Save replaces all rows in one transaction.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	now    func() time.Time
}

func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, createTableSQL); err != nil {
		return nil, infra.WrapStoreErr(logger, infra.KindDBFailure, backendPostgres, "failed to create snapshot table", err)
	}
	return &PostgresStore{pool: pool, logger: logger, now: time.Now}, nil
}

func (s *PostgresStore) Load(ctx context.Context) (scheduling.Snapshot, error) {
	query, args, err := psql.Select("collection", "payload").From(snapshotTable).ToSql()
	if err != nil {
		return scheduling.Snapshot{}, infra.WrapStoreErr(s.logger, infra.KindDBFailure, backendPostgres, "failed to build load query", err)
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return scheduling.Snapshot{}, infra.WrapStoreErr(s.logger, infra.KindDBFailure, backendPostgres, "failed to load snapshot", err)
	}
	defer rows.Close()

	payloads := make(map[string][]byte, len(converter.Collections))
	for rows.Next() {
		var (
			name    string
			payload []byte
		)
		if err := rows.Scan(&name, &payload); err != nil {
			s.logger.WarnContext(ctx, "unreadable snapshot row, skipping", "error", err)
			continue
		}
		payloads[name] = payload
	}
	if err := rows.Err(); err != nil {
		return scheduling.Snapshot{}, infra.WrapStoreErr(s.logger, infra.KindDBFailure, backendPostgres, "failed to read snapshot rows", err)
	}
	return decode(ctx, s.logger, payloads), nil
}

func (s *PostgresStore) Save(ctx context.Context, snap scheduling.Snapshot) error {
	payloads, err := encode(snap)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindEncode, backendPostgres, "failed to encode snapshot", err)
	}

	insert := psql.Insert(snapshotTable).Columns("collection", "payload", "saved_at")
	savedAt := s.now()
	for _, name := range converter.Collections {
		insert = insert.Values(name, payloads[name], savedAt)
	}
	query, args, err := insert.
		Suffix("ON CONFLICT (collection) DO UPDATE SET payload = EXCLUDED.payload, saved_at = EXCLUDED.saved_at").
		ToSql()
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, backendPostgres, "failed to build save query", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, backendPostgres, "failed to begin snapshot transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, backendPostgres, "failed to save snapshot", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapStoreErr(s.logger, infra.KindDBFailure, backendPostgres, "failed to commit snapshot", err)
	}
	return nil
}
