//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResetDB empties the snapshot table if it exists.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var exists bool
	if err := pool.QueryRow(ctx, `SELECT to_regclass('public.booking_snapshots') IS NOT NULL`).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return nil
	}
	_, err := pool.Exec(ctx, "TRUNCATE booking_snapshots")
	return err
}

func CountSnapshotRows(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM booking_snapshots").Scan(&n)
	require.NoError(t, err)
	return n
}

// CorruptCollection overwrites one collection with a payload of the wrong shape.
func CorruptCollection(t *testing.T, db DBLike, collection string) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		`UPDATE booking_snapshots SET payload = '{"broken": true}'::jsonb WHERE collection = $1`, collection)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected(), "collection %s not stored", collection)
}
