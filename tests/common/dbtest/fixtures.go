//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestLocation inserts a location with the given spot counts; a nil capacity means untracked.
func CreateTestLocation(t *testing.T, db DBLike, name string, capacity *int, availableSpots int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO parking_locations (id, name, address, latitude, longitude, capacity, available_spots)
		VALUES ($1, $2, '1 Test Street', 35.0, 139.0, $3, $4)`,
		id, name, capacity, availableSpots)
	require.NoError(t, err)

	return id
}

func AvailableSpots(t *testing.T, db DBLike, locationID uuid.UUID) int {
	t.Helper()

	var spots int
	err := db.QueryRow(context.Background(),
		"SELECT available_spots FROM parking_locations WHERE id = $1", locationID).Scan(&spots)
	require.NoError(t, err)
	return spots
}

func CountPayments(t *testing.T, db DBLike, reservationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM payments WHERE reservation_id = $1", reservationID).Scan(&n)
	require.NoError(t, err)
	return n
}

// PendingJobKinds lists the outbox kinds still waiting for the relay, oldest first.
func PendingJobKinds(t *testing.T, db *pgxpool.Pool) []string {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT kind FROM notification_jobs WHERE status = 'pending' ORDER BY created_at, kind")
	require.NoError(t, err)
	defer rows.Close()

	var kinds []string
	for rows.Next() {
		var k string
		require.NoError(t, rows.Scan(&k))
		kinds = append(kinds, k)
	}
	require.NoError(t, rows.Err())
	return kinds
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
