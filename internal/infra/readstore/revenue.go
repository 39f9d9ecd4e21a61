package readstore

import (
	"context"
	"time"

	"github.com/antoninkin/parkmate-app/internal/infra"
	"github.com/antoninkin/parkmate-app/internal/infra/db"
	"github.com/antoninkin/parkmate-app/internal/pkg/pgconv"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
)

// Only completed payments count; returned ones were refunded.
const selectMonthlyRevenueSQL = `
SELECT EXTRACT(MONTH FROM p.paid_at AT TIME ZONE 'UTC')::int AS month,
       SUM(p.amount_cents)::bigint AS total_cents,
       COUNT(*)::int AS payment_count
FROM payments p
JOIN reservations r ON r.id = p.reservation_id
WHERE p.status = 'completed'
  AND p.paid_at >= $1 AND p.paid_at < $2
  AND ($3::uuid IS NULL OR r.location_id = $3)
GROUP BY month
ORDER BY month`

type RevenueReadStore struct {
	db db.DBTX
}

func NewRevenueReadStore(db db.DBTX) *RevenueReadStore {
	return &RevenueReadStore{db: db}
}

func (s *RevenueReadStore) MonthlyCompletedTotals(ctx context.Context, from, to time.Time, locationID *uuid.UUID) ([]queries.MonthlyRevenue, error) {
	rows, err := s.db.Query(ctx, selectMonthlyRevenueSQL, from, to, pgconv.UUIDPtrToPgtype(locationID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum revenue", err)
	}
	defer rows.Close()

	out := make([]queries.MonthlyRevenue, 0)
	for rows.Next() {
		var (
			m     queries.MonthlyRevenue
			count int32
			month int32
		)
		if err := rows.Scan(&month, &m.TotalCents, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan revenue", err)
		}
		m.Month = int(month)
		m.PaymentCount = int(count)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate revenue", err)
	}
	return out, nil
}
